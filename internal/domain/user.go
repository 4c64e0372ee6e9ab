package domain

import "context"

// User 用户，用户名为唯一键，密码仅保存加盐哈希
type User struct {
	Username     string
	PasswordHash string
}

// Credentials maps username to the stored password hash.
type Credentials map[string]string

// UserRepository persists the credential mapping as a single serialized
// file, rewritten in full on every change.
type UserRepository interface {
	// Load returns the credentials, empty when the backing file is
	// absent or empty.
	Load(ctx context.Context) (Credentials, error)
	// Save overwrites the backing file with the full mapping.
	Save(ctx context.Context, c Credentials) error
}
