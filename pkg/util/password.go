package util

import (
	"golang.org/x/crypto/bcrypt"
)

// GeneratePasswordHash generates a bcrypt hash of a password
// GeneratePasswordHash 生成密码的bcrypt哈希值
func GeneratePasswordHash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

// CheckPasswordHash verifies whether password matches the stored hash
// CheckPasswordHash 验证密码与哈希值是否匹配
func CheckPasswordHash(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
