package util

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := GeneratePasswordHash("secret")
	if err != nil {
		t.Fatalf("GeneratePasswordHash: %v", err)
	}
	if hash == "secret" {
		t.Fatal("password stored in clear")
	}

	if !CheckPasswordHash(hash, "secret") {
		t.Error("hash does not verify against its own password")
	}
	if CheckPasswordHash(hash, "wrong") {
		t.Error("wrong password verified")
	}

	// 参数顺序为 (hash, password)，反过来必须失败
	if CheckPasswordHash("secret", hash) {
		t.Error("reversed arguments must not verify")
	}
}
