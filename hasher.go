package accounts

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hasher turns a plaintext secret into the digest stored on an Account.
// Implementations must be deterministic: verification recomputes the digest
// and compares it with the stored one.
type Hasher interface {
	Hash(plaintext string) string
}

// SHA256Hasher renders the SHA-256 of the secret's UTF-8 bytes as a
// 64 character lowercase hex string.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
