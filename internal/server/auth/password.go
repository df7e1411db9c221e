package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a one-way digest of a plaintext password with the
// given bcrypt work factor. Plaintext is never persisted.
func HashPassword(password string, cost int) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword reports whether plaintext matches the stored digest.
func VerifyPassword(digest, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
