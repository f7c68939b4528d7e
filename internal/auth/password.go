package auth

import "golang.org/x/crypto/bcrypt"

// Work factor 10, same as the data files already in circulation were hashed
// with. Raising it would not break verification of old hashes.
const hashCost = 10

// HashPassword returns the bcrypt hash of a plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash. bcrypt's
// comparison is constant-time with respect to the hash contents.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
