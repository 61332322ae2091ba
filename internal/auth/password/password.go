// Package password wraps bcrypt hashing for user credentials. Hashing is
// salted, so two hashes of the same secret never match byte-for-byte;
// verification is constant-time within bcrypt's own scheme.
package password

import "golang.org/x/crypto/bcrypt"

// Hash derives a one-way adaptive hash of the secret.
func Hash(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether the secret matches the stored hash. It returns
// false for any mismatch or malformed hash and never errors for a wrong
// password.
func Verify(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
