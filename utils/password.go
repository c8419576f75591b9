package utils

import (
	"github.com/matthewhartstonge/argon2"
	"github.com/pkg/errors"
)

// HashPassword returns an encoded argon2id hash with a fresh random salt.
func HashPassword(password string) (string, error) {
	argon := argon2.DefaultConfig()
	encoded, err := argon.HashEncoded([]byte(password))
	if err != nil {
		return "", errors.Wrap(err, "hash password")
	}
	return string(encoded), nil
}

// VerifyPassword compares password against encodedHash in constant time.
// A malformed hash is reported as a mismatch together with the parse error.
func VerifyPassword(encodedHash, password string) (bool, error) {
	ok, err := argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
	if err != nil {
		return false, errors.Wrap(err, "verify password")
	}
	return ok, nil
}
