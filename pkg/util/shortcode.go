package util

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const shortCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

var alphabetSize = big.NewInt(int64(len(shortCodeAlphabet)))

// NewShortCode returns a random base62 code of length n
func NewShortCode(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("short code length must be positive")
	}

	result := make([]byte, n)
	for i := range result {
		index, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", err
		}
		result[i] = shortCodeAlphabet[index.Int64()]
	}
	return string(result), nil
}

// IsShortCode checks whether s only contains base62 characters
func IsShortCode(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		default:
			return false
		}
	}
	return true
}
