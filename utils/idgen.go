package utils

import (
	"math/rand"
)

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 16
)

// GenerateID produces an external-facing ID: the prefix followed by 16
// characters drawn from a 62-symbol alphabet. The value is random, not
// guaranteed unique; the database primary key is the uniqueness authority
// and callers regenerate on a duplicate-key insert.
func GenerateID(prefix string) string {
	b := make([]byte, idLength)
	for i := range b {
		b[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return prefix + string(b)
}
