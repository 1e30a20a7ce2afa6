package ident

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

// ErrRandomSource is returned when the system random source fails.
var ErrRandomSource = errors.New("random source unavailable")

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// sessionBits is the entropy carried by a session identifier.
const sessionBits = 130

// NewID returns a random RFC 4122 version 4 identifier.
func NewID() string {
	return uuid.NewString()
}

// SessionID returns a base32 rendering of a 130-bit random number.
// Leading zero digits are not padded, so lengths vary slightly.
func SessionID() (string, error) {
	limit := new(big.Int).Lsh(big.NewInt(1), sessionBits)
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", errors.Join(ErrRandomSource, err)
	}
	return n.Text(32), nil
}

// OTP returns a random six-digit one-time code.
func OTP() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return 0, errors.Join(ErrRandomSource, err)
	}
	return 100000 + int(n.Int64()), nil
}

// Alphanumeric returns a random string of size ASCII letters and digits.
// Non-positive sizes yield "".
func Alphanumeric(size int) (string, error) {
	if size <= 0 {
		return "", nil
	}
	out := make([]byte, size)
	bound := big.NewInt(int64(len(alphanumeric)))
	for i := range out {
		n, err := rand.Int(rand.Reader, bound)
		if err != nil {
			return "", errors.Join(ErrRandomSource, err)
		}
		out[i] = alphanumeric[n.Int64()]
	}
	return string(out), nil
}

// RandomColor returns a random "#rrggbb" color, for avatars and labels.
func RandomColor() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1<<24))
	if err != nil {
		return "", errors.Join(ErrRandomSource, err)
	}
	return fmt.Sprintf("#%06x", n.Int64()), nil
}
