// Package generator produces random passwords for new vault entries. It is
// a pure string helper with no state; the stores never call into it.
package generator

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	symbols   = "!@#$%^&*()"
	digits    = "0123456789"
)

// Options selects the character classes included in a generated password.
// Lowercase letters are always included.
type Options struct {
	UseCaps    bool
	UseSymbols bool
	UseNumbers bool
}

// Password returns a random password of the given length. One character of
// every selected class is guaranteed as long as length allows; all
// randomness comes from the OS CSPRNG.
func Password(length int, opts Options) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("password length must be positive, got %d", length)
	}

	alphabet := lowercase
	required := make([]string, 0, 4)
	required = append(required, lowercase)

	if opts.UseCaps {
		alphabet += uppercase
		required = append(required, uppercase)
	}
	if opts.UseSymbols {
		alphabet += symbols
		required = append(required, symbols)
	}
	if opts.UseNumbers {
		alphabet += digits
		required = append(required, digits)
	}

	out := make([]byte, 0, length)
	for _, class := range required {
		if len(out) == length {
			break
		}
		c, err := pick(class)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}

	for len(out) < length {
		c, err := pick(alphabet)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}

	return string(out), nil
}

// pick returns one uniformly random character of s.
func pick(s string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(s))))
	if err != nil {
		return 0, fmt.Errorf("read random index: %w", err)
	}
	return s[n.Int64()], nil
}
