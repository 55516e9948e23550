package ibe

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/bf5091/ibe/ibeerr"
)

// cryptoRandInt draws a uniform integer in [0, upper] (inclusive) from
// a cryptographically secure source, wrapping refusals as
// ErrRandomFailure.
func cryptoRandInt(upper *big.Int) (*big.Int, error) {
	limit := new(big.Int).Add(upper, big.NewInt(1))
	k, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return nil, fmt.Errorf("draw random integer: %w: %v", ibeerr.ErrRandomFailure, err)
	}
	return k, nil
}

// randomBytes draws n cryptographically secure random bytes.
func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("draw random bytes: %w: %v", ibeerr.ErrRandomFailure, err)
	}
	return b, nil
}
