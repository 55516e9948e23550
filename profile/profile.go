// Package profile holds the RFC 5091 security-level table: the
// immutable mapping from a level 1..5 to modulus widths and a digest
// function.
package profile

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"

	"github.com/bf5091/ibe/ibeerr"
)

// HashFunc maps a byte sequence to a fixed-length digest.
type HashFunc func(data []byte) []byte

// Profile is an immutable record for one RFC 5091 security level.
type Profile struct {
	Level    int
	NP       int // pairing-group prime bit-width (nominal, RFC 5091)
	NQ       int // subgroup prime bit-width (nominal, RFC 5091)
	HashLen  int // digest length in bytes
	HashFunc HashFunc
}

func sha1Sum(data []byte) []byte {
	sum := sha1.Sum(data)
	return sum[:]
}

func sha224Sum(data []byte) []byte {
	sum := sha256.Sum224(data)
	return sum[:]
}

func sha256Sum(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

func sha384Sum(data []byte) []byte {
	sum := sha512.Sum384(data)
	return sum[:]
}

func sha512Sum(data []byte) []byte {
	sum := sha512.Sum512(data)
	return sum[:]
}

var table = map[int]Profile{
	1: {Level: 1, NP: 512, NQ: 160, HashLen: 20, HashFunc: sha1Sum},
	2: {Level: 2, NP: 1024, NQ: 224, HashLen: 28, HashFunc: sha224Sum},
	3: {Level: 3, NP: 1536, NQ: 256, HashLen: 32, HashFunc: sha256Sum},
	4: {Level: 4, NP: 3840, NQ: 384, HashLen: 48, HashFunc: sha384Sum},
	5: {Level: 5, NP: 7680, NQ: 512, HashLen: 64, HashFunc: sha512Sum},
}

// Lookup returns the profile for level, or ErrInvalidLevel if level is
// not one of 1..5.
func Lookup(level int) (Profile, error) {
	p, ok := table[level]
	if !ok {
		return Profile{}, fmt.Errorf("level %d: %w", level, ibeerr.ErrInvalidLevel)
	}
	return p, nil
}
