// Package hash implements the RFC 5091 §4 hash primitives:
// hash_to_point, hash_to_range, and hash_to_bytes. It is grounded on
// GoPairingBasedCryptography's own hash package (hash/), generalized
// from a fixed SHA-256 to an arbitrary security-profile digest.
package hash

import (
	"math/big"

	"github.com/bf5091/ibe/profile"
	"github.com/bf5091/ibe/provider"
)

// ToPoint computes hash_to_point(id, params): hash id under the
// profile's digest, then delegate to the provider's G2 hash-to-element
// routine. The map itself is the provider's choice, not this package's.
func ToPoint(curve *provider.Curve, p profile.Profile, id []byte) (provider.G2, error) {
	digest := p.HashFunc(id)
	return curve.HashG2(digest)
}

// ToRange computes hash_to_range(b, q): an integer uniformly
// distributed in [0, q-1], via exactly two rounds of the profile's
// digest.
func ToRange(p profile.Profile, b []byte, q *big.Int) *big.Int {
	hlen := p.HashLen
	m := new(big.Int).Lsh(big.NewInt(1), uint(8*hlen)) // 256^hlen
	v := new(big.Int)
	h := make([]byte, hlen) // h = 0^hlen

	for i := 0; i < 2; i++ {
		t := append(append([]byte{}, h...), b...)
		h = p.HashFunc(t)
		a := new(big.Int).SetBytes(h)
		v.Mul(v, m)
		v.Add(v, a)
	}
	return v.Mod(v, q)
}

// ToBytes computes hash_to_bytes(seed, outlen): a mask-expansion
// stream of exactly outlen bytes, equivalent to RFC 5091 HashBytes.
func ToBytes(p profile.Profile, seed []byte, outlen int) []byte {
	k := p.HashFunc(seed)
	h := make([]byte, p.HashLen) // h = 0^hlen
	out := make([]byte, 0, outlen)

	for len(out) < outlen {
		h = p.HashFunc(h)
		r := p.HashFunc(append(append([]byte{}, h...), k...))
		n := p.HashLen
		if remaining := outlen - len(out); remaining < n {
			n = remaining
		}
		out = append(out, r[:n]...)
	}
	return out
}
