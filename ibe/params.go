// Package ibe implements the Boneh-Franklin identity-based encryption
// engine: system setup, shard generation, key extraction, encryption,
// and decryption. It is grounded on GoPairingBasedCryptography's
// BFIBEInstance/BFIBEPublicParams/BFIBEMessage types
// (ibe/bf01_ibe.go), generalized from a single fixed curve and hash
// function to the RFC 5091 security profile table and the
// pairing-provider abstraction.
package ibe

import (
	"math/big"

	"github.com/bf5091/ibe/ibeerr"
	"github.com/bf5091/ibe/profile"
	"github.com/bf5091/ibe/provider"
)

// Params are the public parameters of a PKG. Params is single-owner:
// it must not be shared across goroutines unless the caller
// synchronizes access itself.
type Params struct {
	Profile    profile.Profile
	Descriptor provider.Descriptor
	Curve      *provider.Curve
	Q          *big.Int // subgroup order
	P          provider.G1
	PPub       provider.G1
	precomp    *provider.Precomp
}

// Secret is the PKG's master secret, an integer in [2, q-1].
type Secret struct {
	S *big.Int
}

// PrivateKey is an identity's private key, [s]*hash_to_point(id).
type PrivateKey struct {
	D provider.G2
}

// Level returns the security level this Params instance was built at.
func (p *Params) Level() int { return p.Profile.Level }

// Precomp returns the pairing precomputation derived from PPub,
// building it on first use. GenerateShard (and therefore Setup) clears
// it, and Params built directly (e.g. after deserialization) start
// without one.
func (p *Params) Precomp() *provider.Precomp {
	if p.precomp == nil {
		p.precomp = p.Curve.NewPrecomp(p.PPub)
	}
	return p.precomp
}

// Setup performs setup(level): look up the security profile,
// instantiate the pairing provider at the profile's widths, find a
// generator of G1's prime-order subgroup, then generate the first
// shard.
func Setup(level int) (*Params, *Secret, error) {
	prof, err := profile.Lookup(level)
	if err != nil {
		return nil, nil, err
	}

	curve, desc, err := provider.NewCurve(prof.NQ, prof.NP)
	if err != nil {
		return nil, nil, err
	}
	q := curve.Order()

	p, err := findGenerator(curve, desc)
	if err != nil {
		return nil, nil, err
	}

	params := &Params{
		Profile:    prof,
		Descriptor: desc,
		Curve:      curve,
		Q:          q,
		P:          p,
	}
	secret, err := GenerateShard(params)
	if err != nil {
		return nil, nil, err
	}
	return params, secret, nil
}

// findGenerator samples an element of G1 from the curve descriptor,
// multiplies it by the cofactor h, and retries (via a counter folded
// into the sample) on the (cofactor-1 curves: never) identity result.
//
// The sample is derived deterministically from the curve descriptor
// rather than drawn from a CSPRNG: P is a domain parameter of the
// curve, not a per-PKG secret, and independent PKGs that generate a
// shard against the "same" curve (same level, hence same descriptor
// here) must agree on P for shard composition's group-addition
// identity to hold. A real Type-A PBC parameter file bakes its
// generator into the published params for the same reason; this
// realizes that by hashing the descriptor instead of publishing a
// file. See DESIGN.md.
func findGenerator(curve *provider.Curve, desc provider.Descriptor) (provider.G1, error) {
	h := curve.Cofactor()
	for counter := 0; ; counter++ {
		seed := append(append([]byte{}, desc.Bytes()...), byte(counter))
		g, err := curve.HashG1(seed)
		if err != nil {
			return provider.G1{}, err
		}
		candidate := curve.ScalarMulG1(g, h)
		if !curve.IsZeroG1(candidate) {
			return candidate, nil
		}
	}
}

// GenerateShard implements generate_shard: sample a fresh master
// secret s uniformly from [2, q-1], set PPub = [s]P, and rebuild the
// precomputation. It also refreshes an existing Params in place,
// tearing down the stale precomp first so Precomp rebuilds lazily.
func GenerateShard(params *Params) (*Secret, error) {
	s, err := randomSecretScalar(params.Q)
	if err != nil {
		return nil, err
	}
	params.PPub = params.Curve.ScalarMulG1(params.P, s)
	params.precomp = nil // torn down; Precomp() rebuilds lazily
	return &Secret{S: s}, nil
}

// randomSecretScalar draws a uniform integer in [0, q-3] and adds 2,
// landing uniformly in [2, q-1].
func randomSecretScalar(q *big.Int) (*big.Int, error) {
	upper := new(big.Int).Sub(q, big.NewInt(3))
	if upper.Sign() < 0 {
		return nil, ibeerr.ErrInvalidLevel
	}
	k, err := cryptoRandInt(upper)
	if err != nil {
		return nil, err
	}
	return k.Add(k, big.NewInt(2)), nil
}
