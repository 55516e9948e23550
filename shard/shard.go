// Package shard implements the composition algebra of two PKG shards:
// addition of two PKGs' public parameters and of two master secrets,
// so an effective master secret can be the sum of independently-held
// shards.
package shard

import (
	"fmt"
	"math/big"

	"github.com/bf5091/ibe/ibe"
	"github.com/bf5091/ibe/ibeerr"
	"github.com/bf5091/ibe/provider"
)

// AddPublic combines two PKGs' public parameters into the params of
// their joint PKG. a and b must share security level, subgroup order,
// and curve descriptor; the result is a deep copy that aliases
// neither input. add_public is commutative on PPub because group
// addition is commutative.
func AddPublic(a, b *ibe.Params) (*ibe.Params, error) {
	if a.Profile.Level != b.Profile.Level {
		return nil, fmt.Errorf("level %d vs %d: %w", a.Profile.Level, b.Profile.Level, ibeerr.ErrShardMismatch)
	}
	if a.Q.Cmp(b.Q) != 0 {
		return nil, fmt.Errorf("subgroup order mismatch: %w", ibeerr.ErrShardMismatch)
	}
	if !a.Descriptor.Equal(b.Descriptor) {
		return nil, fmt.Errorf("curve descriptor mismatch: %w", ibeerr.ErrShardMismatch)
	}
	if !a.Curve.EqualG1(a.P, b.P) {
		return nil, fmt.Errorf("base point mismatch: %w", ibeerr.ErrShardMismatch)
	}

	curve, _, err := provider.NewCurve(a.Descriptor.RBits, a.Descriptor.QBits)
	if err != nil {
		return nil, err
	}
	ppub := curve.AddG1(a.PPub, b.PPub)
	c := &ibe.Params{
		Profile:    a.Profile,
		Descriptor: a.Descriptor,
		Curve:      curve,
		Q:          new(big.Int).Set(a.Q),
		P:          a.P,
		PPub:       ppub,
	}
	c.Precomp() // rebuild fresh, never aliasing a/b's precomputation
	return c, nil
}

// AddSecret sums two master secrets modulo q and returns the sum as
// an integer. Commutative and associative, matching composition of
// shards.
func AddSecret(q, s1, s2 *big.Int) *big.Int {
	sum := new(big.Int).Add(s1, s2)
	return sum.Mod(sum, q)
}
