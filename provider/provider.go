// Package provider realizes a pairing-provider capability surface over
// github.com/consensys/gnark-crypto, the same pairing library
// GoPairingBasedCryptography uses for every one of its schemes.
//
// gnark-crypto does not expose parameterized Type-A curve generation
// by arbitrary (rbits, qbits) width the way a PBC binding would; BN254
// is the one curve family wired in here, used at every security
// level (see SPEC_FULL.md and DESIGN.md). G1's cofactor is 1 on
// BN254, so the capability surface still reports it rather than
// hard-coding that fact into callers.
package provider

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"

	"github.com/bf5091/ibe/ibeerr"
)

// G1 wraps a G1 group element. The zero value is the point at infinity.
type G1 struct{ p bn254.G1Affine }

// G2 wraps a G2 group element.
type G2 struct{ p bn254.G2Affine }

// GT wraps a target-group element.
type GT struct{ e bn254.GT }

// Precomp holds the fixed G1 point (typically PPub) that repeated
// e(PPub, Qid) style evaluations during encryption pair against. It
// stores only that point; no pairing data is precomputed, so
// PairWithPrecomp costs the same as Pair.
type Precomp struct {
	base bn254.G1Affine
}

// Curve is the capability surface an IBE engine needs from a pairing
// provider. BN254 is the sole implementation wired into this module;
// any provider exposing the same surface (including one backed by a
// true Type-A PBC binding) interoperates.
type Curve struct {
	r *big.Int // subgroup order
	h *big.Int // G1 cofactor
}

// Descriptor uniquely identifies the curve family and widths a Curve
// was generated for. Its canonical bytes are compared, not its Go
// in-memory representation, so two independently-generated providers
// can be checked for equality.
type Descriptor struct {
	Name  string
	RBits int
	QBits int
}

// Bytes returns the canonical byte form of the descriptor.
func (d Descriptor) Bytes() []byte {
	return []byte(fmt.Sprintf("%s:%d:%d", d.Name, d.RBits, d.QBits))
}

// Equal reports whether two descriptors have identical canonical bytes.
func (d Descriptor) Equal(o Descriptor) bool {
	return string(d.Bytes()) == string(o.Bytes())
}

// NewCurve generates Type-A curve parameters for the given widths.
// BN254 ignores the requested widths beyond recording them in the
// returned Descriptor, since the wired provider offers exactly one
// curve family; see SPEC_FULL.md §3.
func NewCurve(rbits, qbits int) (*Curve, Descriptor, error) {
	r := ecc.BN254.ScalarField()
	return &Curve{
			r: new(big.Int).Set(r),
			h: big.NewInt(1), // BN254 G1 cofactor is 1
		}, Descriptor{
			Name:  "bn254",
			RBits: rbits,
			QBits: qbits,
		}, nil
}

// Order returns the prime subgroup order r.
func (c *Curve) Order() *big.Int { return new(big.Int).Set(c.r) }

// Cofactor returns the G1 cofactor h.
func (c *Curve) Cofactor() *big.Int { return new(big.Int).Set(c.h) }

// RandomG1 draws a uniform element of G1. The
// element is produced by scalar-multiplying the canonical generator
// by a uniform scalar in [0, r-1], which is uniform over the
// prime-order group generated by that point.
func (c *Curve) RandomG1() (G1, error) {
	_, _, g1, _ := bn254.Generators()
	k, err := rand.Int(rand.Reader, c.r)
	if err != nil {
		return G1{}, fmt.Errorf("draw random scalar: %w: %v", ibeerr.ErrRandomFailure, err)
	}
	var out bn254.G1Affine
	out.ScalarMultiplication(&g1, k)
	return G1{out}, nil
}

// ScalarMulG1 returns [k]p.
func (c *Curve) ScalarMulG1(p G1, k *big.Int) G1 {
	var out bn254.G1Affine
	out.ScalarMultiplication(&p.p, new(big.Int).Mod(k, c.r))
	return G1{out}
}

// AddG1 returns a + b.
func (c *Curve) AddG1(a, b G1) G1 {
	var out bn254.G1Affine
	out.Add(&a.p, &b.p)
	return G1{out}
}

// IsZeroG1 reports whether p is the point at infinity.
func (c *Curve) IsZeroG1(p G1) bool {
	return p.p.X.IsZero() && p.p.Y.IsZero()
}

// EqualG1 reports whether a and b are the same point.
func (c *Curve) EqualG1(a, b G1) bool {
	return a.p.Equal(&b.p)
}

// MarshalG1 serializes p to its fixed-width canonical form.
func (c *Curve) MarshalG1(p G1) []byte {
	return p.p.Marshal()
}

// G1ByteLen returns the fixed serialized length of a G1 element.
func (c *Curve) G1ByteLen() int {
	var zero bn254.G1Affine
	return len(zero.Marshal())
}

// G2ByteLen returns the fixed serialized length of a G2 element.
func (c *Curve) G2ByteLen() int {
	var zero bn254.G2Affine
	return len(zero.Marshal())
}

// UnmarshalG1 parses a fixed-width canonical G1 encoding.
func (c *Curve) UnmarshalG1(data []byte) (G1, error) {
	var out bn254.G1Affine
	if err := out.Unmarshal(data); err != nil {
		return G1{}, fmt.Errorf("unmarshal G1: %w: %v", ibeerr.ErrParse, err)
	}
	return G1{out}, nil
}

// HashG1 hashes arbitrary bytes to a G1 element.
func (c *Curve) HashG1(msg []byte) (G1, error) {
	p, err := bn254.HashToG1(msg, []byte("BF-IBE hash to G1"))
	if err != nil {
		return G1{}, fmt.Errorf("hash to G1: %v", err)
	}
	return G1{p}, nil
}

// HashG2 hashes arbitrary bytes to a G2 element; hash_to_point
// delegates the choice of map to the provider.
func (c *Curve) HashG2(msg []byte) (G2, error) {
	p, err := bn254.HashToG2(msg, []byte("BF-IBE hash to G2"))
	if err != nil {
		return G2{}, fmt.Errorf("hash to G2: %v", err)
	}
	return G2{p}, nil
}

// ScalarMulG2 returns [k]p.
func (c *Curve) ScalarMulG2(p G2, k *big.Int) G2 {
	var out bn254.G2Affine
	out.ScalarMultiplication(&p.p, new(big.Int).Mod(k, c.r))
	return G2{out}
}

// AddG2 returns a + b.
func (c *Curve) AddG2(a, b G2) G2 {
	var out bn254.G2Affine
	out.Add(&a.p, &b.p)
	return G2{out}
}

// EqualG2 reports whether a and b are the same point.
func (c *Curve) EqualG2(a, b G2) bool {
	return a.p.Equal(&b.p)
}

// MarshalG2 serializes p to its fixed-width canonical form.
func (c *Curve) MarshalG2(p G2) []byte {
	return p.p.Marshal()
}

// UnmarshalG2 parses a fixed-width canonical G2 encoding.
func (c *Curve) UnmarshalG2(data []byte) (G2, error) {
	var out bn254.G2Affine
	if err := out.Unmarshal(data); err != nil {
		return G2{}, fmt.Errorf("unmarshal G2: %w: %v", ibeerr.ErrParse, err)
	}
	return G2{out}, nil
}

// Pair applies the bilinear map e: G1 x G2 -> GT.
func (c *Curve) Pair(a G1, b G2) (GT, error) {
	gt, err := bn254.Pair([]bn254.G1Affine{a.p}, []bn254.G2Affine{b.p})
	if err != nil {
		return GT{}, fmt.Errorf("pairing: %v", err)
	}
	return GT{gt}, nil
}

// PairWithPrecomp applies e(precomputed base, b), equivalent to
// Pair(base, b) but grouped under Precomp so callers can express "the
// left operand does not change across many calls" the way encryption
// does when it repeatedly pairs against P_pub.
func (c *Curve) PairWithPrecomp(pc *Precomp, b G2) (GT, error) {
	return c.Pair(G1{pc.base}, b)
}

// NewPrecomp derives a precomputation object from a fixed G1 point,
// typically P_pub.
func (c *Curve) NewPrecomp(base G1) *Precomp {
	return &Precomp{base: base.p}
}

// ExpGT returns base^k in GT.
func (c *Curve) ExpGT(base GT, k *big.Int) GT {
	var out bn254.GT
	out.Exp(base.e, new(big.Int).Mod(k, c.r))
	return GT{out}
}

// MarshalGT serializes a GT element to its canonical byte form.
func (c *Curve) MarshalGT(g GT) []byte {
	return g.e.Marshal()
}

// GTByteLen returns the fixed serialized length of a GT element.
func (c *Curve) GTByteLen() int {
	var zero bn254.GT
	return len(zero.Marshal())
}
