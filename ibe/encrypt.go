package ibe

import (
	"github.com/bf5091/ibe/hash"
	"github.com/bf5091/ibe/internal/xor"
	"github.com/bf5091/ibe/provider"
)

// Encrypt implements BF-Encrypt. qid is the recipient's G2 public
// point, public_of(params, id); callers normally obtain it via
// PublicOf. The scheme is the Fujisaki-Okamoto transform of
// BF-BasicIdent and is intended to wrap short session keys only;
// callers MUST NOT use it to encrypt arbitrary application payloads.
func Encrypt(params *Params, qid provider.G2, m []byte) (*Message, error) {
	hlen := params.Profile.HashLen

	rho, err := randomBytes(hlen)
	if err != nil {
		return nil, err
	}

	t := params.Profile.HashFunc(m)
	l := hash.ToRange(params.Profile, append(append([]byte{}, rho...), t...), params.Q)

	u := params.Curve.ScalarMulG1(params.P, l)

	eQidPPub, err := params.Curve.PairWithPrecomp(params.Precomp(), qid)
	if err != nil {
		return nil, err
	}
	theta := params.Curve.ExpGT(eQidPPub, l)
	z := params.Curve.MarshalGT(theta)

	v := xor.Bytes(params.Profile.HashFunc(z), rho)
	w := xor.Bytes(hash.ToBytes(params.Profile, rho, len(m)), m)

	return &Message{
		Length: len(m),
		U:      u,
		V:      v,
		W:      w,
	}, nil
}
