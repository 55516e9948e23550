package ibe

import (
	"github.com/bf5091/ibe/hash"
	"github.com/bf5091/ibe/ibeerr"
	"github.com/bf5091/ibe/internal/xor"
)

// Decrypt implements BF-Decrypt. The Fujisaki-Okamoto validity check
// is not optional: on failure the output buffer is scrubbed before
// returning ErrDecryptionInvalid, so a caller cannot accidentally read
// dangling plaintext.
func Decrypt(params *Params, privateKey *PrivateKey, ct *Message) ([]byte, error) {
	theta, err := params.Curve.Pair(ct.U, privateKey.D)
	if err != nil {
		return nil, err
	}
	z := params.Curve.MarshalGT(theta)

	rho := xor.Bytes(params.Profile.HashFunc(z), ct.V)
	m := xor.Bytes(hash.ToBytes(params.Profile, rho, ct.Length), ct.W)

	t := params.Profile.HashFunc(m)
	l := hash.ToRange(params.Profile, append(append([]byte{}, rho...), t...), params.Q)

	u := params.Curve.ScalarMulG1(params.P, l)
	if !params.Curve.EqualG1(u, ct.U) {
		zero(m)
		return nil, ibeerr.ErrDecryptionInvalid
	}
	return m, nil
}
