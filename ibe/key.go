package ibe

import (
	"github.com/bf5091/ibe/hash"
	"github.com/bf5091/ibe/provider"
)

// Extract implements extract(params, s, id): the private key for id
// under secret s, [s]*hash_to_point(id).
func Extract(params *Params, secret *Secret, id []byte) (*PrivateKey, error) {
	qid, err := hash.ToPoint(params.Curve, params.Profile, id)
	if err != nil {
		return nil, err
	}
	d := params.Curve.ScalarMulG2(qid, secret.S)
	return &PrivateKey{D: d}, nil
}

// PublicOf implements public_of(params, id): the identity's public G2
// point, hash_to_point(id, params), with no dependency on any secret.
func PublicOf(params *Params, id []byte) (provider.G2, error) {
	return hash.ToPoint(params.Curve, params.Profile, id)
}
