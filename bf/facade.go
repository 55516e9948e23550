// Package bf is the stable, string/byte-oriented facade over the
// ibe/shard/serialize packages, meant to be driven directly by CLI
// adapters (cmd/genibe, cmd/genprivatekey, cmd/benchmark) or a future
// foreign-function bridge. It owns no global state and does not leak
// intermediate pointers the way a naive format_system_params would.
package bf

import (
	"math/big"
	"strings"

	"github.com/bf5091/ibe/ibe"
	"github.com/bf5091/ibe/serialize"
	"github.com/bf5091/ibe/shard"
)

// System bundles the public parameters and master secret returned by
// GenerateSystem, the shape a PKG operator actually holds.
type System struct {
	Params *ibe.Params
	Secret *ibe.Secret
}

// GenerateSystem runs setup(level) and returns the resulting PKG.
func GenerateSystem(level int) (*System, error) {
	params, secret, err := ibe.Setup(level)
	if err != nil {
		return nil, err
	}
	return &System{Params: params, Secret: secret}, nil
}

// ExtractKey derives the private key for identifier under this
// system's master secret, returning its provider-decimal text form.
func (s *System) ExtractKey(identifier string) (string, error) {
	key, err := ibe.Extract(s.Params, s.Secret, []byte(identifier))
	if err != nil {
		return "", err
	}
	return serialize.FormatPrivateKey(s.Params.Curve, key), nil
}

// Encrypt encrypts plaintext under identifier, returning the base-64
// ciphertext text format.
func Encrypt(params *ibe.Params, identifier string, plaintext []byte) (string, error) {
	qid, err := ibe.PublicOf(params, []byte(identifier))
	if err != nil {
		return "", err
	}
	ct, err := ibe.Encrypt(params, qid, plaintext)
	if err != nil {
		return "", err
	}
	return serialize.ToText(params.Curve, params.Level(), ct), nil
}

// Decrypt decrypts a base-64 ciphertext using privateKeyText, the
// provider-decimal private key returned by ExtractKey.
func Decrypt(params *ibe.Params, privateKeyText string, ciphertext string) ([]byte, error) {
	key, err := serialize.ParsePrivateKey(params.Curve, privateKeyText)
	if err != nil {
		return nil, err
	}
	ct, err := serialize.FromText(params.Curve, params.Profile.HashLen, params.Level(), ciphertext)
	if err != nil {
		return nil, err
	}
	return ibe.Decrypt(params, key, ct)
}

// FormatParams renders params in the public-parameter text format.
func FormatParams(params *ibe.Params) string { return serialize.FormatParams(params) }

// ParseParams parses the public-parameter text format.
func ParseParams(text string) (*ibe.Params, error) {
	return serialize.ParseParams(strings.NewReader(text))
}

// FormatSecret renders a master secret in base-36 text form.
func FormatSecret(secret *ibe.Secret) string { return serialize.FormatSecret(secret) }

// ParseSecret parses a base-36 master secret.
func ParseSecret(text string) (*ibe.Secret, error) { return serialize.ParseSecret(text) }

// AddParams composes two PKGs' public parameters into a joint PKG.
func AddParams(a, b *ibe.Params) (*ibe.Params, error) { return shard.AddPublic(a, b) }

// AddSecrets composes two PKGs' master secrets modulo q, given as
// base-36 text.
func AddSecrets(q *big.Int, s1Text, s2Text string) (string, error) {
	s1, err := serialize.ParseSecret(s1Text)
	if err != nil {
		return "", err
	}
	s2, err := serialize.ParseSecret(s2Text)
	if err != nil {
		return "", err
	}
	sum := shard.AddSecret(q, s1.S, s2.S)
	return sum.Text(36), nil
}
