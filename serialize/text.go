// Package serialize implements the text and binary wire formats for
// public parameters, private keys, master secrets, and ciphertexts.
// It is grounded on GoPairingBasedCryptography's own serialization
// package, generalized from Marshal-to-bytes helpers to line-oriented
// and binary wire formats.
//
// Group elements are encoded in "provider decimal form": the canonical
// fixed-width Marshal() bytes reinterpreted as a base-10 big integer.
// Master secrets use base 36.
package serialize

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/bf5091/ibe/ibe"
	"github.com/bf5091/ibe/ibeerr"
	"github.com/bf5091/ibe/profile"
	"github.com/bf5091/ibe/provider"
)

// decimalEncode renders fixed-width bytes as a base-10 integer string.
func decimalEncode(b []byte) string {
	return new(big.Int).SetBytes(b).String()
}

// decimalDecode parses a base-10 integer string back to fixed-width
// bytes of the given length, left-padding with zero bytes.
func decimalDecode(s string, width int) ([]byte, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, fmt.Errorf("not a base-10 integer: %q: %w", s, ibeerr.ErrParse)
	}
	raw := n.Bytes()
	if len(raw) > width {
		return nil, fmt.Errorf("value too large for %d-byte element: %w", width, ibeerr.ErrParse)
	}
	out := make([]byte, width)
	copy(out[width-len(raw):], raw)
	return out, nil
}

// EncodeG1 renders a G1 element in provider decimal form.
func EncodeG1(curve *provider.Curve, p provider.G1) string {
	return decimalEncode(curve.MarshalG1(p))
}

// DecodeG1 parses a G1 element from provider decimal form.
func DecodeG1(curve *provider.Curve, s string) (provider.G1, error) {
	b, err := decimalDecode(s, curve.G1ByteLen())
	if err != nil {
		return provider.G1{}, err
	}
	return curve.UnmarshalG1(b)
}

// EncodeG2 renders a G2 element in provider decimal form.
func EncodeG2(curve *provider.Curve, p provider.G2) string {
	return decimalEncode(curve.MarshalG2(p))
}

// DecodeG2 parses a G2 element from provider decimal form.
func DecodeG2(curve *provider.Curve, s string) (provider.G2, error) {
	b, err := decimalDecode(s, curve.G2ByteLen())
	if err != nil {
		return provider.G2{}, err
	}
	return curve.UnmarshalG2(b)
}

// FormatParams writes the public-parameter text format:
//
//	security <level>\n
//	<P in provider decimal form>\n
//	<P_pub in provider decimal form>\n
//	<q in base-36>\n
//	<curve descriptor in provider text form — multi-line, to EOF>
func FormatParams(p *ibe.Params) string {
	var b strings.Builder
	fmt.Fprintf(&b, "security %d\n", p.Profile.Level)
	fmt.Fprintf(&b, "%s\n", EncodeG1(p.Curve, p.P))
	fmt.Fprintf(&b, "%s\n", EncodeG1(p.Curve, p.PPub))
	fmt.Fprintf(&b, "%s\n", p.Q.Text(36))
	b.Write(p.Descriptor.Bytes())
	return b.String()
}

// ParseParams reads the public-parameter text format, consuming the
// security header, the two element lines, the q token, then the
// remainder of r as the curve descriptor — via a streaming read to
// EOF, not file-length probing, so non-seekable inputs (pipes) parse
// correctly.
func ParseParams(r io.Reader) (*ibe.Params, error) {
	br := bufio.NewReader(r)

	securityLine, err := readLine(br)
	if err != nil {
		return nil, err
	}
	var level int
	if _, err := fmt.Sscanf(securityLine, "security %d", &level); err != nil {
		return nil, fmt.Errorf("malformed security header %q: %w", securityLine, ibeerr.ErrParse)
	}

	curve, _, err := provider.NewCurve(0, 0)
	if err != nil {
		return nil, err
	}

	pLine, err := readLine(br)
	if err != nil {
		return nil, err
	}
	p, err := DecodeG1(curve, pLine)
	if err != nil {
		return nil, err
	}

	pPubLine, err := readLine(br)
	if err != nil {
		return nil, err
	}
	pPub, err := DecodeG1(curve, pPubLine)
	if err != nil {
		return nil, err
	}

	qToken, err := readToken(br)
	if err != nil {
		return nil, err
	}
	q, ok := new(big.Int).SetString(qToken, 36)
	if !ok {
		return nil, fmt.Errorf("malformed q token %q: %w", qToken, ibeerr.ErrParse)
	}

	rest, err := io.ReadAll(br)
	if err != nil {
		return nil, fmt.Errorf("reading curve descriptor: %w: %v", ibeerr.ErrIO, err)
	}

	profileForLevel, err := profile.Lookup(level)
	if err != nil {
		return nil, err
	}

	parsed := &ibe.Params{
		Profile:    profileForLevel,
		Descriptor: parseDescriptor(rest),
		Curve:      curve,
		Q:          q,
		P:          p,
		PPub:       pPub,
	}
	return parsed, nil
}

// readLine reads a single newline-terminated line, trimming the
// trailing \n (and \r, if present).
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("unexpected EOF: %w", ibeerr.ErrParse)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readToken reads up to (and consuming) the next whitespace rune.
func readToken(br *bufio.Reader) (string, error) {
	var b strings.Builder
	for {
		c, _, err := br.ReadRune()
		if err != nil {
			if b.Len() == 0 {
				return "", fmt.Errorf("unexpected EOF: %w", ibeerr.ErrParse)
			}
			return b.String(), nil
		}
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			if b.Len() == 0 {
				continue
			}
			return b.String(), nil
		}
		b.WriteRune(c)
	}
}

func parseDescriptor(b []byte) provider.Descriptor {
	parts := bytes.SplitN(b, []byte(":"), 3)
	d := provider.Descriptor{}
	if len(parts) > 0 {
		d.Name = string(parts[0])
	}
	if len(parts) > 1 {
		d.RBits, _ = strconv.Atoi(string(parts[1]))
	}
	if len(parts) > 2 {
		d.QBits, _ = strconv.Atoi(strings.TrimSpace(string(parts[2])))
	}
	return d
}

// FormatSecret renders a master secret in base-36 text form.
func FormatSecret(s *ibe.Secret) string {
	return s.S.Text(36)
}

// ParseSecret parses a base-36 master secret.
func ParseSecret(text string) (*ibe.Secret, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(text), 36)
	if !ok {
		return nil, fmt.Errorf("malformed secret %q: %w", text, ibeerr.ErrParse)
	}
	return &ibe.Secret{S: n}, nil
}

// FormatPrivateKey renders a private key as a single provider-decimal
// G2 element.
func FormatPrivateKey(curve *provider.Curve, key *ibe.PrivateKey) string {
	return EncodeG2(curve, key.D)
}

// ParsePrivateKey parses a provider-decimal G2 element (radix 10).
func ParsePrivateKey(curve *provider.Curve, text string) (*ibe.PrivateKey, error) {
	d, err := DecodeG2(curve, strings.TrimSpace(text))
	if err != nil {
		return nil, err
	}
	return &ibe.PrivateKey{D: d}, nil
}
