package serialize

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/bf5091/ibe/ibe"
	"github.com/bf5091/ibe/ibeerr"
)

func TestParamsRoundTrip(t *testing.T) {
	params, _, err := ibe.Setup(3)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	text := FormatParams(params)
	parsed, err := ParseParams(strings.NewReader(text))
	if err != nil {
		t.Fatalf("ParseParams failed: %v", err)
	}

	if parsed.Profile.Level != params.Profile.Level {
		t.Fatalf("level mismatch: got %d want %d", parsed.Profile.Level, params.Profile.Level)
	}
	if parsed.Q.Cmp(params.Q) != 0 {
		t.Fatalf("Q mismatch")
	}
	if !parsed.Curve.EqualG1(parsed.P, params.P) {
		t.Fatalf("P mismatch")
	}
	if !parsed.Curve.EqualG1(parsed.PPub, params.PPub) {
		t.Fatalf("PPub mismatch")
	}
	if !parsed.Descriptor.Equal(params.Descriptor) {
		t.Fatalf("descriptor mismatch: got %+v want %+v", parsed.Descriptor, params.Descriptor)
	}
}

func TestSecretRoundTrip(t *testing.T) {
	_, secret, err := ibe.Setup(3)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	text := FormatSecret(secret)
	parsed, err := ParseSecret(text)
	if err != nil {
		t.Fatalf("ParseSecret failed: %v", err)
	}
	if parsed.S.Cmp(secret.S) != 0 {
		t.Fatalf("secret mismatch: got %v want %v", parsed.S, secret.S)
	}
}

func TestParseSecretRejectsGarbage(t *testing.T) {
	if _, err := ParseSecret("not-a-number!!"); !errors.Is(err, ibeerr.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestCiphertextBytesRoundTrip(t *testing.T) {
	params, secret, err := ibe.Setup(3)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	id := []byte("dave@example.com")
	qid, err := ibe.PublicOf(params, id)
	if err != nil {
		t.Fatalf("PublicOf failed: %v", err)
	}
	plaintext := []byte("ciphertext wire format check")
	ct, err := ibe.Encrypt(params, qid, plaintext)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	wire := ToBytes(params.Curve, params.Level(), ct)
	parsed, err := FromBytes(params.Curve, params.Profile.HashLen, params.Level(), wire)
	if err != nil {
		t.Fatalf("FromBytes failed: %v", err)
	}

	key, err := ibe.Extract(params, secret, id)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	got, err := ibe.Decrypt(params, key, parsed)
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("round trip mismatch: got %x want %x", got, plaintext)
	}
}

func TestCiphertextTextRoundTrip(t *testing.T) {
	params, _, err := ibe.Setup(1)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	qid, err := ibe.PublicOf(params, []byte("eve@example.com"))
	if err != nil {
		t.Fatalf("PublicOf failed: %v", err)
	}
	ct, err := ibe.Encrypt(params, qid, []byte("text format check"))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	text := ToText(params.Curve, params.Level(), ct)
	parsed, err := FromText(params.Curve, params.Profile.HashLen, params.Level(), text)
	if err != nil {
		t.Fatalf("FromText failed: %v", err)
	}
	if !params.Curve.EqualG1(parsed.U, ct.U) {
		t.Fatalf("U mismatch after text round trip")
	}
	if !bytes.Equal(parsed.V, ct.V) || !bytes.Equal(parsed.W, ct.W) {
		t.Fatalf("V/W mismatch after text round trip")
	}
}

func TestCiphertextRejectsLevelMismatch(t *testing.T) {
	params, _, err := ibe.Setup(2)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	qid, err := ibe.PublicOf(params, []byte("frank@example.com"))
	if err != nil {
		t.Fatalf("PublicOf failed: %v", err)
	}
	ct, err := ibe.Encrypt(params, qid, []byte("level check"))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	wire := ToBytes(params.Curve, params.Level(), ct)

	if _, err := FromBytes(params.Curve, params.Profile.HashLen, 3, wire); !errors.Is(err, ibeerr.ErrShardMismatch) {
		t.Fatalf("expected ErrShardMismatch, got %v", err)
	}
}

func TestCiphertextRejectsTruncatedLength(t *testing.T) {
	params, _, err := ibe.Setup(1)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	qid, err := ibe.PublicOf(params, []byte("grace@example.com"))
	if err != nil {
		t.Fatalf("PublicOf failed: %v", err)
	}
	ct, err := ibe.Encrypt(params, qid, []byte("truncation check"))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	wire := ToBytes(params.Curve, params.Level(), ct)
	wire = wire[:len(wire)-1]

	if _, err := FromBytes(params.Curve, params.Profile.HashLen, params.Level(), wire); !errors.Is(err, ibeerr.ErrParse) {
		t.Fatalf("expected ErrParse on truncated ciphertext, got %v", err)
	}
}
