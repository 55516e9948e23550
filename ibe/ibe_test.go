package ibe

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/bf5091/ibe/ibeerr"
)

// TestRoundTrip encrypts under Alice's public key, decrypts with
// Alice's extracted private key, and expects the plaintext back
// exactly.
func TestRoundTrip(t *testing.T) {
	for level := 1; level <= 5; level++ {
		level := level
		t.Run("", func(t *testing.T) {
			params, secret, err := Setup(level)
			if err != nil {
				t.Fatalf("Setup(%d) failed: %v", level, err)
			}

			id := []byte("alice@example.com")
			qid, err := PublicOf(params, id)
			if err != nil {
				t.Fatalf("PublicOf failed: %v", err)
			}
			key, err := Extract(params, secret, id)
			if err != nil {
				t.Fatalf("Extract failed: %v", err)
			}

			plaintext := make([]byte, 32)
			if _, err := rand.Read(plaintext); err != nil {
				t.Fatalf("rand.Read failed: %v", err)
			}

			ct, err := Encrypt(params, qid, plaintext)
			if err != nil {
				t.Fatalf("Encrypt failed: %v", err)
			}
			got, err := Decrypt(params, key, ct)
			if err != nil {
				t.Fatalf("Decrypt failed: %v", err)
			}
			if !bytes.Equal(got, plaintext) {
				t.Fatalf("round trip mismatch: got %x want %x", got, plaintext)
			}
		})
	}
}

// TestWrongRecipientFails checks that decrypting with another
// identity's private key fails validation.
func TestWrongRecipientFails(t *testing.T) {
	params, secret, err := Setup(3)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	aliceID := []byte("alice@example.com")
	bobID := []byte("bob@example.com")

	qidAlice, err := PublicOf(params, aliceID)
	if err != nil {
		t.Fatalf("PublicOf failed: %v", err)
	}
	bobKey, err := Extract(params, secret, bobID)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	ct, err := Encrypt(params, qidAlice, []byte("secret payload"))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	if _, err := Decrypt(params, bobKey, ct); !errors.Is(err, ibeerr.ErrDecryptionInvalid) {
		t.Fatalf("expected ErrDecryptionInvalid, got %v", err)
	}
}

// TestTamperedCiphertextFails checks that flipping a byte of V fails
// validation with overwhelming probability.
func TestTamperedCiphertextFails(t *testing.T) {
	params, secret, err := Setup(3)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	id := []byte("alice@example.com")
	qid, err := PublicOf(params, id)
	if err != nil {
		t.Fatalf("PublicOf failed: %v", err)
	}
	key, err := Extract(params, secret, id)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	ct, err := Encrypt(params, qid, []byte("tamper me"))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	ct.V[0] ^= 0xFF

	if _, err := Decrypt(params, key, ct); !errors.Is(err, ibeerr.ErrDecryptionInvalid) {
		t.Fatalf("expected ErrDecryptionInvalid after tampering V, got %v", err)
	}
}

// TestSetupInvariant checks that P_pub = [s]P and Q matches the
// provider's subgroup order.
func TestSetupInvariant(t *testing.T) {
	params, secret, err := Setup(3)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	expected := params.Curve.ScalarMulG1(params.P, secret.S)
	if !params.Curve.EqualG1(expected, params.PPub) {
		t.Fatalf("PPub != [s]P")
	}
	if params.Q.Cmp(params.Curve.Order()) != 0 {
		t.Fatalf("Q != provider order")
	}
}

// TestInvalidLevel checks that levels outside 1..5 fail setup.
func TestInvalidLevel(t *testing.T) {
	for _, level := range []int{0, 6, -1} {
		if _, _, err := Setup(level); !errors.Is(err, ibeerr.ErrInvalidLevel) {
			t.Fatalf("Setup(%d): expected ErrInvalidLevel, got %v", level, err)
		}
	}
}

// TestEmptyPlaintext exercises the |m|=0 edge case: no payload to
// authenticate beyond the FO check itself still round-trips.
func TestEmptyPlaintext(t *testing.T) {
	params, secret, err := Setup(3)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	id := []byte("empty@example.com")
	qid, err := PublicOf(params, id)
	if err != nil {
		t.Fatalf("PublicOf failed: %v", err)
	}
	key, err := Extract(params, secret, id)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	ct, err := Encrypt(params, qid, nil)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	got, err := Decrypt(params, key, ct)
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty plaintext, got %x", got)
	}
}
