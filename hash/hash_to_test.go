package hash

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/bf5091/ibe/profile"
)

func TestToRangeDeterministicAndInRange(t *testing.T) {
	p, err := profile.Lookup(3)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	q := big.NewInt(0)
	q.SetString("21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)

	a := ToRange(p, []byte("rho||t"), q)
	b := ToRange(p, []byte("rho||t"), q)
	if a.Cmp(b) != 0 {
		t.Fatalf("ToRange not deterministic: %v != %v", a, b)
	}
	if a.Sign() < 0 || a.Cmp(q) >= 0 {
		t.Fatalf("ToRange out of [0,q): %v", a)
	}

	c := ToRange(p, []byte("different"), q)
	if a.Cmp(c) == 0 {
		t.Fatalf("ToRange collided on distinct inputs (statistically implausible)")
	}
}

func TestToBytesLengthAndDeterminism(t *testing.T) {
	p, err := profile.Lookup(1)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	for _, n := range []int{0, 1, p.HashLen - 1, p.HashLen, p.HashLen + 1, 3 * p.HashLen, 1024} {
		out := ToBytes(p, []byte("seed"), n)
		if len(out) != n {
			t.Fatalf("ToBytes(%d) returned %d bytes", n, len(out))
		}
		again := ToBytes(p, []byte("seed"), n)
		if !bytes.Equal(out, again) {
			t.Fatalf("ToBytes(%d) not deterministic", n)
		}
	}
}

func TestToBytesDifferentSeeds(t *testing.T) {
	p, _ := profile.Lookup(3)
	a := ToBytes(p, []byte("seed-a"), 64)
	b := ToBytes(p, []byte("seed-b"), 64)
	if bytes.Equal(a, b) {
		t.Fatalf("ToBytes produced identical streams for distinct seeds")
	}
}
