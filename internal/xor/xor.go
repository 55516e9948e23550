// Package xor provides the byte-mask helper the BF-IBE engine uses to
// combine a hash-derived keystream with plaintext/ciphertext bytes.
// GoPairingBasedCryptography's utils package carries a sibling Xor
// helper of the same shape; this is that helper, scoped to this
// module's own utility tree.
package xor

// Bytes XORs a and b up to the shorter of the two lengths, matching
// the length of the shorter input. Every BF-IBE call site passes
// equal-length operands (the keystream is always sized to match).
func Bytes(a, b []byte) []byte {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = a[i] ^ b[i]
	}
	return out
}
