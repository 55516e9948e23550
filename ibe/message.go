package ibe

import "github.com/bf5091/ibe/provider"

// Message is a BF-IBE ciphertext. Length is the plaintext length in
// bytes; U is a G1 element; V has exactly Profile.HashLen bytes; W has
// exactly Length bytes.
type Message struct {
	Length int
	U      provider.G1
	V      []byte
	W      []byte
}

// zero scrubs a byte slice in place. Used on the Fujisaki-Okamoto
// failure path of Decrypt so a caller cannot read a dangling
// plaintext buffer.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
