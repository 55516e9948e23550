package serialize

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"

	"github.com/bf5091/ibe/ibe"
	"github.com/bf5091/ibe/ibeerr"
	"github.com/bf5091/ibe/provider"
)

// messageFormatVersion is bumped whenever the byte layout changes.
// Version 1 fixes the length field to a portable 64-bit little-endian
// width rather than a host-width/host-order integer.
const messageFormatVersion = 1

// ToBytes implements the ciphertext byte format:
// length (8 bytes, little-endian) || version (1 byte) ||
// security_level (1 byte) || U || V || W.
func ToBytes(curve *provider.Curve, level int, m *ibe.Message) []byte {
	u := curve.MarshalG1(m.U)
	out := make([]byte, 0, 8+1+1+len(u)+len(m.V)+len(m.W))

	var lengthField [8]byte
	binary.LittleEndian.PutUint64(lengthField[:], uint64(m.Length))
	out = append(out, lengthField[:]...)
	out = append(out, messageFormatVersion)
	out = append(out, byte(level))
	out = append(out, u...)
	out = append(out, m.V...)
	out = append(out, m.W...)
	return out
}

// FromBytes parses the ciphertext byte format. level is the
// receiver's params.level; if it does not match the encoded
// security_level, decoding fails with ErrShardMismatch.
func FromBytes(curve *provider.Curve, hashLen, level int, data []byte) (*ibe.Message, error) {
	const headerLen = 8 + 1 + 1
	if len(data) < headerLen {
		return nil, fmt.Errorf("ciphertext shorter than header: %w", ibeerr.ErrParse)
	}
	length := binary.LittleEndian.Uint64(data[0:8])
	version := data[8]
	level2 := data[9]
	if version != messageFormatVersion {
		return nil, fmt.Errorf("unsupported format version %d: %w", version, ibeerr.ErrParse)
	}
	if int(level2) != level {
		return nil, fmt.Errorf("security level %d != %d: %w", level2, level, ibeerr.ErrShardMismatch)
	}

	uLen := curve.G1ByteLen()
	want := headerLen + uLen + hashLen + int(length)
	if len(data) != want {
		return nil, fmt.Errorf("ciphertext length mismatch: got %d bytes, want %d: %w", len(data), want, ibeerr.ErrParse)
	}

	offset := headerLen
	uBytes := data[offset : offset+uLen]
	offset += uLen
	v := append([]byte{}, data[offset:offset+hashLen]...)
	offset += hashLen
	w := append([]byte{}, data[offset:offset+int(length)]...)

	u, err := curve.UnmarshalG1(uBytes)
	if err != nil {
		return nil, err
	}

	return &ibe.Message{
		Length: int(length),
		U:      u,
		V:      v,
		W:      w,
	}, nil
}

// ToText implements the ciphertext text format: unwrapped base-64 of
// the byte format.
func ToText(curve *provider.Curve, level int, m *ibe.Message) string {
	return base64.StdEncoding.EncodeToString(ToBytes(curve, level, m))
}

// FromText parses the ciphertext text format.
func FromText(curve *provider.Curve, hashLen, level int, text string) (*ibe.Message, error) {
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("invalid base64: %w: %v", ibeerr.ErrParse, err)
	}
	return FromBytes(curve, hashLen, level, data)
}
