package spseq

import (
	"encoding/binary"
	"fmt"
	"io"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// PublicKey holds a length-l vector X_1, ..., X_l in G2, with X_i = g2^x_i
// for the corresponding SigningKey scalar x_i.
type PublicKey struct {
	capacity int
	points   []bls12381.G2Affine
}

// DerivePublicKey computes the PublicKey for a SigningKey: a pure function
// of sk's scalar vector.
func DerivePublicKey(sk *SigningKey) *PublicKey {
	_, g2 := generators()

	points := make([]bls12381.G2Affine, sk.capacity)
	for i, x := range sk.scalars {
		points[i] = g2ScalarMul(&g2, x)
	}

	return &PublicKey{capacity: sk.capacity, points: points}
}

// Capacity returns l, the number of messages this key can verify signatures
// over.
func (pk *PublicKey) Capacity() int {
	return pk.capacity
}

// Equal reports whether two public keys hold the same point vector.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	if pk.capacity != other.capacity {
		return false
	}
	for i := range pk.points {
		if !pk.points[i].Equal(&other.points[i]) {
			return false
		}
	}
	return true
}

// Encode serializes the public key as:
//
//	+---------+---------+---------+-----+---------+
//	|  l (8B) |   X_1   |   X_2   | ... |   X_l   |
//	| BE uint64 | G2CompressedSize bytes each |
//	+---------+---------+---------+-----+---------+
//
// Total length is 8 + l*G2CompressedSize bytes. Each point is encoded in
// canonical compressed form.
func (pk *PublicKey) Encode() ([]byte, error) {
	out := make([]byte, 8, 8+pk.capacity*G2CompressedSize)
	binary.BigEndian.PutUint64(out, uint64(pk.capacity))

	for _, point := range pk.points {
		out = append(out, point.Marshal()...)
	}

	return out, nil
}

// EncodeTo writes the same wire format as Encode directly to w, returning
// ErrIO if the writer fails.
func (pk *PublicKey) EncodeTo(w io.Writer) error {
	data, err := pk.Encode()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

// DecodePublicKey parses a PublicKey from the wire format produced by
// Encode. It reads the 8-byte length header, then requires exactly
// l*G2CompressedSize further bytes -- neither more nor fewer.
func DecodePublicKey(data []byte) (*PublicKey, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("%w: truncated header", ErrInvalidEncoding)
	}

	capacity := int(binary.BigEndian.Uint64(data[:8]))
	if capacity < 1 {
		return nil, fmt.Errorf("%w: non-positive capacity %d", ErrInvalidEncoding, capacity)
	}

	rest := data[8:]
	wantLen := capacity * G2CompressedSize
	if len(rest) != wantLen {
		return nil, fmt.Errorf("%w: expected %d bytes of point data, got %d", ErrUnmatchedCapacity, wantLen, len(rest))
	}

	points := make([]bls12381.G2Affine, capacity)
	for i := 0; i < capacity; i++ {
		chunk := rest[i*G2CompressedSize : (i+1)*G2CompressedSize]
		if err := points[i].Unmarshal(chunk); err != nil {
			return nil, fmt.Errorf("%w: point %d: %v", ErrInvalidEncoding, i, err)
		}
	}

	return &PublicKey{capacity: capacity, points: points}, nil
}
