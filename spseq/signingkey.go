package spseq

import (
	"fmt"
	"io"
	"math/big"
)

// SigningKey holds a length-l vector of non-zero scalars x_1, ..., x_l over
// Fr. It exclusively owns its scalar vector; Destroy overwrites every
// scalar with zero before the key is dropped.
type SigningKey struct {
	capacity int
	scalars  []*big.Int
}

// GenerateSigningKey samples a fresh SigningKey of the given capacity using
// rng. Each scalar is drawn independently and resampled until non-zero;
// capacity must be at least 1.
//
// A naive implementation that samples one scalar and repeats it l times
// (seen in one retrieved source variant of this scheme) is a bug this
// implementation does not reproduce — see DESIGN.md's Open Question #3.
func GenerateSigningKey(capacity int, rng io.Reader) (*SigningKey, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("spseq: signature capacity must be at least 1, got %d", capacity)
	}

	scalars := make([]*big.Int, capacity)
	for i := range scalars {
		x, err := sampleNonZeroScalar(rng)
		if err != nil {
			return nil, fmt.Errorf("spseq: failed to sample secret scalar %d: %w", i, err)
		}
		scalars[i] = x
	}

	return &SigningKey{capacity: capacity, scalars: scalars}, nil
}

// ImportSigningKey builds a SigningKey from a caller-provided scalar vector.
// It fails with ErrInvalidSecretKeyVector if the vector is empty or contains
// a zero element. The key takes ownership of a copy of scalars; the caller's
// slice is left untouched.
func ImportSigningKey(scalars []*big.Int) (*SigningKey, error) {
	if len(scalars) == 0 {
		return nil, ErrInvalidSecretKeyVector
	}
	owned := make([]*big.Int, len(scalars))
	for i, x := range scalars {
		if x == nil || x.Sign() == 0 {
			return nil, ErrInvalidSecretKeyVector
		}
		owned[i] = new(big.Int).Set(x)
	}
	return &SigningKey{capacity: len(owned), scalars: owned}, nil
}

// Capacity returns l, the length of the message vectors this key can sign.
func (sk *SigningKey) Capacity() int {
	return sk.capacity
}

// Scalars returns a read-only view of the key's scalar vector. Modifying the
// returned slice's elements is undefined behavior; callers that need their
// own copy should clone it explicitly.
func (sk *SigningKey) Scalars() []*big.Int {
	return sk.scalars
}

// Equal reports whether two signing keys hold the same scalar vector. It is
// exposed for tests exercising the owner's own view of the key; it is not
// meant for general use since comparing secret key material outside tests
// has no legitimate purpose.
func (sk *SigningKey) Equal(other *SigningKey) bool {
	if sk.capacity != other.capacity {
		return false
	}
	for i := range sk.scalars {
		if sk.scalars[i].Cmp(other.scalars[i]) != 0 {
			return false
		}
	}
	return true
}

// Destroy zeroizes every secret scalar in the key. Callers must call this
// once they are done with a SigningKey; Go has no destructors, so
// zeroization on "drop" has to be explicit.
func (sk *SigningKey) Destroy() {
	zeroizeScalars(sk.scalars)
}
