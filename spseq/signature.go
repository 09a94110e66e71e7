package spseq

import (
	"fmt"
	"io"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Signature is an SPS-EQ signature over a message in G1^l: the triple
// (Z, Y, Y') with Z, Y in G1 and Y' in G2.
type Signature struct {
	Z  bls12381.G1Affine
	Y  bls12381.G1Affine
	Yp bls12381.G2Affine
}

// Sign produces a signature on message under sk, using rng to draw the
// per-signature randomizer y. message must have exactly sk.Capacity()
// elements; an element may be the point at infinity, in which case Z comes
// out as the identity too -- trivially distinguishable, but not rejected.
//
//	Z  = (prod_i M_i^x_i)^y
//	Y  = g1^(1/y)
//	Y' = g2^(1/y)
func (sk *SigningKey) Sign(message []bls12381.G1Affine, rng io.Reader) (*Signature, error) {
	if len(message) != sk.capacity {
		return nil, ErrUnmatchedCapacity
	}

	y, err := sampleNonZeroScalar(rng)
	if err != nil {
		return nil, fmt.Errorf("spseq: failed to sample signing randomizer: %w", err)
	}
	defer zeroizeScalar(y)

	yInv := scalarInverse(y)
	defer zeroizeScalar(yInv)

	acc, err := multiScalarMulG1(message, sk.scalars)
	if err != nil {
		return nil, err
	}
	acc.ScalarMultiplication(&acc, y)

	g1, g2 := generators()

	return &Signature{
		Z:  g1JacToAffine(&acc),
		Y:  g1ScalarMul(&g1, yInv),
		Yp: g2ScalarMul(&g2, yInv),
	}, nil
}

// Verify checks sig against message under pk. It returns nil if the
// signature is valid, ErrUnmatchedCapacity if len(message) differs from
// pk.Capacity(), and ErrInvalidSignature if a pairing check fails.
//
// Verification checks two pairing equations:
//
//	e(Z, Y')   == prod_i e(M_i, X_i)
//	e(Y, g2)   == e(g1, Y')
func (pk *PublicKey) Verify(message []bls12381.G1Affine, sig *Signature) error {
	if len(message) != pk.capacity {
		return ErrUnmatchedCapacity
	}
	if sig.Y.IsInfinity() || sig.Yp.IsInfinity() {
		return ErrInvalidSignature
	}

	g1, g2 := generators()

	lhs1, err := pair([]bls12381.G1Affine{sig.Z}, []bls12381.G2Affine{sig.Yp})
	if err != nil {
		return err
	}
	rhs1, err := pair(message, pk.points)
	if err != nil {
		return err
	}
	if !lhs1.Equal(&rhs1) {
		return ErrInvalidSignature
	}

	lhs2, err := pair([]bls12381.G1Affine{sig.Y}, []bls12381.G2Affine{g2})
	if err != nil {
		return err
	}
	rhs2, err := pair([]bls12381.G1Affine{g1}, []bls12381.G2Affine{sig.Yp})
	if err != nil {
		return err
	}
	if !lhs2.Equal(&rhs2) {
		return ErrInvalidSignature
	}

	return nil
}

// Equal reports whether two signatures hold the same three components.
func (sig *Signature) Equal(other *Signature) bool {
	return sig.Z.Equal(&other.Z) && sig.Y.Equal(&other.Y) && sig.Yp.Equal(&other.Yp)
}

