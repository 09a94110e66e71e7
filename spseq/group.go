package spseq

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Order is the prime order r of the scalar field Fr, and of the groups G1,
// G2, and GT, for BLS12-381.
var Order, _ = new(big.Int).SetString(
	"52435875175126190479447740508185965837690552500527637822603658699938581184513", 10,
)

// G2CompressedSize is the canonical compressed encoding width (in bytes) of
// a G2 point under the BLS12-381 binding. PublicKey.Encode derives its wire
// format from this constant rather than a hardcoded byte count.
const G2CompressedSize = bls12381.SizeOfG2AffineCompressed

// generators returns the fixed generators g1 of G1 and g2 of G2.
func generators() (g1 bls12381.G1Affine, g2 bls12381.G2Affine) {
	_, _, g1, g2 = bls12381.Generators()
	return g1, g2
}

// pair computes the Type-III pairing e: G1 x G2 -> GT for the given point
// vectors, accumulating e(a_i, b_i) over i via a single multi-pairing call.
func pair(a []bls12381.G1Affine, b []bls12381.G2Affine) (bls12381.GT, error) {
	res, err := bls12381.Pair(a, b)
	if err != nil {
		return bls12381.GT{}, fmt.Errorf("spseq: pairing failed: %w", err)
	}
	return res, nil
}

// randomScalar samples a scalar uniformly from [0, Order) using the
// caller-supplied reader. It never retries for zero; callers that need a
// non-zero scalar should use sampleNonZeroScalar.
func randomScalar(rng io.Reader) (*big.Int, error) {
	if rng == nil {
		return nil, fmt.Errorf("spseq: nil randomness source")
	}
	n, err := rand.Int(rng, Order)
	if err != nil {
		return nil, fmt.Errorf("spseq: failed to sample scalar: %w", err)
	}
	return n, nil
}

// sampleNonZeroScalar draws scalars from rng, resampling for as long as the
// draw is zero, and returns the first non-zero result. This is the "resample
// until non-zero" semantics spec.md mandates (see DESIGN.md's discussion of
// the inverted zero-test found in one retrieved source variant).
func sampleNonZeroScalar(rng io.Reader) (*big.Int, error) {
	for {
		n, err := randomScalar(rng)
		if err != nil {
			return nil, err
		}
		if n.Sign() != 0 {
			return n, nil
		}
	}
}

// scalarInverse computes the modular inverse of a non-zero scalar modulo
// Order. a must be non-zero; this is enforced by construction everywhere it
// is called (SigningKey scalars, and the per-call signing/re-randomization
// randomness, are always sampled non-zero).
func scalarInverse(a *big.Int) *big.Int {
	return new(big.Int).ModInverse(a, Order)
}

// g1JacToAffine converts a G1 point from Jacobian to affine coordinates.
func g1JacToAffine(p *bls12381.G1Jac) bls12381.G1Affine {
	var out bls12381.G1Affine
	out.FromJacobian(p)
	return out
}

// g2JacToAffine converts a G2 point from Jacobian to affine coordinates.
func g2JacToAffine(p *bls12381.G2Jac) bls12381.G2Affine {
	var out bls12381.G2Affine
	out.FromJacobian(p)
	return out
}

// g1ScalarMul computes s * p for a G1 point in affine coordinates.
func g1ScalarMul(p *bls12381.G1Affine, s *big.Int) bls12381.G1Affine {
	var jac bls12381.G1Jac
	jac.FromAffine(p)
	jac.ScalarMultiplication(&jac, s)
	return g1JacToAffine(&jac)
}

// g2ScalarMul computes s * p for a G2 point in affine coordinates.
func g2ScalarMul(p *bls12381.G2Affine, s *big.Int) bls12381.G2Affine {
	var jac bls12381.G2Jac
	jac.FromAffine(p)
	jac.ScalarMultiplication(&jac, s)
	return g2JacToAffine(&jac)
}
