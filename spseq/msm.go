package spseq

import (
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// multiScalarMulG1 computes sum(scalars[i] * points[i]) in G1. gnark-crypto
// does not offer a direct multi-scalar-mult entry point for ad hoc
// (point, scalar) pairs of this shape, so accumulation is done directly in
// Jacobian coordinates, batching to keep the working set cache-friendly.
func multiScalarMulG1(points []bls12381.G1Affine, scalars []*big.Int) (bls12381.G1Jac, error) {
	if len(points) != len(scalars) {
		return bls12381.G1Jac{}, fmt.Errorf("spseq: mismatched points/scalars length: %d != %d", len(points), len(scalars))
	}

	var result bls12381.G1Jac
	result.X.SetOne()
	result.Y.SetOne()
	result.Z.SetZero() // identity element in Jacobian coordinates

	const batchSize = 8
	n := len(points)

	accumulate := func(i int) {
		if scalars[i].Sign() == 0 || points[i].IsInfinity() {
			return
		}
		tmp := defaultPool.getG1Jac()
		defer defaultPool.putG1Jac(tmp)
		tmp.FromAffine(&points[i])
		tmp.ScalarMultiplication(tmp, scalars[i])
		result.AddAssign(tmp)
	}

	i := 0
	for ; i+batchSize <= n; i += batchSize {
		for j := i; j < i+batchSize; j++ {
			accumulate(j)
		}
	}
	for ; i < n; i++ {
		accumulate(i)
	}

	return result, nil
}
