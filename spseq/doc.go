// Package spseq implements Structure-Preserving Signatures on Equivalence
// Classes (SPS-EQ), as introduced by Fuchsbauer, Hanser, and Slamanig
// ("Structure-Preserving Signatures on Equivalence Classes and Constant-Size
// Anonymous Credentials", https://eprint.iacr.org/2014/944).
//
// An SPS-EQ signature is taken over a representative M = (M_1, ..., M_l) of
// an equivalence class of vectors in G1^l, where two vectors are equivalent
// iff one is a nonzero scalar multiple of the other. Given a valid signature
// on one representative, anyone can publicly derive a valid signature on any
// other representative of the same class, without the signing key, by
// calling ChangeRepr. Signatures derived this way are unlinkable to the
// signature they were derived from. This underpins constant-size anonymous
// credentials and blind-issuance protocols.
//
// The scheme is defined over a Type-III bilinear group (G1, G2, GT, e) with
// e: G1 x G2 -> GT bilinear and non-degenerate, instantiated here over
// BLS12-381 via github.com/consensys/gnark-crypto.
//
// The four algorithms:
//
//	KeyGen(l):       sample x_1, ..., x_l in Fr*, set sk = (x_i), pk = (g2^x_i)
//	Sign(M, sk):     sample y in Fr*, Z = y * sum(x_i * M_i), Y = g1^(1/y), Y' = g2^(1/y)
//	Verify(M, sig, pk): check prod(e(M_i, X_i)) = e(Z, Y') and e(Y, g2) = e(g1, Y')
//	ChangeRepr(M, sig, pk): sample f, psi in Fr*, return (f*M, (psi*f*Z, Y^(1/psi), Y'^(1/psi)))
//
// Usage:
//
//	sk, _ := spseq.GenerateSigningKey(3, rand.Reader)
//	pk := spseq.DerivePublicKey(sk)
//	sig, _ := sk.Sign(message, rand.Reader)
//	err := pk.Verify(message, sig)
//	sig2, message2, _ := sig.ChangeRepr(message, rand.Reader)
package spseq
