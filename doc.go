// Package slhdsa implements the core of SLH-DSA (FIPS 205), the stateless
// hash-based digital signature scheme: key generation, signing and
// verification built from WOTS+ one-time signatures, XMSS Merkle trees, a
// d-layer hypertree, and a FORS few-time signature over the hashed message
// digest.
//
// The scheme relies only on symmetric primitives (SHA-2 or SHAKE, selected
// per parameter set) for its security, giving post-quantum signatures
// without number-theoretic assumptions.
//
// A Context binds one of the twelve named parameter sets to its hash suite
// and the WOTS+/XMSS/hypertree/FORS instances built on it:
//
//	ctx, err := slhdsa.NewContext(params.SHAKE_128s)
//	sk, err := slhdsa.GenerateKey(ctx, rand.Reader)
//	sig, err := sk.Sign(ctx, rand.Reader, message, nil, false)
//	ok := sk.Public().Verify(ctx, message, nil, sig)
package slhdsa
