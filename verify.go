package slhdsa

import (
	"github.com/yawning/slhdsa/address"
)

// verifyInternal implements slh_verify_internal. Bad signature data,
// including a malformed signature length, is reported as (false, nil). A
// non-nil error comes only from an internal failure of the hash suite or
// the digest split, which does not depend on the signature bytes; the
// boolean-returning Verify wrappers turn that into false as well.
func verifyInternal(ctx *Context, pk *PublicKey, mPrime, sig []byte) (bool, error) {
	p := ctx.P
	n := p.N
	forsLen := p.ForsSigBytes()
	htLen := p.HTSigBytes()

	if len(sig) != n+forsLen+htLen {
		return false, nil
	}
	r := sig[:n]
	sigFors := sig[n : n+forsLen]
	sigHT := sig[n+forsLen:]

	digest, err := ctx.S.HMsg(r, pk.PKSeed, pk.PKRoot, mPrime)
	if err != nil {
		return false, err
	}

	shape := shapeOf(ctx)
	md, idxTree, idxLeaf, err := splitDigest(shape, digest)
	if err != nil {
		return false, err
	}

	adrs := address.Address{}
	adrs.SetTreeAddress(idxTree)
	adrs.SetTypeAndClear(address.ForsTree)
	adrs.SetKeyPairAddress(idxLeaf)

	pkFors, err := ctx.F.PkFromSig(sigFors, md, pk.PKSeed, adrs)
	if err != nil {
		return false, nil
	}

	return ctx.HT.Verify(pkFors, sigHT, pk.PKSeed, pk.PKRoot, idxTree, idxLeaf)
}

// Verify reports whether sig is a valid signature by pk over message under
// ctxString. It never returns an error: any malformed input simply fails to
// verify.
func (pk *PublicKey) Verify(ctx *Context, message, ctxString, sig []byte) bool {
	mPrime, err := encodePure(ctxString, message)
	if err != nil {
		return false
	}
	ok, err := verifyInternal(ctx, pk, mPrime, sig)
	if err != nil {
		return false
	}
	return ok
}

// VerifyPreHash reports whether sig is a valid HashSLH-DSA signature by pk
// over digest (the output of the pre-hash function named by id) under
// ctxString.
func (pk *PublicKey) VerifyPreHash(ctx *Context, id HashID, digest, ctxString, sig []byte) bool {
	mPrime, err := encodePreHash(ctxString, id, digest)
	if err != nil {
		return false
	}
	ok, err := verifyInternal(ctx, pk, mPrime, sig)
	if err != nil {
		return false
	}
	return ok
}
