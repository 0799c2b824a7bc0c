package slhdsa

import (
	"fmt"
	"io"

	"github.com/yawning/slhdsa/address"
	"github.com/yawning/slhdsa/codec"
)

// padTreeIndex left-pads a big-endian byte slice shorter than 12 bytes with
// zeros, so it can be parsed as a TreeIndex. idxTreeLen never exceeds 8
// bytes for any defined parameter set (H-HPrime <= 64), well under the
// 12-byte TreeIndex width.
func padTreeIndex(b []byte) [12]byte {
	var out [12]byte
	copy(out[12-len(b):], b)
	return out
}

// splitDigest separates the suite's message digest into the FORS digest,
// the hypertree tree index and the hypertree leaf index, per the layout
// slh_sign/slh_verify imposes: md || idx_tree || idx_leaf.
func splitDigest(p *paramShape, digest []byte) (md []byte, idxTree address.TreeIndex, idxLeaf uint32, err error) {
	if len(digest) != p.mdLen+p.idxTreeLen+p.idxLeafLen {
		return nil, address.TreeIndex{}, 0, fmt.Errorf("%w: got %d bytes, want %d", ErrTruncation, len(digest), p.mdLen+p.idxTreeLen+p.idxLeafLen)
	}
	md = digest[:p.mdLen]
	treeRaw := digest[p.mdLen : p.mdLen+p.idxTreeLen]
	leafRaw := digest[p.mdLen+p.idxTreeLen:]

	padded := padTreeIndex(treeRaw)
	idxTree = address.TreeIndexFromBytes(padded[:]).Residue(uint(p.idxTreeBits))

	leafMask := uint32(1)<<uint(p.idxLeafBits) - 1
	idxLeaf = uint32(codec.ToInt(leafRaw, len(leafRaw))) & leafMask
	return md, idxTree, idxLeaf, nil
}

// paramShape is the subset of digest-splitting geometry derived from a
// Context's parameter set.
type paramShape struct {
	mdLen       int
	idxTreeLen  int
	idxTreeBits int
	idxLeafLen  int
	idxLeafBits int
}

func shapeOf(ctx *Context) *paramShape {
	p := ctx.P
	treeBits := p.H - p.HPrime
	return &paramShape{
		mdLen:       (p.K*p.A + 7) / 8,
		idxTreeLen:  (treeBits + 7) / 8,
		idxTreeBits: treeBits,
		idxLeafLen:  (p.HPrime + 7) / 8,
		idxLeafBits: p.HPrime,
	}
}

// signInternal implements slh_sign_internal: it derives the randomizer R,
// the message digest, and the FORS/hypertree index split, then produces the
// FORS signature and hypertree signature over the FORS-derived root.
func signInternal(ctx *Context, sk *PrivateKey, mPrime, addrnd []byte) ([]byte, error) {
	shape := shapeOf(ctx)

	r := ctx.S.PRFMsg(sk.SKPrf, addrnd, mPrime)
	digest, err := ctx.S.HMsg(r, sk.PKSeed, sk.PKRoot, mPrime)
	if err != nil {
		return nil, err
	}

	md, idxTree, idxLeaf, err := splitDigest(shape, digest)
	if err != nil {
		return nil, err
	}

	adrs := address.Address{}
	adrs.SetTreeAddress(idxTree)
	adrs.SetTypeAndClear(address.ForsTree)
	adrs.SetKeyPairAddress(idxLeaf)

	sigFors, err := ctx.F.Sign(md, sk.SKSeed, sk.PKSeed, adrs)
	if err != nil {
		return nil, err
	}
	pkFors, err := ctx.F.PkFromSig(sigFors, md, sk.PKSeed, adrs)
	if err != nil {
		return nil, err
	}

	sigHT, err := ctx.HT.Sign(pkFors, sk.SKSeed, sk.PKSeed, idxTree, idxLeaf)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(r)+len(sigFors)+len(sigHT))
	out = append(out, r...)
	out = append(out, sigFors...)
	out = append(out, sigHT...)
	return out, nil
}

// signWithEncoding draws the addrnd value (PK.seed for deterministic
// signing, a fresh random n-byte value otherwise) and calls signInternal.
func signWithEncoding(ctx *Context, sk *PrivateKey, mPrime []byte, rnd io.Reader, deterministic bool) ([]byte, error) {
	var addrnd []byte
	if deterministic {
		addrnd = sk.PKSeed
	} else {
		addrnd = make([]byte, ctx.P.N)
		if _, err := io.ReadFull(rnd, addrnd); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRngFailure, err)
		}
	}
	return signInternal(ctx, sk, mPrime, addrnd)
}

// Sign produces a signature over message under ctxString (the empty string
// is a valid, and the most common, context). When deterministic is false
// rnd supplies the per-signature randomizer; when true rnd is unused and
// sk.PKSeed plays that role, making the signature a pure function of the
// key and message.
func (sk *PrivateKey) Sign(ctx *Context, rnd io.Reader, message, ctxString []byte, deterministic bool) ([]byte, error) {
	mPrime, err := encodePure(ctxString, message)
	if err != nil {
		return nil, err
	}
	return signWithEncoding(ctx, sk, mPrime, rnd, deterministic)
}

// SignPreHash produces a signature over digest, the output of the pre-hash
// function named by id applied to the original message, for the HashSLH-DSA
// variant.
func (sk *PrivateKey) SignPreHash(ctx *Context, rnd io.Reader, id HashID, digest, ctxString []byte, deterministic bool) ([]byte, error) {
	mPrime, err := encodePreHash(ctxString, id, digest)
	if err != nil {
		return nil, err
	}
	return signWithEncoding(ctx, sk, mPrime, rnd, deterministic)
}
