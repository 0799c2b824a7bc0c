// Package fors implements FORS (forest of random subsets), the few-time
// signature used to sign the hashed message digest. Its k tree roots are
// compressed into PK_FORS, which the hypertree then certifies.
package fors

import (
	"errors"

	"github.com/yawning/slhdsa/address"
	"github.com/yawning/slhdsa/codec"
	"github.com/yawning/slhdsa/params"
	"github.com/yawning/slhdsa/suite"
)

// FORS binds a parameter set and hash suite to the FORS operations.
type FORS struct {
	P *params.Params
	S suite.Suite
}

// New constructs a FORS instance.
func New(p *params.Params, s suite.Suite) *FORS {
	return &FORS{P: p, S: s}
}

// SkGen derives the FORS secret value at absolute leaf index idx. adrs must
// already carry type ForsTree and the signing keypair_address.
func (f *FORS) SkGen(skSeed, pkSeed []byte, adrs address.Address, idx uint32) []byte {
	a := adrs
	a.SetTypeAndClear(address.ForsPRF)
	a.SetKeyPairAddress(adrs.KeyPairAddress())
	a.SetTreeIndex(idx)
	return f.S.PRF(pkSeed, skSeed, a)
}

// Node computes the root of the subtree of height z rooted at absolute
// index i (0 <= z <= a, 0 <= i < k*2^(a-z), indexing the whole forest of k
// trees contiguously — tree t occupies the index range
// [t*2^a, (t+1)*2^a) at height 0). adrs must already carry type ForsTree.
func (f *FORS) Node(skSeed []byte, i, z int, pkSeed []byte, adrs address.Address) ([]byte, error) {
	if z == 0 {
		sk := f.SkGen(skSeed, pkSeed, adrs, uint32(i))
		a := adrs
		a.SetTreeHeight(0)
		a.SetTreeIndex(uint32(i))
		return f.S.F(pkSeed, a, sk), nil
	}

	left, err := f.Node(skSeed, 2*i, z-1, pkSeed, adrs)
	if err != nil {
		return nil, err
	}
	right, err := f.Node(skSeed, 2*i+1, z-1, pkSeed, adrs)
	if err != nil {
		return nil, err
	}

	a := adrs
	a.SetTreeHeight(uint32(z))
	a.SetTreeIndex(uint32(i))
	payload := make([]byte, 0, len(left)+len(right))
	payload = append(payload, left...)
	payload = append(payload, right...)
	return f.S.H(pkSeed, a, payload), nil
}

// Sign produces a FORS signature over the ceil(k*a/8)-byte digest md: for
// each of the k trees, the secret value at the indicated leaf followed by
// its a-node authentication path.
func (f *FORS) Sign(md, skSeed, pkSeed []byte, adrs address.Address) ([]byte, error) {
	k, a, n := f.P.K, f.P.A, f.P.N
	indices := codec.Base2B(md, a, k)

	sig := make([]byte, 0, k*(1+a)*n)
	for i := 0; i < k; i++ {
		leafIdx := uint32(i<<uint(a)) + uint32(indices[i])
		sk := f.SkGen(skSeed, pkSeed, adrs, leafIdx)
		sig = append(sig, sk...)

		for j := 0; j < a; j++ {
			sibIdx := uint32(i<<uint(a-j)) + (uint32(indices[i]>>uint(j)) ^ 1)
			node, err := f.Node(skSeed, int(sibIdx), j, pkSeed, adrs)
			if err != nil {
				return nil, err
			}
			sig = append(sig, node...)
		}
	}
	return sig, nil
}

// PkFromSig recovers PK_FORS, the T_k-compressed root of the k FORS tree
// roots implied by sig over digest md.
func (f *FORS) PkFromSig(sig, md, pkSeed []byte, adrs address.Address) ([]byte, error) {
	k, a, n := f.P.K, f.P.A, f.P.N
	if len(sig) != k*(1+a)*n {
		return nil, errors.New("fors: signature has wrong length")
	}
	indices := codec.Base2B(md, a, k)

	roots := make([]byte, 0, k*n)
	pos := 0
	for i := 0; i < k; i++ {
		sk := sig[pos : pos+n]
		pos += n

		idx := uint32(i<<uint(a)) + uint32(indices[i])
		leafAdrs := adrs
		leafAdrs.SetTreeHeight(0)
		leafAdrs.SetTreeIndex(idx)
		node := f.S.F(pkSeed, leafAdrs, sk)

		for j := 0; j < a; j++ {
			authNode := sig[pos : pos+n]
			pos += n

			parent := idx >> 1
			treeAdrs := adrs
			treeAdrs.SetTreeHeight(uint32(j + 1))
			treeAdrs.SetTreeIndex(parent)

			payload := make([]byte, 0, 2*n)
			if idx&1 == 0 {
				payload = append(payload, node...)
				payload = append(payload, authNode...)
			} else {
				payload = append(payload, authNode...)
				payload = append(payload, node...)
			}
			node = f.S.H(pkSeed, treeAdrs, payload)
			idx = parent
		}
		roots = append(roots, node...)
	}

	rootsAdrs := adrs
	rootsAdrs.SetTypeAndClear(address.ForsRoots)
	rootsAdrs.SetKeyPairAddress(adrs.KeyPairAddress())
	return f.S.Tlen(pkSeed, rootsAdrs, roots), nil
}
