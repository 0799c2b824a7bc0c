// Package xmss implements XMSS, the Merkle tree of height h' over 2^h'
// WOTS+ public keys that certifies one hypertree layer.
package xmss

import (
	"errors"

	"github.com/yawning/slhdsa/address"
	"github.com/yawning/slhdsa/params"
	"github.com/yawning/slhdsa/suite"
	"github.com/yawning/slhdsa/wotsplus"
)

// XMSS binds a parameter set, hash suite and WOTS+ instance to the tree
// operations.
type XMSS struct {
	P *params.Params
	S suite.Suite
	W *wotsplus.WOTSPlus
}

// New constructs an XMSS instance.
func New(p *params.Params, s suite.Suite) *XMSS {
	return &XMSS{P: p, S: s, W: wotsplus.New(p, s)}
}

// Node computes the root of the subtree of height z rooted at leaf index i
// (0 <= z <= h', 0 <= i < 2^(h'-z)). adrs carries the layer and tree
// address the caller has already set; Node clones it before every
// recursive descent so concurrent or nested calls never observe a
// partially mutated address.
func (x *XMSS) Node(skSeed []byte, i, z int, pkSeed []byte, adrs address.Address) ([]byte, error) {
	if z == 0 {
		a := adrs
		a.SetTypeAndClear(address.WotsHash)
		a.SetKeyPairAddress(uint32(i))
		return x.W.PkGen(skSeed, pkSeed, a)
	}

	left, err := x.Node(skSeed, 2*i, z-1, pkSeed, adrs)
	if err != nil {
		return nil, err
	}
	right, err := x.Node(skSeed, 2*i+1, z-1, pkSeed, adrs)
	if err != nil {
		return nil, err
	}

	a := adrs
	a.SetTypeAndClear(address.Tree)
	a.SetTreeHeight(uint32(z))
	a.SetTreeIndex(uint32(i))
	payload := make([]byte, 0, len(left)+len(right))
	payload = append(payload, left...)
	payload = append(payload, right...)
	return x.S.H(pkSeed, a, payload), nil
}

// Sign produces an XMSS signature over the n-byte message m for leaf index
// idx: the WOTS+ signature over m followed by the h' authentication path
// nodes.
func (x *XMSS) Sign(m, skSeed []byte, idx uint32, pkSeed []byte, adrs address.Address) ([]byte, error) {
	n := x.P.N
	hPrime := x.P.HPrime

	auth := make([]byte, hPrime*n)
	for j := 0; j < hPrime; j++ {
		k := (idx >> uint(j)) ^ 1
		node, err := x.Node(skSeed, int(k), j, pkSeed, adrs)
		if err != nil {
			return nil, err
		}
		copy(auth[j*n:(j+1)*n], node)
	}

	sigAdrs := adrs
	sigAdrs.SetTypeAndClear(address.WotsHash)
	sigAdrs.SetKeyPairAddress(idx)
	wsig, err := x.W.Sign(m, skSeed, pkSeed, sigAdrs)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(wsig)+len(auth))
	out = append(out, wsig...)
	out = append(out, auth...)
	return out, nil
}

// PkFromSig recovers the XMSS root implied by sig over message m, at leaf
// index idx.
func (x *XMSS) PkFromSig(idx uint32, sig, m, pkSeed []byte, adrs address.Address) ([]byte, error) {
	n := x.P.N
	length := x.P.Len()
	hPrime := x.P.HPrime

	if len(sig) != (length+hPrime)*n {
		return nil, errors.New("xmss: signature has wrong length")
	}
	wsig := sig[:length*n]
	auth := sig[length*n:]

	sigAdrs := adrs
	sigAdrs.SetTypeAndClear(address.WotsHash)
	sigAdrs.SetKeyPairAddress(idx)
	node, err := x.W.PkFromSig(wsig, m, pkSeed, sigAdrs)
	if err != nil {
		return nil, err
	}

	treeAdrs := adrs
	treeAdrs.SetTypeAndClear(address.Tree)
	for k := 0; k < hPrime; k++ {
		treeAdrs.SetTreeHeight(uint32(k + 1))
		treeAdrs.SetTreeIndex(idx >> uint(k+1))
		authNode := auth[k*n : (k+1)*n]

		payload := make([]byte, 0, 2*n)
		if (idx>>uint(k))&1 == 0 {
			payload = append(payload, node...)
			payload = append(payload, authNode...)
		} else {
			payload = append(payload, authNode...)
			payload = append(payload, node...)
		}
		node = x.S.H(pkSeed, treeAdrs, payload)
	}
	return node, nil
}
