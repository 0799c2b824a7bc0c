// Package hypertree implements HT, the d-layer stack of XMSS trees that
// signs a FORS root with the hypertree's public root.
package hypertree

import (
	"github.com/yawning/slhdsa/address"
	"github.com/yawning/slhdsa/codec"
	"github.com/yawning/slhdsa/params"
	"github.com/yawning/slhdsa/suite"
	"github.com/yawning/slhdsa/xmss"
)

// HT binds a parameter set, hash suite and XMSS instance to the hypertree
// operations.
type HT struct {
	P *params.Params
	S suite.Suite
	X *xmss.XMSS
}

// New constructs an HT instance.
func New(p *params.Params, s suite.Suite) *HT {
	return &HT{P: p, S: s, X: xmss.New(p, s)}
}

// Sign signs m (typically a FORS root) across the d hypertree layers,
// starting at the bottom layer identified by (idxTree, idxLeaf).
func (h *HT) Sign(m, skSeed, pkSeed []byte, idxTree address.TreeIndex, idxLeaf uint32) ([]byte, error) {
	d := h.P.D
	hPrime := uint(h.P.HPrime)

	adrs := address.Address{}
	adrs.SetTreeAddress(idxTree)

	sig0, err := h.X.Sign(m, skSeed, idxLeaf, pkSeed, adrs)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, h.P.HTSigBytes())
	out = append(out, sig0...)

	root, err := h.X.PkFromSig(idxLeaf, sig0, m, pkSeed, adrs)
	if err != nil {
		return nil, err
	}

	curTree, curLeaf := idxTree, idxLeaf
	for j := 1; j < d; j++ {
		curLeaf = uint32(curTree.Residue(hPrime).Uint64())
		curTree = curTree.RemoveBits(hPrime)

		adrs = address.Address{}
		adrs.SetLayerAddress(uint32(j))
		adrs.SetTreeAddress(curTree)

		sigj, err := h.X.Sign(root, skSeed, curLeaf, pkSeed, adrs)
		if err != nil {
			return nil, err
		}
		out = append(out, sigj...)

		if j < d-1 {
			root, err = h.X.PkFromSig(curLeaf, sigj, root, pkSeed, adrs)
			if err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// Verify reports whether sig is a valid hypertree signature over m (the
// FORS root) rooting at pkRoot, starting at (idxTree, idxLeaf). The final
// comparison is constant-time; everything preceding it may branch on
// public data.
func (h *HT) Verify(m, sig, pkSeed, pkRoot []byte, idxTree address.TreeIndex, idxLeaf uint32) (bool, error) {
	d := h.P.D
	hPrime := uint(h.P.HPrime)
	xmssSigLen := h.P.XMSSSigBytes()

	if len(sig) != d*xmssSigLen {
		return false, nil
	}

	curTree, curLeaf := idxTree, idxLeaf
	node := m
	for j := 0; j < d; j++ {
		adrs := address.Address{}
		adrs.SetLayerAddress(uint32(j))
		adrs.SetTreeAddress(curTree)

		sigj := sig[j*xmssSigLen : (j+1)*xmssSigLen]
		var err error
		node, err = h.X.PkFromSig(curLeaf, sigj, node, pkSeed, adrs)
		if err != nil {
			return false, err
		}

		if j < d-1 {
			curLeaf = uint32(curTree.Residue(hPrime).Uint64())
			curTree = curTree.RemoveBits(hPrime)
		}
	}
	return codec.ConstantTimeCompare(node, pkRoot), nil
}
