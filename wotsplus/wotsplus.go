// Package wotsplus implements WOTS+, the one-time signature that every
// XMSS leaf is built from: pkGen, Sign and PkFromSig over len = 2n+3 hash
// chains of length w = 16.
package wotsplus

import (
	"errors"

	"github.com/yawning/slhdsa/address"
	"github.com/yawning/slhdsa/codec"
	"github.com/yawning/slhdsa/params"
	"github.com/yawning/slhdsa/suite"
)

// ErrInvalidParameters is returned when a Chain call's indices would run a
// chain past its maximum length.
var ErrInvalidParameters = errors.New("wotsplus: i+s exceeds w-1")

// WOTSPlus binds a parameter set and hash suite to the WOTS+ operations.
type WOTSPlus struct {
	P *params.Params
	S suite.Suite
}

// New constructs a WOTSPlus bound to p and s.
func New(p *params.Params, s suite.Suite) *WOTSPlus {
	return &WOTSPlus{P: p, S: s}
}

// Chain applies F to x exactly s times, starting at chain position i,
// writing the chain-step index into adrs.HashAddress for each application.
// It fails if i+s would exceed w-1.
func (w *WOTSPlus) Chain(x []byte, i, s int, pkSeed []byte, adrs address.Address) ([]byte, error) {
	if i+s > w.P.W()-1 {
		return nil, ErrInvalidParameters
	}
	out := append([]byte(nil), x...)
	for j := i; j < i+s; j++ {
		adrs.SetHashAddress(uint32(j))
		out = w.S.F(pkSeed, adrs, out)
	}
	return out, nil
}

// checksumShift computes (8 - (len2*lgW mod 8)) mod 8, the portable left
// shift applied to the checksum before it is split into base-w digits. The
// teacher's reference hard-codes this to 4 (valid only for lgW == 4); this
// formula stays correct if lgW ever changes.
func checksumShift(len2, lgW int) uint {
	bits := (len2 * lgW) % 8
	return uint((8 - bits) % 8)
}

// digits returns the len-long sequence of base-w message digits for m (an
// n-byte value): len1 digits of m itself, followed by len2 checksum digits.
func (w *WOTSPlus) digits(m []byte) []int {
	lgW := w.P.LgW
	len1 := w.P.Len1()
	len2 := w.P.Len2()
	wMax := w.P.W() - 1

	msg := codec.Base2B(m, lgW, len1)

	csum := 0
	for _, d := range msg {
		csum += wMax - d
	}
	csum <<= checksumShift(len2, lgW)

	csumBytes := codec.ToByte(uint64(csum), (len2*lgW+7)/8)
	csumDigits := codec.Base2B(csumBytes, lgW, len2)

	return append(msg, csumDigits...)
}

// PkGen derives the WOTS+ public key for the keypair identified by adrs
// (which must already carry the correct layer, tree and keypair_address,
// with type WotsHash).
func (w *WOTSPlus) PkGen(skSeed, pkSeed []byte, adrs address.Address) ([]byte, error) {
	n := w.P.N
	length := w.P.Len()
	tmp := make([]byte, length*n)

	keypair := adrs.KeyPairAddress()
	for c := 0; c < length; c++ {
		skAdrs := adrs
		skAdrs.SetTypeAndClear(address.WotsPRF)
		skAdrs.SetKeyPairAddress(keypair)
		skAdrs.SetChainAddress(uint32(c))
		sk := w.S.PRF(pkSeed, skSeed, skAdrs)

		chAdrs := adrs
		chAdrs.SetChainAddress(uint32(c))
		t, err := w.Chain(sk, 0, w.P.W()-1, pkSeed, chAdrs)
		if err != nil {
			return nil, err
		}
		copy(tmp[c*n:(c+1)*n], t)
	}

	pkAdrs := adrs
	pkAdrs.SetTypeAndClear(address.WotsPK)
	pkAdrs.SetKeyPairAddress(keypair)
	return w.S.Tlen(pkSeed, pkAdrs, tmp), nil
}

// Sign produces the WOTS+ signature over the n-byte message m. adrs must
// already carry type WotsHash and the signing keypair_address.
func (w *WOTSPlus) Sign(m, skSeed, pkSeed []byte, adrs address.Address) ([]byte, error) {
	n := w.P.N
	length := w.P.Len()
	digits := w.digits(m)

	sig := make([]byte, length*n)
	keypair := adrs.KeyPairAddress()
	for c := 0; c < length; c++ {
		skAdrs := adrs
		skAdrs.SetTypeAndClear(address.WotsPRF)
		skAdrs.SetKeyPairAddress(keypair)
		skAdrs.SetChainAddress(uint32(c))
		sk := w.S.PRF(pkSeed, skSeed, skAdrs)

		chAdrs := adrs
		chAdrs.SetChainAddress(uint32(c))
		t, err := w.Chain(sk, 0, digits[c], pkSeed, chAdrs)
		if err != nil {
			return nil, err
		}
		copy(sig[c*n:(c+1)*n], t)
	}
	return sig, nil
}

// PkFromSig recovers the WOTS+ public key that sig would have been produced
// from, for message m. adrs must already carry type WotsHash and the
// signing keypair_address.
func (w *WOTSPlus) PkFromSig(sig, m, pkSeed []byte, adrs address.Address) ([]byte, error) {
	n := w.P.N
	length := w.P.Len()
	wMax := w.P.W() - 1
	if len(sig) != length*n {
		return nil, errors.New("wotsplus: signature has wrong length")
	}
	digits := w.digits(m)

	tmp := make([]byte, length*n)
	keypair := adrs.KeyPairAddress()
	for c := 0; c < length; c++ {
		chAdrs := adrs
		chAdrs.SetChainAddress(uint32(c))
		t, err := w.Chain(sig[c*n:(c+1)*n], digits[c], wMax-digits[c], pkSeed, chAdrs)
		if err != nil {
			return nil, err
		}
		copy(tmp[c*n:(c+1)*n], t)
	}

	pkAdrs := adrs
	pkAdrs.SetTypeAndClear(address.WotsPK)
	pkAdrs.SetKeyPairAddress(keypair)
	return w.S.Tlen(pkSeed, pkAdrs, tmp), nil
}
