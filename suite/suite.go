// Package suite implements the variant-dispatched hash suite (PRF, H_msg,
// PRF_msg, F, H, T_l) that every other layer of the core calls through. The
// suite is chosen once, at Context construction, from a parameter set's
// Family and is fixed for the lifetime of all operations under that
// context.
package suite

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"golang.org/x/crypto/sha3"

	"github.com/yawning/slhdsa/address"
	"github.com/yawning/slhdsa/codec"
	"github.com/yawning/slhdsa/params"
)

// Suite is the set of six keyed hash operations the scheme is built from.
// Every implementation serializes adrs in the exact form its family
// requires (32-byte full form for SHAKE, 22-byte compressed form for
// SHA-2) — this is a protocol contract, not an optimization.
type Suite interface {
	// PRF derives an n-byte pseudorandom value bound to pkSeed, skSeed and
	// adrs.
	PRF(pkSeed, skSeed []byte, adrs address.Address) []byte

	// PRFMsg derives the n-byte randomizer R from the secret PRF key,
	// opt_rand and the encoded message.
	PRFMsg(skPrf, optRand, m []byte) []byte

	// HMsg derives the m-byte message digest from R, PK.seed, PK.root and
	// the encoded message.
	HMsg(r, pkSeed, pkRoot, m []byte) ([]byte, error)

	// F is the single-input n-byte-to-n-byte compression used by WOTS+
	// chain steps and FORS leaves.
	F(pkSeed []byte, adrs address.Address, payload []byte) []byte

	// H is the 2n-byte-to-n-byte compression used by Merkle tree nodes.
	H(pkSeed []byte, adrs address.Address, payload []byte) []byte

	// Tlen compresses an arbitrary multiple-of-n-byte payload (len WOTS+
	// chain outputs, or k FORS tree roots) down to n bytes.
	Tlen(pkSeed []byte, adrs address.Address, payload []byte) []byte
}

// New builds the Suite bound to p's family and sizes.
func New(p *params.Params) Suite {
	switch p.Family {
	case params.FamilyShake:
		return &shakeSuite{n: p.N, m: p.M}
	case params.FamilySHA2Small:
		return &sha2Suite{n: p.N, m: p.M, large: false}
	case params.FamilySHA2Large:
		return &sha2Suite{n: p.N, m: p.M, large: true}
	default:
		panic("suite: unknown family")
	}
}

// --- SHAKE family -----------------------------------------------------

type shakeSuite struct {
	n, m int
}

func (s *shakeSuite) shake256(parts ...[]byte) []byte {
	h := sha3.NewShake256()
	for _, p := range parts {
		h.Write(p)
	}
	out := make([]byte, s.n)
	h.Read(out)
	return out
}

func (s *shakeSuite) PRF(pkSeed, skSeed []byte, adrs address.Address) []byte {
	ab := adrs.Bytes()
	return s.shake256(pkSeed, ab[:], skSeed)
}

func (s *shakeSuite) PRFMsg(skPrf, optRand, m []byte) []byte {
	return s.shake256(skPrf, optRand, m)
}

func (s *shakeSuite) HMsg(r, pkSeed, pkRoot, m []byte) ([]byte, error) {
	h := sha3.NewShake256()
	h.Write(r)
	h.Write(pkSeed)
	h.Write(pkRoot)
	h.Write(m)
	out := make([]byte, s.m)
	h.Read(out)
	return out, nil
}

func (s *shakeSuite) F(pkSeed []byte, adrs address.Address, payload []byte) []byte {
	ab := adrs.Bytes()
	return s.shake256(pkSeed, ab[:], payload)
}

func (s *shakeSuite) H(pkSeed []byte, adrs address.Address, payload []byte) []byte {
	return s.F(pkSeed, adrs, payload)
}

func (s *shakeSuite) Tlen(pkSeed []byte, adrs address.Address, payload []byte) []byte {
	return s.F(pkSeed, adrs, payload)
}

// --- SHA-2 families -----------------------------------------------------

// sha2Suite implements both category 1 (n=16, large=false) and categories
// 3/5 (n in {24,32}, large=true). PRF and F are always SHA-256-based; H and
// Tlen switch to SHA-512 when large is set.
type sha2Suite struct {
	n, m  int
	large bool
}

func (s *sha2Suite) prfMsgHash() func() hash.Hash {
	if s.large {
		return sha512.New
	}
	return sha256.New
}

func (s *sha2Suite) truncSHA256(parts ...[]byte) []byte {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)[:s.n]
}

func (s *sha2Suite) truncSHA512(parts ...[]byte) []byte {
	h := sha512.New()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)[:s.n]
}

func (s *sha2Suite) PRF(pkSeed, skSeed []byte, adrs address.Address) []byte {
	cb := adrs.CompressedBytes()
	pad := codec.ToByte(0, 64-s.n)
	return s.truncSHA256(pkSeed, pad, cb[:], skSeed)
}

func (s *sha2Suite) PRFMsg(skPrf, optRand, m []byte) []byte {
	mac := hmac.New(s.prfMsgHash(), skPrf)
	mac.Write(optRand)
	mac.Write(m)
	return mac.Sum(nil)[:s.n]
}

func (s *sha2Suite) HMsg(r, pkSeed, pkRoot, m []byte) ([]byte, error) {
	if !s.large {
		h := sha256.New()
		h.Write(r)
		h.Write(pkSeed)
		h.Write(pkRoot)
		h.Write(m)
		inner := h.Sum(nil)
		seed := append(append([]byte{}, r...), pkSeed...)
		seed = append(seed, inner...)
		return codec.MGF1(seed, s.m, sha256.New)
	}
	h := sha512.New()
	h.Write(r)
	h.Write(pkSeed)
	h.Write(pkRoot)
	h.Write(m)
	inner := h.Sum(nil)
	seed := append(append([]byte{}, r...), pkSeed...)
	seed = append(seed, inner...)
	return codec.MGF1(seed, s.m, sha512.New)
}

func (s *sha2Suite) F(pkSeed []byte, adrs address.Address, payload []byte) []byte {
	cb := adrs.CompressedBytes()
	pad := codec.ToByte(0, 64-s.n)
	return s.truncSHA256(pkSeed, pad, cb[:], payload)
}

func (s *sha2Suite) H(pkSeed []byte, adrs address.Address, payload []byte) []byte {
	cb := adrs.CompressedBytes()
	if !s.large {
		pad := codec.ToByte(0, 64-s.n)
		return s.truncSHA256(pkSeed, pad, cb[:], payload)
	}
	pad := codec.ToByte(0, 128-s.n)
	return s.truncSHA512(pkSeed, pad, cb[:], payload)
}

func (s *sha2Suite) Tlen(pkSeed []byte, adrs address.Address, payload []byte) []byte {
	return s.H(pkSeed, adrs, payload)
}
