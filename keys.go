package slhdsa

import (
	"fmt"
	"io"

	"github.com/yawning/slhdsa/address"
	"github.com/yawning/slhdsa/codec"
	"github.com/yawning/slhdsa/params"
)

// PrivateKey is an SLH-DSA private key: the two secret seeds, the public
// seed, and the cached hypertree root.
type PrivateKey struct {
	Params *params.Params
	SKSeed []byte
	SKPrf  []byte
	PKSeed []byte
	PKRoot []byte
}

// PublicKey is an SLH-DSA public key: the public seed and the hypertree
// root.
type PublicKey struct {
	Params *params.Params
	PKSeed []byte
	PKRoot []byte
}

// Public returns sk's corresponding public key.
func (sk *PrivateKey) Public() *PublicKey {
	return &PublicKey{Params: sk.Params, PKSeed: sk.PKSeed, PKRoot: sk.PKRoot}
}

func isZero(b []byte) bool {
	var v byte
	for _, c := range b {
		v |= c
	}
	return v == 0
}

// GenerateKey draws SK.seed, SK.prf and PK.seed from rand and computes
// PK.root as the root of the top hypertree layer's XMSS tree. It fails with
// ErrWeakKey if any drawn seed, or the derived root, comes back all-zero —
// a symptom of a broken rand source, never a property of a real key.
func GenerateKey(ctx *Context, rand io.Reader) (*PrivateKey, error) {
	n := ctx.P.N
	buf := make([]byte, 3*n)
	if _, err := io.ReadFull(rand, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRngFailure, err)
	}
	skSeed := buf[0*n : 1*n]
	skPrf := buf[1*n : 2*n]
	pkSeed := buf[2*n : 3*n]

	if isZero(skSeed) || isZero(skPrf) || isZero(pkSeed) {
		return nil, ErrWeakKey
	}

	adrs := address.Address{}
	adrs.SetLayerAddress(uint32(ctx.P.D - 1))
	root, err := ctx.HT.X.Node(skSeed, 0, ctx.P.HPrime, pkSeed, adrs)
	if err != nil {
		return nil, err
	}
	if isZero(root) {
		return nil, ErrWeakKey
	}

	return &PrivateKey{
		Params: ctx.P,
		SKSeed: skSeed,
		SKPrf:  skPrf,
		PKSeed: pkSeed,
		PKRoot: root,
	}, nil
}

// Marshal encodes sk as SK.seed || SK.prf || PK.seed || PK.root, the order
// FIPS 205 specifies for the private key.
func (sk *PrivateKey) Marshal() []byte {
	n := sk.Params.N
	out := make([]byte, 0, 4*n)
	out = append(out, sk.SKSeed...)
	out = append(out, sk.SKPrf...)
	out = append(out, sk.PKSeed...)
	out = append(out, sk.PKRoot...)
	return out
}

// ParsePrivateKey decodes data under ctx's parameter set and recomputes
// PK.root from SK.seed/PK.seed, rejecting the key with ErrRootMismatch if
// the encoded root does not match. This check is not required by FIPS 205's
// wire format but catches a torn or hand-edited key before it is ever used
// to sign.
func ParsePrivateKey(ctx *Context, data []byte) (*PrivateKey, error) {
	n := ctx.P.N
	if len(data) != 4*n {
		return nil, ErrInvalidLength
	}
	skSeed := append([]byte(nil), data[0*n:1*n]...)
	skPrf := append([]byte(nil), data[1*n:2*n]...)
	pkSeed := append([]byte(nil), data[2*n:3*n]...)
	pkRoot := append([]byte(nil), data[3*n:4*n]...)

	if isZero(skSeed) || isZero(skPrf) || isZero(pkSeed) || isZero(pkRoot) {
		return nil, ErrWeakKey
	}

	adrs := address.Address{}
	adrs.SetLayerAddress(uint32(ctx.P.D - 1))
	recomputed, err := ctx.HT.X.Node(skSeed, 0, ctx.P.HPrime, pkSeed, adrs)
	if err != nil {
		return nil, err
	}
	if !codec.ConstantTimeCompare(recomputed, pkRoot) {
		return nil, ErrRootMismatch
	}

	return &PrivateKey{Params: ctx.P, SKSeed: skSeed, SKPrf: skPrf, PKSeed: pkSeed, PKRoot: pkRoot}, nil
}

// Marshal encodes pk as PK.seed || PK.root.
func (pk *PublicKey) Marshal() []byte {
	out := make([]byte, 0, 2*pk.Params.N)
	out = append(out, pk.PKSeed...)
	out = append(out, pk.PKRoot...)
	return out
}

// ParsePublicKey decodes data under ctx's parameter set.
func ParsePublicKey(ctx *Context, data []byte) (*PublicKey, error) {
	n := ctx.P.N
	if len(data) != 2*n {
		return nil, ErrInvalidLength
	}
	return &PublicKey{
		Params: ctx.P,
		PKSeed: append([]byte(nil), data[0*n:1*n]...),
		PKRoot: append([]byte(nil), data[1*n:2*n]...),
	}, nil
}
