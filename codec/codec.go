// Package codec implements the low-level byte/integer conversions that the
// rest of the SLH-DSA core builds on: big-endian integer encoding, the
// base-2^b digit splitter used by WOTS+ and FORS, the MGF1 mask generator
// used by the SHA-2 hash suite, and a constant-time byte comparison for
// final root checks.
package codec

import (
	"crypto/subtle"
	"errors"
	"hash"
)

// ErrMaskTooLong is returned by MGF1 when the requested mask length exceeds
// 2^32 * the underlying hash's output size.
var ErrMaskTooLong = errors.New("codec: mgf1 mask length exceeds 2^32 * hLen")

// ToInt interprets the first n bytes of x as a big-endian unsigned integer.
// n must be between 0 and 8 inclusive.
func ToInt(x []byte, n int) uint64 {
	if n < 0 || n > 8 {
		panic("codec: ToInt: n out of range")
	}
	var v uint64
	for i := 0; i < n; i++ {
		v = (v << 8) | uint64(x[i])
	}
	return v
}

// ToByte emits the n low bytes of x in big-endian order.
func ToByte(x uint64, n int) []byte {
	if n < 0 {
		panic("codec: ToByte: negative length")
	}
	out := make([]byte, n)
	v := x
	for i := n - 1; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	return out
}

// Base2B splits the bytes of x into outLen base-2^b digits, each in
// [0, 2^b). Bits are consumed left to right, b digits at a time; x must hold
// at least ceil(outLen*b/8) bytes.
func Base2B(x []byte, b, outLen int) []int {
	if b <= 0 || b > 32 {
		panic("codec: Base2B: b out of range")
	}
	needed := (outLen*b + 7) / 8
	if len(x) < needed {
		panic("codec: Base2B: input too short")
	}

	out := make([]int, outLen)
	in := 0
	var bits int
	var total uint64
	mask := uint64(1)<<uint(b) - 1
	for i := 0; i < outLen; i++ {
		for bits < b {
			total = (total << 8) | uint64(x[in])
			in++
			bits += 8
		}
		bits -= b
		out[i] = int((total >> uint(bits)) & mask)
	}
	return out
}

// MGF1 implements the mask generation function: for counters
// i = 0, 1, ..., ceil(maskLen/hLen)-1 it appends H(seed || ToByte(i, 4)) to
// the output and truncates to maskLen bytes. newHash is called once to
// learn the output size and then once per counter block, so every block is
// hashed with a fresh instance of the underlying hash.
func MGF1(seed []byte, maskLen int, newHash func() hash.Hash) ([]byte, error) {
	probe := newHash()
	hLen := probe.Size()

	if uint64(maskLen) > (uint64(1)<<32)*uint64(hLen) {
		return nil, ErrMaskTooLong
	}

	out := make([]byte, 0, maskLen+hLen)
	count := (maskLen + hLen - 1) / hLen
	for i := 0; i < count; i++ {
		h := newHash()
		h.Write(seed)
		h.Write(ToByte(uint64(i), 4))
		out = h.Sum(out)
	}
	return out[:maskLen], nil
}

// ConstantTimeCompare reports whether a and b are equal, in time
// independent of their contents (but not of their lengths). Used for the
// final root/public-key comparisons in verification per the scheme's
// constant-time obligation.
func ConstantTimeCompare(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
