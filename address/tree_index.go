package address

import "encoding/binary"

// TreeIndex is a 96-bit big-endian unsigned value stored as three 32-bit
// limbs, used for the hypertree's tree-address field. FIPS 205 specifies a
// full 96-bit tree address, so this type is used everywhere a tree index or
// tree-address value flows, even though every currently defined parameter
// set's tree index fits in 64 bits (H-HPrime is at most 64, for 256f).
type TreeIndex struct {
	Hi, Mi, Lo uint32
}

// TreeIndexFromBytes parses a 12-byte big-endian value into a TreeIndex.
func TreeIndexFromBytes(b []byte) TreeIndex {
	return TreeIndex{
		Hi: binary.BigEndian.Uint32(b[0:4]),
		Mi: binary.BigEndian.Uint32(b[4:8]),
		Lo: binary.BigEndian.Uint32(b[8:12]),
	}
}

// TreeIndexFromUint64 builds a TreeIndex from a 64-bit value (Hi = 0). It is
// a convenience for parameter sets and tests where the index is known to
// fit in 64 bits.
func TreeIndexFromUint64(v uint64) TreeIndex {
	return TreeIndex{Hi: 0, Mi: uint32(v >> 32), Lo: uint32(v)}
}

// Bytes serializes the TreeIndex to its 12-byte big-endian form.
func (t TreeIndex) Bytes() [12]byte {
	var b [12]byte
	binary.BigEndian.PutUint32(b[0:4], t.Hi)
	binary.BigEndian.PutUint32(b[4:8], t.Mi)
	binary.BigEndian.PutUint32(b[8:12], t.Lo)
	return b
}

// Uint64 returns the low 64 bits of the TreeIndex, ignoring Hi. Intended for
// callers that have already established the value fits (e.g. test code
// building small tree indices).
func (t TreeIndex) Uint64() uint64 {
	return uint64(t.Mi)<<32 | uint64(t.Lo)
}

// Residue returns the low h bits of the TreeIndex (0 <= h <= 96).
func (t TreeIndex) Residue(h uint) TreeIndex {
	b := t.Bytes()
	shifted := shiftLeftBytes(b[:], 96-h)
	shifted = shiftRightBytes(shifted, 96-h)
	return TreeIndexFromBytes(shifted)
}

// RemoveBits right-shifts the TreeIndex by h bits across all three limbs
// (0 <= h <= 96).
func (t TreeIndex) RemoveBits(h uint) TreeIndex {
	b := t.Bytes()
	shifted := shiftRightBytes(b[:], h)
	return TreeIndexFromBytes(shifted)
}

// shiftRightBytes logically right-shifts a big-endian byte slice by h bits,
// filling with zeros from the top. h may exceed 8*len(b), in which case the
// result is all zero.
func shiftRightBytes(b []byte, h uint) []byte {
	n := len(b)
	out := make([]byte, n)
	if h >= uint(8*n) {
		return out
	}
	byteShift := int(h / 8)
	bitShift := uint(h % 8)
	for i := n - 1; i >= 0; i-- {
		srcIdx := i - byteShift
		if srcIdx < 0 {
			continue
		}
		cur := b[srcIdx]
		var upper byte
		if srcIdx-1 >= 0 {
			upper = b[srcIdx-1]
		}
		out[i] = (cur >> bitShift) | (upper << (8 - bitShift))
	}
	return out
}

// shiftLeftBytes logically left-shifts a big-endian byte slice by h bits,
// filling with zeros from the bottom, truncating bits that overflow the top.
func shiftLeftBytes(b []byte, h uint) []byte {
	n := len(b)
	out := make([]byte, n)
	if h >= uint(8*n) {
		return out
	}
	byteShift := int(h / 8)
	bitShift := uint(h % 8)
	for i := 0; i < n; i++ {
		srcIdx := i + byteShift
		if srcIdx >= n {
			continue
		}
		cur := b[srcIdx]
		var lower byte
		if srcIdx+1 < n {
			lower = b[srcIdx+1]
		}
		out[i] = (cur << bitShift) | (lower >> (8 - bitShift))
	}
	return out
}
