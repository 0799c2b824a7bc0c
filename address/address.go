// Package address implements the 32-byte domain-separating address word
// (ADRS) that every hash call in the SLH-DSA core takes, its 22-byte
// compressed form used by the SHA-2 hash suite, and the 96-bit TreeIndex
// used for hypertree layer bookkeeping.
package address

import "encoding/binary"

// Type is the ADRS type field. It selects which of the three trailing
// 32-bit words mean keypair/chain/hash versus tree-height/tree-index.
type Type uint32

const (
	WotsHash  Type = 0
	WotsPK    Type = 1
	Tree      Type = 2
	ForsTree  Type = 3
	ForsRoots Type = 4
	WotsPRF   Type = 5
	ForsPRF   Type = 6
)

// Address is the 32-byte structured domain separator. Its zero value is the
// all-zero address with type WotsHash, matching the "ADRS <- 0" step used
// throughout the scheme.
type Address struct {
	layer uint32
	tree  TreeIndex
	typ   Type
	words [3]uint32 // word0: keypair/padding, word1: chain/tree-height, word2: hash/tree-index
}

// SetLayerAddress sets the layer field.
func (a *Address) SetLayerAddress(l uint32) { a.layer = l }

// LayerAddress returns the layer field.
func (a Address) LayerAddress() uint32 { return a.layer }

// SetTreeAddress sets the 96-bit tree field.
func (a *Address) SetTreeAddress(t TreeIndex) { a.tree = t }

// TreeAddress returns the 96-bit tree field.
func (a Address) TreeAddress() TreeIndex { return a.tree }

// Type returns the current type field.
func (a Address) Type() Type { return a.typ }

// SetTypeAndClear writes the type field and zeroes all three trailing
// words. This must be called on every type change; callers that need to
// preserve the keypair address across a retype must re-set it afterward.
func (a *Address) SetTypeAndClear(t Type) {
	a.typ = t
	a.words = [3]uint32{}
}

// SetKeyPairAddress sets word 0 (keypair address, for WOTS_HASH, WOTS_PK,
// WOTS_PRF, FORS_TREE, FORS_ROOTS, FORS_PRF types).
func (a *Address) SetKeyPairAddress(v uint32) { a.words[0] = v }

// KeyPairAddress returns word 0.
func (a Address) KeyPairAddress() uint32 { return a.words[0] }

// SetChainAddress sets word 1 (chain address, for WOTS_HASH/WOTS_PRF).
func (a *Address) SetChainAddress(v uint32) { a.words[1] = v }

// ChainAddress returns word 1.
func (a Address) ChainAddress() uint32 { return a.words[1] }

// SetHashAddress sets word 2 (hash/chain-step address, for WOTS_HASH).
func (a *Address) SetHashAddress(v uint32) { a.words[2] = v }

// HashAddress returns word 2.
func (a Address) HashAddress() uint32 { return a.words[2] }

// SetTreeHeight sets word 1 (tree height, for TREE/FORS_TREE).
func (a *Address) SetTreeHeight(v uint32) { a.words[1] = v }

// TreeHeight returns word 1.
func (a Address) TreeHeight() uint32 { return a.words[1] }

// SetTreeIndex sets word 2 (tree index, for TREE/FORS_TREE/FORS_PRF).
func (a *Address) SetTreeIndex(v uint32) { a.words[2] = v }

// TreeIndexWord returns word 2.
func (a Address) TreeIndexWord() uint32 { return a.words[2] }

// Bytes serializes the address to its full 32-byte big-endian form, used by
// the SHAKE hash suite.
func (a Address) Bytes() [32]byte {
	var b [32]byte
	binary.BigEndian.PutUint32(b[0:4], a.layer)
	tb := a.tree.Bytes()
	copy(b[4:16], tb[:])
	binary.BigEndian.PutUint32(b[16:20], uint32(a.typ))
	binary.BigEndian.PutUint32(b[20:24], a.words[0])
	binary.BigEndian.PutUint32(b[24:28], a.words[1])
	binary.BigEndian.PutUint32(b[28:32], a.words[2])
	return b
}

// CompressedBytes serializes the address to its 22-byte compressed form
// used by the SHA-2 hash suite: one low byte of layer, the low 8 bytes of
// the tree field, one low byte of type, and all twelve trailing bytes.
func (a Address) CompressedBytes() [22]byte {
	var b [22]byte
	b[0] = byte(a.layer)
	binary.BigEndian.PutUint32(b[1:5], a.tree.Mi)
	binary.BigEndian.PutUint32(b[5:9], a.tree.Lo)
	b[9] = byte(a.typ)
	binary.BigEndian.PutUint32(b[10:14], a.words[0])
	binary.BigEndian.PutUint32(b[14:18], a.words[1])
	binary.BigEndian.PutUint32(b[18:22], a.words[2])
	return b
}
