package slhdsa

import "fmt"

// HashID names a pre-hash function for the HashSLH-DSA (pre-hashed) variant.
type HashID int

const (
	HashSHA256 HashID = iota
	HashSHA512
	HashSHAKE128
	HashSHAKE256
)

// oidInfo is one pre-hash function's DER-encoded ASN.1 OID value (tag,
// length and content octets) and its expected digest length in bytes.
type oidInfo struct {
	oid   []byte
	dgLen int
}

var preHashOIDs = map[HashID]oidInfo{
	// id-sha256, id-sha512: RFC 3447 / NIST OIW arcs, as FIPS 205 §10.2.2
	// table 13 lists them.
	HashSHA256: {oid: []byte{0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x01}, dgLen: 32},
	HashSHA512: {oid: []byte{0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x03}, dgLen: 64},
	// id-shake128, id-shake256, used with their full (not half) output.
	HashSHAKE128: {oid: []byte{0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x0b}, dgLen: 32},
	HashSHAKE256: {oid: []byte{0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x0c}, dgLen: 64},
}

const maxContextLen = 255

// encodePure builds M' = 0x00 || len(ctx) || ctx || m, the encoding used by
// the plain (non-pre-hashed) signature variant.
func encodePure(ctxString, m []byte) ([]byte, error) {
	if len(ctxString) > maxContextLen {
		return nil, fmt.Errorf("%w: context string longer than %d bytes", ErrInvalidLength, maxContextLen)
	}
	out := make([]byte, 0, 2+len(ctxString)+len(m))
	out = append(out, 0x00, byte(len(ctxString)))
	out = append(out, ctxString...)
	out = append(out, m...)
	return out, nil
}

// encodePreHash builds M' = 0x01 || len(ctx) || ctx || OID(PH) || PH(m), the
// encoding used by the pre-hashed (HashSLH-DSA) signature variant. digest
// must already be the output of the named pre-hash function applied to the
// original message.
func encodePreHash(ctxString []byte, id HashID, digest []byte) ([]byte, error) {
	if len(ctxString) > maxContextLen {
		return nil, fmt.Errorf("%w: context string longer than %d bytes", ErrInvalidLength, maxContextLen)
	}
	info, ok := preHashOIDs[id]
	if !ok {
		return nil, ErrUnsupportedHash
	}
	if len(digest) != info.dgLen {
		return nil, fmt.Errorf("%w: digest length %d, want %d", ErrInvalidLength, len(digest), info.dgLen)
	}

	out := make([]byte, 0, 2+len(ctxString)+len(info.oid)+len(digest))
	out = append(out, 0x01, byte(len(ctxString)))
	out = append(out, ctxString...)
	out = append(out, info.oid...)
	out = append(out, digest...)
	return out, nil
}
