package slhdsa

import (
	"bytes"
	"testing"
)

func TestEncodePureLayout(t *testing.T) {
	out, err := encodePure([]byte("ctx"), []byte("msg"))
	if err != nil {
		t.Fatalf("encodePure: %s", err)
	}
	want := append([]byte{0x00, 3}, append([]byte("ctx"), []byte("msg")...)...)
	if !bytes.Equal(out, want) {
		t.Fatalf("encodePure = %x, want %x", out, want)
	}
}

func TestEncodePureRejectsLongContext(t *testing.T) {
	ctx := bytes.Repeat([]byte{'c'}, 256)
	if _, err := encodePure(ctx, []byte("m")); err == nil {
		t.Fatalf("encodePure accepted a 256-byte context string")
	}
}

func TestEncodePreHashLayout(t *testing.T) {
	digest := bytes.Repeat([]byte{0xAB}, 32)
	out, err := encodePreHash(nil, HashSHA256, digest)
	if err != nil {
		t.Fatalf("encodePreHash: %s", err)
	}
	if out[0] != 0x01 || out[1] != 0x00 {
		t.Fatalf("encodePreHash header = %x, want 01 00...", out[:2])
	}
	oid := preHashOIDs[HashSHA256].oid
	if !bytes.Equal(out[2:2+len(oid)], oid) {
		t.Fatalf("encodePreHash did not place the SHA-256 OID where expected")
	}
	if !bytes.Equal(out[2+len(oid):], digest) {
		t.Fatalf("encodePreHash did not place the digest after the OID")
	}
}

func TestEncodePreHashRejectsWrongDigestLength(t *testing.T) {
	if _, err := encodePreHash(nil, HashSHA256, make([]byte, 10)); err == nil {
		t.Fatalf("encodePreHash accepted a SHA-256 digest of the wrong length")
	}
}

func TestEncodePreHashRejectsUnknownHash(t *testing.T) {
	_, err := encodePreHash(nil, HashID(99), make([]byte, 32))
	if err != ErrUnsupportedHash {
		t.Fatalf("encodePreHash(unknown HashID) = %v, want ErrUnsupportedHash", err)
	}
}

func TestPureAndPreHashEncodingsHaveDistinctDomainBytes(t *testing.T) {
	pure, _ := encodePure(nil, []byte("m"))
	preHash, _ := encodePreHash(nil, HashSHA256, bytes.Repeat([]byte{1}, 32))
	if pure[0] == preHash[0] {
		t.Fatalf("pure and pre-hash encodings share the same leading domain byte %#x", pure[0])
	}
}
