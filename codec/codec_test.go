package codec

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestToIntToByteRoundTrip(t *testing.T) {
	cases := []struct {
		v uint64
		n int
	}{
		{0, 1}, {1, 1}, {255, 1}, {256, 2}, {0xdeadbeef, 4}, {0x0102030405060708, 8},
	}
	for _, c := range cases {
		b := ToByte(c.v, c.n)
		if len(b) != c.n {
			t.Fatalf("ToByte(%d, %d): got %d bytes", c.v, c.n, len(b))
		}
		got := ToInt(b, c.n)
		if got != c.v {
			t.Fatalf("ToInt(ToByte(%d, %d)) = %d", c.v, c.n, got)
		}
	}
}

func TestBase2BSplitsMSBFirst(t *testing.T) {
	// 0xA5 = 1010_0101, split into four base-4 digits: 2,2,1,1.
	got := Base2B([]byte{0xA5}, 2, 4)
	want := []int{2, 2, 1, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Base2B digit %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestBase2BNibbles(t *testing.T) {
	got := Base2B([]byte{0x12, 0x34}, 4, 4)
	want := []int{1, 2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("nibble %d = %d, want %d", i, got[i], want[i])
		}
	}
}

// TestBase2BReassemblesBigEndian checks the universal invariant from
// spec.md §8: splitting into base-2^b digits and reassembling them
// big-endian recovers the original bytes (up to the expected trailing
// zero padding when outLen*b isn't a multiple of 8).
func TestBase2BReassemblesBigEndian(t *testing.T) {
	x := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	digits := Base2B(x, 8, 4) // b=8 means each digit is a whole byte
	for i, d := range digits {
		if byte(d) != x[i] {
			t.Fatalf("digit %d = %#x, want %#x", i, d, x[i])
		}
	}

	nibbles := Base2B(x, 4, 8)
	reassembled := make([]byte, 4)
	for i := 0; i < 4; i++ {
		reassembled[i] = byte(nibbles[2*i]<<4 | nibbles[2*i+1])
	}
	if !bytes.Equal(reassembled, x) {
		t.Fatalf("Base2B(b=4) reassembled = %x, want %x", reassembled, x)
	}
}

func TestMGF1Length(t *testing.T) {
	out, err := MGF1([]byte("seed"), 100, sha256.New)
	if err != nil {
		t.Fatalf("MGF1: %s", err)
	}
	if len(out) != 100 {
		t.Fatalf("MGF1 returned %d bytes, want 100", len(out))
	}
}

func TestMGF1Deterministic(t *testing.T) {
	a, err := MGF1([]byte("seed"), 77, sha256.New)
	if err != nil {
		t.Fatalf("MGF1: %s", err)
	}
	b, err := MGF1([]byte("seed"), 77, sha256.New)
	if err != nil {
		t.Fatalf("MGF1: %s", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("MGF1 not deterministic for identical inputs")
	}
}

func TestMGF1DifferentSeedsDiffer(t *testing.T) {
	a, _ := MGF1([]byte("seed-a"), 32, sha256.New)
	b, _ := MGF1([]byte("seed-b"), 32, sha256.New)
	if bytes.Equal(a, b) {
		t.Fatalf("MGF1 produced identical output for different seeds")
	}
}

// TestMGF1GroundTruth is the spec's literal MGF1 vector: SHA-256, a 32-byte
// output, over a 32-byte seed built by repeating the 8-byte pattern
// 0123456789abcdef four times.
func TestMGF1GroundTruth(t *testing.T) {
	seed, err := hex.DecodeString("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef")
	if err != nil {
		t.Fatalf("bad seed fixture: %s", err)
	}
	want, err := hex.DecodeString("c03f158d5a21c640563a1045774d5928ec4afd4cb550bb28dbbe5099cf51380a")
	if err != nil {
		t.Fatalf("bad expected-output fixture: %s", err)
	}

	got, err := MGF1(seed, len(want), sha256.New)
	if err != nil {
		t.Fatalf("MGF1: %s", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("MGF1 ground truth mismatch:\n got  %x\n want %x", got, want)
	}
}

func TestConstantTimeCompare(t *testing.T) {
	if !ConstantTimeCompare([]byte("abc"), []byte("abc")) {
		t.Fatalf("equal slices compared unequal")
	}
	if ConstantTimeCompare([]byte("abc"), []byte("abd")) {
		t.Fatalf("unequal slices compared equal")
	}
	if ConstantTimeCompare([]byte("abc"), []byte("ab")) {
		t.Fatalf("different-length slices compared equal")
	}
}
