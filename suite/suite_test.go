package suite

import (
	"bytes"
	"crypto/sha512"
	"testing"

	"github.com/yawning/slhdsa/address"
	"github.com/yawning/slhdsa/params"
)

func allSuites(t *testing.T) map[params.Name]Suite {
	out := make(map[params.Name]Suite)
	for _, p := range params.All() {
		out[p.Name] = New(p)
	}
	return out
}

func TestPRFLengthMatchesN(t *testing.T) {
	for name, s := range allSuites(t) {
		p, _ := params.Lookup(name)
		out := s.PRF(make([]byte, p.N), make([]byte, p.N), address.Address{})
		if len(out) != p.N {
			t.Errorf("%s: PRF output length = %d, want %d", name, len(out), p.N)
		}
	}
}

func TestHMsgLengthMatchesM(t *testing.T) {
	for name, s := range allSuites(t) {
		p, _ := params.Lookup(name)
		out, err := s.HMsg(make([]byte, p.N), make([]byte, p.N), make([]byte, p.N), []byte("message"))
		if err != nil {
			t.Fatalf("%s: HMsg: %s", name, err)
		}
		if len(out) != p.M {
			t.Errorf("%s: HMsg output length = %d, want %d", name, len(out), p.M)
		}
	}
}

func TestFAndHDeterministic(t *testing.T) {
	p, _ := params.Lookup(params.SHAKE_128s)
	s := New(p)
	pkSeed := make([]byte, p.N)
	payload := make([]byte, p.N)
	a, b := s.F(pkSeed, address.Address{}, payload), s.F(pkSeed, address.Address{}, payload)
	if !bytes.Equal(a, b) {
		t.Fatalf("F not deterministic for identical inputs")
	}
	pair := make([]byte, 2*p.N)
	c, d := s.H(pkSeed, address.Address{}, pair), s.H(pkSeed, address.Address{}, pair)
	if !bytes.Equal(c, d) {
		t.Fatalf("H not deterministic for identical inputs")
	}
}

func TestDifferentAddressesDiverge(t *testing.T) {
	p, _ := params.Lookup(params.SHA2_192s)
	s := New(p)
	pkSeed := make([]byte, p.N)
	payload := make([]byte, p.N)

	var a1, a2 address.Address
	a1.SetKeyPairAddress(1)
	a2.SetKeyPairAddress(2)

	out1 := s.F(pkSeed, a1, payload)
	out2 := s.F(pkSeed, a2, payload)
	if bytes.Equal(out1, out2) {
		t.Fatalf("F gave identical output for distinct addresses")
	}
}

func TestSHA2SuiteSwitchesHashForLargeN(t *testing.T) {
	small, _ := params.Lookup(params.SHA2_128s)
	large, _ := params.Lookup(params.SHA2_256s)

	sSmall := New(small)
	sLarge := New(large)

	pkSeed := make([]byte, 32)
	payload := make([]byte, 32)
	outSmall := sSmall.H(pkSeed[:small.N], address.Address{}, payload[:small.N])
	outLarge := sLarge.H(pkSeed[:large.N], address.Address{}, payload[:large.N])

	if len(outSmall) != small.N || len(outLarge) != large.N {
		t.Fatalf("H output length mismatch: %d, %d", len(outSmall), len(outLarge))
	}

	cb := address.Address{}.CompressedBytes()
	h := sha512.New()
	h.Write(pkSeed[:large.N])
	h.Write(make([]byte, 128-large.N))
	h.Write(cb[:])
	h.Write(payload[:large.N])
	if want := h.Sum(nil)[:large.N]; !bytes.Equal(outLarge, want) {
		t.Fatalf("large-n H is not the SHA-512-based construction:\n got  %x\n want %x", outLarge, want)
	}
}
