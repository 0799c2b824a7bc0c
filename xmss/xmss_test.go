package xmss

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/yawning/slhdsa/address"
	"github.com/yawning/slhdsa/params"
	"github.com/yawning/slhdsa/suite"
)

// TestXmssNodeVector3 is spec.md §8 scenario 3: SHAKE-128f, SK.seed all
// 0x01, PK.seed all 0x02, ADRS zero, the subtree root at height z=3 leaf
// i=0.
func TestXmssNodeVector3(t *testing.T) {
	p, err := params.Lookup(params.SHAKE_128f)
	if err != nil {
		t.Fatalf("Lookup: %s", err)
	}
	x := New(p, suite.New(p))

	skSeed := bytes.Repeat([]byte{0x01}, p.N)
	pkSeed := bytes.Repeat([]byte{0x02}, p.N)

	root, err := x.Node(skSeed, 0, 3, pkSeed, address.Address{})
	if err != nil {
		t.Fatalf("Node: %s", err)
	}

	want, err := hex.DecodeString("94e24679fb2460b97332db131c38bec9")
	if err != nil {
		t.Fatalf("bad expected-output fixture: %s", err)
	}
	if !bytes.Equal(root, want) {
		t.Fatalf("Node vector 3 mismatch:\n got  %x\n want %x", root, want)
	}
}

func TestSignThenPkFromSigMatchesNode(t *testing.T) {
	for _, name := range []params.Name{params.SHAKE_128s, params.SHA2_192f} {
		p, err := params.Lookup(name)
		if err != nil {
			t.Fatalf("Lookup: %s", err)
		}
		x := New(p, suite.New(p))

		skSeed := bytes.Repeat([]byte{0x01}, p.N)
		pkSeed := bytes.Repeat([]byte{0x02}, p.N)
		msg := bytes.Repeat([]byte{0x03}, p.N)

		var adrs address.Address
		adrs.SetLayerAddress(1)
		adrs.SetTreeAddress(address.TreeIndexFromUint64(3))

		const idx = 2
		root, err := x.Node(skSeed, 0, p.HPrime, pkSeed, adrs)
		if err != nil {
			t.Fatalf("%s: Node: %s", name, err)
		}

		sig, err := x.Sign(msg, skSeed, idx, pkSeed, adrs)
		if err != nil {
			t.Fatalf("%s: Sign: %s", name, err)
		}
		wantLen := (p.Len() + p.HPrime) * p.N
		if len(sig) != wantLen {
			t.Fatalf("%s: signature length = %d, want %d", name, len(sig), wantLen)
		}

		recovered, err := x.PkFromSig(idx, sig, msg, pkSeed, adrs)
		if err != nil {
			t.Fatalf("%s: PkFromSig: %s", name, err)
		}
		if !bytes.Equal(root, recovered) {
			t.Fatalf("%s: PkFromSig(Sign(m)) != Node(root)", name)
		}
	}
}

func TestPkFromSigRejectsShortSignature(t *testing.T) {
	p, _ := params.Lookup(params.SHAKE_128s)
	x := New(p, suite.New(p))
	_, err := x.PkFromSig(0, make([]byte, 3), make([]byte, p.N), make([]byte, p.N), address.Address{})
	if err == nil {
		t.Fatalf("PkFromSig accepted a too-short signature")
	}
}

func TestWrongLeafIndexDiverges(t *testing.T) {
	p, _ := params.Lookup(params.SHAKE_128s)
	x := New(p, suite.New(p))

	skSeed := bytes.Repeat([]byte{0x09}, p.N)
	pkSeed := bytes.Repeat([]byte{0x0a}, p.N)
	msg := bytes.Repeat([]byte{0x0b}, p.N)

	sig, err := x.Sign(msg, skSeed, 1, pkSeed, address.Address{})
	if err != nil {
		t.Fatalf("Sign: %s", err)
	}
	root, _ := x.Node(skSeed, 0, p.HPrime, pkSeed, address.Address{})

	recovered, err := x.PkFromSig(2, sig, msg, pkSeed, address.Address{})
	if err != nil {
		t.Fatalf("PkFromSig: %s", err)
	}
	if bytes.Equal(root, recovered) {
		t.Fatalf("PkFromSig recovered the true root under the wrong leaf index")
	}
}
