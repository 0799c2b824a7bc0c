package params

import "testing"

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("not-a-param-set"); err == nil {
		t.Fatalf("Lookup of unknown name did not error")
	}
}

func TestAllTwelveSets(t *testing.T) {
	all := All()
	if len(all) != 12 {
		t.Fatalf("All() returned %d sets, want 12", len(all))
	}
}

func TestSigSizeOfMatchesTable(t *testing.T) {
	for _, p := range All() {
		if got := p.SigSizeOf(); got != p.SigBytes {
			t.Errorf("%s: SigSizeOf() = %d, table says %d", p.Name, got, p.SigBytes)
		}
	}
}

func TestDerivedQuantities(t *testing.T) {
	p, err := Lookup(SHAKE_128s)
	if err != nil {
		t.Fatalf("Lookup: %s", err)
	}
	if p.W() != 16 {
		t.Fatalf("W() = %d, want 16", p.W())
	}
	if p.Len1() != 32 {
		t.Fatalf("Len1() = %d, want 32", p.Len1())
	}
	if p.Len2() != 3 {
		t.Fatalf("Len2() = %d, want 3", p.Len2())
	}
	if p.Len() != 35 {
		t.Fatalf("Len() = %d, want 35", p.Len())
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	a, _ := Lookup(SHA2_128s)
	b, _ := Lookup(SHA2_128s)
	a.N = 0
	if b.N == 0 {
		t.Fatalf("Lookup shares mutable state across callers")
	}
}
