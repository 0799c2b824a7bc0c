// Package params defines the twelve named SLH-DSA parameter sets from
// FIPS 205 and the derived quantities (w, len1, len2, len) every other
// package needs.
package params

import "fmt"

// Name identifies one of the twelve parameter sets.
type Name string

const (
	SHA2_128s  Name = "SLH-DSA-SHA2-128s"
	SHA2_128f  Name = "SLH-DSA-SHA2-128f"
	SHA2_192s  Name = "SLH-DSA-SHA2-192s"
	SHA2_192f  Name = "SLH-DSA-SHA2-192f"
	SHA2_256s  Name = "SLH-DSA-SHA2-256s"
	SHA2_256f  Name = "SLH-DSA-SHA2-256f"
	SHAKE_128s Name = "SLH-DSA-SHAKE-128s"
	SHAKE_128f Name = "SLH-DSA-SHAKE-128f"
	SHAKE_192s Name = "SLH-DSA-SHAKE-192s"
	SHAKE_192f Name = "SLH-DSA-SHAKE-192f"
	SHAKE_256s Name = "SLH-DSA-SHAKE-256s"
	SHAKE_256f Name = "SLH-DSA-SHAKE-256f"
)

// Family selects which hash-suite construction a parameter set binds.
// FamilySHA2Small and FamilySHA2Large differ in which SHA-2 variant backs
// H/T_l, PRF_msg (HMAC) and H_msg (SHA-256 vs SHA-512); PRF/F are always
// SHA-256 in both.
type Family int

const (
	FamilyShake Family = iota
	FamilySHA2Small
	FamilySHA2Large
)

// Params is one named parameter tuple plus its derived quantities.
type Params struct {
	Name     Name
	Family   Family
	N        int // security parameter, in bytes
	H        int // total hypertree height
	D        int // number of hypertree layers
	HPrime   int // per-XMSS-layer height (H / D)
	A        int // FORS per-tree height
	K        int // number of FORS trees
	LgW      int // log2(w); always 4
	M        int // message-digest length in bytes
	Category int // NIST security category (1, 3, or 5)
	PKBytes  int
	SigBytes int
}

// W is the WOTS+ chain base (always 16).
func (p *Params) W() int { return 1 << p.LgW }

// Len1 is the number of WOTS+ chains carrying message digits.
func (p *Params) Len1() int { return 2 * p.N }

// Len2 is the number of WOTS+ chains carrying the checksum.
func (p *Params) Len2() int { return 3 }

// Len is the total number of WOTS+ chains.
func (p *Params) Len() int { return p.Len1() + p.Len2() }

var table = map[Name]*Params{
	SHA2_128s: {Name: SHA2_128s, Family: FamilySHA2Small, N: 16, H: 63, D: 7, HPrime: 9, A: 12, K: 14, LgW: 4, M: 30, Category: 1, PKBytes: 32, SigBytes: 7856},
	SHA2_128f: {Name: SHA2_128f, Family: FamilySHA2Small, N: 16, H: 66, D: 22, HPrime: 3, A: 6, K: 33, LgW: 4, M: 34, Category: 1, PKBytes: 32, SigBytes: 17088},
	SHA2_192s: {Name: SHA2_192s, Family: FamilySHA2Large, N: 24, H: 63, D: 7, HPrime: 9, A: 14, K: 17, LgW: 4, M: 39, Category: 3, PKBytes: 48, SigBytes: 16224},
	SHA2_192f: {Name: SHA2_192f, Family: FamilySHA2Large, N: 24, H: 66, D: 22, HPrime: 3, A: 8, K: 33, LgW: 4, M: 42, Category: 3, PKBytes: 48, SigBytes: 35664},
	SHA2_256s: {Name: SHA2_256s, Family: FamilySHA2Large, N: 32, H: 64, D: 8, HPrime: 8, A: 14, K: 22, LgW: 4, M: 47, Category: 5, PKBytes: 64, SigBytes: 29792},
	SHA2_256f: {Name: SHA2_256f, Family: FamilySHA2Large, N: 32, H: 68, D: 17, HPrime: 4, A: 9, K: 35, LgW: 4, M: 49, Category: 5, PKBytes: 64, SigBytes: 49856},

	SHAKE_128s: {Name: SHAKE_128s, Family: FamilyShake, N: 16, H: 63, D: 7, HPrime: 9, A: 12, K: 14, LgW: 4, M: 30, Category: 1, PKBytes: 32, SigBytes: 7856},
	SHAKE_128f: {Name: SHAKE_128f, Family: FamilyShake, N: 16, H: 66, D: 22, HPrime: 3, A: 6, K: 33, LgW: 4, M: 34, Category: 1, PKBytes: 32, SigBytes: 17088},
	SHAKE_192s: {Name: SHAKE_192s, Family: FamilyShake, N: 24, H: 63, D: 7, HPrime: 9, A: 14, K: 17, LgW: 4, M: 39, Category: 3, PKBytes: 48, SigBytes: 16224},
	SHAKE_192f: {Name: SHAKE_192f, Family: FamilyShake, N: 24, H: 66, D: 22, HPrime: 3, A: 8, K: 33, LgW: 4, M: 42, Category: 3, PKBytes: 48, SigBytes: 35664},
	SHAKE_256s: {Name: SHAKE_256s, Family: FamilyShake, N: 32, H: 64, D: 8, HPrime: 8, A: 14, K: 22, LgW: 4, M: 47, Category: 5, PKBytes: 64, SigBytes: 29792},
	SHAKE_256f: {Name: SHAKE_256f, Family: FamilyShake, N: 32, H: 68, D: 17, HPrime: 4, A: 9, K: 35, LgW: 4, M: 49, Category: 5, PKBytes: 64, SigBytes: 49856},
}

// Lookup returns the parameter tuple for name, or an error if name is not
// one of the twelve defined sets.
func Lookup(name Name) (*Params, error) {
	p, ok := table[name]
	if !ok {
		return nil, fmt.Errorf("params: unknown parameter set %q", name)
	}
	cp := *p
	return &cp, nil
}

// All returns every defined parameter set, in table order.
func All() []*Params {
	names := []Name{
		SHA2_128s, SHA2_128f, SHA2_192s, SHA2_192f, SHA2_256s, SHA2_256f,
		SHAKE_128s, SHAKE_128f, SHAKE_192s, SHAKE_192f, SHAKE_256s, SHAKE_256f,
	}
	out := make([]*Params, 0, len(names))
	for _, n := range names {
		p, _ := Lookup(n)
		out = append(out, p)
	}
	return out
}

// SigSizeOf computes n + k(1+a)n + d(h'+len)n directly from the tuple's
// fields, as a cross-check against the table's literal SigBytes.
func (p *Params) SigSizeOf() int {
	length := p.Len()
	return p.N + p.K*(1+p.A)*p.N + p.D*(p.HPrime+length)*p.N
}

// ForsSigBytes is the length of a FORS signature: k*(1+a)*n bytes.
func (p *Params) ForsSigBytes() int { return p.K * (1 + p.A) * p.N }

// XMSSSigBytes is the length of a single XMSS signature: (h'+len)*n bytes.
func (p *Params) XMSSSigBytes() int { return (p.HPrime + p.Len()) * p.N }

// HTSigBytes is the length of a hypertree signature: d*(h'+len)*n bytes.
func (p *Params) HTSigBytes() int { return p.D * p.XMSSSigBytes() }
