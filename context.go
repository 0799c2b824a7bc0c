package slhdsa

import (
	"fmt"

	"github.com/yawning/slhdsa/fors"
	"github.com/yawning/slhdsa/hypertree"
	"github.com/yawning/slhdsa/params"
	"github.com/yawning/slhdsa/suite"
)

// Context binds one named parameter set to its hash suite and the
// hypertree/FORS instances built on it. Build one per parameter set and
// reuse it across every key, sign and verify call for that parameter set —
// it holds no per-key state and is safe for concurrent use.
type Context struct {
	P  *params.Params
	S  suite.Suite
	HT *hypertree.HT
	F  *fors.FORS
}

// NewContext builds the Context for name.
func NewContext(name params.Name) (*Context, error) {
	p, err := params.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameters, err)
	}
	s := suite.New(p)
	return &Context{
		P:  p,
		S:  s,
		HT: hypertree.New(p, s),
		F:  fors.New(p, s),
	}, nil
}
