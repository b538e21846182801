package engine

import (
	"github.com/matzehuels/anchorage/pkg/anchor"
	"github.com/matzehuels/anchorage/pkg/decl"
)

type view struct {
	name   string
	parent *view
}

func (v *view) String() string { return v.name }

type fakeConstraint struct {
	params Params
	active bool
}

// fakeHost records every call the engine makes.
type fakeHost struct {
	ctx             decl.Context
	made            []*fakeConstraint
	activateCalls   int
	deactivateCalls int
}

func (h *fakeHost) MakeConstraint(p Params) decl.Constraint {
	c := &fakeConstraint{params: p}
	h.made = append(h.made, c)
	return c
}

func (h *fakeHost) Activate(cs []decl.Constraint) {
	h.activateCalls++
	for _, c := range cs {
		c.(*fakeConstraint).active = true
	}
}

func (h *fakeHost) Deactivate(cs []decl.Constraint) {
	h.deactivateCalls++
	for _, c := range cs {
		c.(*fakeConstraint).active = false
	}
}

func (h *fakeHost) Container(el decl.Element) decl.Element {
	v, ok := el.(*view)
	if !ok || v.parent == nil {
		return nil
	}
	return v.parent
}

func (h *fakeHost) Context(decl.Element) decl.Context { return h.ctx }

func (h *fakeHost) activeCount() int {
	n := 0
	for _, c := range h.made {
		if c.active {
			n++
		}
	}
	return n
}

// bound returns a declaration with a native constraint already bound, for
// driving a Node directly.
func bound(attr anchor.Attribute, c decl.Constant) *decl.Declaration {
	d := decl.New(attr, c)
	d.Bind(nil, &fakeConstraint{params: Params{Attr: attr}})
	return d
}

func hasConstraint(cs []decl.Constraint, d *decl.Declaration) bool {
	for _, c := range cs {
		if c == d.Constraint() {
			return true
		}
	}
	return false
}
