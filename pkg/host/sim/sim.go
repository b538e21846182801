// Package sim is an in-memory layout host for driving the engine without a
// real UI toolkit.
//
// It models a view tree with layout guides, a trait snapshot that views may
// override for their subtree, and native constraint records that remember
// whether they are active. Every batched Activate/Deactivate call is kept in
// the host's history so callers can check that one engine operation cost one
// solve.
//
//	host := sim.New(decl.Context{Device: decl.Phone})
//	root := sim.NewView("root")
//	card := root.AddSubview(sim.NewView("card"))
//	eng := engine.New(host)
//	eng.Layout(card, decl.Edges(decl.Eq(16)))
//	host.Active() // four constraints
package sim

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/matzehuels/anchorage/pkg/decl"
	"github.com/matzehuels/anchorage/pkg/engine"
)

// =============================================================================
// Elements
// =============================================================================

// View is a node of the simulated view tree.
type View struct {
	Name string

	// Traits overrides the host traits for this view and its subtree.
	Traits *decl.Context

	parent   *View
	children []*View
	guides   []*Guide
}

// NewView returns a detached view.
func NewView(name string) *View {
	return &View{Name: name}
}

// AddSubview attaches child to v, detaching it from any previous parent, and
// returns child.
func (v *View) AddSubview(child *View) *View {
	child.RemoveFromSuperview()
	child.parent = v
	v.children = append(v.children, child)
	return child
}

// RemoveFromSuperview detaches v from its parent.
func (v *View) RemoveFromSuperview() {
	if v.parent == nil {
		return
	}
	v.parent.children = slices.DeleteFunc(v.parent.children, func(c *View) bool { return c == v })
	v.parent = nil
}

// Superview returns the parent of v, or nil.
func (v *View) Superview() *View { return v.parent }

// Subviews returns a copy of v's children.
func (v *View) Subviews() []*View { return slices.Clone(v.children) }

// AddGuide creates a layout guide owned by v.
func (v *View) AddGuide(name string) *Guide {
	g := &Guide{Name: name, owner: v}
	v.guides = append(v.guides, g)
	return g
}

// Guides returns a copy of v's layout guides.
func (v *View) Guides() []*Guide { return slices.Clone(v.guides) }

func (v *View) String() string { return v.Name }

// Guide is a layout guide: a rectangle without rendering that is positioned
// inside its owning view.
type Guide struct {
	Name  string
	owner *View
}

// Owner returns the view the guide belongs to.
func (g *Guide) Owner() *View { return g.owner }

func (g *Guide) String() string { return g.Name }

// =============================================================================
// Constraints
// =============================================================================

// Constraint is a simulated native constraint.
type Constraint struct {
	ID     string
	Params engine.Params

	active bool
}

// Active reports whether the constraint is currently active.
func (c *Constraint) Active() bool { return c.active }

func (c *Constraint) String() string { return c.Params.String() }

// BatchKind distinguishes activation from deactivation batches.
type BatchKind int

const (
	BatchActivate BatchKind = iota
	BatchDeactivate
)

func (k BatchKind) String() string {
	if k == BatchDeactivate {
		return "deactivate"
	}
	return "activate"
}

// Batch is one Activate or Deactivate call received from the engine.
type Batch struct {
	Kind        BatchKind
	Constraints []*Constraint
}

// =============================================================================
// Host
// =============================================================================

// Host implements engine.Host in memory.
type Host struct {
	traits      decl.Context
	constraints []*Constraint
	history     []Batch
}

var _ engine.Host = (*Host)(nil)

// New returns a host with the given base traits.
func New(traits decl.Context) *Host {
	return &Host{traits: traits}
}

// SetTraits replaces the base traits. Views with their own Traits keep them.
func (h *Host) SetTraits(c decl.Context) { h.traits = c }

// Traits returns the base traits.
func (h *Host) Traits() decl.Context { return h.traits }

// MakeConstraint records an inactive constraint with a fresh ID.
func (h *Host) MakeConstraint(p engine.Params) decl.Constraint {
	c := &Constraint{ID: uuid.NewString(), Params: p}
	h.constraints = append(h.constraints, c)
	return c
}

// Activate marks cs active and records the batch.
func (h *Host) Activate(cs []decl.Constraint) {
	h.toggle(BatchActivate, cs, true)
}

// Deactivate marks cs inactive and records the batch.
func (h *Host) Deactivate(cs []decl.Constraint) {
	h.toggle(BatchDeactivate, cs, false)
}

func (h *Host) toggle(kind BatchKind, cs []decl.Constraint, on bool) {
	batch := Batch{Kind: kind}
	for _, c := range cs {
		sc, ok := c.(*Constraint)
		if !ok {
			panic(fmt.Sprintf("sim: foreign constraint %T", c))
		}
		sc.active = on
		batch.Constraints = append(batch.Constraints, sc)
	}
	h.history = append(h.history, batch)
}

// Container returns the superview of a view or the owner of a guide.
func (h *Host) Container(el decl.Element) decl.Element {
	switch e := el.(type) {
	case *View:
		if e.parent != nil {
			return e.parent
		}
	case *Guide:
		if e.owner != nil {
			return e.owner
		}
	}
	return nil
}

// Context returns the traits in effect for el: the nearest override on the
// way up the view tree, or the base traits.
func (h *Host) Context(el decl.Element) decl.Context {
	var v *View
	switch e := el.(type) {
	case *View:
		v = e
	case *Guide:
		v = e.owner
	}
	for ; v != nil; v = v.parent {
		if v.Traits != nil {
			return *v.Traits
		}
	}
	return h.traits
}

// Release deactivates every active constraint that mentions el, as a real
// toolkit does when a view is destroyed, and detaches views from their
// parent. The deactivation is recorded as one batch when non-empty.
func (h *Host) Release(el decl.Element) int {
	var cs []decl.Constraint
	for _, c := range h.constraints {
		if c.active && (c.Params.Item == el || c.Params.To == el) {
			cs = append(cs, c)
		}
	}
	if len(cs) > 0 {
		h.Deactivate(cs)
	}
	if v, ok := el.(*View); ok {
		v.RemoveFromSuperview()
	}
	return len(cs)
}

// Constraints returns every constraint ever made, in creation order.
func (h *Host) Constraints() []*Constraint {
	return slices.Clone(h.constraints)
}

// Active returns the active constraints in creation order.
func (h *Host) Active() []*Constraint {
	var out []*Constraint
	for _, c := range h.constraints {
		if c.active {
			out = append(out, c)
		}
	}
	return out
}

// ActiveFor returns the active constraints whose first item is el.
func (h *Host) ActiveFor(el decl.Element) []*Constraint {
	var out []*Constraint
	for _, c := range h.constraints {
		if c.active && c.Params.Item == el {
			out = append(out, c)
		}
	}
	return out
}

// History returns the batches received so far.
func (h *Host) History() []Batch {
	return slices.Clone(h.history)
}

// Solves returns the number of batches received, i.e. how many times a real
// solver would have run.
func (h *Host) Solves() int {
	return len(h.history)
}

// ResetHistory forgets the recorded batches.
func (h *Host) ResetHistory() {
	h.history = nil
}
