package engine

import (
	"slices"

	"github.com/matzehuels/anchorage/pkg/anchor"
	"github.com/matzehuels/anchorage/pkg/decl"
)

// evictions lists, per slot, the slots cleared when a declaration is installed
// into it. Dimension leaves Center alone.
var evictions = [...][]anchor.Slot{
	anchor.Near:      {anchor.Near, anchor.Center},
	anchor.Far:       {anchor.Far, anchor.Center},
	anchor.Center:    {anchor.Center, anchor.Near, anchor.Far},
	anchor.Dimension: {anchor.Dimension, anchor.Near, anchor.Far},
}

// Node reconciles the declarations of one element that share a signature.
//
// The slot assignment is the whole state: each of the four slots holds at
// most one declaration, and the inactive list remembers declarations whose
// condition was false the last time they were evaluated. A declaration is in
// at most one of these five locations.
//
// The zero Node is empty and ready to use.
type Node struct {
	slots    [len(anchor.Slots)]*decl.Declaration
	inactive []*decl.Declaration
}

// Add evaluates d against ctx and installs it.
//
// If the condition is false, d is remembered in the inactive list; if it was
// installed it is vacated and its constraint deactivated. If d already
// occupies its slot, Add is a no-op. Otherwise the slots listed by the
// eviction rule are cleared and d takes its slot.
func (n *Node) Add(d *decl.Declaration, ctx decl.Context) Changes {
	var ch Changes

	if !d.ShouldInstall(ctx) {
		if s, ok := n.locate(d); ok {
			n.slots[s] = nil
			ch.AddDeactivation(d.Constraint())
		}
		if !slices.Contains(n.inactive, d) {
			n.inactive = append(n.inactive, d)
		}
		return ch
	}

	k := anchor.SlotOf(d.Attr)
	if n.slots[k] == d {
		return ch
	}
	n.inactive = slices.DeleteFunc(n.inactive, func(x *decl.Declaration) bool { return x == d })

	for _, s := range evictions[k] {
		if old := n.slots[s]; old != nil {
			ch.AddDeactivation(old.Constraint())
			n.slots[s] = nil
		}
	}
	n.slots[k] = d
	ch.AddActivation(d.Constraint())
	return ch
}

// Reload re-tests every declaration the node knows about. Installed
// declarations are re-added first, then the previously inactive ones, against
// a fresh inactive list.
func (n *Node) Reload(ctx decl.Context) Changes {
	active := n.Active()
	previouslyInactive := n.inactive
	n.inactive = nil

	var ch Changes
	for _, d := range active {
		ch.Merge(n.Add(d, ctx))
	}
	for _, d := range previouslyInactive {
		ch.Merge(n.Add(d, ctx))
	}
	return ch
}

// Clear empties the node and returns the constraints of every installed
// declaration for deactivation.
func (n *Node) Clear() Changes {
	var ch Changes
	for i, d := range n.slots {
		if d != nil {
			ch.AddDeactivation(d.Constraint())
		}
		n.slots[i] = nil
	}
	n.inactive = nil
	return ch
}

// Occupant returns the declaration installed in slot s, or nil.
func (n *Node) Occupant(s anchor.Slot) *decl.Declaration {
	return n.slots[s]
}

// Active returns the installed declarations in slot order.
func (n *Node) Active() []*decl.Declaration {
	var out []*decl.Declaration
	for _, d := range n.slots {
		if d != nil {
			out = append(out, d)
		}
	}
	return out
}

// Inactive returns a copy of the inactive list.
func (n *Node) Inactive() []*decl.Declaration {
	return slices.Clone(n.inactive)
}

// Installed reports whether d currently occupies a slot of n.
func (n *Node) Installed(d *decl.Declaration) bool {
	_, ok := n.locate(d)
	return ok
}

// Empty reports whether the node holds nothing at all.
func (n *Node) Empty() bool {
	return len(n.Active()) == 0 && len(n.inactive) == 0
}

func (n *Node) locate(d *decl.Declaration) (anchor.Slot, bool) {
	if d == nil {
		return 0, false
	}
	for i, x := range n.slots {
		if x == d {
			return anchor.Slot(i), true
		}
	}
	return 0, false
}
