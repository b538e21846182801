package decl

import (
	"fmt"
	"strings"

	"github.com/matzehuels/anchorage/pkg/anchor"
)

// Element is an opaque handle to a host view or layout guide.
// Handles are used as map keys and must be comparable; hosts typically use
// pointers.
type Element any

// Constraint is an opaque native constraint object produced by the host.
// Constraints are compared by ==, so hosts typically use pointers.
type Constraint any

// Declaration is a single desired relationship between two anchors.
//
// Declarations are compared by pointer identity. The zero Reference and
// ReferenceAttr are resolved when the declaration is installed: see the
// engine package for the rules.
type Declaration struct {
	// Attr is the anchor of the element the declaration is applied to.
	Attr anchor.Attribute
	// Constant holds the value and relation.
	Constant Constant
	// Priority partitions declarations and is passed to the solver.
	Priority Priority
	// Condition gates installation. Nil always holds.
	Condition Condition
	// Reference is the element related to. Nil means "resolve on install".
	Reference Element
	// ReferenceAttr is the anchor of Reference. anchor.None means "resolve on install".
	ReferenceAttr anchor.Attribute

	constraint Constraint
	owner      Element
	signature  string
}

// New returns a required-priority declaration for attr.
func New(attr anchor.Attribute, c Constant) *Declaration {
	return &Declaration{Attr: attr, Constant: c, Priority: Required}
}

// To sets the reference element and, optionally, its anchor.
// Passing anchor.None leaves the reference anchor to be resolved on install.
func (d *Declaration) To(el Element, attr anchor.Attribute) *Declaration {
	d.Reference = el
	d.ReferenceAttr = attr
	return d
}

// WithPriority sets the priority.
func (d *Declaration) WithPriority(p Priority) *Declaration {
	d.Priority = p
	return d
}

// When gates the declaration on a context-free predicate.
func (d *Declaration) When(fn func() bool) *Declaration {
	if fn == nil {
		d.Condition = nil
		return d
	}
	d.Condition = func(Context) bool { return fn() }
	return d
}

// WhenContext gates the declaration on a trait predicate.
func (d *Declaration) WhenContext(c Condition) *Declaration {
	d.Condition = c
	return d
}

// ShouldInstall evaluates the condition against ctx.
func (d *Declaration) ShouldInstall(ctx Context) bool {
	return d.Condition == nil || d.Condition(ctx)
}

// Constraint returns the native constraint bound to d, or nil before install.
func (d *Declaration) Constraint() Constraint {
	return d.constraint
}

// Bound reports whether a native constraint has been bound to d.
func (d *Declaration) Bound() bool {
	return d.constraint != nil
}

// Bind attaches d to el with the native constraint produced for it. The
// constraint, the owning element and the signature are recorded once; later
// calls are ignored and report false.
func (d *Declaration) Bind(el Element, c Constraint) bool {
	if d.constraint != nil || c == nil {
		return false
	}
	d.constraint = c
	d.owner = el
	d.signature = Signature(d)
	return true
}

// Owner returns the element d was bound on, or nil before install.
func (d *Declaration) Owner() Element {
	return d.owner
}

// Signature returns the partition key of d. Once bound it no longer follows
// edits to Priority or Constant. See [Signature].
func (d *Declaration) Signature() string {
	if d.constraint != nil {
		return d.signature
	}
	return Signature(d)
}

// Declarations implements Item.
func (d *Declaration) Declarations() []*Declaration {
	if d == nil {
		return nil
	}
	return []*Declaration{d}
}

func (d *Declaration) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", d.Attr, d.Constant)
	if d.Reference != nil {
		fmt.Fprintf(&b, " to %v", d.Reference)
		if d.ReferenceAttr != anchor.None {
			fmt.Fprintf(&b, ".%s", d.ReferenceAttr)
		}
	}
	fmt.Fprintf(&b, " @%s", d.Priority)
	if d.Condition != nil {
		b.WriteString(" (conditional)")
	}
	return b.String()
}
