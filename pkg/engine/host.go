package engine

import (
	"fmt"
	"strconv"

	"github.com/matzehuels/anchorage/pkg/anchor"
	"github.com/matzehuels/anchorage/pkg/decl"
)

// Params describes one native constraint in the solver's own terms:
//
//	Item.Attr <Relation> To.ToAttr * Multiplier + Constant   @Priority
//
// Relation is never decl.MultipliedBy. To is nil and ToAttr is anchor.None
// for intrinsic dimension constraints.
type Params struct {
	Item       decl.Element
	Attr       anchor.Attribute
	Relation   decl.Relation
	To         decl.Element
	ToAttr     anchor.Attribute
	Multiplier float64
	Constant   float64
	Priority   float64
}

// Intrinsic reports whether p has no second anchor.
func (p Params) Intrinsic() bool {
	return p.To == nil
}

func (p Params) String() string {
	ftoa := func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
	if p.Intrinsic() {
		return fmt.Sprintf("%v.%s %s %s @%s", p.Item, p.Attr, p.Relation, ftoa(p.Constant), ftoa(p.Priority))
	}
	rhs := fmt.Sprintf("%v.%s", p.To, p.ToAttr)
	if p.Multiplier != 1 {
		rhs += " * " + ftoa(p.Multiplier)
	}
	if p.Constant != 0 {
		if p.Constant < 0 {
			rhs += " - " + ftoa(-p.Constant)
		} else {
			rhs += " + " + ftoa(p.Constant)
		}
	}
	return fmt.Sprintf("%v.%s %s %s @%s", p.Item, p.Attr, p.Relation, rhs, ftoa(p.Priority))
}

// Factory creates inactive native constraints.
type Factory interface {
	MakeConstraint(p Params) decl.Constraint
}

// Activator toggles native constraints in batches. Each call may trigger a
// full solve on the host.
type Activator interface {
	Activate(cs []decl.Constraint)
	Deactivate(cs []decl.Constraint)
}

// ContainerResolver returns the element that owns el, or nil when el is not
// attached yet.
type ContainerResolver interface {
	Container(el decl.Element) decl.Element
}

// ContextProvider returns the trait snapshot conditions are evaluated against.
type ContextProvider interface {
	Context(el decl.Element) decl.Context
}

// Host is everything the engine needs from the layout system.
type Host interface {
	Factory
	Activator
	ContainerResolver
	ContextProvider
}
