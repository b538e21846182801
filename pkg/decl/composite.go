package decl

import "github.com/matzehuels/anchorage/pkg/anchor"

// Item is anything that expands into declarations: a *Declaration or a
// Composite.
type Item interface {
	Declarations() []*Declaration
}

// Composite is an ordered bundle of items sharing one lifecycle.
// Composites may nest; they are never stored by the engine.
type Composite []Item

// Declarations flattens c recursively, preserving order.
func (c Composite) Declarations() []*Declaration {
	var out []*Declaration
	for _, it := range c {
		if it == nil {
			continue
		}
		out = append(out, it.Declarations()...)
	}
	return out
}

// WithPriority sets p on every member declaration.
func (c Composite) WithPriority(p Priority) Composite {
	for _, d := range c.Declarations() {
		d.Priority = p
	}
	return c
}

// WhenContext gates every member declaration on cond.
func (c Composite) WhenContext(cond Condition) Composite {
	for _, d := range c.Declarations() {
		d.Condition = cond
	}
	return c
}

// To sets the reference element of every member, leaving anchors to be
// resolved on install.
func (c Composite) To(el Element) Composite {
	for _, d := range c.Declarations() {
		d.Reference = el
	}
	return c
}

// Flatten expands items into plain declarations, in order. Nil items and nil
// declarations are skipped.
func Flatten(items ...Item) []*Declaration {
	return Composite(items).Declarations()
}

func group(c Constant, attrs ...anchor.Attribute) Composite {
	out := make(Composite, len(attrs))
	for i, a := range attrs {
		out[i] = New(a, c)
	}
	return out
}

// Edges pins top, left, bottom and right with the same constant.
func Edges(c Constant) Composite {
	return group(c, anchor.Top, anchor.Left, anchor.Bottom, anchor.Right)
}

// Margins pins the four margin-relative edges with the same constant.
func Margins(c Constant) Composite {
	return group(c, anchor.TopMargin, anchor.LeftMargin, anchor.BottomMargin, anchor.RightMargin)
}

// Size constrains width and height with the same constant.
func Size(c Constant) Composite {
	return group(c, anchor.Width, anchor.Height)
}

// Center constrains centerX and centerY with the same constant.
func Center(c Constant) Composite {
	return group(c, anchor.CenterX, anchor.CenterY)
}
