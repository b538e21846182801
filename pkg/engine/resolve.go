package engine

import (
	"github.com/matzehuels/anchorage/pkg/anchor"
	"github.com/matzehuels/anchorage/pkg/decl"
)

// Resolve computes the native constraint parameters for d applied to el,
// whose container is container. It never mutates d: defaults are bound late
// because a declaration may be written before its element has a container.
func Resolve(el, container decl.Element, d *decl.Declaration) Params {
	p := Params{
		Item:     el,
		Attr:     d.Attr,
		Relation: d.Constant.Relation,
		Priority: d.Priority.Value(),
	}
	p.Multiplier, p.Constant = d.Constant.Multiplier()
	if p.Relation == decl.MultipliedBy {
		p.Relation = decl.Equal
	}

	ref := d.Reference
	if ref == nil && (!d.Attr.IsDimension() || d.Constant.Relation == decl.MultipliedBy) {
		ref = container
	}
	if ref != nil {
		p.To = ref
		p.ToAttr = d.ReferenceAttr
		if p.ToAttr == anchor.None {
			if ref == container {
				p.ToAttr = d.Attr
			} else {
				p.ToAttr = anchor.Opposite(d.Attr)
			}
		}
	}

	if anchor.InvertsConstant(d.Attr) {
		if p.Constant != 0 {
			p.Constant = -p.Constant
		}
		p.Relation = p.Relation.Inverse()
	}
	return p
}
