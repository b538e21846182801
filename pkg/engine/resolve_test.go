package engine

import (
	"testing"

	"github.com/matzehuels/anchorage/pkg/anchor"
	"github.com/matzehuels/anchorage/pkg/decl"
)

func TestResolve(t *testing.T) {
	root := &view{name: "root"}
	box := &view{name: "box", parent: root}
	other := &view{name: "other", parent: root}

	tests := []struct {
		name string
		d    *decl.Declaration
		want Params
	}{
		{
			name: "positional defaults to container same anchor",
			d:    decl.New(anchor.Left, decl.Eq(10)),
			want: Params{Item: box, Attr: anchor.Left, Relation: decl.Equal, To: root, ToAttr: anchor.Left, Multiplier: 1, Constant: 10, Priority: 1000},
		},
		{
			name: "far anchor inverts constant",
			d:    decl.New(anchor.Right, decl.Eq(10)),
			want: Params{Item: box, Attr: anchor.Right, Relation: decl.Equal, To: root, ToAttr: anchor.Right, Multiplier: 1, Constant: -10, Priority: 1000},
		},
		{
			name: "far anchor swaps inequality",
			d:    decl.New(anchor.Bottom, decl.Gte(8)),
			want: Params{Item: box, Attr: anchor.Bottom, Relation: decl.LessOrEqual, To: root, ToAttr: anchor.Bottom, Multiplier: 1, Constant: -8, Priority: 1000},
		},
		{
			name: "sibling reference uses opposite anchor",
			d:    decl.New(anchor.Left, decl.Eq(12)).To(other, anchor.None),
			want: Params{Item: box, Attr: anchor.Left, Relation: decl.Equal, To: other, ToAttr: anchor.Right, Multiplier: 1, Constant: 12, Priority: 1000},
		},
		{
			name: "explicit reference anchor wins",
			d:    decl.New(anchor.Top, decl.Eq(0)).To(other, anchor.Top),
			want: Params{Item: box, Attr: anchor.Top, Relation: decl.Equal, To: other, ToAttr: anchor.Top, Multiplier: 1, Constant: 0, Priority: 1000},
		},
		{
			name: "explicit container reference uses same anchor",
			d:    decl.New(anchor.Top, decl.Eq(4)).To(root, anchor.None),
			want: Params{Item: box, Attr: anchor.Top, Relation: decl.Equal, To: root, ToAttr: anchor.Top, Multiplier: 1, Constant: 4, Priority: 1000},
		},
		{
			name: "dimension without reference is intrinsic",
			d:    decl.New(anchor.Width, decl.Eq(100)).WithPriority(decl.High),
			want: Params{Item: box, Attr: anchor.Width, Relation: decl.Equal, Multiplier: 1, Constant: 100, Priority: 750},
		},
		{
			name: "dimension multiplier binds to container",
			d:    decl.New(anchor.Height, decl.Mul(0.5)),
			want: Params{Item: box, Attr: anchor.Height, Relation: decl.Equal, To: root, ToAttr: anchor.Height, Multiplier: 0.5, Constant: 0, Priority: 1000},
		},
		{
			name: "dimension relative to sibling",
			d:    decl.New(anchor.Width, decl.Mul(2)).To(other, anchor.None),
			want: Params{Item: box, Attr: anchor.Width, Relation: decl.Equal, To: other, ToAttr: anchor.Width, Multiplier: 2, Constant: 0, Priority: 1000},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(box, root, tt.d)
			if got != tt.want {
				t.Errorf("Resolve() =\n  %+v\nwant\n  %+v", got, tt.want)
			}
		})
	}
}

func TestResolveDoesNotMutate(t *testing.T) {
	root := &view{name: "root"}
	box := &view{name: "box", parent: root}
	d := decl.New(anchor.Left, decl.Eq(1))

	Resolve(box, root, d)
	if d.Reference != nil || d.ReferenceAttr != anchor.None {
		t.Errorf("Resolve() mutated the declaration: %+v", d)
	}
}

func TestParamsString(t *testing.T) {
	root := &view{name: "root"}
	box := &view{name: "box", parent: root}

	tests := []struct {
		d    *decl.Declaration
		want string
	}{
		{decl.New(anchor.Left, decl.Eq(10)), "box.left == root.left + 10 @1000"},
		{decl.New(anchor.Right, decl.Eq(10)), "box.right == root.right - 10 @1000"},
		{decl.New(anchor.Width, decl.Gte(44)).WithPriority(decl.Low), "box.width >= 44 @1"},
		{decl.New(anchor.Height, decl.Mul(0.5)), "box.height == root.height * 0.5 @1000"},
	}
	for _, tt := range tests {
		if got := Resolve(box, root, tt.d).String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
