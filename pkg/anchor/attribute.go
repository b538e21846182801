package anchor

import (
	"fmt"
	"strings"
)

// Attribute is a geometric anchor of a layout element.
// The zero value None means "unset" and is only valid as a reference anchor
// that has not been resolved yet.
type Attribute int

const (
	None Attribute = iota
	Left
	Right
	Top
	Bottom
	Leading
	Trailing
	Width
	Height
	CenterX
	CenterY
	FirstBaseline
	LastBaseline
	LeftMargin
	RightMargin
	TopMargin
	BottomMargin
	LeadingMargin
	TrailingMargin
	CenterXWithinMargins
	CenterYWithinMargins
)

var names = [...]string{
	None:                 "none",
	Left:                 "left",
	Right:                "right",
	Top:                  "top",
	Bottom:               "bottom",
	Leading:              "leading",
	Trailing:             "trailing",
	Width:                "width",
	Height:               "height",
	CenterX:              "centerX",
	CenterY:              "centerY",
	FirstBaseline:        "firstBaseline",
	LastBaseline:         "lastBaseline",
	LeftMargin:           "leftMargin",
	RightMargin:          "rightMargin",
	TopMargin:            "topMargin",
	BottomMargin:         "bottomMargin",
	LeadingMargin:        "leadingMargin",
	TrailingMargin:       "trailingMargin",
	CenterXWithinMargins: "centerXWithinMargins",
	CenterYWithinMargins: "centerYWithinMargins",
}

// String returns the lowerCamel name of the attribute (e.g. "centerX").
func (a Attribute) String() string {
	if a.Valid() || a == None {
		return names[a]
	}
	return fmt.Sprintf("Attribute(%d)", int(a))
}

// Valid reports whether a is one of the concrete anchors (not None).
func (a Attribute) Valid() bool {
	return a > None && a <= CenterYWithinMargins
}

// IsDimension reports whether a is Width or Height.
func (a Attribute) IsDimension() bool {
	return a == Width || a == Height
}

// All returns every concrete attribute in declaration order.
func All() []Attribute {
	out := make([]Attribute, 0, len(names)-1)
	for a := Left; a <= CenterYWithinMargins; a++ {
		out = append(out, a)
	}
	return out
}

// Parse resolves an attribute name. Matching is case-insensitive and accepts
// the dashed form as well ("center-x", "leading-margin").
func Parse(name string) (Attribute, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "-", ""))
	for a := Left; a <= CenterYWithinMargins; a++ {
		if strings.ToLower(names[a]) == key {
			return a, nil
		}
	}
	return None, fmt.Errorf("unknown attribute %q", name)
}

// =============================================================================
// Orientation
// =============================================================================

// Orientation is the axis an attribute lives on.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns "horizontal" or "vertical".
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// =============================================================================
// Slots
// =============================================================================

// Slot is the coarse occupancy category an attribute fills inside one
// reconciliation node. The meaning of Near and Far depends on the axis, which
// is always fixed for a given node.
type Slot int

const (
	Near Slot = iota
	Far
	Center
	Dimension
)

// Slots lists every slot kind in node order.
var Slots = [...]Slot{Near, Far, Center, Dimension}

// String returns the lowercase slot name.
func (s Slot) String() string {
	switch s {
	case Near:
		return "near"
	case Far:
		return "far"
	case Center:
		return "center"
	case Dimension:
		return "dimension"
	}
	return fmt.Sprintf("Slot(%d)", int(s))
}
