package anchor

import "slices"

// info is the per-attribute row of the static taxonomy.
type info struct {
	opposite    Attribute
	orientation Orientation
	slot        Slot
	inverts     bool
}

var table = map[Attribute]info{
	Left:                 {Right, Horizontal, Near, false},
	Right:                {Left, Horizontal, Far, true},
	Leading:              {Trailing, Horizontal, Near, false},
	Trailing:             {Leading, Horizontal, Far, true},
	LeftMargin:           {RightMargin, Horizontal, Near, false},
	RightMargin:          {LeftMargin, Horizontal, Far, true},
	LeadingMargin:        {TrailingMargin, Horizontal, Near, false},
	TrailingMargin:       {LeadingMargin, Horizontal, Far, true},
	CenterX:              {CenterX, Horizontal, Center, false},
	CenterXWithinMargins: {CenterXWithinMargins, Horizontal, Center, false},
	Width:                {Width, Horizontal, Dimension, false},

	Top:                  {Bottom, Vertical, Near, false},
	Bottom:               {Top, Vertical, Far, true},
	FirstBaseline:        {LastBaseline, Vertical, Near, false},
	LastBaseline:         {FirstBaseline, Vertical, Far, true},
	TopMargin:            {BottomMargin, Vertical, Near, false},
	BottomMargin:         {TopMargin, Vertical, Far, true},
	CenterY:              {CenterY, Vertical, Center, false},
	CenterYWithinMargins: {CenterYWithinMargins, Vertical, Center, false},
	Height:               {Height, Vertical, Dimension, false},
}

var conflicts = map[Attribute][]Attribute{
	Width:  {Width},
	Height: {Height},

	Left:     {Left, CenterX, Leading, LeftMargin, CenterXWithinMargins, LeadingMargin},
	Right:    {Right, CenterX, Trailing, RightMargin, CenterXWithinMargins, TrailingMargin},
	Leading:  {Leading, CenterX, Left, LeadingMargin, LeftMargin, CenterXWithinMargins},
	Trailing: {Trailing, CenterX, Right, TrailingMargin, RightMargin, CenterXWithinMargins},
	CenterX: {CenterX, Left, Right, Leading, Trailing, LeftMargin, RightMargin,
		LeadingMargin, TrailingMargin, CenterXWithinMargins},
	LeftMargin:     {LeftMargin, Left, CenterX, Leading, LeadingMargin, CenterXWithinMargins},
	RightMargin:    {RightMargin, Right, CenterX, Trailing, TrailingMargin, CenterXWithinMargins},
	LeadingMargin:  {LeadingMargin, Leading, CenterX, Left, LeftMargin, CenterXWithinMargins},
	TrailingMargin: {TrailingMargin, Trailing, CenterX, Right, RightMargin, CenterXWithinMargins},
	CenterXWithinMargins: {CenterXWithinMargins, CenterX, Left, Right, Leading, Trailing,
		LeftMargin, RightMargin, LeadingMargin, TrailingMargin},

	Top:           {Top, CenterY, FirstBaseline, TopMargin, CenterYWithinMargins},
	Bottom:        {Bottom, CenterY, LastBaseline, BottomMargin, CenterYWithinMargins},
	FirstBaseline: {FirstBaseline, Top, CenterY, TopMargin, CenterYWithinMargins},
	LastBaseline:  {LastBaseline, Bottom, CenterY, BottomMargin, CenterYWithinMargins},
	CenterY: {CenterY, Top, Bottom, FirstBaseline, LastBaseline, TopMargin, BottomMargin,
		CenterYWithinMargins},
	TopMargin:    {TopMargin, Top, CenterY, FirstBaseline, CenterYWithinMargins},
	BottomMargin: {BottomMargin, Bottom, CenterY, LastBaseline, CenterYWithinMargins},
	CenterYWithinMargins: {CenterYWithinMargins, CenterY, Top, Bottom, FirstBaseline,
		LastBaseline, TopMargin, BottomMargin},
}

// Opposite returns the mirrored anchor on the same axis. Centers and
// dimensions are their own opposite. Opposite(None) is None.
func Opposite(a Attribute) Attribute {
	if row, ok := table[a]; ok {
		return row.opposite
	}
	return None
}

// ConflictSet returns the anchors that compete with a for the same physical
// position on its axis, a itself included. The returned slice is a copy.
func ConflictSet(a Attribute) []Attribute {
	return slices.Clone(conflicts[a])
}

// Conflicts reports whether b is in the conflict set of a.
func Conflicts(a, b Attribute) bool {
	return slices.Contains(conflicts[a], b)
}

// InvertsConstant reports whether a is a far anchor whose constant is an
// inset from the far side and must be negated for the native solver.
func InvertsConstant(a Attribute) bool {
	return table[a].inverts
}

// OrientationOf returns the axis a lives on.
func OrientationOf(a Attribute) Orientation {
	return table[a].orientation
}

// SlotOf classifies a into its node slot.
func SlotOf(a Attribute) Slot {
	return table[a].slot
}

// AxisKey returns the signature axis component for a: "x" and "y" for
// positional anchors, "w" and "h" for the two dimensions.
func AxisKey(a Attribute) string {
	switch {
	case a == Width:
		return "w"
	case a == Height:
		return "h"
	case OrientationOf(a) == Vertical:
		return "y"
	default:
		return "x"
	}
}
