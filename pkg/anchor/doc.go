// Package anchor defines the geometric anchors a layout declaration can target.
//
// An [Attribute] names one geometric property of an element: an edge, a
// center, a baseline, a margin-relative edge or a dimension. The package is
// pure static data. Every function is a table lookup with no state.
//
// # Derived Tables
//
// Four tables are derived from the enumeration:
//
//   - [Opposite]: the mirrored anchor on the same axis (left ↔ right)
//   - [ConflictSet]: anchors competing for the same positioning role
//   - [InvertsConstant]: far anchors whose constant is expressed as an inset
//   - [SlotOf]: the coarse [Slot] (Near, Far, Center, Dimension) an anchor fills
//
// # Orientation and Axis Keys
//
// [Orientation] reports whether an anchor is horizontal or vertical. [AxisKey]
// is the finer partition used for declaration signatures: positional anchors
// map to "x" or "y" while dimensions map to "w" or "h", so width and height
// never share a reconciliation node with edges or centers.
//
//	anchor.Opposite(anchor.Left)       // anchor.Right
//	anchor.SlotOf(anchor.Trailing)     // anchor.Far
//	anchor.InvertsConstant(anchor.Bottom) // true
//	anchor.AxisKey(anchor.Width)       // "w"
package anchor
