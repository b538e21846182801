// Package engine keeps a host constraint solver in sync with a changing set
// of layout declarations.
//
// # Architecture
//
// Declarations applied to an element are partitioned by signature (see
// decl.Signature). Each (element, signature) pair owns one [Node], which
// holds at most one declaration per slot (Near, Far, Center, Dimension) plus
// a side-list of declarations whose condition is currently false. A Node never
// talks to the host: it reports the native constraints to activate and
// deactivate as a [Changes] batch. The [Engine] aggregates the batches of
// every Node touched by one operation and issues a single deactivate call
// followed by a single activate call, so the host solves once per operation.
//
// # Slot Rules
//
// Installing into a slot evicts the occupants of related slots:
//
//	Near      clears Near, Center
//	Far       clears Far, Center
//	Center    clears Center, Near, Far
//	Dimension clears Dimension, Near, Far
//
// Because a Node is already axis-pure, "Near" always means the one near-side
// anchor valid for that axis and the table never names concrete anchors.
//
// # Reference Resolution
//
// Native constraints are created lazily, on first install:
//
//   - a positional anchor without a reference binds to the element's container
//   - a dimension without a reference is intrinsic (constant only), unless it
//     uses a multiplier, in which case it binds to the container
//   - an unset reference anchor is the same anchor when the reference is the
//     container and the opposite anchor otherwise
//   - far anchors (right, bottom, trailing, ...) negate their constant and
//     swap >= with <=, since their value is an inset from the far side
//
// An element without a container cannot be positioned yet: applying to it is
// a logged no-op rather than an error.
//
// # Usage
//
//	eng := engine.New(host, engine.WithLogger(logger))
//	eng.Layout(view, decl.Edges(decl.Eq(0)))
//	// traits changed
//	eng.Reload(view)
//	// view removed from screen
//	eng.Clear(view)
//
// An Engine is not safe for concurrent use. It is meant to be driven from the
// host's single layout thread.
package engine
