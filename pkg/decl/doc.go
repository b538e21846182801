// Package decl describes desired geometric relationships between elements.
//
// A [Declaration] says "this anchor of my element relates to that anchor of a
// reference element by a constant, at a priority, while a condition holds".
// Declarations are reference-identity values: two distinct *Declaration
// pointers are never the same slot occupant even when every field matches.
// They also carry a back-reference to the native constraint the engine
// created for them, set once on first install.
//
// # Building Declarations
//
//	d := decl.New(anchor.Left, decl.Eq(16)).
//	    To(sidebar, anchor.Right).
//	    WithPriority(decl.High).
//	    WhenContext(func(c decl.Context) bool { return c.IsPad() })
//
// # Composites
//
// A [Composite] bundles declarations that share a lifecycle. It exists only as
// an input convenience: [Flatten] expands composites recursively, in order,
// before anything is stored.
//
//	decl.Flatten(decl.Edges(decl.Eq(0)), decl.Size(decl.Eq(44)))
//
// # Signatures
//
// [Signature] partitions declarations by axis, relation category and priority.
// Declarations with different signatures never evict each other.
package decl
