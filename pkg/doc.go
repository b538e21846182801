// Package pkg provides the core libraries for Anchorage declarative layout
// reconciliation.
//
// # Overview
//
// Anchorage lets a caller describe an element's layout as a list of anchor
// declarations ("left edge 16pt from the container", "width 200 on pads") and
// keeps a host constraint solver in sync as those declarations are replaced,
// re-evaluated against new device traits, or cleared. The pkg directory is
// organized into four main areas:
//
//  1. [anchor] - The anchor vocabulary and its static tables
//  2. [decl] - Declarations, constants, priorities, conditions and signatures
//  3. [engine] - Reconciliation nodes and the batching element registry
//  4. [scenario] - Scripted playback against the in-memory [host/sim] solver
//
// # Architecture
//
// The typical data flow through Anchorage:
//
//	declarations (decl.Edges, decl.Size, ...)
//	         ↓
//	    [decl] package (signature = axis + relation + priority)
//	         ↓
//	    [engine] package (one Node per signature, slot eviction)
//	         ↓
//	    Changes batch (deactivate, then activate)
//	         ↓
//	    host solver (one solve per operation)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/anchorage/pkg/anchor"
//	    "github.com/matzehuels/anchorage/pkg/decl"
//	    "github.com/matzehuels/anchorage/pkg/engine"
//	    "github.com/matzehuels/anchorage/pkg/host/sim"
//	)
//
//	host := sim.New(decl.Context{Device: decl.Phone})
//	root := sim.NewView("root")
//	card := root.AddSubview(sim.NewView("card"))
//
//	eng := engine.New(host)
//	eng.Layout(card, decl.Edges(decl.Eq(12)))
//
//	// centering evicts the left and right edges from the x axis
//	eng.Layout(card, decl.New(anchor.CenterX, decl.Eq(0)))
//
//	// fixed width, installed only while the traits describe a pad
//	eng.Layout(card, decl.New(anchor.Width, decl.Eq(320)).WhenContext(decl.Context.IsPad))
//	eng.Reload(card)
//
// # Supporting Packages
//
// [errors] - Coded errors shared by the CLI and the scenario loader.
//
// [observability] - Pluggable hooks for reconciliation and scenario events.
//
// [buildinfo] - Version information injected at build time.
package pkg
