package engine

import (
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/anchorage/pkg/anchor"
	"github.com/matzehuels/anchorage/pkg/decl"
	"github.com/matzehuels/anchorage/pkg/observability"
)

// Engine is the element registry: it owns one signature→Node map per element
// and drives the host.
//
// The zero value is not usable - use New.
type Engine struct {
	host     Host
	logger   *log.Logger
	elements map[decl.Element]*elementState
	order    []decl.Element
}

// elementState is the only engine-owned state of an element. It is created on
// first apply and discarded on Clear or Forget.
type elementState struct {
	nodes      map[string]*Node
	signatures []string // insertion order
}

func (s *elementState) node(sig string) *Node {
	if n, ok := s.nodes[sig]; ok {
		return n
	}
	n := &Node{}
	s.nodes[sig] = n
	s.signatures = append(s.signatures, sig)
	return n
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine driving host.
func New(host Host, opts ...Option) *Engine {
	e := &Engine{
		host:     host,
		logger:   log.Default(),
		elements: make(map[decl.Element]*elementState),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result describes one Apply.
type Result struct {
	// Applied is the flattened input, composites expanded in order.
	Applied []*decl.Declaration
	// Active holds the native constraints of the applied declarations that
	// are installed after the apply, in input order.
	Active []decl.Constraint
	// Changes is the batch that was handed to the host.
	Changes Changes
}

// Apply flattens items, routes each declaration to the Node of its signature
// and hands the aggregated batch to the host in one deactivate and one
// activate call.
//
// If el has no container nothing is created, stored or activated.
// A declaration stays with the element and Node it was first installed on:
// applying it to another element is skipped with a warning, and edits to its
// priority or relation after install do not move it.
func (e *Engine) Apply(el decl.Element, items ...decl.Item) Result {
	start := time.Now()
	res := Result{Applied: decl.Flatten(items...)}

	container := e.host.Container(el)
	if container == nil {
		e.logger.Warn("element has no container, skipping layout", "element", el, "declarations", len(res.Applied))
		observability.Engine().OnDegraded(len(res.Applied))
		return res
	}

	ctx := e.host.Context(el)
	state := e.state(el)
	for _, d := range res.Applied {
		if !d.Bound() {
			d.Bind(el, e.host.MakeConstraint(Resolve(el, container, d)))
		}
		if !d.Bound() {
			e.logger.Warn("host produced no constraint", "element", el, "declaration", d)
			continue
		}
		if d.Owner() != el {
			e.logger.Warn("declaration belongs to another element, skipping", "element", el, "owner", d.Owner(), "declaration", d)
			continue
		}
		if sig := decl.Signature(d); sig != d.Signature() {
			e.logger.Warn("declaration changed after install, keeping its node", "element", el, "signature", d.Signature(), "now", sig)
		}
		res.Changes.Merge(state.node(d.Signature()).Add(d, ctx))
	}
	e.commit(res.Changes)
	if len(state.nodes) == 0 {
		e.drop(el)
	}

	for _, d := range res.Applied {
		if n, ok := state.nodes[d.Signature()]; ok && n.Installed(d) {
			res.Active = append(res.Active, d.Constraint())
		}
	}

	e.logger.Debug("applied declarations",
		"element", el,
		"declarations", len(res.Applied),
		"activated", len(res.Changes.Activate),
		"deactivated", len(res.Changes.Deactivate),
		"nodes", len(state.nodes))
	observability.Engine().OnApply(len(res.Applied), len(res.Changes.Activate), len(res.Changes.Deactivate), time.Since(start))
	return res
}

// Layout applies items to el and returns the native constraints of the
// applied declarations that are currently active.
func (e *Engine) Layout(el decl.Element, items ...decl.Item) []decl.Constraint {
	return e.Apply(el, items...).Active
}

// Reload re-evaluates every condition of el against the host's current
// context. Elements the engine has never seen are ignored.
func (e *Engine) Reload(el decl.Element) Changes {
	state, ok := e.elements[el]
	if !ok {
		return Changes{}
	}
	start := time.Now()
	ch := e.reload(el, state)
	e.commit(ch)

	e.logger.Debug("reloaded element",
		"element", el,
		"nodes", len(state.nodes),
		"activated", len(ch.Activate),
		"deactivated", len(ch.Deactivate))
	observability.Engine().OnReload(len(state.nodes), len(ch.Activate), len(ch.Deactivate), time.Since(start))
	return ch
}

// ReloadAll reloads every element in first-apply order and commits the
// result as one batch.
func (e *Engine) ReloadAll() Changes {
	start := time.Now()
	var ch Changes
	nodes := 0
	for _, el := range e.order {
		state := e.elements[el]
		nodes += len(state.nodes)
		ch.Merge(e.reload(el, state))
	}
	e.commit(ch)

	e.logger.Debug("reloaded all elements",
		"elements", len(e.order),
		"activated", len(ch.Activate),
		"deactivated", len(ch.Deactivate))
	observability.Engine().OnReload(nodes, len(ch.Activate), len(ch.Deactivate), time.Since(start))
	return ch
}

func (e *Engine) reload(el decl.Element, state *elementState) Changes {
	ctx := e.host.Context(el)
	var ch Changes
	for _, sig := range state.signatures {
		ch.Merge(state.nodes[sig].Reload(ctx))
	}
	return ch
}

// Clear deactivates every installed constraint of el and discards its node
// map. Clearing an unknown element is a no-op.
func (e *Engine) Clear(el decl.Element) Changes {
	state, ok := e.elements[el]
	if !ok {
		return Changes{}
	}
	start := time.Now()
	var ch Changes
	for _, sig := range state.signatures {
		ch.Merge(state.nodes[sig].Clear())
	}
	e.commit(ch)
	e.drop(el)

	e.logger.Debug("cleared element", "element", el, "nodes", len(state.nodes), "deactivated", len(ch.Deactivate))
	observability.Engine().OnClear(len(state.nodes), len(ch.Deactivate), time.Since(start))
	return ch
}

// Forget discards the state of an element that the host destroyed. No host
// calls are made: releasing native constraints is the host's job.
func (e *Engine) Forget(el decl.Element) {
	if _, ok := e.elements[el]; ok {
		e.drop(el)
		e.logger.Debug("forgot element", "element", el)
	}
}

// =============================================================================
// Inspection
// =============================================================================

// Elements returns the elements with engine state, in first-apply order.
func (e *Engine) Elements() []decl.Element {
	return slices.Clone(e.order)
}

// Signatures returns the signatures of el's nodes in creation order.
func (e *Engine) Signatures(el decl.Element) []string {
	if state, ok := e.elements[el]; ok {
		return slices.Clone(state.signatures)
	}
	return nil
}

// Node returns el's node for sig, or nil.
func (e *Engine) Node(el decl.Element, sig string) *Node {
	if state, ok := e.elements[el]; ok {
		return state.nodes[sig]
	}
	return nil
}

// Active returns the installed declarations of el, node by node.
func (e *Engine) Active(el decl.Element) []*decl.Declaration {
	var out []*decl.Declaration
	for _, sig := range e.Signatures(el) {
		out = append(out, e.Node(el, sig).Active()...)
	}
	return out
}

// Inactive returns the declarations of el whose condition is false.
func (e *Engine) Inactive(el decl.Element) []*decl.Declaration {
	var out []*decl.Declaration
	for _, sig := range e.Signatures(el) {
		out = append(out, e.Node(el, sig).Inactive()...)
	}
	return out
}

// Occupant returns the declaration of el installed at attr's slot under sig.
func (e *Engine) Occupant(el decl.Element, sig string, attr anchor.Attribute) *decl.Declaration {
	if n := e.Node(el, sig); n != nil {
		return n.Occupant(anchor.SlotOf(attr))
	}
	return nil
}

// =============================================================================
// Internal
// =============================================================================

func (e *Engine) state(el decl.Element) *elementState {
	if s, ok := e.elements[el]; ok {
		return s
	}
	s := &elementState{nodes: make(map[string]*Node)}
	e.elements[el] = s
	e.order = append(e.order, el)
	return s
}

func (e *Engine) drop(el decl.Element) {
	delete(e.elements, el)
	e.order = slices.DeleteFunc(e.order, func(x decl.Element) bool { return x == el })
}

// commit hands a batch to the host: one deactivate, then one activate.
// Empty halves are skipped so an idle operation never triggers a solve.
func (e *Engine) commit(ch Changes) {
	if len(ch.Deactivate) > 0 {
		e.host.Deactivate(ch.Deactivate)
	}
	if len(ch.Activate) > 0 {
		e.host.Activate(ch.Activate)
	}
}
