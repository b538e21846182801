package scenario

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/anchorage/pkg/anchor"
	"github.com/matzehuels/anchorage/pkg/decl"
	"github.com/matzehuels/anchorage/pkg/engine"
	"github.com/matzehuels/anchorage/pkg/errors"
	"github.com/matzehuels/anchorage/pkg/host/sim"
	"github.com/matzehuels/anchorage/pkg/observability"
)

// StepResult describes one played step.
type StepResult struct {
	Index       int
	Action      string
	View        string
	Activated   int
	Deactivated int
	Duration    time.Duration
	Err         error
}

// Failed reports whether the step failed.
func (r StepResult) Failed() bool { return r.Err != nil }

// Playback plays a scenario one step at a time. It backs both the batch
// Runner and the interactive stepper.
type Playback struct {
	scenario *Scenario
	world    *world
	engine   *engine.Engine
	logger   *log.Logger
	next     int
}

// NewPlayback validates s and builds its view tree.
func NewPlayback(s *Scenario, logger *log.Logger) (*Playback, error) {
	if err := s.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	w, err := buildWorld(s)
	if err != nil {
		return nil, err
	}
	return &Playback{
		scenario: s,
		world:    w,
		engine:   engine.New(w.host, engine.WithLogger(logger)),
		logger:   logger,
	}, nil
}

// Scenario returns the scenario being played.
func (p *Playback) Scenario() *Scenario { return p.scenario }

// Host returns the simulated host.
func (p *Playback) Host() *sim.Host { return p.world.host }

// Engine returns the engine under test.
func (p *Playback) Engine() *engine.Engine { return p.engine }

// Position returns the index of the next step.
func (p *Playback) Position() int { return p.next }

// Done reports whether every step has been played.
func (p *Playback) Done() bool { return p.next >= len(p.scenario.Steps) }

// Next plays the next step. Step failures are reported in the result; the
// returned error is only set when ctx is done or there are no steps left.
func (p *Playback) Next(ctx context.Context) (StepResult, error) {
	if err := ctx.Err(); err != nil {
		return StepResult{}, errors.Wrap(errors.ErrCodeCanceled, err, "playback")
	}
	if p.Done() {
		return StepResult{}, errors.New(errors.ErrCodeInvalidInput, "no steps left")
	}

	i := p.next
	p.next++
	st := p.scenario.Steps[i]
	start := time.Now()

	res := StepResult{Index: i, Action: st.Action, View: st.View}
	ch, err := p.play(st)
	res.Activated = len(ch.Activate)
	res.Deactivated = len(ch.Deactivate)
	res.Duration = time.Since(start)
	if err != nil {
		res.Err = &errors.StepError{Step: i, Action: st.Action, Err: err}
		p.logger.Warn("step failed", "step", i+1, "action", st.Action, "error", errors.UserMessage(err))
	} else {
		p.logger.Debug("step played", "step", i+1, "action", st.Action, "view", st.View,
			"activated", res.Activated, "deactivated", res.Deactivated)
	}
	observability.Scenario().OnStep(ctx, i, st.Action, res.Duration, res.Err)
	return res, nil
}

func (p *Playback) play(st Step) (engine.Changes, error) {
	el := p.world.elements[st.View]
	switch st.Action {
	case ActionLayout:
		items, err := p.world.declarations(st.Declare)
		if err != nil {
			return engine.Changes{}, err
		}
		return p.engine.Apply(el, items...).Changes, nil
	case ActionTraits:
		ctx, err := st.Traits.Context()
		if err != nil {
			return engine.Changes{}, err
		}
		p.world.host.SetTraits(ctx)
		return engine.Changes{}, nil
	case ActionReload:
		return p.engine.Reload(el), nil
	case ActionReloadAll:
		return p.engine.ReloadAll(), nil
	case ActionClear:
		return p.engine.Clear(el), nil
	case ActionForget:
		p.world.host.Release(el)
		p.engine.Forget(el)
		return engine.Changes{}, nil
	case ActionExpect:
		return engine.Changes{}, p.expect(st)
	}
	return engine.Changes{}, errors.New(errors.ErrCodeUnknownAction, "unknown action %q", st.Action)
}

func (p *Playback) expect(st Step) error {
	var failures []string
	check := func(what string, want *int, got int) {
		if want != nil && *want != got {
			failures = append(failures, fmt.Sprintf("%s = %d, want %d", what, got, *want))
		}
	}

	if st.View != "" {
		el := p.world.elements[st.View]
		check("active", st.Active, len(p.engine.Active(el)))
		check("inactive", st.Inactive, len(p.engine.Inactive(el)))
		check("nodes", st.Nodes, len(p.engine.Signatures(el)))

		installed := make(map[anchor.Attribute]bool)
		for _, d := range p.engine.Active(el) {
			installed[d.Attr] = true
		}
		for _, name := range st.Installed {
			a, err := parseAttribute(name)
			if err != nil {
				return err
			}
			if !installed[a] {
				failures = append(failures, fmt.Sprintf("%s is not installed", a))
			}
		}
	}
	check("host active", st.HostActive, len(p.world.host.Active()))

	if len(failures) > 0 {
		return errors.New(errors.ErrCodeExpectationFailed, "%s", strings.Join(failures, "; "))
	}
	return nil
}

// NodeRow is one occupied or inactive entry of a view's node map.
type NodeRow struct {
	Signature   string
	Slot        string
	Declaration string
	Constraint  string
	Active      bool
}

// Nodes describes the node map of the named element, node by node: occupied
// slots first, then inactive declarations.
func (p *Playback) Nodes(name string) []NodeRow {
	el, ok := p.world.elements[name]
	if !ok {
		return nil
	}
	var rows []NodeRow
	for _, sig := range p.engine.Signatures(el) {
		n := p.engine.Node(el, sig)
		for _, slot := range anchor.Slots {
			if d := n.Occupant(slot); d != nil {
				rows = append(rows, NodeRow{Signature: sig, Slot: slot.String(), Declaration: d.String(), Constraint: describe(d), Active: true})
			}
		}
		for _, d := range n.Inactive() {
			rows = append(rows, NodeRow{Signature: sig, Slot: "-", Declaration: d.String(), Constraint: describe(d)})
		}
	}
	return rows
}

// Elements returns the names of the elements with engine state, in
// first-layout order.
func (p *Playback) Elements() []string {
	var out []string
	for _, el := range p.engine.Elements() {
		out = append(out, p.world.names[el])
	}
	return out
}

// Names returns every element name of the scenario, sorted.
func (p *Playback) Names() []string {
	out := make([]string, 0, len(p.world.elements))
	for name := range p.world.elements {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// Traits returns the host's current base traits.
func (p *Playback) Traits() decl.Context { return p.world.host.Traits() }

func describe(d *decl.Declaration) string {
	if c, ok := d.Constraint().(*sim.Constraint); ok {
		return c.String()
	}
	return ""
}
