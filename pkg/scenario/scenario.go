// Package scenario loads and plays layout scenarios.
//
// A scenario is a TOML file describing a view tree, the initial traits and an
// ordered list of steps. Steps lay out views, change traits, reload, clear or
// forget elements, and assert on the resulting engine state:
//
//	name = "card"
//
//	[traits]
//	device = "phone"
//	horizontal = "compact"
//
//	[[views]]
//	name = "root"
//
//	[[views]]
//	name = "card"
//	parent = "root"
//
//	[[steps]]
//	action = "layout"
//	view = "card"
//	declare = [
//	  { attr = "edges", constant = 16 },
//	  { attr = "width", constant = 600, when = "pad" },
//	]
//
//	[[steps]]
//	action = "expect"
//	view = "card"
//	active = 4
//	inactive = 1
//
// [Load] decodes and validates a file; [Runner] plays it against the engine
// and the simulated host from package sim.
package scenario

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/anchorage/pkg/decl"
	"github.com/matzehuels/anchorage/pkg/errors"
)

// Step actions.
const (
	ActionLayout    = "layout"
	ActionTraits    = "traits"
	ActionReload    = "reload"
	ActionReloadAll = "reload_all"
	ActionClear     = "clear"
	ActionForget    = "forget"
	ActionExpect    = "expect"
)

// Defaults applied by ValidateAndSetDefaults.
const (
	DefaultName     = "untitled"
	DefaultRelation = "eq"
	DefaultPriority = decl.Required
)

// Scenario is a decoded scenario file.
type Scenario struct {
	Name   string  `toml:"name"`
	Traits Traits  `toml:"traits"`
	Views  []View  `toml:"views"`
	Guides []Guide `toml:"guides"`
	Steps  []Step  `toml:"steps"`

	validated bool
}

// Traits is the TOML form of decl.Context.
type Traits struct {
	Device     string `toml:"device"`
	Horizontal string `toml:"horizontal"`
	Vertical   string `toml:"vertical"`
}

// Context converts t, failing on unknown names.
func (t Traits) Context() (decl.Context, error) {
	dev, err := decl.ParseDevice(t.Device)
	if err != nil {
		return decl.Context{}, errors.Wrap(errors.ErrCodeInvalidTraits, err, "device")
	}
	h, err := decl.ParseSizeClass(t.Horizontal)
	if err != nil {
		return decl.Context{}, errors.Wrap(errors.ErrCodeInvalidTraits, err, "horizontal size class")
	}
	v, err := decl.ParseSizeClass(t.Vertical)
	if err != nil {
		return decl.Context{}, errors.Wrap(errors.ErrCodeInvalidTraits, err, "vertical size class")
	}
	return decl.Context{Device: dev, Horizontal: h, Vertical: v}, nil
}

// View declares a view. Views without a parent are roots.
type View struct {
	Name   string  `toml:"name"`
	Parent string  `toml:"parent"`
	Traits *Traits `toml:"traits"`
}

// Guide declares a layout guide owned by a view.
type Guide struct {
	Name  string `toml:"name"`
	Owner string `toml:"owner"`
}

// Step is one scenario action. Which fields matter depends on Action.
type Step struct {
	Action string `toml:"action"`
	View   string `toml:"view"`

	// layout
	Declare []Declare `toml:"declare"`

	// traits
	Traits *Traits `toml:"traits"`

	// expect; nil fields are not checked
	Active     *int     `toml:"active"`
	Inactive   *int     `toml:"inactive"`
	Nodes      *int     `toml:"nodes"`
	HostActive *int     `toml:"host_active"`
	Installed  []string `toml:"installed"`
}

// Declare is the TOML form of one declaration or composite.
type Declare struct {
	// Attr is an attribute name or one of the composites
	// "edges", "margins", "size" and "center".
	Attr     string        `toml:"attr"`
	Constant float64       `toml:"constant"`
	Relation string        `toml:"relation"`
	Priority PriorityValue `toml:"priority"`
	To       string        `toml:"to"`
	ToAttr   string        `toml:"to_attr"`
	When     string        `toml:"when"`
}

// PriorityValue accepts either a ladder name or a number in TOML. The raw
// value is kept by the decoder and parsed during validation, so a bad
// priority is reported with its step.
type PriorityValue struct {
	decl.Priority
	raw any
}

// UnmarshalTOML implements toml.Unmarshaler.
func (p *PriorityValue) UnmarshalTOML(v any) error {
	p.raw = v
	return nil
}

// resolve parses the raw value. An absent value leaves Priority unchanged.
func (p *PriorityValue) resolve() error {
	var s string
	switch x := p.raw.(type) {
	case nil:
		return nil
	case string:
		s = x
	case int64:
		s = strconv.FormatInt(x, 10)
	case float64:
		s = strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return errors.New(errors.ErrCodeInvalidPriority, "priority must be a name or a number, got %T", p.raw)
	}
	pr, err := decl.ParsePriority(s)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPriority, err, "priority")
	}
	p.Priority = pr
	return nil
}

// Load reads and validates the scenario at path.
func Load(path string) (*Scenario, error) {
	if err := errors.ValidateScenarioPath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scenario %s", path)
		}
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a scenario. Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidScenario, "unknown key %q", undecoded[0].String())
	}
	if err := s.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ValidateAndSetDefaults checks the view tree and every step, and fills in
// defaults. It is idempotent.
func (s *Scenario) ValidateAndSetDefaults() error {
	if s.validated {
		return nil
	}
	if s.Name == "" {
		s.Name = DefaultName
	}
	if _, err := s.Traits.Context(); err != nil {
		return err
	}

	names := make(map[string]bool)
	for _, v := range s.Views {
		if err := errors.ValidateElementName(v.Name); err != nil {
			return err
		}
		if names[v.Name] {
			return errors.New(errors.ErrCodeInvalidScenario, "duplicate element %q", v.Name)
		}
		names[v.Name] = true
		if v.Traits != nil {
			if _, err := v.Traits.Context(); err != nil {
				return fmt.Errorf("view %s: %w", v.Name, err)
			}
		}
	}
	for _, v := range s.Views {
		if v.Parent != "" && !names[v.Parent] {
			return errors.New(errors.ErrCodeUnknownElement, "view %q has unknown parent %q", v.Name, v.Parent)
		}
	}
	if err := s.checkCycles(); err != nil {
		return err
	}
	for _, g := range s.Guides {
		if err := errors.ValidateElementName(g.Name); err != nil {
			return err
		}
		if names[g.Name] {
			return errors.New(errors.ErrCodeInvalidScenario, "duplicate element %q", g.Name)
		}
		if g.Owner == "" || !isView(s.Views, g.Owner) {
			return errors.New(errors.ErrCodeUnknownElement, "guide %q has unknown owner %q", g.Name, g.Owner)
		}
		names[g.Name] = true
	}

	for i := range s.Steps {
		if err := s.Steps[i].validate(names); err != nil {
			return &errors.StepError{Step: i, Action: s.Steps[i].Action, Err: err}
		}
	}

	s.validated = true
	return nil
}

func isView(views []View, name string) bool {
	for _, v := range views {
		if v.Name == name {
			return true
		}
	}
	return false
}

func (s *Scenario) checkCycles() error {
	parent := make(map[string]string, len(s.Views))
	for _, v := range s.Views {
		parent[v.Name] = v.Parent
	}
	for _, v := range s.Views {
		seen := map[string]bool{}
		for n := v.Name; n != ""; n = parent[n] {
			if seen[n] {
				return errors.New(errors.ErrCodeInvalidScenario, "view hierarchy cycle through %q", v.Name)
			}
			seen[n] = true
		}
	}
	return nil
}

func (st *Step) validate(names map[string]bool) error {
	needsView := func() error {
		if st.View == "" {
			return errors.New(errors.ErrCodeInvalidScenario, "%s step requires a view", st.Action)
		}
		if !names[st.View] {
			return errors.New(errors.ErrCodeUnknownElement, "unknown element %q", st.View)
		}
		return nil
	}

	switch st.Action {
	case ActionLayout:
		if err := needsView(); err != nil {
			return err
		}
		if len(st.Declare) == 0 {
			return errors.New(errors.ErrCodeInvalidScenario, "layout step declares nothing")
		}
		for i := range st.Declare {
			if err := st.Declare[i].validate(names); err != nil {
				return fmt.Errorf("declaration %d: %w", i+1, err)
			}
		}
	case ActionTraits:
		if st.Traits == nil {
			return errors.New(errors.ErrCodeInvalidScenario, "traits step requires a traits table")
		}
		if _, err := st.Traits.Context(); err != nil {
			return err
		}
	case ActionReload, ActionClear, ActionForget:
		return needsView()
	case ActionReloadAll:
	case ActionExpect:
		if st.HostActive == nil || st.View != "" {
			if err := needsView(); err != nil {
				return err
			}
		}
		for _, name := range st.Installed {
			if _, err := parseAttribute(name); err != nil {
				return err
			}
		}
	case "":
		return errors.New(errors.ErrCodeInvalidScenario, "step has no action")
	default:
		return errors.New(errors.ErrCodeUnknownAction, "unknown action %q", st.Action)
	}
	return nil
}

func (d *Declare) validate(names map[string]bool) error {
	if d.Relation == "" {
		d.Relation = DefaultRelation
	}
	if err := d.Priority.resolve(); err != nil {
		return err
	}
	if d.Priority.Priority == 0 {
		d.Priority.Priority = DefaultPriority
	}
	if _, err := decl.ParseRelation(d.Relation); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRelation, err, "relation")
	}
	_, composite := composites[d.Attr]
	if !composite {
		if _, err := parseAttribute(d.Attr); err != nil {
			return err
		}
	}
	if d.To != "" && !names[d.To] {
		return errors.New(errors.ErrCodeUnknownElement, "unknown reference %q", d.To)
	}
	if d.ToAttr != "" {
		if composite {
			return errors.New(errors.ErrCodeInvalidScenario, "to_attr cannot be used with %q", d.Attr)
		}
		if d.To == "" {
			return errors.New(errors.ErrCodeInvalidScenario, "to_attr requires to")
		}
		if _, err := parseAttribute(d.ToAttr); err != nil {
			return err
		}
	}
	if _, err := ParseCondition(d.When); err != nil {
		return err
	}
	return nil
}
