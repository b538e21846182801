package scenario

import (
	"github.com/matzehuels/anchorage/pkg/anchor"
	"github.com/matzehuels/anchorage/pkg/decl"
	"github.com/matzehuels/anchorage/pkg/host/sim"
)

// world is the simulated element tree built from a scenario.
type world struct {
	host     *sim.Host
	elements map[string]decl.Element
	names    map[decl.Element]string
}

func buildWorld(s *Scenario) (*world, error) {
	traits, err := s.Traits.Context()
	if err != nil {
		return nil, err
	}
	w := &world{
		host:     sim.New(traits),
		elements: make(map[string]decl.Element),
		names:    make(map[decl.Element]string),
	}

	views := make(map[string]*sim.View, len(s.Views))
	for _, v := range s.Views {
		sv := sim.NewView(v.Name)
		if v.Traits != nil {
			ctx, err := v.Traits.Context()
			if err != nil {
				return nil, err
			}
			sv.Traits = &ctx
		}
		views[v.Name] = sv
		w.add(v.Name, sv)
	}
	for _, v := range s.Views {
		if v.Parent != "" {
			views[v.Parent].AddSubview(views[v.Name])
		}
	}
	for _, g := range s.Guides {
		w.add(g.Name, views[g.Owner].AddGuide(g.Name))
	}
	return w, nil
}

func (w *world) add(name string, el decl.Element) {
	w.elements[name] = el
	w.names[el] = name
}

// declarations converts the TOML declarations of a layout step. Names have
// already been checked by ValidateAndSetDefaults.
func (w *world) declarations(ds []Declare) ([]decl.Item, error) {
	items := make([]decl.Item, 0, len(ds))
	for _, d := range ds {
		it, err := w.declaration(d)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func (w *world) declaration(d Declare) (decl.Item, error) {
	rel, err := decl.ParseRelation(d.Relation)
	if err != nil {
		return nil, err
	}
	cond, err := ParseCondition(d.When)
	if err != nil {
		return nil, err
	}
	c := decl.Constant{Value: d.Constant, Relation: rel}
	prio := d.Priority.Priority
	if prio == 0 {
		prio = DefaultPriority
	}

	if build, ok := composites[d.Attr]; ok {
		comp := build(c).WithPriority(prio)
		if cond != nil {
			comp = comp.WhenContext(cond)
		}
		if d.To != "" {
			comp = comp.To(w.elements[d.To])
		}
		return comp, nil
	}

	attr, err := parseAttribute(d.Attr)
	if err != nil {
		return nil, err
	}
	out := decl.New(attr, c).WithPriority(prio)
	if cond != nil {
		out.WhenContext(cond)
	}
	if d.To != "" {
		toAttr := anchor.None
		if d.ToAttr != "" {
			if toAttr, err = parseAttribute(d.ToAttr); err != nil {
				return nil, err
			}
		}
		out.To(w.elements[d.To], toAttr)
	}
	return out, nil
}
