package engine

import (
	"bytes"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/anchorage/pkg/anchor"
	"github.com/matzehuels/anchorage/pkg/decl"
	"github.com/matzehuels/anchorage/pkg/observability"
)

func newTestEngine() (*Engine, *fakeHost, *view, *view) {
	host := &fakeHost{}
	root := &view{name: "root"}
	box := &view{name: "box", parent: root}
	var buf bytes.Buffer
	return New(host, WithLogger(log.New(&buf))), host, root, box
}

func TestEngineLayoutScenario(t *testing.T) {
	eng, host, _, box := newTestEngine()

	near := decl.New(anchor.Left, decl.Eq(10))
	far := decl.New(anchor.Right, decl.Eq(10))
	width := decl.New(anchor.Width, decl.Eq(100))

	got := eng.Layout(box, near, far, width)
	if len(got) != 3 {
		t.Fatalf("Layout() returned %d constraints, want 3", len(got))
	}
	if sigs := eng.Signatures(box); len(sigs) != 2 {
		t.Fatalf("Signatures() = %v, want 2 nodes", sigs)
	}
	xNode := eng.Node(box, "x_eq_1000")
	if xNode.Occupant(anchor.Near) != near || xNode.Occupant(anchor.Far) != far {
		t.Error("near and far should share the x node")
	}
	if eng.Node(box, "w_eq_1000").Occupant(anchor.Dimension) != width {
		t.Error("width should occupy the dimension slot of its own node")
	}
	if host.activeCount() != 3 {
		t.Errorf("host has %d active constraints, want 3", host.activeCount())
	}

	replacement := decl.New(anchor.Left, decl.Eq(20))
	res := eng.Apply(box, replacement)
	if len(res.Changes.Deactivate) != 1 || !hasConstraint(res.Changes.Deactivate, near) {
		t.Errorf("Deactivate = %v, want only the old near constraint", res.Changes.Deactivate)
	}
	if len(res.Changes.Activate) != 1 || !hasConstraint(res.Changes.Activate, replacement) {
		t.Errorf("Activate = %v, want only the new near constraint", res.Changes.Activate)
	}
	if xNode.Occupant(anchor.Far) != far || eng.Node(box, "w_eq_1000").Occupant(anchor.Dimension) != width {
		t.Error("far and width should be untouched")
	}
	if host.activeCount() != 3 {
		t.Errorf("host has %d active constraints, want 3", host.activeCount())
	}
}

func TestEngineBatchesHostCalls(t *testing.T) {
	eng, host, _, box := newTestEngine()

	eng.Apply(box, decl.Edges(decl.Eq(0)), decl.Size(decl.Eq(10)))
	if host.activateCalls != 1 || host.deactivateCalls != 0 {
		t.Errorf("activate calls = %d, deactivate calls = %d; want 1, 0", host.activateCalls, host.deactivateCalls)
	}

	eng.Apply(box, decl.Center(decl.Eq(0)))
	if host.activateCalls != 2 || host.deactivateCalls != 1 {
		t.Errorf("activate calls = %d, deactivate calls = %d; want 2, 1", host.activateCalls, host.deactivateCalls)
	}
}

func TestEngineSignatureIsolation(t *testing.T) {
	for _, order := range []string{"required-first", "low-first"} {
		t.Run(order, func(t *testing.T) {
			eng, host, _, box := newTestEngine()
			required := decl.New(anchor.Left, decl.Eq(0))
			fallback := decl.New(anchor.Left, decl.Eq(8)).WithPriority(decl.Low)

			if order == "required-first" {
				eng.Apply(box, required)
				eng.Apply(box, fallback)
			} else {
				eng.Apply(box, fallback)
				eng.Apply(box, required)
			}

			if host.deactivateCalls != 0 {
				t.Errorf("different priorities must never evict each other")
			}
			if len(eng.Signatures(box)) != 2 || len(eng.Active(box)) != 2 {
				t.Errorf("want 2 nodes with 2 active declarations, got %v / %v", eng.Signatures(box), eng.Active(box))
			}
		})
	}
}

func TestEngineNoContainer(t *testing.T) {
	eng, host, _, _ := newTestEngine()
	orphan := &view{name: "orphan"}

	res := eng.Apply(orphan, decl.Edges(decl.Eq(0)))
	if len(res.Applied) != 4 {
		t.Errorf("Applied has %d declarations, want 4", len(res.Applied))
	}
	if len(res.Active) != 0 || !res.Changes.Empty() {
		t.Errorf("orphan apply produced %+v", res)
	}
	if len(host.made) != 0 || host.activateCalls != 0 {
		t.Error("no native constraints should be created for an orphan")
	}
	if len(eng.Elements()) != 0 {
		t.Error("no engine state should be created for an orphan")
	}
}

func TestEngineReapplyIsNoop(t *testing.T) {
	eng, host, _, box := newTestEngine()
	d := decl.New(anchor.Top, decl.Eq(0))

	eng.Apply(box, d)
	res := eng.Apply(box, d)
	if !res.Changes.Empty() {
		t.Errorf("re-apply produced %+v", res.Changes)
	}
	if len(res.Active) != 1 {
		t.Errorf("Active = %v, want the installed constraint", res.Active)
	}
	if len(host.made) != 1 {
		t.Errorf("host made %d constraints, want 1", len(host.made))
	}
	if host.activateCalls != 1 {
		t.Errorf("activate calls = %d, want 1", host.activateCalls)
	}
}

func TestEngineDeclarationStaysWithOwner(t *testing.T) {
	eng, host, root, box := newTestEngine()
	other := &view{name: "other", parent: root}
	d := decl.New(anchor.Top, decl.Eq(0))

	eng.Layout(box, d)
	if got := eng.Layout(other, d); len(got) != 0 {
		t.Errorf("Layout(other) = %v, want nothing for a declaration owned by box", got)
	}
	if active := eng.Active(other); len(active) != 0 {
		t.Errorf("Active(other) = %v, want none", active)
	}
	if els := eng.Elements(); len(els) != 1 || els[0] != box {
		t.Errorf("Elements() = %v, want only box", els)
	}
	if d.Owner() != box {
		t.Errorf("Owner() = %v, want box", d.Owner())
	}

	eng.Clear(box)
	if host.activeCount() != 0 {
		t.Errorf("host has %d active constraints after Clear, want 0", host.activeCount())
	}
	if active := eng.Active(other); len(active) != 0 {
		t.Errorf("Active(other) = %v after clearing box, want none", active)
	}
	if got := eng.Layout(box, d); len(got) != 1 || got[0] != d.Constraint() {
		t.Errorf("Layout(box) = %v, the owner should be able to reinstall", got)
	}
}

func TestEngineEditAfterInstallKeepsNode(t *testing.T) {
	eng, host, _, box := newTestEngine()
	d := decl.New(anchor.Top, decl.Eq(0))

	eng.Apply(box, d)
	d.WithPriority(decl.Low)
	res := eng.Apply(box, d)

	if !res.Changes.Empty() {
		t.Errorf("re-apply after edit produced %+v", res.Changes)
	}
	if sigs := eng.Signatures(box); len(sigs) != 1 || sigs[0] != "y_eq_1000" {
		t.Errorf("Signatures() = %v, want [y_eq_1000]", sigs)
	}
	if active := eng.Active(box); len(active) != 1 {
		t.Errorf("Active() = %v, want the declaration once", active)
	}
	if p := host.made[0].params.Priority; p != decl.Required.Value() {
		t.Errorf("native priority = %v, want the installed %v", p, decl.Required.Value())
	}
}

func TestEngineLayoutOmitsEvictedAndInactive(t *testing.T) {
	eng, _, _, box := newTestEngine()
	first := decl.New(anchor.Left, decl.Eq(0))
	second := decl.New(anchor.CenterX, decl.Eq(0))
	hidden := decl.New(anchor.Top, decl.Eq(0)).When(func() bool { return false })

	got := eng.Layout(box, first, second, hidden)
	if len(got) != 1 || got[0] != second.Constraint() {
		t.Errorf("Layout() = %v, want only the center constraint", got)
	}
	if inactive := eng.Inactive(box); len(inactive) != 1 || inactive[0] != hidden {
		t.Errorf("Inactive() = %v, want [hidden]", inactive)
	}
}

func TestEngineReload(t *testing.T) {
	eng, host, _, box := newTestEngine()
	host.ctx = decl.Context{Device: decl.Phone}

	pad := func(c decl.Context) bool { return c.IsPad() }
	wide := decl.New(anchor.Width, decl.Eq(600)).WhenContext(pad)
	narrow := decl.New(anchor.Width, decl.Eq(300)).WhenContext(decl.Not(pad))
	eng.Apply(box, wide, narrow)

	if eng.Occupant(box, "w_eq_1000", anchor.Width) != narrow {
		t.Fatal("narrow width should be installed on phone")
	}

	host.ctx = decl.Context{Device: decl.Pad}
	before := host.activateCalls + host.deactivateCalls
	ch := eng.Reload(box)
	if eng.Occupant(box, "w_eq_1000", anchor.Width) != wide {
		t.Error("wide width should be installed on pad")
	}
	if !hasConstraint(ch.Deactivate, narrow) || !hasConstraint(ch.Activate, wide) {
		t.Errorf("Reload() = %+v", ch)
	}
	if host.activateCalls+host.deactivateCalls-before != 2 {
		t.Error("reload should issue exactly one deactivate and one activate call")
	}

	before = host.activateCalls + host.deactivateCalls
	if ch := eng.Reload(box); !ch.Empty() {
		t.Errorf("unchanged Reload() = %+v, want empty", ch)
	}
	if host.activateCalls+host.deactivateCalls != before {
		t.Error("an empty reload must not call the host")
	}
}

func TestEngineReloadAll(t *testing.T) {
	eng, host, root, box := newTestEngine()
	other := &view{name: "other", parent: root}

	on := false
	eng.Apply(box, decl.New(anchor.Top, decl.Eq(0)).When(func() bool { return on }))
	eng.Apply(other, decl.New(anchor.Top, decl.Eq(0)).When(func() bool { return on }))
	if host.activateCalls != 0 {
		t.Fatal("nothing should be active yet")
	}

	on = true
	ch := eng.ReloadAll()
	if len(ch.Activate) != 2 {
		t.Errorf("ReloadAll() activated %d constraints, want 2", len(ch.Activate))
	}
	if host.activateCalls != 1 {
		t.Errorf("activate calls = %d, want a single batch", host.activateCalls)
	}
}

func TestEngineReloadUnknownElement(t *testing.T) {
	eng, host, _, box := newTestEngine()
	if ch := eng.Reload(box); !ch.Empty() {
		t.Errorf("Reload() = %+v, want empty", ch)
	}
	if ch := eng.Clear(box); !ch.Empty() {
		t.Errorf("Clear() = %+v, want empty", ch)
	}
	if host.activateCalls+host.deactivateCalls != 0 {
		t.Error("unknown elements must not reach the host")
	}
}

func TestEngineClear(t *testing.T) {
	eng, host, _, box := newTestEngine()
	active := eng.Layout(box,
		decl.Edges(decl.Eq(0)),
		decl.Size(decl.Eq(50)).WithPriority(decl.High),
		decl.New(anchor.CenterX, decl.Eq(0)).When(func() bool { return false }),
	)

	ch := eng.Clear(box)
	if len(ch.Deactivate) != len(active) {
		t.Errorf("Clear() deactivated %d constraints, want %d", len(ch.Deactivate), len(active))
	}
	for _, c := range active {
		count := 0
		for _, x := range ch.Deactivate {
			if x == c {
				count++
			}
		}
		if count != 1 {
			t.Errorf("constraint %v appears %d times, want once", c, count)
		}
	}
	if len(eng.Signatures(box)) != 0 || len(eng.Elements()) != 0 {
		t.Error("element state should be discarded")
	}
	if host.activeCount() != 0 {
		t.Errorf("host still has %d active constraints", host.activeCount())
	}
}

func TestEngineForget(t *testing.T) {
	eng, host, _, box := newTestEngine()
	eng.Layout(box, decl.New(anchor.Top, decl.Eq(0)))
	calls := host.activateCalls + host.deactivateCalls

	eng.Forget(box)
	if len(eng.Elements()) != 0 {
		t.Error("Forget should drop element state")
	}
	if host.activateCalls+host.deactivateCalls != calls {
		t.Error("Forget must not call the host")
	}
}

func TestEngineHooks(t *testing.T) {
	observability.Reset()
	defer observability.Reset()
	hooks := &recordingHooks{}
	observability.SetEngineHooks(hooks)

	eng, _, _, box := newTestEngine()
	eng.Apply(box, decl.Edges(decl.Eq(0)))
	eng.Apply(&view{name: "orphan"}, decl.New(anchor.Top, decl.Eq(0)))
	eng.Reload(box)
	eng.Clear(box)

	if hooks.applies != 1 || hooks.degraded != 1 || hooks.reloads != 1 || hooks.clears != 1 {
		t.Errorf("hooks = %+v", hooks)
	}
}

type recordingHooks struct {
	observability.NoopEngineHooks
	applies, degraded, reloads, clears int
}

func (h *recordingHooks) OnApply(int, int, int, time.Duration)  { h.applies++ }
func (h *recordingHooks) OnReload(int, int, int, time.Duration) { h.reloads++ }
func (h *recordingHooks) OnClear(int, int, time.Duration)       { h.clears++ }
func (h *recordingHooks) OnDegraded(int)                        { h.degraded++ }
