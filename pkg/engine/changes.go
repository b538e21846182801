package engine

import (
	"slices"

	"github.com/matzehuels/anchorage/pkg/decl"
)

// Changes is a batch of native constraints to turn off and on.
//
// A batch is netted as it grows: activating a constraint that the same batch
// deactivates (or the other way around) cancels both entries. The host can
// therefore always apply Deactivate first and Activate second.
type Changes struct {
	Activate   []decl.Constraint
	Deactivate []decl.Constraint
}

// AddActivation records that c must become active. Nil is ignored.
func (ch *Changes) AddActivation(c decl.Constraint) {
	if c == nil {
		return
	}
	if i := slices.IndexFunc(ch.Deactivate, same(c)); i >= 0 {
		ch.Deactivate = slices.Delete(ch.Deactivate, i, i+1)
		return
	}
	if !slices.ContainsFunc(ch.Activate, same(c)) {
		ch.Activate = append(ch.Activate, c)
	}
}

// AddDeactivation records that c must become inactive. Nil is ignored.
func (ch *Changes) AddDeactivation(c decl.Constraint) {
	if c == nil {
		return
	}
	if i := slices.IndexFunc(ch.Activate, same(c)); i >= 0 {
		ch.Activate = slices.Delete(ch.Activate, i, i+1)
		return
	}
	if !slices.ContainsFunc(ch.Deactivate, same(c)) {
		ch.Deactivate = append(ch.Deactivate, c)
	}
}

// Merge folds o into ch.
func (ch *Changes) Merge(o Changes) {
	for _, c := range o.Deactivate {
		ch.AddDeactivation(c)
	}
	for _, c := range o.Activate {
		ch.AddActivation(c)
	}
}

// Empty reports whether the batch has nothing to do.
func (ch Changes) Empty() bool {
	return len(ch.Activate) == 0 && len(ch.Deactivate) == 0
}

func same(c decl.Constraint) func(decl.Constraint) bool {
	return func(x decl.Constraint) bool { return x == c }
}
