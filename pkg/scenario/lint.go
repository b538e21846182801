package scenario

import (
	"fmt"

	"github.com/matzehuels/anchorage/pkg/anchor"
	"github.com/matzehuels/anchorage/pkg/decl"
)

// Finding is a lint result.
type Finding struct {
	Step    int
	View    string
	Message string
}

// Lint reports unconditional declarations within one layout step that
// compete for the same position under the same signature. The later one
// silently evicts the earlier one when the step is played.
//
// Declarations with a `when` condition are skipped: pairing mutually
// exclusive alternatives is the normal way to express trait-dependent
// layout.
func Lint(s *Scenario) []Finding {
	var out []Finding
	scratch := &world{}
	for i, st := range s.Steps {
		if st.Action != ActionLayout {
			continue
		}
		items, err := scratch.declarations(st.Declare)
		if err != nil {
			continue
		}
		var seen []*decl.Declaration
		for _, d := range decl.Flatten(items...) {
			if d.Condition != nil {
				continue
			}
			for _, prev := range seen {
				if prev.Signature() == d.Signature() && anchor.Conflicts(d.Attr, prev.Attr) {
					out = append(out, Finding{
						Step:    i,
						View:    st.View,
						Message: fmt.Sprintf("%s evicts %s under %s", d.Attr, prev.Attr, d.Signature()),
					})
				}
			}
			seen = append(seen, d)
		}
	}
	return out
}
