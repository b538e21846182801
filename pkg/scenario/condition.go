package scenario

import (
	"strings"

	"github.com/matzehuels/anchorage/pkg/anchor"
	"github.com/matzehuels/anchorage/pkg/decl"
	"github.com/matzehuels/anchorage/pkg/errors"
)

// conditionAtoms maps the words usable in a `when` expression to the trait
// predicate they test.
var conditionAtoms = map[string]decl.Condition{
	"phone":    decl.Context.IsPhone,
	"pad":      decl.Context.IsPad,
	"tv":       decl.Context.IsTV,
	"desktop":  decl.Context.IsDesktop,
	"compact":  decl.Context.IsCompact,
	"regular":  decl.Context.IsRegular,
	"hcompact": decl.Context.IsHorizontallyCompact,
	"hregular": decl.Context.IsHorizontallyRegular,
	"vcompact": decl.Context.IsVerticallyCompact,
	"vregular": decl.Context.IsVerticallyRegular,
}

// ParseCondition compiles a `when` expression into a condition.
//
// The grammar is a disjunction of conjunctions of optionally negated atoms:
//
//	expr := term { "|" term }
//	term := factor { "&" factor }
//	factor := [ "!" ] atom
//
// Atoms are device idioms (phone, pad, tv, desktop) and size classes
// (compact, regular, hcompact, hregular, vcompact, vregular). An empty
// expression yields a nil condition, which always holds.
func ParseCondition(expr string) (decl.Condition, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, nil
	}
	var anyOf []decl.Condition
	for _, term := range strings.Split(expr, "|") {
		var allOf []decl.Condition
		for _, factor := range strings.Split(term, "&") {
			c, err := parseFactor(factor)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidCondition, err, "when %q", expr)
			}
			allOf = append(allOf, c)
		}
		anyOf = append(anyOf, decl.All(allOf...))
	}
	if len(anyOf) == 1 {
		return anyOf[0], nil
	}
	return func(ctx decl.Context) bool {
		for _, c := range anyOf {
			if c(ctx) {
				return true
			}
		}
		return false
	}, nil
}

func parseFactor(s string) (decl.Condition, error) {
	s = strings.TrimSpace(s)
	negate := false
	for strings.HasPrefix(s, "!") {
		negate = !negate
		s = strings.TrimSpace(s[1:])
	}
	if s == "" {
		return nil, errors.New(errors.ErrCodeInvalidCondition, "empty term")
	}
	c, ok := conditionAtoms[strings.ToLower(s)]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidCondition, "unknown condition %q", s)
	}
	if negate {
		return decl.Not(c), nil
	}
	return c, nil
}

// composites maps composite names to their builders.
var composites = map[string]func(decl.Constant) decl.Composite{
	"edges":   decl.Edges,
	"margins": decl.Margins,
	"size":    decl.Size,
	"center":  decl.Center,
}

func parseAttribute(name string) (anchor.Attribute, error) {
	a, err := anchor.Parse(name)
	if err != nil {
		return anchor.None, errors.Wrap(errors.ErrCodeUnknownAttribute, err, "attribute %q", name)
	}
	return a, nil
}
