package decl

import (
	"fmt"
	"strconv"
)

// Relation is how the target anchor relates to the reference anchor.
type Relation int

const (
	// Equal: target == reference + value.
	Equal Relation = iota
	// GreaterOrEqual: target >= reference + value.
	GreaterOrEqual
	// LessOrEqual: target <= reference + value.
	LessOrEqual
	// MultipliedBy: target == reference * value.
	MultipliedBy
)

// String returns the operator form of the relation.
func (r Relation) String() string {
	switch r {
	case Equal:
		return "=="
	case GreaterOrEqual:
		return ">="
	case LessOrEqual:
		return "<="
	case MultipliedBy:
		return "*="
	}
	return fmt.Sprintf("Relation(%d)", int(r))
}

// Category returns the signature category: "eq", "gt" or "lt".
// MultipliedBy is an equality for slotting purposes.
func (r Relation) Category() string {
	switch r {
	case GreaterOrEqual:
		return "gt"
	case LessOrEqual:
		return "lt"
	default:
		return "eq"
	}
}

// Inverse swaps GreaterOrEqual and LessOrEqual. Other relations are unchanged.
func (r Relation) Inverse() Relation {
	switch r {
	case GreaterOrEqual:
		return LessOrEqual
	case LessOrEqual:
		return GreaterOrEqual
	}
	return r
}

// ParseRelation accepts "eq", "gte", "lte", "mul" and the operator forms.
func ParseRelation(s string) (Relation, error) {
	switch s {
	case "", "eq", "==", "=":
		return Equal, nil
	case "gte", "gt", ">=":
		return GreaterOrEqual, nil
	case "lte", "lt", "<=":
		return LessOrEqual, nil
	case "mul", "*", "*=":
		return MultipliedBy, nil
	}
	return Equal, fmt.Errorf("unknown relation %q", s)
}

// Constant is a numeric value together with the relation it applies under.
type Constant struct {
	Value    float64
	Relation Relation
}

// Eq returns an equality constant.
func Eq(v float64) Constant { return Constant{Value: v, Relation: Equal} }

// Gte returns a greater-or-equal constant.
func Gte(v float64) Constant { return Constant{Value: v, Relation: GreaterOrEqual} }

// Lte returns a less-or-equal constant.
func Lte(v float64) Constant { return Constant{Value: v, Relation: LessOrEqual} }

// Mul returns a multiplier: the target equals the reference times v.
func Mul(v float64) Constant { return Constant{Value: v, Relation: MultipliedBy} }

// Multiplier returns the native multiplier and constant for c.
// MultipliedBy yields (Value, 0); every other relation yields (1, Value).
func (c Constant) Multiplier() (multiplier, constant float64) {
	if c.Relation == MultipliedBy {
		return c.Value, 0
	}
	return 1, c.Value
}

func (c Constant) String() string {
	return c.Relation.String() + " " + strconv.FormatFloat(c.Value, 'f', -1, 64)
}
