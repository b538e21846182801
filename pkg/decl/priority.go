package decl

import (
	"fmt"
	"strconv"
	"strings"
)

// Priority is the solver priority of a declaration. The named levels form a
// fixed ladder; any other positive value is a custom priority.
//
// The zero Priority is treated as Required.
type Priority float64

const (
	Low      Priority = 1
	Medium   Priority = 500
	High     Priority = 750
	Required Priority = 1000
)

// Value returns the numeric priority handed to the native solver.
func (p Priority) Value() float64 {
	if p == 0 {
		return float64(Required)
	}
	return float64(p)
}

// String returns the ladder name for named levels and the number otherwise.
func (p Priority) String() string {
	switch p.Value() {
	case float64(Low):
		return "low"
	case float64(Medium):
		return "medium"
	case float64(High):
		return "high"
	case float64(Required):
		return "required"
	}
	return strconv.FormatFloat(p.Value(), 'f', -1, 64)
}

// ParsePriority accepts a ladder name or a number.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "required":
		return Required, nil
	case "high":
		return High, nil
	case "medium":
		return Medium, nil
	case "low":
		return Low, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid priority %q", s)
	}
	return Priority(v), nil
}
