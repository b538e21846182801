package scenario

import (
	"testing"

	"github.com/matzehuels/anchorage/pkg/decl"
	"github.com/matzehuels/anchorage/pkg/errors"
)

func TestParseCondition(t *testing.T) {
	phoneCompact := decl.Context{Device: decl.Phone, Horizontal: decl.Compact, Vertical: decl.Compact}
	padRegular := decl.Context{Device: decl.Pad, Horizontal: decl.Regular, Vertical: decl.Regular}
	padSplit := decl.Context{Device: decl.Pad, Horizontal: decl.Compact, Vertical: decl.Regular}

	tests := []struct {
		expr string
		want [3]bool // phoneCompact, padRegular, padSplit
	}{
		{"phone", [3]bool{true, false, false}},
		{"PAD", [3]bool{false, true, true}},
		{"!pad", [3]bool{true, false, false}},
		{"!!pad", [3]bool{false, true, true}},
		{"pad & hcompact", [3]bool{false, false, true}},
		{"compact", [3]bool{true, false, false}},
		{"regular", [3]bool{false, true, false}},
		{"vregular & !phone", [3]bool{false, true, true}},
		{"phone | hregular", [3]bool{true, true, false}},
		{" tv | desktop ", [3]bool{false, false, false}},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			cond, err := ParseCondition(tt.expr)
			if err != nil {
				t.Fatalf("ParseCondition() error = %v", err)
			}
			for i, ctx := range []decl.Context{phoneCompact, padRegular, padSplit} {
				if got := cond(ctx); got != tt.want[i] {
					t.Errorf("cond(%v) = %v, want %v", ctx, got, tt.want[i])
				}
			}
		})
	}
}

func TestParseConditionEmpty(t *testing.T) {
	cond, err := ParseCondition("  ")
	if err != nil || cond != nil {
		t.Errorf("ParseCondition(blank) = %v, %v; want nil, nil", cond, err)
	}
}

func TestParseConditionErrors(t *testing.T) {
	for _, expr := range []string{"watch", "phone &", "| pad", "!", "phone && pad"} {
		t.Run(expr, func(t *testing.T) {
			if _, err := ParseCondition(expr); !errors.Is(err, errors.ErrCodeInvalidCondition) {
				t.Errorf("ParseCondition(%q) error = %v, want INVALID_CONDITION", expr, err)
			}
		})
	}
}
