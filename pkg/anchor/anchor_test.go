package anchor

import (
	"slices"
	"testing"
)

func TestOppositeIsInvolution(t *testing.T) {
	for _, a := range All() {
		if got := Opposite(Opposite(a)); got != a {
			t.Errorf("Opposite(Opposite(%v)) = %v, want %v", a, got, a)
		}
		if OrientationOf(Opposite(a)) != OrientationOf(a) {
			t.Errorf("Opposite(%v) changes orientation", a)
		}
	}
	if Opposite(None) != None {
		t.Errorf("Opposite(None) = %v, want none", Opposite(None))
	}
}

func TestOpposite(t *testing.T) {
	tests := []struct {
		in, want Attribute
	}{
		{Left, Right},
		{Top, Bottom},
		{Leading, Trailing},
		{FirstBaseline, LastBaseline},
		{TopMargin, BottomMargin},
		{CenterX, CenterX},
		{Width, Width},
		{CenterYWithinMargins, CenterYWithinMargins},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			if got := Opposite(tt.in); got != tt.want {
				t.Errorf("Opposite(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestConflictSet(t *testing.T) {
	want := []Attribute{Left, CenterX, Leading, LeftMargin, CenterXWithinMargins, LeadingMargin}
	got := ConflictSet(Left)
	slices.Sort(got)
	slices.Sort(want)
	if !slices.Equal(got, want) {
		t.Errorf("ConflictSet(Left) = %v, want %v", got, want)
	}

	if got := ConflictSet(Width); !slices.Equal(got, []Attribute{Width}) {
		t.Errorf("ConflictSet(Width) = %v, want [width]", got)
	}
	if got := ConflictSet(Height); !slices.Equal(got, []Attribute{Height}) {
		t.Errorf("ConflictSet(Height) = %v, want [height]", got)
	}
}

func TestConflictSetStaysOnAxis(t *testing.T) {
	for _, a := range All() {
		set := ConflictSet(a)
		if !slices.Contains(set, a) {
			t.Errorf("ConflictSet(%v) does not contain itself", a)
		}
		for _, b := range set {
			if OrientationOf(b) != OrientationOf(a) {
				t.Errorf("ConflictSet(%v) contains %v from the other axis", a, b)
			}
		}
	}
}

func TestConflictSetIsCopy(t *testing.T) {
	set := ConflictSet(Top)
	set[0] = Width
	if !Conflicts(Top, Top) {
		t.Error("mutating the returned set changed the table")
	}
}

func TestInvertsConstant(t *testing.T) {
	inverted := []Attribute{Right, Bottom, Trailing, LastBaseline, RightMargin, BottomMargin, TrailingMargin}
	for _, a := range All() {
		want := slices.Contains(inverted, a)
		if got := InvertsConstant(a); got != want {
			t.Errorf("InvertsConstant(%v) = %v, want %v", a, got, want)
		}
		if want && SlotOf(a) != Far {
			t.Errorf("%v inverts its constant but is not a far anchor", a)
		}
	}
}

func TestSlotOf(t *testing.T) {
	tests := []struct {
		attr Attribute
		want Slot
	}{
		{Left, Near},
		{Top, Near},
		{Leading, Near},
		{FirstBaseline, Near},
		{LeftMargin, Near},
		{Right, Far},
		{Bottom, Far},
		{TrailingMargin, Far},
		{CenterX, Center},
		{CenterYWithinMargins, Center},
		{Width, Dimension},
		{Height, Dimension},
	}
	for _, tt := range tests {
		t.Run(tt.attr.String(), func(t *testing.T) {
			if got := SlotOf(tt.attr); got != tt.want {
				t.Errorf("SlotOf(%v) = %v, want %v", tt.attr, got, tt.want)
			}
		})
	}
}

func TestAxisKey(t *testing.T) {
	tests := []struct {
		attr Attribute
		want string
	}{
		{Left, "x"},
		{CenterX, "x"},
		{TrailingMargin, "x"},
		{Top, "y"},
		{LastBaseline, "y"},
		{Width, "w"},
		{Height, "h"},
	}
	for _, tt := range tests {
		if got := AxisKey(tt.attr); got != tt.want {
			t.Errorf("AxisKey(%v) = %q, want %q", tt.attr, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Attribute
		wantErr bool
	}{
		{"left", Left, false},
		{"centerX", CenterX, false},
		{"center-x", CenterX, false},
		{"LEADING-MARGIN", LeadingMargin, false},
		{" width ", Width, false},
		{"none", None, true},
		{"middle", None, true},
		{"", None, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, a := range All() {
		got, err := Parse(a.String())
		if err != nil || got != a {
			t.Errorf("Parse(%q) = %v, %v", a.String(), got, err)
		}
	}
	if got := Attribute(99).String(); got != "Attribute(99)" {
		t.Errorf("String() = %q", got)
	}
}
