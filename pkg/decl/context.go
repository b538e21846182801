package decl

import (
	"fmt"
	"strings"
)

// Device is the device idiom reported by the host.
type Device int

const (
	DeviceUnspecified Device = iota
	Phone
	Pad
	TV
	Desktop
)

var deviceNames = map[Device]string{
	DeviceUnspecified: "unspecified",
	Phone:             "phone",
	Pad:               "pad",
	TV:                "tv",
	Desktop:           "desktop",
}

func (d Device) String() string {
	if s, ok := deviceNames[d]; ok {
		return s
	}
	return fmt.Sprintf("Device(%d)", int(d))
}

// ParseDevice resolves a device idiom name.
func ParseDevice(s string) (Device, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return DeviceUnspecified, nil
	}
	for d, name := range deviceNames {
		if name == key {
			return d, nil
		}
	}
	return DeviceUnspecified, fmt.Errorf("unknown device %q", s)
}

// SizeClass is a coarse size bucket for one axis.
type SizeClass int

const (
	SizeUnspecified SizeClass = iota
	Compact
	Regular
)

func (s SizeClass) String() string {
	switch s {
	case Compact:
		return "compact"
	case Regular:
		return "regular"
	}
	return "unspecified"
}

// ParseSizeClass resolves "compact", "regular" or "unspecified".
func ParseSizeClass(s string) (SizeClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unspecified":
		return SizeUnspecified, nil
	case "compact":
		return Compact, nil
	case "regular":
		return Regular, nil
	}
	return SizeUnspecified, fmt.Errorf("unknown size class %q", s)
}

// Context is the read-only trait snapshot conditions are evaluated against.
type Context struct {
	Device     Device
	Horizontal SizeClass
	Vertical   SizeClass
}

func (c Context) IsPhone() bool   { return c.Device == Phone }
func (c Context) IsPad() bool     { return c.Device == Pad }
func (c Context) IsTV() bool      { return c.Device == TV }
func (c Context) IsDesktop() bool { return c.Device == Desktop }

func (c Context) IsHorizontallyCompact() bool { return c.Horizontal == Compact }
func (c Context) IsHorizontallyRegular() bool { return c.Horizontal == Regular }
func (c Context) IsVerticallyCompact() bool   { return c.Vertical == Compact }
func (c Context) IsVerticallyRegular() bool   { return c.Vertical == Regular }

// IsCompact reports whether both axes are compact.
func (c Context) IsCompact() bool { return c.IsHorizontallyCompact() && c.IsVerticallyCompact() }

// IsRegular reports whether both axes are regular.
func (c Context) IsRegular() bool { return c.IsHorizontallyRegular() && c.IsVerticallyRegular() }

func (c Context) String() string {
	return fmt.Sprintf("device=%s h=%s v=%s", c.Device, c.Horizontal, c.Vertical)
}

// Condition gates a declaration. A nil Condition always holds.
type Condition func(Context) bool

// Not negates a condition. Not(nil) never holds.
func Not(c Condition) Condition {
	return func(ctx Context) bool {
		return c != nil && !c(ctx)
	}
}

// All holds when every condition holds.
func All(conds ...Condition) Condition {
	return func(ctx Context) bool {
		for _, c := range conds {
			if c != nil && !c(ctx) {
				return false
			}
		}
		return true
	}
}
