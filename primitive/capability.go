package primitive

import (
	"fmt"
	"sort"
	"strings"
)

type CapabilityEnum int

const (
	CapComparable   CapabilityEnum = 1 << iota // == / != and the Equal method
	CapOrdered                                 // Less method
	CapAddable                                 // Add method, requires + on the representation
	CapSubtractable                            // Sub method, numeric representations only
	CapHashable                                // Hash method, usable as a hash-container key
	CapStringer                                // String method with the unit symbol
	CapConvertible                             // AsXxx narrowing methods to other numeric kinds

	CapAll  CapabilityEnum = (1 << iota) - 1 // all capabilities combined
	CapNone CapabilityEnum = 0               // no capabilities selected
)

var capabilityNames map[string]CapabilityEnum

var allowedCaps map[KindEnum]CapabilityEnum

func init() {
	capabilityNames = map[string]CapabilityEnum{
		"comparable":   CapComparable,
		"ordered":      CapOrdered,
		"addable":      CapAddable,
		"subtractable": CapSubtractable,
		"hashable":     CapHashable,
		"stringer":     CapStringer,
		"convertible":  CapConvertible,
	}

	// Every valid kind can be compared, hashed, and printed. Arithmetic and
	// narrowing need a number; ordering also works on strings.
	allowedCaps = make(map[KindEnum]CapabilityEnum, KindTotal)

	for k := KindEnum(1); int(k) < KindTotal; k++ {
		caps := CapComparable | CapHashable | CapStringer

		if k.IsNumber() {
			caps |= CapOrdered | CapAddable | CapSubtractable | CapConvertible
		}

		if k == KindString {
			caps |= CapOrdered | CapAddable
		}

		allowedCaps[k] = caps
	}
}

// ParseCapability maps a catalog capability name to its flag.
func ParseCapability(name string) (CapabilityEnum, error) {
	if c, ok := capabilityNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c, nil
	}

	return CapNone, fmt.Errorf("unknown capability %q", name)
}

// CapabilityNames returns every known capability name, sorted.
func CapabilityNames() []string {
	names := make([]string, 0, len(capabilityNames))
	for name := range capabilityNames {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// AllowedFor returns the capability set that is legal for the given kind.
func AllowedFor(kind KindEnum) CapabilityEnum {
	return allowedCaps[kind]
}

// Has reports whether every flag in want is set.
func (c CapabilityEnum) Has(want CapabilityEnum) bool {
	return c&want == want
}

// Split breaks a combined set into its single flags, in declaration order.
func (c CapabilityEnum) Split() []CapabilityEnum {
	var out []CapabilityEnum

	for f := CapabilityEnum(1); f&CapAll > 0; f <<= 1 {
		if c&f != 0 {
			out = append(out, f)
		}
	}

	return out
}

// String renders the set as its sorted capability names joined with "|".
func (c CapabilityEnum) String() string {
	if c == CapNone {
		return "none"
	}

	var parts []string

	for _, name := range CapabilityNames() {
		if c.Has(capabilityNames[name]) {
			parts = append(parts, name)
		}
	}

	if len(parts) == 0 {
		return "none"
	}

	return strings.Join(parts, "|")
}
