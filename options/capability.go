package options

import (
	"fmt"
	"strings"
)

type CapabilityEnum int

const (
	CapabilityComparable   CapabilityEnum = 1 << iota // == / != through the Equal method
	CapabilityOrdered                                 // Less method for sorting and comparison
	CapabilityAddable                                 // Add method, sum of two amounts of one unit
	CapabilitySubtractable                            // Sub method, difference of two amounts of one unit
	CapabilityHashable                                // Hash method over the payload bits
	CapabilityStringer                                // String method with the unit symbol suffix
	CapabilityConvertible                             // AsUint64-style narrowing methods to other numeric kinds

	CapabilityAll  = (1 << iota) - 1 // all capabilities combined
	CapabilityNone = 0               // no capabilities selected
)

var capabilityNames = map[string]CapabilityEnum{
	"comparable":   CapabilityComparable,
	"ordered":      CapabilityOrdered,
	"addable":      CapabilityAddable,
	"subtractable": CapabilitySubtractable,
	"hashable":     CapabilityHashable,
	"stringer":     CapabilityStringer,
	"convertible":  CapabilityConvertible,
}

// Parse resolves a comma-separated capability selection such as
// "comparable,hashable" into a flag set. The empty string selects
// everything, so an absent --only flag keeps the full catalog surface.
func Parse(list string) (CapabilityEnum, error) {
	if strings.TrimSpace(list) == "" {
		return CapabilityAll, nil
	}

	var out CapabilityEnum

	for _, name := range strings.Split(list, ",") {
		c, ok := capabilityNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return CapabilityNone, fmt.Errorf("unknown capability %q", strings.TrimSpace(name))
		}

		out |= c
	}

	return out, nil
}
