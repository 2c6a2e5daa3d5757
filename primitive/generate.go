package primitive

import (
	"bytes"
	"errors"
	"fmt"
	"text/template"
)

var ErrCapabilityUnsupported = errors.New("capability has no method body for this kind")

// MethodData carries the identifiers a method body template needs.
type MethodData struct {
	Type   string // exported unit type name
	Raw    string // payload field name
	Repr   string // Go type of the payload
	Symbol string // unit symbol, may be empty
}

// MethodLines renders the body of a single capability method for the given
// kind. The convertible capability is handled by ConvertLines instead since
// it produces one method per narrowing target.
func MethodLines(cap CapabilityEnum, kind KindEnum, data MethodData) ([]string, error) {
	if !AllowedFor(kind).Has(cap) {
		return nil, fmt.Errorf("%w: %s on %s", ErrCapabilityUnsupported, cap, kind)
	}

	var lines []string

	switch cap {
	default:
		return nil, fmt.Errorf("%w: %s", ErrCapabilityUnsupported, cap)

	case CapComparable, CapOrdered, CapAddable, CapSubtractable:
		lines = methodTemplates[cap]

	case CapHashable:
		lines = hashTemplates[kind]

	case CapStringer:
		lines = stringTemplates[kind]
	}

	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: %s on %s", ErrCapabilityUnsupported, cap, kind)
	}

	return renderLines(lines, data)
}

// ConvertLines renders the body of a narrowing method to the target kind.
// The conversion is the representation's own: a negative signed payload cast
// to an unsigned target wraps around instead of failing.
func ConvertLines(to KindEnum, data MethodData) ([]string, error) {
	if !to.IsNumber() {
		return nil, fmt.Errorf("%w: narrowing to %s", ErrCapabilityUnsupported, to)
	}

	line := fmt.Sprintf("return %s(v.{{.Raw}})", to.GoType())

	return renderLines([]string{line}, data)
}

func renderLines(lines []string, data MethodData) ([]string, error) {
	out := make([]string, len(lines))

	for i, line := range lines {
		tmpl, err := template.New("line").Parse(line)
		if err != nil {
			return nil, fmt.Errorf("parse method template: %w", err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("execute method template: %w", err)
		}

		out[i] = buf.String()
	}

	return out, nil
}
