package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"unit-generator/unit"
)

// --- RootDef YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for RootDef.
// Accepts either a plain unit name or the full map form.
func (r *RootDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		// Plain unit name
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		*r = RootDef{Name: str}

		return nil

	case yaml.MappingNode:
		// Full form: {name, symbol, literal}
		type plain RootDef

		var p plain

		err := node.Decode(&p)
		if err != nil {
			return err
		}

		*r = RootDef(p)

		return nil

	default:
		return fmt.Errorf("expected unit name or {name, symbol, literal} for root, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for RootDef.
// Outputs the plain name when no other field is set.
func (r RootDef) MarshalYAML() (any, error) {
	if r.Symbol == "" && r.Literal == "" {
		return r.Name, nil
	}

	type plain RootDef

	return plain(r), nil
}

// --- ScaleDef YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for ScaleDef.
// Accepts:
//   - Scalar: "1000 meter", "1/1000 meter", "2.54 centimeter"
//   - Map: {of: meter, num: 1, den: 1000}
func (s *ScaleDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		// Scalar form: "<factor> <base>"
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		return s.parseScalar(str)

	case yaml.MappingNode:
		// Map form: {of, num, den}
		type plain ScaleDef

		var p plain

		err := node.Decode(&p)
		if err != nil {
			return err
		}

		*s = ScaleDef(p)

		return nil

	default:
		return fmt.Errorf(`expected "<factor> <base>" or {of, num, den} for scale, got %v`, node.Kind)
	}
}

// parseScalar splits "<factor> <base>" and captures the factor exactly, so a
// decimal like 2.54 survives as 127/50.
func (s *ScaleDef) parseScalar(scalar string) error {
	parts := strings.Fields(scalar)
	if len(parts) != 2 {
		return fmt.Errorf(`scale %q must be "<factor> <base>"`, scalar)
	}

	r, err := unit.ParseRatio(parts[0])
	if err != nil {
		return fmt.Errorf("scale %q: %w", scalar, err)
	}

	num, den := r.Num(), r.Den()
	if !num.IsInt64() || !den.IsInt64() {
		return fmt.Errorf("scale %q overflows the supported factor range", scalar)
	}

	*s = ScaleDef{Of: parts[1], Num: num.Int64(), Den: den.Int64()}

	return nil
}

// MarshalYAML implements custom YAML marshaling for ScaleDef.
// Always outputs the scalar form.
func (s ScaleDef) MarshalYAML() (any, error) {
	lit := strconv.FormatInt(s.Num, 10)
	if s.Den != 1 {
		lit += "/" + strconv.FormatInt(s.Den, 10)
	}

	return lit + " " + s.Of, nil
}

// --- CapabilityList YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for CapabilityList.
// Accepts a single name, a comma-separated scalar, or a sequence.
func (c *CapabilityList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		// Single name, possibly comma-separated
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		*c = nil

		for _, part := range strings.Split(str, ",") {
			if part = strings.TrimSpace(part); part != "" {
				*c = append(*c, part)
			}
		}

		return nil

	case yaml.SequenceNode:
		// List of names
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*c = arr

		return nil

	default:
		return fmt.Errorf("expected capability name or list, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for CapabilityList.
// Outputs a single scalar if length is 1, otherwise a sequence.
func (c CapabilityList) MarshalYAML() (any, error) {
	if len(c) == 1 {
		return c[0], nil
	}

	return []string(c), nil
}

// --- StringArray YAML methods ---

// UnmarshalYAML implements yaml.Unmarshaler for StringArray.
func (s *StringArray) UnmarshalYAML(unmarshal func(any) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		*s = []string{single}
		return nil
	}

	var multi []string
	if err := unmarshal(&multi); err == nil {
		*s = multi
		return nil
	}

	return errors.New("expected string or list of strings")
}
