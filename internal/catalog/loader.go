package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"unit-generator/internal/common"
)

// LoadFromFile loads and parses a YAML catalog file from the given path.
func LoadFromFile(path string) (*CatalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a CatalogFile.
func Parse(data []byte) (*CatalogFile, error) {
	var cf CatalogFile

	err := yaml.Unmarshal(data, &cf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&cf)

	return &cf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cf *CatalogFile) {
	if cf.Version == "" {
		cf.Version = "1"
	}

	if cf.Output == "" {
		cf.Output = "units_gen.go"
	}

	for i := range cf.Families {
		f := &cf.Families[i]
		if f.Repr == "" {
			f.Repr = "float64"
		}

		defaultLiteral(&f.Root.Name, &f.Root.Literal)

		for j := range f.Units {
			u := &f.Units[j]
			defaultLiteral(&u.Name, &u.Literal)

			if u.Scale != nil {
				if u.Scale.Num == 0 {
					u.Scale.Num = 1
				}

				if u.Scale.Den == 0 {
					u.Scale.Den = 1
				}
			}

			if u.Capabilities == nil {
				u.Capabilities = f.Capabilities
			}

			if u.Convert == nil {
				u.Convert = f.Convert
			}
		}
	}
}

// defaultLiteral derives the literal constructor name from the unit name:
// meter -> Meters, foot_candle -> FootCandles.
func defaultLiteral(name, literal *string) {
	if *literal == "" && *name != "" {
		*literal = common.ExportName(*name) + "s"
	}
}

// Marshal serializes a CatalogFile to YAML.
func Marshal(cf *CatalogFile) ([]byte, error) {
	return yaml.Marshal(cf)
}

// WriteFile writes a CatalogFile to the given path.
func WriteFile(cf *CatalogFile, path string) error {
	data, err := Marshal(cf)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog file %s: %w", path, err)
	}

	return nil
}
