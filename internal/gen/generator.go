package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"unit-generator/internal/plan"
	"unit-generator/options"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName overrides the catalog package clause when set.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// GenerateComments enables doc comments on emitted declarations.
	GenerateComments bool
	// Header is the first line of every generated file.
	Header string
	// Only keeps the selected capabilities; methods of a deselected
	// capability are left out even when the catalog declares it.
	Only options.CapabilityEnum
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputDir:        ".",
		GenerateComments: true,
		Header:           "Code generated by unit-generator. DO NOT EDIT.",
		Only:             options.CapabilityAll,
	}
}

// Generator emits Go source for a resolved plan.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "units_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate renders the units file for a resolved plan. The returned slice
// holds one file per catalog output.
func (g *Generator) Generate(p *plan.Plan) ([]GeneratedFile, error) {
	data, err := g.buildTemplateData(p)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := unitsTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing units template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		// This is intentionally non-fatal for the write attempt.
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes())
		}
		// Return unformatted code for debugging
		return []GeneratedFile{{Filename: data.Filename, Content: buf.Bytes()}},
			fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return []GeneratedFile{{Filename: data.Filename, Content: formatted}}, nil
}

var unitsTemplate = template.Must(
	template.New("units").
		Parse(`// {{.Header}}

package {{.Package}}
{{if .Imports}}
import (
{{- range .Imports}}
	"{{.}}"
{{- end}}
)
{{end}}
{{- range .Units}}
{{if .Doc}}// {{.Doc}}
{{end}}type {{.Type}} struct {
{{- if .Guard}}
	_ [0]func()
{{- end}}
	raw {{.Repr}}
}
{{range .Decls}}
{{if .Doc}}// {{.Doc}}
{{end}}func {{.Signature}} {
{{- range .Body}}
	{{.}}
{{- end}}
}
{{end}}
{{- end}}`))
