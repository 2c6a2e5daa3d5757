package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"unit-generator/internal/catalog"
	"unit-generator/internal/gen"
	"unit-generator/internal/plan"
	"unit-generator/options"
)

type genCmd struct {
	out    io.Writer
	errOut io.Writer

	dryRun bool
}

func newGenCmd(out, errOut io.Writer) *cobra.Command {
	gc := &genCmd{out: out, errOut: errOut}

	cmd := &cobra.Command{
		Use:   "gen catalog.yaml [catalog.yaml...]",
		Short: "Generate unit types from one or more catalogs",
		Example: `  unit-generator gen units.yaml
  unit-generator gen --only comparable,hashable --out ./generated units.yaml
  unit-generator gen examples/length/units.yaml examples/power/units.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return gc.run(cmd.Context(), args)
		},
	}

	fs := cmd.Flags()
	fs.String("out", "", "output directory (default: the catalog's directory)")
	fs.String("package", "", "override the package clause of the generated file")
	fs.String("only", "", "comma-separated capability selection, e.g. comparable,hashable")
	fs.Bool("no-comments", false, "emit the generated file without doc comments")
	fs.BoolVar(&gc.dryRun, "dry-run", false, "resolve and render, write nothing")

	_ = viper.BindPFlag("out", fs.Lookup("out"))
	_ = viper.BindPFlag("package", fs.Lookup("package"))
	_ = viper.BindPFlag("only", fs.Lookup("only"))
	_ = viper.BindPFlag("no_comments", fs.Lookup("no-comments"))

	return cmd
}

// run fans the catalogs out over an errgroup. Catalogs are independent, so a
// broken one does not hold up the rest.
func (c *genCmd) run(ctx context.Context, paths []string) error {
	only, err := options.Parse(viper.GetString("only"))
	if err != nil {
		return err
	}

	g, _ := errgroup.WithContext(ctx)

	for _, path := range paths {
		g.Go(func() error {
			return c.generateOne(path, only)
		})
	}

	return g.Wait()
}

func (c *genCmd) generateOne(path string, only options.CapabilityEnum) error {
	file, err := catalog.LoadFromFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	p, err := plan.NewResolver(file, plan.Config{StrictMode: viper.GetBool("strict")}).Resolve()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if len(p.Diagnostics.Warnings) > 0 {
		fmt.Fprint(c.errOut, p.Diagnostics.String())
	}

	config := gen.DefaultGeneratorConfig()
	config.PackageName = viper.GetString("package")
	config.GenerateComments = !viper.GetBool("no_comments")
	config.Only = only

	config.OutputDir = viper.GetString("out")
	if config.OutputDir == "" {
		config.OutputDir = filepath.Dir(path)
	}

	files, err := gen.NewGenerator(config).Generate(p)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if c.dryRun {
		for _, f := range files {
			fmt.Fprintf(c.out, "%s: would write %s (%d bytes)\n", path, filepath.Join(config.OutputDir, f.Filename), len(f.Content))
		}

		return nil
	}

	if err := gen.WriteFiles(files, config.OutputDir); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	for _, f := range files {
		fmt.Fprintf(c.out, "%s: wrote %s\n", path, filepath.Join(config.OutputDir, f.Filename))
	}

	return nil
}
