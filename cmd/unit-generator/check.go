package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"unit-generator/internal/analyze"
	"unit-generator/internal/catalog"
	"unit-generator/internal/plan"
)

type checkCmd struct {
	out    io.Writer
	errOut io.Writer
}

func newCheckCmd(out, errOut io.Writer) *cobra.Command {
	cc := &checkCmd{out: out, errOut: errOut}

	cmd := &cobra.Command{
		Use:   "check catalog.yaml [catalog.yaml...]",
		Short: "Validate catalogs and their formula functions without generating",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cc.run(args)
		},
	}

	return cmd
}

func (c *checkCmd) run(paths []string) error {
	failed := false

	for _, path := range paths {
		if err := c.checkOne(path); err != nil {
			fmt.Fprintf(c.errOut, "%s: %v\n", path, err)

			failed = true

			continue
		}

		fmt.Fprintf(c.out, "%s: ok\n", path)
	}

	if failed {
		return errors.New("check failed")
	}

	return nil
}

func (c *checkCmd) checkOne(path string) error {
	file, err := catalog.LoadFromFile(path)
	if err != nil {
		return err
	}

	p, err := plan.NewResolver(file, plan.Config{StrictMode: viper.GetBool("strict")}).Resolve()
	if err != nil {
		return err
	}

	if len(p.Diagnostics.Warnings) > 0 {
		fmt.Fprint(c.errOut, p.Diagnostics.String())
	}

	return c.checkFormulas(p, filepath.Dir(path))
}

// checkFormulas verifies the declared conversion functions against the Go
// package in the catalog's directory. A package that does not load yet is
// reported but not fatal, the stub command exists for exactly that stage.
func (c *checkCmd) checkFormulas(p *plan.Plan, dir string) error {
	if len(p.FormulaFuncs()) == 0 {
		return nil
	}

	scope, err := analyze.LoadOutputPackage(dir)
	if err != nil {
		fmt.Fprintf(c.errOut, "%s: skipping formula check: %v\n", dir, err)

		return nil
	}

	diags := analyze.CheckFormulas(p, scope)
	if diags.HasErrors() {
		fmt.Fprint(c.errOut, diags.String())

		return diags.Error()
	}

	return nil
}
