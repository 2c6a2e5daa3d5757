package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"unit-generator/internal/catalog"
	"unit-generator/internal/plan"
)

type tableCmd struct {
	out  io.Writer
	yaml bool
}

func newTableCmd(out io.Writer) *cobra.Command {
	tc := &tableCmd{out: out}

	cmd := &cobra.Command{
		Use:   "table catalog.yaml",
		Short: "Print the resolved conversion table of a catalog",
		Long: `table resolves the catalog and prints every family with its units,
their factors against the root and the planned conversion routes. With
--yaml it prints the normalized catalog instead, every default filled in
and every relation rebased onto the root unit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return tc.run(args[0])
		},
	}

	cmd.Flags().BoolVar(&tc.yaml, "yaml", false, "print the normalized catalog as YAML instead of the table")

	return cmd
}

func (c *tableCmd) run(path string) error {
	file, err := catalog.LoadFromFile(path)
	if err != nil {
		return err
	}

	p, err := plan.NewResolver(file, plan.Config{StrictMode: viper.GetBool("strict")}).Resolve()
	if err != nil {
		return err
	}

	if c.yaml {
		data, err := plan.ExportNormalizedYAML(p)
		if err != nil {
			return err
		}

		_, err = c.out.Write(data)

		return err
	}

	fmt.Fprint(c.out, plan.FormatReport(plan.GenerateReport(p)))

	return nil
}
