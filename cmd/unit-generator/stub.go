package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"unit-generator/internal/catalog"
)

type stubCmd struct {
	out     io.Writer
	outFile string
}

func newStubCmd(out io.Writer) *cobra.Command {
	sc := &stubCmd{out: out}

	cmd := &cobra.Command{
		Use:   "stub catalog.yaml",
		Short: "Write skeletons for the formula functions a catalog declares",
		Long: `stub prints a Go file with a panicking skeleton for every formula
function the catalog names. Fill the bodies in, then run gen; the check
command verifies the signatures against the finished package.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return sc.run(args[0])
		},
	}

	cmd.Flags().StringVar(&sc.outFile, "out", "", "write the skeletons to a file instead of stdout")

	return cmd
}

func (c *stubCmd) run(path string) error {
	file, err := catalog.LoadFromFile(path)
	if err != nil {
		return err
	}

	stubs := catalog.FormulaStubs(file)
	if len(stubs) == 0 {
		fmt.Fprintln(c.out, "no formula units declared, nothing to stub")

		return nil
	}

	content := catalog.StubFile(file.Package, stubs)

	if c.outFile == "" {
		fmt.Fprint(c.out, content)

		return nil
	}

	return os.WriteFile(c.outFile, []byte(content), 0o644)
}
