//go:build ignore

package main

import (
	"fmt"
	"os"

	"unit-generator/internal/catalog"
	"unit-generator/internal/gen"
	"unit-generator/internal/plan"
)

func main() {
	file, err := catalog.LoadFromFile("./examples/length/units.yaml")
	if err != nil {
		fmt.Println("load catalog:", err)
		os.Exit(1)
	}

	resolver := plan.NewResolver(file, plan.DefaultConfig())
	p, err := resolver.Resolve()
	if err != nil {
		fmt.Println("resolve error:", err)
		fmt.Printf("diagnostics: %+v\n", p.Diagnostics)
		os.Exit(1)
	}
	if p.Diagnostics.HasErrors() {
		fmt.Println("resolve diagnostics:")
		fmt.Printf("%+v\n", p.Diagnostics)
		os.Exit(1)
	}

	generator := gen.NewGenerator(gen.DefaultGeneratorConfig())
	files, genErr := generator.Generate(p)
	if genErr != nil {
		fmt.Println("generate error:", genErr)
		for _, f := range files {
			fmt.Println("===", f.Filename, "===")
			fmt.Println(string(f.Content))
		}
		os.Exit(1)
	}

	for _, f := range files {
		fmt.Println("===", f.Filename, "===")
		fmt.Println(string(f.Content))
	}
}
