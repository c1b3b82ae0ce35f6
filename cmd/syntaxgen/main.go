// Command syntaxgen generates the green layouts and factories and the
// external node types, visitors, transformers and modifiers from nodes.toml.
//
// Usage:
//
//	go run ./cmd/syntaxgen -spec cmd/syntaxgen/nodes.toml -green internal/green -syntax internal/syntax
package main

import (
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
)

var (
	specFlag   = flag.String("spec", "nodes.toml", "node descriptor file")
	greenFlag  = flag.String("green", "internal/green", "output directory of the green package")
	syntaxFlag = flag.String("syntax", "internal/syntax", "output directory of the syntax package")
)

const header = "// Code generated by syntaxgen from nodes.toml; DO NOT EDIT.\n\n"

func main() {
	flag.Parse()

	spec, err := loadSpec(*specFlag)
	if err != nil {
		log.Fatalf("load %s: %v", *specFlag, err)
	}
	log.Printf("Loaded %d groups, %d nodes", len(spec.Groups), len(spec.Nodes))

	outputs := []struct {
		dir, name string
		gen       func(*Spec) string
	}{
		{*greenFlag, "layout_gen.go", genLayout},
		{*greenFlag, "factory_gen.go", genGreenFactory},
		{*syntaxFlag, "groups_gen.go", genGroups},
		{*syntaxFlag, "nodes_gen.go", genNodes},
		{*syntaxFlag, "factory_gen.go", genSyntaxFactory},
		{*syntaxFlag, "wrap_gen.go", genWrap},
		{*syntaxFlag, "visitor_gen.go", genVisitor},
		{*syntaxFlag, "transformer_gen.go", genTransformer},
		{*syntaxFlag, "modifier_gen.go", genModifier},
	}
	for _, out := range outputs {
		path := filepath.Join(out.dir, out.name)
		if err := writeGo(path, out.gen(spec)); err != nil {
			log.Fatalf("%v", err)
		}
		log.Printf("Generated %s", path)
	}
}

func formatGo(code string) ([]byte, error) {
	return format.Source([]byte(code))
}

func writeGo(path, code string) error {
	formatted, err := formatGo(code)
	if err != nil {
		return fmt.Errorf("format %s: %w", path, err)
	}
	if err := os.WriteFile(path, formatted, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
