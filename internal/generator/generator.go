// Package generator writes synthetic C-like stress fixtures: many templated
// functions with nested control flow, plus a main that calls a slice of them.
// Variant mode renames every identifier and changes every literal while
// keeping the structure identical, which is exactly the difference the
// similarity pipeline is supposed to ignore.
package generator

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
)

// Options controls fixture generation.
type Options struct {
	// Functions is the number of templated functions to emit.
	Functions int

	// MainCalls is how many of the generated functions main invokes.
	// Capped at Functions.
	MainCalls int

	// Variant renames identifiers and changes literals while preserving
	// structure.
	Variant bool

	// Seed drives the literal values in variant mode. Fixtures are
	// reproducible for a given (Functions, Variant, Seed) triple.
	Seed int64
}

// Generator emits one stress fixture per Write call.
type Generator struct {
	opts Options
}

// New creates a generator with the given options.
func New(opts Options) *Generator {
	if opts.Functions < 1 {
		opts.Functions = 1
	}
	if opts.MainCalls > opts.Functions {
		opts.MainCalls = opts.Functions
	}
	if opts.MainCalls < 0 {
		opts.MainCalls = 0
	}
	return &Generator{opts: opts}
}

// names holds the identifier set for one rendering. The base and variant
// sets differ in every name but drive the same template.
type names struct {
	funcPrefix string
	input      string
	x          string
	y          string
	total      string
}

var baseNames = names{
	funcPrefix: "logic_function_",
	input:      "input",
	x:          "x",
	y:          "y",
	total:      "total",
}

var variantNames = names{
	funcPrefix: "compute_block_",
	input:      "seed_value",
	x:          "acc",
	y:          "countdown",
	total:      "grand_sum",
}

// Write renders the fixture to w. The progress callback, if non-nil, is
// invoked after each function body with (written, total).
func (g *Generator) Write(w io.Writer, progress func(written, total int)) error {
	bw := bufio.NewWriter(w)

	n := g.names()
	rng := rand.New(rand.NewSource(g.opts.Seed))

	fmt.Fprintf(bw, "/*\n * Generated stress fixture.\n * Functions: %d\n */\n", g.opts.Functions)
	fmt.Fprintf(bw, "#include <stdio.h>\n")
	fmt.Fprintf(bw, "#include <stdlib.h>\n\n")

	for i := 0; i < g.opts.Functions; i++ {
		g.writeFunction(bw, n, rng, i)
		if progress != nil {
			progress(i+1, g.opts.Functions)
		}
	}

	g.writeMain(bw, n)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write fixture: %w", err)
	}
	return nil
}

// WriteFile renders the fixture to the named file, creating or truncating it.
func (g *Generator) WriteFile(path string, progress func(written, total int)) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create fixture file %s: %w", path, err)
	}
	defer file.Close()

	if err := g.Write(file, progress); err != nil {
		return err
	}
	return file.Close()
}

func (g *Generator) names() names {
	if g.opts.Variant {
		return variantNames
	}
	return baseNames
}

// literal returns the multiplier literal for function i. The base fixture
// uses the index itself so runs are stable; variant mode draws from the
// seeded generator so every literal differs from the base.
func (g *Generator) literal(rng *rand.Rand, i int) int {
	if g.opts.Variant {
		return rng.Intn(9000) + 1000
	}
	return i
}

func (g *Generator) writeFunction(w io.Writer, n names, rng *rand.Rand, i int) {
	offset := 32
	limit := 1000
	if g.opts.Variant {
		offset = rng.Intn(90) + 10
		limit = rng.Intn(5000) + 500
	}

	fmt.Fprintf(w, "// block %d\n", i)
	fmt.Fprintf(w, "int %s%d(int %s) {\n", n.funcPrefix, i, n.input)
	fmt.Fprintf(w, "    int %s = %s * %d;\n", n.x, n.input, g.literal(rng, i))
	fmt.Fprintf(w, "    int %s = %s + %d;\n", n.y, n.x, offset)
	fmt.Fprintf(w, "    if (%s > %d) {\n", n.x, limit)
	fmt.Fprintf(w, "        return %s * %s;\n", n.x, n.x)
	fmt.Fprintf(w, "    } else {\n")
	fmt.Fprintf(w, "        while (%s > 0) {\n", n.y)
	fmt.Fprintf(w, "            %s--;\n", n.y)
	fmt.Fprintf(w, "            %s += (%s %% 2);\n", n.x, n.y)
	fmt.Fprintf(w, "        }\n")
	fmt.Fprintf(w, "    }\n")
	fmt.Fprintf(w, "    return %s + %s;\n", n.x, n.y)
	fmt.Fprintf(w, "}\n\n")
}

func (g *Generator) writeMain(w io.Writer, n names) {
	fmt.Fprintf(w, "int main() {\n")
	fmt.Fprintf(w, "    int %s = 0;\n", n.total)
	fmt.Fprintf(w, "    printf(\"Start Processing...\\n\");\n")
	for i := 0; i < g.opts.MainCalls; i++ {
		fmt.Fprintf(w, "    %s += %s%d(%d);\n", n.total, n.funcPrefix, i, i)
	}
	fmt.Fprintf(w, "    return 0;\n")
	fmt.Fprintf(w, "}\n")
}
