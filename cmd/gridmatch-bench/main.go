// Command gridmatch-bench is a small non-interactive harness: it loads
// a YAML pattern catalogue, builds a grid of the requested size, and
// applies a scripted sequence of cell edits, printing the match count
// of every pattern after each step.
//
// Grounded on EnnnOK/matcher/cmd/main.go's minimal "package main" shape:
// flag parsing, a couple of library calls, plain Println output, no
// framework.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/coregx/gridmatch/catalogue"
	"github.com/coregx/gridmatch/matcher"
)

func main() {
	catPath := flag.String("catalogue", "", "path to a YAML pattern catalogue")
	width := flag.Int("width", 8, "grid width")
	height := flag.Int("height", 8, "grid height")
	script := flag.String("script", "", "comma-separated x:y:symbol edits, e.g. 0:0:W,1:0:B")
	flag.Parse()

	if *catPath == "" {
		fmt.Fprintln(os.Stderr, "usage: gridmatch-bench -catalogue FILE [-width N] [-height N] [-script x:y:sym,...]")
		os.Exit(1)
	}

	if err := run(*catPath, *width, *height, *script); err != nil {
		fmt.Fprintln(os.Stderr, "gridmatch-bench:", err)
		os.Exit(1)
	}
}

func run(catPath string, width, height int, script string) error {
	cat, err := catalogue.Load(catPath)
	if err != nil {
		return err
	}

	m, err := matcher.NewPatternMatcher(cat.Alphabet, cat.Patterns)
	if err != nil {
		return err
	}

	state, err := m.MakeState(width, height)
	if err != nil {
		return err
	}

	printCounts(m, state, "initial")

	for i, step := range splitScript(script) {
		x, y, sym, err := parseEdit(step)
		if err != nil {
			return fmt.Errorf("script step %d (%q): %w", i, step, err)
		}
		id, err := cat.Alphabet.ID(sym)
		if err != nil {
			return fmt.Errorf("script step %d (%q): %w", i, step, err)
		}
		if err := state.Grid.Set(x, y, id); err != nil {
			return fmt.Errorf("script step %d (%q): %w", i, step, err)
		}
		printCounts(m, state, fmt.Sprintf("after step %d", i))
	}
	return nil
}

func splitScript(script string) []string {
	if script == "" {
		return nil
	}
	return strings.Split(script, ",")
}

func parseEdit(step string) (x, y int, symbol byte, err error) {
	parts := strings.Split(step, ":")
	if len(parts) != 3 || len(parts[2]) != 1 {
		return 0, 0, 0, fmt.Errorf("expected x:y:symbol")
	}
	x, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, err
	}
	y, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, err
	}
	return x, y, parts[2][0], nil
}

func printCounts(m *matcher.PatternMatcher, state *matcher.State, label string) {
	fmt.Printf("%s:\n", label)
	for p := 0; p < m.PatternCount(); p++ {
		count, err := state.CountMatches(p)
		if err != nil {
			fmt.Printf("  pattern %d: error: %v\n", p, err)
			continue
		}
		fmt.Printf("  pattern %d (%s): %d match(es)\n", p, m.Pattern(p).String(), count)
	}
}
