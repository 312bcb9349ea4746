package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/telliera/salescope"
	"github.com/telliera/salescope/algo"
	"github.com/telliera/salescope/renderer"
)

// benchCmd times the textbook algorithms against the standard library.
type benchCmd struct {
	sizes   string
	repeats int
	seed    int64
	write   bool
}

func (*benchCmd) Name() string     { return "bench" }
func (*benchCmd) Synopsis() string { return "benchmark sorting and searching algorithms" }
func (*benchCmd) Usage() string {
	return `scs bench [-sizes <n,n,...>] [-repeats <n>] [-seed <seed>] [-w]

  Times bubble sort, merge sort, linear search and binary search against
  their standard-library equivalents on the order amounts, and renders the
  comparison table.
`
}

func (c *benchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sizes, "sizes", "100,1000,5000", "Comma separated input sizes.")
	f.IntVar(&c.repeats, "repeats", 1000, "Timed search calls per measurement.")
	f.Int64Var(&c.seed, "seed", 1, "Random seed for the synthetic part of the datasets.")
	f.BoolVar(&c.write, "w", false, "Also write algorithm_comparison.md to the output directory.")
}

func (c *benchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	suite := algo.DefaultSuite()
	suite.SearchRepeats = c.repeats
	suite.Seed = c.seed

	if c.sizes != "" {
		var sizes []int
		for _, field := range strings.Split(c.sizes, ",") {
			size, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: invalid size %q in -sizes\n", field)
				return subcommands.ExitUsageError
			}
			sizes = append(sizes, size)
		}
		suite.Sizes = sizes
	}

	// Real order amounts make a better benchmark substrate than uniform
	// noise, but the benchmark must still run without a dataset.
	if records, _, err := loadClean(); err == nil {
		suite.Data = salescope.Amounts(records)
	} else {
		fmt.Fprintf(os.Stderr, "no sales data (%v), benchmarking on synthetic values\n", err)
	}

	report := renderer.BenchmarkMarkdown(suite.Run())
	if c.write {
		if err := writeOutput("algorithm_comparison.md", []byte(report)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	printMarkdown(report)
	return subcommands.ExitSuccess
}
