package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/subcommands"
	"github.com/telliera/salescope"
	"github.com/telliera/salescope/date"
)

// genCmd writes a demo dataset so the pipeline has something to chew on.
type genCmd struct {
	n    int
	seed int64
	out  string
}

func (*genCmd) Name() string     { return "gen" }
func (*genCmd) Synopsis() string { return "generate a demo sales dataset" }
func (*genCmd) Usage() string {
	return `scs gen [-n <rows>] [-seed <seed>] [-o <file>]

  Generates a raw sales CSV over the last twelve months, with the usual
  real-world dirt: duplicate rows, missing values, a negative price.
`
}

func (c *genCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.n, "n", 500, "Number of orders to generate.")
	f.Int64Var(&c.seed, "seed", 42, "Random seed, for reproducible datasets.")
	f.StringVar(&c.out, "o", "", "Output file. Defaults to the -data flag.")
}

func (c *genCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.n <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -n must be positive, got %d\n", c.n)
		return subcommands.ExitUsageError
	}
	out := c.out
	if out == "" {
		out = *dataFile
	}

	today := time.Now()
	until := date.New(today.Year(), today.Month(), today.Day())
	rows := salescope.GenerateRaw(c.n, c.seed, until)

	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", filepath.Dir(out), err)
		return subcommands.ExitFailure
	}
	file, err := os.Create(out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", out, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	if err := salescope.WriteRawCSV(file, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", out, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "wrote %d rows to %s\n", len(rows), out)
	return subcommands.ExitSuccess
}
