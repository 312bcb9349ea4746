package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/telliera/salescope"
)

// cleanCmd runs the cleaning pipeline alone and writes the cleaned CSV.
type cleanCmd struct{}

func (*cleanCmd) Name() string     { return "clean" }
func (*cleanCmd) Synopsis() string { return "clean the raw sales CSV" }
func (*cleanCmd) Usage() string {
	return `scs clean

  Deduplicates the raw sales CSV, fills missing quantities and prices with
  the column mean, drops rows that cannot be repaired, and writes the result
  as cleaned_sales.csv in the output directory. Cleaning an already cleaned
  file is a no-op.
`
}

func (c *cleanCmd) SetFlags(f *flag.FlagSet) {}

func (c *cleanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	records, report, err := loadClean()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var buf bytes.Buffer
	if err := salescope.EncodeSalesCSV(&buf, records); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding cleaned data: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := writeOutput("cleaned_sales.csv", buf.Bytes()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println(report)
	return subcommands.ExitSuccess
}
