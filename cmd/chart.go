package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/telliera/salescope"
	"github.com/telliera/salescope/chart"
)

// chartCmd renders the PNG charts alone.
type chartCmd struct{}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render the sales charts" }
func (*chartCmd) Usage() string {
	return `scs chart

  Renders revenue by category, the monthly revenue trend, the order amount
  histogram and the status breakdown as PNG files in the output directory.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	records, _, err := loadClean()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	analytics, err := salescope.Analyze(records, *currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing data: %v\n", err)
		return subcommands.ExitFailure
	}

	files, err := chart.WriteAll(*outputDir, analytics, salescope.Amounts(records))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering charts: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, file := range files {
		fmt.Fprintf(os.Stderr, "wrote %s\n", file)
	}
	return subcommands.ExitSuccess
}
