package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/telliera/salescope"
	"github.com/telliera/salescope/renderer"
)

// summaryCmd computes the analytics and renders the summary report.
type summaryCmd struct {
	write bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "compute and display the sales summary" }
func (*summaryCmd) Usage() string {
	return `scs summary [-w]

  Cleans the sales data, computes revenue, customer and category analytics,
  and renders the summary report on the terminal.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.write, "w", false, "Also write summary_report.md and analytics.json to the output directory.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	records, cleaning, err := loadClean()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	analytics, err := salescope.Analyze(records, *currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing data: %v\n", err)
		return subcommands.ExitFailure
	}

	report := renderer.SummaryMarkdown(analytics, cleaning)
	if c.write {
		if err := writeOutput("summary_report.md", []byte(report)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		jsonReport, err := json.MarshalIndent(analytics, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding analytics: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := writeOutput("analytics.json", jsonReport); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	printMarkdown(report)
	return subcommands.ExitSuccess
}
