package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/telliera/salescope"
	"github.com/telliera/salescope/algo"
	"github.com/telliera/salescope/chart"
	"github.com/telliera/salescope/renderer"
	"github.com/telliera/salescope/workbook"
)

// runCmd is the whole pipeline in one shot:
// load → clean → analyze → benchmark → report → visualize.
type runCmd struct {
	quiet bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "run the full analytics pipeline" }
func (*runCmd) Usage() string {
	return `scs run [-q]

  Loads the sales CSV, cleans it, computes the analytics, benchmarks the
  sorting/searching algorithms, and writes every report, chart and export
  into the output directory.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.quiet, "q", false, "Do not render the reports on the terminal.")
}

func (c *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	records, cleaning, err := loadClean()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "cleaned %s: %s\n", *dataFile, cleaning)

	var cleaned bytes.Buffer
	if err := salescope.EncodeSalesCSV(&cleaned, records); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding cleaned data: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := writeOutput("cleaned_sales.csv", cleaned.Bytes()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	analytics, err := salescope.Analyze(records, *currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing data: %v\n", err)
		return subcommands.ExitFailure
	}

	summary := renderer.SummaryMarkdown(analytics, cleaning)
	if err := writeOutput("summary_report.md", []byte(summary)); err != nil {
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

	suite := algo.DefaultSuite()
	suite.Data = salescope.Amounts(records)
	comparison := renderer.BenchmarkMarkdown(suite.Run())
	if err := writeOutput("algorithm_comparison.md", []byte(comparison)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	charts, err := chart.WriteAll(*outputDir, analytics, salescope.Amounts(records))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering charts: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, path := range charts {
		fmt.Fprintf(os.Stderr, "wrote %s\n", path)
	}

	var xlsx bytes.Buffer
	if err := workbook.Write(&xlsx, analytics); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting workbook: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := writeOutput("sales_report.xlsx", xlsx.Bytes()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if !c.quiet {
		printMarkdown(summary)
		printMarkdown(comparison)
	}
	return subcommands.ExitSuccess
}
