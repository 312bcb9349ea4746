package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/telliera/salescope"
	"github.com/telliera/salescope/workbook"
)

// exportCmd writes the analytics as a spreadsheet.
type exportCmd struct{}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the analytics as an xlsx workbook" }
func (*exportCmd) Usage() string {
	return `scs export

  Writes sales_report.xlsx in the output directory, one sheet per section
  of the summary report.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var buf bytes.Buffer
	if err := workbook.Write(&buf, analytics); err != nil {
		fmt.Fprintf(os.Stderr, "Error building workbook: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := writeOutput("sales_report.xlsx", buf.Bytes()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
