// Package cmd implements the CLI application to analyze a sales dataset.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/telliera/salescope"
)

// Commands is the full subcommand roster, registered by the main package.
var Commands = []subcommands.Command{
	&runCmd{},
	&genCmd{},
	&cleanCmd{},
	&summaryCmd{},
	&benchCmd{},
	&chartCmd{},
	&exportCmd{},
	&queryCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataFile = flag.String("data", "data/sales_data.csv", "Path to the raw sales CSV file")
var outputDir = flag.String("output", "output", "Directory where reports and charts are written")
var currency = flag.String("currency", "USD", "Reporting currency code")

// loadClean reads the raw sales CSV and runs it through the cleaning
// pipeline. It is the common entry of every analyzing subcommand.
func loadClean() ([]salescope.Record, salescope.CleaningReport, error) {
	f, err := os.Open(*dataFile)
	if err != nil {
		return nil, salescope.CleaningReport{}, fmt.Errorf("cannot open sales file %q: %w", *dataFile, err)
	}
	defer f.Close()

	rows, err := salescope.DecodeSalesCSV(f)
	if err != nil {
		return nil, salescope.CleaningReport{}, fmt.Errorf("cannot read sales file %q: %w", *dataFile, err)
	}

	records, report := salescope.Clean(rows, *currency)
	if len(records) == 0 {
		return nil, report, fmt.Errorf("no valid record left after cleaning %q (%s)", *dataFile, report)
	}
	return records, report, nil
}

// outputPath ensures the output directory exists and returns the full path
// for one output file.
func outputPath(name string) (string, error) {
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return "", fmt.Errorf("cannot create output directory %q: %w", *outputDir, err)
	}
	return filepath.Join(*outputDir, name), nil
}

// writeOutput writes one report file and logs it on stderr.
func writeOutput(name string, content []byte) error {
	path, err := outputPath(name)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", path)
	return nil
}

// printMarkdown renders a markdown document on the terminal.
func printMarkdown(doc string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Println(doc)
		return
	}
	out, err := r.Render(doc)
	if err != nil {
		fmt.Println(doc)
		return
	}
	fmt.Print(out)
}
