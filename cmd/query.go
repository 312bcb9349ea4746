package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

// queryCmd extracts values from the computed analytics with a JSONPath
// expression, for scripting on top of the pipeline.
type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "query the analytics report with a JSONPath expression" }
func (*queryCmd) Usage() string {
	return `scs query <jsonpath>

  Evaluates a JSONPath expression against output/analytics.json and prints
  the result. Run 'scs run' or 'scs summary -w' first to produce the file.

  Examples:
    scs query '$.total_revenue.amount'
    scs query '$.categories[0].category'
    scs query '$.top_customers[:3].customer'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one JSONPath expression\n")
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)

	source, err := outputPath("analytics.json")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	content, err := os.ReadFile(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q (run 'scs run' first): %v\n", source, err)
		return subcommands.ExitFailure
	}

	var jobj any
	if err := json.Unmarshal(content, &jobj); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %q: %v\n", source, err)
		return subcommands.ExitFailure
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	// jsonpath is never clear about whether it returns a list of 1 answer or
	// a single answer: unwrap a singleton so scalar queries print a scalar.
	if jlist, ok := jval.([]any); ok && len(jlist) == 1 {
		jval = jlist[0]
	}

	out, err := json.MarshalIndent(jval, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
