package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/telliera/salescope"
	"github.com/telliera/salescope/agent"
	"github.com/telliera/salescope/renderer"
	"google.golang.org/genai"
)

// assistCmd starts an interactive chat with an AI analyst grounded on the
// computed sales report.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask an AI analyst about the sales figures" }
func (*assistCmd) Usage() string {
	return `scs assist [question]

  Starts an interactive session with an AI analyst that answers questions
  about the computed sales report. Requires a Gemini API key in the
  environment (GEMINI_API_KEY).
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

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

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	analyst := agent.NewAnalyst(report)
	a := agent.New(os.Stdout, os.Stdin, analyst)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
