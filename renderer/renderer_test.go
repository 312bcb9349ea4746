package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/telliera/salescope"
	"github.com/telliera/salescope/algo"
	"github.com/telliera/salescope/date"
)

func sampleAnalytics() *salescope.Analytics {
	records := []salescope.Record{
		{
			OrderID: "ORD-1", Product: "Laptop", Customer: "alice", Category: "Electronics",
			Quantity: salescope.Q(1), UnitPrice: salescope.M(1200, "USD"),
			Date: date.New(2025, time.January, 5), Status: salescope.Completed,
		},
		{
			OrderID: "ORD-2", Product: "Mouse", Customer: "alice", Category: "Electronics",
			Quantity: salescope.Q(2), UnitPrice: salescope.M(25, "USD"),
			Date: date.New(2025, time.February, 10), Status: salescope.Pending,
		},
		{
			OrderID: "ORD-3", Product: "Chair", Customer: "bob", Category: "Furniture",
			Quantity: salescope.Q(1), UnitPrice: salescope.M(300, "USD"),
			Date: date.New(2025, time.February, 20), Status: salescope.Completed,
		},
	}
	a, err := salescope.Analyze(records, "USD")
	if err != nil {
		panic(err)
	}
	return a
}

func TestSummaryMarkdown(t *testing.T) {
	report := SummaryMarkdown(sampleAnalytics(), salescope.CleaningReport{RowsIn: 3, RowsOut: 3})

	for _, want := range []string{
		"# Sales Summary Report",
		"## Key Metrics",
		"## Revenue by Category",
		"Electronics",
		"Furniture",
		"## Customer Tiers",
		"regular",
		"## Order Status Distribution",
		"completed",
		"## Monthly Revenue Trend",
		"2025-01",
		"2025-02",
		// February is 350 against January's 1200.
		"-70.8%",
		"alice",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("summary report is missing %q:\n%s", want, report)
		}
	}
}

func TestBenchmarkMarkdown(t *testing.T) {
	suite := &algo.Suite{Sizes: []int{50}, SearchRepeats: 5, Seed: 1}
	report := BenchmarkMarkdown(suite.Run())

	for _, want := range []string{
		"# Algorithm Performance Comparison",
		"## Sorting",
		"## Searching",
		"Bubble Sort",
		"Merge Sort",
		"slices.Sort",
		"Binary Search",
		"O(n²)",
		"O(log n)",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("benchmark report is missing %q:\n%s", want, report)
		}
	}
}

func TestBenchmarkMarkdownFailedRow(t *testing.T) {
	suite := &algo.Suite{Sizes: []int{-3}, SearchRepeats: 1, Seed: 1}
	report := BenchmarkMarkdown(suite.Run())
	if !strings.Contains(report, "# Algorithm Performance Comparison") {
		t.Errorf("report should render even when every row failed:\n%s", report)
	}
	// a dataset-level failure must stay visible in the report, not vanish
	// between the two tables.
	if !strings.Contains(report, "invalid input size -3") {
		t.Errorf("failed row is invisible in the report:\n%s", report)
	}
	if !strings.Contains(report, "failed") {
		t.Errorf("failed row is not marked as failed:\n%s", report)
	}
}
