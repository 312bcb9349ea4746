package workbook

import (
	"bytes"
	"testing"
	"time"

	"github.com/telliera/salescope"
	"github.com/telliera/salescope/date"
	"github.com/xuri/excelize/v2"
)

func TestWrite(t *testing.T) {
	records := []salescope.Record{
		{
			OrderID: "ORD-1", Product: "Laptop", Customer: "alice", Category: "Electronics",
			Quantity: salescope.Q(1), UnitPrice: salescope.M(1200, "USD"),
			Date: date.New(2025, time.January, 5), Status: salescope.Completed,
		},
		{
			OrderID: "ORD-2", Product: "Chair", Customer: "bob", Category: "Furniture",
			Quantity: salescope.Q(2), UnitPrice: salescope.M(150, "USD"),
			Date: date.New(2025, time.February, 10), Status: salescope.Completed,
		},
	}
	a, err := salescope.Analyze(records, "USD")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, a); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("workbook does not reopen: %v", err)
	}
	defer f.Close()

	want := []string{"Summary", "Categories", "Top Customers", "Tiers", "Monthly", "Outliers"}
	got := f.GetSheetList()
	for _, sheet := range want {
		found := false
		for _, g := range got {
			if g == sheet {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing sheet %q in %v", sheet, got)
		}
	}

	// spot-check a value: total revenue on the summary sheet.
	val, err := f.GetCellValue("Summary", "B3")
	if err != nil {
		t.Fatal(err)
	}
	if val != "1500" {
		t.Errorf("Summary!B3 = %q, want %q", val, "1500")
	}

	// both fixture buyers are one-off small spenders.
	tier, err := f.GetCellValue("Tiers", "A2")
	if err != nil {
		t.Fatal(err)
	}
	if tier != "regular" {
		t.Errorf("Tiers!A2 = %q, want %q", tier, "regular")
	}
}
