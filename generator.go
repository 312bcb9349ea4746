package salescope

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"

	"github.com/telliera/salescope/date"
)

// this file generates demo datasets: a raw sales CSV with realistic dirt
// (duplicates, holes, a bad price) for the cleaning pipeline, and plain
// float slices for the benchmark suite.

var sampleCatalog = []struct {
	product  string
	category string
	low, hi  float64
}{
	{"Laptop Pro 14", "Electronics", 900, 2200},
	{"Wireless Mouse", "Electronics", 15, 60},
	{"USB-C Dock", "Electronics", 80, 220},
	{"Standing Desk", "Furniture", 300, 700},
	{"Task Chair", "Furniture", 120, 450},
	{"Desk Lamp", "Furniture", 25, 90},
	{"Coffee Beans 1kg", "Grocery", 12, 35},
	{"Green Tea Box", "Grocery", 6, 18},
	{"Notebook A5", "Stationery", 3, 12},
	{"Fountain Pen", "Stationery", 20, 150},
}

var sampleStatuses = []Status{
	// weighted: completions dominate, as in a healthy shop.
	Completed, Completed, Completed, Completed, Completed, Completed,
	Pending, Pending,
	Cancelled, Cancelled,
}

// GenerateRaw produces n raw sales rows over the 12 months ending at 'until',
// seeded for reproducibility. Roughly 2% of numeric fields are blanked, a few
// rows are exact duplicates, one row carries a negative price and a couple of
// orders are far outside the usual range, so that cleaning and outlier
// detection have something to do.
func GenerateRaw(n int, seed int64, until date.Date) []RawRecord {
	rng := rand.New(rand.NewSource(seed))
	start := date.New(until.Year()-1, until.Month(), until.Day())

	rows := make([]RawRecord, 0, n+n/50)
	for i := 0; i < n; i++ {
		item := sampleCatalog[rng.Intn(len(sampleCatalog))]
		price := item.low + rng.Float64()*(item.hi-item.low)
		row := RawRecord{
			OrderID:   fmt.Sprintf("ORD-%05d", i+1),
			Product:   item.product,
			Customer:  fmt.Sprintf("CUST-%03d", rng.Intn(n/5+1)+1),
			Category:  item.category,
			Quantity:  fmt.Sprintf("%d", rng.Intn(5)+1),
			UnitPrice: fmt.Sprintf("%.2f", price),
			Date:      start.Add(rng.Intn(365)).String(),
			Status:    string(sampleStatuses[rng.Intn(len(sampleStatuses))]),
		}

		switch {
		case rng.Float64() < 0.02:
			row.Quantity = ""
		case rng.Float64() < 0.02:
			row.UnitPrice = ""
		case rng.Float64() < 0.005:
			row.Date = "not a date"
		}

		rows = append(rows, row)
		if rng.Float64() < 0.02 {
			rows = append(rows, row) // exact duplicate
		}
	}

	if n > 10 {
		// a refund mistyped as a sale, and two whale orders.
		rows[rng.Intn(n)].UnitPrice = "-45.00"
		rows[rng.Intn(n)].UnitPrice = "9999.99"
		rows[rng.Intn(n)].UnitPrice = "12500.00"
	}
	return rows
}

// WriteRawCSV writes raw rows as a sales CSV, dirt included.
func WriteRawCSV(w io.Writer, rows []RawRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, row := range rows {
		err := cw.Write([]string{
			row.OrderID, row.Product, row.Customer, row.Category,
			row.Quantity, row.UnitPrice, row.Date, row.Status,
		})
		if err != nil {
			return fmt.Errorf("cannot write row %q: %w", row.OrderID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Amounts extracts the order amounts of records, the sequence-under-test fed
// to the benchmark suite.
func Amounts(records []Record) []float64 {
	out := make([]float64, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.Amount().AsFloat())
	}
	return out
}
