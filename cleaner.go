package salescope

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/telliera/salescope/date"
)

// CleaningReport counts what Clean did to the raw rows. Cleaning anomalies
// are policy, not errors: the report is the only trace they leave.
type CleaningReport struct {
	RowsIn         int
	RowsOut        int
	Duplicates     int
	FilledQuantity int // quantities replaced by the column mean
	FilledPrice    int // unit prices replaced by the column mean
	DroppedMissing int // rows missing a string field or an unparseable date
	DroppedInvalid int // rows failing Record.Validate (negative price, bad status...)
}

func (r CleaningReport) String() string {
	return fmt.Sprintf("%d rows in, %d out (%d duplicates, %d missing, %d invalid dropped; %d quantities, %d prices mean-filled)",
		r.RowsIn, r.RowsOut, r.Duplicates, r.DroppedMissing, r.DroppedInvalid, r.FilledQuantity, r.FilledPrice)
}

// Clean turns raw CSV rows into validated records, applying the drop/fill
// policy:
//
//   - numeric fields (quantity, unit price) that are missing or unparseable
//     are filled with the mean of the parseable values of their column,
//   - rows missing a string field, or whose date cannot be coerced, are
//     dropped,
//   - exact duplicate rows are dropped, keeping the first occurrence,
//   - rows that fail Record validation are dropped.
//
// Clean is idempotent: cleaning an already-cleaned dataset yields an
// identical dataset, because clean data triggers none of the policies.
func Clean(rows []RawRecord, currency string) ([]Record, CleaningReport) {
	report := CleaningReport{RowsIn: len(rows)}

	meanQty, qtyOK := columnMean(rows, func(r RawRecord) string { return r.Quantity })
	meanPrice, priceOK := columnMean(rows, func(r RawRecord) string { return r.UnitPrice })
	// prices are money: the fill value is rounded to cents so that the
	// cleaned CSV re-reads to the exact same value.
	meanPrice = meanPrice.Round(2)

	var records []Record
	seen := make(map[RawRecord]bool, len(rows))
	for _, row := range rows {
		if row.OrderID == "" || row.Product == "" || row.Customer == "" ||
			row.Category == "" || row.Status == "" || row.Date == "" {
			report.DroppedMissing++
			continue
		}
		day, err := date.Parse(row.Date)
		if err != nil {
			// the date cannot be coerced, the row cannot be trended.
			report.DroppedMissing++
			continue
		}

		qty, err := ParseQuantity(row.Quantity)
		if err != nil {
			if !qtyOK {
				report.DroppedMissing++
				continue
			}
			qty = Quantity{value: meanQty}
			report.FilledQuantity++
		}
		price, err := ParseMoney(row.UnitPrice, currency)
		if err != nil {
			if !priceOK {
				report.DroppedMissing++
				continue
			}
			price = Money{value: meanPrice, cur: currency}
			report.FilledPrice++
		}

		rec := Record{
			OrderID:   row.OrderID,
			Product:   row.Product,
			Customer:  row.Customer,
			Category:  row.Category,
			Quantity:  qty,
			UnitPrice: price,
			Date:      day,
			Status:    Status(row.Status),
		}
		if err := rec.Validate(); err != nil {
			report.DroppedInvalid++
			continue
		}

		// dedupe on the raw row so that two occurrences filled to the same
		// values still count as the duplicates they were in the file.
		key := row
		key.Quantity, key.UnitPrice = qty.String(), price.DecimalString()
		if seen[key] {
			report.Duplicates++
			continue
		}
		seen[key] = true

		records = append(records, rec)
	}

	report.RowsOut = len(records)
	return records, report
}

// columnMean computes the mean of the parseable values of one raw column.
// The second return is false when no value parses, in which case there is
// nothing to fill with.
func columnMean(rows []RawRecord, field func(RawRecord) string) (decimal.Decimal, bool) {
	var sum decimal.Decimal
	var n int64
	for _, row := range rows {
		v, err := decimal.NewFromString(field(row))
		if err != nil {
			continue
		}
		sum = sum.Add(v)
		n++
	}
	if n == 0 {
		return decimal.Decimal{}, false
	}
	return sum.Div(decimal.NewFromInt(n)), true
}
