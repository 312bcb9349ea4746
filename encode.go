package salescope

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// this file contains functions to handle the sales CSV format.
// The read side is permissive (missing fields, stray spacing); the write side
// is canonical, so that cleaning then re-encoding yields a stable file.

// csvHeader is the fixed column set of the sales CSV.
var csvHeader = []string{
	"order_id", "product", "customer", "category",
	"quantity", "unit_price", "order_date", "status",
}

// RawRecord is one CSV row before cleaning. All fields are kept as strings;
// an empty string marks a missing value. Type coercion happens in Clean.
type RawRecord struct {
	OrderID   string
	Product   string
	Customer  string
	Category  string
	Quantity  string
	UnitPrice string
	Date      string
	Status    string
}

// DecodeSalesCSV reads raw sales rows from 'r'.
//
// The first row must be the canonical header. Rows with a wrong field count
// are a format error: this is a malformed file, not a cleanable anomaly.
func DecodeSalesCSV(r io.Reader) ([]RawRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV header: %w", err)
	}
	for i, col := range header {
		header[i] = strings.ToLower(strings.TrimSpace(col))
	}
	if len(header) != len(csvHeader) {
		return nil, fmt.Errorf("wrong CSV header %v, want %v", header, csvHeader)
	}
	for i, want := range csvHeader {
		if header[i] != want {
			return nil, fmt.Errorf("wrong CSV column %d: got %q want %q", i, header[i], want)
		}
	}

	var rows []RawRecord
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read CSV row: %w", err)
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		rows = append(rows, RawRecord{
			OrderID:   fields[0],
			Product:   fields[1],
			Customer:  fields[2],
			Category:  fields[3],
			Quantity:  fields[4],
			UnitPrice: fields[5],
			Date:      fields[6],
			Status:    strings.ToLower(fields[7]),
		})
	}
	return rows, nil
}

// EncodeSalesCSV writes cleaned records to 'w' in the canonical form: header
// first, then one row per record with two-digit prices and ISO dates.
func EncodeSalesCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.OrderID,
			rec.Product,
			rec.Customer,
			rec.Category,
			rec.Quantity.String(),
			rec.UnitPrice.DecimalString(),
			rec.Date.String(),
			string(rec.Status),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write record %q: %w", rec.OrderID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
