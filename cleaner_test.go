package salescope

import (
	"bytes"
	"testing"

	"github.com/telliera/salescope/date"
)

// raw builds a RawRecord with sensible defaults, keeping test tables short.
func raw(id, qty, price string) RawRecord {
	return RawRecord{
		OrderID:   id,
		Product:   "Laptop Pro 14",
		Customer:  "CUST-001",
		Category:  "Electronics",
		Quantity:  qty,
		UnitPrice: price,
		Date:      "2024-03-15",
		Status:    "completed",
	}
}

func TestCleanDuplicatesAndInvalid(t *testing.T) {
	// A duplicate row and a negative price leave a single valid record.
	rows := []RawRecord{
		raw("ORD-001", "2", "100.00"),
		raw("ORD-001", "2", "100.00"),
		raw("ORD-002", "1", "-45.00"),
	}

	records, report := Clean(rows, "USD")

	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].OrderID != "ORD-001" {
		t.Errorf("kept %q, want ORD-001", records[0].OrderID)
	}
	if report.Duplicates != 1 {
		t.Errorf("got %d duplicates, want 1", report.Duplicates)
	}
	if report.DroppedInvalid != 1 {
		t.Errorf("got %d invalid, want 1", report.DroppedInvalid)
	}
	if report.RowsIn != 3 || report.RowsOut != 1 {
		t.Errorf("got %d in %d out, want 3 in 1 out", report.RowsIn, report.RowsOut)
	}
}

func TestCleanMeanFill(t *testing.T) {
	rows := []RawRecord{
		raw("ORD-001", "2", "10.00"),
		raw("ORD-002", "4", "20.00"),
		raw("ORD-003", "", ""),
	}

	records, report := Clean(rows, "USD")

	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if report.FilledQuantity != 1 || report.FilledPrice != 1 {
		t.Errorf("got %d quantities %d prices filled, want 1 and 1", report.FilledQuantity, report.FilledPrice)
	}
	if got := records[2].Quantity; !got.Equal(Q(3)) {
		t.Errorf("filled quantity = %s, want 3", got)
	}
	if got := records[2].UnitPrice; !got.Equal(M(15, "USD")) {
		t.Errorf("filled price = %s, want 15.00", got.DecimalString())
	}
}

func TestCleanDropsMissing(t *testing.T) {
	blankCustomer := raw("ORD-002", "1", "10.00")
	blankCustomer.Customer = ""
	badDate := raw("ORD-003", "1", "10.00")
	badDate.Date = "not a date"

	rows := []RawRecord{raw("ORD-001", "1", "10.00"), blankCustomer, badDate}
	records, report := Clean(rows, "USD")

	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if report.DroppedMissing != 2 {
		t.Errorf("got %d missing, want 2", report.DroppedMissing)
	}
}

func TestCleanNothingToFillWith(t *testing.T) {
	// When no value of a column parses there is no mean: the row is dropped.
	rows := []RawRecord{raw("ORD-001", "", "10.00")}
	records, report := Clean(rows, "USD")
	if len(records) != 0 {
		t.Fatalf("got %d records, want 0", len(records))
	}
	if report.DroppedMissing != 1 {
		t.Errorf("got %d missing, want 1", report.DroppedMissing)
	}
}

func TestCleanIdempotent(t *testing.T) {
	// Cleaning an already-cleaned dataset must be a no-op.
	rows := GenerateRaw(200, 7, date.New(2024, 12, 31))
	records, _ := Clean(rows, "USD")
	if len(records) == 0 {
		t.Fatal("no records survived cleaning")
	}

	var first bytes.Buffer
	if err := EncodeSalesCSV(&first, records); err != nil {
		t.Fatal(err)
	}
	reread, err := DecodeSalesCSV(bytes.NewReader(first.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	again, report := Clean(reread, "USD")

	if report.Duplicates+report.FilledQuantity+report.FilledPrice+report.DroppedMissing+report.DroppedInvalid != 0 {
		t.Errorf("second pass touched clean data: %s", report)
	}
	var second bytes.Buffer
	if err := EncodeSalesCSV(&second, again); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("cleaning twice did not yield the same CSV")
	}
}
