package salescope

import (
	"fmt"
	"testing"
)

func TestQuantile(t *testing.T) {
	cases := []struct {
		values []float64
		q      float64
		want   float64
	}{
		{[]float64{1, 2, 3, 4}, 0.5, 2.5},
		{[]float64{1, 2, 3, 4}, 0.25, 1.75},
		{[]float64{1, 2, 3, 4}, 0.75, 3.25},
		{[]float64{4, 1, 3, 2}, 0.5, 2.5}, // order does not matter
		{[]float64{1, 2, 3, 4, 5}, 0.5, 3},
		{[]float64{7}, 0.5, 7},
		{nil, 0.5, 0},
	}
	for _, c := range cases {
		if got := quantile(c.values, c.q); got != c.want {
			t.Errorf("quantile(%v, %v) = %v, want %v", c.values, c.q, got, c.want)
		}
	}
}

func TestDetectOutliers(t *testing.T) {
	// Twenty ordinary orders and one whale: the whale alone gets flagged.
	var records []Record
	for i := 0; i < 20; i++ {
		records = append(records, rec(fmt.Sprintf("ORD-%03d", i+1), "alice", "Electronics", 1, "100.00", "2024-01-05", Completed))
	}
	records = append(records, rec("ORD-021", "bob", "Electronics", 1, "10000.00", "2024-01-06", Completed))

	report := DetectOutliers(records, "USD")

	if report.Count() != 1 {
		t.Fatalf("flagged %d orders, want 1", report.Count())
	}
	if report.Orders[0].OrderID != "ORD-021" {
		t.Errorf("flagged %q, want ORD-021", report.Orders[0].OrderID)
	}
	if !report.Orders[0].Amount.Equal(M(10000, "USD")) {
		t.Errorf("flagged amount = %s, want 10000.00", report.Orders[0].Amount.DecimalString())
	}
	if !report.Share(len(records)).Equal(Percent(100.0 / 21)) {
		t.Errorf("share = %s, want %s", report.Share(len(records)), Percent(100.0/21))
	}
}

func TestDetectOutliersUniform(t *testing.T) {
	// A flat dataset has no outliers.
	var records []Record
	for i := 0; i < 10; i++ {
		records = append(records, rec(fmt.Sprintf("ORD-%03d", i+1), "alice", "Grocery", 2, "12.50", "2024-01-05", Completed))
	}
	if report := DetectOutliers(records, "USD"); report.Count() != 0 {
		t.Errorf("flagged %d orders on a flat dataset, want 0", report.Count())
	}
}
