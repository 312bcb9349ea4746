package salescope

import "slices"

// OutlierReport lists the orders whose amount falls outside the interquartile
// fences [Q1 - 1.5*IQR, Q3 + 1.5*IQR].
type OutlierReport struct {
	Lower  Money          `json:"lower_bound"`
	Upper  Money          `json:"upper_bound"`
	Orders []OutlierOrder `json:"orders"`
}

// OutlierOrder is one flagged order.
type OutlierOrder struct {
	OrderID  string `json:"order_id"`
	Customer string `json:"customer"`
	Category string `json:"category"`
	Amount   Money  `json:"amount"`
	Status   Status `json:"status"`
}

// Count returns the number of flagged orders.
func (r OutlierReport) Count() int { return len(r.Orders) }

// Share returns the flagged orders as a share of 'total' orders.
func (r OutlierReport) Share(total int) Percent {
	if total == 0 {
		return 0
	}
	return Percent(float64(len(r.Orders)) / float64(total) * 100)
}

// DetectOutliers flags records whose amount is outside the IQR fences.
// Records are flagged, never dropped: an unusually large order is a finding,
// not an anomaly to clean away.
func DetectOutliers(records []Record, currency string) OutlierReport {
	amounts := make([]float64, 0, len(records))
	for _, rec := range records {
		amounts = append(amounts, rec.Amount().AsFloat())
	}

	q1 := quantile(amounts, 0.25)
	q3 := quantile(amounts, 0.75)
	iqr := q3 - q1
	lower := q1 - 1.5*iqr
	upper := q3 + 1.5*iqr

	report := OutlierReport{
		Lower: M(lower, currency).Round(),
		Upper: M(upper, currency).Round(),
	}
	for _, rec := range records {
		amount := rec.Amount().AsFloat()
		if amount < lower || amount > upper {
			report.Orders = append(report.Orders, OutlierOrder{
				OrderID:  rec.OrderID,
				Customer: rec.Customer,
				Category: rec.Category,
				Amount:   rec.Amount().Round(),
				Status:   rec.Status,
			})
		}
	}
	return report
}

// quantile returns the q-th quantile of values using linear interpolation
// between the two nearest ranks, matching the numpy/pandas default.
func quantile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	pos := q * float64(len(sorted)-1)
	lo := int(pos)
	hi := lo + 1
	if hi >= len(sorted) {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
