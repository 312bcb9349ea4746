// Package chart renders the analytics as raster PNG images: revenue by
// category (bar), monthly trend (line), order value distribution (histogram)
// and status distribution (pie).
package chart

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/telliera/salescope"
)

// histogramBins is the fixed bucket count of the order value distribution.
const histogramBins = 20

// WriteAll renders every chart into dir and returns the written file paths.
// Charts that cannot be drawn from the data at hand (a single month cannot
// make a trend line) are skipped, not failed.
func WriteAll(dir string, a *salescope.Analytics, amounts []float64) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create chart directory %q: %w", dir, err)
	}

	var written []string
	render := func(name string, renderFunc func(w *os.File) error, ok bool) error {
		if !ok {
			return nil
		}
		path := filepath.Join(dir, name)
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("cannot create chart file %q: %w", path, err)
		}
		defer f.Close()
		if err := renderFunc(f); err != nil {
			return fmt.Errorf("cannot render chart %q: %w", path, err)
		}
		written = append(written, path)
		return nil
	}

	steps := []struct {
		name string
		fn   func(w *os.File) error
		ok   bool
	}{
		{"revenue_by_category.png", func(w *os.File) error { return renderCategoryBar(w, a) }, len(a.Categories) > 0},
		{"monthly_revenue.png", func(w *os.File) error { return renderMonthlyLine(w, a) }, len(a.Monthly) > 1},
		{"order_distribution.png", func(w *os.File) error { return renderHistogram(w, amounts) }, len(amounts) > 1},
		{"status_distribution.png", func(w *os.File) error { return renderStatusPie(w, a) }, len(a.Statuses) > 0},
	}
	for _, step := range steps {
		if err := render(step.name, step.fn, step.ok); err != nil {
			return written, err
		}
	}
	return written, nil
}

func renderCategoryBar(w *os.File, a *salescope.Analytics) error {
	bars := make([]gochart.Value, 0, len(a.Categories))
	for _, c := range a.Categories {
		bars = append(bars, gochart.Value{Label: c.Category, Value: c.Revenue.AsFloat()})
	}
	graph := gochart.BarChart{
		Title:    "Revenue by Category",
		Width:    900,
		Height:   500,
		BarWidth: 60,
		Bars:     bars,
	}
	return graph.Render(gochart.PNG, w)
}

func renderMonthlyLine(w *os.File, a *salescope.Analytics) error {
	xs := make([]time.Time, 0, len(a.Monthly))
	ys := make([]float64, 0, len(a.Monthly))
	for _, m := range a.Monthly {
		xs = append(xs, time.Date(m.Month.Year(), m.Month.Month(), 1, 0, 0, 0, 0, time.UTC))
		ys = append(ys, m.Revenue.AsFloat())
	}
	graph := gochart.Chart{
		Title:  "Monthly Revenue Trend",
		Width:  1000,
		Height: 500,
		XAxis: gochart.XAxis{
			ValueFormatter: gochart.TimeValueFormatterWithFormat("2006-01"),
		},
		Series: []gochart.Series{
			gochart.TimeSeries{Name: "revenue", XValues: xs, YValues: ys},
		},
	}
	return graph.Render(gochart.PNG, w)
}

func renderHistogram(w *os.File, amounts []float64) error {
	lo, hi := amounts[0], amounts[0]
	for _, v := range amounts {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	width := (hi - lo) / histogramBins
	if width == 0 {
		width = 1
	}

	counts := make([]int, histogramBins)
	for _, v := range amounts {
		bin := int((v - lo) / width)
		if bin >= histogramBins { // hi itself lands in the last bin
			bin = histogramBins - 1
		}
		counts[bin]++
	}

	bars := make([]gochart.Value, 0, histogramBins)
	for i, count := range counts {
		bars = append(bars, gochart.Value{
			Label: fmt.Sprintf("%.0f", lo+(float64(i)+0.5)*width),
			Value: float64(count),
		})
	}
	graph := gochart.BarChart{
		Title:    "Order Value Distribution",
		Width:    1000,
		Height:   500,
		BarWidth: 30,
		Bars:     bars,
	}
	return graph.Render(gochart.PNG, w)
}

func renderStatusPie(w *os.File, a *salescope.Analytics) error {
	values := make([]gochart.Value, 0, len(a.Statuses))
	for _, s := range a.Statuses {
		values = append(values, gochart.Value{Label: string(s.Status), Value: float64(s.Count)})
	}
	graph := gochart.PieChart{
		Title:  "Order Status Distribution",
		Width:  600,
		Height: 600,
		Values: values,
	}
	return graph.Render(gochart.PNG, w)
}
