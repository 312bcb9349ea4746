// Package workbook exports the analytics as a spreadsheet, one sheet per
// report section, for the people who will inevitably ask for Excel.
package workbook

import (
	"fmt"
	"io"

	"github.com/telliera/salescope"
	"github.com/xuri/excelize/v2"
)

// Write writes the analytics workbook to 'w'.
func Write(w io.Writer, a *salescope.Analytics) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return fmt.Errorf("cannot rename summary sheet: %w", err)
	}
	if err := fillSheet(f, "Summary", summaryRows(a)); err != nil {
		return err
	}

	sheets := []struct {
		name string
		rows [][]any
	}{
		{"Categories", categoryRows(a)},
		{"Top Customers", customerRows(a)},
		{"Tiers", tierRows(a)},
		{"Monthly", monthlyRows(a)},
		{"Outliers", outlierRows(a)},
	}
	for _, sheet := range sheets {
		if _, err := f.NewSheet(sheet.name); err != nil {
			return fmt.Errorf("cannot create sheet %q: %w", sheet.name, err)
		}
		if err := fillSheet(f, sheet.name, sheet.rows); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("cannot write workbook: %w", err)
	}
	return nil
}

func summaryRows(a *salescope.Analytics) [][]any {
	return [][]any{
		{"Metric", "Value"},
		{"Currency", a.Currency},
		{"Total Revenue", a.TotalRevenue.AsFloat()},
		{"Orders", a.Orders},
		{"Customers", a.Customers},
		{"Average Order Value", a.AverageOrder.AsFloat()},
		{"Median Order Value", a.MedianOrder.AsFloat()},
		{"Repeat Customer Rate (%)", float64(a.RepeatCustomerRate)},
		{"Outlier Orders", a.Outliers.Count()},
	}
}

func categoryRows(a *salescope.Analytics) [][]any {
	rows := [][]any{{"Category", "Orders", "Revenue", "Avg Order"}}
	for _, c := range a.Categories {
		rows = append(rows, []any{c.Category, c.Orders, c.Revenue.AsFloat(), c.AverageOrder.AsFloat()})
	}
	return rows
}

func customerRows(a *salescope.Analytics) [][]any {
	rows := [][]any{{"Customer", "Orders", "Lifetime Value", "Tier", "Discount (%)"}}
	for _, c := range a.TopCustomers {
		rows = append(rows, []any{c.Customer, c.Orders, c.LifetimeValue.AsFloat(), string(c.Tier), float64(c.Discount)})
	}
	return rows
}

func tierRows(a *salescope.Analytics) [][]any {
	rows := [][]any{{"Tier", "Customers", "Revenue", "Tier Discount"}}
	for _, t := range a.Tiers {
		rows = append(rows, []any{string(t.Tier), t.Customers, t.Revenue.AsFloat(), t.Discount.AsFloat()})
	}
	return rows
}

func monthlyRows(a *salescope.Analytics) [][]any {
	rows := [][]any{{"Month", "Revenue"}}
	for _, m := range a.Monthly {
		rows = append(rows, []any{m.Month.String(), m.Revenue.AsFloat()})
	}
	return rows
}

func outlierRows(a *salescope.Analytics) [][]any {
	rows := [][]any{{"Order", "Customer", "Category", "Amount", "Status"}}
	for _, o := range a.Outliers.Orders {
		rows = append(rows, []any{o.OrderID, o.Customer, o.Category, o.Amount.AsFloat(), string(o.Status)})
	}
	return rows
}

func fillSheet(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("cannot address row %d of %q: %w", i+1, sheet, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("cannot fill row %d of %q: %w", i+1, sheet, err)
		}
	}
	return nil
}
