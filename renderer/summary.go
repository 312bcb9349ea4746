// Package renderer builds the markdown reports: the sales summary and the
// algorithm comparison. The documents are plain markdown, written to files
// as-is and rendered on the terminal by the cmd package.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/telliera/salescope"
)

// SummaryMarkdown renders the full analytics report.
func SummaryMarkdown(a *salescope.Analytics, cleaning salescope.CleaningReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Sales Summary Report")

	doc.H2("Key Metrics")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Revenue", a.TotalRevenue.String()},
			{"Orders", fmt.Sprintf("%d", a.Orders)},
			{"Customers", fmt.Sprintf("%d", a.Customers)},
			{"Average Order Value", a.AverageOrder.String()},
			{"Median Order Value", a.MedianOrder.String()},
			{"Repeat Customer Rate", a.RepeatCustomerRate.String()},
			{"Outlier Orders", fmt.Sprintf("%d (%s)", a.Outliers.Count(), a.Outliers.Share(a.Orders))},
		},
	})

	doc.H2("Revenue by Category")
	catTable := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Category", "Orders", "Revenue", "Avg Order"},
	}
	for _, c := range a.Categories {
		catTable.Rows = append(catTable.Rows, []string{
			c.Category,
			fmt.Sprintf("%d", c.Orders),
			c.Revenue.String(),
			c.AverageOrder.String(),
		})
	}
	doc.Table(catTable)

	doc.H2(fmt.Sprintf("Top %d Customers", len(a.TopCustomers)))
	custTable := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignLeft, md.AlignRight},
		Header:    []string{"Customer", "Orders", "Lifetime Value", "Tier", "Discount"},
	}
	for _, c := range a.TopCustomers {
		custTable.Rows = append(custTable.Rows, []string{
			c.Customer,
			fmt.Sprintf("%d", c.Orders),
			c.LifetimeValue.String(),
			string(c.Tier),
			c.Discount.String(),
		})
	}
	doc.Table(custTable)

	doc.H2("Customer Tiers")
	tierTable := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Tier", "Customers", "Revenue", "Tier Discount"},
	}
	for _, t := range a.Tiers {
		tierTable.Rows = append(tierTable.Rows, []string{
			string(t.Tier),
			fmt.Sprintf("%d", t.Customers),
			t.Revenue.String(),
			t.Discount.String(),
		})
	}
	doc.Table(tierTable)

	doc.H2("Order Status Distribution")
	statusTable := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Status", "Orders", "Share"},
	}
	for _, s := range a.Statuses {
		statusTable.Rows = append(statusTable.Rows, []string{
			string(s.Status),
			fmt.Sprintf("%d", s.Count),
			s.Share.String(),
		})
	}
	doc.Table(statusTable)

	doc.H2("Monthly Revenue Trend")
	monthTable := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Month", "Revenue", "MoM"},
	}
	for i, m := range a.Monthly {
		delta := "-" // the first month has nothing to move from
		if i > 0 && a.Monthly[i-1].Revenue.IsPositive() {
			prev := a.Monthly[i-1].Revenue.AsFloat()
			change := salescope.Percent((m.Revenue.AsFloat() - prev) / prev * 100)
			delta = change.SignedString()
		}
		monthTable.Rows = append(monthTable.Rows, []string{m.Month.String(), m.Revenue.String(), delta})
	}
	doc.Table(monthTable)

	doc.H2("Outlier Orders")
	doc.PlainText(fmt.Sprintf("IQR fences: below %s or above %s.", a.Outliers.Lower, a.Outliers.Upper))
	if len(a.Outliers.Orders) > 0 {
		outTable := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft},
			Header:    []string{"Order", "Customer", "Category", "Amount", "Status"},
		}
		for _, o := range a.Outliers.Orders {
			outTable.Rows = append(outTable.Rows, []string{
				o.OrderID, o.Customer, o.Category, o.Amount.String(), string(o.Status),
			})
		}
		doc.Table(outTable)
	} else {
		doc.PlainText("No outliers detected.")
	}

	doc.H2("Data Cleaning")
	doc.PlainText(cleaning.String())

	return doc.String()
}
