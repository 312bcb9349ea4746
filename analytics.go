package salescope

import (
	"errors"
	"slices"
	"strings"

	"github.com/telliera/salescope/date"
)

// Analytics is the full set of descriptive metrics computed over a cleaned
// dataset. It is the input of every report surface: markdown, JSON, charts
// and the workbook.
type Analytics struct {
	Currency           string
	Orders             int
	Customers          int
	TotalRevenue       Money
	AverageOrder       Money
	MedianOrder        Money
	RepeatCustomerRate Percent
	Categories         []CategoryStat // by revenue, descending
	TopCustomers       []CustomerStat // top 10 by lifetime value, descending
	Tiers              []TierStat     // by revenue, descending
	Statuses           []StatusCount  // by count, descending
	Monthly            []MonthRevenue // chronological
	Outliers           OutlierReport
}

// CategoryStat aggregates one product category.
type CategoryStat struct {
	Category     string `json:"category"`
	Orders       int    `json:"orders"`
	Revenue      Money  `json:"revenue"`
	AverageOrder Money  `json:"average_order"`
}

// CustomerStat aggregates one customer, with the pricing tier and discount
// rate derived from the buying pattern.
type CustomerStat struct {
	Customer      string  `json:"customer"`
	Orders        int     `json:"orders"`
	LifetimeValue Money   `json:"lifetime_value"`
	Tier          Tier    `json:"tier"`
	Discount      Percent `json:"discount"`
}

// TierStat aggregates one pricing tier.
type TierStat struct {
	Tier      Tier  `json:"tier"`
	Customers int   `json:"customers"`
	Revenue   Money `json:"revenue"`
	// Discount is the revenue the tier's rates would give away on the
	// period's orders.
	Discount Money `json:"discount"`
}

// StatusCount is one slice of the order status distribution.
type StatusCount struct {
	Status Status  `json:"status"`
	Count  int     `json:"count"`
	Share  Percent `json:"share"`
}

// MonthRevenue is one point of the monthly revenue trend.
type MonthRevenue struct {
	Month   date.Month `json:"-"`
	Revenue Money      `json:"revenue"`
}

// topCustomerCount bounds the customer leaderboard.
const topCustomerCount = 10

// Tier thresholds, on the period's spend.
const (
	corporateVolume = 10_000 // yearly spend granting corporate pricing
	premiumOrders   = 3      // repeat orders granting premium pricing
)

// classifyCustomer derives the catalog Customer behind one aggregated buyer:
// corporate above corporateVolume of yearly spend, premium for repeat buyers
// with loyalty years read off the activity span, regular otherwise.
func classifyCustomer(name string, orders int, value Money, first, last date.Date) Customer {
	c := Customer{ID: name, Name: name, Tier: Regular, AnnualVolume: value}
	switch {
	case value.GreaterThanOrEqual(M(corporateVolume, value.Currency())):
		c.Tier = Corporate
	case orders >= premiumOrders:
		c.Tier = Premium
		c.YearsMember = last.Year() - first.Year() + 1
	}
	return c
}

// Analyze computes all metrics over the cleaned records.
//
// Revenue metrics span every status: cancellations stay visible in the totals
// and are broken out in the status distribution.
func Analyze(records []Record, currency string) (*Analytics, error) {
	if len(records) == 0 {
		return nil, errors.New("cannot analyze an empty dataset")
	}

	a := &Analytics{Currency: currency, Orders: len(records)}

	type categoryAcc struct {
		revenue Money
		orders  int
	}
	type customerAcc struct {
		value       Money
		orders      int
		first, last date.Date
	}
	categories := map[string]*categoryAcc{}
	customers := map[string]*customerAcc{}
	statuses := map[Status]int{}
	months := map[date.Month]Money{}
	amounts := make([]float64, 0, len(records))

	total := M(0, currency)
	for _, rec := range records {
		amount := rec.Amount()
		total = total.Add(amount)
		amounts = append(amounts, amount.AsFloat())

		c := categories[rec.Category]
		if c == nil {
			c = &categoryAcc{revenue: M(0, currency)}
			categories[rec.Category] = c
		}
		c.revenue = c.revenue.Add(amount)
		c.orders++

		cu := customers[rec.Customer]
		if cu == nil {
			cu = &customerAcc{value: M(0, currency), first: rec.Date, last: rec.Date}
			customers[rec.Customer] = cu
		}
		cu.value = cu.value.Add(amount)
		cu.orders++
		if rec.Date.Before(cu.first) {
			cu.first = rec.Date
		}
		if rec.Date.After(cu.last) {
			cu.last = rec.Date
		}

		statuses[rec.Status]++
		months[rec.Date.MonthOf()] = months[rec.Date.MonthOf()].Add(amount)
	}

	a.TotalRevenue = total.Round()
	a.AverageOrder = total.Div(Q(len(records))).Round()
	a.MedianOrder = M(quantile(amounts, 0.5), currency).Round()
	a.Customers = len(customers)

	repeat := 0
	for _, cu := range customers {
		if cu.orders > 1 {
			repeat++
		}
	}
	a.RepeatCustomerRate = Percent(float64(repeat) / float64(len(customers)) * 100)

	for name, acc := range categories {
		a.Categories = append(a.Categories, CategoryStat{
			Category:     name,
			Orders:       acc.orders,
			Revenue:      acc.revenue.Round(),
			AverageOrder: acc.revenue.Div(Q(acc.orders)).Round(),
		})
	}
	slices.SortFunc(a.Categories, func(x, y CategoryStat) int {
		if c := y.Revenue.Compare(x.Revenue); c != 0 {
			return c
		}
		return strings.Compare(x.Category, y.Category)
	})

	tiers := map[Tier]*TierStat{}
	for name, acc := range customers {
		buyer := classifyCustomer(name, acc.orders, acc.value, acc.first, acc.last)
		a.TopCustomers = append(a.TopCustomers, CustomerStat{
			Customer:      name,
			Orders:        acc.orders,
			LifetimeValue: acc.value.Round(),
			Tier:          buyer.Tier,
			Discount:      buyer.DiscountRate(),
		})

		t := tiers[buyer.Tier]
		if t == nil {
			t = &TierStat{Tier: buyer.Tier, Revenue: M(0, currency), Discount: M(0, currency)}
			tiers[buyer.Tier] = t
		}
		t.Customers++
		t.Revenue = t.Revenue.Add(acc.value)
		t.Discount = t.Discount.Add(acc.value.Sub(buyer.Discounted(acc.value)))
	}
	slices.SortFunc(a.TopCustomers, func(x, y CustomerStat) int {
		if c := y.LifetimeValue.Compare(x.LifetimeValue); c != 0 {
			return c
		}
		return strings.Compare(x.Customer, y.Customer)
	})
	if len(a.TopCustomers) > topCustomerCount {
		a.TopCustomers = a.TopCustomers[:topCustomerCount]
	}

	for _, t := range tiers {
		t.Revenue = t.Revenue.Round()
		t.Discount = t.Discount.Round()
		a.Tiers = append(a.Tiers, *t)
	}
	slices.SortFunc(a.Tiers, func(x, y TierStat) int {
		if c := y.Revenue.Compare(x.Revenue); c != 0 {
			return c
		}
		return strings.Compare(string(x.Tier), string(y.Tier))
	})

	for status, count := range statuses {
		a.Statuses = append(a.Statuses, StatusCount{
			Status: status,
			Count:  count,
			Share:  Percent(float64(count) / float64(len(records)) * 100),
		})
	}
	slices.SortFunc(a.Statuses, func(x, y StatusCount) int {
		if c := y.Count - x.Count; c != 0 {
			return c
		}
		return strings.Compare(string(x.Status), string(y.Status))
	})

	for month, revenue := range months {
		a.Monthly = append(a.Monthly, MonthRevenue{Month: month, Revenue: revenue.Round()})
	}
	slices.SortFunc(a.Monthly, func(x, y MonthRevenue) int { return x.Month.Compare(y.Month) })

	a.Outliers = DetectOutliers(records, currency)

	return a, nil
}

// MarshalJSON writes the analytics with a stable field order, so that
// jsonpath queries against analytics.json stay valid across runs.
func (a *Analytics) MarshalJSON() ([]byte, error) {
	type jmonth struct {
		Month   string `json:"month"`
		Revenue Money  `json:"revenue"`
	}
	jmonths := make([]jmonth, 0, len(a.Monthly))
	for _, m := range a.Monthly {
		jmonths = append(jmonths, jmonth{Month: m.Month.String(), Revenue: m.Revenue})
	}

	var w jsonObjectWriter
	w.Append("currency", a.Currency)
	w.Append("orders", a.Orders)
	w.Append("customers", a.Customers)
	w.Append("total_revenue", a.TotalRevenue)
	w.Append("average_order", a.AverageOrder)
	w.Append("median_order", a.MedianOrder)
	w.Append("repeat_customer_rate", float64(a.RepeatCustomerRate))
	w.Append("categories", a.Categories)
	w.Append("top_customers", a.TopCustomers)
	w.Append("tiers", a.Tiers)
	w.Append("statuses", a.Statuses)
	w.Append("monthly", jmonths)
	w.Append("outliers", a.Outliers)
	return w.MarshalJSON()
}
