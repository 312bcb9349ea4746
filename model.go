package salescope

import (
	"errors"
	"fmt"
	"strings"
)

// This file holds the catalog value objects. The original entity hierarchy is
// flattened into independent structs that all satisfy Validator; pricing and
// discount differences live in plain methods instead of subclassing.

// Product is a physical item with a per-unit price and a stock level.
type Product struct {
	ID       string
	Name     string
	Category string
	Price    Money
	Stock    Quantity
}

// Total returns the price of the given quantity of the product.
func (p Product) Total(qty Quantity) Money { return p.Price.Mul(qty) }

func (p Product) Validate() error {
	var errs []error
	if p.ID == "" || p.Name == "" {
		errs = append(errs, errors.New("id and name cannot be empty"))
	}
	if p.Price.IsNegative() {
		errs = append(errs, errors.New("price cannot be negative"))
	}
	if p.Stock.IsNegative() {
		errs = append(errs, errors.New("stock cannot be negative"))
	}
	return errors.Join(errs...)
}

// Service is a non-physical item billed by the hour.
type Service struct {
	ID         string
	Name       string
	Category   string
	HourlyRate Money
	Hours      Quantity // default engagement duration
}

// Total returns the price of the given quantity of engagements.
func (s Service) Total(qty Quantity) Money { return s.HourlyRate.Mul(s.Hours).Mul(qty) }

func (s Service) Validate() error {
	var errs []error
	if s.ID == "" || s.Name == "" {
		errs = append(errs, errors.New("id and name cannot be empty"))
	}
	if s.HourlyRate.IsNegative() {
		errs = append(errs, errors.New("hourly rate cannot be negative"))
	}
	if !s.Hours.IsPositive() {
		errs = append(errs, errors.New("hours must be positive"))
	}
	return errors.Join(errs...)
}

// Priced is the common capability of catalog items.
type Priced interface {
	Validator
	Total(qty Quantity) Money
}

var _ Priced = Product{}
var _ Priced = Service{}

// Tier is a customer pricing tier.
type Tier string

const (
	Regular   Tier = "regular"
	Premium   Tier = "premium"
	Corporate Tier = "corporate"
)

// Customer is a buyer with a pricing tier.
type Customer struct {
	ID            string
	Name          string
	Email         string
	Tier          Tier
	LifetimeValue Money
	// YearsMember feeds the premium loyalty discount.
	YearsMember int
	// AnnualVolume feeds the corporate volume discount.
	AnnualVolume Money
}

func (c Customer) Validate() error {
	var errs []error
	if c.ID == "" || c.Name == "" {
		errs = append(errs, errors.New("id and name cannot be empty"))
	}
	if !strings.Contains(c.Email, "@") {
		errs = append(errs, fmt.Errorf("invalid email %q", c.Email))
	}
	switch c.Tier {
	case Regular, Premium, Corporate:
	default:
		errs = append(errs, fmt.Errorf("unknown tier %q", c.Tier))
	}
	if c.Tier == Premium && c.YearsMember < 1 {
		errs = append(errs, errors.New("premium membership must be at least 1 year"))
	}
	if c.AnnualVolume.IsNegative() {
		errs = append(errs, errors.New("annual volume cannot be negative"))
	}
	return errors.Join(errs...)
}

// DiscountRate returns the customer's discount as a fraction of the order
// amount.
//
// Regular customers get none. Premium customers get 5% plus 1% per year of
// membership, with the loyalty part capped at 10% and the total at 15%.
// Corporate customers get a volume break: 5% below 10k, 10% below 50k,
// 15% above.
func (c Customer) DiscountRate() Percent {
	switch c.Tier {
	case Premium:
		loyalty := 0.01 * float64(c.YearsMember)
		if loyalty > 0.10 {
			loyalty = 0.10
		}
		rate := 0.05 + loyalty
		if rate > 0.15 {
			rate = 0.15
		}
		return Percent(rate * 100)
	case Corporate:
		switch {
		case c.AnnualVolume.GreaterThanOrEqual(M(50_000, c.AnnualVolume.Currency())):
			return Percent(15)
		case c.AnnualVolume.GreaterThanOrEqual(M(10_000, c.AnnualVolume.Currency())):
			return Percent(10)
		default:
			return Percent(5)
		}
	default:
		return Percent(0)
	}
}

// Discounted applies the customer's discount to an order amount.
func (c Customer) Discounted(amount Money) Money {
	rate := float64(c.DiscountRate()) / 100
	return amount.Sub(amount.Mul(Q(rate))).Round()
}

var _ Validator = Customer{}
