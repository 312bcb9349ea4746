package salescope

import (
	"errors"
	"fmt"

	"github.com/telliera/salescope/date"
)

// Status is the lifecycle state of a sales order.
type Status string

const (
	Completed Status = "completed"
	Pending   Status = "pending"
	Cancelled Status = "cancelled"
)

// ParseStatus parses a status string, case-sensitively: the cleaned CSV is
// canonical lowercase.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case Completed, Pending, Cancelled:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// Validator is implemented by all domain values that check their own fields.
type Validator interface {
	Validate() error
}

// Record is a single sales line: one product sold to one customer on one day.
// A Record is immutable once it has passed Validate.
type Record struct {
	OrderID   string
	Product   string
	Customer  string
	Category  string
	Quantity  Quantity
	UnitPrice Money
	Date      date.Date
	Status    Status
}

// Amount is the monetary value of the record: unit price times quantity.
func (r Record) Amount() Money { return r.UnitPrice.Mul(r.Quantity) }

// Validate checks all field constraints and returns every failure joined into
// a single error.
func (r Record) Validate() error {
	var errs []error
	if r.OrderID == "" {
		errs = append(errs, errors.New("order id cannot be empty"))
	}
	if r.Product == "" {
		errs = append(errs, errors.New("product cannot be empty"))
	}
	if r.Customer == "" {
		errs = append(errs, errors.New("customer cannot be empty"))
	}
	if r.Category == "" {
		errs = append(errs, errors.New("category cannot be empty"))
	}
	if r.Quantity.IsNegative() || r.Quantity.IsZero() {
		errs = append(errs, fmt.Errorf("quantity must be positive, got %s", r.Quantity))
	}
	if r.UnitPrice.IsNegative() {
		errs = append(errs, fmt.Errorf("unit price cannot be negative, got %s", r.UnitPrice))
	}
	if r.Date.IsZero() {
		errs = append(errs, errors.New("date cannot be empty"))
	}
	if _, err := ParseStatus(string(r.Status)); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid record %q: %w", r.OrderID, errors.Join(errs...))
	}
	return nil
}

func (r Record) String() string {
	return fmt.Sprintf("Record(%s %s %s x%s %s on %s %s)",
		r.OrderID, r.Product, r.Customer, r.Quantity, r.UnitPrice, r.Date, r.Status)
}

var _ Validator = Record{}
