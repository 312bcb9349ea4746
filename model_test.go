package salescope

import "testing"

func TestDiscountRate(t *testing.T) {
	cases := []struct {
		name     string
		customer Customer
		want     Percent
	}{
		{"regular", Customer{Tier: Regular}, 0},
		{"premium 1 year", Customer{Tier: Premium, YearsMember: 1}, 6},
		{"premium 5 years", Customer{Tier: Premium, YearsMember: 5}, 10},
		{"premium loyalty capped", Customer{Tier: Premium, YearsMember: 30}, 15},
		{"corporate small", Customer{Tier: Corporate, AnnualVolume: M(5_000, "USD")}, 5},
		{"corporate mid", Customer{Tier: Corporate, AnnualVolume: M(10_000, "USD")}, 10},
		{"corporate large", Customer{Tier: Corporate, AnnualVolume: M(50_000, "USD")}, 15},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.customer.DiscountRate(); !got.Equal(c.want) {
				t.Errorf("DiscountRate = %s, want %s", got, c.want)
			}
		})
	}
}

func TestDiscounted(t *testing.T) {
	c := Customer{Tier: Premium, YearsMember: 5} // 10%
	if got, want := c.Discounted(M(100, "USD")), M(90, "USD"); !got.Equal(want) {
		t.Errorf("Discounted = %s, want %s", got.DecimalString(), want.DecimalString())
	}
	r := Customer{Tier: Regular}
	if got, want := r.Discounted(M(100, "USD")), M(100, "USD"); !got.Equal(want) {
		t.Errorf("Discounted = %s, want %s", got.DecimalString(), want.DecimalString())
	}
}

func TestCustomerValidate(t *testing.T) {
	valid := Customer{ID: "CUST-001", Name: "Alice", Email: "alice@example.com", Tier: Premium, YearsMember: 2}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := valid
	bad.Email = "not-an-email"
	if err := bad.Validate(); err == nil {
		t.Error("expected an error on a bad email")
	}

	bad = valid
	bad.YearsMember = 0
	if err := bad.Validate(); err == nil {
		t.Error("expected an error on a 0-year premium membership")
	}

	bad = valid
	bad.Tier = "gold"
	if err := bad.Validate(); err == nil {
		t.Error("expected an error on an unknown tier")
	}
}

func TestPricedTotal(t *testing.T) {
	p := Product{ID: "P-1", Name: "Desk Lamp", Category: "Furniture", Price: M(25, "USD"), Stock: Q(10)}
	if got, want := p.Total(Q(3)), M(75, "USD"); !got.Equal(want) {
		t.Errorf("product Total = %s, want %s", got.DecimalString(), want.DecimalString())
	}

	s := Service{ID: "S-1", Name: "Onsite Setup", Category: "Services", HourlyRate: M(50, "USD"), Hours: Q(2)}
	if got, want := s.Total(Q(3)), M(300, "USD"); !got.Equal(want) {
		t.Errorf("service Total = %s, want %s", got.DecimalString(), want.DecimalString())
	}

	// both satisfy the common capability
	for _, item := range []Priced{p, s} {
		if err := item.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	}
}

func TestCatalogValidate(t *testing.T) {
	p := Product{ID: "P-1", Name: "Desk Lamp", Price: M(-1, "USD")}
	if err := p.Validate(); err == nil {
		t.Error("expected an error on a negative price")
	}
	s := Service{ID: "S-1", Name: "Onsite Setup", HourlyRate: M(50, "USD")}
	if err := s.Validate(); err == nil {
		t.Error("expected an error on zero hours")
	}
}
