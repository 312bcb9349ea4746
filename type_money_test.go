package salescope

import (
	"encoding/json"
	"testing"
)

func TestParseMoney(t *testing.T) {
	m, err := ParseMoney("1499.99", "USD")
	if err != nil {
		t.Fatal(err)
	}
	if got := m.DecimalString(); got != "1499.99" {
		t.Errorf("DecimalString = %q, want %q", got, "1499.99")
	}
	if _, err := ParseMoney("not a number", "USD"); err == nil {
		t.Error("expected an error")
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := M(10.50, "USD")
	b := M(4.25, "USD")

	if got := a.Add(b); !got.Equal(M(14.75, "USD")) {
		t.Errorf("Add = %s", got.DecimalString())
	}
	if got := a.Sub(b); !got.Equal(M(6.25, "USD")) {
		t.Errorf("Sub = %s", got.DecimalString())
	}
	if got := a.Mul(Q(3)); !got.Equal(M(31.50, "USD")) {
		t.Errorf("Mul = %s", got.DecimalString())
	}
	if got := a.Div(Q(2)); !got.Equal(M(5.25, "USD")) {
		t.Errorf("Div = %s", got.DecimalString())
	}
	if a.Compare(b) <= 0 || b.Compare(a) >= 0 || a.Compare(a) != 0 {
		t.Error("Compare ordering is wrong")
	}
}

func TestMoneyRound(t *testing.T) {
	m := M(10.0/3.0, "USD").Round()
	if got := m.DecimalString(); got != "3.33" {
		t.Errorf("Round = %q, want %q", got, "3.33")
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := M(0, "USD").SignedString(); got != "-" {
		t.Errorf("zero SignedString = %q, want %q", got, "-")
	}
}

func TestMoneyJSON(t *testing.T) {
	content, err := json.Marshal(M(12.345, "USD"))
	if err != nil {
		t.Fatal(err)
	}
	var got struct {
		Currency string `json:"currency"`
		Amount   string `json:"amount"`
	}
	if err := json.Unmarshal(content, &got); err != nil {
		t.Fatalf("cannot parse %s: %v", content, err)
	}
	if got.Currency != "USD" || got.Amount != "12.35" {
		t.Errorf("got %+v, want USD 12.35", got)
	}
}
