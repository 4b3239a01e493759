package fenn

import (
	"encoding/json"
	"testing"
)

func TestMoneyString(t *testing.T) {
	tests := []struct {
		in   Money
		want string
	}{
		{M(1234.56, "USD"), "$1,234.56"},
		{M(0, "USD"), "$0.00"},
		{M(-12.5, "USD"), "-$12.50"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMoneyArithmeticIsExact(t *testing.T) {
	// 0.1 + 0.2 is the classic float trap; decimal accumulation stays exact.
	sum := M(0, "USD")
	for i := 0; i < 3; i++ {
		sum = sum.Add(M(0.1, "USD"))
	}
	if !sum.Equal(M(0.3, "USD")) {
		t.Errorf("0.1 x 3 = %s, want exactly 0.3", sum)
	}
}

func TestMoneyMul(t *testing.T) {
	value := M(150.55, "USD").Mul(Q(0.000001))
	if !value.Equal(M(0.00015055, "USD")) {
		t.Errorf("150.55 x 1e-6 = %s, want 0.00015055", value)
	}
}

func TestMoneyRatio(t *testing.T) {
	if got := M(50, "USD").Ratio(M(200, "USD")); !got.Equal(25) {
		t.Errorf("Ratio = %s, want 25%%", got)
	}
	if got := M(50, "USD").Ratio(M(0, "USD")); !got.Equal(0) {
		t.Errorf("Ratio with zero denominator = %s, want 0", got)
	}
}

func TestMoneyJSON(t *testing.T) {
	b, err := json.Marshal(M(1875.5, "USD"))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(b) != "1875.5" {
		t.Errorf("Marshal() = %s, want a plain number", b)
	}
	var back Money
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !back.Equal(M(1875.5, "USD")) {
		t.Errorf("round trip = %s, want $1,875.50 in the pass-through currency", back)
	}
}

func TestQuantityJSON(t *testing.T) {
	q := Q(33.333333)
	b, err := json.Marshal(q)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var back Quantity
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !back.Equal(q) {
		t.Errorf("round trip = %s, want %s", back, q)
	}
}

func TestPercentString(t *testing.T) {
	if got := Percent(9.216).String(); got != "9.22%" {
		t.Errorf("String() = %q, want %q", got, "9.22%")
	}
}
