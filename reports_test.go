package fenn

import (
	"testing"
	"time"
)

// portfolioOf builds a Portfolio from (symbol, value) pairs, each held at
// one account of the matching broker.
func portfolioOf(t *testing.T, values map[string]float64) *Portfolio {
	t.Helper()
	p := &Portfolio{
		Holdings:   make(map[string]*Holding),
		TotalValue: M(0, "USD"),
		CachedAt:   time.Now(),
	}
	for symbol, value := range values {
		h := &Holding{
			Symbol:        symbol,
			TotalQuantity: Q(1),
			TotalValue:    M(value, "USD"),
			Accounts: []Contribution{{
				AccountID:   "a-" + symbol,
				AccountName: "Account " + symbol,
				Quantity:    Q(1),
				Price:       M(value, "USD"),
				Value:       M(value, "USD"),
			}},
		}
		h.addBroker("Broker " + symbol)
		p.Holdings[symbol] = h
		p.TotalValue = p.TotalValue.Add(h.TotalValue)
	}
	return p
}

func TestAllocationView(t *testing.T) {
	p := portfolioOf(t, map[string]float64{"AAA": 50, "BBB": 30, "CCC": 20})

	rows := AllocationView(p, 40)
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}
	wantOrder := []string{"AAA", "BBB", "CCC"}
	wantAlloc := []Percent{50, 30, 20}
	for i, row := range rows {
		if row.Symbol != wantOrder[i] {
			t.Errorf("rows[%d].Symbol = %s, want %s", i, row.Symbol, wantOrder[i])
		}
		if !row.Allocation.Equal(wantAlloc[i]) {
			t.Errorf("rows[%d].Allocation = %s, want %s", i, row.Allocation, wantAlloc[i])
		}
	}
}

func TestAllocationViewZeroTotal(t *testing.T) {
	p := portfolioOf(t, map[string]float64{"AAA": 0, "BBB": 0})

	for _, row := range AllocationView(p, 0) {
		if !row.Allocation.Equal(0) {
			t.Errorf("%s allocation = %s, want 0 when the total is zero", row.Symbol, row.Allocation)
		}
	}
}

func TestAllocationViewTruncatesDescription(t *testing.T) {
	p := portfolioOf(t, map[string]float64{"AAA": 10})
	p.Holdings["AAA"].Description = "A very long description that does not fit in the table"

	rows := AllocationView(p, 10)
	if got := rows[0].Description; got != "A very lon" {
		t.Errorf("Description = %q, want 10 runes", got)
	}
}

func TestByAccountView(t *testing.T) {
	p := portfolioOf(t, map[string]float64{"AAA": 50, "BBB": 30})
	// BBB also held in AAA's account so that account has two rows
	bbb := p.Holdings["BBB"]
	bbb.Accounts = append(bbb.Accounts, Contribution{
		AccountID:   "a-AAA",
		AccountName: "Account AAA",
		Quantity:    Q(2),
		Price:       M(5, "USD"),
		Value:       M(10, "USD"),
	})
	bbb.TotalValue = bbb.TotalValue.Add(M(10, "USD"))
	p.TotalValue = p.TotalValue.Add(M(10, "USD"))

	views := ByAccountView(p)
	if len(views) != 2 {
		t.Fatalf("len(views) = %d, want 2", len(views))
	}
	// sorted by account name
	if views[0].Name != "Account AAA" || views[1].Name != "Account BBB" {
		t.Errorf("account order = %q, %q", views[0].Name, views[1].Name)
	}
	first := views[0]
	if len(first.Holdings) != 2 {
		t.Fatalf("Account AAA rows = %d, want 2", len(first.Holdings))
	}
	// holdings within an account sorted by value descending
	if first.Holdings[0].Symbol != "AAA" || first.Holdings[1].Symbol != "BBB" {
		t.Errorf("row order = %s, %s", first.Holdings[0].Symbol, first.Holdings[1].Symbol)
	}
	if !first.Total.Equal(M(60, "USD")) {
		t.Errorf("Account AAA total = %s, want 60", first.Total)
	}
}

func TestTopN(t *testing.T) {
	p := portfolioOf(t, map[string]float64{"AAA": 50, "BBB": 30, "CCC": 15, "DDD": 5})

	slices := TopN(p, 2)
	if len(slices) != 3 {
		t.Fatalf("len(slices) = %d, want top 2 + other", len(slices))
	}
	if slices[0].Label != "AAA" || slices[1].Label != "BBB" {
		t.Errorf("top slices = %q, %q", slices[0].Label, slices[1].Label)
	}
	if slices[2].Label != OtherHoldings || !slices[2].Value.Equal(M(20, "USD")) {
		t.Errorf("other = %q %s, want %q 20", slices[2].Label, slices[2].Value, OtherHoldings)
	}

	// no synthetic bucket when everything fits
	if got := TopN(p, 10); len(got) != 4 {
		t.Errorf("TopN(10) len = %d, want 4 without an other bucket", len(got))
	}
}

func TestConcentrationCurve(t *testing.T) {
	p := portfolioOf(t, map[string]float64{"AAA": 50, "BBB": 30, "CCC": 20})

	points := ConcentrationCurve(p)
	if len(points) != 3 {
		t.Fatalf("len(points) = %d, want 3", len(points))
	}
	want := []Percent{50, 80, 100}
	for i, pt := range points {
		if pt.Rank != i+1 {
			t.Errorf("points[%d].Rank = %d, want %d", i, pt.Rank, i+1)
		}
		if !pt.Cumulative.Equal(want[i]) {
			t.Errorf("points[%d].Cumulative = %s, want %s", i, pt.Cumulative, want[i])
		}
	}
}

func TestBrokerDistribution(t *testing.T) {
	p := portfolioOf(t, map[string]float64{"AAA": 100})
	// AAA held at two institutions: its value splits evenly
	p.Holdings["AAA"].addBroker("Broker ZZZ")

	buckets := BrokerDistribution(p)
	if len(buckets) != 2 {
		t.Fatalf("len(buckets) = %d, want 2", len(buckets))
	}
	for _, b := range buckets {
		if !b.Total.Equal(M(50, "USD")) {
			t.Errorf("bucket %q total = %s, want the even split 50", b.Name, b.Total)
		}
		if len(b.Shares) != 1 || b.Shares[0].Symbol != "AAA" {
			t.Errorf("bucket %q shares = %v", b.Name, b.Shares)
		}
	}
}
