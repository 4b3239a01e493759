package fenn

import "sort"

// This file contains the presentation transforms: pure functions over a
// computed Portfolio with no I/O. They feed the renderer (tables) and the
// charts package (figures).

// AllocationRow is one line of the aggregated holdings view.
type AllocationRow struct {
	Symbol      string
	Description string
	Quantity    Quantity
	Value       Money
	Allocation  Percent
}

// AllocationView returns the holdings sorted by total value descending, with
// each holding's allocation percentage of the portfolio total. Descriptions
// are truncated to width runes (0 means no truncation). When the portfolio
// total is zero every allocation is zero.
func AllocationView(p *Portfolio, width int) []AllocationRow {
	rows := make([]AllocationRow, 0, len(p.Holdings))
	for _, symbol := range p.Symbols() {
		h := p.Holdings[symbol]
		rows = append(rows, AllocationRow{
			Symbol:      h.Symbol,
			Description: truncate(h.Description, width),
			Quantity:    h.TotalQuantity,
			Value:       h.TotalValue,
			Allocation:  h.TotalValue.Ratio(p.TotalValue),
		})
	}
	return rows
}

// AccountRow is one holding line within a single account's view.
type AccountRow struct {
	Symbol      string
	Description string
	Quantity    Quantity
	Price       Money
	Value       Money
}

// AccountView groups one account's holdings with their total.
type AccountView struct {
	Name     string
	Total    Money
	Holdings []AccountRow
}

// ByAccountView re-keys the contributions by account name. Accounts are
// sorted by name, each account's holdings by value descending.
func ByAccountView(p *Portfolio) []AccountView {
	byName := make(map[string]*AccountView)
	for _, symbol := range p.Symbols() {
		h := p.Holdings[symbol]
		for _, c := range h.Accounts {
			v := byName[c.AccountName]
			if v == nil {
				v = &AccountView{Name: c.AccountName, Total: M(0, DefaultCurrency)}
				byName[c.AccountName] = v
			}
			v.Holdings = append(v.Holdings, AccountRow{
				Symbol:      h.Symbol,
				Description: h.Description,
				Quantity:    c.Quantity,
				Price:       c.Price,
				Value:       c.Value,
			})
			v.Total = v.Total.Add(c.Value)
		}
	}

	views := make([]AccountView, 0, len(byName))
	for _, v := range byName {
		sort.SliceStable(v.Holdings, func(i, j int) bool {
			return v.Holdings[i].Value.GreaterThan(v.Holdings[j].Value)
		})
		views = append(views, *v)
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Name < views[j].Name })
	return views
}

// OtherHoldings is the label of the synthetic bucket summing everything
// beyond the top N holdings in allocation charts.
const OtherHoldings = "Other Holdings"

// Slice is one labeled value of an allocation chart.
type Slice struct {
	Label string
	Value Money
}

// TopN returns the n highest-value holdings plus, when anything remains, a
// synthetic OtherHoldings bucket carrying the sum of the rest.
func TopN(p *Portfolio, n int) []Slice {
	symbols := p.Symbols()
	slices := make([]Slice, 0, n+1)
	other := M(0, DefaultCurrency)
	for i, symbol := range symbols {
		h := p.Holdings[symbol]
		if i < n {
			slices = append(slices, Slice{Label: h.Symbol, Value: h.TotalValue})
			continue
		}
		other = other.Add(h.TotalValue)
	}
	if other.IsPositive() {
		slices = append(slices, Slice{Label: OtherHoldings, Value: other})
	}
	return slices
}

// ConcentrationPoint is one step of the concentration curve: the cumulative
// share of portfolio value reached by the top Rank holdings.
type ConcentrationPoint struct {
	Rank       int
	Symbol     string
	Cumulative Percent
}

// ConcentrationCurve computes the cumulative allocation by rank, holdings
// sorted by value descending. The result is a non-decreasing step function
// ending at 100% (or all zeros for an empty-valued portfolio).
func ConcentrationCurve(p *Portfolio) []ConcentrationPoint {
	symbols := p.Symbols()
	points := make([]ConcentrationPoint, 0, len(symbols))
	running := M(0, DefaultCurrency)
	for i, symbol := range symbols {
		running = running.Add(p.Holdings[symbol].TotalValue)
		points = append(points, ConcentrationPoint{
			Rank:       i + 1,
			Symbol:     symbol,
			Cumulative: running.Ratio(p.TotalValue),
		})
	}
	return points
}

// SymbolShare is a holding's share of value attributed to one broker.
type SymbolShare struct {
	Symbol string
	Value  Money
}

// BrokerBucket groups the holdings attributed to one institution.
type BrokerBucket struct {
	Name   string
	Total  Money
	Shares []SymbolShare
}

// BrokerDistribution attributes each holding's value to its contributing
// institutions for the treemap view. A holding held at several institutions
// is split evenly across them. That equal split is a presentation
// simplification for this view only, it is not an ownership fact and no
// aggregation rule depends on it.
func BrokerDistribution(p *Portfolio) []BrokerBucket {
	byBroker := make(map[string]*BrokerBucket)
	for _, symbol := range p.Symbols() {
		h := p.Holdings[symbol]
		brokers := h.Brokers()
		if len(brokers) == 0 {
			continue
		}
		share := h.TotalValue.Mul(Q(1).Div(Q(len(brokers))))
		for _, broker := range brokers {
			b := byBroker[broker]
			if b == nil {
				b = &BrokerBucket{Name: broker, Total: M(0, DefaultCurrency)}
				byBroker[broker] = b
			}
			b.Shares = append(b.Shares, SymbolShare{Symbol: symbol, Value: share})
			b.Total = b.Total.Add(share)
		}
	}

	buckets := make([]BrokerBucket, 0, len(byBroker))
	for _, b := range byBroker {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Name < buckets[j].Name })
	return buckets
}

// truncate shortens s to at most width runes. width <= 0 means no limit.
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
