package fenn

import (
	"sort"
	"time"
)

// Account describes one brokerage account as reported by the account source.
type Account struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Institution string `json:"institution"`
}

// RawPosition is a single position exactly as decoded from the external
// source: a weakly-typed record whose fields may be absent, null, nested
// objects, or strings where numbers are expected. All interpretation happens
// in the normalization boundary (normalize.go), never in the aggregation fold.
type RawPosition map[string]any

// Contribution records what one account contributed to a holding.
// The order of contributions within a holding is the processing order of accounts.
type Contribution struct {
	AccountID   string   `json:"account_id"`
	AccountName string   `json:"account_name"`
	Quantity    Quantity `json:"quantity"`
	Price       Money    `json:"price"`
	AvgCost     Money    `json:"avg_cost"`
	Value       Money    `json:"value"`
}

// Holding is the aggregated position in a single ticker symbol across all accounts.
type Holding struct {
	Symbol        string
	Description   string // last-seen non-empty value wins
	TotalQuantity Quantity
	TotalValue    Money
	Accounts      []Contribution
	brokers       map[string]bool // institutions that contributed, deduplicated
}

// Brokers returns the contributing institution names in sorted order.
func (h *Holding) Brokers() []string {
	names := make([]string, 0, len(h.brokers))
	for b := range h.brokers {
		names = append(names, b)
	}
	sort.Strings(names)
	return names
}

// HeldAt reports whether the given institution contributed to this holding.
func (h *Holding) HeldAt(institution string) bool { return h.brokers[institution] }

// addBroker records an institution as contributing to the holding.
func (h *Holding) addBroker(institution string) {
	if institution == "" {
		return
	}
	if h.brokers == nil {
		h.brokers = make(map[string]bool)
	}
	h.brokers[institution] = true
}

// Portfolio is the aggregate of all holdings across all accounts.
// It is built fresh by Aggregate, immutable once returned, and either
// discarded or persisted wholesale into the day-scoped cache.
type Portfolio struct {
	Holdings   map[string]*Holding
	TotalValue Money
	Errors     []string // names of accounts whose fetch failed
	CachedAt   time.Time
}

// Holding returns the holding for the given symbol, or nil.
func (p *Portfolio) Holding(symbol string) *Holding { return p.Holdings[symbol] }

// Symbols returns all holding symbols sorted by total value descending,
// ties broken alphabetically so the order is deterministic.
func (p *Portfolio) Symbols() []string {
	symbols := make([]string, 0, len(p.Holdings))
	for s := range p.Holdings {
		symbols = append(symbols, s)
	}
	sort.Slice(symbols, func(i, j int) bool {
		vi, vj := p.Holdings[symbols[i]].TotalValue, p.Holdings[symbols[j]].TotalValue
		if vi.Equal(vj) {
			return symbols[i] < symbols[j]
		}
		return vi.GreaterThan(vj)
	})
	return symbols
}
