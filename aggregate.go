package fenn

import (
	"log"
	"time"
)

// PositionFetcher is the lookup capability the aggregator folds over.
// It is implemented by snaptrade.Client and by test fakes.
type PositionFetcher interface {
	// Positions returns the raw position records of one account, or an
	// error when that account's data is unavailable.
	Positions(accountID string) ([]RawPosition, error)
}

// PositionFetcherFunc adapts a function to the PositionFetcher interface.
type PositionFetcherFunc func(accountID string) ([]RawPosition, error)

func (f PositionFetcherFunc) Positions(accountID string) ([]RawPosition, error) {
	return f(accountID)
}

// Aggregate folds the positions of every account, in input order, into one
// Portfolio keyed by ticker symbol.
//
// A failed account fetch is recorded in Errors and contributes nothing; the
// fold continues with the remaining accounts. A malformed field within a
// position degrades to an exact zero contribution. Errors below the account
// level never escape.
func Aggregate(accounts []Account, fetch PositionFetcher) *Portfolio {
	p := &Portfolio{
		Holdings:   make(map[string]*Holding),
		TotalValue: M(0, DefaultCurrency),
	}

	for _, account := range accounts {
		positions, err := fetch.Positions(account.ID)
		if err != nil {
			log.Printf("warning: account %q: %v", account.Name, err)
			p.Errors = append(p.Errors, account.Name)
			continue
		}
		for _, pos := range positions {
			p.add(account, pos)
		}
	}

	p.CachedAt = time.Now()
	return p
}

// add normalizes one raw position and accumulates it into the portfolio.
func (p *Portfolio) add(account Account, pos RawPosition) {
	symbol, description := pos.Symbol()
	quantity := pos.Units()
	price := pos.Price()
	avgCost := pos.AvgCost()
	value := price.Mul(quantity)

	h := p.Holdings[symbol]
	if h == nil {
		h = &Holding{
			Symbol:        symbol,
			TotalQuantity: Q(0),
			TotalValue:    M(0, DefaultCurrency),
		}
		p.Holdings[symbol] = h
	}
	if description != "" {
		h.Description = description
	}
	h.TotalQuantity = h.TotalQuantity.Add(quantity)
	h.TotalValue = h.TotalValue.Add(value)
	h.Accounts = append(h.Accounts, Contribution{
		AccountID:   account.ID,
		AccountName: account.Name,
		Quantity:    quantity,
		Price:       price,
		AvgCost:     avgCost,
		Value:       value,
	})
	h.addBroker(account.Institution)

	p.TotalValue = p.TotalValue.Add(value)
}
