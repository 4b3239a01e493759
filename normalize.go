package fenn

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// This file is the normalization boundary between the weakly-typed records
// returned by the position source and the typed domain. The source returns
// values that may be plain fields, nested objects, or strings where numbers
// are expected; every "is it a mapping or not" branch lives here and nowhere
// else. Each function accepts anything and returns a typed value, defaulting
// on any mismatch rather than failing the aggregation.

// UnknownSymbol is the placeholder symbol used when a position carries no
// recognizable symbol information.
const UnknownSymbol = "UNKNOWN"

// Symbol extracts the ticker symbol and description from a position record.
// The symbol field is nested up to two levels deep ({"symbol": {"symbol":
// {"symbol": "AAPL", "description": ...}}}) or may be a bare string at any
// level. Missing or unrecognizable shapes yield UnknownSymbol.
func (pos RawPosition) Symbol() (symbol, description string) {
	node := pos["symbol"]
	// unwrap nested {"symbol": ...} envelopes
	for i := 0; i < 2; i++ {
		m, ok := node.(map[string]any)
		if !ok {
			break
		}
		if desc, ok := m["description"].(string); ok && desc != "" {
			description = desc
		}
		node = m["symbol"]
	}
	if s, ok := node.(string); ok && s != "" {
		return s, description
	}
	return UnknownSymbol, description
}

// Units returns the position's share count as an exact Quantity, zero for
// anything unreadable. The field is named "units" by the API, with older
// deployments using "quantity".
func (pos RawPosition) Units() Quantity {
	return Quantity{value: decimalOf(pos.first("units", "quantity"))}
}

// Price returns the position's last price, zero for anything unreadable.
func (pos RawPosition) Price() Money {
	return Money{value: decimalOf(pos["price"]), cur: DefaultCurrency}
}

// AvgCost returns the position's average purchase price, zero for anything
// unreadable.
func (pos RawPosition) AvgCost() Money {
	return Money{value: decimalOf(pos["average_purchase_price"]), cur: DefaultCurrency}
}

// decimalOf reads any of the shapes a JSON decoder (or a sloppy API) can
// produce for a number. The string branch also tolerates thousand spaces and
// a comma decimal separator, some feeds return "1 234,56".
func decimalOf(v any) decimal.Decimal {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	case string:
		s := strings.ReplaceAll(n, " ", "")
		if strings.Contains(s, ",") && !strings.Contains(s, ".") {
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero
		}
		return d
	case map[string]any:
		// some balance-like fields nest the number under "amount"
		if amount, ok := n["amount"]; ok {
			return decimalOf(amount)
		}
		return decimal.Zero
	default:
		return decimal.Zero
	}
}

// first returns the first present field among names, or nil.
func (pos RawPosition) first(names ...string) any {
	for _, name := range names {
		if v, ok := pos[name]; ok && v != nil {
			return v
		}
	}
	return nil
}
