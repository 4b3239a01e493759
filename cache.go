package fenn

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fenn/date"
)

// The cache holds exactly one Portfolio at a time, overwritten wholesale on
// each refresh, and is fresh if and only if it was computed on the current
// local calendar date. Anything else, missing file, unparseable content,
// stale date, is a silent miss: the caller recomputes and stores again.

// to persist a json, we use dedicated local structs with tag annotation.

type jholding struct {
	Description   string         `json:"description"`
	TotalQuantity Quantity       `json:"total_quantity"`
	TotalValue    Money          `json:"total_value"`
	Accounts      []Contribution `json:"accounts"`
	Brokers       []string       `json:"brokers"`
}

type jportfolio struct {
	CachedAt   time.Time           `json:"cached_at"`
	TotalValue Money               `json:"total_value"`
	Holdings   map[string]jholding `json:"holdings"`
	Errors     []string            `json:"errors,omitempty"`
}

// LoadCache returns the cached Portfolio when it is fresh, i.e. computed on
// today's calendar date. The second return value reports a hit. A corrupt or
// stale cache file is never an error for the caller.
func LoadCache(path string) (*Portfolio, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var jp jportfolio
	if err := json.Unmarshal(content, &jp); err != nil {
		return nil, false
	}
	if !date.Of(jp.CachedAt).IsToday() {
		return nil, false
	}

	p := &Portfolio{
		Holdings:   make(map[string]*Holding, len(jp.Holdings)),
		TotalValue: jp.TotalValue,
		Errors:     jp.Errors,
		CachedAt:   jp.CachedAt,
	}
	for symbol, jh := range jp.Holdings {
		h := &Holding{
			Symbol:        symbol,
			Description:   jh.Description,
			TotalQuantity: jh.TotalQuantity,
			TotalValue:    jh.TotalValue,
			Accounts:      jh.Accounts,
		}
		for _, b := range jh.Brokers {
			h.addBroker(b)
		}
		p.Holdings[symbol] = h
	}
	return p, true
}

// StoreCache overwrites the single cache slot with the given Portfolio.
func StoreCache(path string, p *Portfolio) error {
	jp := jportfolio{
		CachedAt:   p.CachedAt,
		TotalValue: p.TotalValue,
		Holdings:   make(map[string]jholding, len(p.Holdings)),
		Errors:     p.Errors,
	}
	for symbol, h := range p.Holdings {
		jp.Holdings[symbol] = jholding{
			Description:   h.Description,
			TotalQuantity: h.TotalQuantity,
			TotalValue:    h.TotalValue,
			Accounts:      h.Accounts,
			Brokers:       h.Brokers(),
		}
	}

	content, err := json.MarshalIndent(&jp, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode portfolio cache: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("cannot create cache directory %q: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("cannot write cache file %q: %w", path, err)
	}
	return nil
}
