package fenn

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// The archive is the full local copy of everything the API reported during
// the last sync: connections, accounts, balances and raw positions. Unlike
// the day-scoped cache it is not an optimization, it is the product: a
// durable snapshot of the portfolio that outlives broker connections.

// ConnectionRecord is one brokerage authorization as archived.
type ConnectionRecord struct {
	ID         string `json:"id"`
	BrokerName string `json:"broker_name"`
	Disabled   bool   `json:"disabled,omitempty"`
}

// AccountRecord is one account with everything fetched for it.
type AccountRecord struct {
	Info      Account          `json:"info"`
	Balances  []map[string]any `json:"balances,omitempty"`
	Positions []RawPosition    `json:"positions"`
}

// Archive is the wholesale result of one sync run.
type Archive struct {
	SyncedAt    time.Time          `json:"synced_at"`
	UserID      string             `json:"user_id,omitempty"`
	Connections []ConnectionRecord `json:"connections,omitempty"`
	Accounts    []AccountRecord    `json:"accounts"`
}

// AccountList returns the archived account descriptors in archive order.
func (a *Archive) AccountList() []Account {
	accounts := make([]Account, 0, len(a.Accounts))
	for _, rec := range a.Accounts {
		accounts = append(accounts, rec.Info)
	}
	return accounts
}

// Positions returns the archived positions of the given account id, so an
// Archive can serve as a PositionFetcher for offline aggregation.
func (a *Archive) Positions(accountID string) ([]RawPosition, error) {
	for _, rec := range a.Accounts {
		if rec.Info.ID == accountID {
			return rec.Positions, nil
		}
	}
	return nil, fmt.Errorf("account %q is not in the archive", accountID)
}

// LoadArchive reads the archive file.
func LoadArchive(path string) (*Archive, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var a Archive
	if err := json.Unmarshal(content, &a); err != nil {
		return nil, fmt.Errorf("cannot parse archive %q: %w", path, err)
	}
	return &a, nil
}

// SaveArchive overwrites the archive file wholesale.
func SaveArchive(path string, a *Archive) error {
	content, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode archive: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("cannot create data directory %q: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("cannot write archive %q: %w", path, err)
	}
	return nil
}
