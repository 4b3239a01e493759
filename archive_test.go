package fenn

import (
	"path/filepath"
	"testing"
	"time"
)

func TestArchiveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	archive := &Archive{
		SyncedAt: time.Now(),
		UserID:   "jin_portfolio",
		Connections: []ConnectionRecord{
			{ID: "c1", BrokerName: "Alpha Broker"},
		},
		Accounts: []AccountRecord{
			{
				Info: Account{ID: "a1", Name: "Brokerage", Institution: "Alpha Broker"},
				Positions: []RawPosition{
					position("AAPL", "Apple Inc", 10.0, 150.0),
				},
			},
		},
	}

	if err := SaveArchive(path, archive); err != nil {
		t.Fatalf("SaveArchive() error = %v", err)
	}
	back, err := LoadArchive(path)
	if err != nil {
		t.Fatalf("LoadArchive() error = %v", err)
	}
	if back.UserID != "jin_portfolio" || len(back.Connections) != 1 || len(back.Accounts) != 1 {
		t.Errorf("round trip lost data: %+v", back)
	}
	// the archived raw positions still normalize
	positions, err := back.Positions("a1")
	if err != nil {
		t.Fatalf("Positions() error = %v", err)
	}
	symbol, _ := positions[0].Symbol()
	if symbol != "AAPL" {
		t.Errorf("archived position symbol = %q, want AAPL", symbol)
	}
}

// The archive doubles as a PositionFetcher so reports can be computed
// offline from the last sync.
func TestArchiveAsFetcher(t *testing.T) {
	archive := &Archive{
		Accounts: []AccountRecord{
			{
				Info:      Account{ID: "a1", Name: "Brokerage", Institution: "Alpha Broker"},
				Positions: []RawPosition{position("AAPL", "Apple Inc", 2.0, 100.0)},
			},
		},
	}

	p := Aggregate(archive.AccountList(), archive)
	if !p.TotalValue.Equal(M(200, "USD")) {
		t.Errorf("TotalValue = %s, want 200", p.TotalValue)
	}

	if _, err := archive.Positions("missing"); err == nil {
		t.Error("Positions() on an unknown account should fail")
	}
}
