package snaptrade

import (
	"fmt"

	"github.com/PaesslerAG/jsonpath"

	"fenn"
)

// Connection is one brokerage authorization of the user.
type Connection struct {
	ID         string
	BrokerName string
	Disabled   bool
}

// ListConnections returns the user's brokerage connections.
func (c *Client) ListConnections() ([]Connection, error) {
	var jobjs []map[string]any
	if err := c.call("GET", "/authorizations", nil, nil, true, &jobjs); err != nil {
		return nil, err
	}
	connections := make([]Connection, 0, len(jobjs))
	for _, jobj := range jobjs {
		conn := Connection{
			ID:       stringAt(jobj, "$.id"),
			Disabled: jobj["disabled"] == true,
		}
		// the brokerage name moved between API versions
		if conn.BrokerName = stringAt(jobj, "$.brokerage.display_name"); conn.BrokerName == "" {
			conn.BrokerName = stringAt(jobj, "$.brokerage.name")
		}
		connections = append(connections, conn)
	}
	return connections, nil
}

// Accounts returns all accounts across all connections, in the order the API
// reports them.
func (c *Client) Accounts() ([]fenn.Account, error) {
	var jobjs []map[string]any
	if err := c.call("GET", "/accounts", nil, nil, true, &jobjs); err != nil {
		return nil, err
	}
	accounts := make([]fenn.Account, 0, len(jobjs))
	for _, jobj := range jobjs {
		account := fenn.Account{
			ID:   stringAt(jobj, "$.id"),
			Name: stringAt(jobj, "$.name"),
		}
		if account.Name == "" {
			account.Name = "Unknown Account"
		}
		if account.Institution = stringAt(jobj, "$.institution_name"); account.Institution == "" {
			account.Institution = stringAt(jobj, "$.brokerage_authorization.brokerage.name")
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

// Positions returns the raw position records of one account. It implements
// fenn.PositionFetcher. The holdings endpoint wraps the positions array in an
// envelope whose nesting has drifted between API versions, so the array is
// located defensively.
func (c *Client) Positions(accountID string) ([]fenn.RawPosition, error) {
	var jobj any
	path := fmt.Sprintf("/accounts/%s/holdings", accountID)
	if err := c.call("GET", path, nil, nil, true, &jobj); err != nil {
		return nil, err
	}
	return positionsOf(jobj)
}

// positionsOf locates the positions array in a holdings response. The
// payload is either the envelope {account, balances, positions, ...} or,
// from older deployments, a bare array of positions.
func positionsOf(jobj any) ([]fenn.RawPosition, error) {
	jlist, ok := jobj.([]any)
	if !ok {
		jval, err := jsonpath.Get("$.positions", jobj)
		if err != nil {
			return nil, fmt.Errorf("holdings response has no positions array: %w", err)
		}
		if jlist, ok = jval.([]any); !ok {
			return nil, fmt.Errorf("holdings response positions is not an array")
		}
	}
	positions := make([]fenn.RawPosition, 0, len(jlist))
	for _, item := range jlist {
		if pos, ok := item.(map[string]any); ok {
			positions = append(positions, fenn.RawPosition(pos))
		}
	}
	return positions, nil
}

// Balances returns the raw balance records of one account, kept weakly typed
// for the archive.
func (c *Client) Balances(accountID string) ([]map[string]any, error) {
	var jobjs []map[string]any
	path := fmt.Sprintf("/accounts/%s/balances", accountID)
	if err := c.call("GET", path, nil, nil, true, &jobjs); err != nil {
		return nil, err
	}
	return jobjs, nil
}

// stringAt extracts a string at a jsonpath, or "" on any mismatch.
// Because jsonpath is never clear about whether it returns a list of one
// answer or a single answer, a singleton list is unwrapped first.
func stringAt(jobj any, path string) string {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return ""
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, _ := jval.(string)
	return s
}
