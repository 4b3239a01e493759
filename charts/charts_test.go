package charts

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fenn"
)

func testPortfolio(t *testing.T) *fenn.Portfolio {
	t.Helper()
	accounts := []fenn.Account{
		{ID: "a1", Name: "Brokerage", Institution: "Alpha Broker"},
		{ID: "a2", Name: "Retirement", Institution: "Beta Broker"},
	}
	data := map[string][]fenn.RawPosition{
		"a1": {
			{"symbol": "AAPL", "units": 10.0, "price": 150.0},
			{"symbol": "VTI", "units": 5.0, "price": 200.0},
			{"symbol": "BND", "units": 10.0, "price": 70.0},
		},
		"a2": {
			{"symbol": "AAPL", "units": 2.0, "price": 150.0},
		},
	}
	fetch := fenn.PositionFetcherFunc(func(id string) ([]fenn.RawPosition, error) {
		return data[id], nil
	})
	return fenn.Aggregate(accounts, fetch)
}

// render draws a figure into a buffer and returns the HTML.
func render(t *testing.T, fig Figure) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, fig.Render(&buf))
	return buf.String()
}

func TestAllocation(t *testing.T) {
	html := render(t, Allocation(testPortfolio(t), 2))
	assert.Contains(t, html, "AAPL")
	assert.Contains(t, html, "VTI")
	// BND falls into the synthetic bucket
	assert.Contains(t, html, fenn.OtherHoldings)
	assert.NotContains(t, html, "BND")
	assert.Contains(t, html, "Portfolio Allocation")
}

func TestTopHoldings(t *testing.T) {
	html := render(t, TopHoldings(testPortfolio(t), 2))
	assert.Contains(t, html, "AAPL")
	assert.Contains(t, html, "VTI")
	assert.NotContains(t, html, "BND")
	assert.Contains(t, html, "Top 2 Holdings by Value")
}

func TestBrokerTreemap(t *testing.T) {
	html := render(t, BrokerTreemap(testPortfolio(t)))
	assert.Contains(t, html, "Alpha Broker")
	assert.Contains(t, html, "Beta Broker")
	assert.Contains(t, html, "AAPL")
	assert.Contains(t, html, "Portfolio Distribution by Broker")
}

func TestConcentration(t *testing.T) {
	html := render(t, Concentration(testPortfolio(t)))
	assert.Contains(t, html, "Portfolio Concentration Curve")
	assert.Contains(t, html, "Cumulative Allocation")
}

func TestWriteHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.html")
	got, err := WriteHTML(Allocation(testPortfolio(t), 5), path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "<html>")
}

func TestWriteHTMLTempFile(t *testing.T) {
	got, err := WriteHTML(Concentration(testPortfolio(t)), "")
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(got) })
	assert.NotEmpty(t, got)
	_, err = os.Stat(got)
	assert.NoError(t, err)
}
