// Package snaptrade is a small client for the SnapTrade brokerage-aggregation
// API. It covers the handful of endpoints fenn needs: user registration,
// connection and account listing, and per-account holdings and balances.
//
// The API returns loosely-typed JSON whose shapes drift between brokers, so
// every decoder in this package extracts fields defensively and hands the
// position records to the domain untouched (fenn.RawPosition).
package snaptrade

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the production endpoint of the SnapTrade API.
const DefaultBaseURL = "https://api.snaptrade.com/api/v1"

// Environment variables holding the credentials. They are usually provided
// through a .env file next to the binary.
const (
	EnvClientID    = "SNAPTRADE_CLIENT_ID"
	EnvConsumerKey = "SNAPTRADE_CONSUMER_KEY"
	EnvUserID      = "SNAPTRADE_USER_ID"
	EnvUserSecret  = "SNAPTRADE_USER_SECRET"
)

// Config carries the credentials for the API. It is an explicit value passed
// to New, there is no ambient client state.
type Config struct {
	ClientID    string
	ConsumerKey string
	UserID      string
	UserSecret  string
}

// ConfigFromEnv reads the credentials from the environment.
func ConfigFromEnv() Config {
	return Config{
		ClientID:    os.Getenv(EnvClientID),
		ConsumerKey: os.Getenv(EnvConsumerKey),
		UserID:      os.Getenv(EnvUserID),
		UserSecret:  os.Getenv(EnvUserSecret),
	}
}

// Validate checks the credentials required for any API call. The returned
// error names the missing variables, it is the only fatal error class of the
// whole tool.
func (c Config) Validate() error {
	var missing []string
	if c.ClientID == "" {
		missing = append(missing, EnvClientID)
	}
	if c.ConsumerKey == "" {
		missing = append(missing, EnvConsumerKey)
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Client calls the SnapTrade API on behalf of one user.
type Client struct {
	cfg     Config
	baseURL string
	client  *http.Client
	now     func() time.Time // request timestamps, fixed in tests
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, used by tests to point the client
// at a local server.
func WithBaseURL(u string) Option { return func(c *Client) { c.baseURL = u } }

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.client = h } }

// New returns a Client for the given credentials.
func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		cfg:     cfg,
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UserID returns the configured user id.
func (c *Client) UserID() string { return c.cfg.UserID }

// sign computes the request signature: base64 of the HMAC-SHA256, keyed with
// the consumer key, over the canonical JSON of {content, path, query}.
func (c *Client) sign(path, query string, content []byte) string {
	sig := struct {
		Content json.RawMessage `json:"content"`
		Path    string          `json:"path"`
		Query   string          `json:"query"`
	}{Path: "/api/v1" + path, Query: query}
	if len(content) > 0 {
		sig.Content = content
	} else {
		sig.Content = json.RawMessage("null")
	}
	payload, _ := json.Marshal(sig)
	mac := hmac.New(sha256.New, []byte(c.cfg.ConsumerKey))
	mac.Write(payload)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// call performs a signed request against path and unmarshals the JSON
// response into data. The query values are extended with the client id and a
// timestamp; user credentials are appended when withUser is set.
func (c *Client) call(method, path string, query url.Values, body any, withUser bool, data any) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("clientId", c.cfg.ClientID)
	query.Set("timestamp", strconv.FormatInt(c.now().Unix(), 10))
	if withUser {
		query.Set("userId", c.cfg.UserID)
		query.Set("userSecret", c.cfg.UserSecret)
	}

	var content []byte
	if body != nil {
		var err error
		content, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("cannot encode request body: %w", err)
		}
	}

	addr := c.baseURL + path + "?" + query.Encode()
	req, err := http.NewRequest(method, addr, bytes.NewReader(content))
	if err != nil {
		return err
	}
	req.Header.Set("Signature", c.sign(path, query.Encode(), content))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("cannot %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	content, err = io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("cannot %s %s: %s: %s", method, path, resp.Status, strings.TrimSpace(string(content)))
	}
	if data == nil {
		return nil
	}
	return json.Unmarshal(content, data)
}
