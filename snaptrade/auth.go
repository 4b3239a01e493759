package snaptrade

import (
	"fmt"
	"net/url"
)

// RegisterUser registers a new SnapTrade user and returns the issued user
// secret. The secret is issued exactly once: the caller must persist it to
// the .env file, this client never stores it itself.
func (c *Client) RegisterUser(userID string) (userSecret string, err error) {
	body := map[string]string{"userId": userID}
	var jobj map[string]any
	if err := c.call("POST", "/snapTrade/registerUser", nil, body, false, &jobj); err != nil {
		return "", err
	}
	secret, _ := jobj["userSecret"].(string)
	if secret == "" {
		return "", fmt.Errorf("registerUser response for %q carries no userSecret", userID)
	}
	return secret, nil
}

// LoginURL requests a connection-portal redirect URL where the user can link
// a brokerage account.
func (c *Client) LoginURL() (string, error) {
	var jobj map[string]any
	if err := c.call("POST", "/snapTrade/login", url.Values{}, map[string]string{}, true, &jobj); err != nil {
		return "", err
	}
	redirect, _ := jobj["redirectURI"].(string)
	if redirect == "" {
		return "", fmt.Errorf("login response carries no redirectURI")
	}
	return redirect, nil
}
