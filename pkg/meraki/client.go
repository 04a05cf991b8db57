// Package meraki is a minimal client for the Meraki dashboard API,
// covering the endpoints netbind needs: organization networks,
// configuration templates, appliance VLANs, and template bind/unbind.
//
// Calls authenticate with the X-Cisco-Meraki-API-Key header and exchange
// JSON bodies. Non-2xx responses surface as *APIError.
package meraki

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/netops-tools/netbind/pkg/util"
)

// DefaultBaseURL is the dashboard API endpoint for the default cloud.
// Regional clouds (e.g. China) use a different host.
const DefaultBaseURL = "https://api.meraki.com/api/v0"

// Client talks to the Meraki dashboard API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	apiKey string
}

// NewClient creates a client authenticating with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		apiKey:     apiKey,
	}
}

// APIError is a non-2xx response from the dashboard API.
type APIError struct {
	Status int
	Path   string
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("dashboard API %s returned %d: %s", e.Path, e.Status, e.Body)
}

// do issues a request and decodes the JSON response into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	url := strings.TrimRight(c.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("X-Cisco-Meraki-API-Key", c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	util.Debugf("%s %s", method, url)
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(resp.Body)
		return &APIError{Status: resp.StatusCode, Path: path, Body: strings.TrimSpace(string(data))}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
