// Package geo resolves a caller's network address to a country code using
// an ipwho.is compatible HTTP service.
package geo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

const maxBodySize = 64 << 10

var (
	// ErrLookupFailed means the service answered but could not locate the address.
	ErrLookupFailed = errors.New("geolocation lookup unsuccessful")
	// ErrMalformedResponse means the service body was not the expected JSON.
	ErrMalformedResponse = errors.New("malformed geolocation response")
)

// Client calls GET {baseURL}/{ip} and reads {success, country_code}.
type Client struct {
	httpClient *http.Client
	baseURL    string
	loopbackIP string
}

// NewClient creates a geolocation client. Lookups for loopback addresses
// are sent for loopbackIP instead so local development gets a real answer.
func NewClient(httpClient *http.Client, baseURL, loopbackIP string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		loopbackIP: loopbackIP,
	}
}

// Lookup returns the ISO country code for ip.
func (c *Client) Lookup(ctx context.Context, ip string) (string, error) {
	target := c.resolveIP(ip)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s", c.baseURL, target), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("geolocation service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", err
	}
	if !gjson.ValidBytes(body) {
		return "", ErrMalformedResponse
	}

	fields := gjson.GetManyBytes(body, "success", "country_code", "message")
	if fields[0].Type != gjson.True {
		if msg := fields[2].String(); msg != "" {
			return "", fmt.Errorf("%w: %s", ErrLookupFailed, msg)
		}
		return "", ErrLookupFailed
	}

	code := strings.TrimSpace(fields[1].String())
	if code == "" {
		return "", fmt.Errorf("%w: missing country_code", ErrMalformedResponse)
	}
	return code, nil
}

func (c *Client) resolveIP(ip string) string {
	parsed := net.ParseIP(ip)
	if parsed != nil && parsed.IsLoopback() && c.loopbackIP != "" {
		return c.loopbackIP
	}
	return ip
}
