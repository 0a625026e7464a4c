package tally

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// DefaultAPIURL is the public Tally GraphQL endpoint.
const DefaultAPIURL = "https://api.tally.xyz/query"

// Client represents a Tally GraphQL API client
type Client struct {
	apiURL     string
	apiKey     string
	governorID string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used to send requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithGovernorID sets the governor id used to address on-chain proposals.
func WithGovernorID(governorID string) Option {
	return func(c *Client) { c.governorID = governorID }
}

// NewClient creates a new Tally client. The API key is sent with every request.
//
// The HTTP client has no timeout and requests are never retried; cancellation is left to the
// caller's context.
func NewClient(apiURL, apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("tally API key is required")
	}
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}

	c := &Client{
		apiURL:     strings.TrimSuffix(apiURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Proposal fetches a proposal using the query of variant v.
func (c *Client) Proposal(ctx context.Context, v Variant, id string) (*Proposal, error) {
	req, err := NewRequest(v, id, c.governorID)
	if err != nil {
		return nil, err
	}

	body, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	raw := gjson.GetBytes(body, "data.proposal")
	if !raw.Exists() || raw.Type == gjson.Null {
		return nil, &NotFoundError{ID: id}
	}

	var p Proposal
	if err := json.Unmarshal([]byte(raw.Raw), &p); err != nil {
		return nil, fmt.Errorf("failed to parse proposal %s: %w", id, err)
	}

	return &p, nil
}

// Do sends a single GraphQL request and returns the raw response body once the HTTP status and
// the GraphQL `errors` member have been checked.
func (c *Client) Do(ctx context.Context, gqlReq Request) ([]byte, error) {
	payload, err := json.Marshal(gqlReq)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if !gjson.ValidBytes(body) {
		return nil, errors.New("failed to parse tally response: invalid JSON")
	}

	if gqlErrs := gjson.GetBytes(body, "errors"); gqlErrs.Exists() && gqlErrs.Type != gjson.Null {
		return nil, &GraphQLError{Payload: gqlErrs.Raw}
	}

	return body, nil
}
