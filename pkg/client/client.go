// Package client is a typed HTTP client for the relief coordination API. It
// wraps each REST resource and decodes the {success,data,message,error}
// envelope.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// APIError is a non-2xx reply from the API, carrying the envelope's error
// message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken sets the bearer access token sent on subsequent requests. An empty
// token makes the client anonymous again.
func (c *Client) SetToken(token string) {
	c.token = token
}

type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var env apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 || !env.Success {
		message := env.Error
		if message == "" {
			message = env.Message
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}

	return nil
}

// RegisterOrLogin registers the username or logs it in, and remembers the
// returned access token for subsequent calls.
func (c *Client) RegisterOrLogin(ctx context.Context, username, password string) (*AuthResponse, error) {
	body := map[string]string{"username": username}
	if password != "" {
		body["password"] = password
	}

	var result AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, body, &result); err != nil {
		return nil, err
	}

	c.SetToken(result.AccessToken)
	return &result, nil
}

// CurrentUser returns the authenticated user.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListHelpRequests returns open help requests, optionally filtered.
func (c *Client) ListHelpRequests(ctx context.Context, filters HelpRequestFilters) ([]HelpRequest, error) {
	query := url.Values{}
	if filters.Urgency != "" {
		query.Set("urgency", filters.Urgency)
	}
	if filters.District != "" {
		query.Set("district", filters.District)
	}

	var helpRequests []HelpRequest
	if err := c.do(ctx, http.MethodGet, "/api/help-requests", query, nil, &helpRequests); err != nil {
		return nil, err
	}
	return helpRequests, nil
}

// CreateHelpRequest posts a new help request.
func (c *Client) CreateHelpRequest(ctx context.Context, input CreateHelpRequest) (*HelpRequest, error) {
	var helpRequest HelpRequest
	if err := c.do(ctx, http.MethodPost, "/api/help-requests", nil, input, &helpRequest); err != nil {
		return nil, err
	}
	return &helpRequest, nil
}

// GetHelpRequest fetches a single help request.
func (c *Client) GetHelpRequest(ctx context.Context, id uint64) (*HelpRequest, error) {
	var helpRequest HelpRequest
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/help-requests/%d", id), nil, nil, &helpRequest); err != nil {
		return nil, err
	}
	return &helpRequest, nil
}

// GetSummary fetches the aggregate dashboard statistics.
func (c *Client) GetSummary(ctx context.Context) (*HelpRequestSummary, error) {
	var summary HelpRequestSummary
	if err := c.do(ctx, http.MethodGet, "/api/help-requests/summary", nil, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// ListDonations returns all donations pledged against a help request.
func (c *Client) ListDonations(ctx context.Context, helpRequestID uint64) ([]Donation, error) {
	var donations []Donation
	path := fmt.Sprintf("/api/help-requests/%d/donations", helpRequestID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &donations); err != nil {
		return nil, err
	}
	return donations, nil
}

// CreateDonation pledges ration items against a help request.
func (c *Client) CreateDonation(ctx context.Context, helpRequestID uint64, rationItems map[string]int64) (*Donation, error) {
	body := map[string]interface{}{"rationItems": rationItems}
	path := fmt.Sprintf("/api/help-requests/%d/donations", helpRequestID)

	var donation Donation
	if err := c.do(ctx, http.MethodPost, path, nil, body, &donation); err != nil {
		return nil, err
	}
	return &donation, nil
}

// ScheduleDonation marks a donation as scheduled by its donator.
func (c *Client) ScheduleDonation(ctx context.Context, helpRequestID, donationID uint64) (*Donation, error) {
	return c.patchDonation(ctx, helpRequestID, donationID, "schedule")
}

// CompleteDonationByDonator marks a donation as completed by its donator.
func (c *Client) CompleteDonationByDonator(ctx context.Context, helpRequestID, donationID uint64) (*Donation, error) {
	return c.patchDonation(ctx, helpRequestID, donationID, "complete-donator")
}

// CompleteDonationByOwner marks a donation as completed by the help request owner.
func (c *Client) CompleteDonationByOwner(ctx context.Context, helpRequestID, donationID uint64) (*Donation, error) {
	return c.patchDonation(ctx, helpRequestID, donationID, "complete-owner")
}

func (c *Client) patchDonation(ctx context.Context, helpRequestID, donationID uint64, action string) (*Donation, error) {
	path := fmt.Sprintf("/api/help-requests/%d/donations/%d/%s", helpRequestID, donationID, action)

	var donation Donation
	if err := c.do(ctx, http.MethodPatch, path, nil, nil, &donation); err != nil {
		return nil, err
	}
	return &donation, nil
}

// ListItems returns the ration item catalog.
func (c *Client) ListItems(ctx context.Context) ([]Item, error) {
	var items []Item
	if err := c.do(ctx, http.MethodGet, "/api/items", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateItem adds a catalog item.
func (c *Client) CreateItem(ctx context.Context, input CreateItem) (*Item, error) {
	var item Item
	if err := c.do(ctx, http.MethodPost, "/api/items", nil, input, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem updates a catalog item.
func (c *Client) UpdateItem(ctx context.Context, id uint64, input CreateItem) (*Item, error) {
	var item Item
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/items/%d", id), nil, input, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem removes a catalog item.
func (c *Client) DeleteItem(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/items/%d", id), nil, nil, nil)
}

// ListCamps returns all relief camps.
func (c *Client) ListCamps(ctx context.Context) ([]Camp, error) {
	var camps []Camp
	if err := c.do(ctx, http.MethodGet, "/api/camps", nil, nil, &camps); err != nil {
		return nil, err
	}
	return camps, nil
}

// CreateCamp registers a relief camp.
func (c *Client) CreateCamp(ctx context.Context, input CreateCamp) (*Camp, error) {
	var camp Camp
	if err := c.do(ctx, http.MethodPost, "/api/camps", nil, input, &camp); err != nil {
		return nil, err
	}
	return &camp, nil
}
