package pipedrive

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/harukimoto/crm-dashboard-api/internal/config"
)

// API is the typed fetch surface of the CRM integration. The aggregation
// layer depends on this interface rather than the concrete client.
type API interface {
	IsConfigured() bool
	FetchOrganization(ctx context.Context, id int) (*Organization, error)
	FetchPersons(ctx context.Context) ([]Person, error)
	FetchDeals(ctx context.Context) ([]Deal, error)
	FetchActivities(ctx context.Context) ([]Activity, error)
}

// Client owns the Pipedrive credential and transport. One attempt per
// call, structured result; retries are not this layer's concern.
type Client struct {
	apiToken   string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client from the process configuration.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiToken: cfg.PipedriveAPIToken,
		baseURL:  strings.TrimRight(cfg.PipedriveBaseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// IsConfigured reports whether the API token is present. It is evaluated
// on every call, performs no network activity, and has no side effects.
func (c *Client) IsConfigured() bool {
	return c.apiToken != ""
}

type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error,omitempty"`
}

// get performs one request against the given path and decodes the data
// field into out. Every failure mode comes back as an error with a
// human-readable message.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	endpoint := fmt.Sprintf("%s%s?api_token=%s", c.baseURL, path, url.QueryEscape(c.apiToken))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build pipedrive request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("pipedrive request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("pipedrive returned status %d for %s", resp.StatusCode, path)
	}

	var envelope apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode pipedrive response: %w", err)
	}
	if !envelope.Success {
		msg := envelope.Error
		if msg == "" {
			msg = "unknown error"
		}
		return fmt.Errorf("pipedrive reported failure: %s", msg)
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return fmt.Errorf("pipedrive returned no data for %s", path)
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to parse pipedrive payload: %w", err)
	}
	return nil
}

// FetchOrganization fetches one organization by id.
func (c *Client) FetchOrganization(ctx context.Context, id int) (*Organization, error) {
	var org Organization
	if err := c.get(ctx, fmt.Sprintf("/organizations/%d", id), &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// FetchPersons fetches the persons listing. Pipedrive returns persons
// across all organizations; callers narrow the result themselves.
func (c *Client) FetchPersons(ctx context.Context) ([]Person, error) {
	var persons []Person
	if err := c.get(ctx, "/persons", &persons); err != nil {
		return nil, err
	}
	return persons, nil
}

// FetchDeals fetches the deals listing.
func (c *Client) FetchDeals(ctx context.Context) ([]Deal, error) {
	var deals []Deal
	if err := c.get(ctx, "/deals", &deals); err != nil {
		return nil, err
	}
	return deals, nil
}

// FetchActivities fetches the activities listing.
func (c *Client) FetchActivities(ctx context.Context) ([]Activity, error) {
	var activities []Activity
	if err := c.get(ctx, "/activities", &activities); err != nil {
		return nil, err
	}
	return activities, nil
}
