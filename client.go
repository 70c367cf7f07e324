// Package scrapedeck is the Go client for the ScrapeDeck web-scraping
// REST API. Every endpoint method maps one-to-one onto a remote
// endpoint, performs a single blocking round trip, and returns the
// dual-mode Envelope (raw body text, or the decoded JSON value when
// DecodeJSON is set on the request).
package scrapedeck

import (
	"context"
	"net/http"
	"time"

	"github.com/scrapedeck/scrapedeck-go/internal/api"
	"github.com/scrapedeck/scrapedeck-go/internal/types"
)

// DefaultBaseURL is the production API root every endpoint path is
// resolved against. Override with WithBaseURL (or SCRAPEDECK_BASE_URL
// via NewFromEnv) for testing.
const DefaultBaseURL = "https://scrapedeck.com/api/v2"

// Client calls the ScrapeDeck REST API. It holds one piece of state —
// the API key — and is not safe for concurrent use with SetAPIKey:
// the key is read at the start of each call, not snapshotted.
type Client struct {
	baseURL string
	http    *http.Client
	apiKey  string
}

// New constructs a Client. apiKey may be empty at construction time and
// supplied later via SetAPIKey; every endpoint method fails with
// ErrAPIKeyMissing until it is set.
func New(apiKey string, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// SetAPIKey replaces the credential used by subsequent calls.
func (c *Client) SetAPIKey(apiKey string) {
	c.apiKey = apiKey
}

// preflight applies the validation every endpoint method shares:
// credential set, then (when tokenName is non-empty) the required
// identifier non-empty. Runs before any network I/O.
func (c *Client) preflight(tokenName, token string) error {
	if err := types.ValidateAPIKey(c.apiKey); err != nil {
		return err
	}
	if tokenName == "" {
		return nil
	}
	return types.ValidateToken(tokenName, token)
}

// observe counts the outcome of one issued request.
func observe(endpoint string, env *types.Envelope, err error) (*Envelope, error) {
	requestsTotal.WithLabelValues(endpoint).Inc()
	if err != nil {
		requestFailuresTotal.WithLabelValues(endpoint).Inc()
	}
	return env, err
}

// --------------------------------------------------------------------
// Project operations - delegated to internal/api
// --------------------------------------------------------------------

// GetProject fetches a project definition by token.
func (c *Client) GetProject(ctx context.Context, projectToken string, req GetProjectRequest) (*Envelope, error) {
	if err := c.preflight("project token", projectToken); err != nil {
		return nil, err
	}
	env, err := api.GetProject(ctx, c.http, c.baseURL, c.apiKey, projectToken, req)
	return observe("get_project", env, err)
}

// RunProject starts a new run of the project and returns its envelope
// (the decoded payload carries the new run's token and status).
func (c *Client) RunProject(ctx context.Context, projectToken string, req RunProjectRequest) (*Envelope, error) {
	if err := c.preflight("project token", projectToken); err != nil {
		return nil, err
	}
	env, err := api.RunProject(ctx, c.http, c.baseURL, c.apiKey, projectToken, req)
	return observe("run_project", env, err)
}

// ListProjects returns a page of the account's projects. The limit is
// passed through unchecked; the service enforces its own 1-20 range.
func (c *Client) ListProjects(ctx context.Context, req ListProjectsRequest) (*Envelope, error) {
	if err := c.preflight("", ""); err != nil {
		return nil, err
	}
	env, err := api.ListProjects(ctx, c.http, c.baseURL, c.apiKey, req)
	return observe("list_projects", env, err)
}

// GetLastReadyData fetches the data of the project's most recent run
// that finished with data ready.
func (c *Client) GetLastReadyData(ctx context.Context, projectToken string, req GetRunDataRequest) (*Envelope, error) {
	if err := c.preflight("project token", projectToken); err != nil {
		return nil, err
	}
	env, err := api.GetLastReadyData(ctx, c.http, c.baseURL, c.apiKey, projectToken, req)
	return observe("get_last_ready_data", env, err)
}

// --------------------------------------------------------------------
// Run operations - delegated to internal/api
// --------------------------------------------------------------------

// GetRun fetches a run by token.
func (c *Client) GetRun(ctx context.Context, runToken string, req GetRunRequest) (*Envelope, error) {
	if err := c.preflight("run token", runToken); err != nil {
		return nil, err
	}
	env, err := api.GetRun(ctx, c.http, c.baseURL, c.apiKey, runToken, req)
	return observe("get_run", env, err)
}

// GetRunData fetches the scraped data of a run, as JSON or CSV.
func (c *Client) GetRunData(ctx context.Context, runToken string, req GetRunDataRequest) (*Envelope, error) {
	if err := c.preflight("run token", runToken); err != nil {
		return nil, err
	}
	env, err := api.GetRunData(ctx, c.http, c.baseURL, c.apiKey, runToken, req)
	return observe("get_run_data", env, err)
}

// CancelRun asks the service to stop a run in progress.
func (c *Client) CancelRun(ctx context.Context, runToken string, req GetRunRequest) (*Envelope, error) {
	if err := c.preflight("run token", runToken); err != nil {
		return nil, err
	}
	env, err := api.CancelRun(ctx, c.http, c.baseURL, c.apiKey, runToken, req)
	return observe("cancel_run", env, err)
}

// DeleteRun removes a run and its data from the service.
func (c *Client) DeleteRun(ctx context.Context, runToken string, req GetRunRequest) (*Envelope, error) {
	if err := c.preflight("run token", runToken); err != nil {
		return nil, err
	}
	env, err := api.DeleteRun(ctx, c.http, c.baseURL, c.apiKey, runToken, req)
	return observe("delete_run", env, err)
}
