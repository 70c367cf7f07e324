package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/scrapedeck/scrapedeck-go/internal/types"
)

// defaultListLimit is the service's page size when none is requested.
const defaultListLimit = 20

// GetProject fetches a project definition by token.
func GetProject(ctx context.Context, hc HTTPClient, baseURL, apiKey, projectToken string, req types.GetProjectRequest) (*types.Envelope, error) {
	q := newQuery(apiKey)
	q.Set("offset", strconv.Itoa(req.Offset))
	if req.IncludeOptions {
		q.Set("include_options", "1")
	}
	r := &Request{
		Method: http.MethodGet,
		URL:    fmt.Sprintf("%s/projects/%s", baseURL, url.PathEscape(projectToken)),
		Query:  q,
	}
	return Do(ctx, hc, r, req.DecodeJSON)
}

// RunProject starts a new run of the project.
//
// start_value_override is sent only when start_url is set; the remote
// API couples the two parameters.
func RunProject(ctx context.Context, hc HTTPClient, baseURL, apiKey, projectToken string, req types.RunProjectRequest) (*types.Envelope, error) {
	f := newForm(apiKey)
	if req.StartURL != "" {
		f.Set("start_url", req.StartURL)
		if req.StartValueOverride != "" {
			f.Set("start_value_override", req.StartValueOverride)
		}
	}
	if req.StartTemplate != "" {
		f.Set("start_template", req.StartTemplate)
	}
	if req.SendEmail {
		f.Set("send_email", "1")
	}
	r := &Request{
		Method:      http.MethodPost,
		URL:         fmt.Sprintf("%s/projects/%s/run", baseURL, url.PathEscape(projectToken)),
		Form:        f,
		ContentType: FormContentType,
	}
	return Do(ctx, hc, r, req.DecodeJSON)
}

// ListProjects returns a page of the account's projects.
func ListProjects(ctx context.Context, hc HTTPClient, baseURL, apiKey string, req types.ListProjectsRequest) (*types.Envelope, error) {
	limit := req.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	q := newQuery(apiKey)
	q.Set("offset", strconv.Itoa(req.Offset))
	q.Set("limit", strconv.Itoa(limit))
	if req.IncludeOptions {
		q.Set("include_options", "1")
	}
	r := &Request{
		Method: http.MethodGet,
		URL:    fmt.Sprintf("%s/projects", baseURL),
		Query:  q,
	}
	return Do(ctx, hc, r, req.DecodeJSON)
}

// GetLastReadyData fetches the data of the project's most recent run
// that finished with data ready.
func GetLastReadyData(ctx context.Context, hc HTTPClient, baseURL, apiKey, projectToken string, req types.GetRunDataRequest) (*types.Envelope, error) {
	q := newQuery(apiKey)
	q.Set("format", formatOrDefault(req.Format))
	r := &Request{
		Method: http.MethodGet,
		URL:    fmt.Sprintf("%s/projects/%s/last_ready_run/data", baseURL, url.PathEscape(projectToken)),
		Query:  q,
	}
	return Do(ctx, hc, r, req.DecodeJSON)
}

func formatOrDefault(format string) string {
	if format == "" {
		return "json"
	}
	return format
}
