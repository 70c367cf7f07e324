package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/scrapedeck/scrapedeck-go/internal/types"
)

// GetRun fetches a run by token.
func GetRun(ctx context.Context, hc HTTPClient, baseURL, apiKey, runToken string, req types.GetRunRequest) (*types.Envelope, error) {
	r := &Request{
		Method: http.MethodGet,
		URL:    fmt.Sprintf("%s/runs/%s", baseURL, url.PathEscape(runToken)),
		Query:  newQuery(apiKey),
	}
	return Do(ctx, hc, r, req.DecodeJSON)
}

// GetRunData fetches the scraped data of a run, as JSON or CSV.
func GetRunData(ctx context.Context, hc HTTPClient, baseURL, apiKey, runToken string, req types.GetRunDataRequest) (*types.Envelope, error) {
	q := newQuery(apiKey)
	q.Set("format", formatOrDefault(req.Format))
	r := &Request{
		Method: http.MethodGet,
		URL:    fmt.Sprintf("%s/runs/%s/data", baseURL, url.PathEscape(runToken)),
		Query:  q,
	}
	return Do(ctx, hc, r, req.DecodeJSON)
}

// CancelRun asks the service to stop a run in progress.
func CancelRun(ctx context.Context, hc HTTPClient, baseURL, apiKey, runToken string, req types.GetRunRequest) (*types.Envelope, error) {
	r := &Request{
		Method:      http.MethodPost,
		URL:         fmt.Sprintf("%s/runs/%s/cancel", baseURL, url.PathEscape(runToken)),
		Form:        newForm(apiKey),
		ContentType: FormContentType,
	}
	return Do(ctx, hc, r, req.DecodeJSON)
}

// DeleteRun removes a run and its data from the service.
func DeleteRun(ctx context.Context, hc HTTPClient, baseURL, apiKey, runToken string, req types.GetRunRequest) (*types.Envelope, error) {
	r := &Request{
		Method: http.MethodDelete,
		URL:    fmt.Sprintf("%s/runs/%s", baseURL, url.PathEscape(runToken)),
		Query:  newQuery(apiKey),
	}
	return Do(ctx, hc, r, req.DecodeJSON)
}
