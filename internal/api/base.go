package api

import (
	"net/http"
)

// HTTPClient interface for dependency injection; satisfied by
// *http.Client and by test fakes.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
