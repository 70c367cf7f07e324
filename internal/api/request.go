package api

import (
	"net/url"
)

// FormContentType is the body encoding used by every POST endpoint.
const FormContentType = "application/x-www-form-urlencoded"

// Request is the transient descriptor for one API call: built by an
// endpoint function, consumed by Do, never persisted. GET and DELETE
// carry their parameters (credential included) in Query; POST carries
// them in Form.
type Request struct {
	Method      string
	URL         string
	Query       url.Values
	Form        url.Values
	ContentType string
}

// newQuery starts a query-parameter set with the credential injected,
// the way the remote protocol authenticates every call.
func newQuery(apiKey string) url.Values {
	q := url.Values{}
	q.Set("api_key", apiKey)
	return q
}

// newForm starts a form-body parameter set with the credential injected.
func newForm(apiKey string) url.Values {
	f := url.Values{}
	f.Set("api_key", apiKey)
	return f
}
