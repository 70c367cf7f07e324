package scrapedeck

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// debugTransport logs each HTTP request/response pair, tagged with a
// generated correlation id that is also sent as X-Request-Id so client
// logs can be matched against server-side logs.
//
// Activation: WithDebugLogging(true), or SCRAPEDECK_DEBUG=true /
// DEBUG=true in the environment.
//
// Dumps include full bodies and the api_key parameter; keep this out of
// production log pipelines.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}

	requestID := uuid.NewString()
	cloned := req.Clone(req.Context())
	cloned.Header.Set("X-Request-Id", requestID)

	if reqDump, err := httputil.DumpRequestOut(cloned, true); err == nil {
		log.Debug().Str("request_id", requestID).Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := base.RoundTrip(cloned)
	if err != nil {
		log.Error().Err(err).Str("request_id", requestID).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("request_id", requestID).Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
// SCRAPEDECK_DEBUG targets this SDK alone; DEBUG is the broader
// development-workflow flag. Either set to "true" enables it.
func debugLoggingRequested() bool {
	return os.Getenv("SCRAPEDECK_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
