package api

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	apierrors "github.com/scrapedeck/scrapedeck-go/internal/errors"
	"github.com/scrapedeck/scrapedeck-go/internal/types"
)

// Do is the shared request executor: it performs exactly one blocking
// HTTP round trip for req and normalizes the response into an Envelope.
//
//  1. The encoded query string is appended to the URL when present.
//  2. Non-success outcomes are classified by status code (400/401/403
//     get dedicated kinds, everything else ErrRequestFailed).
//  3. The response headers are parsed into a HeaderMap; a gzip
//     Content-Encoding is decompressed unconditionally, regardless of
//     what Accept-Encoding was sent — the service compresses at will.
//  4. With decodeJSON the body parses into a structured value; an
//     unparsable body yields an empty mapping, never an error.
//     Without it the raw body text is returned.
//
// No retries and no redirect policy beyond the transport's default.
func Do(ctx context.Context, hc HTTPClient, req *Request, decodeJSON bool) (*types.Envelope, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	target := req.URL
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}
	var body io.Reader
	if len(req.Form) > 0 {
		body = strings.NewReader(req.Form.Encode())
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, err
	}
	if req.ContentType != "" {
		httpReq.Header.Set("Content-Type", req.ContentType)
	}

	resp, err := hc.Do(httpReq)
	if err != nil {
		return nil, apierrors.NewTransportError(req.Method+" "+req.URL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	headers := ParseHeaderLines(headerLines(resp))
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierrors.NewTransportError("read response body", err)
	}

	code, ok := headers.ResponseCode()
	if !ok || code < 200 || code >= 300 {
		return nil, apierrors.Classify(code, string(raw))
	}

	if strings.Contains(headers.Get("Content-Encoding"), "gzip") {
		raw, err = gunzip(raw)
		if err != nil {
			return nil, apierrors.NewTransportError("gunzip response body", err)
		}
	}

	if decodeJSON {
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			decoded = map[string]any{}
		}
		return &types.Envelope{Decoded: decoded}, nil
	}
	return &types.Envelope{Raw: string(raw)}, nil
}

func gunzip(b []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer func() { _ = zr.Close() }()
	return io.ReadAll(zr)
}
