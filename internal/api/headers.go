package api

import (
	"net/http"
	"strconv"
	"strings"
)

// HeaderMap maps response header names to values. The status line is
// stored twice: positionally under its line index, and as the synthetic
// "response_code" entry holding the parsed numeric status. The executor
// discriminates success from failure through response_code and detects
// gzip bodies through Content-Encoding.
type HeaderMap map[string]any

// responseCodeKey is the synthetic entry parsed out of the status line.
const responseCodeKey = "response_code"

// ParseHeaderLines builds a HeaderMap from the ordered wire-format
// header lines of a response, status line first. Each "Name: value"
// line maps trimmed name to trimmed value; a line without a colon is
// the status line and is kept under its positional index as well as
// parsed for the numeric code.
func ParseHeaderLines(lines []string) HeaderMap {
	h := make(HeaderMap, len(lines)+1)
	for i, line := range lines {
		if name, value, ok := strings.Cut(line, ":"); ok {
			h[strings.TrimSpace(name)] = strings.TrimSpace(value)
			continue
		}
		h[strconv.Itoa(i)] = line
		if code, ok := parseStatusLine(line); ok {
			h[responseCodeKey] = code
		}
	}
	return h
}

// parseStatusLine extracts the numeric code from a status line of the
// form "HTTP/<version> <code> <reason>".
func parseStatusLine(line string) (int, bool) {
	if !strings.HasPrefix(line, "HTTP/") {
		return 0, false
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, false
	}
	code, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, false
	}
	return code, true
}

// ResponseCode returns the status parsed from the status line, if any.
func (h HeaderMap) ResponseCode() (int, bool) {
	code, ok := h[responseCodeKey].(int)
	return code, ok
}

// Get returns the value of a header by exact name, or "" when absent.
func (h HeaderMap) Get(name string) string {
	v, _ := h[name].(string)
	return v
}

// headerLines reconstitutes the ordered header lines of resp, status
// line first, for ParseHeaderLines.
func headerLines(resp *http.Response) []string {
	lines := make([]string, 0, len(resp.Header)+1)
	lines = append(lines, resp.Proto+" "+resp.Status)
	for name, values := range resp.Header {
		for _, v := range values {
			lines = append(lines, name+": "+v)
		}
	}
	return lines
}
