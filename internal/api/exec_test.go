package api

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"testing"

	apierrors "github.com/scrapedeck/scrapedeck-go/internal/errors"
)

// roundTripFunc lets tests fake the transport.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// errRT simulates a network failure.
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// newResponse builds an *http.Response with the status line fields the
// header parser reads.
func newResponse(code int, body []byte, header http.Header) *http.Response {
	if header == nil {
		header = make(http.Header)
	}
	return &http.Response{
		Proto:      "HTTP/1.1",
		Status:     fmt.Sprintf("%d %s", code, http.StatusText(code)),
		StatusCode: code,
		Header:     header,
		Body:       io.NopCloser(bytes.NewReader(body)),
	}
}

func fakeClient(resp *http.Response) HTTPClient {
	return &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
		return resp, nil
	})}
}

func getReq(url string) *Request {
	return &Request{Method: http.MethodGet, URL: url}
}

func TestDo_RawEnvelope(t *testing.T) {
	t.Parallel()
	env, err := Do(context.Background(), fakeClient(newResponse(200, []byte(`{"ok":true}`), nil)), getReq("http://x/projects"), false)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if env.Raw != `{"ok":true}` || env.Decoded != nil {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestDo_AppendsQueryString(t *testing.T) {
	t.Parallel()
	var gotURL string
	hc := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		gotURL = r.URL.String()
		return newResponse(200, nil, nil), nil
	})}
	req := getReq("http://x/projects")
	req.Query = newQuery("k1")
	if _, err := Do(context.Background(), hc, req, false); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if gotURL != "http://x/projects?api_key=k1" {
		t.Fatalf("url: got %q", gotURL)
	}
}

func TestDo_GzipBody(t *testing.T) {
	t.Parallel()
	const plain = `{"token":"abc"}`
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(plain)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}

	hdr := make(http.Header)
	hdr.Set("Content-Encoding", "gzip")
	env, err := Do(context.Background(), fakeClient(newResponse(200, buf.Bytes(), hdr)), getReq("http://x/runs/abc"), false)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if env.Raw != plain {
		t.Fatalf("gzip round trip: got %q, want %q", env.Raw, plain)
	}
}

func TestDo_GzipHeaderWithCorruptBody(t *testing.T) {
	t.Parallel()
	hdr := make(http.Header)
	hdr.Set("Content-Encoding", "gzip")
	_, err := Do(context.Background(), fakeClient(newResponse(200, []byte("not gzip"), hdr)), getReq("http://x/runs/abc"), false)
	if !errors.Is(err, apierrors.ErrRequestFailed) {
		t.Fatalf("got %v, want ErrRequestFailed", err)
	}
}

func TestDo_DecodeJSON(t *testing.T) {
	t.Parallel()
	env, err := Do(context.Background(), fakeClient(newResponse(200, []byte(`{"token":"abc","status":"complete"}`), nil)), getReq("http://x/runs/abc"), true)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	want := map[string]any{"token": "abc", "status": "complete"}
	if !reflect.DeepEqual(env.Decoded, want) {
		t.Fatalf("decoded: got %#v, want %#v", env.Decoded, want)
	}
}

func TestDo_DecodeFailureYieldsEmptyMap(t *testing.T) {
	t.Parallel()
	env, err := Do(context.Background(), fakeClient(newResponse(200, []byte("col1,col2\na,b\n"), nil)), getReq("http://x/runs/abc/data"), true)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	m, ok := env.Decoded.(map[string]any)
	if !ok || len(m) != 0 {
		t.Fatalf("decoded: got %#v, want empty map", env.Decoded)
	}
}

func TestDo_ClassifiesStatus(t *testing.T) {
	t.Parallel()
	cases := []struct {
		status int
		kind   error
	}{
		{400, apierrors.ErrBadRequest},
		{401, apierrors.ErrUnauthorized},
		{403, apierrors.ErrForbidden},
		{500, apierrors.ErrRequestFailed},
	}
	for _, tc := range cases {
		_, err := Do(context.Background(), fakeClient(newResponse(tc.status, []byte("nope"), nil)), getReq("http://x/projects"), false)
		if !errors.Is(err, tc.kind) {
			t.Fatalf("status %d: got %v, want kind %v", tc.status, err, tc.kind)
		}
		var se *apierrors.StatusError
		if !errors.As(err, &se) || se.StatusCode != tc.status || se.Body != "nope" {
			t.Fatalf("status %d: metadata not carried: %v", tc.status, err)
		}
	}
}

func TestDo_TransportError(t *testing.T) {
	t.Parallel()
	_, err := Do(context.Background(), &http.Client{Transport: &errRT{}}, getReq("http://x/projects"), false)
	if !errors.Is(err, apierrors.ErrRequestFailed) {
		t.Fatalf("got %v, want ErrRequestFailed", err)
	}
}

func TestDo_FormBodyAndContentType(t *testing.T) {
	t.Parallel()
	var gotBody, gotCT string
	hc := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotCT = r.Header.Get("Content-Type")
		return newResponse(200, nil, nil), nil
	})}
	req := &Request{
		Method:      http.MethodPost,
		URL:         "http://x/runs/r1/cancel",
		Form:        newForm("k1"),
		ContentType: FormContentType,
	}
	if _, err := Do(context.Background(), hc, req, false); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if gotCT != FormContentType {
		t.Fatalf("content type: got %q", gotCT)
	}
	if !strings.Contains(gotBody, "api_key=k1") {
		t.Fatalf("form body missing credential: %q", gotBody)
	}
}

func TestDo_CancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Do(ctx, fakeClient(newResponse(200, nil, nil)), getReq("http://x/projects"), false); err == nil {
		t.Fatal("expected context error")
	}
}
