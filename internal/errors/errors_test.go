package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassify_KindPerStatus(t *testing.T) {
	cases := []struct {
		status int
		kind   error
	}{
		{400, ErrBadRequest},
		{401, ErrUnauthorized},
		{403, ErrForbidden},
		{404, ErrRequestFailed},
		{429, ErrRequestFailed},
		{500, ErrRequestFailed},
		{0, ErrRequestFailed},
	}
	for _, tc := range cases {
		err := Classify(tc.status, "body")
		if !errors.Is(err, tc.kind) {
			t.Fatalf("status %d: got %v, want kind %v", tc.status, err, tc.kind)
		}
		if err.StatusCode != tc.status || err.Body != "body" {
			t.Fatalf("status %d: metadata not carried: %+v", tc.status, err)
		}
	}
}

func TestStatusError_Message(t *testing.T) {
	err := Classify(401, "")
	if got, want := err.Error(), "unauthorized: HTTP 401"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNewTransportError(t *testing.T) {
	underlying := fmt.Errorf("connection refused")
	err := NewTransportError("GET /runs/r1", underlying)
	if !errors.Is(err, ErrRequestFailed) {
		t.Fatalf("transport error not classified as request failure: %v", err)
	}
	if !errors.Is(err, underlying) {
		t.Fatalf("underlying error lost: %v", err)
	}
}
