package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandleErrorAppError(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, ErrLimitExceeded)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["error"] != ErrLimitExceeded.Message {
		t.Errorf("error = %q, want %q", body["error"], ErrLimitExceeded.Message)
	}
}

func TestHandleErrorWrappedAppError(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, fmt.Errorf("checking quota: %w", ErrQuotaUnavailable))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestHandleErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("pq: connection refused at 10.0.0.5"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["error"] != "internal server error" {
		t.Errorf("internal detail leaked: %q", body["error"])
	}
}

func TestErrorStatusCodes(t *testing.T) {
	cases := []struct {
		err  *AppError
		want int
	}{
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrProfileIncomplete, http.StatusBadRequest},
		{ErrInvalidTone, http.StatusBadRequest},
		{ErrInvalidNiche, http.StatusBadRequest},
		{ErrLimitExceeded, http.StatusForbidden},
		{ErrQuotaUnavailable, http.StatusServiceUnavailable},
		{ErrGenerationFailed, http.StatusInternalServerError},
		{ErrGenerationTimeout, http.StatusGatewayTimeout},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		HandleError(rec, c.err)
		if rec.Code != c.want {
			t.Errorf("%q: status = %d, want %d", c.err.Message, rec.Code, c.want)
		}
	}
}
