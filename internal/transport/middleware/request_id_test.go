package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/lead-intake/pkg/ctxutil"
)

func TestRequestID_ReuseIncoming(t *testing.T) {
	t.Parallel()

	incomingID := uuid.New().String()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotID := ctxutil.RequestIDFromCtx(r.Context()); gotID != incomingID {
			t.Errorf("expected requestID %s, got %s", incomingID, gotID)
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incomingID)
	rec := httptest.NewRecorder()

	RequestID()(handler).ServeHTTP(rec, req)

	if gotHeader := rec.Header().Get(RequestIDHeader); gotHeader != incomingID {
		t.Errorf("expected %s header %s, got %s", RequestIDHeader, incomingID, gotHeader)
	}
}

func TestRequestID_GenerateNew(t *testing.T) {
	t.Parallel()

	var gotID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = ctxutil.RequestIDFromCtx(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	RequestID()(handler).ServeHTTP(rec, req)

	if _, err := uuid.Parse(gotID); err != nil {
		t.Errorf("expected valid UUID in context, got %q: %v", gotID, err)
	}
	if gotHeader := rec.Header().Get(RequestIDHeader); gotHeader != gotID {
		t.Errorf("expected header %q to match context %q", gotHeader, gotID)
	}
}

func TestRequestID_RejectsUnsafeIncoming(t *testing.T) {
	t.Parallel()

	for _, incoming := range []string{
		strings.Repeat("a", maxRequestIDLen+1),
		"has space",
		"line\nbreak",
	} {
		var gotID string
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotID = ctxutil.RequestIDFromCtx(r.Context())
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header[RequestIDHeader] = []string{incoming}

		RequestID()(handler).ServeHTTP(httptest.NewRecorder(), req)

		if gotID == incoming {
			t.Errorf("expected %q to be replaced", incoming)
		}
		if _, err := uuid.Parse(gotID); err != nil {
			t.Errorf("expected generated UUID, got %q", gotID)
		}
	}
}
