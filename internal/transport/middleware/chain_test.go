package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/lead-intake/pkg/ctxutil"
)

func tag(order *[]string, name string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*order = append(*order, name+">")
			next.ServeHTTP(w, r)
			*order = append(*order, "<"+name)
		})
	}
}

func TestChain_OutermostFirst(t *testing.T) {
	t.Parallel()

	var order []string
	h := Chain(tag(&order, "a"), tag(&order, "b"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/lead", nil))

	assert.Equal(t, []string{"a>", "b>", "handler", "<b", "<a"}, order)
}

func TestChain_Empty(t *testing.T) {
	t.Parallel()

	called := false
	h := Chain()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestChain_IdentityReachesHandler(t *testing.T) {
	t.Parallel()

	var requestID, clientID string
	h := Chain(RequestID(), ClientID())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = ctxutil.RequestIDFromCtx(r.Context())
		clientID = ctxutil.ClientIDFromCtx(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/lead", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.4, 10.0.0.1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.NotEmpty(t, requestID)
	assert.Equal(t, requestID, rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "198.51.100.4", clientID)
}
