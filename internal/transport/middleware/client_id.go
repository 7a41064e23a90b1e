package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/heartmarshall/lead-intake/pkg/ctxutil"
)

const (
	forwardedForHeader = "X-Forwarded-For"
	realIPHeader       = "X-Real-IP"
)

// ClientKey derives the caller identity used for throttling: the first
// X-Forwarded-For entry, then X-Real-IP, then "unknown".
// The peer address is ignored; the service always runs behind a proxy.
func ClientKey(r *http.Request) string {
	if xff := r.Header.Get(forwardedForHeader); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if ip := strings.TrimSpace(r.Header.Get(realIPHeader)); ip != "" {
		return ip
	}
	return ctxutil.UnknownClient
}

// ClientAddr is the address recorded with a lead: ClientKey(r), or the peer
// host when no proxy header is present.
func ClientAddr(r *http.Request) string {
	if key := ClientKey(r); key != ctxutil.UnknownClient {
		return key
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = strings.TrimSpace(r.RemoteAddr)
	}
	if host == "" {
		return ctxutil.UnknownClient
	}
	return host
}

// ClientID stores ClientKey(r) and ClientAddr(r) in the request context.
func ClientID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxutil.WithClientID(r.Context(), ClientKey(r))
			ctx = ctxutil.WithClientIP(ctx, ClientAddr(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
