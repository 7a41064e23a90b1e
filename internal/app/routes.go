package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/lead-intake/internal/config"
	"github.com/heartmarshall/lead-intake/internal/transport/middleware"
	"github.com/heartmarshall/lead-intake/internal/transport/rest"
)

type routes struct {
	lead    *rest.LeadHandler
	inbox   *rest.InboxHandler
	health  *rest.HealthHandler
	metrics http.Handler
}

// handler mounts every route behind the middleware chain. Recovery sits
// inside Logger so recovered panics are logged as 500s.
func (r routes) handler(cfg *config.Config, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/lead", r.lead.Submit)

	if r.inbox != nil {
		mux.HandleFunc("POST /webhook/lead", r.inbox.Receive)
		mux.HandleFunc("GET /webhook/leads", r.inbox.List)
	}

	mux.HandleFunc("GET /live", r.health.Live)
	mux.HandleFunc("GET /ready", r.health.Ready)
	mux.HandleFunc("GET /health", r.health.Health)
	if r.metrics != nil {
		mux.Handle("GET /metrics", r.metrics)
	}

	return middleware.Chain(
		middleware.RequestID(),
		middleware.ClientID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(mux)
}
