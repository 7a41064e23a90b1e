package rest

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/lead-intake/internal/adapter/channel/webhook"
	"github.com/heartmarshall/lead-intake/internal/domain"
	"github.com/heartmarshall/lead-intake/internal/service/inbox"
	"github.com/heartmarshall/lead-intake/pkg/ctxutil"
)

type inboxService interface {
	Receive(ctx context.Context, lead domain.Lead) (bool, error)
	List(ctx context.Context, input inbox.ListInput) ([]domain.InboxLead, int, error)
}

type inboxRecorder interface {
	InboxReceived(result string)
}

// InboxHandler serves the operator-side webhook receiver.
// Every route requires the shared secret in the X-Webhook-Secret header.
type InboxHandler struct {
	svc          inboxService
	metrics      inboxRecorder
	secret       []byte
	maxBodyBytes int64
	log          *slog.Logger
}

// NewInboxHandler creates an InboxHandler. An empty secret makes every
// request fail with 503.
func NewInboxHandler(svc inboxService, metrics inboxRecorder, secret string, maxBodyBytes int64, logger *slog.Logger) *InboxHandler {
	return &InboxHandler{
		svc:          svc,
		metrics:      metrics,
		secret:       []byte(secret),
		maxBodyBytes: maxBodyBytes,
		log:          logger.With("handler", "inbox"),
	}
}

type receiveResponse struct {
	OK        bool `json:"ok"`
	Duplicate bool `json:"duplicate"`
}

type listResponse struct {
	OK    bool               `json:"ok"`
	Total int                `json:"total"`
	Leads []domain.InboxLead `json:"leads"`
}

// Receive handles POST /webhook/lead.
func (h *InboxHandler) Receive(w http.ResponseWriter, r *http.Request) {
	if code, ok := h.authorize(w, r); !ok {
		h.metrics.InboxReceived(code)
		return
	}

	var lead domain.Lead
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		h.metrics.InboxReceived(CodeInvalidPayload)
		writeError(w, http.StatusBadRequest, CodeInvalidPayload)
		return
	}

	dup, err := h.svc.Receive(r.Context(), lead)
	if err != nil {
		code, status := h.mapError(r, err)
		h.metrics.InboxReceived(code)
		writeError(w, status, code)
		return
	}

	if dup {
		h.metrics.InboxReceived("duplicate")
	} else {
		h.metrics.InboxReceived("stored")
	}
	writeJSON(w, http.StatusOK, receiveResponse{OK: true, Duplicate: dup})
}

// List handles GET /webhook/leads?limit=&offset=.
func (h *InboxHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.authorize(w, r); !ok {
		return
	}

	input, ok := parseListInput(r)
	if !ok {
		writeError(w, http.StatusBadRequest, CodeInvalidPayload)
		return
	}

	leads, total, err := h.svc.List(r.Context(), input)
	if err != nil {
		code, status := h.mapError(r, err)
		writeError(w, status, code)
		return
	}

	if leads == nil {
		leads = []domain.InboxLead{}
	}
	writeJSON(w, http.StatusOK, listResponse{OK: true, Total: total, Leads: leads})
}

// authorize writes the failure response itself and returns its code.
func (h *InboxHandler) authorize(w http.ResponseWriter, r *http.Request) (string, bool) {
	if len(h.secret) == 0 {
		writeError(w, http.StatusServiceUnavailable, CodeUnavailable)
		return CodeUnavailable, false
	}

	got := []byte(r.Header.Get(webhook.SecretHeader))
	if subtle.ConstantTimeCompare(got, h.secret) != 1 {
		h.log.WarnContext(r.Context(), "inbox secret mismatch",
			slog.String("client", ctxutil.ClientIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusUnauthorized, CodeUnauthorized)
		return CodeUnauthorized, false
	}
	return "", true
}

func (h *InboxHandler) mapError(r *http.Request, err error) (string, int) {
	switch {
	case errors.Is(err, domain.ErrInvalidPhone):
		return CodeInvalidPhone, http.StatusBadRequest
	case errors.Is(err, domain.ErrValidation):
		return CodeInvalidPayload, http.StatusBadRequest
	default:
		h.log.ErrorContext(r.Context(), "inbox request failed",
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			slog.String("error", err.Error()),
		)
		return CodeServerError, http.StatusInternalServerError
	}
}

func parseListInput(r *http.Request) (inbox.ListInput, bool) {
	var input inbox.ListInput
	q := r.URL.Query()

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return input, false
		}
		input.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return input, false
		}
		input.Offset = n
	}
	return input, true
}
