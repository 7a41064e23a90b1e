package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/lead-intake/internal/domain"
	"github.com/heartmarshall/lead-intake/internal/service/intake"
	"github.com/heartmarshall/lead-intake/pkg/ctxutil"
)

type intakeService interface {
	Admit(ctx context.Context, clientID string) error
	Submit(ctx context.Context, in intake.SubmitInput) (*intake.Result, error)
}

type submissionRecorder interface {
	Submission(result string)
}

// LeadHandler serves the public lead submission endpoint.
type LeadHandler struct {
	svc          intakeService
	metrics      submissionRecorder
	maxBodyBytes int64
	log          *slog.Logger
}

// NewLeadHandler creates a LeadHandler.
func NewLeadHandler(svc intakeService, metrics submissionRecorder, maxBodyBytes int64, logger *slog.Logger) *LeadHandler {
	return &LeadHandler{
		svc:          svc,
		metrics:      metrics,
		maxBodyBytes: maxBodyBytes,
		log:          logger.With("handler", "lead"),
	}
}

type leadRequest struct {
	Name          *string `json:"name"`
	Phone         string  `json:"phone"`
	Message       *string `json:"message"`
	Honeypot      string  `json:"hp"`
	Source        *string `json:"source"`
	CategoryID    *string `json:"categoryId"`
	CategoryTitle *string `json:"categoryTitle"`
	IssueTitle    *string `json:"issueTitle"`
}

type leadResponse struct {
	OK        bool `json:"ok"`
	Delivered bool `json:"delivered"`
}

// Submit handles POST /api/lead.
// The rate check runs before the body is read, so throttled clients cannot
// make the server parse large payloads.
func (h *LeadHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID := ctxutil.ClientIDFromCtx(ctx)

	if err := h.svc.Admit(ctx, clientID); err != nil {
		h.handleError(w, r, err)
		return
	}

	var req leadRequest
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.InfoContext(ctx, "malformed lead body",
			slog.String("client", clientID),
			slog.String("error", err.Error()),
		)
		h.metrics.Submission(CodeServerError)
		writeError(w, http.StatusBadRequest, CodeServerError)
		return
	}

	res, err := h.svc.Submit(ctx, intake.SubmitInput{
		ClientID:      clientID,
		ClientIP:      ctxutil.ClientIPFromCtx(ctx),
		UserAgent:     r.UserAgent(),
		Name:          req.Name,
		Phone:         req.Phone,
		Message:       req.Message,
		Honeypot:      req.Honeypot,
		Source:        req.Source,
		CategoryID:    req.CategoryID,
		CategoryTitle: req.CategoryTitle,
		IssueTitle:    req.IssueTitle,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if res.Delivered {
		h.metrics.Submission("delivered")
	} else {
		h.metrics.Submission("undelivered")
	}
	writeJSON(w, http.StatusOK, leadResponse{OK: true, Delivered: res.Delivered})
}

func (h *LeadHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := http.StatusInternalServerError, CodeServerError

	switch {
	case errors.Is(err, domain.ErrRateLimited):
		status, code = http.StatusTooManyRequests, CodeRateLimited
	case errors.Is(err, domain.ErrHoneypot):
		status, code = http.StatusBadRequest, CodeHoneypot
	case errors.Is(err, domain.ErrInvalidPhone):
		status, code = http.StatusBadRequest, CodeInvalidPhone
	case errors.Is(err, domain.ErrNotDelivered):
		code = CodeTelegramFailed
		h.log.WarnContext(r.Context(), "lead persisted but not delivered",
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			slog.String("error", err.Error()),
		)
	default:
		h.log.ErrorContext(r.Context(), "lead submission failed",
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			slog.String("error", err.Error()),
		)
	}

	h.metrics.Submission(code)
	writeError(w, status, code)
}
