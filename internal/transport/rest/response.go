package rest

import (
	"encoding/json"
	"net/http"
)

// Response codes returned in the "code" field of failed submissions.
const (
	CodeRateLimited    = "rate_limited"
	CodeInvalidPhone   = "invalid_phone"
	CodeHoneypot       = "honeypot"
	CodeServerError    = "server_error"
	CodeTelegramFailed = "telegram_failed"
	CodeInvalidPayload = "invalid_payload"
	CodeUnauthorized   = "unauthorized"
	CodeUnavailable    = "unavailable"
)

type errorResponse struct {
	OK   bool   `json:"ok"`
	Code string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, errorResponse{OK: false, Code: code})
}
