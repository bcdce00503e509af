package contact

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/contactform/pkg/binder"
	"github.com/dmitrymomot/contactform/pkg/clientip"
	"github.com/dmitrymomot/contactform/pkg/validator"
)

// Response is the sole output contract returned to callers.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Caller-facing messages. Delivery and internal failures stay generic;
// provider detail is logged, never returned.
const (
	msgSent             = "Message sent successfully!"
	msgPreflight        = "CORS preflight successful"
	msgInvalidJSON      = "Invalid JSON in request body"
	msgValidationFailed = "Validation failed"
	msgMethodNotAllowed = "Method not allowed. Use POST."
	msgTooManyRequests  = "Too many requests. Please try again later."
	msgSendFailed       = "Failed to send email. Please try again."
	msgUnexpected       = "Something went wrong. Please try again."
)

// Handler serves the contact endpoint: CORS preflight, method gating, and
// the rate-limit → parse → validate → render → dispatch pipeline. Every
// response, success or error, carries the CORS header set.
type Handler struct {
	svc           *Service
	cors          CORSConfig
	maxMessageLen int
	log           *slog.Logger
}

// NewHandler creates the contact endpoint handler.
func NewHandler(svc *Service, cfg Config, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		svc:           svc,
		cors:          CORSConfig{AllowedOrigins: cfg.AllowedOrigins},
		maxMessageLen: cfg.MessageMaxLength,
		log:           log,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.log.Error("panic in contact handler", slog.Any("panic", rec))
			h.cors.applyHeaders(w, r)
			writeJSON(w, http.StatusInternalServerError, Response{Message: msgUnexpected})
		}
	}()

	h.cors.applyHeaders(w, r)

	switch r.Method {
	case http.MethodOptions:
		writeJSON(w, http.StatusOK, struct {
			Message string `json:"message"`
		}{Message: msgPreflight})
	case http.MethodPost:
		h.handlePost(w, r)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, Response{Message: msgMethodNotAllowed})
	}
}

func (h *Handler) handlePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.svc.Allow(ctx, clientip.Key(r)) {
		writeJSON(w, http.StatusTooManyRequests, Response{Message: msgTooManyRequests})
		return
	}

	var req SubmitRequest
	if err := binder.JSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Message: msgInvalidJSON})
		return
	}

	if err := req.Validate(h.maxMessageLen); err != nil {
		errs := validator.ExtractValidationErrors(err)
		writeJSON(w, http.StatusBadRequest, Response{
			Message: msgValidationFailed,
			Error:   strings.Join(errs.Messages(), ", "),
		})
		return
	}

	if err := h.svc.Submit(ctx, req.Submission()); err != nil {
		writeJSON(w, http.StatusInternalServerError, Response{Message: msgSendFailed})
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Message: msgSent})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
