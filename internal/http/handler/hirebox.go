package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"hirebox/internal/core"
	"hirebox/internal/http/handler/middleware"
	"hirebox/internal/http/payload"

	"go.uber.org/zap"
)

var (
	Register        = "POST /api/register"
	Login           = "POST /api/login"
	Submit          = "POST /api/submit"
	ListSubmissions = "GET /api/submissions"
	ListUsers       = "GET /api/users"
	Health          = "GET /api/health"
)

type HireboxHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	hirebox          HireboxService
}

func NewHireboxHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, hireboxService HireboxService) *HireboxHandler {
	return &HireboxHandler{
		logs:             logger,
		requestValidator: requestValidator,
		hirebox:          hireboxService,
	}
}

func (h *HireboxHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.RegisterRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Registration failed",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Warnw("failed to decode and validate request payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	if err := h.hirebox.Register(r.Context(), req.ToCoreMessage()); err != nil {
		h.fail(w, "Registration failed", err, Register, requestId)
		return
	}

	h.respond(w, okResponse{OK: true}, http.StatusOK, requestId)
}

func (h *HireboxHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.LoginRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Login failed",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Warnw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	session, err := h.hirebox.Login(r.Context(), req.ToCoreMessage())
	if err != nil {
		h.fail(w, "Login failed", err, Login, requestId)
		return
	}

	h.respond(w, session, http.StatusOK, requestId)
}

// HandleSubmit stores the raw request body; no authentication is required.
func (h *HireboxHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.respond(w, Response{
			Message: "Submission failed",
			Error:   "could not read request body",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Warnw("failed to read request body",
			"error", err,
			"handler", Submit,
			"request_id", requestId)
		return
	}

	id, err := h.hirebox.Submit(r.Context(), body)
	if err != nil {
		h.fail(w, "Submission failed", err, Submit, requestId)
		return
	}

	h.logs.Infow("submission received",
		"submission_id", id,
		"handler", Submit,
		"request_id", requestId)

	h.respond(w, okResponse{OK: true, ID: &id}, http.StatusOK, requestId)
}

func (h *HireboxHandler) HandleListSubmissions(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	submissions, err := h.hirebox.ListSubmissions(r.Context())
	if err != nil {
		h.fail(w, "Could not retrieve submissions", err, ListSubmissions, requestId)
		return
	}

	h.respond(w, submissions, http.StatusOK, requestId)
}

func (h *HireboxHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	users, err := h.hirebox.ListUsers(r.Context())
	if err != nil {
		h.fail(w, "Could not retrieve users", err, ListUsers, requestId)
		return
	}

	h.respond(w, users, http.StatusOK, requestId)
}

func (h *HireboxHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	if err := h.hirebox.Health(r.Context()); err != nil {
		h.respond(w, Response{
			Message: "Service unavailable",
			Error:   oopsErr,
		}, http.StatusServiceUnavailable,
			requestId)
		h.logs.Errorw("health check failed",
			"error", err,
			"handler", Health,
			"request_id", requestId)
		return
	}

	h.respond(w, okResponse{OK: true}, http.StatusOK, requestId)
}

// fail renders a service error. Only messages of *core.Error values reach the
// client; anything else is logged and answered with a generic 500.
func (h *HireboxHandler) fail(w http.ResponseWriter, message string, err error, route string, requestId string) {
	code, detail := statusFor(err)

	h.respond(w, Response{
		Message: message,
		Error:   detail,
	}, code, requestId)

	if code >= http.StatusInternalServerError {
		h.logs.Errorw("request failed",
			"error", err,
			"handler", route,
			"request_id", requestId)
		return
	}
	h.logs.Warnw("request rejected",
		"error", err,
		"handler", route,
		"request_id", requestId)
}

func statusFor(err error) (int, string) {
	var coreErr *core.Error
	if !errors.As(err, &coreErr) {
		return http.StatusInternalServerError, oopsErr
	}

	switch {
	case errors.Is(err, core.ErrValidation), errors.Is(err, core.ErrConflict):
		return http.StatusBadRequest, coreErr.Message
	case errors.Is(err, core.ErrUnauthorized):
		return http.StatusUnauthorized, coreErr.Message
	case errors.Is(err, core.ErrForbidden):
		return http.StatusForbidden, coreErr.Message
	default:
		return http.StatusInternalServerError, oopsErr
	}
}

func (h *HireboxHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
