package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"defidesk/internal/amount"
	"defidesk/internal/core"
	"defidesk/internal/http/handler/middleware"
	"defidesk/internal/http/payload"
	"defidesk/internal/wallet"
	tokenIssuer "defidesk/pkg/jwt"

	"go.uber.org/zap"
)

var (
	Challenge        = "POST /desk/challenge"
	Authenticate     = "POST /desk/authenticate"
	SubmitAction     = "POST /desk/action"
	GetAllowance     = "GET /desk/allowance"
	GetHistory       = "GET /desk/history"
	GetLastAction    = "GET /desk/last-action"
	GetNotifications = "GET /desk/notifications"
)

const authHeader = "AUTH_TOKEN"

type DeskHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	desk             DeskService
	notifications    NotificationSource
}

func NewDeskHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, desk DeskService, notifications NotificationSource) *DeskHandler {
	return &DeskHandler{
		logs:             logger,
		requestValidator: requestValidator,
		desk:             desk,
		notifications:    notifications,
	}
}

func (h *DeskHandler) HandleChallenge(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.ChallengeRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not issue challenge",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Challenge,
			"request_id", requestId)
		return
	}

	message, err := h.desk.Challenge(r.Context(), req.Address)
	if err != nil {
		resp := Response{Message: "Could not issue challenge"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrAccountNotValid) {
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("challenge failed",
			"error", err,
			"handler", Challenge,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]string{"message": message}, http.StatusOK, requestId)
}

func (h *DeskHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.AuthRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.desk.Authenticate(r.Context(), req.ToMessage())
	if err != nil {
		resp := Response{Message: "Login failed"}
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, core.ErrSignatureInvalid),
			errors.Is(err, core.ErrChallengeNotFound),
			errors.Is(err, core.ErrAccountNotValid):
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		default:
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]string{"token": token}, http.StatusOK, requestId)
}

func (h *DeskHandler) HandleSubmitAction(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	authToken := r.Header.Get(authHeader)
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized, requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", SubmitAction, "request_id", requestId)
		return
	}

	var req payload.ActionRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not submit action",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", SubmitAction,
			"request_id", requestId)
		return
	}

	h.logs.Infow("action request received",
		"action", req.Action,
		"handler", SubmitAction,
		"request_id", requestId)

	result, err := h.desk.SubmitAction(r.Context(), authToken, req.ToRequest())
	if err != nil {
		resp := Response{Message: "Could not submit action"}
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, tokenIssuer.ErrTokenNotValid),
			errors.Is(err, tokenIssuer.ErrTokenExpired),
			errors.Is(err, core.ErrSessionNotValid):
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		case errors.Is(err, amount.ErrInvalidNumber),
			errors.Is(err, amount.ErrNotPositive),
			errors.Is(err, amount.ErrInsufficientBalance),
			errors.Is(err, core.ErrUnknownAction),
			errors.Is(err, wallet.ErrSwitchRejected):
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		case errors.Is(err, core.ErrActionInFlight):
			httpCode = http.StatusConflict
			resp.Error = err.Error()
		default:
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("action submission failed",
			"error", err,
			"handler", SubmitAction,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Data: result}, http.StatusOK, requestId)
}

func (h *DeskHandler) HandleGetAllowance(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	state := h.desk.CheckAllowance(r.URL.Query().Get("amount"))
	h.respond(w, Response{Data: state}, http.StatusOK, requestId)
}

func (h *DeskHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	authToken := r.Header.Get(authHeader)
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized, requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", GetHistory, "request_id", requestId)
		return
	}

	entries, err := h.desk.History(r.Context(), authToken)
	if err != nil {
		resp := Response{Message: "Could not retrieve history"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, tokenIssuer.ErrTokenNotValid) || errors.Is(err, tokenIssuer.ErrTokenExpired) || errors.Is(err, core.ErrSessionNotValid) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to get history",
			"error", err,
			"handler", GetHistory,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string][]core.HistoryEntry{"history": entries}, http.StatusOK, requestId)
}

func (h *DeskHandler) HandleGetLastAction(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	authToken := r.Header.Get(authHeader)
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized, requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", GetLastAction, "request_id", requestId)
		return
	}

	info, err := h.desk.LastAction(r.Context(), authToken)
	if err != nil {
		resp := Response{Message: "Could not resolve last action"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, tokenIssuer.ErrTokenNotValid) || errors.Is(err, tokenIssuer.ErrTokenExpired) || errors.Is(err, core.ErrSessionNotValid) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to resolve last action",
			"error", err,
			"handler", GetLastAction,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Data: info}, http.StatusOK, requestId)
}

func (h *DeskHandler) HandleGetNotifications(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	h.respond(w, Response{Data: h.notifications.Recent()}, http.StatusOK, requestId)
}

func (h *DeskHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	if id, ok := r.Context().Value(middleware.RequestIDKey).(string); ok {
		return id
	}
	return ""
}
