// internal/api/handler/response.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apimw "wishfund/internal/api/middleware"
	"wishfund/internal/util"
)

// DefaultTimeout is the per-request deadline applied by the router.
const DefaultTimeout = 30 * time.Second

// retryAfterSeconds is advertised to clients on transient failures.
const retryAfterSeconds = 1

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// responder holds the response helpers shared by all handlers.
type responder struct {
	logger *slog.Logger
}

func (h responder) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError maps an error kind to a status. Only the sentinel message
// reaches the client; storage detail stays in the log.
func (h responder) respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := http.StatusInternalServerError

	switch {
	case util.IsError(err, util.ErrPriceLocked):
		statusCode = http.StatusConflict
	case util.IsError(err, util.ErrValidation):
		statusCode = http.StatusBadRequest
	case util.IsError(err, util.ErrNotFound):
		statusCode = http.StatusNotFound
	case util.IsError(err, util.ErrForbidden):
		statusCode = http.StatusForbidden
	case util.IsError(err, util.ErrUnauthorized):
		statusCode = http.StatusUnauthorized
	case util.IsError(err, util.ErrTransient):
		statusCode = http.StatusServiceUnavailable
		w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
		h.logger.Warn("Transient service error", "error", err, "request_id", middleware.GetReqID(r.Context()))
	default:
		h.logger.Error("Unhandled service error", "error", err, "request_id", middleware.GetReqID(r.Context()))
	}

	h.respondWithJSON(w, statusCode, ErrorResponse{
		Error: util.PublicMessage(err),
		Code:  util.Code(err),
	})
}

// pathID parses a positive int64 URL parameter.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, util.ErrInvalidInput
	}
	return id, nil
}

// callerID returns the id stored by the Identity middleware.
func callerID(r *http.Request) (int64, error) {
	userID, ok := apimw.UserIDFromContext(r.Context())
	if !ok {
		return 0, util.ErrUnauthorized
	}
	return userID, nil
}

// pagination reads limit and offset, falling back to defaults on bad input.
func pagination(r *http.Request) (int, int) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
