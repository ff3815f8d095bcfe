package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pkg/errors"

	"github.com/fleshka4/bonding-curve/internal/apperrors"
)

// statusOf maps a service error to the HTTP status reported to the client.
func statusOf(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrInvalidArgument), errors.Is(err, apperrors.ErrZeroAmount):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrCurveNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrCurveExists),
		errors.Is(err, apperrors.ErrCurveCompleted),
		errors.Is(err, apperrors.ErrCurveNotComplete),
		errors.Is(err, apperrors.ErrAlreadyWithdrawn):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrBelowMinimum),
		errors.Is(err, apperrors.ErrExceedsCirculating),
		errors.Is(err, apperrors.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrUnauthorizedTransfer):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrReserveRead):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(r.Context(), "request failed",
			slog.String("url", r.URL.String()),
			slog.Any("error", err),
		)
		http.Error(w, "internal error", code)
		return
	}
	http.Error(w, err.Error(), code)
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.ErrorContext(r.Context(), "response write error", slog.Any("error", err))
	}
}
