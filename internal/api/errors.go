package api

import (
	"errors"
	"net/http"

	"github.com/xtding233/draw-odds-backend/internal/game"
	"github.com/xtding233/draw-odds-backend/internal/odds"
)

var errBadNumber = errors.New("must be a number")

// statusFor maps engine and preset errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case odds.IsDomainError(err),
		errors.Is(err, game.ErrInvalidParams),
		errors.Is(err, game.ErrBadName),
		errors.Is(err, odds.ErrTrials),
		errors.Is(err, errBadNumber):
		return http.StatusBadRequest
	case errors.Is(err, game.ErrUnknownGame), errors.Is(err, game.ErrUnknownFormat):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err with its mapped status. Server-side failures are logged
// and hidden from the client.
func (h *Handlers) fail(r responder, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.log.Errorw("request failed", "path", r.c.FullPath(), "error", err)
		r.err(status, "Internal error.")
		return
	}
	r.err(status, err.Error())
}
