package rpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/xtding233/draw-odds-backend/internal/game"
	"github.com/xtding233/draw-odds-backend/internal/odds"
)

// toStatus maps engine and preset errors onto gRPC codes. Errors that are
// already statuses pass through.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case odds.IsDomainError(err),
		errors.Is(err, game.ErrInvalidParams),
		errors.Is(err, game.ErrBadName),
		errors.Is(err, errBadField):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, game.ErrUnknownGame), errors.Is(err, game.ErrUnknownFormat):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
