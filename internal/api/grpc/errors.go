package grpc

import (
	"context"
	"errors"

	"shareit-booking/internal/domain"
	"shareit-booking/internal/logger"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps domain error kinds onto gRPC codes.
func toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnknownState):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, domain.ErrConflict):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	logger.ErrorContext(ctx, "RPC failed", "error", err)
	return status.Error(codes.Internal, "internal error")
}
