package grpc

import (
	"errors"

	"github.com/dmitrijs2005/storefront/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps a service error onto a gRPC status. Errors that already
// carry a status pass through; unknown failures hide their detail.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, common.ErrStoreRequired):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrValidation), errors.Is(err, common.ErrPolicyViolation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrConflict):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrDependency):
		return status.Error(codes.Unavailable, "storage unavailable, retry later")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
