package grpcserver

import (
	"errors"

	"github.com/and161185/epic-events/internal/errs"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var codeOf = []struct {
	target error
	code   codes.Code
}{
	{errs.ErrNotFound, codes.NotFound},
	{errs.ErrForbidden, codes.PermissionDenied},
	{errs.ErrValidation, codes.InvalidArgument},
	{errs.ErrUnauthenticated, codes.Unauthenticated},
	{errs.ErrRateLimited, codes.ResourceExhausted},
	{errs.ErrAlreadyExists, codes.AlreadyExists},
	{errs.ErrConflict, codes.FailedPrecondition},
}

// toStatus maps domain errors to gRPC statuses. Unknown errors are logged
// and reported as a bare Internal so storage details do not leak.
func toStatus(log *zap.Logger, op string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	for _, m := range codeOf {
		if errors.Is(err, m.target) {
			if m.code == codes.Unauthenticated {
				// never reveal which part of a credential was wrong
				return status.Error(codes.Unauthenticated, "not authenticated")
			}
			return status.Error(m.code, err.Error())
		}
	}
	log.Error("request failed", zap.String("op", op), zap.Error(err))
	return status.Error(codes.Internal, "internal")
}
