package grpc

import (
	"errors"

	"github.com/dmitrijs2005/studyguide/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errorCodes = []struct {
	err  error
	code codes.Code
}{
	{common.ErrInvalidDomain, codes.InvalidArgument},
	{common.ErrValidation, codes.InvalidArgument},
	{common.ErrNoTopics, codes.InvalidArgument},
	{common.ErrEmptyInput, codes.InvalidArgument},
	{common.ErrInputTooLong, codes.InvalidArgument},
	{common.ErrDuplicateUser, codes.AlreadyExists},
	{common.ErrNotFound, codes.NotFound},
	{common.ErrBadCredential, codes.Unauthenticated},
	{common.ErrUnauthorized, codes.Unauthenticated},
	{common.ErrInvalidToken, codes.Unauthenticated},
	{common.ErrTokenExpired, codes.Unauthenticated},
	{common.ErrGenerationFailed, codes.Unavailable},
	{common.ErrNotConfigured, codes.FailedPrecondition},
}

// statusError converts a service error into a gRPC status. Known sentinels
// keep their text as the status message so the client can map them back;
// anything else becomes an opaque Internal error.
func statusError(err error) error {
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			return status.Error(e.code, e.err.Error())
		}
	}
	return status.Error(codes.Internal, common.ErrInternal.Error())
}
