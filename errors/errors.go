package errors

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Two error families cross the service boundary.
// ErrValidation covers bad caller input, ErrNotFound covers references
// to identifiers that cannot exist. Neither is retried internally.
var (
	ErrValidation = fmt.Errorf("validation error")
	ErrNotFound   = fmt.Errorf("not found")

	ErrEmptyUserID           = fmt.Errorf("%w: empty user id", ErrValidation)
	ErrInvalidUserID         = fmt.Errorf("%w: invalid user id", ErrValidation)
	ErrEmptyBody             = fmt.Errorf("%w: empty message body", ErrValidation)
	ErrEmptyQuery            = fmt.Errorf("%w: empty search query", ErrValidation)
	ErrSelfConversation      = fmt.Errorf("%w: cannot open a conversation with yourself", ErrValidation)
	ErrMalformedConversation = fmt.Errorf("%w: malformed conversation id", ErrNotFound)
	ErrUnknownTopic          = fmt.Errorf("%w: unknown topic", ErrNotFound)

	ErrWorkerPanic   = fmt.Errorf("worker panic")
	ErrEmptyWordList = fmt.Errorf("no words have been found")
)

// MapToGRPCError translates service errors into gRPC status codes at the
// transport edge. Anything outside the two caller-mistake families is
// reported as Internal without leaking details.
func MapToGRPCError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
