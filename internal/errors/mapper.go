// Package errors holds the error taxonomy shared by the core and the services,
// and maps it onto gRPC status codes at the transport boundary.
package errors

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	"github.com/oggyb/barchat/internal/docstore"
	"github.com/oggyb/barchat/internal/utils/pagination"
)

var (
	// ErrValidation means user input violated a constraint. Never retried.
	ErrValidation = errors.New("validation failed")

	// ErrRateLimited means a limiter window is full; the caller must wait it out.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInvariant means the operation would break a state invariant
	// (raffle draw without participants, answering a resolved gift, ...).
	ErrInvariant = errors.New("invariant violation")

	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrPermissionDenied = errors.New("permission denied")
)

// Validation wraps ErrValidation with the given reasons.
func Validation(reasons ...string) error {
	if len(reasons) == 0 {
		return ErrValidation
	}
	msg := reasons[0]
	for _, r := range reasons[1:] {
		msg += "; " + r
	}
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// Invariant wraps ErrInvariant with a user-facing refusal.
func Invariant(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvariant, msg)
}

// RateLimited wraps ErrRateLimited with the limiter name.
func RateLimited(limiter string) error {
	return fmt.Errorf("%w: %s", ErrRateLimited, limiter)
}

// Map converts domain/infra errors into gRPC-friendly status errors.
// Keeps the service layer clean by centralizing error mapping.
func Map(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, pagination.ErrInvalidToken):
		return status.Error(codes.InvalidArgument, err.Error())

	case errors.Is(err, ErrRateLimited):
		return status.Error(codes.ResourceExhausted, err.Error())

	case errors.Is(err, ErrInvariant):
		return status.Error(codes.FailedPrecondition, err.Error())

	case errors.Is(err, ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())

	case errors.Is(err, ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, err.Error())

	case errors.Is(err, ErrPermissionDenied):
		return status.Error(codes.PermissionDenied, err.Error())

	case errors.Is(err, ErrNotFound),
		errors.Is(err, docstore.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return status.Error(codes.NotFound, "record not found")

	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timed out")

	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request was canceled")

	case errors.Is(err, docstore.ErrUnavailable):
		return status.Error(codes.Unavailable, "store unavailable, please retry")

	default:
		// fallback → bubble up error message for debugging
		return status.Error(codes.Internal, err.Error())
	}
}

// InvalidArgument creates a gRPC InvalidArgument error.
// Use this in service layer for bad input validation.
func InvalidArgument(msg string) error {
	return status.Error(codes.InvalidArgument, msg)
}

// AlreadyExists creates a gRPC AlreadyExists error.
func AlreadyExists(msg string) error {
	return status.Error(codes.AlreadyExists, msg)
}
