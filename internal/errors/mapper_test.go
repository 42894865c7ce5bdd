package errors_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oggyb/barchat/internal/docstore"
	svcErr "github.com/oggyb/barchat/internal/errors"
)

func TestMap(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"validation", svcErr.Validation("name too short"), codes.InvalidArgument},
		{"rate limited", svcErr.RateLimited("messages"), codes.ResourceExhausted},
		{"invariant", svcErr.Invariant("gift already resolved"), codes.FailedPrecondition},
		{"already exists", fmt.Errorf("vote: %w", svcErr.ErrAlreadyExists), codes.AlreadyExists},
		{"store not found", fmt.Errorf("get: %w", docstore.ErrNotFound), codes.NotFound},
		{"store unavailable", fmt.Errorf("%w: dial tcp", docstore.ErrUnavailable), codes.Unavailable},
		{"deadline", context.DeadlineExceeded, codes.DeadlineExceeded},
		{"canceled", context.Canceled, codes.Canceled},
		{"unauthenticated", svcErr.ErrUnauthenticated, codes.Unauthenticated},
		{"other", errors.New("boom"), codes.Internal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, status.Code(svcErr.Map(tc.err)))
		})
	}
}

func TestMap_KeepsStatusErrors(t *testing.T) {
	in := status.Error(codes.PermissionDenied, "nope")
	assert.Equal(t, in, svcErr.Map(in))
	assert.NoError(t, svcErr.Map(nil))
}

func TestValidation_JoinsReasons(t *testing.T) {
	err := svcErr.Validation("name is required", "table must be between 1 and 999")
	assert.ErrorIs(t, err, svcErr.ErrValidation)
	assert.Contains(t, err.Error(), "name is required; table must be between 1 and 999")
}
