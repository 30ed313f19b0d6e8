package apperror

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestPredicates(t *testing.T) {
	require.True(t, IsNotFound(NotFound("page %s", "x")))
	require.True(t, IsValidation(Validation("bad index")))
	require.True(t, IsConflict(Conflict("busy")))
	require.False(t, IsNotFound(errors.New("plain")))

	wrapped := fmt.Errorf("usecase: %w", NotFound("product"))
	require.True(t, IsNotFound(wrapped))
}

func TestWrapKeepsCause(t *testing.T) {
	err := Wrap(CodeNotFound, sql.ErrNoRows, "store not found")
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.Contains(t, err.Error(), "store not found")
}

func TestToGRPC(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"not_found", NotFound("x"), codes.NotFound},
		{"validation", Validation("x"), codes.InvalidArgument},
		{"conflict", fmt.Errorf("tx: %w", Conflict("x")), codes.Aborted},
		{"plain", errors.New("boom"), codes.Internal},
		{"status_passthrough", status.Error(codes.Unauthenticated, "no store"), codes.Unauthenticated},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, status.Code(ToGRPC(tc.err)))
		})
	}
	require.NoError(t, ToGRPC(nil))
}
