package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	err := NewAppError("CONFIG_ERROR", "DB_URL is required", cause)

	assert.Equal(t, "CONFIG_ERROR: DB_URL is required: boom", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := NewAppError("CONFIG_ERROR", "DB_URL is required", nil)
	assert.Equal(t, "CONFIG_ERROR: DB_URL is required", bare.Error())
}

func TestGRPCErrorHelpers(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
		msg  string
	}{
		{"invalid argument", InvalidArgumentError("email_id must be a UUID"), codes.InvalidArgument, "email_id must be a UUID"},
		{"invalid argument formatted", InvalidArgumentErrorf("bad date: %s", "30/08"), codes.InvalidArgument, "bad date: 30/08"},
		{"not found", NotFoundError("quote not found"), codes.NotFound, "quote not found"},
		{"internal", InternalError("enqueue failed"), codes.Internal, "enqueue failed"},
		{"internal formatted", InternalErrorf("process email: %v", errors.New("db down")), codes.Internal, "process email: db down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, ok := status.FromError(tt.err)
			require.True(t, ok)
			assert.Equal(t, tt.code, st.Code())
			assert.Equal(t, tt.msg, st.Message())
		})
	}
}
