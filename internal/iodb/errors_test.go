package iodb

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/sigapair/airlab/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConnectionError_Structure verifies error structure.
func TestConnectionError_Structure(t *testing.T) {
	originalErr := errors.New("connection refused")

	err := ConnectionError("localhost", 5432, "airlab", "postgres",
		originalErr)

	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.DBConnectionError, gnErr.Code)
	assert.NotEmpty(t, gnErr.Msg)
	assert.Len(t, gnErr.Vars, 5)
	assert.Equal(t, "localhost", gnErr.Vars[0])
	assert.ErrorIs(t, gnErr.Err, originalErr)
}

// TestAllErrors_Codes verifies codes and wrapping of the remaining
// constructors.
func TestAllErrors_Codes(t *testing.T) {
	originalErr := errors.New("root cause")

	tests := []struct {
		name string
		err  error
		code gn.ErrorCode
	}{
		{"TableCheckError", TableCheckError(originalErr), errcode.DBTableCheckError},
		{"TableExistsCheckError", TableExistsCheckError("reports", originalErr),
			errcode.DBTableExistsCheckError},
		{"DropTableError", DropTableError("reports", originalErr), errcode.DBDropTableError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gnErr := tt.err.(*gn.Error)
			assert.Equal(t, tt.code, gnErr.Code)
			assert.ErrorIs(t, gnErr.Err, originalErr,
				"Should wrap original error")
		})
	}

	gnErr := NotConnectedError().(*gn.Error)
	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
}
