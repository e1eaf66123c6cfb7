// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code inspection

package errors_test

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/arthur-debert/keepsake/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "decode_error",
			code:    errors.ErrDecode,
			message: "cannot parse counter",
			wantStr: "[DECODE] cannot parse counter",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "empty identifier",
			wantStr: "[INVALID_INPUT] empty identifier",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrFileOpen, "cannot open %s with mode %o", "counter", 0644)
	assert.Equal(t, "cannot open counter with mode 644", err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrFileWrite, "write failed")

		assert.Equal(t, errors.ErrFileWrite, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[FILE_WRITE] write failed: base error", err.Error())
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrFileWrite, "write failed"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrFileWrite, "write %s", "x"))
	})

	t.Run("unwrap_reaches_fs_errors", func(t *testing.T) {
		pathErr := &fs.PathError{Op: "open", Path: "/nope", Err: fs.ErrPermission}
		err := errors.Wrapf(pathErr, errors.ErrFileOpen, "open %s", "/nope")

		assert.True(t, stderrors.Is(err, fs.ErrPermission))
	})
}

func TestWithDetails(t *testing.T) {
	err := errors.New(errors.ErrDirCreate, "cannot create directory").
		WithDetail("path", "/cfg/app").
		WithDetails(map[string]interface{}{"category": "config", "identifier": "settings"})

	assert.Equal(t, "/cfg/app", err.Details["path"])
	assert.Equal(t, "config", err.Details["category"])
	assert.Equal(t, "settings", err.Details["identifier"])
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrDecode, "error 1")
	err2 := errors.New(errors.ErrDecode, "error 2")
	err3 := errors.New(errors.ErrEncode, "error 3")

	assert.True(t, err1.Is(err2), "same code should match")
	assert.False(t, err1.Is(err3), "different codes should not match")
	assert.True(t, stderrors.Is(err1, err2))
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrFileRead, "read"), errors.ErrFileRead, true},
		{"different_code", errors.New(errors.ErrFileRead, "read"), errors.ErrFileOpen, false},
		{"wrapped_by_fmt", fmt.Errorf("context: %w", errors.New(errors.ErrDirCreate, "mkdir")), errors.ErrDirCreate, true},
		{"plain_error", stderrors.New("plain"), errors.ErrUnknown, false},
		{"nil_error", nil, errors.ErrDecode, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCodeAndDetails(t *testing.T) {
	err := fmt.Errorf("outer: %w", errors.New(errors.ErrEncode, "bad value").WithDetail("identifier", "counter"))

	assert.Equal(t, errors.ErrEncode, errors.GetErrorCode(err))
	details := errors.GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, "counter", details["identifier"])

	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}
