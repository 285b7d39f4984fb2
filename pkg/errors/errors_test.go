// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and filesystem classification

package errors_test

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/arthur-debert/graft/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "unknown_category",
			code:    errors.ErrUnknownCategory,
			message: "no mapping for category widgets",
			wantStr: "[UNKNOWN_CATEGORY] no mapping for category widgets",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid configuration",
			wantStr: "[INVALID_INPUT] invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrFileWrite, "cannot write %s with mode %o", "routes/api.php", 0644)
	if err.Message != "cannot write routes/api.php with mode 644" {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrInternal, "internal error")

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[INTERNAL] internal error: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrFileRemove, "cannot remove").
		WithDetail("path", "/app/Models/Foo.php")

	if err.Details["path"] != "/app/Models/Foo.php" {
		t.Errorf("WithDetail() path = %v", err.Details["path"])
	}
	if got := errors.GetErrorDetails(err)["path"]; got != "/app/Models/Foo.php" {
		t.Errorf("GetErrorDetails() path = %v", got)
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrFileWrite, "error 1")
	err2 := errors.New(errors.ErrFileWrite, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should match on code")
	}
	if err1.Is(err3) {
		t.Error("Is() should return false for different codes")
	}
}

func TestIsFileSystemError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"write", errors.Wrap(fs.ErrPermission, errors.ErrFileWrite, "denied"), true},
		{"dir_create", errors.Wrap(fs.ErrPermission, errors.ErrDirCreate, "denied"), true},
		{"remove", errors.New(errors.ErrFileRemove, "busy"), true},
		{"unknown_category", errors.New(errors.ErrUnknownCategory, "nope"), false},
		{"config", errors.New(errors.ErrConfigValid, "bad"), false},
		{"plain", fs.ErrPermission, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsFileSystemError(tt.err); got != tt.expected {
				t.Errorf("IsFileSystemError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrPathEscape, "x")); got != errors.ErrPathEscape {
		t.Errorf("GetErrorCode() = %v", got)
	}
	if got := errors.GetErrorCode(stderrors.New("standard error")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v", got)
	}
	if got := errors.GetErrorCode(nil); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v", got)
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileRead, "cannot read file")
	configErr := errors.Wrap(fileErr, errors.ErrConfigLoad, "failed to load config")

	if !errors.IsErrorCode(configErr, errors.ErrConfigLoad) {
		t.Error("Top level should have ErrConfigLoad code")
	}

	var graftErr *errors.GraftError
	if stderrors.As(configErr.Unwrap(), &graftErr) {
		if graftErr.Code != errors.ErrFileRead {
			t.Error("Middle error should have ErrFileRead code")
		}
	} else {
		t.Error("Middle error should be a GraftError")
	}

	if !stderrors.Is(configErr, rootCause) {
		t.Error("Should find root cause with errors.Is")
	}
}
