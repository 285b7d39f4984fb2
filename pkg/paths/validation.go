package paths

import (
	"strings"

	"github.com/arthur-debert/graft/pkg/errors"
)

// ValidatePath performs basic validation on a stub sub path.
// It checks for:
// - Empty paths
// - Null bytes
// - Excessive path length
func ValidatePath(path string) error {
	if path == "" {
		return errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	if strings.Contains(path, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}

	// Common filesystem limit
	if len(path) > 4096 {
		return errors.New(errors.ErrInvalidInput, "path exceeds maximum length")
	}

	return nil
}
