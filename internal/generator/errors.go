package generator

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoExtension means the output path has no language extension.
	ErrNoExtension = errors.New("no language extension")
	// ErrUnsupportedExtension means no template exists for the extension.
	ErrUnsupportedExtension = errors.New("unsupported language extension")
	// ErrUnknownType means the source type is not one of Types.
	ErrUnknownType = errors.New("unknown source type")
)

// ConflictError is returned when the output already exists and overwriting
// was not requested.
type ConflictError struct {
	Path string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("file already exists: %s", e.Path)
}

// UserFacing marks the error as an expected, reportable condition.
func (e *ConflictError) UserFacing() {}

// ResolutionError is returned when a (type, extension) pair cannot be mapped
// to a template.
type ResolutionError struct {
	// Err is one of ErrNoExtension, ErrUnsupportedExtension or ErrUnknownType.
	Err       error
	// Ext is the extension that was tried, if any.
	Ext       string
	// Supported lists the accepted values.
	Supported []string
}

func (e *ResolutionError) Error() string {
	supported := strings.Join(e.Supported, ", ")
	switch {
	case errors.Is(e.Err, ErrNoExtension):
		return "supported language extension is required, supported extensions: " + supported
	case errors.Is(e.Err, ErrUnsupportedExtension):
		return fmt.Sprintf("invalid language extension used: %s; supported extensions: %s", e.Ext, supported)
	default:
		return fmt.Sprintf("%v (allowed: %s)", e.Err, supported)
	}
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// UserFacing marks the error as an expected, reportable condition.
func (e *ResolutionError) UserFacing() {}
