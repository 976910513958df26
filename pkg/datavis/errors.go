package datavis

import (
	"errors"
	"fmt"

	"github.com/ukaji3/datavis-go/pkg/datavis/models"
)

// ErrUnreadableFile indicates the input file could not be parsed into a dataset.
var ErrUnreadableFile = errors.New("unreadable file")

// ErrNoArtifact indicates export was requested before any chart was rendered.
var ErrNoArtifact = errors.New("no chart available to save")

// Validation failure reasons, checked in this order by Resolve.
var (
	ErrMissingKind      = errors.New("chart kind not selected")
	ErrMissingYColumn   = errors.New("y column not selected")
	ErrMissingXColumn   = errors.New("x column not selected")
	ErrUnknownColumn    = errors.New("unknown column")
	ErrIncompatibleData = errors.New("incompatible data")
)

// ValidationError reports why a chart request was rejected.
type ValidationError struct {
	Reason error
	Kind   models.ChartKind
	Column string // set for ErrUnknownColumn and ErrIncompatibleData
	Detail string
}

func (e *ValidationError) Error() string {
	msg := e.Reason.Error()
	if e.Column != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Column)
	}
	if e.Kind != "" && errors.Is(e.Reason, ErrIncompatibleData) {
		msg = fmt.Sprintf("%s for %s", msg, e.Kind.Label())
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

// NewValidationError creates a new ValidationError.
func NewValidationError(reason error, kind models.ChartKind, column, detail string) *ValidationError {
	return &ValidationError{
		Reason: reason,
		Kind:   kind,
		Column: column,
		Detail: detail,
	}
}

// LoadError represents a failed dataset load.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot load %q: %v", e.Path, e.Err)
}

// Unwrap exposes both ErrUnreadableFile and the underlying cause.
func (e *LoadError) Unwrap() []error {
	return []error{ErrUnreadableFile, e.Err}
}

// NewLoadError creates a new LoadError.
func NewLoadError(path string, err error) *LoadError {
	return &LoadError{
		Path: path,
		Err:  err,
	}
}
