package domain

import (
	"errors"
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrMissingRootObject is returned when the document's rootObject does not name a project record.
	ErrMissingRootObject = zerr.New("project root object not found")

	// ErrDuplicateObject is returned when a record is inserted under an identifier that is already taken.
	ErrDuplicateObject = zerr.New("object identifier already in use")

	// ErrUnknownProductDependency is returned when a link is requested for a product dependency
	// that does not exist in the graph.
	ErrUnknownProductDependency = zerr.New("product dependency not found")

	// ErrInvalidCoordinate is returned when a package coordinate is incomplete or malformed.
	ErrInvalidCoordinate = zerr.New("invalid package coordinate")

	// ErrInvalidRequirement is returned when a version requirement cannot be expressed.
	ErrInvalidRequirement = zerr.New("invalid version requirement")

	// ErrProjectNotFound is returned when no single project bundle can be discovered.
	ErrProjectNotFound = zerr.New("no unique Xcode project found")

	// ErrProjectReadFailed is returned when the project descriptor cannot be read.
	ErrProjectReadFailed = zerr.New("failed to read project descriptor")

	// ErrProjectParseFailed is returned when the project descriptor is not a valid property list.
	ErrProjectParseFailed = zerr.New("failed to parse project descriptor")

	// ErrProjectEncodeFailed is returned when the project descriptor cannot be encoded.
	ErrProjectEncodeFailed = zerr.New("failed to encode project descriptor")

	// ErrProjectWriteFailed is returned when the project descriptor cannot be written.
	ErrProjectWriteFailed = zerr.New("failed to write project descriptor")

	// ErrScriptReadFailed is returned when the build script cannot be read.
	ErrScriptReadFailed = zerr.New("failed to read build script")

	// ErrScriptWriteFailed is returned when the build script cannot be written.
	ErrScriptWriteFailed = zerr.New("failed to write build script")

	// ErrManifestReadFailed is returned when the manifest file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestParseFailed is returned when the manifest file is not valid YAML.
	ErrManifestParseFailed = zerr.New("failed to parse manifest")

	// ErrManifestInvalid is returned when the manifest does not satisfy its schema.
	ErrManifestInvalid = zerr.New("manifest is invalid")

	// ErrNothingToApply is returned when every artifact has been skipped by the caller.
	ErrNothingToApply = zerr.New("nothing to apply: both project and podfile are skipped")
)

// Tag returns an error that matches sentinel with errors.Is and can take zerr metadata.
// Attaching metadata to a sentinel directly copies it and loses that identity.
func Tag(sentinel error) error {
	return zerr.Wrap(sentinel, "")
}

// WrapCause reports cause as an instance of sentinel. The result matches both with errors.Is
// and reads "<sentinel>: <cause>".
func WrapCause(sentinel, cause error) error {
	if cause == nil {
		return Tag(sentinel)
	}
	return fmt.Errorf("%w: %w", sentinel, cause)
}

// StructuralError reports a descriptor graph that lacks a required anchor or would be
// corrupted by the requested mutation. It aborts the whole pass.
type StructuralError struct {
	Err error
}

// Structural marks err as a StructuralError.
func Structural(err error) error {
	if err == nil {
		return nil
	}
	return &StructuralError{Err: err}
}

func (e *StructuralError) Error() string { return e.Err.Error() }

func (e *StructuralError) Unwrap() error { return e.Err }

// IOError reports an artifact that could not be read, decoded or written.
// It is fatal for that artifact only.
type IOError struct {
	Path string
	Err  error
}

// NewIOError marks err as an IOError for the artifact at path.
func NewIOError(path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Path: path, Err: err}
}

func (e *IOError) Error() string { return e.Err.Error() }

func (e *IOError) Unwrap() error { return e.Err }

// IsStructural reports whether err carries a StructuralError.
func IsStructural(err error) bool {
	var se *StructuralError
	return errors.As(err, &se)
}

// IsIO reports whether err carries an IOError.
func IsIO(err error) bool {
	var ie *IOError
	return errors.As(err, &ie)
}
