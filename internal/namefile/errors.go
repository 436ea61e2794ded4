package namefile

import (
	"errors"

	"github.com/eykd/namefile-go/internal/version"
)

// Sentinel errors returned by descriptor construction and Parse. Every
// returned error wraps one of these and carries the offending value, so
// callers can branch with errors.Is and still report a precise message.
var (
	// ErrEmptyStem is returned when a stem sanitizes to the empty string.
	ErrEmptyStem = errors.New("stem is empty")

	// ErrInvalidStem is returned when a sanitized stem still fails the
	// word-character grammar.
	ErrInvalidStem = errors.New("invalid stem")

	// ErrInvalidTag is returned when a sanitized tag fails the
	// word-character grammar.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrInvalidSuffix is returned when a suffix does not end in a letter.
	ErrInvalidSuffix = errors.New("invalid suffix")

	// ErrUnsupportedVersion is returned when a version string is a legacy
	// or non-conforming form. It aliases version.ErrUnsupported so that
	// errors.Is works against either package's sentinel.
	ErrUnsupportedVersion = version.ErrUnsupported

	// ErrInvalidDate is returned when a textual date input matches none of
	// the recognized shapes.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidName is returned by Parse when a string matches neither
	// the file-name nor the directory-name grammar.
	ErrInvalidName = errors.New("invalid name")
)
