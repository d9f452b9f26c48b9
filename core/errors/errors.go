// Package errors provides the error taxonomy shared by the corpus loader and
// query layer, plus small wrapping helpers.
//
// Every typed error unwraps to one of the sentinel values below, so callers can
// branch with errors.Is on the kind and errors.As on the detail.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, one per failure kind.
var (
	// ErrMalformedDocument indicates the input is not syntactically valid JSON
	// or a value has the wrong JSON type.
	ErrMalformedDocument = errors.New("malformed document")
	// ErrMissingField indicates a required metadata field or book name is absent.
	ErrMissingField = errors.New("missing field")
	// ErrUnknownBook indicates a books key that matches no canonical abbreviation.
	ErrUnknownBook = errors.New("unknown book")
	// ErrNonContiguousChapters indicates keyed chapter numbers are not exactly 1..N.
	ErrNonContiguousChapters = errors.New("non-contiguous chapters")
	// ErrNonContiguousVerses indicates keyed verse numbers are not exactly 1..N.
	ErrNonContiguousVerses = errors.New("non-contiguous verses")
	// ErrBookNotPresent indicates the translation has no entry for a book.
	ErrBookNotPresent = errors.New("book not present")
	// ErrChapterOutOfRange indicates a chapter number outside 1..chapter count.
	ErrChapterOutOfRange = errors.New("chapter out of range")
	// ErrVerseOutOfRange indicates a verse number outside 1..verse count.
	ErrVerseOutOfRange = errors.New("verse out of range")
	// ErrInvalidReference indicates a human-readable reference could not be parsed.
	ErrInvalidReference = errors.New("invalid reference")
)

// ParseError represents a document that could not be decoded.
type ParseError struct {
	Format  string // Format being parsed (e.g., "JSON")
	Path    string // Location inside the document (e.g., "books.gn.chapters[2]")
	Message string // Error details
	Err     error  // Underlying decoder error, if any
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to parse %s at %s: %s", e.Format, e.Path, e.Message)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Format, e.Message)
}

func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMalformedDocument, e.Err}
	}
	return []error{ErrMalformedDocument}
}

// MissingFieldError names a required field that was absent.
type MissingFieldError struct {
	Field string // Dotted path of the field (e.g., "language", "books.gn.name")
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// UnknownBookError carries the books key that could not be resolved.
type UnknownBookError struct {
	Key string
}

func (e *UnknownBookError) Error() string {
	return fmt.Sprintf("unknown book abbreviation %q", e.Key)
}

func (e *UnknownBookError) Unwrap() error {
	return ErrUnknownBook
}

// Scope identifies which numbering level a ContiguityError refers to.
type Scope string

// Contiguity scopes.
const (
	ScopeChapters Scope = "chapters"
	ScopeVerses   Scope = "verses"
)

// ContiguityError reports keyed-form numbering that is not exactly 1..N.
type ContiguityError struct {
	Scope   Scope
	Book    string // Book abbreviation
	Chapter int    // Chapter number, only set for ScopeVerses
	Keys    []string
	Reason  string
}

func (e *ContiguityError) Error() string {
	var sb strings.Builder
	sb.WriteString(string(e.Scope))
	sb.WriteString(" of ")
	sb.WriteString(e.Book)
	if e.Scope == ScopeVerses {
		fmt.Fprintf(&sb, " chapter %d", e.Chapter)
	}
	sb.WriteString(" are not numbered 1..N")
	if e.Reason != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Reason)
	}
	return sb.String()
}

func (e *ContiguityError) Unwrap() error {
	if e.Scope == ScopeVerses {
		return ErrNonContiguousVerses
	}
	return ErrNonContiguousChapters
}

// NotPresentError reports a query for a book the translation does not contain.
type NotPresentError struct {
	Book        string // Book abbreviation
	BookName    string // Canonical full name
	Translation string // Translation ID
}

func (e *NotPresentError) Error() string {
	return fmt.Sprintf("book %s (%q) not present in translation %q", e.BookName, e.Book, e.Translation)
}

func (e *NotPresentError) Unwrap() error {
	return ErrBookNotPresent
}

// RangeError reports a chapter or verse number outside the valid 1-based range.
type RangeError struct {
	Scope   Scope
	Book    string
	Chapter int
	Verse   int // Only set for ScopeVerses
	Max     int
}

func (e *RangeError) Error() string {
	if e.Scope == ScopeVerses {
		return fmt.Sprintf("verse %d is out of range for %s chapter %d (1..%d)", e.Verse, e.Book, e.Chapter, e.Max)
	}
	return fmt.Sprintf("chapter %d is out of range for %s (1..%d)", e.Chapter, e.Book, e.Max)
}

func (e *RangeError) Unwrap() error {
	if e.Scope == ScopeVerses {
		return ErrVerseOutOfRange
	}
	return ErrChapterOutOfRange
}

// ReferenceError reports a reference string that could not be parsed or resolved.
type ReferenceError struct {
	Input   string
	Message string
	Err     error
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("invalid reference %q: %s", e.Input, e.Message)
}

func (e *ReferenceError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidReference, e.Err}
	}
	return []error{ErrInvalidReference}
}

// Helper functions for creating common errors

// NewParse creates a ParseError for JSON input.
func NewParse(path, message string, err error) *ParseError {
	return &ParseError{
		Format:  "JSON",
		Path:    path,
		Message: message,
		Err:     err,
	}
}

// NewMissingField creates a MissingFieldError
func NewMissingField(field string) *MissingFieldError {
	return &MissingFieldError{Field: field}
}

// NewUnknownBook creates an UnknownBookError
func NewUnknownBook(key string) *UnknownBookError {
	return &UnknownBookError{Key: key}
}

// NewReference creates a ReferenceError
func NewReference(input, message string, err error) *ReferenceError {
	return &ReferenceError{
		Input:   input,
		Message: message,
		Err:     err,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
