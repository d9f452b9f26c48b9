package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseError(t *testing.T) {
	tests := []struct {
		name    string
		err     *ParseError
		wantMsg string
	}{
		{
			name:    "with path",
			err:     NewParse("books.gn", "expected object", nil),
			wantMsg: "failed to parse JSON at books.gn: expected object",
		},
		{
			name:    "without path",
			err:     NewParse("", "unexpected end of input", nil),
			wantMsg: "failed to parse JSON: unexpected end of input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !errors.Is(tt.err, ErrMalformedDocument) {
				t.Errorf("errors.Is(%v, ErrMalformedDocument) = false", tt.err)
			}
		})
	}

	t.Run("with underlying error", func(t *testing.T) {
		cause := fmt.Errorf("decoder exploded")
		err := NewParse("", "syntax error", cause)
		if !errors.Is(err, cause) {
			t.Errorf("errors.Is(err, cause) = false, want true")
		}
		if !errors.Is(err, ErrMalformedDocument) {
			t.Errorf("errors.Is(err, ErrMalformedDocument) = false, want true")
		}
	})
}

func TestMissingFieldError(t *testing.T) {
	err := NewMissingField("language")
	if got, want := err.Error(), `missing required field "language"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrMissingField) {
		t.Errorf("errors.Is(err, ErrMissingField) = false")
	}
}

func TestUnknownBookError(t *testing.T) {
	err := NewUnknownBook("xyz")
	if got, want := err.Error(), `unknown book abbreviation "xyz"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	var ub *UnknownBookError
	if !errors.As(err, &ub) || ub.Key != "xyz" {
		t.Errorf("errors.As did not recover key, got %+v", ub)
	}
}

func TestContiguityError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ContiguityError
		wantMsg  string
		wantBase error
	}{
		{
			name:     "chapters",
			err:      &ContiguityError{Scope: ScopeChapters, Book: "gn", Reason: "missing 2"},
			wantMsg:  "chapters of gn are not numbered 1..N: missing 2",
			wantBase: ErrNonContiguousChapters,
		},
		{
			name:     "verses",
			err:      &ContiguityError{Scope: ScopeVerses, Book: "ex", Chapter: 3},
			wantMsg:  "verses of ex chapter 3 are not numbered 1..N",
			wantBase: ErrNonContiguousVerses,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !errors.Is(tt.err, tt.wantBase) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.wantBase)
			}
		})
	}
}

func TestRangeError(t *testing.T) {
	tests := []struct {
		name     string
		err      *RangeError
		wantMsg  string
		wantBase error
	}{
		{
			name:     "chapter",
			err:      &RangeError{Scope: ScopeChapters, Book: "gn", Chapter: 51, Max: 50},
			wantMsg:  "chapter 51 is out of range for gn (1..50)",
			wantBase: ErrChapterOutOfRange,
		},
		{
			name:     "verse",
			err:      &RangeError{Scope: ScopeVerses, Book: "gn", Chapter: 1, Verse: 0, Max: 31},
			wantMsg:  "verse 0 is out of range for gn chapter 1 (1..31)",
			wantBase: ErrVerseOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !errors.Is(tt.err, tt.wantBase) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.wantBase)
			}
		})
	}
}

func TestNotPresentError(t *testing.T) {
	err := &NotPresentError{Book: "ex", BookName: "Exodus", Translation: "kjv"}
	if got, want := err.Error(), `book Exodus ("ex") not present in translation "kjv"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrBookNotPresent) {
		t.Errorf("errors.Is(err, ErrBookNotPresent) = false")
	}
}

func TestReferenceError(t *testing.T) {
	cause := errors.New("unexpected token")
	err := NewReference("Gen one", "expected chapter number", cause)
	if got, want := err.Error(), `invalid reference "Gen one": expected chapter number`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrInvalidReference) || !errors.Is(err, cause) {
		t.Errorf("ReferenceError should match both sentinel and cause")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	base := NewMissingField("id")
	wrapped := Wrap(base, "load translation")
	if wrapped.Error() != `load translation: missing required field "id"` {
		t.Errorf("unexpected message %q", wrapped.Error())
	}
	if !Is(wrapped, ErrMissingField) {
		t.Error("wrapped error lost its kind")
	}
}

func TestWrapf(t *testing.T) {
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}

	wrapped := Wrapf(NewUnknownBook("zz"), "book %d", 3)
	if wrapped.Error() != `book 3: unknown book abbreviation "zz"` {
		t.Errorf("unexpected message %q", wrapped.Error())
	}

	var ub *UnknownBookError
	if !As(wrapped, &ub) {
		t.Error("As should find UnknownBookError through the wrap")
	}
}
