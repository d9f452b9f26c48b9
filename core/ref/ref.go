// Package ref parses human-readable scripture references such as
// "Gen 1:1", "1 John 3:16" or "Psalm 23".
//
// Parsing is purely syntactic: the book is returned as written and resolved
// to a canonical book by the caller (see canon.Resolve).
package ref

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/bible-io/core/errors"
)

// Reference is a parsed "Book Chapter[:Verse]" reference.
type Reference struct {
	// Book is the book name as written, with the numeric prefix separated by
	// a single space (e.g. "1 John", "Song of Solomon").
	Book string `json:"book"`

	// Chapter is the 1-based chapter number.
	Chapter int `json:"chapter"`

	// Verse is the 1-based verse number. It is only meaningful when HasVerse is set.
	Verse int `json:"verse,omitempty"`

	// HasVerse is false for whole-chapter references such as "Psalm 23".
	HasVerse bool `json:"-"`
}

// referenceGrammar is the participle grammar for human references.
//
//nolint:govet // participle grammar tags are not standard struct tags
type referenceGrammar struct {
	BookPrefix string   `@Int?`
	BookWords  []string `( @Word "."? )+`
	Chapter    int      `@Int`
	Verse      *int     `( ( ":" | "." ) @Int )?`
}

// referenceLexer tokenizes references. Words may carry trailing digits so
// abbreviations like "ps151" stay one token.
var referenceLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Word", Pattern: `[^\s0-9:.][^\s:.]*`},
	{Name: "Punct", Pattern: `[:.]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var referenceParser = participle.MustBuild[referenceGrammar](
	participle.Lexer(referenceLexer),
	participle.Elide("Whitespace"),
)

// Parse parses a reference string. Supported forms:
//   - "Gen 1:1", "Gen 1.1"
//   - "1 John 3:16", "1John 3:16"
//   - "Song of Solomon 2:1"
//   - "Psalm 23" (whole chapter)
func Parse(s string) (*Reference, error) {
	input := strings.TrimSpace(s)
	if input == "" {
		return nil, errors.NewReference(s, "empty reference", nil)
	}

	parsed, err := referenceParser.ParseString("", input)
	if err != nil {
		return nil, errors.NewReference(s, "expected \"Book Chapter[:Verse]\"", err)
	}

	book := strings.Join(parsed.BookWords, " ")
	if parsed.BookPrefix != "" {
		book = parsed.BookPrefix + " " + book
	}

	r := &Reference{
		Book:    book,
		Chapter: parsed.Chapter,
	}
	if parsed.Verse != nil {
		r.Verse = *parsed.Verse
		r.HasVerse = true
	}
	return r, nil
}

// IsChapter reports whether the reference names a whole chapter.
func (r *Reference) IsChapter() bool {
	return !r.HasVerse
}

// String formats the reference as "Book Chapter[:Verse]".
func (r *Reference) String() string {
	var sb strings.Builder
	sb.WriteString(r.Book)
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(r.Chapter))
	if r.HasVerse {
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(r.Verse))
	}
	return sb.String()
}
