// Package canon defines the closed set of canonical Bible books and the
// bijective mapping between each book and its compact JSON abbreviation.
//
// The set covers the 66 Protestant books, the Catholic deuterocanon and the
// Eastern Orthodox additions. Books are ordered by their position in that
// sequence; Order returns the 1-based index.
package canon

import (
	"fmt"
	"strings"

	"github.com/FocuswithJustin/bible-io/core/errors"
)

// Book identifies one canonical book. The zero value is not a valid book.
type Book uint8

// Group is the canonical collection a book belongs to.
type Group string

// Group constants.
const (
	GroupProtestant   Group = "protestant"
	GroupDeuterocanon Group = "deuterocanon"
	GroupOrthodox     Group = "orthodox"
)

// byAbbrev is the inverse of table, keyed by lowercase abbreviation.
var byAbbrev = make(map[string]Book, Count)

func init() {
	for b := Genesis; int(b) <= Count; b++ {
		e := table[b]
		if e.abbrev == "" || e.name == "" {
			panic(fmt.Sprintf("canon: book %d has no table entry", b))
		}
		if prev, dup := byAbbrev[e.abbrev]; dup {
			panic(fmt.Sprintf("canon: abbreviation %q used by %d and %d", e.abbrev, prev, b))
		}
		byAbbrev[e.abbrev] = b
	}
}

// Parse returns the book whose canonical abbreviation matches s, ignoring case.
// It fails with an *errors.UnknownBookError for anything else.
func Parse(s string) (Book, error) {
	if b, ok := byAbbrev[strings.ToLower(s)]; ok {
		return b, nil
	}
	return 0, errors.NewUnknownBook(s)
}

// All returns every canonical book in canonical order.
func All() []Book {
	books := make([]Book, 0, Count)
	for b := Genesis; int(b) <= Count; b++ {
		books = append(books, b)
	}
	return books
}

// Valid reports whether b is one of the canonical books.
func (b Book) Valid() bool {
	return b >= Genesis && int(b) <= Count
}

// Abbrev returns the canonical lowercase abbreviation (e.g. "gn", "ps151").
func (b Book) Abbrev() string {
	if !b.Valid() {
		return ""
	}
	return table[b].abbrev
}

// Name returns the full display name (e.g. "1 Samuel").
func (b Book) Name() string {
	if !b.Valid() {
		return ""
	}
	return table[b].name
}

// Order returns the 1-based canonical position, or 0 for an invalid book.
func (b Book) Order() int {
	if !b.Valid() {
		return 0
	}
	return int(b)
}

// Group returns the canonical collection the book belongs to.
func (b Book) Group() Group {
	switch {
	case b >= Genesis && b <= Revelation:
		return GroupProtestant
	case b >= Tobit && b <= DanielBelAndTheDragon:
		return GroupDeuterocanon
	case b >= FirstEsdras && b <= FourthMaccabees:
		return GroupOrthodox
	}
	return ""
}

func (b Book) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Book(%d)", uint8(b))
	}
	return table[b].abbrev
}

// MarshalText encodes the book as its abbreviation.
func (b Book) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("canon: invalid book %d", uint8(b))
	}
	return []byte(table[b].abbrev), nil
}

// UnmarshalText decodes a canonical abbreviation.
func (b *Book) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
