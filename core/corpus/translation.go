package corpus

import (
	"slices"

	"github.com/FocuswithJustin/bible-io/core/canon"
)

// Translation is one loaded Bible translation. It is immutable and safe for
// concurrent use.
type Translation struct {
	id          string
	name        string
	description string
	language    string

	// books is indexed by canon.Book; absent books are nil.
	books [canon.Count + 1]*book

	// present lists the books that exist, in canonical order.
	present []canon.Book

	digest string
}

// book is the resident form of one book: dense chapters of dense verses.
type book struct {
	id       canon.Book
	name     string
	chapters [][]string
}

// ID returns the stable short code of the translation (e.g. "kjv").
func (t *Translation) ID() string { return t.id }

// Name returns the display title.
func (t *Translation) Name() string { return t.name }

// Description returns the free-form description.
func (t *Translation) Description() string { return t.description }

// Language returns the language tag as given in the document.
func (t *Translation) Language() string { return t.language }

// Digest returns the hex BLAKE3-256 digest of the document the translation
// was loaded from.
func (t *Translation) Digest() string { return t.digest }

// Books returns the books present in the translation, in canonical order.
func (t *Translation) Books() []canon.Book {
	return slices.Clone(t.present)
}

// Has reports whether the translation contains b.
func (t *Translation) Has(b canon.Book) bool {
	return b.Valid() && t.books[b] != nil
}

// VerseCount returns the total number of verses across all books.
func (t *Translation) VerseCount() int {
	n := 0
	for _, b := range t.present {
		for _, ch := range t.books[b].chapters {
			n += len(ch)
		}
	}
	return n
}

// BookView is a read-only view of one book of a Translation.
type BookView struct {
	b *book
}

// Book returns the canonical identifier of the book.
func (v BookView) Book() canon.Book { return v.b.id }

// Name returns the book name as given in the document.
func (v BookView) Name() string { return v.b.name }

// ChapterCount returns the number of chapters.
func (v BookView) ChapterCount() int { return len(v.b.chapters) }

// VerseCount returns the number of verses in chapter n, or 0 if n is out of range.
func (v BookView) VerseCount(n int) int {
	if n < 1 || n > len(v.b.chapters) {
		return 0
	}
	return len(v.b.chapters[n-1])
}

// Chapter returns a copy of the verses of chapter n.
func (v BookView) Chapter(n int) ([]string, error) {
	verses, err := v.b.chapter(n)
	if err != nil {
		return nil, err
	}
	return slices.Clone(verses), nil
}

// Verse returns the text of verse (c, n).
func (v BookView) Verse(c, n int) (string, error) {
	return v.b.verse(c, n)
}

// Chapters returns a deep copy of every chapter, index 0 being chapter 1.
func (v BookView) Chapters() [][]string {
	out := make([][]string, len(v.b.chapters))
	for i, ch := range v.b.chapters {
		out[i] = slices.Clone(ch)
	}
	return out
}
