package corpus

import (
	"slices"

	"github.com/FocuswithJustin/bible-io/core/canon"
	"github.com/FocuswithJustin/bible-io/core/errors"
)

// Verse returns the text of one verse. It fails with ErrBookNotPresent,
// ErrChapterOutOfRange or ErrVerseOutOfRange; numbers are 1-based and zero or
// negative values are out of range.
func (t *Translation) Verse(b canon.Book, chapter, verse int) (string, error) {
	bk, err := t.lookup(b)
	if err != nil {
		return "", err
	}
	return bk.verse(chapter, verse)
}

// Chapter returns a copy of the ordered verses of one chapter.
func (t *Translation) Chapter(b canon.Book, chapter int) ([]string, error) {
	bk, err := t.lookup(b)
	if err != nil {
		return nil, err
	}
	verses, err := bk.chapter(chapter)
	if err != nil {
		return nil, err
	}
	return slices.Clone(verses), nil
}

// Book returns a read-only view of a whole book.
func (t *Translation) Book(b canon.Book) (BookView, error) {
	bk, err := t.lookup(b)
	if err != nil {
		return BookView{}, err
	}
	return BookView{b: bk}, nil
}

func (t *Translation) lookup(b canon.Book) (*book, error) {
	if !t.Has(b) {
		return nil, &errors.NotPresentError{
			Book:        b.Abbrev(),
			BookName:    b.Name(),
			Translation: t.id,
		}
	}
	return t.books[b], nil
}

func (bk *book) chapter(n int) ([]string, error) {
	if n < 1 || n > len(bk.chapters) {
		return nil, &errors.RangeError{
			Scope:   errors.ScopeChapters,
			Book:    bk.id.Abbrev(),
			Chapter: n,
			Max:     len(bk.chapters),
		}
	}
	return bk.chapters[n-1], nil
}

func (bk *book) verse(c, n int) (string, error) {
	verses, err := bk.chapter(c)
	if err != nil {
		return "", err
	}
	if n < 1 || n > len(verses) {
		return "", &errors.RangeError{
			Scope:   errors.ScopeVerses,
			Book:    bk.id.Abbrev(),
			Chapter: c,
			Verse:   n,
			Max:     len(verses),
		}
	}
	return verses[n-1], nil
}
