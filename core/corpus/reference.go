package corpus

import (
	"github.com/FocuswithJustin/bible-io/core/canon"
	"github.com/FocuswithJustin/bible-io/core/errors"
	"github.com/FocuswithJustin/bible-io/core/ref"
)

// VerseByReference looks up a verse from a reference such as "Gen 1:1" or
// "1 John 3:16". The book may be a canonical abbreviation, a common alias, a
// full canonical name or the name the translation itself gives the book.
func (t *Translation) VerseByReference(s string) (string, error) {
	r, b, err := t.ResolveReference(s)
	if err != nil {
		return "", err
	}
	if r.IsChapter() {
		return "", errors.NewReference(s, "reference names a chapter, not a verse", nil)
	}
	return t.Verse(b, r.Chapter, r.Verse)
}

// ChapterByReference looks up a whole chapter from a reference such as "Psalm 23".
// A verse number, if present, is ignored.
func (t *Translation) ChapterByReference(s string) ([]string, error) {
	r, b, err := t.ResolveReference(s)
	if err != nil {
		return nil, err
	}
	return t.Chapter(b, r.Chapter)
}

// ResolveReference parses s and maps its book to a canonical book.
func (t *Translation) ResolveReference(s string) (*ref.Reference, canon.Book, error) {
	r, err := ref.Parse(s)
	if err != nil {
		return nil, 0, err
	}
	b, err := canon.Resolve(r.Book)
	if err == nil {
		return r, b, nil
	}

	// Fall back to the names this translation uses for its books.
	key := canon.Normalize(r.Book)
	for _, id := range t.present {
		if canon.Normalize(t.books[id].name) == key {
			return r, id, nil
		}
	}
	return nil, 0, errors.NewReference(s, "unknown book "+r.Book, err)
}
