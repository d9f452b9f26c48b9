package source

import (
	"context"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/FocuswithJustin/bible-io/core/corpus"
	"github.com/FocuswithJustin/bible-io/internal/logging"
)

// Library is a set of loaded translations keyed by translation ID. It is not
// modified after LoadAll returns and is safe for concurrent readers.
type Library struct {
	byID map[string]*corpus.Translation
	ids  []string
}

// NewLibrary builds a Library from already loaded translations. Two
// translations with the same ID are an error.
func NewLibrary(translations ...*corpus.Translation) (*Library, error) {
	l := &Library{byID: make(map[string]*corpus.Translation, len(translations))}
	for _, t := range translations {
		if _, dup := l.byID[t.ID()]; dup {
			return nil, fmt.Errorf("duplicate translation id %q", t.ID())
		}
		l.byID[t.ID()] = t
		l.ids = append(l.ids, t.ID())
	}
	slices.Sort(l.ids)
	return l, nil
}

// LoadAll opens every path concurrently. The first failure cancels the rest.
func LoadAll(ctx context.Context, paths []string) (*Library, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no corpus files given")
	}

	loaded := make([]*corpus.Translation, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			t, err := Open(path)
			if err != nil {
				logging.CorpusError(path, err)
				return err
			}
			logging.CorpusLoaded(t.ID(), path, len(t.Books()), t.VerseCount(), time.Since(start))
			loaded[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return NewLibrary(loaded...)
}

// Get returns the translation with the given ID.
func (l *Library) Get(id string) (*corpus.Translation, bool) {
	t, ok := l.byID[id]
	return t, ok
}

// IDs returns the translation IDs in sorted order.
func (l *Library) IDs() []string {
	return slices.Clone(l.ids)
}

// Len returns the number of translations.
func (l *Library) Len() int {
	return len(l.ids)
}

// Default returns the only translation when exactly one is loaded.
func (l *Library) Default() (*corpus.Translation, bool) {
	if len(l.ids) != 1 {
		return nil, false
	}
	return l.byID[l.ids[0]], true
}
