// Package corpus loads a Bible translation from its JSON document and serves
// typed, constant-time lookups over it.
//
// # Document Shape
//
// The loader accepts a JSON object with the string fields id, name,
// description and language, and a books object keyed by canonical book
// abbreviation (see package canon). Each book carries a name and its
// chapters in either of two encodings:
//
//   - dense: [["In the beginning...", "And the earth..."], [...]]
//   - keyed: {"1": {"1": "In the beginning...", "2": "And the earth..."}}
//
// Keyed numbering must be exactly 1..N. Both encodings produce the same
// Translation.
//
// # Immutability
//
// A Translation is built in one pass by Load and never changes afterwards.
// Accessors that return slices return copies, so a Translation may be shared
// by any number of goroutines without locking.
//
// # Example
//
//	t, err := corpus.Load(data)
//	if err != nil {
//	    return err
//	}
//	text, err := t.Verse(canon.Genesis, 1, 1)
//	switch {
//	case errors.Is(err, bioerrors.ErrBookNotPresent):
//	    // translation has no Genesis
//	case errors.Is(err, bioerrors.ErrVerseOutOfRange):
//	    // no such verse
//	}
package corpus
