package corpus

import (
	"encoding/hex"
	stderrors "errors"
	"io"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/bible-io/core/canon"
	"github.com/FocuswithJustin/bible-io/core/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// metadataFields are the required top-level strings, in the order they are checked.
var metadataFields = []string{"id", "name", "description", "language"}

// bookEntry is the decoded value of one books member.
type bookEntry struct {
	Name     *string             `json:"name"`
	Chapters jsoniter.RawMessage `json:"chapters"`
}

// member is one key/value pair of a JSON object, in document order.
type member struct {
	key   string
	value []byte
}

// Load parses a translation document and builds an immutable Translation.
// On any failure it returns a nil Translation and one of the loader errors
// from package errors: ErrMalformedDocument, ErrMissingField, ErrUnknownBook,
// ErrNonContiguousChapters or ErrNonContiguousVerses.
func Load(raw []byte) (*Translation, error) {
	if kindOf(raw) != '{' {
		if !json.Valid(raw) {
			return nil, errors.NewParse("", "invalid JSON document", nil)
		}
		return nil, errors.NewParse("", "document root must be an object", nil)
	}

	var root map[string]jsoniter.RawMessage
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, errors.NewParse("", "invalid JSON document", err)
	}

	t := &Translation{}
	meta := make([]string, len(metadataFields))
	for i, field := range metadataFields {
		s, err := requiredString(root, field)
		if err != nil {
			return nil, err
		}
		meta[i] = s
	}
	t.id, t.name, t.description, t.language = meta[0], meta[1], meta[2], meta[3]

	booksRaw, ok := root["books"]
	if !ok || isNull(booksRaw) {
		return nil, errors.NewMissingField("books")
	}
	if kindOf(booksRaw) != '{' {
		return nil, errors.NewParse("books", "expected an object keyed by book abbreviation", nil)
	}
	members, err := objectMembers(booksRaw)
	if err != nil {
		return nil, errors.NewParse("books", "invalid object", err)
	}

	for _, m := range members {
		id, err := canon.Parse(m.key)
		if err != nil {
			return nil, err
		}
		if t.books[id] != nil {
			return nil, errors.NewParse("books."+m.key, "duplicate entry for book "+id.Abbrev(), nil)
		}
		bk, err := loadBook(id, m.key, m.value)
		if err != nil {
			return nil, err
		}
		t.books[id] = bk
	}

	for _, b := range canon.All() {
		if t.books[b] != nil {
			t.present = append(t.present, b)
		}
	}

	sum := blake3.Sum256(raw)
	t.digest = hex.EncodeToString(sum[:])
	return t, nil
}

func loadBook(id canon.Book, key string, raw []byte) (*book, error) {
	path := "books." + key
	if kindOf(raw) != '{' {
		return nil, errors.NewParse(path, "expected an object", nil)
	}

	var entry bookEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, errors.NewParse(path, "invalid book entry", err)
	}
	if entry.Name == nil {
		return nil, errors.NewMissingField(path + ".name")
	}
	if len(entry.Chapters) == 0 || isNull(entry.Chapters) {
		return nil, errors.NewMissingField(path + ".chapters")
	}

	chapters, err := sequence(entry.Chapters, path+".chapters", func(reason string, keys []string) error {
		return &errors.ContiguityError{Scope: errors.ScopeChapters, Book: id.Abbrev(), Keys: keys, Reason: reason}
	})
	if err != nil {
		return nil, err
	}

	bk := &book{
		id:       id,
		name:     *entry.Name,
		chapters: make([][]string, len(chapters)),
	}
	for i, chRaw := range chapters {
		number := i + 1
		chPath := path + ".chapters." + strconv.Itoa(number)
		verses, err := sequence(chRaw, chPath, func(reason string, keys []string) error {
			return &errors.ContiguityError{Scope: errors.ScopeVerses, Book: id.Abbrev(), Chapter: number, Keys: keys, Reason: reason}
		})
		if err != nil {
			return nil, err
		}

		texts := make([]string, len(verses))
		for j, vRaw := range verses {
			text, err := verseText(vRaw)
			if err != nil {
				return nil, errors.NewParse(chPath+"."+strconv.Itoa(j+1), "verse must be a string", err)
			}
			texts[j] = text
		}
		bk.chapters[i] = texts
	}
	return bk, nil
}

// sequence normalizes a dense array or a keyed object into positional order.
// Keyed objects must use exactly the decimal keys 1..N; anything else is
// reported through gap.
func sequence(raw []byte, path string, gap func(reason string, keys []string) error) ([][]byte, error) {
	switch kindOf(raw) {
	case '[':
		items, err := arrayItems(raw)
		if err != nil {
			return nil, errors.NewParse(path, "invalid array", err)
		}
		return items, nil
	case '{':
		members, err := objectMembers(raw)
		if err != nil {
			return nil, errors.NewParse(path, "invalid object", err)
		}
		return numbered(members, gap)
	default:
		return nil, errors.NewParse(path, "expected an array or an object keyed by number", nil)
	}
}

// numbered places each member at the position named by its key. With N
// members, every key must be a distinct integer in 1..N, which is the same as
// the sorted keys being exactly 1..N.
func numbered(members []member, gap func(reason string, keys []string) error) ([][]byte, error) {
	keys := make([]string, len(members))
	for i, m := range members {
		keys[i] = m.key
	}

	slots := make([][]byte, len(members))
	for _, m := range members {
		n, ok := parseNumber(m.key)
		if !ok {
			return nil, gap("key "+strconv.Quote(m.key)+" is not a decimal number", keys)
		}
		if n < 1 {
			return nil, gap("number "+m.key+" is not positive", keys)
		}
		if n > len(members) {
			return nil, gap("number "+m.key+" leaves a gap before it", keys)
		}
		if slots[n-1] != nil {
			return nil, gap("number "+strconv.Itoa(n)+" appears more than once", keys)
		}
		slots[n-1] = m.value
	}
	return slots, nil
}

// parseNumber accepts only unsigned decimal digits with no leading zero.
func parseNumber(key string) (int, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(key); i++ {
		if key[i] < '0' || key[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(key)
	if err != nil {
		return 0, false
	}
	return n, true
}

func requiredString(root map[string]jsoniter.RawMessage, field string) (string, error) {
	raw, ok := root[field]
	if !ok || isNull(raw) {
		return "", errors.NewMissingField(field)
	}
	if kindOf(raw) != '"' {
		return "", errors.NewParse(field, "expected a string", nil)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", errors.NewParse(field, "invalid string", err)
	}
	return s, nil
}

func verseText(raw []byte) (string, error) {
	if kindOf(raw) != '"' {
		return "", stderrors.New("found " + describe(kindOf(raw)))
	}
	iter := json.BorrowIterator(raw)
	defer json.ReturnIterator(iter)
	s := iter.ReadString()
	return s, iterError(iter)
}

// objectMembers returns the members of a JSON object in document order,
// keeping duplicate keys so callers can reject them.
func objectMembers(raw []byte) ([]member, error) {
	iter := json.BorrowIterator(raw)
	defer json.ReturnIterator(iter)

	var members []member
	iter.ReadMapCB(func(it *jsoniter.Iterator, key string) bool {
		members = append(members, member{key: key, value: it.SkipAndReturnBytes()})
		return it.Error == nil
	})
	return members, iterError(iter)
}

func arrayItems(raw []byte) ([][]byte, error) {
	iter := json.BorrowIterator(raw)
	defer json.ReturnIterator(iter)

	var items [][]byte
	iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
		items = append(items, it.SkipAndReturnBytes())
		return it.Error == nil
	})
	return items, iterError(iter)
}

func iterError(iter *jsoniter.Iterator) error {
	if iter.Error != nil && !stderrors.Is(iter.Error, io.EOF) {
		return iter.Error
	}
	return nil
}

// kindOf returns the first non-whitespace byte of raw, or 0 if there is none.
func kindOf(raw []byte) byte {
	for _, c := range raw {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return c
	}
	return 0
}

// isNull reports whether raw is JSON null. jsoniter decodes a null member of
// a RawMessage map to an empty value, so empty counts as null too.
func isNull(raw []byte) bool {
	k := kindOf(raw)
	return k == 0 || k == 'n'
}

func describe(kind byte) string {
	switch kind {
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	case 0:
		return "nothing"
	}
	return "number"
}
