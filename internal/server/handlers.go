package server

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/FocuswithJustin/bible-io/core/canon"
	"github.com/FocuswithJustin/bible-io/core/corpus"
	"github.com/FocuswithJustin/bible-io/internal/logging"
)

type translationSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Books       int    `json:"books"`
	Verses      int    `json:"verses"`
	Digest      string `json:"digest"`
}

type bookSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	CanonicalName string `json:"canonical_name"`
	Chapters      []int  `json:"chapters"`
}

type verse struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

type passage struct {
	Translation string  `json:"translation"`
	Book        string  `json:"book"`
	Name        string  `json:"name"`
	Chapter     int     `json:"chapter"`
	Verses      []verse `json:"verses"`
}

type verseResponse struct {
	Translation string `json:"translation"`
	Book        string `json:"book"`
	Name        string `json:"name"`
	Chapter     int    `json:"chapter"`
	Verse       int    `json:"verse"`
	Text        string `json:"text"`
}

func summarize(t *corpus.Translation) translationSummary {
	return translationSummary{
		ID:          t.ID(),
		Name:        t.Name(),
		Description: t.Description(),
		Language:    t.Language(),
		Books:       len(t.Books()),
		Verses:      t.VerseCount(),
		Digest:      t.Digest(),
	}
}

func describeBook(v corpus.BookView) bookSummary {
	chapters := make([]int, v.ChapterCount())
	for i := range chapters {
		chapters[i] = v.VerseCount(i + 1)
	}
	return bookSummary{
		ID:            v.Book().Abbrev(),
		Name:          v.Name(),
		CanonicalName: v.Book().Name(),
		Chapters:      chapters,
	}
}

func newPassage(t *corpus.Translation, b canon.Book, chapter int, texts []string) passage {
	p := passage{
		Translation: t.ID(),
		Book:        b.Abbrev(),
		Chapter:     chapter,
		Verses:      make([]verse, len(texts)),
	}
	if v, err := t.Book(b); err == nil {
		p.Name = v.Name()
	}
	for i, text := range texts {
		p.Verses[i] = verse{Number: i + 1, Text: text}
	}
	return p
}

func newVerse(t *corpus.Translation, b canon.Book, chapter, number int, text string) verseResponse {
	v := verseResponse{
		Translation: t.ID(),
		Book:        b.Abbrev(),
		Chapter:     chapter,
		Verse:       number,
		Text:        text,
	}
	if bv, err := t.Book(b); err == nil {
		v.Name = bv.Name()
	}
	return v
}

// translation resolves the :id parameter and answers conditional requests.
// It reports false when a response has already been written.
func (s *Server) translation(w http.ResponseWriter, r *http.Request) (*corpus.Translation, bool) {
	id := httprouter.ParamsFromContext(r.Context()).ByName("id")
	t, ok := s.lib.Get(id)
	if !ok {
		lookupErrorResponse(w, r, errTranslationNotFound)
		return nil, false
	}

	etag := `"` + t.Digest() + `"`
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return nil, false
	}
	return t, true
}

func readBookParam(r *http.Request) (canon.Book, error) {
	return canon.Lookup(httprouter.ParamsFromContext(r.Context()).ByName("book"))
}

func readNumberParam(r *http.Request, name string) (int, error) {
	return strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName(name))
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, data envelope) {
	if err := writeJSON(w, http.StatusOK, data, nil); err != nil {
		logging.LoggerFromContext(r.Context()).Error("write response", "error", err)
	}
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, envelope{"status": "ok", "translations": s.lib.Len()})
}

func (s *Server) listTranslationsHandler(w http.ResponseWriter, r *http.Request) {
	ids := s.lib.IDs()
	out := make([]translationSummary, 0, len(ids))
	for _, id := range ids {
		t, _ := s.lib.Get(id)
		out = append(out, summarize(t))
	}
	s.respond(w, r, envelope{"translations": out})
}

func (s *Server) translationHandler(w http.ResponseWriter, r *http.Request) {
	t, ok := s.translation(w, r)
	if !ok {
		return
	}

	books := make([]bookSummary, 0, len(t.Books()))
	for _, b := range t.Books() {
		v, err := t.Book(b)
		if err != nil {
			lookupErrorResponse(w, r, err)
			return
		}
		books = append(books, describeBook(v))
	}
	s.respond(w, r, envelope{"translation": summarize(t), "books": books})
}

func (s *Server) bookHandler(w http.ResponseWriter, r *http.Request) {
	t, ok := s.translation(w, r)
	if !ok {
		return
	}
	b, err := readBookParam(r)
	if err != nil {
		lookupErrorResponse(w, r, err)
		return
	}
	v, err := t.Book(b)
	if err != nil {
		lookupErrorResponse(w, r, err)
		return
	}
	s.respond(w, r, envelope{"book": describeBook(v)})
}

func (s *Server) chapterHandler(w http.ResponseWriter, r *http.Request) {
	t, ok := s.translation(w, r)
	if !ok {
		return
	}
	b, err := readBookParam(r)
	if err != nil {
		lookupErrorResponse(w, r, err)
		return
	}
	chapter, err := readNumberParam(r, "chapter")
	if err != nil {
		badRequestResponse(w, r, "invalid chapter parameter")
		return
	}

	texts, err := t.Chapter(b, chapter)
	if err != nil {
		lookupErrorResponse(w, r, err)
		return
	}
	s.respond(w, r, envelope{"passage": newPassage(t, b, chapter, texts)})
}

func (s *Server) verseHandler(w http.ResponseWriter, r *http.Request) {
	t, ok := s.translation(w, r)
	if !ok {
		return
	}
	b, err := readBookParam(r)
	if err != nil {
		lookupErrorResponse(w, r, err)
		return
	}
	chapter, err := readNumberParam(r, "chapter")
	if err != nil {
		badRequestResponse(w, r, "invalid chapter parameter")
		return
	}
	number, err := readNumberParam(r, "verse")
	if err != nil {
		badRequestResponse(w, r, "invalid verse parameter")
		return
	}

	text, err := t.Verse(b, chapter, number)
	if err != nil {
		lookupErrorResponse(w, r, err)
		return
	}
	s.respond(w, r, envelope{"verse": newVerse(t, b, chapter, number, text)})
}

func (s *Server) referenceHandler(w http.ResponseWriter, r *http.Request) {
	t, ok := s.translation(w, r)
	if !ok {
		return
	}
	q := r.URL.Query().Get("q")
	if q == "" {
		badRequestResponse(w, r, "missing q parameter")
		return
	}

	data, err := lookupReference(t, q)
	if err != nil {
		lookupErrorResponse(w, r, err)
		return
	}
	s.respond(w, r, data)
}

// lookupReference answers a human reference with a verse or, for a
// whole-chapter reference, a passage.
func lookupReference(t *corpus.Translation, q string) (envelope, error) {
	ref, b, err := t.ResolveReference(q)
	if err != nil {
		return nil, err
	}
	if ref.IsChapter() {
		texts, err := t.Chapter(b, ref.Chapter)
		if err != nil {
			return nil, err
		}
		return envelope{"passage": newPassage(t, b, ref.Chapter, texts)}, nil
	}
	text, err := t.Verse(b, ref.Chapter, ref.Verse)
	if err != nil {
		return nil, err
	}
	return envelope{"verse": newVerse(t, b, ref.Chapter, ref.Verse, text)}, nil
}
