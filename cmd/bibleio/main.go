// Command bibleio looks up verses, chapters and books in Bible translation
// documents and serves them over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	jsoniter "github.com/json-iterator/go"

	"github.com/FocuswithJustin/bible-io/core/canon"
	"github.com/FocuswithJustin/bible-io/core/corpus"
	bioerrors "github.com/FocuswithJustin/bible-io/core/errors"
	"github.com/FocuswithJustin/bible-io/internal/config"
	"github.com/FocuswithJustin/bible-io/internal/logging"
	"github.com/FocuswithJustin/bible-io/internal/server"
	"github.com/FocuswithJustin/bible-io/internal/source"
)

const version = "0.1.0"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Exit codes by failure kind.
const (
	exitOK        = 0
	exitFailure   = 1
	exitLoad      = 2
	exitLookup    = 3
	exitReference = 4
)

// CLI defines the command-line interface for bibleio.
type CLI struct {
	LogLevel  string `name:"log-level" help:"Log level (debug, info, warn, error)" default:"${log_level}"`
	LogFormat string `name:"log-format" help:"Log format (text, json)" default:"${log_format}"`
	JSON      bool   `name:"json" help:"Print results as JSON"`

	Verse   VerseCmd   `cmd:"" help:"Print one verse"`
	Chapter ChapterCmd `cmd:"" help:"Print a chapter"`
	Book    BookCmd    `cmd:"" help:"Summarize a book"`
	Ref     RefCmd     `cmd:"" help:"Look up a reference such as \"John 3:16\" or \"Psalm 23\""`
	Info    InfoCmd    `cmd:"" help:"Show translation metadata"`
	Books   BooksCmd   `cmd:"" help:"List the books of a translation in canonical order"`
	Serve   ServeCmd   `cmd:"" help:"Serve translations over HTTP and WebSocket"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// runContext is bound into every command's Run method.
type runContext struct {
	ctx  context.Context
	out  io.Writer
	json bool
	cfg  config.Config
}

// CorpusFlag selects the translation document for single-translation commands.
type CorpusFlag struct {
	Corpus string `short:"c" help:"Translation document (.json, .json.xz or .json.gz)" default:"${corpus}"`
}

func (f CorpusFlag) open() (*corpus.Translation, error) {
	if f.Corpus == "" {
		return nil, errors.New("no corpus given: pass --corpus or set BIBLEIO_CORPORA")
	}
	start := time.Now()
	t, err := source.Open(f.Corpus)
	if err != nil {
		return nil, &loadError{err}
	}
	logging.Debug("corpus opened", "translation", t.ID(), "path", f.Corpus, "duration_ms", time.Since(start).Milliseconds())
	return t, nil
}

// VerseCmd prints one verse.
type VerseCmd struct {
	CorpusFlag
	Book    string `arg:"" help:"Book abbreviation or name"`
	Chapter int    `arg:"" help:"Chapter number"`
	Verse   int    `arg:"" help:"Verse number"`
}

func (c *VerseCmd) Run(rc *runContext) error {
	t, err := c.open()
	if err != nil {
		return err
	}
	b, err := canon.Lookup(c.Book)
	if err != nil {
		return err
	}
	text, err := t.Verse(b, c.Chapter, c.Verse)
	if err != nil {
		return err
	}
	return printVerse(rc, t, b, c.Chapter, c.Verse, text)
}

// ChapterCmd prints every verse of a chapter.
type ChapterCmd struct {
	CorpusFlag
	Book    string `arg:"" help:"Book abbreviation or name"`
	Chapter int    `arg:"" help:"Chapter number"`
}

func (c *ChapterCmd) Run(rc *runContext) error {
	t, err := c.open()
	if err != nil {
		return err
	}
	b, err := canon.Lookup(c.Book)
	if err != nil {
		return err
	}
	verses, err := t.Chapter(b, c.Chapter)
	if err != nil {
		return err
	}
	return printChapter(rc, t, b, c.Chapter, verses)
}

// RefCmd resolves a human reference.
type RefCmd struct {
	CorpusFlag
	Reference []string `arg:"" help:"Reference, e.g. \"1 John 3:16\""`
}

func (c *RefCmd) Run(rc *runContext) error {
	t, err := c.open()
	if err != nil {
		return err
	}
	r, b, err := t.ResolveReference(strings.Join(c.Reference, " "))
	if err != nil {
		return err
	}
	if r.IsChapter() {
		verses, err := t.Chapter(b, r.Chapter)
		if err != nil {
			return err
		}
		return printChapter(rc, t, b, r.Chapter, verses)
	}
	text, err := t.Verse(b, r.Chapter, r.Verse)
	if err != nil {
		return err
	}
	return printVerse(rc, t, b, r.Chapter, r.Verse, text)
}

// BookCmd summarizes one book.
type BookCmd struct {
	CorpusFlag
	Book string `arg:"" help:"Book abbreviation or name"`
}

func (c *BookCmd) Run(rc *runContext) error {
	t, err := c.open()
	if err != nil {
		return err
	}
	b, err := canon.Lookup(c.Book)
	if err != nil {
		return err
	}
	v, err := t.Book(b)
	if err != nil {
		return err
	}

	counts := make([]int, v.ChapterCount())
	for i := range counts {
		counts[i] = v.VerseCount(i + 1)
	}
	if rc.json {
		return writeJSON(rc.out, map[string]any{
			"id":             b.Abbrev(),
			"name":           v.Name(),
			"canonical_name": b.Name(),
			"chapters":       counts,
		})
	}
	fmt.Fprintf(rc.out, "%s (%s, %s)\n", v.Name(), b.Abbrev(), b.Name())
	fmt.Fprintf(rc.out, "Chapters: %d\n", len(counts))
	for i, n := range counts {
		fmt.Fprintf(rc.out, "  %3d: %d verses\n", i+1, n)
	}
	return nil
}

// InfoCmd prints translation metadata.
type InfoCmd struct {
	CorpusFlag
}

func (c *InfoCmd) Run(rc *runContext) error {
	t, err := c.open()
	if err != nil {
		return err
	}
	if rc.json {
		return writeJSON(rc.out, map[string]any{
			"id":          t.ID(),
			"name":        t.Name(),
			"description": t.Description(),
			"language":    t.Language(),
			"books":       len(t.Books()),
			"verses":      t.VerseCount(),
			"digest":      t.Digest(),
		})
	}
	fmt.Fprintf(rc.out, "ID:          %s\n", t.ID())
	fmt.Fprintf(rc.out, "Name:        %s\n", t.Name())
	fmt.Fprintf(rc.out, "Description: %s\n", t.Description())
	fmt.Fprintf(rc.out, "Language:    %s\n", t.Language())
	fmt.Fprintf(rc.out, "Books:       %d\n", len(t.Books()))
	fmt.Fprintf(rc.out, "Verses:      %d\n", t.VerseCount())
	fmt.Fprintf(rc.out, "Digest:      %s\n", t.Digest())
	return nil
}

// BooksCmd lists the books present in a translation.
type BooksCmd struct {
	CorpusFlag
}

func (c *BooksCmd) Run(rc *runContext) error {
	t, err := c.open()
	if err != nil {
		return err
	}

	type row struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Chapters int    `json:"chapters"`
	}
	var rows []row
	for _, b := range t.Books() {
		v, err := t.Book(b)
		if err != nil {
			return err
		}
		rows = append(rows, row{ID: b.Abbrev(), Name: v.Name(), Chapters: v.ChapterCount()})
	}

	if rc.json {
		return writeJSON(rc.out, rows)
	}
	for _, r := range rows {
		fmt.Fprintf(rc.out, "%-5s %-24s %d\n", r.ID, r.Name, r.Chapters)
	}
	return nil
}

// ServeCmd starts the HTTP server.
type ServeCmd struct {
	Corpora        []string      `arg:"" optional:"" help:"Translation documents to serve (default: BIBLEIO_CORPORA)"`
	Addr           string        `help:"Listen address" default:"${addr}"`
	ReadTimeout    time.Duration `name:"read-timeout" help:"HTTP read timeout" default:"${read_timeout}"`
	AllowedOrigins []string      `name:"allowed-origin" help:"Allowed CORS and WebSocket origin (repeatable)"`
}

func (c *ServeCmd) Run(rc *runContext) error {
	paths := c.Corpora
	if len(paths) == 0 {
		paths = rc.cfg.Corpora
	}
	origins := c.AllowedOrigins
	if len(origins) == 0 {
		origins = rc.cfg.AllowedOrigins
	}

	ctx, stop := signal.NotifyContext(rc.ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lib, err := source.LoadAll(ctx, paths)
	if err != nil {
		return &loadError{err}
	}
	srv := server.New(lib, server.Options{
		Addr:           c.Addr,
		ReadTimeout:    c.ReadTimeout,
		AllowedOrigins: origins,
	})
	return srv.ListenAndServe(ctx)
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run(rc *runContext) error {
	fmt.Fprintf(rc.out, "bibleio version %s\n", version)
	return nil
}

func printVerse(rc *runContext, t *corpus.Translation, b canon.Book, chapter, verse int, text string) error {
	if rc.json {
		return writeJSON(rc.out, map[string]any{
			"translation": t.ID(),
			"book":        b.Abbrev(),
			"chapter":     chapter,
			"verse":       verse,
			"text":        text,
		})
	}
	_, err := fmt.Fprintln(rc.out, text)
	return err
}

func printChapter(rc *runContext, t *corpus.Translation, b canon.Book, chapter int, verses []string) error {
	if rc.json {
		return writeJSON(rc.out, map[string]any{
			"translation": t.ID(),
			"book":        b.Abbrev(),
			"chapter":     chapter,
			"verses":      verses,
		})
	}
	for i, text := range verses {
		if _, err := fmt.Fprintf(rc.out, "%d %s\n", i+1, text); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	js, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(js, '\n'))
	return err
}

// loadError marks a failure to open or parse a translation document.
type loadError struct {
	err error
}

func (e *loadError) Error() string { return e.err.Error() }
func (e *loadError) Unwrap() error { return e.err }

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	var le *loadError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &le):
		return exitLoad
	case errors.Is(err, bioerrors.ErrInvalidReference):
		return exitReference
	case errors.Is(err, bioerrors.ErrUnknownBook),
		errors.Is(err, bioerrors.ErrBookNotPresent),
		errors.Is(err, bioerrors.ErrChapterOutOfRange),
		errors.Is(err, bioerrors.ErrVerseOutOfRange):
		return exitLookup
	}
	return exitFailure
}

// run parses args and executes the selected command.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "bibleio: %v\n", err)
		return exitFailure
	}
	firstCorpus := ""
	if len(cfg.Corpora) > 0 {
		firstCorpus = cfg.Corpora[0]
	}

	var cli CLI
	exited := -1
	parser, err := kong.New(&cli,
		kong.Name("bibleio"),
		kong.Description("Read-only Bible corpus lookups"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exited = code }),
		kong.Vars{
			"log_level":    cfg.LogLevel,
			"log_format":   cfg.LogFormat,
			"corpus":       firstCorpus,
			"addr":         cfg.Addr,
			"read_timeout": cfg.ReadTimeout.String(),
		},
	)
	if err != nil {
		fmt.Fprintf(stderr, "bibleio: %v\n", err)
		return exitFailure
	}

	kctx, err := parser.Parse(args)
	if exited >= 0 {
		// --help was handled by kong.
		return exited
	}
	if err != nil {
		parser.Errorf("%s", err)
		return exitFailure
	}

	level, err := logging.ParseLevel(cli.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "bibleio: %v\n", err)
		return exitFailure
	}
	format, err := logging.ParseFormat(cli.LogFormat)
	if err != nil {
		fmt.Fprintf(stderr, "bibleio: %v\n", err)
		return exitFailure
	}
	logging.InitLogger(stderr, level, format)

	if err := kctx.Run(&runContext{ctx: ctx, out: stdout, json: cli.JSON, cfg: cfg}); err != nil {
		fmt.Fprintf(stderr, "bibleio: %v\n", err)
		return exitCode(err)
	}
	return exitOK
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
