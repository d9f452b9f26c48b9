package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	bioerrors "github.com/FocuswithJustin/bible-io/core/errors"
)

const testDoc = `{"id":"kjv","name":"King James Version","description":"Authorized","language":"English","books":{
	"gn":{"name":"Genesis","chapters":[["In the beginning...","And the earth..."],["Thus the heavens..."]]},
	"1jo":{"name":"1 John","chapters":[["a"],["b"],["c"],["d","e","f","g","h","i","j","k"]]}
}}`

func createTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestCommands(t *testing.T) {
	corpus := createTestFile(t, t.TempDir(), "kjv.json", testDoc)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"verse", []string{"verse", "-c", corpus, "gn", "1", "1"}, "In the beginning...\n"},
		{"verse by name", []string{"verse", "-c", corpus, "Genesis", "1", "2"}, "And the earth...\n"},
		{"chapter", []string{"chapter", "-c", corpus, "gn", "1"}, "1 In the beginning...\n2 And the earth...\n"},
		{"ref verse", []string{"ref", "-c", corpus, "1 Jn 4:8"}, "k\n"},
		{"ref split args", []string{"ref", "-c", corpus, "Gen", "2:1"}, "Thus the heavens...\n"},
		{"ref chapter", []string{"ref", "-c", corpus, "Gen 2"}, "1 Thus the heavens...\n"},
		{"version", []string{"version"}, "bibleio version " + version + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, tt.args...)
			if code != exitOK {
				t.Fatalf("exit code = %d, stderr = %q", code, errOut)
			}
			if out != tt.want {
				t.Errorf("stdout = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestInfoAndBooks(t *testing.T) {
	corpus := createTestFile(t, t.TempDir(), "kjv.json", testDoc)

	code, out, _ := runCLI(t, "info", "-c", corpus)
	if code != exitOK {
		t.Fatalf("info exit code = %d", code)
	}
	for _, want := range []string{"ID:          kjv", "Language:    English", "Books:       2", "Verses:      14"} {
		if !strings.Contains(out, want) {
			t.Errorf("info output missing %q:\n%s", want, out)
		}
	}

	code, out, _ = runCLI(t, "books", "-c", corpus)
	if code != exitOK {
		t.Fatalf("books exit code = %d", code)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "gn") || !strings.HasPrefix(lines[1], "1jo") {
		t.Errorf("books output = %q", out)
	}

	code, out, _ = runCLI(t, "book", "-c", corpus, "1 John")
	if code != exitOK || !strings.Contains(out, "Chapters: 4") || !strings.Contains(out, "4: 8 verses") {
		t.Errorf("book output (%d) = %q", code, out)
	}
}

func TestListedBookIDsRoundTrip(t *testing.T) {
	corpus := createTestFile(t, t.TempDir(), "minor.json", `{"id":"t","name":"T","description":"d","language":"en","books":{
	"jud":{"name":"Judges","chapters":[["judges"]]},
	"jn":{"name":"Jonah","chapters":[["jonah"]]}
}}`)

	code, out, _ := runCLI(t, "books", "-c", corpus)
	if code != exitOK {
		t.Fatalf("books exit code = %d", code)
	}
	want := map[string]string{"jud": "judges\n", "jn": "jonah\n"}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(want) {
		t.Fatalf("books output = %q", out)
	}
	for _, line := range lines {
		id := strings.Fields(line)[0]
		code, text, errOut := runCLI(t, "verse", "-c", corpus, id, "1", "1")
		if code != exitOK {
			t.Errorf("verse %s exit code = %d, stderr = %q", id, code, errOut)
			continue
		}
		if text != want[id] {
			t.Errorf("verse %s = %q, want %q", id, text, want[id])
		}
	}
}

func TestJSONOutput(t *testing.T) {
	corpus := createTestFile(t, t.TempDir(), "kjv.json", testDoc)

	code, out, _ := runCLI(t, "--json", "verse", "-c", corpus, "gn", "1", "1")
	if code != exitOK {
		t.Fatalf("exit code = %d", code)
	}
	var v struct {
		Translation string `json:"translation"`
		Book        string `json:"book"`
		Text        string `json:"text"`
	}
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("output is not JSON: %q", out)
	}
	if v.Translation != "kjv" || v.Book != "gn" || v.Text != "In the beginning..." {
		t.Errorf("json verse = %+v", v)
	}

	code, out, _ = runCLI(t, "--json", "books", "-c", corpus)
	var rows []map[string]any
	if code != exitOK || json.Unmarshal([]byte(out), &rows) != nil || len(rows) != 2 {
		t.Errorf("json books (%d) = %q", code, out)
	}
}

func TestCorpusFromEnv(t *testing.T) {
	corpus := createTestFile(t, t.TempDir(), "kjv.json", testDoc)
	t.Setenv("BIBLEIO_CORPORA", corpus)

	code, out, errOut := runCLI(t, "verse", "gn", "2", "1")
	if code != exitOK {
		t.Fatalf("exit code = %d, stderr = %q", code, errOut)
	}
	if out != "Thus the heavens...\n" {
		t.Errorf("stdout = %q", out)
	}
}

func TestExitCodes(t *testing.T) {
	dir := t.TempDir()
	corpus := createTestFile(t, dir, "kjv.json", testDoc)
	bad := createTestFile(t, dir, "bad.json", `{"id":"x","name":"x","description":"x","language":"x","books":{"gn":{"name":"G","chapters":{"1":[],"3":[]}}}}`)

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"verse out of range", []string{"verse", "-c", corpus, "gn", "1", "3"}, exitLookup},
		{"chapter zero", []string{"chapter", "-c", corpus, "gn", "0"}, exitLookup},
		{"book not present", []string{"verse", "-c", corpus, "ex", "1", "1"}, exitLookup},
		{"unknown book", []string{"verse", "-c", corpus, "zz", "1", "1"}, exitLookup},
		{"bad reference", []string{"ref", "-c", corpus, "Genesis"}, exitReference},
		{"non-contiguous document", []string{"info", "-c", bad}, exitLoad},
		{"missing file", []string{"info", "-c", filepath.Join(dir, "nope.json")}, exitLoad},
		{"no corpus", []string{"info"}, exitFailure},
		{"bad flag", []string{"verse", "--nope"}, exitFailure},
		{"bad log level", []string{"--log-level", "loud", "version"}, exitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runCLI(t, tt.args...)
			if code != tt.want {
				t.Errorf("exit code = %d, want %d (stderr %q)", code, tt.want, errOut)
			}
			if errOut == "" {
				t.Error("stderr is empty")
			}
		})
	}
}

func TestExitCodeMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, exitOK},
		{errors.New("other"), exitFailure},
		{&loadError{bioerrors.NewUnknownBook("zz")}, exitLoad},
		{bioerrors.NewUnknownBook("zz"), exitLookup},
		{bioerrors.NewReference("x", "bad", nil), exitReference},
		{&bioerrors.RangeError{Scope: bioerrors.ScopeVerses}, exitLookup},
	}
	for _, tt := range tests {
		if got := exitCode(tt.err); got != tt.want {
			t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestHelp(t *testing.T) {
	code, out, _ := runCLI(t, "--help")
	if code != 0 {
		t.Errorf("help exit code = %d, want 0", code)
	}
	if !strings.Contains(out, "bibleio") || !strings.Contains(out, "verse") {
		t.Errorf("help output = %q", out)
	}
}
