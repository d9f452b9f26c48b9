package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "text")
	}
	if cfg.Addr != "127.0.0.1:8080" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, "127.0.0.1:8080")
	}
	if cfg.ReadTimeout != 10*time.Second {
		t.Errorf("ReadTimeout = %v, want %v", cfg.ReadTimeout, 10*time.Second)
	}
	if len(cfg.Corpora) != 0 || len(cfg.AllowedOrigins) != 0 {
		t.Errorf("Corpora = %v, AllowedOrigins = %v, want empty", cfg.Corpora, cfg.AllowedOrigins)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BIBLEIO_LOG_LEVEL", "debug")
	t.Setenv("BIBLEIO_LOG_FORMAT", "json")
	t.Setenv("BIBLEIO_ADDR", ":9090")
	t.Setenv("BIBLEIO_CORPORA", "/data/kjv.json,/data/web.json.xz")
	t.Setenv("BIBLEIO_READ_TIMEOUT", "3s")
	t.Setenv("BIBLEIO_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" || cfg.Addr != ":9090" {
		t.Errorf("cfg = %+v", cfg)
	}
	if len(cfg.Corpora) != 2 || cfg.Corpora[1] != "/data/web.json.xz" {
		t.Errorf("Corpora = %v", cfg.Corpora)
	}
	if cfg.ReadTimeout != 3*time.Second {
		t.Errorf("ReadTimeout = %v, want 3s", cfg.ReadTimeout)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[0] != "https://a.example" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"unparseable duration", "soon", "parse env"},
		{"zero duration", "0s", "must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BIBLEIO_READ_TIMEOUT", tt.value)
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}
