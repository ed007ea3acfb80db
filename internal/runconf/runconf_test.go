package runconf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	content := `default_language: en
smil_audio_ref: audio/track.mp3
smil_page_ref: text/page.xhtml
`
	path := filepath.Join(t.TempDir(), "tala.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DefaultLanguage != "en" {
		t.Errorf("expected default_language en, got %q", cfg.DefaultLanguage)
	}
	if cfg.SMILAudioRef != "audio/track.mp3" {
		t.Errorf("unexpected smil_audio_ref: %q", cfg.SMILAudioRef)
	}
	if cfg.SMILPageRef != "text/page.xhtml" {
		t.Errorf("unexpected smil_page_ref: %q", cfg.SMILPageRef)
	}
}

func TestLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tala.yaml")
	if err := os.WriteFile(path, []byte("default_language: fr\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DefaultLanguage != "fr" {
		t.Errorf("expected default_language fr, got %q", cfg.DefaultLanguage)
	}
	if cfg.SMILAudioRef != "" {
		t.Errorf("unset key must keep its zero value, got %q", cfg.SMILAudioRef)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tala.yaml")
	if err := os.WriteFile(path, []byte(":\n  - not yaml"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}
