package cli

import (
	"testing"

	"tala/internal/runconf"
	"tala/internal/syncmap"
)

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		path     string
		want     syncmap.Format
		wantErr  bool
	}{
		{"from extension", "", "map.srt", syncmap.FormatSRT, false},
		{"explicit wins", "vtt", "map.srt", syncmap.FormatVTT, false},
		{"explicit case folded", "JSON", "map.srt", syncmap.FormatJSON, false},
		{"unknown explicit", "docx", "map.srt", "", true},
		{"unknown extension", "", "map.docx", "", true},
		{"no extension", "", "map", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveFormat(tt.explicit, tt.path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		lang    string
		want    string
		wantErr bool
	}{
		{"", "", false},
		{"en", "en", false},
		{"EN", "en", false},
		{"es-419", "es-419", false},
		{"not a tag", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			got, err := normalizeLanguage(tt.lang)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("normalizeLanguage(%q) = %q, want %q", tt.lang, got, tt.want)
			}
		})
	}
}

func TestBuildParameters(t *testing.T) {
	rconf = runconf.Default()

	params, err := buildParameters("en", "SRT", "a.mp3", "")
	if err != nil {
		t.Fatalf("buildParameters failed: %v", err)
	}
	if params[syncmap.ParamLanguage] != "en" {
		t.Errorf("unexpected language: %q", params[syncmap.ParamLanguage])
	}
	if params[syncmap.ParamOutputFormat] != "srt" {
		t.Errorf("output format must be lower cased, got %q", params[syncmap.ParamOutputFormat])
	}
	if params[syncmap.ParamSMILAudioRef] != "a.mp3" {
		t.Errorf("unexpected audio ref: %q", params[syncmap.ParamSMILAudioRef])
	}
	if _, ok := params[syncmap.ParamSMILPageRef]; ok {
		t.Error("empty values must be left out of the parameter set")
	}
}

func TestBuildParametersConfigDefaultLanguage(t *testing.T) {
	rconf = &runconf.Config{DefaultLanguage: "fr"}
	defer func() { rconf = runconf.Default() }()

	params, err := buildParameters("", "", "", "")
	if err != nil {
		t.Fatalf("buildParameters failed: %v", err)
	}
	if params[syncmap.ParamLanguage] != "fr" {
		t.Errorf("expected config default language fr, got %q", params[syncmap.ParamLanguage])
	}
}
