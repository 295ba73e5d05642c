package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/bsviz/internal/search"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.Array) != 11 {
		t.Errorf("expected 11 elements, got %d", len(cfg.Array))
	}
	if cfg.Target != 72 {
		t.Errorf("expected target 72, got %f", cfg.Target)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}

	cfg.Array[0] = 1000
	if DefaultArray[0] != 2 {
		t.Error("DefaultConfig must copy DefaultArray")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown format")
	}

	cfg = DefaultConfig()
	cfg.Array = []float64{3, 1}
	if err := cfg.Validate(); !errors.Is(err, search.ErrUnsorted) {
		t.Errorf("expected ErrUnsorted, got %v", err)
	}
}

func TestValidate_Tags(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr []error
		wantMsg string
	}{
		{"unknown format", func(c *Config) { c.Format = "xml" }, []error{ErrInvalidConfig}, `format "xml" (want one of text json csv)`},
		{"empty format", func(c *Config) { c.Format = "" }, []error{ErrInvalidConfig}, "format"},
		{"unknown theme", func(c *Config) { c.Theme = "neon" }, []error{ErrInvalidConfig}, `theme "neon"`},
		{"empty array", func(c *Config) { c.Array = nil }, []error{ErrInvalidConfig, search.ErrEmptyArray}, "array is empty"},
		{"unsorted array", func(c *Config) { c.Array = []float64{2, 1} }, []error{search.ErrUnsorted}, ""},
		{"empty theme falls back", func(c *Config) { c.Theme = "" }, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if len(tt.wantErr) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			for _, want := range tt.wantErr {
				if !errors.Is(err, want) {
					t.Errorf("expected %v in chain, got %v", want, err)
				}
			}
			if tt.wantMsg != "" && (err == nil || !strings.Contains(err.Error(), tt.wantMsg)) {
				t.Errorf("error %v does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bsviz.yaml")

	cfg := DefaultConfig()
	cfg.Array = []float64{1, 2, 3}
	cfg.Target = 3
	cfg.Theme = "ocean"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(got.Array) != 3 || got.Target != 3 || got.Theme != "ocean" {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("target: 16\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Target != 16 {
		t.Errorf("expected target 16, got %f", cfg.Target)
	}
	if len(cfg.Array) != len(DefaultArray) || cfg.Format != DefaultFormat {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadOver_Preset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte("theme: sunset\n"), 0644); err != nil {
		t.Fatal(err)
	}

	base := GetPreset("single")
	cfg, err := LoadOver(base, path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Theme != "sunset" || len(cfg.Array) != 1 || cfg.Target != 5 {
		t.Errorf("preset values lost: %+v", cfg)
	}
	if base.Theme != DefaultTheme {
		t.Error("LoadOver modified base")
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("array: [1, 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestParseValues(t *testing.T) {
	tests := []struct {
		in      string
		want    []float64
		wantErr bool
	}{
		{"2,5,8", []float64{2, 5, 8}, false},
		{" 1  2\t3 ", []float64{1, 2, 3}, false},
		{"-1.5, 0, 2e2", []float64{-1.5, 0, 200}, false},
		{"1;2", []float64{1, 2}, false},
		{"", nil, true},
		{"1, x", nil, true},
	}

	for _, tt := range tests {
		got, err := ParseValues(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseValues(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("ParseValues(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ParseValues(%q) = %v, want %v", tt.in, got, tt.want)
				break
			}
		}
	}
}

func TestReadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.txt")
	content := "# sorted input\n2\n5 8 # inline\n12,16\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadValues(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(got) != 5 || got[0] != 2 || got[4] != 16 {
		t.Errorf("unexpected values: %v", got)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("single")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if len(cfg.Array) != 1 || cfg.Target != 5 {
		t.Errorf("unexpected preset: %+v", cfg)
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("preset should carry defaults, got theme %q", cfg.Theme)
	}

	cfg.Array[0] = 42
	if Presets["single"].Array[0] != 5 {
		t.Error("GetPreset must return a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresets_AreValid(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d names, got %d", len(Presets), len(names))
	}
	for _, name := range names {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}
