package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Input.Dir != DefaultInvoicesDir {
		t.Errorf("Input.Dir = %q, want %q", cfg.Input.Dir, DefaultInvoicesDir)
	}
	if cfg.Output.Dir != DefaultOutputDir {
		t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, DefaultOutputDir)
	}
	if cfg.Style.Path != DefaultStylePath {
		t.Errorf("Style.Path = %q, want %q", cfg.Style.Path, DefaultStylePath)
	}
	if cfg.Debug.Path != DefaultDebugPath {
		t.Errorf("Debug.Path = %q, want %q", cfg.Debug.Path, DefaultDebugPath)
	}
	if cfg.Footer.Enabled {
		t.Error("Footer.Enabled = true, want false")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "test.yaml")
		content := `input:
  dir: "billing/records"
footer:
  enabled: true
  position: "center"
  date: "auto"
`
		if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Input.Dir != "billing/records" {
			t.Errorf("Input.Dir = %q, want %q", cfg.Input.Dir, "billing/records")
		}
		if !cfg.Footer.Enabled {
			t.Error("Footer.Enabled = false, want true")
		}
		if cfg.Footer.Position != "center" {
			t.Errorf("Footer.Position = %q, want %q", cfg.Footer.Position, "center")
		}
	})

	t.Run("absent fields keep defaults", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "partial.yaml")
		if err := os.WriteFile(configPath, []byte("output:\n  dir: \"generated\"\n"), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Output.Dir != "generated" {
			t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, "generated")
		}
		if cfg.Input.Dir != DefaultInvoicesDir {
			t.Errorf("Input.Dir = %q, want default %q", cfg.Input.Dir, DefaultInvoicesDir)
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "invalid.yaml")
		if err := os.WriteFile(configPath, []byte("input:\n  dir: [unclosed"), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "unknown.yaml")
		content := `input:
  dir: "invoices"
unknownField: "should fail"
`
		if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("invalid footer position fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Footer.Position = "top"
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), "footer.position") {
			t.Errorf("error = %v, want footer.position error", err)
		}
	})

	t.Run("overlong field fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Footer.Text = strings.Repeat("x", MaxTextLength+1)
		if err := cfg.Validate(); !errors.Is(err, ErrFieldTooLong) {
			t.Errorf("error = %v, want ErrFieldTooLong", err)
		}
	})

	t.Run("default config is valid", func(t *testing.T) {
		if err := DefaultConfig().Validate(); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})
}
