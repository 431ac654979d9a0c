package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv(BaseURLEnv, "")
	dir := t.TempDir()

	cfg, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Dir != dir {
		t.Errorf("expected dir %s, got %s", dir, cfg.Dir)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("expected base url %s, got %s", DefaultBaseURL, cfg.BaseURL)
	}
	if cfg.Timeout != 0 {
		t.Errorf("expected no timeout, got %s", cfg.Timeout)
	}
}

func TestNew_ConfigFile(t *testing.T) {
	t.Setenv(BaseURLEnv, "")
	dir := t.TempDir()
	content := `{
	// remote store
	"base_url": "https://todo.example.com/api",
	"timeout": "3s",
}`
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseURL != "https://todo.example.com/api/" {
		t.Errorf("expected normalized base url, got %s", cfg.BaseURL)
	}
	if cfg.Timeout != 3*time.Second {
		t.Errorf("expected 3s timeout, got %s", cfg.Timeout)
	}
}

func TestNew_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := `{"base_url": "https://file.example.com/api/"}`
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(BaseURLEnv, "http://env.example.com:9000/api/")

	cfg, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseURL != "http://env.example.com:9000/api/" {
		t.Errorf("expected env base url, got %s", cfg.BaseURL)
	}
}

func TestNew_InvalidConfigFile(t *testing.T) {
	t.Setenv(BaseURLEnv, "")
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte(`{"base_url": `), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := New(dir); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestNew_InvalidTimeout(t *testing.T) {
	t.Setenv(BaseURLEnv, "")
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte(`{"timeout": "soon"}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := New(dir); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestSetBaseURL(t *testing.T) {
	cfg := &Config{}

	if err := cfg.SetBaseURL("localhost:8000"); err == nil {
		t.Error("expected error for url without scheme")
	}
	if err := cfg.SetBaseURL("ftp://example.com/"); err == nil {
		t.Error("expected error for non-http scheme")
	}
	if err := cfg.SetBaseURL(" http://127.0.0.1:8000/api "); err != nil {
		t.Fatal(err)
	}
	if cfg.BaseURL != "http://127.0.0.1:8000/api/" {
		t.Errorf("expected trimmed and slash-terminated url, got %q", cfg.BaseURL)
	}
}

func TestSetBaseURL_RejectsQueryAndFragment(t *testing.T) {
	for _, raw := range []string{
		"http://h/api?x=1",
		"http://h/api#frag",
		"http://h/api/?",
	} {
		cfg := &Config{BaseURL: DefaultBaseURL}
		if err := cfg.SetBaseURL(raw); err == nil {
			t.Errorf("expected error for %q, got base %q", raw, cfg.BaseURL)
		}
		if cfg.BaseURL != DefaultBaseURL {
			t.Errorf("expected base url unchanged after %q, got %q", raw, cfg.BaseURL)
		}
	}
}

func TestSetBaseURL_Normalizes(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"http://h", "http://h/"},
		{"http://h/api", "http://h/api/"},
		{"https://h:8443/api/", "https://h:8443/api/"},
		{"http://h/my%20api", "http://h/my%20api/"},
	}

	for _, tt := range tests {
		cfg := &Config{}
		if err := cfg.SetBaseURL(tt.raw); err != nil {
			t.Errorf("%q: unexpected error %v", tt.raw, err)
			continue
		}
		if cfg.BaseURL != tt.expected {
			t.Errorf("%q: expected %q, got %q", tt.raw, tt.expected, cfg.BaseURL)
		}
	}
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	if got := DefaultConfigDir(); got != filepath.Join("/tmp/xdg", AppName) {
		t.Errorf("expected xdg path, got %s", got)
	}
}

func TestLogger_NilDiscards(t *testing.T) {
	cfg := &Config{}
	if cfg.Logger() == nil {
		t.Fatal("expected non-nil logger")
	}
}
