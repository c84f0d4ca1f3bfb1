package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	rootassets "github.com/doeshing/shellpick/assets"
	"github.com/doeshing/shellpick/internal/domain"
)

func TestLoadMissingFileReturnsDefaultsWithoutWriting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	loader := NewFileLoader(path)

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("Load() should not create %s, stat err = %v", path, err)
	}
}

func TestLoadHydratesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := "discovery:\n  strategy: windows\n  catalog: [nu.exe]\nhistory:\n  enabled: false\n"
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Discovery.Strategy != "windows" {
		t.Errorf("strategy = %q, want windows", cfg.Discovery.Strategy)
	}
	if cfg.Discovery.RegistryFile != domain.DefaultRegistryFile || cfg.Discovery.PathEnv != domain.DefaultPathEnv {
		t.Errorf("defaults not hydrated: %+v", cfg.Discovery)
	}
	if diff := cmp.Diff([]string{"nu.exe"}, cfg.Discovery.Catalog); diff != "" {
		t.Errorf("catalog mismatch (-want +got):\n%s", diff)
	}
	if cfg.History.Enabled {
		t.Error("history.enabled should stay false")
	}
	if cfg.Session.Term != domain.DefaultSessionTerm {
		t.Errorf("session.term = %q, want default", cfg.Session.Term)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("discovery: [\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileLoader(path).Load(context.Background()); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestPathHonoursEnvironment(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv(EnvConfigPath, custom)
	if got := NewFileLoader("").Path(); got != custom {
		t.Errorf("Path() = %q, want %q", got, custom)
	}
	explicit := filepath.Join(t.TempDir(), "explicit.yaml")
	if got := NewFileLoader(explicit).Path(); got != explicit {
		t.Errorf("Path() = %q, want %q", got, explicit)
	}
}

func TestInitWritesDefaultsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dir", "config.yaml")
	loader := NewFileLoader(path)

	_, written, err := loader.Init(false)
	if err != nil || !written {
		t.Fatalf("Init() = written %v, err %v", written, err)
	}
	if err := os.WriteFile(path, []byte("history:\n  retain_days: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, written, err := loader.Init(false); err != nil || written {
		t.Fatalf("second Init() = written %v, err %v; want kept file", written, err)
	}
	if _, written, err := loader.Init(true); err != nil || !written {
		t.Fatalf("forced Init() = written %v, err %v", written, err)
	}

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("Init() defaults differ from DefaultConfig (-want +got):\n%s", diff)
	}
}

func TestEmbeddedDefaultsMatchDefaultConfig(t *testing.T) {
	var cfg domain.Config
	if err := yaml.Unmarshal(rootassets.DefaultConfigYAML, &cfg); err != nil {
		t.Fatalf("embedded config invalid: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("embedded defaults drifted (-want +got):\n%s", diff)
	}
}
