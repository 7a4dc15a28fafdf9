package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/hillchess/kinghill/game/engine"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}
	return m
}

func TestManager_GetDefault(t *testing.T) {
	m := newTestManager(t)

	config := m.GetDefault()
	if config == nil {
		t.Fatal("Expected a default config")
	}
	if err := engine.ValidateGameConfig(config); err != nil {
		t.Errorf("Default config failed validation: %v", err)
	}
}

func TestManager_LoadConfig_DefaultNames(t *testing.T) {
	m := newTestManager(t)

	for _, name := range []string{"", "default"} {
		config, err := m.LoadConfig(name)
		if err != nil {
			t.Errorf("LoadConfig(%q) failed: %v", name, err)
			continue
		}
		if config != m.GetDefault() {
			t.Errorf("LoadConfig(%q) did not return the default config", name)
		}
	}
}

func TestManager_LoadConfig_NotFound(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.LoadConfig("missing"); err != ErrConfigNotFound {
		t.Errorf("Expected ErrConfigNotFound, got %v", err)
	}
}

func TestManager_SaveAndLoadConfig(t *testing.T) {
	m := newTestManager(t)

	config := engine.DefaultConfig()
	config.Name = "Mirrored Hill"
	config.HillSquares = []string{"a1", "h1", "a8", "h8"}

	if err := m.SaveConfig("mirrored", config); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := m.LoadConfig("mirrored")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Name != "Mirrored Hill" {
		t.Errorf("Expected saved name, got %q", loaded.Name)
	}
	if len(loaded.HillSquares) != 4 {
		t.Errorf("Expected 4 hill squares, got %v", loaded.HillSquares)
	}
}

func TestManager_SaveConfig_Invalid(t *testing.T) {
	m := newTestManager(t)

	config := engine.DefaultConfig()
	config.Layout[0] = "bad"
	if err := m.SaveConfig("broken", config); err == nil {
		t.Error("Expected error saving invalid config")
	}

	if err := m.SaveConfig("default", engine.DefaultConfig()); err == nil {
		t.Error("Expected error saving over the reserved default name")
	}
}

func TestManager_ListConfigs(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	// Write one valid and one invalid config file directly.
	valid := engine.DefaultConfig()
	valid.Name = "Corner Hill"
	valid.HillSquares = []string{"a1"}
	data, _ := json.Marshal(valid)
	if err := os.WriteFile(filepath.Join(dir, "corner.json"), data, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "junk.json"), []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}

	configs, err := m.ListConfigs()
	if err != nil {
		t.Fatalf("ListConfigs failed: %v", err)
	}

	// The built-in default plus the one valid file.
	if len(configs) != 2 {
		t.Fatalf("Expected 2 configs, got %d", len(configs))
	}
	if configs[0].ConfigID != "default" {
		t.Errorf("Expected default first, got %q", configs[0].ConfigID)
	}
	if configs[1].ConfigID != "corner" {
		t.Errorf("Expected corner config, got %q", configs[1].ConfigID)
	}
}

func TestManager_LoadConfig_Caches(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	config := engine.DefaultConfig()
	config.Name = "Cached"
	data, _ := json.Marshal(config)
	path := filepath.Join(dir, "cached.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := m.LoadConfig("cached"); err != nil {
		t.Fatalf("First load failed: %v", err)
	}

	// Removing the file must not affect the cached copy.
	os.Remove(path)
	if _, err := m.LoadConfig("cached"); err != nil {
		t.Errorf("Expected cached load to succeed, got %v", err)
	}
}
