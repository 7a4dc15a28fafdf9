package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName == "" {
		t.Error("AppName should not be empty")
	}
}

func TestFlagDefaults(t *testing.T) {
	if *port <= 0 || *port > 65535 {
		t.Errorf("Invalid default port: %d", *port)
	}

	if *host == "" {
		t.Error("Host should have a default value")
	}

	if *configDir == "" {
		t.Error("Config directory should have a default value")
	}

	if *sessionsDir == "" {
		t.Error("Sessions directory should have a default value")
	}
}

func TestInitializeServices(t *testing.T) {
	originalConfigDir := *configDir
	originalSessionsDir := *sessionsDir
	*configDir = t.TempDir()
	*sessionsDir = t.TempDir()
	defer func() {
		*configDir = originalConfigDir
		*sessionsDir = originalSessionsDir
	}()

	gameService, err := initializeServices()
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}

	if gameService == nil {
		t.Fatal("Expected game service to be initialized")
	}
}

func TestInitializeServices_InvalidConfigDir(t *testing.T) {
	// A path that descends through a regular file cannot be created.
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	originalConfigDir := *configDir
	*configDir = filepath.Join(blocker, "configs")
	defer func() { *configDir = originalConfigDir }()

	if _, err := initializeServices(); err == nil {
		t.Error("Expected error for unusable config directory")
	}
}
