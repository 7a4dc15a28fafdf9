package session

import (
	"testing"

	"github.com/hillchess/kinghill/game/config"
	"github.com/hillchess/kinghill/game/engine"
)

func newTestPersistence(t *testing.T) *FilePersistence {
	t.Helper()
	configMgr, err := config.NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create config manager: %v", err)
	}
	fp, err := NewFilePersistence(t.TempDir(), configMgr)
	if err != nil {
		t.Fatalf("Failed to create file persistence: %v", err)
	}
	return fp
}

func TestFilePersistence_SaveLoadRoundTrip(t *testing.T) {
	fp := newTestPersistence(t)
	m := NewManagerWithPersistence(fp)

	session, err := m.Create("persisted", engine.DefaultConfig())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Play into a distinctive position, then save.
	if !session.Engine.MakeMove("e2", "e4") || !session.Engine.MakeMove("e7", "e5") {
		t.Fatal("Expected setup moves to succeed")
	}
	if err := m.Save("persisted"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := fp.Load("persisted")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.ID != "persisted" {
		t.Errorf("Expected ID persisted, got %q", loaded.ID)
	}
	if loaded.Engine.Turn() != engine.White {
		t.Errorf("Expected white to move in restored game, got %s", loaded.Engine.Turn())
	}
	if p := loaded.Engine.PieceAt("e4"); p != (engine.Piece{Type: engine.Pawn, Color: engine.White}) {
		t.Errorf("Expected restored white pawn on e4, got %+v", p)
	}
	if p := loaded.Engine.PieceAt("e5"); p != (engine.Piece{Type: engine.Pawn, Color: engine.Black}) {
		t.Errorf("Expected restored black pawn on e5, got %+v", p)
	}
}

func TestFilePersistence_ExistsDeleteList(t *testing.T) {
	fp := newTestPersistence(t)
	m := NewManagerWithPersistence(fp)

	if _, err := m.Create("one", engine.DefaultConfig()); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Create("two", engine.DefaultConfig()); err != nil {
		t.Fatal(err)
	}

	if !fp.Exists("one") || !fp.Exists("TWO") {
		t.Error("Expected both session files to exist")
	}
	if fp.Exists("three") {
		t.Error("Expected no file for unknown session")
	}

	ids, err := fp.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("Expected 2 persisted sessions, got %v", ids)
	}

	if err := fp.Delete("one"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if fp.Exists("one") {
		t.Error("Expected session file removed")
	}
	// Deleting a missing file is not an error.
	if err := fp.Delete("one"); err != nil {
		t.Errorf("Expected idempotent delete, got %v", err)
	}
}

func TestManagerWithPersistence_ReloadAfterRestart(t *testing.T) {
	configMgr, err := config.NewManager(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()

	fp, err := NewFilePersistence(dir, configMgr)
	if err != nil {
		t.Fatal(err)
	}
	first := NewManagerWithPersistence(fp)
	session, err := first.Create("restartable", configMgr.GetDefault())
	if err != nil {
		t.Fatal(err)
	}
	if !session.Engine.MakeMove("g1", "f3") {
		t.Fatal("Expected move to succeed")
	}
	if err := first.Save("restartable"); err != nil {
		t.Fatal(err)
	}

	// A fresh manager over the same directory sees the session.
	fp2, err := NewFilePersistence(dir, configMgr)
	if err != nil {
		t.Fatal(err)
	}
	second := NewManagerWithPersistence(fp2)

	restored, err := second.Get("restartable")
	if err != nil {
		t.Fatalf("Expected persisted session to load, got %v", err)
	}
	if restored.Engine.Turn() != engine.Black {
		t.Errorf("Expected black to move in restored game, got %s", restored.Engine.Turn())
	}
	if restored.Engine.PieceAt("f3").Type != engine.Knight {
		t.Error("Expected restored knight on f3")
	}
}

func TestFilePersistence_LoadMissing(t *testing.T) {
	fp := newTestPersistence(t)
	if _, err := fp.Load("nope"); err != ErrSessionNotFound {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}
