package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/hillchess/kinghill/game/engine"
	"github.com/hillchess/kinghill/game/service"
)

// MockSessionManager implements service.SessionManager for testing
type MockSessionManager struct {
	sessions map[string]*service.Session
	saves    int
}

func NewMockSessionManager() *MockSessionManager {
	return &MockSessionManager{
		sessions: make(map[string]*service.Session),
	}
}

func (m *MockSessionManager) Create(id string, config *engine.GameConfig) (*service.Session, error) {
	if id == "" {
		id = fmt.Sprintf("test_%d", len(m.sessions)+1)
	}
	if _, exists := m.sessions[id]; exists {
		return nil, errors.New("session already exists")
	}

	eng, err := engine.NewEngine(config)
	if err != nil {
		return nil, err
	}

	session := &service.Session{
		ID:             id,
		Engine:         eng,
		Config:         config,
		CreatedAt:      time.Now(),
		LastAccessedAt: time.Now(),
	}
	m.sessions[id] = session
	return session, nil
}

func (m *MockSessionManager) Get(id string) (*service.Session, error) {
	session, exists := m.sessions[id]
	if !exists {
		return nil, errors.New("session not found")
	}
	return session, nil
}

func (m *MockSessionManager) GetOrCreate(id string, config *engine.GameConfig) (*service.Session, error) {
	if session, err := m.Get(id); err == nil {
		return session, nil
	}
	return m.Create(id, config)
}

func (m *MockSessionManager) List() []*service.Session {
	sessions := make([]*service.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	return sessions
}

func (m *MockSessionManager) Delete(id string) error {
	if _, exists := m.sessions[id]; !exists {
		return errors.New("session not found")
	}
	delete(m.sessions, id)
	return nil
}

func (m *MockSessionManager) UpdateLastAccessed(id string) error {
	if session, exists := m.sessions[id]; exists {
		session.LastAccessedAt = time.Now()
		return nil
	}
	return errors.New("session not found")
}

func (m *MockSessionManager) Save(id string) error {
	m.saves++
	return nil
}

// MockConfigManager implements service.ConfigManager for testing
type MockConfigManager struct {
	configs map[string]*engine.GameConfig
}

func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		configs: map[string]*engine.GameConfig{},
	}
}

func (m *MockConfigManager) LoadConfig(name string) (*engine.GameConfig, error) {
	if name == "" || name == "default" {
		return m.GetDefault(), nil
	}
	if config, exists := m.configs[name]; exists {
		return config, nil
	}
	return nil, errors.New("configuration not found")
}

func (m *MockConfigManager) ListConfigs() ([]*service.ConfigInfo, error) {
	infos := []*service.ConfigInfo{{ConfigID: "default", Name: "King of the Hill"}}
	for name, config := range m.configs {
		infos = append(infos, &service.ConfigInfo{ConfigID: name, Name: config.Name})
	}
	return infos, nil
}

func (m *MockConfigManager) GetDefault() *engine.GameConfig {
	return engine.DefaultConfig()
}

func (m *MockConfigManager) SaveConfig(name string, config *engine.GameConfig) error {
	m.configs[name] = config
	return nil
}

func newTestService() (service.GameService, *MockSessionManager, *MockConfigManager) {
	sessions := NewMockSessionManager()
	configs := NewMockConfigManager()
	return service.NewGameService(sessions, configs), sessions, configs
}

func TestCreateSession_Default(t *testing.T) {
	svc, _, _ := newTestService()

	info, err := svc.CreateSession(context.Background(), "")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if info.ID == "" {
		t.Error("Expected a generated session ID")
	}
	if info.GameState.Turn != engine.White {
		t.Errorf("Expected white to move, got %s", info.GameState.Turn)
	}
	if info.GameState.Status != engine.InProgress {
		t.Errorf("Expected in_progress, got %s", info.GameState.Status)
	}
}

func TestCreateSession_UnknownConfig(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.CreateSession(context.Background(), "nope"); err == nil {
		t.Error("Expected error for unknown config")
	}
}

func TestMove_LegalAndIllegal(t *testing.T) {
	svc, sessions, _ := newTestService()
	ctx := context.Background()

	info, err := svc.CreateSession(ctx, "")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	result, err := svc.Move(ctx, info.ID, "e2", "e4")
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if !result.Success {
		t.Fatal("Expected e2-e4 to succeed")
	}
	if result.GameState.Turn != engine.Black {
		t.Errorf("Expected black to move, got %s", result.GameState.Turn)
	}
	if len(result.Events) == 0 || result.Events[0].Type != "move" {
		t.Errorf("Expected a move event, got %+v", result.Events)
	}
	if sessions.saves != 1 {
		t.Errorf("Expected session saved once, got %d", sessions.saves)
	}

	// An illegal move is a result, not an error.
	result, err = svc.Move(ctx, info.ID, "e4", "e6")
	if err != nil {
		t.Fatalf("Move returned error for illegal move: %v", err)
	}
	if result.Success {
		t.Error("Expected illegal move to report failure")
	}
	if result.Message == "" {
		t.Error("Expected the configured invalid-move message")
	}

	if _, err := svc.Move(ctx, "missing", "e2", "e4"); err == nil {
		t.Error("Expected error for unknown session")
	}
}

func TestMove_CaptureEvents(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	info, err := svc.CreateSession(ctx, "")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	moves := [][2]string{
		{"e2", "e4"}, {"d7", "d5"},
	}
	for _, m := range moves {
		if result, err := svc.Move(ctx, info.ID, m[0], m[1]); err != nil || !result.Success {
			t.Fatalf("Expected %s-%s to succeed", m[0], m[1])
		}
	}

	result, err := svc.Move(ctx, info.ID, "e4", "d5")
	if err != nil || !result.Success {
		t.Fatalf("Expected pawn capture to succeed: %v", err)
	}

	var captured bool
	for _, ev := range result.Events {
		if ev.Type == "capture" {
			captured = true
		}
	}
	if !captured {
		t.Errorf("Expected a capture event, got %+v", result.Events)
	}
}

func TestLegalMoves(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	info, err := svc.CreateSession(ctx, "")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	result, err := svc.LegalMoves(ctx, info.ID, "g1")
	if err != nil {
		t.Fatalf("LegalMoves failed: %v", err)
	}
	if len(result.Moves) != 2 {
		t.Errorf("Expected 2 knight moves, got %v", result.Moves)
	}
	if result.Piece.Type != engine.Knight {
		t.Errorf("Expected a knight, got %+v", result.Piece)
	}

	// Vacant square: empty list, no error.
	result, err = svc.LegalMoves(ctx, info.ID, "e5")
	if err != nil {
		t.Fatalf("LegalMoves failed: %v", err)
	}
	if len(result.Moves) != 0 {
		t.Errorf("Expected no moves for vacant square, got %v", result.Moves)
	}
}

func TestResetAndState(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	info, err := svc.CreateSession(ctx, "")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if _, err := svc.Move(ctx, info.ID, "e2", "e4"); err != nil {
		t.Fatal(err)
	}

	state, err := svc.Reset(ctx, info.ID)
	if err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if state.Turn != engine.White || state.MovesMade != 0 {
		t.Errorf("Unexpected state after reset: %+v", state)
	}

	state, err = svc.GetGameState(ctx, info.ID)
	if err != nil {
		t.Fatalf("GetGameState failed: %v", err)
	}
	if state.Status != engine.InProgress {
		t.Errorf("Expected in_progress, got %s", state.Status)
	}
}

func TestSessionLifecycle(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	info, err := svc.CreateSession(ctx, "")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	got, err := svc.GetSession(ctx, info.ID)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got.ID != info.ID {
		t.Errorf("Expected session %q, got %q", info.ID, got.ID)
	}

	list, err := svc.ListSessions(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("Expected one session, got %v (%v)", list, err)
	}

	if err := svc.DeleteSession(ctx, info.ID); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}
	if _, err := svc.GetSession(ctx, info.ID); err == nil {
		t.Error("Expected error for deleted session")
	}
}

func TestKingCaptureThroughService(t *testing.T) {
	svc, _, configs := newTestService()
	ctx := context.Background()

	config := engine.DefaultConfig()
	config.Layout = []string{
		"k.......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"R......K",
	}
	if err := configs.SaveConfig("endgame", config); err != nil {
		t.Fatal(err)
	}

	info, err := svc.CreateSession(ctx, "endgame")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	result, err := svc.Move(ctx, info.ID, "a1", "a8")
	if err != nil || !result.Success {
		t.Fatalf("Expected rook capture to succeed: %v", err)
	}
	if result.GameState.Status != engine.WhiteWon {
		t.Errorf("Expected white_won, got %s", result.GameState.Status)
	}

	var sawKingCaptured, sawGameOver bool
	for _, ev := range result.Events {
		switch ev.Type {
		case "king_captured":
			sawKingCaptured = true
		case "game_over":
			sawGameOver = true
		}
	}
	if !sawKingCaptured || !sawGameOver {
		t.Errorf("Expected king_captured and game_over events, got %+v", result.Events)
	}
}
