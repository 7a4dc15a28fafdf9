package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hillchess/kinghill/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// sessionInfo builds the API view of a session.
func sessionInfo(sess *Session, configID string) *SessionInfo {
	return &SessionInfo{
		ID:             sess.ID,
		ConfigName:     configID,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		GameState:      sess.Engine.GetState(),
		GameConfig:     sess.Config,
	}
}

// getConfigID maps a config display name back to its config_id for
// consistent API responses.
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

// CreateSession creates a new game session using the named variant
// configuration, or the built-in default when configName is empty.
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			availableConfigs, listErr := s.configs.ListConfigs()
			if listErr == nil && len(availableConfigs) > 0 {
				var configIDs []string
				for _, cfg := range availableConfigs {
					configIDs = append(configIDs, cfg.ConfigID)
				}
				return nil, fmt.Errorf("config %q not available (%v). Available configs: %v", configName, err, configIDs)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Let the session manager generate an ID.
	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}
	return sessionInfo(session, configID), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	return sessionInfo(session, s.getConfigID(session.Config.Name)), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, sessionInfo(sess, s.getConfigID(sess.Config.Name)))
	}
	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.Delete(sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Move plays a single move in a session. An illegal move is not an
// error: the result carries Success=false and the configured
// invalid-move message, and the game is untouched. Errors are reserved
// for unknown sessions.
func (s *gameServiceImpl) Move(ctx context.Context, sessionID, from, to string) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	eng := session.Engine

	// Remember the destination occupant so a capture can be reported.
	target := eng.PieceAt(to)

	if !eng.MakeMove(from, to) {
		return &MoveResult{
			Success:   false,
			From:      from,
			To:        to,
			GameState: eng.GetState(),
			Message:   session.Config.Messages.InvalidMove,
		}, nil
	}

	now := time.Now()
	events := []GameEvent{{Type: "move", Square: to, Timestamp: now}}
	if !target.IsEmpty() {
		events = append(events, GameEvent{Type: "capture", Square: to, Timestamp: now})
		if target.Type == engine.King {
			events = append(events, GameEvent{
				Type:      "king_captured",
				Message:   fmt.Sprintf(session.Config.Messages.KingCaptured, target.Color),
				Square:    to,
				Timestamp: now,
			})
		}
	}

	state := eng.GetState()
	if state.Status.Terminal() {
		if target.Type != engine.King {
			events = append(events, GameEvent{
				Type:      "king_on_hill",
				Message:   fmt.Sprintf(session.Config.Messages.KingOnHill, winnerColor(state.Status)),
				Square:    to,
				Timestamp: now,
			})
		}
		events = append(events, GameEvent{Type: "game_over", Message: state.Message, Timestamp: now})
	}

	s.sessions.Save(sessionID)

	return &MoveResult{
		Success:   true,
		From:      from,
		To:        to,
		GameState: state,
		Message:   state.Message,
		Events:    events,
	}, nil
}

// LegalMoves returns the advisory destination list for a square. It is
// read-only and valid regardless of whose turn it is.
func (s *gameServiceImpl) LegalMoves(ctx context.Context, sessionID, square string) (*LegalMovesResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	return &LegalMovesResult{
		Square: square,
		Piece:  session.Engine.PieceAt(square),
		Moves:  session.Engine.LegalMoves(square),
	}, nil
}

// Reset restarts a session's game from its configured starting position
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	state := session.Engine.Reset()
	s.sessions.Save(sessionID)
	return state, nil
}

// GetGameState returns the current state of a session's game
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	return session.Engine.GetState(), nil
}

// ListConfigs returns all available variant configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a variant configuration by name
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig validates and stores a variant configuration
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}

// winnerColor extracts the winning side from a terminal status.
func winnerColor(status engine.GameStatus) engine.Color {
	if status == engine.WhiteWon {
		return engine.White
	}
	return engine.Black
}
