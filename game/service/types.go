package service

import (
	"time"

	"github.com/hillchess/kinghill/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// MoveResult contains the result of a move operation. Success mirrors
// the engine's boolean verdict: a refused move carries no reason code,
// only the configured invalid-move message.
type MoveResult struct {
	Success   bool              `json:"success"`
	From      string            `json:"from"`
	To        string            `json:"to"`
	GameState *engine.GameState `json:"game_state"`
	Message   string            `json:"message,omitempty"`
	Events    []GameEvent       `json:"events,omitempty"`
}

// LegalMovesResult contains the advisory list of destinations for a
// single square. An empty or unknown square yields an empty list, not
// an error.
type LegalMovesResult struct {
	Square string       `json:"square"`
	Piece  engine.Piece `json:"piece"`
	Moves  []string     `json:"moves"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string    `json:"type"` // "move", "capture", "king_on_hill", "king_captured", "game_over", "reset"
	Message   string    `json:"message,omitempty"`
	Square    string    `json:"square,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ConfigInfo provides information about a variant configuration
type ConfigInfo struct {
	Filename    string   `json:"filename,omitempty"`
	ConfigID    string   `json:"config_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	HillSquares []string `json:"hill_squares,omitempty"`
}
