package session

import (
	"time"

	"github.com/hillchess/kinghill/game/engine"
	"github.com/hillchess/kinghill/game/service"
)

// SessionPersistence defines the storage operations for saving and
// restoring sessions across server restarts.
type SessionPersistence interface {
	Save(session *service.Session) error
	Load(id string) (*service.Session, error)
	Delete(id string) error
	Exists(id string) bool
	List() ([]string, error)
}

// PersistedSessionData is the JSON shape written to disk for each
// session. The config is stored by ID and re-resolved on load; the
// game itself is stored as an engine snapshot.
type PersistedSessionData struct {
	ID             string            `json:"id"`
	ConfigName     string            `json:"config_name"`
	CreatedAt      time.Time         `json:"created_at"`
	LastAccessedAt time.Time         `json:"last_accessed_at"`
	GameState      *engine.GameState `json:"game_state"`
}
