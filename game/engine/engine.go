package engine

import (
	"fmt"
	"strings"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	SetState(state *GameState) error
	Reset() *GameState
	Status() GameStatus
	Turn() Color

	// Board queries
	Grid() Grid
	PieceAt(square string) Piece

	// Move operations
	MakeMove(from, to string) bool
	LegalMoves(square string) []string

	// Configuration
	Config() *GameConfig
}

// GameEngine implements the Engine interface. It owns the board, the
// side to move, and the game status, and is the only component that
// mutates any of them. It performs no internal locking; callers that
// share one engine across goroutines must serialize access (the session
// layer does this).
type GameEngine struct {
	board  *Board
	turn   Color
	status GameStatus
	config *GameConfig
	hill   map[string]bool
	moves  int
}

// NewEngine creates a new game engine with the provided configuration.
func NewEngine(config *GameConfig) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}
	board, err := NewBoardFromLayout(config.Layout)
	if err != nil {
		return nil, err
	}
	return &GameEngine{
		board:  board,
		turn:   White,
		status: InProgress,
		config: config,
		hill:   hillSet(config.HillSquares),
	}, nil
}

// NewEngineWithDefaults creates a new game engine with the built-in
// King of the Hill configuration.
func NewEngineWithDefaults() *GameEngine {
	e, err := NewEngine(DefaultConfig())
	if err != nil {
		// The default config always validates.
		panic(err)
	}
	return e
}

// Turn returns the side to move. White always moves first.
func (e *GameEngine) Turn() Color {
	return e.turn
}

// Status returns the current game status. Once the status leaves
// InProgress it never changes again.
func (e *GameEngine) Status() GameStatus {
	return e.status
}

// Grid returns a copy of the current board contents for rendering.
func (e *GameEngine) Grid() Grid {
	return e.board.Grid()
}

// PieceAt returns the occupant of a square, or the empty piece for a
// vacant or malformed square.
func (e *GameEngine) PieceAt(square string) Piece {
	return e.board.PieceAtSquare(strings.ToLower(square))
}

// LegalMoves returns the advisory list of destinations for the piece at
// the given square. It is a read-only query for UI hinting: it ignores
// whose turn it is, never changes the game, and returns an empty list
// when the square is vacant or malformed.
func (e *GameEngine) LegalMoves(square string) []string {
	return e.board.LegalMoves(strings.ToLower(square))
}

// Config returns the configuration the engine was created with.
func (e *GameEngine) Config() *GameConfig {
	return e.config
}

// MakeMove attempts to move the piece at from to to. It returns false,
// leaving the game untouched, if the game is over, either square is
// malformed, the origin is empty, the piece is not the mover's, or the
// move breaks the piece's movement rules. There is deliberately no
// reason code: the engine is a legality oracle, not a diagnostic
// service.
//
// On success the board is mutated (captures happen implicitly by
// overwrite), win conditions are evaluated, and the turn passes to the
// opponent if the game continues. A king reaching a hill square wins
// immediately; that check runs before the king-capture check. The
// return value reports only that the move was played, not whether it
// ended the game.
func (e *GameEngine) MakeMove(from, to string) bool {
	if e.status.Terminal() {
		return false
	}

	from = strings.ToLower(from)
	to = strings.ToLower(to)
	if !WithinBounds(from) || !WithinBounds(to) {
		return false
	}

	piece := e.board.PieceAtSquare(from)
	if piece.IsEmpty() {
		return false
	}
	if piece.Color != e.turn {
		return false
	}
	if !e.board.IsLegalMove(from, to) {
		return false
	}

	e.board.MovePiece(from, to)
	e.moves++

	// Win condition: mover's king reaches the hill.
	if piece.Type == King && e.hill[to] {
		e.status = wonBy(piece.Color)
		return true
	}

	// Win condition: a king was captured.
	if !e.board.KingExists(White) {
		e.status = BlackWon
	} else if !e.board.KingExists(Black) {
		e.status = WhiteWon
	}

	if e.status == InProgress {
		e.turn = e.turn.Opponent()
	}
	return true
}

// GetState returns a snapshot of the current game state.
func (e *GameEngine) GetState() *GameState {
	state := &GameState{
		Grid:       e.board.Grid(),
		Turn:       e.turn,
		Status:     e.status,
		MovesMade:  e.moves,
		ConfigName: e.config.Name,
	}
	switch e.status {
	case WhiteWon:
		state.Message = e.config.Messages.WhiteWins
	case BlackWon:
		state.Message = e.config.Messages.BlackWins
	}
	return state
}

// SetState restores a previously captured snapshot. It is used by the
// persistence layer when reloading a session from disk.
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	switch state.Turn {
	case White, Black:
	default:
		return fmt.Errorf("invalid turn %q", state.Turn)
	}
	switch state.Status {
	case InProgress, WhiteWon, BlackWon:
	default:
		return fmt.Errorf("invalid status %q", state.Status)
	}
	e.board = &Board{grid: state.Grid}
	e.turn = state.Turn
	e.status = state.Status
	e.moves = state.MovesMade
	return nil
}

// Reset discards the game and starts over from the configured starting
// position, white to move.
func (e *GameEngine) Reset() *GameState {
	board, err := NewBoardFromLayout(e.config.Layout)
	if err != nil {
		// The layout validated at construction time.
		panic(err)
	}
	e.board = board
	e.turn = White
	e.status = InProgress
	e.moves = 0
	return e.GetState()
}
