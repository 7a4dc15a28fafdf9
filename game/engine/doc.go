// Package engine provides the core rules engine for King of the Hill
// chess.
//
// The engine package implements the game mechanics including:
//   - Board storage, algebraic notation, and the single move primitive
//   - Per-piece move legality with path clearance for sliding pieces
//   - Turn order and the two win conditions (king capture, king on hill)
//   - Game state snapshots and restoration for persistence
//   - Configuration loading and validation
//
// Core Types:
//
// The Engine interface defines the main contract for game operations,
// implemented by GameEngine. GameState is a serializable snapshot of a
// game, while GameConfig defines the starting layout, hill squares, and
// UI messages, loaded from JSON files or built in via DefaultConfig.
//
// Usage:
//
//	gameEngine := engine.NewEngineWithDefaults()
//
//	// Play a move
//	ok := gameEngine.MakeMove("e2", "e4")
//	state := gameEngine.GetState()
//
// Game Rules:
//
// Pieces move as in standard chess, but there is no check, checkmate,
// castling, en passant, or promotion. A game is won either by capturing
// the opposing king or by moving one's own king onto a hill square
// (d4, e4, d5, e5 in the default configuration). White moves first.
// Illegal moves are refused with a plain false and never touch the
// board.
package engine
