// Package mcp provides the Model Context Protocol interface for King of
// the Hill chess.
//
// The package implements a thin MCP client that proxies every tool call
// to the REST API, so the API server stays the single authority over
// game state. It supports stdio transport for local MCP clients and can
// be mounted as an HTTP endpoint for remote integration.
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - game_state: Current board, turn, and status with a text board
//   - move: Play a move by origin and destination square
//   - legal_moves: Advisory destination list for one square
//   - reset_game: Reset to the starting position
//   - create_session: Create a session with optional variant config
//   - get_session: Get specific session details
//   - list_sessions: List all active sessions
//   - list_configs: List available variant configurations
//   - game_instructions: Full rules of the variant
//   - describe_square: Occupant and hill membership of one square
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
package mcp
