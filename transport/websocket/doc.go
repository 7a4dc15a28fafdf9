// Package websocket provides real-time board updates for King of the
// Hill chess.
//
// The hub tracks connected viewers per game session and pushes a fresh
// GameState to every viewer after each successful move, plus custom
// events such as reset. Clients are read-only: the WebSocket carries no
// game commands, which all go through the REST API.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// After a successful move:
//	hub.BroadcastToSession(sessionID, state)
package websocket
