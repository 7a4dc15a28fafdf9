// Package api provides the REST interface for King of the Hill chess.
//
// The server exposes session management, the single mutating move
// operation, read-only state and advisory legal-move queries, and
// variant configuration endpoints. Successful moves are also pushed to
// WebSocket viewers through the hub.
//
// Routes:
//
//	POST   /api/sessions                      create a session
//	GET    /api/sessions                      list sessions
//	GET    /api/sessions/{id}                 session details
//	DELETE /api/sessions/{id}                 delete a session
//	GET    /api/sessions/{id}/state           current game state
//	POST   /api/sessions/{id}/move            play a move {"from","to"}
//	GET    /api/sessions/{id}/legal-moves     advisory destinations ?square=e2
//	POST   /api/sessions/{id}/reset           restart the game
//	GET    /api/configs                       list variant configs
//	POST   /api/configs                       save a variant config
//	GET    /api/configs/{name}                fetch a variant config
//	GET    /ws?session_id=...                 websocket board updates
package api
