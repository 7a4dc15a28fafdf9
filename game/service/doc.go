// Package service provides the business logic layer for King of the
// Hill chess.
//
// The service package implements:
//   - Multi-session game management
//   - Move processing through the rules engine
//   - Advisory legal-move queries for UI hinting
//   - Variant configuration loading
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game
// operations. SessionManager handles session creation, retrieval, and
// lifecycle. ConfigManager manages variant configuration loading.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP, WebSocket,
// MCP, CLI) and the rules engine, providing session isolation and the
// serialization the engine itself does not: the engine is single-caller
// by design, so every engine access goes through the service's lock.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	info, err := gameService.CreateSession(ctx, "")
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := gameService.Move(ctx, info.ID, "e2", "e4")
package service
