package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hillchess/kinghill/game/engine"
	"github.com/hillchess/kinghill/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"King of the Hill Chess",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`King of the Hill Chess - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Win by capturing the enemy king, or by moving your own king onto one of
the four center squares (d4, e4, d5, e5). There is no check or
checkmate - the king is an ordinary capturable piece.

AVAILABLE TOOLS:
- game_state: Get current board and turn
- move: Play a move by naming two squares (e.g. e2 to e4) - requires intent explanation
- legal_moves: List destinations for the piece on a square
- reset_game: Reset to the starting position
- create_session: Create new game session
- get_session: Get session details
- list_sessions: List all active sessions
- list_configs: List available variant configurations
- game_instructions: Get comprehensive rules
- describe_square: Get detailed info about one square (occupant, hill membership)

NOTE: The 'intent' parameter on the move tool serves as rubber duck debugging - explain your reasoning!`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional variant config selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "Variant config to use (optional, defaults to standard King of the Hill)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current game state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move",
		Description: "Play a move by naming the origin and destination squares in algebraic notation",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"from": map[string]interface{}{
					"type":        "string",
					"description": "Origin square, e.g. e2",
				},
				"to": map[string]interface{}{
					"type":        "string",
					"description": "Destination square, e.g. e4",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this move (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "from", "to"},
		},
	}, c.handleMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "legal_moves",
		Description: "List the destinations the piece on a square could move to, ignoring whose turn it is",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"square": map[string]interface{}{
					"type":        "string",
					"description": "Square to inspect, e.g. g1",
				},
			},
			Required: []string{"session_id", "square"},
		},
	}, c.handleLegalMoves)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Reset the game to the starting position",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available variant configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "describe_square",
		Description: "Get detailed information about one square: its occupant and whether it is a hill square. Useful for verifying board reading before committing to a move.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"square": map[string]interface{}{
					"type":        "string",
					"description": "Square to describe, e.g. d4",
				},
			},
			Required: []string{"session_id", "square"},
		},
	}, c.handleDescribeSquare)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configID, _ := args["config_id"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n\n%s",
		session.ID, session.ConfigName, formatGameState(session.GameState))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sessions []service.SessionInfo
	err := c.apiCall("GET", "/api/sessions", nil, &sessions)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", len(sessions))
	for _, s := range sessions {
		status := ""
		if s.GameState != nil {
			status = string(s.GameState.Status)
		}
		result += fmt.Sprintf("- %s (Config: %s, Status: %s, Created: %s)\n",
			s.ID, s.ConfigName, status, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.GameState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatGameState(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	from, _ := args["from"].(string)
	to, _ := args["to"].(string)
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	body := map[string]string{
		"from": from,
		"to":   to,
	}

	var result service.MoveResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/move", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatMoveResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleLegalMoves(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	square, _ := args["square"].(string)

	var result service.LegalMovesResult
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/legal-moves?square=%s", sessionID, square), nil, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if len(result.Moves) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No legal moves from %s", result.Square)), nil
	}

	response := fmt.Sprintf("Legal moves for %s on %s: %s",
		describePiece(result.Piece), result.Square, strings.Join(result.Moves, ", "))
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.GameState
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/reset", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Game reset to the starting position.\n\n%s", formatGameState(&state))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Configurations:\n\n"
	for _, config := range configs {
		result += fmt.Sprintf("• %s (%s)\n  %s\n  Hill squares: %s\n\n",
			config.Name, config.ConfigID, config.Description,
			strings.Join(config.HillSquares, ", "))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `♚ King of the Hill Chess - Complete Instructions

GAME OBJECTIVE:
Win in either of two ways:
1. CAPTURE the enemy king. The king is an ordinary capturable piece here.
2. Move YOUR OWN king onto one of the four hill squares: d4, e4, d5, e5.

There is NO check, NO checkmate, NO castling, NO en passant, and NO pawn
promotion. A move that exposes your king to capture is perfectly legal -
and perfectly dangerous.

BOARD NOTATION:
Squares are named file-then-rank: files a-h left to right from White's
side, ranks 1-8 bottom to top. White starts on ranks 1-2, Black on
ranks 7-8. The board display shows rank 8 at the top.

PIECE LETTERS (uppercase = White, lowercase = Black):
• K/k - King    moves 1 square in any direction
• Q/q - Queen   moves any distance along rank, file, or diagonal
• R/r - Rook    moves any distance along rank or file
• B/b - Bishop  moves any distance along a diagonal
• N/n - Knight  moves in an L (2+1), jumps over pieces
• P/p - Pawn    moves 1 forward (2 from its start rank), captures diagonally
• .   - empty square

MOVEMENT RULES:
• Sliding pieces (queen, rook, bishop) cannot jump: every square between
  origin and destination must be empty.
• You may never capture your own piece.
• Pawns never move backward and never capture straight ahead. The
  two-square advance is only available from the pawn's starting rank and
  requires both squares in front to be empty.
• A refused move does not consume your turn - the board is unchanged and
  it is still your move.

🤖 AI AGENTS - STRATEGY NOTES:

⚠️ KING SAFETY IS YOUR PROBLEM:
With no check rule, the engine will happily let you hang your king.
Before every move, scan the enemy pieces for any that attack your
king's square. Losing the king loses the game instantly.

🏔️ THE HILL RACE:
The four center squares are a second win condition. A king marching to
the center is slow (one square per move) but unstoppable if unopposed.
Watch both kings' distance to the hill: if the enemy king is 2 moves
from d4/e4/d5/e5 and you cannot capture or block it, you must win the
capture race first.

🎯 VERIFY BEFORE YOU MOVE:
• Use legal_moves to confirm what a piece can actually do - blocked
  sliding moves and pawn rules are the usual surprises.
• Use describe_square to double-check an occupant before capturing.
• White moves first; the move tool refuses out-of-turn moves.

SESSION MANAGEMENT:
- Multiple game sessions can run simultaneously
- Each session has a unique short ID
- Sessions maintain independent boards and configurations
- Sessions survive server restarts via file persistence

Good luck on the hill! ♔`

	return mcp.NewToolResultText(instructions), nil
}

func (c *Client) handleDescribeSquare(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	square, _ := args["square"].(string)

	square = strings.ToLower(strings.TrimSpace(square))
	row, col, ok := engine.ParseSquare(square)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("%q is not a board square: use file a-h then rank 1-8, e.g. d4", square)), nil
	}

	var state engine.GameState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	piece := state.Grid[row][col]
	occupant := "empty"
	if !piece.IsEmpty() {
		occupant = describePiece(piece)
	}

	hill := "no"
	hillSquares := engine.DefaultHillSquares
	configName := state.ConfigName
	if configName == "" {
		configName = "default"
	}
	var config engine.GameConfig
	if err := c.apiCall("GET", fmt.Sprintf("/api/configs/%s", configName), nil, &config); err == nil && len(config.HillSquares) > 0 {
		hillSquares = config.HillSquares
	}
	for _, h := range hillSquares {
		if h == square {
			hill = "yes - a king arriving here wins for its side"
			break
		}
	}

	result := fmt.Sprintf(`Square %s:
Character: %c
Occupant: %s
Hill square: %s`,
		square, piece.Letter(), occupant, hill)
	return mcp.NewToolResultText(result), nil
}

// Formatting helpers

func describePiece(p engine.Piece) string {
	if p.IsEmpty() {
		return "empty square"
	}
	return fmt.Sprintf("%s %s", p.Color, p.Type)
}

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameState(session.GameState))
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var result strings.Builder

	result.WriteString(fmt.Sprintf("Turn: %s | Moves played: %d | Status: %s\n\n",
		state.Turn, state.MovesMade, state.Status))

	// Board, rank 8 at the top, with rank and file labels
	for row := 0; row < engine.BoardSize; row++ {
		result.WriteString(fmt.Sprintf("%d  ", engine.BoardSize-row))
		for col := 0; col < engine.BoardSize; col++ {
			result.WriteByte(state.Grid[row][col].Letter())
			if col < engine.BoardSize-1 {
				result.WriteByte(' ')
			}
		}
		result.WriteString("\n")
	}
	result.WriteString("\n   a b c d e f g h\n")

	switch state.Status {
	case engine.WhiteWon:
		result.WriteString("\n🏆 WHITE WINS!")
	case engine.BlackWon:
		result.WriteString("\n🏆 BLACK WINS!")
	}

	if state.Message != "" {
		result.WriteString(fmt.Sprintf("\nMessage: %s", state.Message))
	}

	return result.String()
}

func formatMoveResult(result *service.MoveResult) string {
	response := ""
	if result.Success {
		response = fmt.Sprintf("✓ Move played: %s → %s\n", result.From, result.To)
	} else {
		response = fmt.Sprintf("✗ Move refused: %s → %s\n", result.From, result.To)
		if result.Message != "" {
			response += fmt.Sprintf("%s\n", result.Message)
		}
		response += "The board is unchanged and it is still the same side's turn.\n"
	}

	if len(result.Events) > 0 {
		response += "Events:\n"
		for _, event := range result.Events {
			response += fmt.Sprintf("- %s: %s\n", event.Type, event.Message)
		}
	}

	response += "\n" + formatGameState(result.GameState)
	return response
}
