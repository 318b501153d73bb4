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

	"github.com/cardroom/cambio/game/engine"
	"github.com/cardroom/cambio/game/service"
)

// Client is a thin MCP client that proxies to the REST API. The advisor only
// ever sees the sanitized board view and submits proposals through the same
// validated move path as human players.
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
		"Cambio Game Server",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Cambio Card Game - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Each player holds 4 face-down cards (slots 0-3). Lowest total card value wins
when someone calls Cambio. Card values: K=0, A=1, 2-10=face value, J=11, Q=12.

AVAILABLE TOOLS:
- create_session: Create a new game with a list of player names
- list_sessions: List all active sessions
- get_session: Get session details
- game_board: Get the current board as the advisor may see it (hidden slots report "unknown")
- submit_move: Submit a move (draw_deck, draw_discard_swap, peek, call_cambio) - requires intent explanation
- move_history: View past moves
- game_rules: Get the full game rules

NOTE: The 'intent' parameter on submit_move serves as rubber duck debugging - explain your reasoning!`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new Cambio game session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"player_names": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
					},
					"description": "Display names of the players, in seat order (optional, defaults to two players)",
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
		Name:        "game_board",
		Description: "Get the current board from the advisor's perspective. Hidden slots report the card as \"unknown\"; only disclosed cards carry values.",
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
	}, c.handleGameBoard)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "submit_move",
		Description: "Submit a move for the current player. Rejected moves return the rule violation reason and leave the game unchanged.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"type": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"draw_deck", "draw_discard_swap", "peek", "call_cambio"},
					"description": "Move kind",
				},
				"slot": map[string]interface{}{
					"type":        "integer",
					"description": "Hand slot 0-3, required for draw_discard_swap and peek",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this move (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "type"},
		},
	}, c.handleSubmitMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move_history",
		Description: "Get move history for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleMoveHistory)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_rules",
		Description: "Get the complete Cambio rules and strategy notes",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameRules)
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
		data, _ := io.ReadAll(resp.Body)

		// Rejected moves come back as a full outcome with a reason.
		var outcome engine.MoveOutcome
		if err := json.Unmarshal(data, &outcome); err == nil && outcome.Reason != "" {
			return fmt.Errorf("move rejected: %s", outcome.Reason)
		}

		var errResp map[string]string
		if err := json.Unmarshal(data, &errResp); err == nil {
			if msg, ok := errResp["error"]; ok {
				return fmt.Errorf("%s", msg)
			}
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
	namesRaw, _ := args["player_names"].([]interface{})

	names := make([]string, 0, len(namesRaw))
	for _, n := range namesRaw {
		if name, ok := n.(string); ok {
			names = append(names, name)
		}
	}

	body := map[string]interface{}{}
	if len(names) > 0 {
		body["player_names"] = names
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\n%s", session.ID, formatGameState(session.GameState))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		phase := ""
		if s.GameState != nil {
			phase = string(s.GameState.TurnPhase)
		}
		result += fmt.Sprintf("- %s (Phase: %s, Created: %s)\n",
			s.ID, phase, s.CreatedAt.Format("15:04:05"))
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

	result := fmt.Sprintf("Session: %s\nCreated: %s\nLast accessed: %s\n\n%s",
		session.ID,
		session.CreatedAt.Format(time.RFC3339),
		session.LastAccessedAt.Format(time.RFC3339),
		formatGameState(session.GameState))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameBoard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var view service.AdvisorView
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/advisor-view", sessionID), nil, &view)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatAdvisorView(&view)), nil
}

func (c *Client) handleSubmitMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	moveType, _ := args["type"].(string)
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	body := map[string]interface{}{
		"type": moveType,
	}
	if slot, ok := args["slot"].(float64); ok {
		body["slot"] = int(slot)
	}

	var outcome engine.MoveOutcome
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/moves", sessionID), body, &outcome)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatOutcome(&outcome)), nil
}

func (c *Client) handleMoveHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	params := "?"
	if page, ok := args["page"].(float64); ok {
		params += fmt.Sprintf("page=%d&", int(page))
	}
	if limit, ok := args["limit"].(float64); ok {
		params += fmt.Sprintf("limit=%d&", int(limit))
	}

	var history service.HistoryResponse
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/history%s", sessionID, params), nil, &history)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatHistory(&history)), nil
}

func (c *Client) handleGameRules(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rules := `Cambio Card Game - Complete Rules

GAME OBJECTIVE:
Finish the round with the lowest total card value across your 4 hand slots.

SETUP:
- Each player is dealt 4 cards into fixed slots 0-3.
- At the deal, every player peeks at slots 0 and 2; slots 1 and 3 stay hidden.
- The rest of the deck becomes the draw pile. The discard starts empty.

CARD VALUES:
- K = 0 (best card to keep!)
- A = 1
- 2-10 = face value
- J = 11
- Q = 12

MOVES (one per turn, in seat order):
- draw_deck: Flip the top draw-pile card onto the discard. The card it
  covers leaves play permanently.
- draw_discard_swap (slot 0-3): Take the discard top into the given slot;
  your old card becomes the new discard top. The incoming card is face up.
- peek (slot 0-3): Look at one of your own hidden cards.
- call_cambio: End the round. Every card is revealed and hands are scored;
  the lowest total wins. Only call it when you believe you are lowest.

STRATEGY TIPS:
- Peek at unknown cards first to gather information.
- Swap high-value cards (8+) for lower discard cards.
- Kings are worth zero: never swap them away.
- Watch the move history to estimate opponents' hands.

IMPORTANT:
- Cards start hidden; the board view reports them as "unknown" until they
  are peeked, swapped into view, or the round ends.
- After someone calls Cambio the round is over: every further move is
  rejected with "round has ended".`

	return mcp.NewToolResultText(rules), nil
}

// Formatting helpers

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Game: %s (%s)\n", state.ID, state.Variant)
	fmt.Fprintf(&b, "Phase: %s\n", state.TurnPhase)
	fmt.Fprintf(&b, "Current player: %s\n", state.CurrentPlayer)
	fmt.Fprintf(&b, "Draw pile: %d cards\n", state.DrawPileCount)
	if state.TopDiscard != nil {
		fmt.Fprintf(&b, "Discard top: %s\n", state.TopDiscard)
	} else {
		b.WriteString("Discard top: (empty)\n")
	}

	for _, p := range state.Players {
		fmt.Fprintf(&b, "\n%s (%s)", p.Name, p.ID)
		if state.TurnPhase == engine.PhaseRoundEnd {
			fmt.Fprintf(&b, " - score %d", p.Score)
		}
		b.WriteString("\n")
		for i, slot := range p.Hand {
			marker := "hidden"
			if slot.Visible {
				marker = slot.Card.String()
			}
			fmt.Fprintf(&b, "  slot %d: %s\n", i, marker)
		}
	}

	return b.String()
}

func formatAdvisorView(view *service.AdvisorView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Game: %s\n", view.GameID)
	fmt.Fprintf(&b, "Phase: %s\n", view.TurnPhase)
	fmt.Fprintf(&b, "Current player: %s\n", view.CurrentPlayer)
	fmt.Fprintf(&b, "Draw pile: %d cards\n", view.DrawPileCount)
	if view.TopDiscard != "" {
		fmt.Fprintf(&b, "Discard top: %s\n", view.TopDiscard)
	} else {
		b.WriteString("Discard top: (empty)\n")
	}

	for _, p := range view.Players {
		fmt.Fprintf(&b, "\n%s (%s)\n", p.Name, p.PlayerID)
		for _, slot := range p.Hand {
			if slot.Value != nil {
				fmt.Fprintf(&b, "  slot %d: %s (value %d)\n", slot.Slot, slot.Card, *slot.Value)
			} else {
				fmt.Fprintf(&b, "  slot %d: %s\n", slot.Slot, slot.Card)
			}
		}
	}

	return b.String()
}

func formatOutcome(outcome *engine.MoveOutcome) string {
	if !outcome.Valid {
		return fmt.Sprintf("Move rejected: %s", outcome.Reason)
	}

	result := "Move accepted.\n"
	if outcome.RoundEnd {
		result += "Round is over! Final scores are in.\n"
	}
	result += "\n" + formatGameState(outcome.State)
	return result
}

func formatHistory(history *service.HistoryResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Move History (%d total, page %d/%d):\n\n",
		history.TotalMoves, history.Page, history.TotalPages)

	for _, entry := range history.Moves {
		fmt.Fprintf(&b, "%3d. %s: %s\n", entry.Turn, entry.Player, entry.Action)
	}

	if len(history.Moves) == 0 {
		b.WriteString("(no moves yet)\n")
	}

	return b.String()
}
