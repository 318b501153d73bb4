// Package mcp provides the Model Context Protocol interface for the Cambio
// game server, aimed at LLM-based move advisors.
//
// The mcp package implements:
//   - MCP tool definitions for every game operation
//   - A thin client that proxies every call to the REST API
//   - Stdio and HTTP transport modes
//
// MCP Tools:
//
// The package exposes the following tools:
//   - create_session: Create a new game with a list of player names
//   - list_sessions: List all active sessions
//   - get_session: Get specific session details
//   - game_board: Sanitized board view; hidden slots report "unknown"
//   - submit_move: Submit a move through the validated move path
//   - move_history: Retrieve move history with pagination
//   - game_rules: Full rules and strategy notes
//
// Advisor Contract:
//
// The advisor never gets write access to game internals. game_board masks
// every hidden slot, and submit_move goes through the same HTTP move path as
// human players, so a rejected proposal returns the rule violation reason
// without mutating state.
//
// Transport Modes:
//
// The server supports two transport modes:
//   - Stdio: Direct stdio communication for local MCP clients
//   - HTTP: /mcp endpoint on the main HTTP server
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
package mcp
