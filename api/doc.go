// Package api provides HTTP REST API handlers for the Cambio game server.
//
// The api package implements:
//   - RESTful endpoints for session and game operations
//   - Validated move submission
//   - Sanitized advisor view for the automated player
//   - WebSocket upgrade handling
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session ({"player_names": [...]})
//   - GET /api/sessions - List all sessions (sort/order/limit query params)
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Current state snapshot
//   - POST /api/sessions/{id}/moves - Submit a move
//   - GET /api/sessions/{id}/history - Move history with pagination
//   - GET /api/sessions/{id}/advisor-view - Masked snapshot for the advisor
//
// Request/Response Format:
//
// All endpoints accept and return JSON. Moves are tagged records:
//
//	{
//	  "type": "draw_deck|draw_discard_swap|peek|call_cambio",
//	  "slot": 0-3 // required for draw_discard_swap and peek
//	}
//
// Error Handling:
//
// An unknown session id yields 404 with {"error": "..."}; an illegal move
// yields 400 with the full rejection outcome {"valid": false, "reason":
// "..."}, so callers can distinguish "not found" from "rejected".
package api
