// Package service defines the game service layer for the Cambio server.
//
// GameService is the single entry point the transports (HTTP, MCP) talk to:
// session lifecycle, snapshot queries, validated move submission, paginated
// history and the sanitized advisor view. The implementation orchestrates the
// session store and the engine; it holds no global lock, relying on the
// per-session lock carried by Session.
package service
