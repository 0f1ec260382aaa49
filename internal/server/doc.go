// Package server implements the MCP (Model Context Protocol) server for
// the developer-utility tools.
//
// This package provides a JSON-RPC 2.0 server that exposes image and JSON
// transformation tools through the MCP protocol, for use by Claude and
// other MCP-compatible clients.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Image operations:
//   - remove_background: Flood-fill background removal with feathered edges
//   - image_trim: Trim fully transparent borders
//
// JSON text operations:
//   - json_minify: Remove whitespace
//   - json_format: Pretty-print with two-space indent
//   - json_to_string: Escape a document as a JSON string literal
//   - string_to_json: Unescape a string literal back to a document
//
// Schema operations:
//   - json_to_proto: Infer a proto3 schema from sample JSON
//   - proto_to_json: Produce zero-valued sample JSON from a schema
//
// Code generation:
//   - json_to_code: Emit type declarations for nine target languages
//
// # State
//
// The server is stateless: every tool call carries its full input (image
// payloads travel inline as base64), so calls are independent and the
// server keeps nothing between requests.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
