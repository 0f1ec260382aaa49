package server

import (
	"encoding/json"
	"fmt"

	"github.com/devtoolbox/devtools-mcp/internal/codegen"
	"github.com/devtoolbox/devtools-mcp/internal/imaging"
	"github.com/devtoolbox/devtools-mcp/internal/jsontext"
	"github.com/devtoolbox/devtools-mcp/internal/protogen"
)

// defaultTolerance is applied when remove_background is called without an
// explicit tolerance.
const defaultTolerance = 10

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "remove_background", "json_minify").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// TextResult wraps a plain text transformation result.
type TextResult struct {
	Output string `json:"output"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Image Operations
	case "remove_background":
		return s.handleRemoveBackground(args)
	case "image_trim":
		return s.handleImageTrim(args)

	// JSON Text Operations
	case "json_minify":
		return s.handleJSONText(args, jsontext.Minify)
	case "json_format":
		return s.handleJSONText(args, jsontext.Format)
	case "json_to_string":
		return s.handleJSONText(args, jsontext.ToString)
	case "string_to_json":
		return s.handleJSONText(args, jsontext.FromString)

	// Schema Operations
	case "json_to_proto":
		return s.handleJSONText(args, protogen.Generate)
	case "proto_to_json":
		return s.handleJSONText(args, protogen.Parse)

	// Code Generation
	case "json_to_code":
		return s.handleJSONToCode(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Image Operation Handlers ===

type removeBackgroundArgs struct {
	ImageData string `json:"image_data"`
	Tolerance *int   `json:"tolerance"`
}

func (s *Server) handleRemoveBackground(args json.RawMessage) (interface{}, error) {
	var a removeBackgroundArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	tolerance := defaultTolerance
	if a.Tolerance != nil {
		tolerance = *a.Tolerance
	}
	return imaging.RemoveBackground(a.ImageData, tolerance)
}

type imageTrimArgs struct {
	ImageData string `json:"image_data"`
}

func (s *Server) handleImageTrim(args json.RawMessage) (interface{}, error) {
	var a imageTrimArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.TrimTransparent(a.ImageData)
}

// === Text Transform Handlers ===

type textArgs struct {
	Input string `json:"input"`
}

// handleJSONText unmarshals the shared single-input argument shape and
// applies a text transform to it.
func (s *Server) handleJSONText(args json.RawMessage, transform func(string) (string, error)) (interface{}, error) {
	var a textArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	output, err := transform(a.Input)
	if err != nil {
		return nil, err
	}
	return &TextResult{Output: output}, nil
}

type jsonToCodeArgs struct {
	Input    string `json:"input"`
	Language string `json:"language"`
	Name     string `json:"name"`
}

func (s *Server) handleJSONToCode(args json.RawMessage) (interface{}, error) {
	var a jsonToCodeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	output, err := codegen.Generate(a.Input, a.Language, a.Name)
	if err != nil {
		return nil, err
	}
	return &TextResult{Output: output}, nil
}
