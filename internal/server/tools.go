package server

import "github.com/devtoolbox/devtools-mcp/internal/codegen"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// jsonInputSchema is the shared schema for tools that take a single JSON
// document as input.
func jsonInputSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"input": map[string]interface{}{
				"type":        "string",
				"description": description,
			},
		},
		"required": []string{"input"},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image Operations
		{
			Name: "remove_background",
			Description: "Remove the background from an image by flood-filling from the edges. " +
				"The background color is inferred from the image border; matching border-connected " +
				"pixels become transparent with a feathered edge. Returns a base64 PNG data URL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image_data": map[string]interface{}{
						"type":        "string",
						"description": "Image as base64 or data URL (PNG, JPEG, GIF, WebP, BMP, or TIFF)",
					},
					"tolerance": map[string]interface{}{
						"type":        "integer",
						"description": "Background-match strictness: 0 = exact match only, larger values admit more color variation (default 10)",
						"default":     10,
					},
				},
				"required": []string{"image_data"},
			},
		},
		{
			Name: "image_trim",
			Description: "Trim fully transparent borders from an image, returning the tight bounding " +
				"box of visible pixels as a base64 PNG data URL. Useful after remove_background.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image_data": map[string]interface{}{
						"type":        "string",
						"description": "Image as base64 or data URL",
					},
				},
				"required": []string{"image_data"},
			},
		},

		// JSON Text Operations
		{
			Name:        "json_minify",
			Description: "Minify a JSON document by removing all unnecessary whitespace.",
			InputSchema: jsonInputSchema("JSON document to minify"),
		},
		{
			Name:        "json_format",
			Description: "Pretty-print a JSON document with two-space indentation.",
			InputSchema: jsonInputSchema("JSON document to format"),
		},
		{
			Name:        "json_to_string",
			Description: "Convert a JSON document into an escaped JSON string literal.",
			InputSchema: jsonInputSchema("JSON document to escape"),
		},
		{
			Name:        "string_to_json",
			Description: "Parse a JSON string literal whose content is a JSON document and pretty-print that document.",
			InputSchema: jsonInputSchema("JSON string literal (double-quoted, escaped)"),
		},

		// Schema Operations
		{
			Name:        "json_to_proto",
			Description: "Generate a proto3 schema from a sample JSON document.",
			InputSchema: jsonInputSchema("JSON object or array of objects"),
		},
		{
			Name:        "proto_to_json",
			Description: "Generate a zero-valued sample JSON document from a proto3 schema.",
			InputSchema: jsonInputSchema("proto3 schema text"),
		},

		// Code Generation
		{
			Name:        "json_to_code",
			Description: "Generate type declarations from a JSON document in a target programming language.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"input": map[string]interface{}{
						"type":        "string",
						"description": "JSON object to generate types for",
					},
					"language": map[string]interface{}{
						"type":        "string",
						"enum":        codegen.Languages(),
						"description": "Target language",
					},
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Name for the root type (default \"Root\")",
						"default":     "Root",
					},
				},
				"required": []string{"input", "language"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
