package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

// encodeTestPayload produces a base64 PNG payload from an in-memory image.
func encodeTestPayload(t *testing.T, img image.Image) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test PNG: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	want := []string{
		"remove_background",
		"image_trim",
		"json_minify",
		"json_format",
		"json_to_string",
		"string_to_json",
		"json_to_proto",
		"proto_to_json",
		"json_to_code",
	}
	if len(tools) != len(want) {
		t.Fatalf("tool count: got %d, want %d", len(tools), len(want))
	}
	for i, name := range want {
		if tools[i].Name != name {
			t.Errorf("tools[%d].Name: got %s, want %s", i, tools[i].Name, name)
		}
		if tools[i].Description == "" {
			t.Errorf("tools[%d] (%s) has empty description", i, name)
		}
		if tools[i].InputSchema == nil {
			t.Errorf("tools[%d] (%s) has nil input schema", i, name)
		}
	}
}

func TestExecuteTool_JSONMinify(t *testing.T) {
	s := New()
	result, err := s.executeTool("json_minify", json.RawMessage(`{"input":"{\"name\": \"John\", \"age\": 30}"}`))
	if err != nil {
		t.Fatalf("executeTool failed: %v", err)
	}

	text, ok := result.(*TextResult)
	if !ok {
		t.Fatalf("result: got %T, want *TextResult", result)
	}
	if text.Output != `{"name":"John","age":30}` {
		t.Errorf("output: got %s", text.Output)
	}
}

func TestExecuteTool_JSONFormat(t *testing.T) {
	s := New()
	result, err := s.executeTool("json_format", json.RawMessage(`{"input":"{\"a\":1}"}`))
	if err != nil {
		t.Fatalf("executeTool failed: %v", err)
	}
	text := result.(*TextResult)
	if !strings.Contains(text.Output, "\n  \"a\": 1") {
		t.Errorf("output not indented: %q", text.Output)
	}
}

func TestExecuteTool_StringRoundTrip(t *testing.T) {
	s := New()

	result, err := s.executeTool("json_to_string", json.RawMessage(`{"input":"{\"x\":true}"}`))
	if err != nil {
		t.Fatalf("json_to_string failed: %v", err)
	}
	escaped := result.(*TextResult).Output

	back, err := s.executeTool("string_to_json", mustToolArgs(t, escaped))
	if err != nil {
		t.Fatalf("string_to_json failed: %v", err)
	}
	restored := back.(*TextResult).Output
	if !strings.Contains(restored, `"x": true`) {
		t.Errorf("round trip lost content: %q", restored)
	}
}

// mustToolArgs wraps a raw input string in the single-input argument shape.
func mustToolArgs(t *testing.T, input string) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(map[string]string{"input": input})
	if err != nil {
		t.Fatalf("Failed to marshal args: %v", err)
	}
	return b
}

func TestExecuteTool_JSONToProto(t *testing.T) {
	s := New()
	result, err := s.executeTool("json_to_proto", json.RawMessage(`{"input":"{\"name\":\"test\"}"}`))
	if err != nil {
		t.Fatalf("executeTool failed: %v", err)
	}
	text := result.(*TextResult)
	if !strings.Contains(text.Output, `syntax = "proto3";`) {
		t.Errorf("missing proto3 header: %q", text.Output)
	}
	if !strings.Contains(text.Output, "string name = 1;") {
		t.Errorf("missing field: %q", text.Output)
	}
}

func TestExecuteTool_JSONToCode(t *testing.T) {
	s := New()
	args := json.RawMessage(`{"input":"{\"user_name\":\"a\"}","language":"rust","name":"Account"}`)
	result, err := s.executeTool("json_to_code", args)
	if err != nil {
		t.Fatalf("executeTool failed: %v", err)
	}
	text := result.(*TextResult)
	if !strings.Contains(text.Output, "pub struct Account") {
		t.Errorf("missing struct: %q", text.Output)
	}
	if !strings.Contains(text.Output, "pub user_name: String,") {
		t.Errorf("missing field: %q", text.Output)
	}
}

func TestExecuteTool_RemoveBackground(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	white := color.NRGBA{255, 255, 255, 255}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, white)
		}
	}

	payload := encodeTestPayload(t, img)
	args, err := json.Marshal(map[string]interface{}{"image_data": payload})
	if err != nil {
		t.Fatalf("Failed to marshal args: %v", err)
	}

	s := New()
	result, err := s.executeTool("remove_background", args)
	if err != nil {
		t.Fatalf("executeTool failed: %v", err)
	}

	b, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("Failed to marshal result: %v", err)
	}
	var got struct {
		Width         int    `json:"width"`
		Height        int    `json:"height"`
		BackgroundHex string `json:"background_hex"`
		MaskedPixels  int    `json:"masked_pixels"`
		ImageDataURL  string `json:"image_data_url"`
	}
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("Failed to unmarshal result: %v", err)
	}

	if got.Width != 4 || got.Height != 4 {
		t.Errorf("dimensions: got %dx%d, want 4x4", got.Width, got.Height)
	}
	if got.BackgroundHex != "#ffffff" {
		t.Errorf("background: got %s, want #ffffff", got.BackgroundHex)
	}
	if got.MaskedPixels != 16 {
		t.Errorf("masked pixels: got %d, want 16", got.MaskedPixels)
	}
	if !strings.HasPrefix(got.ImageDataURL, "data:image/png;base64,") {
		t.Errorf("output missing data URL prefix: %s", got.ImageDataURL[:min(len(got.ImageDataURL), 40)])
	}
}

func TestExecuteTool_RemoveBackground_ExplicitZeroTolerance(t *testing.T) {
	// An explicit tolerance of 0 must not be replaced by the default.
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{10, 10, 10, 255})
	img.SetNRGBA(1, 0, color.NRGBA{20, 20, 20, 255})
	img.SetNRGBA(0, 1, color.NRGBA{30, 30, 30, 255})
	img.SetNRGBA(1, 1, color.NRGBA{40, 40, 40, 255})

	payload := encodeTestPayload(t, img)
	args, err := json.Marshal(map[string]interface{}{
		"image_data": payload,
		"tolerance":  0,
	})
	if err != nil {
		t.Fatalf("Failed to marshal args: %v", err)
	}

	s := New()
	result, err := s.executeTool("remove_background", args)
	if err != nil {
		t.Fatalf("executeTool failed: %v", err)
	}

	b, _ := json.Marshal(result)
	var got struct {
		MaskedPixels int `json:"masked_pixels"`
	}
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("Failed to unmarshal result: %v", err)
	}
	if got.MaskedPixels != 0 {
		t.Errorf("masked pixels with tolerance 0: got %d, want 0", got.MaskedPixels)
	}
}

func TestExecuteTool_ImageTrim(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 6, 6))
	img.SetNRGBA(2, 3, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(3, 3, color.NRGBA{255, 0, 0, 255})

	payload := encodeTestPayload(t, img)
	args, err := json.Marshal(map[string]interface{}{"image_data": payload})
	if err != nil {
		t.Fatalf("Failed to marshal args: %v", err)
	}

	s := New()
	result, err := s.executeTool("image_trim", args)
	if err != nil {
		t.Fatalf("executeTool failed: %v", err)
	}

	b, _ := json.Marshal(result)
	var got struct {
		Width   int `json:"width"`
		Height  int `json:"height"`
		OffsetX int `json:"offset_x"`
		OffsetY int `json:"offset_y"`
	}
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("Failed to unmarshal result: %v", err)
	}
	if got.Width != 2 || got.Height != 1 {
		t.Errorf("dimensions: got %dx%d, want 2x1", got.Width, got.Height)
	}
	if got.OffsetX != 2 || got.OffsetY != 3 {
		t.Errorf("offset: got (%d,%d), want (2,3)", got.OffsetX, got.OffsetY)
	}
}

func TestExecuteTool_UnknownTool(t *testing.T) {
	s := New()
	_, err := s.executeTool("does_not_exist", json.RawMessage(`{}`))
	if err == nil {
		t.Fatal("expected error for unknown tool")
	}
	if !strings.Contains(err.Error(), "unknown tool") {
		t.Errorf("error: got %v", err)
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := New()
	resp := s.handleToolsCall(&MCPRequest{
		JSONRPC: "2.0",
		ID:      7,
		Method:  "tools/call",
		Params:  json.RawMessage(`"not an object"`),
	})
	if resp.Error == nil {
		t.Fatal("expected error response")
	}
	if resp.Error.Code != -32602 {
		t.Errorf("code: got %d, want -32602", resp.Error.Code)
	}
}

func TestHandleToolsCall_ToolError(t *testing.T) {
	s := New()
	resp := s.handleToolsCall(&MCPRequest{
		JSONRPC: "2.0",
		ID:      8,
		Method:  "tools/call",
		Params:  json.RawMessage(`{"name":"json_minify","arguments":{"input":"not json"}}`),
	})
	if resp.Error == nil {
		t.Fatal("expected error response")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("code: got %d, want -32000", resp.Error.Code)
	}
}
