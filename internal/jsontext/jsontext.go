// Package jsontext provides whitespace-level and string-literal transforms
// over JSON documents.
//
// None of these operations reinterpret the document: minify and format are
// whitespace-only re-serializations that preserve key order, and the string
// conversions wrap or unwrap a document as a JSON string literal.
package jsontext

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Minify removes all unnecessary whitespace from a JSON document.
//
// Key order is preserved. Empty or whitespace-only input is an error, as is
// any input that fails to parse.
func Minify(input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", fmt.Errorf("input is empty")
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(input)); err != nil {
		return "", fmt.Errorf("invalid JSON: %w", err)
	}
	return buf.String(), nil
}

// Format pretty-prints a JSON document with two-space indentation.
//
// Key order is preserved. Empty or whitespace-only input is an error.
func Format(input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", fmt.Errorf("input is empty")
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(strings.TrimSpace(input)), "", "  "); err != nil {
		return "", fmt.Errorf("invalid JSON: %w", err)
	}
	return buf.String(), nil
}

// ToString converts a JSON document into an escaped JSON string literal.
//
// The input is validated first; the literal wraps the input text exactly as
// supplied, including its whitespace.
func ToString(input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", fmt.Errorf("input is empty")
	}

	if !json.Valid([]byte(input)) {
		// Re-parse to get the decoder's diagnostic for the error message.
		var v interface{}
		if err := json.Unmarshal([]byte(input), &v); err != nil {
			return "", fmt.Errorf("invalid JSON: %w", err)
		}
	}

	escaped, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("failed to convert: %w", err)
	}
	return string(escaped), nil
}

// FromString parses a JSON string literal whose content is itself a JSON
// document, and returns that document pretty-printed.
//
// Input that is not a double-quoted string literal is rejected with a
// message explaining the expected shape.
func FromString(input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", fmt.Errorf("input is empty")
	}

	trimmed := strings.TrimSpace(input)
	if !strings.HasPrefix(trimmed, `"`) || !strings.HasSuffix(trimmed, `"`) {
		return "", fmt.Errorf("input must be a JSON string literal (enclosed in double quotes with escaped content)")
	}

	var unescaped string
	if err := json.Unmarshal([]byte(trimmed), &unescaped); err != nil {
		return "", fmt.Errorf("invalid JSON string literal: %w", err)
	}

	formatted, err := Format(unescaped)
	if err != nil {
		return "", fmt.Errorf("unescaped content is not valid JSON: %w", err)
	}
	return formatted, nil
}
