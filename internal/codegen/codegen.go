// Package codegen emits type declarations for a JSON document in several
// target languages.
//
// Each generator walks the same inferred structure: the root object becomes
// a type with the requested name, nested objects (directly or as array
// elements) become additional types named after their PascalCase field
// name, emitted after the type that references them. Number fields are
// typed integral or floating depending on the sample value.
package codegen

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// nestedType records an object value that needs its own type declaration.
type nestedType struct {
	name string
	obj  map[string]interface{}
}

// Generate converts a JSON document into type declarations for the given
// target language.
//
// Supported languages: typescript, javascript, python, rust, java, csharp
// (alias "c#"), go, kotlin, swift. The language is matched
// case-insensitively. An empty name defaults to "Root". The root JSON
// value must be an object.
func Generate(input, language, name string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", fmt.Errorf("input is empty")
	}

	v, err := decodeValue(input)
	if err != nil {
		return "", fmt.Errorf("invalid JSON: %w", err)
	}
	obj, ok := v.(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("input must be a JSON object")
	}

	if name == "" {
		name = "Root"
	}

	switch strings.ToLower(language) {
	case "typescript":
		return generateTypeScript(obj, name), nil
	case "javascript":
		return generateJavaScript(obj, name), nil
	case "python":
		return pythonHeader + generatePython(obj, name), nil
	case "rust":
		return rustHeader + generateRust(obj, name), nil
	case "java":
		return javaHeader + generateJava(obj, name), nil
	case "csharp", "c#":
		return csharpHeader + generateCSharp(obj, name), nil
	case "go":
		return goHeader + generateGo(obj, name), nil
	case "kotlin":
		return kotlinHeader + generateKotlin(obj, name), nil
	case "swift":
		return swiftHeader + generateSwift(obj, name), nil
	default:
		return "", fmt.Errorf("unsupported language: %s", language)
	}
}

// Languages lists the supported target languages in the order they are
// advertised to callers.
func Languages() []string {
	return []string{
		"typescript", "javascript", "python", "rust", "java",
		"csharp", "go", "kotlin", "swift",
	}
}

// isFloat reports whether a JSON number carries a fractional component.
func isFloat(n json.Number) bool {
	_, err := n.Int64()
	return err != nil
}

// decodeValue parses JSON keeping numbers as json.Number.
func decodeValue(input string) (interface{}, error) {
	dec := json.NewDecoder(strings.NewReader(input))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func sortedKeys(obj map[string]interface{}) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
