// Package protogen converts between JSON documents and proto3 schema text.
//
// Generate infers a proto3 message hierarchy from a sample JSON document;
// Parse performs the inverse, producing a zero-valued sample document from
// a schema. The two are loosely inverse: Generate(Parse(s)) reproduces the
// field names and nesting of s, not its comments or field numbers.
package protogen

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/devtoolbox/devtools-mcp/internal/naming"
)

// Generate infers a proto3 schema from a JSON document.
//
// The root value must be an object or a non-empty array of objects (only
// the first element is inspected). Objects become messages named after
// their PascalCase field name, with the outermost message named "Root".
// Fields are numbered in key order, renamed to snake_case, and typed:
//
//	null        -> string
//	bool        -> bool
//	integer     -> int32 (int64 when out of 32-bit range)
//	fraction    -> double
//	string      -> string
//	array       -> repeated <element type> ("repeated string" when empty)
//	object      -> nested message
//
// Nested messages are emitted after their parent, separated by blank lines.
func Generate(input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", fmt.Errorf("input is empty")
	}

	v, err := decodeValue(input)
	if err != nil {
		return "", fmt.Errorf("invalid JSON: %w", err)
	}

	var b strings.Builder
	b.WriteString("syntax = \"proto3\";\n\n")

	switch val := v.(type) {
	case map[string]interface{}:
		writeMessage(&b, "Root", val)
	case []interface{}:
		if len(val) == 0 {
			return "", fmt.Errorf("cannot generate proto schema from empty array")
		}
		first, ok := val[0].(map[string]interface{})
		if !ok {
			return "", fmt.Errorf("array must contain objects to generate proto schema")
		}
		writeMessage(&b, "Root", first)
	default:
		return "", fmt.Errorf("input must be a JSON object or array of objects")
	}

	return b.String(), nil
}

// writeMessage emits one message block, then any nested messages it
// introduced, each preceded by a blank line.
func writeMessage(b *strings.Builder, name string, obj map[string]interface{}) {
	type nestedMessage struct {
		name  string
		value map[string]interface{}
	}
	var nested []nestedMessage

	fmt.Fprintf(b, "message %s {\n", name)
	number := 1
	for _, key := range sortedKeys(obj) {
		fieldType, nestedObj := fieldTypeFor(obj[key], key)
		fmt.Fprintf(b, "  %s %s = %d;\n", fieldType, naming.Snake(key), number)
		if nestedObj != nil {
			nested = append(nested, nestedMessage{name: naming.Pascal(key), value: nestedObj})
		}
		number++
	}
	b.WriteString("}\n")

	for _, n := range nested {
		b.WriteString("\n")
		writeMessage(b, n.name, n.value)
	}
}

// fieldTypeFor maps a JSON value to its proto3 field type. For object
// values (directly or as array elements) it also returns the object so the
// caller can emit the nested message definition.
func fieldTypeFor(v interface{}, fieldName string) (string, map[string]interface{}) {
	switch val := v.(type) {
	case nil:
		return "string", nil
	case bool:
		return "bool", nil
	case json.Number:
		return numberType(val), nil
	case string:
		return "string", nil
	case []interface{}:
		if len(val) == 0 {
			return "repeated string", nil
		}
		if obj, ok := val[0].(map[string]interface{}); ok {
			return "repeated " + naming.Pascal(fieldName), obj
		}
		inner, _ := fieldTypeFor(val[0], fieldName)
		return "repeated " + strings.TrimPrefix(inner, "repeated "), nil
	case map[string]interface{}:
		return naming.Pascal(fieldName), val
	default:
		return "string", nil
	}
}

// numberType picks int32, int64, or double for a JSON number.
func numberType(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		if i >= math.MinInt32 && i <= math.MaxInt32 {
			return "int32"
		}
		return "int64"
	}
	return "double"
}

// decodeValue parses JSON keeping numbers as json.Number so integer and
// fractional values stay distinguishable.
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
