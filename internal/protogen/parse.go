package protogen

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// maxNestingDepth bounds recursion through message references so that a
// schema whose messages reference each other cyclically fails instead of
// recursing forever.
const maxNestingDepth = 32

// Message is a parsed proto3 message definition.
type Message struct {
	Name   string
	Fields []Field
}

// Field is a single field within a message definition.
type Field struct {
	Type     string
	Name     string
	Number   int
	Repeated bool
}

// Parse converts a proto3 schema into a pretty-printed sample JSON
// document with zero values.
//
// The schema is read line by line: "message Name {" opens a definition and
// fields follow the form "[repeated] type name = number;". Comments,
// blank lines, and the syntax declaration are skipped. The message named
// "Root" is used as the document root, falling back to the first message
// defined. Fields referencing locally defined messages recurse into them;
// references to unknown types become null.
func Parse(input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", fmt.Errorf("input is empty")
	}

	messages := parseMessages(input)
	if len(messages) == 0 {
		return "", fmt.Errorf("no message definitions found in proto file")
	}

	root := &messages[0]
	for i := range messages {
		if messages[i].Name == "Root" {
			root = &messages[i]
			break
		}
	}

	value, err := messageValue(root, messages, 0)
	if err != nil {
		return "", err
	}

	formatted, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to format JSON: %w", err)
	}
	return string(formatted), nil
}

// parseMessages extracts message definitions from proto3 text.
func parseMessages(input string) []Message {
	var messages []Message
	lines := strings.Split(input, "\n")

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(line, "message ") {
			continue
		}

		name := strings.TrimPrefix(line, "message ")
		name = strings.TrimSuffix(name, "{")
		name = strings.TrimSpace(name)

		var fields []Field
		for i++; i < len(lines); i++ {
			fieldLine := strings.TrimSpace(lines[i])
			if fieldLine == "}" {
				break
			}
			if fieldLine == "" || strings.HasPrefix(fieldLine, "//") || strings.HasPrefix(fieldLine, "syntax") {
				continue
			}
			if f, ok := parseField(fieldLine); ok {
				fields = append(fields, f)
			}
		}

		messages = append(messages, Message{Name: name, Fields: fields})
	}

	return messages
}

// parseField reads one "[repeated] type name = number;" line.
func parseField(line string) (Field, bool) {
	parts := strings.Fields(line)
	if len(parts) < 4 {
		return Field{}, false
	}

	idx := 0
	repeated := parts[idx] == "repeated"
	if repeated {
		idx++
	}
	if len(parts) < idx+4 {
		return Field{}, false
	}

	number, err := strconv.Atoi(strings.TrimSuffix(parts[idx+3], ";"))
	if err != nil {
		return Field{}, false
	}

	return Field{
		Type:     parts[idx],
		Name:     parts[idx+1],
		Number:   number,
		Repeated: repeated,
	}, true
}

// messageValue builds a zero-valued JSON object for a message.
func messageValue(msg *Message, all []Message, depth int) (interface{}, error) {
	if depth > maxNestingDepth {
		return nil, fmt.Errorf("message nesting exceeds %d levels (cyclic reference?)", maxNestingDepth)
	}

	obj := make(map[string]interface{}, len(msg.Fields))
	for _, f := range msg.Fields {
		v, err := fieldValue(f, all, depth)
		if err != nil {
			return nil, err
		}
		obj[f.Name] = v
	}
	return obj, nil
}

// fieldValue produces the zero value for a field, wrapping repeated fields
// in a single-element array.
func fieldValue(f Field, all []Message, depth int) (interface{}, error) {
	var base interface{}
	switch f.Type {
	case "string", "bytes":
		base = ""
	case "int32", "int64", "uint32", "uint64", "sint32", "sint64",
		"fixed32", "fixed64", "sfixed32", "sfixed64":
		base = 0
	case "float", "double":
		base = 0.0
	case "bool":
		base = false
	default:
		base = nil
		for i := range all {
			if all[i].Name == f.Type {
				v, err := messageValue(&all[i], all, depth+1)
				if err != nil {
					return nil, err
				}
				base = v
				break
			}
		}
	}

	if f.Repeated {
		return []interface{}{base}, nil
	}
	return base, nil
}
