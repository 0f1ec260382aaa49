package codegen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/devtoolbox/devtools-mcp/internal/naming"
)

const (
	pythonHeader = "from dataclasses import dataclass\nfrom typing import List, Optional, Any\n\n"
	rustHeader   = "use serde::{Deserialize, Serialize};\n\n"
	javaHeader   = "import com.fasterxml.jackson.annotation.JsonProperty;\nimport java.util.List;\n\n"
	csharpHeader = "using System.Collections.Generic;\nusing Newtonsoft.Json;\n\n"
	goHeader     = "package main\n\n"
	kotlinHeader = "import com.google.gson.annotations.SerializedName\n\n"
	swiftHeader  = "import Foundation\n\n"
)

// nest registers an object value for later emission and returns its type
// name.
func nest(nested *[]nestedType, field string, obj map[string]interface{}) string {
	name := naming.Pascal(field)
	*nested = append(*nested, nestedType{name: name, obj: obj})
	return name
}

// === TypeScript ===

func generateTypeScript(obj map[string]interface{}, name string) string {
	var b strings.Builder
	var nested []nestedType

	fmt.Fprintf(&b, "interface %s {\n", name)
	for _, key := range sortedKeys(obj) {
		fmt.Fprintf(&b, "  %s: %s;\n", key, typeScriptType(obj[key], key, &nested))
	}
	b.WriteString("}\n")

	for _, n := range nested {
		b.WriteString("\n")
		b.WriteString(generateTypeScript(n.obj, n.name))
	}
	return b.String()
}

func typeScriptType(v interface{}, field string, nested *[]nestedType) string {
	switch val := v.(type) {
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case string:
		return "string"
	case []interface{}:
		if len(val) == 0 {
			return "any[]"
		}
		if obj, ok := val[0].(map[string]interface{}); ok {
			return nest(nested, field, obj) + "[]"
		}
		return typeScriptType(val[0], field, nested) + "[]"
	case map[string]interface{}:
		return nest(nested, field, val)
	default:
		return "any"
	}
}

// === JavaScript ===

func generateJavaScript(obj map[string]interface{}, name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "class %s {\n", name)
	b.WriteString("  constructor(data) {\n")
	for _, key := range sortedKeys(obj) {
		fmt.Fprintf(&b, "    this.%s = data.%s;\n", key, key)
	}
	b.WriteString("  }\n")
	b.WriteString("}\n")
	return b.String()
}

// === Python ===

func generatePython(obj map[string]interface{}, name string) string {
	var b strings.Builder
	var nested []nestedType

	b.WriteString("@dataclass\n")
	fmt.Fprintf(&b, "class %s:\n", name)
	for _, key := range sortedKeys(obj) {
		fmt.Fprintf(&b, "    %s: %s\n", naming.Snake(key), pythonType(obj[key], key, &nested))
	}

	for _, n := range nested {
		b.WriteString("\n")
		b.WriteString(generatePython(n.obj, n.name))
	}
	return b.String()
}

func pythonType(v interface{}, field string, nested *[]nestedType) string {
	switch val := v.(type) {
	case bool:
		return "bool"
	case json.Number:
		if isFloat(val) {
			return "float"
		}
		return "int"
	case string:
		return "str"
	case []interface{}:
		if len(val) == 0 {
			return "List[Any]"
		}
		if obj, ok := val[0].(map[string]interface{}); ok {
			return "List[" + nest(nested, field, obj) + "]"
		}
		return "List[" + pythonType(val[0], field, nested) + "]"
	case map[string]interface{}:
		return nest(nested, field, val)
	default:
		return "Optional[Any]"
	}
}

// === Rust ===

func generateRust(obj map[string]interface{}, name string) string {
	var b strings.Builder
	var nested []nestedType

	b.WriteString("#[derive(Debug, Serialize, Deserialize)]\n")
	fmt.Fprintf(&b, "pub struct %s {\n", name)
	for _, key := range sortedKeys(obj) {
		fmt.Fprintf(&b, "    pub %s: %s,\n", naming.Snake(key), rustType(obj[key], key, &nested))
	}
	b.WriteString("}\n")

	for _, n := range nested {
		b.WriteString("\n")
		b.WriteString(generateRust(n.obj, n.name))
	}
	return b.String()
}

func rustType(v interface{}, field string, nested *[]nestedType) string {
	switch val := v.(type) {
	case bool:
		return "bool"
	case json.Number:
		if isFloat(val) {
			return "f64"
		}
		return "i64"
	case string:
		return "String"
	case []interface{}:
		if len(val) == 0 {
			return "Vec<serde_json::Value>"
		}
		if obj, ok := val[0].(map[string]interface{}); ok {
			return "Vec<" + nest(nested, field, obj) + ">"
		}
		return "Vec<" + rustType(val[0], field, nested) + ">"
	case map[string]interface{}:
		return nest(nested, field, val)
	default:
		return "Option<String>"
	}
}

// === Java ===

func generateJava(obj map[string]interface{}, name string) string {
	var b strings.Builder
	var nested []nestedType

	fmt.Fprintf(&b, "public class %s {\n", name)
	keys := sortedKeys(obj)
	for _, key := range keys {
		fmt.Fprintf(&b, "    @JsonProperty(\"%s\")\n", key)
		fmt.Fprintf(&b, "    private %s %s;\n\n", javaType(obj[key], key, &nested), naming.Camel(key))
	}
	for _, key := range keys {
		// Getters and setters reuse the inferred type; nested types were
		// already registered by the field pass.
		var discard []nestedType
		javaT := javaType(obj[key], key, &discard)
		field := naming.Camel(key)
		fmt.Fprintf(&b, "    public %s get%s() {\n", javaT, naming.Pascal(key))
		fmt.Fprintf(&b, "        return %s;\n", field)
		b.WriteString("    }\n\n")
		fmt.Fprintf(&b, "    public void set%s(%s %s) {\n", naming.Pascal(key), javaT, field)
		fmt.Fprintf(&b, "        this.%s = %s;\n", field, field)
		b.WriteString("    }\n\n")
	}
	b.WriteString("}\n")

	for _, n := range nested {
		b.WriteString("\n")
		b.WriteString(generateJava(n.obj, n.name))
	}
	return b.String()
}

func javaType(v interface{}, field string, nested *[]nestedType) string {
	switch val := v.(type) {
	case bool:
		return "Boolean"
	case json.Number:
		if isFloat(val) {
			return "Double"
		}
		return "Integer"
	case string:
		return "String"
	case []interface{}:
		if len(val) == 0 {
			return "List<Object>"
		}
		if obj, ok := val[0].(map[string]interface{}); ok {
			return "List<" + nest(nested, field, obj) + ">"
		}
		return "List<" + javaType(val[0], field, nested) + ">"
	case map[string]interface{}:
		return nest(nested, field, val)
	default:
		return "Object"
	}
}

// === C# ===

func generateCSharp(obj map[string]interface{}, name string) string {
	var b strings.Builder
	var nested []nestedType

	fmt.Fprintf(&b, "public class %s\n{\n", name)
	for _, key := range sortedKeys(obj) {
		fmt.Fprintf(&b, "    [JsonProperty(\"%s\")]\n", key)
		fmt.Fprintf(&b, "    public %s %s { get; set; }\n\n", csharpType(obj[key], key, &nested), naming.Pascal(key))
	}
	b.WriteString("}\n")

	for _, n := range nested {
		b.WriteString("\n")
		b.WriteString(generateCSharp(n.obj, n.name))
	}
	return b.String()
}

func csharpType(v interface{}, field string, nested *[]nestedType) string {
	switch val := v.(type) {
	case bool:
		return "bool"
	case json.Number:
		if isFloat(val) {
			return "double"
		}
		return "int"
	case string:
		return "string"
	case []interface{}:
		if len(val) == 0 {
			return "List<object>"
		}
		if obj, ok := val[0].(map[string]interface{}); ok {
			return "List<" + nest(nested, field, obj) + ">"
		}
		return "List<" + csharpType(val[0], field, nested) + ">"
	case map[string]interface{}:
		return nest(nested, field, val)
	default:
		return "object"
	}
}

// === Go ===

func generateGo(obj map[string]interface{}, name string) string {
	var b strings.Builder
	var nested []nestedType

	fmt.Fprintf(&b, "type %s struct {\n", name)
	for _, key := range sortedKeys(obj) {
		fmt.Fprintf(&b, "    %s %s `json:\"%s\"`\n", naming.Pascal(key), goType(obj[key], key, &nested), key)
	}
	b.WriteString("}\n")

	for _, n := range nested {
		b.WriteString("\n")
		b.WriteString(generateGo(n.obj, n.name))
	}
	return b.String()
}

func goType(v interface{}, field string, nested *[]nestedType) string {
	switch val := v.(type) {
	case bool:
		return "bool"
	case json.Number:
		if isFloat(val) {
			return "float64"
		}
		return "int"
	case string:
		return "string"
	case []interface{}:
		if len(val) == 0 {
			return "[]interface{}"
		}
		if obj, ok := val[0].(map[string]interface{}); ok {
			return "[]" + nest(nested, field, obj)
		}
		return "[]" + goType(val[0], field, nested)
	case map[string]interface{}:
		return nest(nested, field, val)
	default:
		return "interface{}"
	}
}

// === Kotlin ===

func generateKotlin(obj map[string]interface{}, name string) string {
	var b strings.Builder
	var nested []nestedType

	fmt.Fprintf(&b, "data class %s(\n", name)
	keys := sortedKeys(obj)
	for i, key := range keys {
		fmt.Fprintf(&b, "    @SerializedName(\"%s\")\n", key)
		fmt.Fprintf(&b, "    val %s: %s", naming.Camel(key), kotlinType(obj[key], key, &nested))
		if i < len(keys)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(")\n")

	for _, n := range nested {
		b.WriteString("\n")
		b.WriteString(generateKotlin(n.obj, n.name))
	}
	return b.String()
}

func kotlinType(v interface{}, field string, nested *[]nestedType) string {
	switch val := v.(type) {
	case bool:
		return "Boolean"
	case json.Number:
		if isFloat(val) {
			return "Double"
		}
		return "Int"
	case string:
		return "String"
	case []interface{}:
		if len(val) == 0 {
			return "List<Any>"
		}
		if obj, ok := val[0].(map[string]interface{}); ok {
			return "List<" + nest(nested, field, obj) + ">"
		}
		return "List<" + kotlinType(val[0], field, nested) + ">"
	case map[string]interface{}:
		return nest(nested, field, val)
	default:
		return "Any?"
	}
}

// === Swift ===

func generateSwift(obj map[string]interface{}, name string) string {
	var b strings.Builder
	var nested []nestedType

	fmt.Fprintf(&b, "struct %s: Codable {\n", name)
	for _, key := range sortedKeys(obj) {
		fmt.Fprintf(&b, "    let %s: %s\n", naming.Camel(key), swiftType(obj[key], key, &nested))
	}
	b.WriteString("}\n")

	for _, n := range nested {
		b.WriteString("\n")
		b.WriteString(generateSwift(n.obj, n.name))
	}
	return b.String()
}

func swiftType(v interface{}, field string, nested *[]nestedType) string {
	switch val := v.(type) {
	case bool:
		return "Bool"
	case json.Number:
		if isFloat(val) {
			return "Double"
		}
		return "Int"
	case string:
		return "String"
	case []interface{}:
		if len(val) == 0 {
			return "[Any]"
		}
		if obj, ok := val[0].(map[string]interface{}); ok {
			return "[" + nest(nested, field, obj) + "]"
		}
		return "[" + swiftType(val[0], field, nested) + "]"
	case map[string]interface{}:
		return nest(nested, field, val)
	default:
		return "Any?"
	}
}
