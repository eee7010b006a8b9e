// Package jsonpath evaluates a small JSONPath subset against JSON documents.
//
// Supported: the root $, dotted names, quoted bracket names ['a.b'], array
// indexes [0] and the array wildcard [*]. Expressions are translated to
// gjson paths.
package jsonpath

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/tidwall/gjson"
)

// Extract extracts a value from a JSON string using a JSONPath expression.
// Objects and arrays are returned as raw JSON.
func Extract(json string, path string) (string, error) {
	if json == "" {
		return "", fmt.Errorf("empty JSON string")
	}
	if !gjson.Valid(json) {
		return "", fmt.Errorf("invalid JSON document")
	}

	gpath, err := Compile(path)
	if err != nil {
		return "", err
	}

	result := gjson.Get(json, gpath)
	if !result.Exists() {
		return "", fmt.Errorf("path not found: %s", path)
	}
	if result.Type == gjson.Null {
		return "null", nil
	}
	return result.String(), nil
}

// ExtractMultiple extracts multiple values from a JSON string using a map of
// JSONPath expressions. Values that could be extracted are returned even when
// others fail.
func ExtractMultiple(json string, paths map[string]string) (map[string]string, error) {
	if json == "" {
		return nil, fmt.Errorf("empty JSON string")
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no JSONPath expressions provided")
	}

	results := make(map[string]string)
	var result *multierror.Error
	for name, path := range paths {
		value, err := Extract(json, path)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", name, err))
			continue
		}
		results[name] = value
	}
	return results, result.ErrorOrNil()
}

// Compile translates a JSONPath expression to a gjson path.
func Compile(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("empty JSONPath expression")
	}
	if !strings.HasPrefix(path, "$") {
		return "", fmt.Errorf("JSONPath must start with $: %s", path)
	}

	var parts []string
	rest := path[1:]
	for rest != "" {
		switch rest[0] {
		case '.':
			rest = rest[1:]
			end := strings.IndexAny(rest, ".[")
			if end < 0 {
				end = len(rest)
			}
			name := rest[:end]
			if name == "" {
				return "", fmt.Errorf("empty member name in %s", path)
			}
			if name == "*" {
				return "", fmt.Errorf("member wildcard is not supported: %s", path)
			}
			parts = append(parts, escape(name))
			rest = rest[end:]
		case '[':
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return "", fmt.Errorf("unclosed bracket in %s", path)
			}
			part, err := bracket(rest[1:end])
			if err != nil {
				return "", fmt.Errorf("%v in %s", err, path)
			}
			parts = append(parts, part)
			rest = rest[end+1:]
		default:
			return "", fmt.Errorf("unexpected %q in %s", rest[0], path)
		}
	}

	if len(parts) == 0 {
		return "@this", nil
	}
	return strings.Join(parts, "."), nil
}

func bracket(inner string) (string, error) {
	switch {
	case inner == "*":
		return "#", nil
	case len(inner) >= 2 && (inner[0] == '\'' || inner[0] == '"') && inner[len(inner)-1] == inner[0]:
		name := inner[1 : len(inner)-1]
		if name == "" {
			return "", fmt.Errorf("empty member name")
		}
		return escape(name), nil
	default:
		if _, err := strconv.ParseUint(inner, 10, 32); err != nil {
			return "", fmt.Errorf("invalid array index %q", inner)
		}
		return inner, nil
	}
}

// escape quotes the characters gjson treats as path syntax.
func escape(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\', '!', '=', '<', '>', '%':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
