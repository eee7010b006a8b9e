package jsonpath

import (
	"testing"

	"github.com/hashicorp/go-multierror"
)

const doc = `{
	"verbose": false,
	"progress": 0,
	"resultsFormat": "text",
	"etw": {"enabled": true, "diskIO": true},
	"timeSpans": [
		{
			"duration": 10,
			"affinity": [{"group": 0, "processor": 3}],
			"targets": [
				{"path": "/data/a.dat", "blockSize": 4096},
				{"path": "/data/b.dat", "blockSize": 65536}
			]
		},
		{
			"duration": 20,
			"targets": [{"path": "#1", "blockSize": 512}]
		}
	],
	"odd.key": {"a|b": 1},
	"nothing": null
}`

func TestExtract(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		expected      string
		expectedError bool
	}{
		{name: "Simple property", path: "$.resultsFormat", expected: "text"},
		{name: "Boolean property", path: "$.verbose", expected: "false"},
		{name: "Nested property", path: "$.etw.diskIO", expected: "true"},
		{name: "Array index", path: "$.timeSpans[1].duration", expected: "20"},
		{name: "Nested array index", path: "$.timeSpans[0].targets[1].path", expected: "/data/b.dat"},
		{name: "Bracket name", path: "$['timeSpans'][0]['duration']", expected: "10"},
		{name: "Wildcard", path: "$.timeSpans[*].duration", expected: "[10,20]"},
		{name: "Nested wildcard", path: "$.timeSpans[0].targets[*].blockSize", expected: "[4096,65536]"},
		{name: "Object value", path: "$.timeSpans[0].affinity[0]", expected: `{"group": 0, "processor": 3}`},
		{name: "Escaped names", path: `$["odd.key"]['a|b']`, expected: "1"},
		{name: "Null value", path: "$.nothing", expected: "null"},
		{name: "Missing property", path: "$.timeSpans[0].warmup", expectedError: true},
		{name: "Index out of range", path: "$.timeSpans[5]", expectedError: true},
		{name: "Empty path", path: "", expectedError: true},
		{name: "No root", path: "timeSpans", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Extract(doc, tt.path)
			if tt.expectedError {
				if err == nil {
					t.Errorf("Expected error for path %q, got %q", tt.path, result)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for path %q: %v", tt.path, err)
			}
			if result != tt.expected {
				t.Errorf("Extract(%q) = %q, want %q", tt.path, result, tt.expected)
			}
		})
	}

	if _, err := Extract("", "$.a"); err == nil {
		t.Error("Expected error for empty JSON")
	}
	if _, err := Extract("{not json", "$.a"); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

func TestExtractMultiple(t *testing.T) {
	results, err := ExtractMultiple(doc, map[string]string{
		"format":   "$.resultsFormat",
		"first":    "$.timeSpans[0].targets[0].path",
		"missing":  "$.timeSpans[0].cooldown",
		"missing2": "$.etw.registry",
	})

	if err == nil {
		t.Fatal("Expected an error for missing paths")
	}
	merr, ok := err.(*multierror.Error)
	if !ok {
		t.Fatalf("Expected *multierror.Error, got %T", err)
	}
	if len(merr.Errors) != 2 {
		t.Errorf("Expected 2 errors, got %d", len(merr.Errors))
	}
	if results["format"] != "text" || results["first"] != "/data/a.dat" {
		t.Errorf("Unexpected results: %v", results)
	}

	if _, err := ExtractMultiple(doc, nil); err == nil {
		t.Error("Expected error for no paths")
	}
	if _, err := ExtractMultiple("", map[string]string{"a": "$.a"}); err == nil {
		t.Error("Expected error for empty JSON")
	}
}

func TestCompile(t *testing.T) {
	tests := []struct {
		jsonPath  string
		gjsonPath string
	}{
		{"$", "@this"},
		{"$.name", "name"},
		{"$['name']", "name"},
		{`$["name"]`, "name"},
		{"$.user.name", "user.name"},
		{"$.items[0]", "items.0"},
		{"$.items[0].name", "items.0.name"},
		{"$.deeply.nested[0].array[1].value", "deeply.nested.0.array.1.value"},
		{"$[0]", "0"},
		{"$[0].name", "0.name"},
		{"$.items[*].name", "items.#.name"},
		{"$['a.b']", `a\.b`},
	}

	for _, tt := range tests {
		t.Run(tt.jsonPath, func(t *testing.T) {
			result, err := Compile(tt.jsonPath)
			if err != nil {
				t.Fatalf("Compile(%q) failed: %v", tt.jsonPath, err)
			}
			if result != tt.gjsonPath {
				t.Errorf("Compile(%q) = %q, want %q", tt.jsonPath, result, tt.gjsonPath)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	for _, path := range []string{"", "name", "$.", "$..name", "$.*", "$[", "$[x]", "$[-1]", "$['']", "$name"} {
		t.Run(path, func(t *testing.T) {
			if _, err := Compile(path); err == nil {
				t.Errorf("Expected error for %q", path)
			}
		})
	}
}
