package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ludo-technologies/csim/domain"
	mcptypes "github.com/mark3labs/mcp-go/mcp"
)

type compareToolResponse struct {
	domain.CompareResponse
	GateTripped bool `json:"gate_tripped"`
}

func callTool(t *testing.T, name string, args map[string]interface{},
	handler func(context.Context, mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error),
) *mcptypes.CallToolResult {
	t.Helper()

	request := mcptypes.CallToolRequest{
		Params: mcptypes.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}

	result, err := handler(context.Background(), request)
	if err != nil {
		t.Fatalf("unexpected handler error: %v", err)
	}
	if result == nil {
		t.Fatal("expected a tool result")
	}
	return result
}

func decodeResponse(t *testing.T, result *mcptypes.CallToolResult) *compareToolResponse {
	t.Helper()

	if result.IsError {
		t.Fatalf("expected successful tool result, got error result: %+v", result.Content)
	}
	if len(result.Content) == 0 {
		t.Fatal("expected tool result content")
	}

	textContent, ok := result.Content[0].(mcptypes.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}

	var response compareToolResponse
	if err := json.Unmarshal([]byte(textContent.Text), &response); err != nil {
		t.Fatalf("failed to unmarshal compare response: %v", err)
	}
	return &response
}

func writeTempSource(t *testing.T, dir, name, source string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("failed to write source file: %v", err)
	}
	return path
}

func TestHandleCompareFiles(t *testing.T) {
	tempDir := t.TempDir()

	pathA := writeTempSource(t, tempDir, "a.c", `
int sum(int n) {
	int total = 0;
	for (int i = 0; i < n; i++) {
		total = total + i;
	}
	return total;
}
`)
	pathB := writeTempSource(t, tempDir, "b.c", `
int accumulate(int count) {
	int acc = 0;
	for (int k = 0; k < count; k++) {
		acc = acc + k;
	}
	return acc;
}
`)

	handlers := NewHandlerSet(nil)
	result := callTool(t, "compare_files", map[string]interface{}{
		"path_a": pathA,
		"path_b": pathB,
	}, handlers.HandleCompareFiles)

	response := decodeResponse(t, result)
	if response.Similarity != 1.0 {
		t.Errorf("renamed-only variants should score 1.0, got %f", response.Similarity)
	}
	if response.Verdict != domain.VerdictHighlySimilar {
		t.Errorf("expected verdict %s, got %s", domain.VerdictHighlySimilar, response.Verdict)
	}
	if response.GateTripped {
		t.Error("gate should not trip without fail_above")
	}
	if response.InputA == nil || response.InputA.TokenCount == 0 {
		t.Error("expected input A statistics to be populated")
	}
}

func TestHandleCompareFilesGate(t *testing.T) {
	tempDir := t.TempDir()

	source := "int main() { return 0; }\n"
	pathA := writeTempSource(t, tempDir, "a.c", source)
	pathB := writeTempSource(t, tempDir, "b.c", source)

	handlers := NewHandlerSet(nil)
	result := callTool(t, "compare_files", map[string]interface{}{
		"path_a":     pathA,
		"path_b":     pathB,
		"fail_above": 0.9,
	}, handlers.HandleCompareFiles)

	response := decodeResponse(t, result)
	if !response.GateTripped {
		t.Error("identical files should trip a 0.9 gate")
	}
}

func TestHandleCompareFilesMissingPath(t *testing.T) {
	handlers := NewHandlerSet(nil)

	result := callTool(t, "compare_files", map[string]interface{}{
		"path_a": "/nonexistent/a.c",
		"path_b": "/nonexistent/b.c",
	}, handlers.HandleCompareFiles)

	if !result.IsError {
		t.Error("expected error result for nonexistent paths")
	}
}

func TestHandleCompareFilesMissingArgument(t *testing.T) {
	handlers := NewHandlerSet(nil)

	result := callTool(t, "compare_files", map[string]interface{}{
		"path_a": "only_one.c",
	}, handlers.HandleCompareFiles)

	if !result.IsError {
		t.Error("expected error result when path_b is missing")
	}
}

func TestHandleCompareSource(t *testing.T) {
	handlers := NewHandlerSet(nil)

	result := callTool(t, "compare_source", map[string]interface{}{
		"source_a": "int f(int x) { if (x > 0) { return x; } return 0; }",
		"source_b": "int g(int y) { while (y > 0) { y--; } return y; }",
	}, handlers.HandleCompareSource)

	response := decodeResponse(t, result)
	if response.Similarity < 0.0 || response.Similarity > 1.0 {
		t.Errorf("similarity out of range: %f", response.Similarity)
	}
	if response.Similarity == 1.0 {
		t.Error("an if body and a while loop should not be structurally identical")
	}
}

func TestHandleCompareSourceEmptyInput(t *testing.T) {
	handlers := NewHandlerSet(nil)

	result := callTool(t, "compare_source", map[string]interface{}{
		"source_a": "",
		"source_b": "int main() { return 0; }",
	}, handlers.HandleCompareSource)

	if !result.IsError {
		t.Error("expected error result for an empty source buffer")
	}
}

func TestHandleCompareSourceInvalidArguments(t *testing.T) {
	handlers := NewHandlerSet(nil)

	request := mcptypes.CallToolRequest{
		Params: mcptypes.CallToolParams{
			Name:      "compare_source",
			Arguments: "not a map",
		},
	}

	result, err := handlers.HandleCompareSource(context.Background(), request)
	if err != nil {
		t.Fatalf("unexpected handler error: %v", err)
	}
	if !result.IsError {
		t.Error("expected error result for malformed arguments")
	}
}
