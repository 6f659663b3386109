package mcp

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ludo-technologies/csim/domain"
	"github.com/ludo-technologies/csim/service"
	"github.com/mark3labs/mcp-go/mcp"
)

// HandlerSet exposes MCP tool handlers with shared dependencies.
type HandlerSet struct {
	deps *Dependencies
}

// NewHandlerSet constructs a handler set.
func NewHandlerSet(deps *Dependencies) *HandlerSet {
	if deps == nil {
		deps = NewDependencies(nil, "")
	}
	return &HandlerSet{deps: deps}
}

// HandleCompareFiles handles the compare_files tool
func (h *HandlerSet) HandleCompareFiles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	pathA, ok := args["path_a"].(string)
	if !ok {
		return mcp.NewToolResultError("path_a parameter is required and must be a string"), nil
	}
	pathB, ok := args["path_b"].(string)
	if !ok {
		return mcp.NewToolResultError("path_b parameter is required and must be a string"), nil
	}

	for _, path := range []string{pathA, pathB} {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return mcp.NewToolResultError(fmt.Sprintf("path does not exist: %s", path)), nil
		}
	}

	req := h.buildRequest()
	req.InputA = pathA
	req.InputB = pathB

	if failAbove, ok := args["fail_above"].(float64); ok {
		req.FailAbove = &failAbove
	}

	useCase, err := h.deps.BuildCompareUseCase()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to create comparator: %v", err)), nil
	}

	response, err := useCase.Execute(ctx, *req)
	if err != nil {
		// A tripped gate still has a full response worth returning.
		var gateErr *domain.GateError
		if !errors.As(err, &gateErr) || response == nil {
			return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
		}
	}

	return h.toolResult(response, req.GateTripped(response.Similarity))
}

// HandleCompareSource handles the compare_source tool
func (h *HandlerSet) HandleCompareSource(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	sourceA, ok := args["source_a"].(string)
	if !ok {
		return mcp.NewToolResultError("source_a parameter is required and must be a string"), nil
	}
	sourceB, ok := args["source_b"].(string)
	if !ok {
		return mcp.NewToolResultError("source_b parameter is required and must be a string"), nil
	}

	comparator := service.NewCompareService(h.deps.FileReader(), service.NewSilentProgressManager())

	response, err := comparator.CompareSources(ctx, []byte(sourceA), []byte(sourceB))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
	}

	return h.toolResult(response, false)
}

// buildRequest seeds a request from the loaded configuration snapshot.
func (h *HandlerSet) buildRequest() *domain.CompareRequest {
	req := domain.DefaultCompareRequest()
	req.OutputFormat = domain.OutputFormatJSON
	req.OutputWriter = nopWriter{}

	if cfg := h.deps.Config(); cfg != nil {
		req.HighThreshold = cfg.Thresholds.High
		req.ModerateThreshold = cfg.Thresholds.Moderate
		req.LowThreshold = cfg.Thresholds.Low
		if cfg.Compare.GateEnabled() {
			gate := cfg.Compare.FailAbove
			req.FailAbove = &gate
		}
	}
	return req
}

// toolResult renders the response as a JSON tool result, annotated with the
// gate flag so clients do not have to re-derive it.
func (h *HandlerSet) toolResult(response *domain.CompareResponse, gateTripped bool) (*mcp.CallToolResult, error) {
	payload := struct {
		*domain.CompareResponse
		GateTripped bool `json:"gate_tripped"`
	}{response, gateTripped}

	jsonData, err := service.EncodeJSON(payload)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(jsonData), nil
}

// nopWriter swallows report output; MCP results carry the payload instead.
type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
