package server

import (
	"fmt"

	"github.com/pixelfit/resfix-mcp/internal/resfix"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools. Enum menus are built from
// the core's tables so the schema always matches what the core accepts.
func GetToolDefinitions() []Tool {
	fitModes := resfix.FitModes()
	filters := resfix.Filters()
	multiples := make([]interface{}, len(resfix.Multiples))
	for i, m := range resfix.Multiples {
		multiples[i] = m
	}

	return []Tool{
		{
			Name:        "image_info",
			Description: "Get image dimensions, format, and which rounding multiples already divide both axes evenly.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_target_size",
			Description: "Compute the smallest dimensions >= the input that are divisible by the rounding multiple. Accepts explicit width/height or an image path; touches no pixel data.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Image file to read dimensions from (alternative to width/height)",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Input width in pixels (ignored when path is given)",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Input height in pixels (ignored when path is given)",
					},
					"round_to_multiple": map[string]interface{}{
						"type":        "integer",
						"enum":        multiples,
						"description": fmt.Sprintf("Rounding multiple (default %d)", resfix.DefaultMultiple),
					},
				},
			},
		},
		{
			Name:        "image_fix_resolution",
			Description: "Resize an image so both dimensions are divisible by the rounding multiple, using the selected fit strategy. Returns the result as base64 PNG plus its final dimensions.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"fit": map[string]interface{}{
						"type":        "string",
						"enum":        fitModes,
						"description": "Content adaptation strategy: smart_fill mirrors edge content, letterbox pads, crop trims, fill stretches",
					},
					"method": map[string]interface{}{
						"type":        "string",
						"enum":        filters,
						"description": "Resampling kernel for strategies that resample",
					},
					"round_to_multiple": map[string]interface{}{
						"type":        "integer",
						"enum":        multiples,
						"description": fmt.Sprintf("Rounding multiple (default %d)", resfix.DefaultMultiple),
					},
					"pad_color": map[string]interface{}{
						"type":        "string",
						"description": "Letterbox bar color as #rrggbb hex (default #000000)",
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional file to save the result to (.png, .jpg, .jpeg)",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
