package server

import (
	"testing"

	"github.com/pixelfit/resfix-mcp/internal/resfix"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	want := []string{"image_info", "image_target_size", "image_fix_resolution"}
	if len(tools) != len(want) {
		t.Fatalf("tool count: got %d, want %d", len(tools), len(want))
	}
	for i, name := range want {
		if tools[i].Name != name {
			t.Errorf("tool %d: got %s, want %s", i, tools[i].Name, name)
		}
		if tools[i].Description == "" {
			t.Errorf("tool %s has no description", tools[i].Name)
		}
		if tools[i].InputSchema["type"] != "object" {
			t.Errorf("tool %s schema is not an object", tools[i].Name)
		}
	}
}

func TestGetToolDefinitions_EnumsMatchCore(t *testing.T) {
	tools := GetToolDefinitions()

	var fix Tool
	for _, tool := range tools {
		if tool.Name == "image_fix_resolution" {
			fix = tool
		}
	}

	props := fix.InputSchema["properties"].(map[string]interface{})

	fitEnum := props["fit"].(map[string]interface{})["enum"].([]string)
	if len(fitEnum) != len(resfix.FitModes()) {
		t.Errorf("fit enum: got %v, want %v", fitEnum, resfix.FitModes())
	}

	methodEnum := props["method"].(map[string]interface{})["enum"].([]string)
	if len(methodEnum) != len(resfix.Filters()) {
		t.Errorf("method enum: got %v, want %v", methodEnum, resfix.Filters())
	}

	multipleEnum := props["round_to_multiple"].(map[string]interface{})["enum"].([]interface{})
	if len(multipleEnum) != len(resfix.Multiples) {
		t.Errorf("multiple enum: got %v, want %v", multipleEnum, resfix.Multiples)
	}
}

func TestHandleToolsList(t *testing.T) {
	s := newTestServer()

	resp := s.handleToolsList(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/list"})
	if resp == nil || resp.Error != nil {
		t.Fatalf("tools/list failed: %+v", resp)
	}

	result := resp.Result.(map[string]interface{})
	tools := result["tools"].([]Tool)
	if len(tools) != 3 {
		t.Errorf("tool count: got %d, want 3", len(tools))
	}
}
