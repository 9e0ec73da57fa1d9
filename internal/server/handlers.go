package server

import (
	"encoding/json"
	"fmt"
	"image/color"

	"github.com/pixelfit/resfix-mcp/internal/imageio"
	"github.com/pixelfit/resfix-mcp/internal/resfix"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_fix_resolution").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified
// tool. Tool results are wrapped in MCP's content format; execution errors
// become JSON-RPC errors with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.Debug().Err(err).Str("tool", params.Name).Msg("tool call failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_info":
		return s.handleImageInfo(args)
	case "image_target_size":
		return s.handleImageTargetSize(args)
	case "image_fix_resolution":
		return s.handleImageFixResolution(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Tool Handlers ===

type imageInfoArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imageio.LoadInfo(s.cache, a.Path)
}

type targetSizeArgs struct {
	Path            string `json:"path"`
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	RoundToMultiple int    `json:"round_to_multiple"`
}

// TargetSizeResult reports the computed target dimensions and the per-axis
// pixel deltas a fit strategy will have to absorb.
type TargetSizeResult struct {
	Width        int `json:"width"`
	Height       int `json:"height"`
	TargetWidth  int `json:"target_width"`
	TargetHeight int `json:"target_height"`
	PadWidth     int `json:"pad_width"`
	PadHeight    int `json:"pad_height"`
	Multiple     int `json:"multiple"`
}

func (s *Server) handleImageTargetSize(args json.RawMessage) (interface{}, error) {
	var a targetSizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.RoundToMultiple == 0 {
		a.RoundToMultiple = s.cfg.DefaultMultiple
	}

	w, h := a.Width, a.Height
	if a.Path != "" {
		img, err := s.cache.Load(a.Path)
		if err != nil {
			return nil, err
		}
		w = img.Bounds().Dx()
		h = img.Bounds().Dy()
	}

	tw, th, err := resfix.ComputeTarget(w, h, a.RoundToMultiple)
	if err != nil {
		return nil, err
	}

	return &TargetSizeResult{
		Width:        w,
		Height:       h,
		TargetWidth:  tw,
		TargetHeight: th,
		PadWidth:     tw - w,
		PadHeight:    th - h,
		Multiple:     a.RoundToMultiple,
	}, nil
}

type fixResolutionArgs struct {
	Path            string `json:"path"`
	Fit             string `json:"fit"`
	Method          string `json:"method"`
	RoundToMultiple int    `json:"round_to_multiple"`
	PadColor        string `json:"pad_color"`
	OutputPath      string `json:"output_path"`
}

// FixResolutionResult carries the adapted image and the parameters that
// produced it.
type FixResolutionResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Fit         string `json:"fit"`
	Method      string `json:"method"`
	Multiple    int    `json:"multiple"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	SavedPath   string `json:"saved_path,omitempty"`
}

func (s *Server) handleImageFixResolution(args json.RawMessage) (interface{}, error) {
	var a fixResolutionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	params := resfix.Params{
		Multiple: s.cfg.DefaultMultiple,
		Fit:      s.cfg.DefaultFit,
		Method:   s.cfg.DefaultMethod,
	}
	if a.RoundToMultiple != 0 {
		params.Multiple = a.RoundToMultiple
	}
	if a.Fit != "" {
		fit, err := resfix.ParseFitMode(a.Fit)
		if err != nil {
			return nil, err
		}
		params.Fit = fit
	}
	if a.Method != "" {
		method, err := resfix.ParseFilter(a.Method)
		if err != nil {
			return nil, err
		}
		params.Method = method
	}
	if a.PadColor != "" {
		fill, err := resfix.ParseFillColor(a.PadColor)
		if err != nil {
			return nil, err
		}
		params.Fill = fill
	} else {
		params.Fill = color.NRGBA{0, 0, 0, 255}
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	res, err := resfix.Fix(img, params)
	if err != nil {
		return nil, err
	}

	encoded, err := imageio.EncodeBase64PNG(res.Image)
	if err != nil {
		return nil, err
	}

	result := &FixResolutionResult{
		Width:       res.Width,
		Height:      res.Height,
		Fit:         string(params.Fit),
		Method:      string(params.Method),
		Multiple:    params.Multiple,
		ImageBase64: encoded,
		MimeType:    "image/png",
	}

	if a.OutputPath != "" {
		if err := imageio.Save(res.Image, a.OutputPath); err != nil {
			return nil, err
		}
		result.SavedPath = a.OutputPath
	}

	s.log.Info().
		Str("path", a.Path).
		Str("fit", string(params.Fit)).
		Int("multiple", params.Multiple).
		Int("width", res.Width).
		Int("height", res.Height).
		Msg("fixed resolution")

	return result, nil
}
