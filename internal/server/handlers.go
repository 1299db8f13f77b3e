package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/color-convert-mcp/internal/colorconv"
	"github.com/ironsheep/color-convert-mcp/internal/swatch"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_rgb_to_hex").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Debug("tool failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}
	s.logger.Debug("tool succeeded", "tool", params.Name)

	return s.toolResponse(req.ID, params.Name, result)
}

// toolResponse wraps a tool result in MCP's text content format. A result
// that cannot be encoded becomes a -32000 error instead of empty text.
func (s *Server) toolResponse(id interface{}, tool string, result interface{}) *MCPResponse {
	text, err := marshalJSON(result)
	if err != nil {
		s.logger.Error("failed to encode tool result", "tool", tool, "error", err)
		return s.errorResponse(id, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": text,
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Validates them with the colorconv constructors
//  3. Calls the matching colorconv or swatch function
//  4. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Conversions to RGB
	case "color_cmyk_to_rgb":
		return s.handleCMYKToRGB(args)
	case "color_hex_to_rgb":
		return s.handleHexToRGB(args)
	case "color_hsl_to_rgb":
		return s.handleHSLToRGB(args)
	case "color_hsv_to_rgb":
		return s.handleHSVToRGB(args)
	case "color_int_to_rgb":
		return s.handleIntToRGB(args)

	// Conversions from RGB
	case "color_rgb_to_cmyk":
		return s.withRGB(args, func(c colorconv.RGB) interface{} { return colorconv.RGBToCMYK(c) })
	case "color_rgb_to_hex":
		return s.withRGB(args, func(c colorconv.RGB) interface{} {
			return hexResult{Hex: colorconv.RGBToHex(c)}
		})
	case "color_rgb_to_hsl":
		return s.withRGB(args, func(c colorconv.RGB) interface{} { return colorconv.RGBToHSL(c) })
	case "color_rgb_to_hsv":
		return s.withRGB(args, func(c colorconv.RGB) interface{} { return colorconv.RGBToHSV(c) })
	case "color_rgb_to_int":
		return s.withRGB(args, func(c colorconv.RGB) interface{} {
			v := colorconv.RGBToInt(c)
			return intResult{Value: v, Formatted: colorconv.FormatInt(v)}
		})

	// Analysis Helpers
	case "color_describe":
		return s.withRGB(args, func(c colorconv.RGB) interface{} { return colorconv.Describe(c) })
	case "color_distance":
		return s.handleDistance(args)
	case "color_swatch":
		return s.handleSwatch(args)

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

// marshalJSON converts a value to pretty-printed JSON string.
func marshalJSON(v interface{}) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(b), nil
}

type hexResult struct {
	Hex string `json:"hex"`
}

type intResult struct {
	Value     uint32 `json:"value"`
	Formatted string `json:"formatted"`
}

type distanceResult struct {
	Hex1     string  `json:"hex1"`
	Hex2     string  `json:"hex2"`
	Distance float64 `json:"distance"`
}

// === Conversions to RGB ===

type cmykArgs struct {
	C float64 `json:"c"`
	M float64 `json:"m"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}

func (s *Server) handleCMYKToRGB(args json.RawMessage) (interface{}, error) {
	var a cmykArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := colorconv.NewCMYK(a.C, a.M, a.Y, a.K)
	if err != nil {
		return nil, err
	}
	return colorconv.CMYKToRGB(c), nil
}

type hexArgs struct {
	Hex       string `json:"hex"`
	Shorthand bool   `json:"shorthand"`
}

func (s *Server) handleHexToRGB(args json.RawMessage) (interface{}, error) {
	var a hexArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	hex := a.Hex
	if a.Shorthand {
		expanded, err := colorconv.ExpandShortHex(hex)
		if err != nil {
			return nil, err
		}
		hex = expanded
	}
	return colorconv.HexToRGB(hex)
}

type hslArgs struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

func (s *Server) handleHSLToRGB(args json.RawMessage) (interface{}, error) {
	var a hslArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := colorconv.NewHSL(a.H, a.S, a.L)
	if err != nil {
		return nil, err
	}
	return colorconv.HSLToRGB(c), nil
}

type hsvArgs struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

func (s *Server) handleHSVToRGB(args json.RawMessage) (interface{}, error) {
	var a hsvArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := colorconv.NewHSV(a.H, a.S, a.V)
	if err != nil {
		return nil, err
	}
	return colorconv.HSVToRGB(c), nil
}

type intArgs struct {
	Value uint32 `json:"value"`
}

func (s *Server) handleIntToRGB(args json.RawMessage) (interface{}, error) {
	var a intArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return colorconv.IntToRGB(a.Value), nil
}

// === Conversions from RGB ===

type rgbArgs struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

func (a rgbArgs) toRGB() (colorconv.RGB, error) {
	return colorconv.NewRGB(a.R, a.G, a.B)
}

// withRGB decodes and validates an RGB triple, then applies fn.
func (s *Server) withRGB(args json.RawMessage, fn func(colorconv.RGB) interface{}) (interface{}, error) {
	var a rgbArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := a.toRGB()
	if err != nil {
		return nil, err
	}
	return fn(c), nil
}

// === Analysis Helper Handlers ===

type distanceArgs struct {
	Hex1 string `json:"hex1"`
	Hex2 string `json:"hex2"`
}

func (s *Server) handleDistance(args json.RawMessage) (interface{}, error) {
	var a distanceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c1, err := colorconv.HexToRGB(a.Hex1)
	if err != nil {
		return nil, fmt.Errorf("hex1: %w", err)
	}
	c2, err := colorconv.HexToRGB(a.Hex2)
	if err != nil {
		return nil, fmt.Errorf("hex2: %w", err)
	}
	return distanceResult{
		Hex1:     colorconv.RGBToHex(c1),
		Hex2:     colorconv.RGBToHex(c2),
		Distance: colorconv.Distance(c1, c2),
	}, nil
}

type swatchArgs struct {
	rgbArgs
	Width  int  `json:"width"`
	Height int  `json:"height"`
	Label  bool `json:"label"`
}

func (s *Server) handleSwatch(args json.RawMessage) (interface{}, error) {
	var a swatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := a.toRGB()
	if err != nil {
		return nil, err
	}
	return swatch.Render(c, swatch.Options{Width: a.Width, Height: a.Height, Label: a.Label})
}
