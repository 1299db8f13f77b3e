package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/ironsheep/color-convert-mcp/internal/colorconv"
	"github.com/ironsheep/color-convert-mcp/internal/swatch"
)

// callTool sends a tools/call request through handleRequest
func callTool(t *testing.T, s *Server, name string, args map[string]interface{}) *MCPResponse {
	t.Helper()

	params := map[string]interface{}{
		"name":      name,
		"arguments": args,
	}
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		t.Fatalf("failed to marshal params: %v", err)
	}

	resp := s.handleRequest(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  paramsJSON,
	})
	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	return resp
}

// decodeToolResult unmarshals the text content of a successful tool response
func decodeToolResult(t *testing.T, resp *MCPResponse, v interface{}) {
	t.Helper()

	if resp.Error != nil {
		t.Fatalf("Unexpected error: %+v", resp.Error)
	}
	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	content, ok := result["content"].([]map[string]interface{})
	if !ok || len(content) != 1 {
		t.Fatalf("content: got %#v, want one item", result["content"])
	}
	text, ok := content[0]["text"].(string)
	if !ok {
		t.Fatal("content text should be a string")
	}
	if err := json.Unmarshal([]byte(text), v); err != nil {
		t.Fatalf("failed to decode tool result %q: %v", text, err)
	}
}

func TestToolsCall_ToRGB(t *testing.T) {
	tests := []struct {
		name string
		tool string
		args map[string]interface{}
		want colorconv.RGB
	}{
		{"cmyk white", "color_cmyk_to_rgb", map[string]interface{}{"c": 0, "m": 0, "y": 0, "k": 0}, colorconv.RGB{R: 255, G: 255, B: 255}},
		{"cmyk black", "color_cmyk_to_rgb", map[string]interface{}{"c": 0, "m": 0, "y": 0, "k": 1}, colorconv.RGB{}},
		{"hex orange", "color_hex_to_rgb", map[string]interface{}{"hex": "ff8000"}, colorconv.RGB{R: 255, G: 128, B: 0}},
		{"hex short literal", "color_hex_to_rgb", map[string]interface{}{"hex": "f80"}, colorconv.RGB{R: 15, G: 8, B: 0}},
		{"hex short expanded", "color_hex_to_rgb", map[string]interface{}{"hex": "f80", "shorthand": true}, colorconv.RGB{R: 255, G: 136, B: 0}},
		{"hsl red", "color_hsl_to_rgb", map[string]interface{}{"h": 0, "s": 1, "l": 0.5}, colorconv.RGB{R: 255}},
		{"hsv red", "color_hsv_to_rgb", map[string]interface{}{"h": 0, "s": 1.0, "v": 1.0}, colorconv.RGB{R: 255}},
		{"hsv negative hue", "color_hsv_to_rgb", map[string]interface{}{"h": -120, "s": 1, "v": 1}, colorconv.RGB{B: 255}},
		{"int", "color_int_to_rgb", map[string]interface{}{"value": 11163050}, colorconv.RGB{R: 170, G: 85, B: 170}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got colorconv.RGB
			decodeToolResult(t, callTool(t, New(), tt.tool, tt.args), &got)
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestToolsCall_RGBToHex(t *testing.T) {
	var got struct {
		Hex string `json:"hex"`
	}
	decodeToolResult(t, callTool(t, New(), "color_rgb_to_hex", map[string]interface{}{"r": 255, "g": 128, "b": 0}), &got)
	if got.Hex != "ff8000" {
		t.Errorf("Hex: got %s, want ff8000", got.Hex)
	}
}

func TestToolsCall_RGBToInt(t *testing.T) {
	var got struct {
		Value     uint32 `json:"value"`
		Formatted string `json:"formatted"`
	}
	decodeToolResult(t, callTool(t, New(), "color_rgb_to_int", map[string]interface{}{"r": 170, "g": 85, "b": 170}), &got)
	if got.Value != 11163050 {
		t.Errorf("Value: got %d, want 11163050", got.Value)
	}
	if got.Formatted != "11,163,050" {
		t.Errorf("Formatted: got %s, want 11,163,050", got.Formatted)
	}
}

func TestToolsCall_RGBToCMYK_Black(t *testing.T) {
	var got colorconv.CMYK
	decodeToolResult(t, callTool(t, New(), "color_rgb_to_cmyk", map[string]interface{}{"r": 0, "g": 0, "b": 0}), &got)
	if got != (colorconv.CMYK{K: 1}) {
		t.Errorf("got %+v, want c=m=y=0 k=1", got)
	}
}

func TestToolsCall_RGBToHSLAndHSV_Gray(t *testing.T) {
	args := map[string]interface{}{"r": 128, "g": 128, "b": 128}

	var hsl colorconv.HSL
	decodeToolResult(t, callTool(t, New(), "color_rgb_to_hsl", args), &hsl)
	if hsl.H != 0 || hsl.S != 0 {
		t.Errorf("HSL: got %+v, want hue 0 saturation 0", hsl)
	}

	var hsv colorconv.HSV
	decodeToolResult(t, callTool(t, New(), "color_rgb_to_hsv", args), &hsv)
	if hsv.H != 0 || hsv.S != 0 {
		t.Errorf("HSV: got %+v, want hue 0 saturation 0", hsv)
	}
}

func TestToolsCall_Describe(t *testing.T) {
	var got colorconv.Description
	decodeToolResult(t, callTool(t, New(), "color_describe", map[string]interface{}{"r": 170, "g": 85, "b": 170}), &got)

	if got.Hex != "aa55aa" {
		t.Errorf("Hex: got %s, want aa55aa", got.Hex)
	}
	if got.Int != 11163050 {
		t.Errorf("Int: got %d, want 11163050", got.Int)
	}
	if math.Abs(got.HSL.H-300) > 1e-9 {
		t.Errorf("HSL.H: got %v, want 300", got.HSL.H)
	}
}

func TestToolsCall_Distance(t *testing.T) {
	var same, far struct {
		Distance float64 `json:"distance"`
	}
	decodeToolResult(t, callTool(t, New(), "color_distance", map[string]interface{}{"hex1": "FF8000", "hex2": "ff8000"}), &same)
	decodeToolResult(t, callTool(t, New(), "color_distance", map[string]interface{}{"hex1": "000000", "hex2": "ffffff"}), &far)

	if same.Distance > 1e-12 {
		t.Errorf("identical colors: got %v, want 0", same.Distance)
	}
	if far.Distance <= same.Distance {
		t.Errorf("black/white distance %v should exceed %v", far.Distance, same.Distance)
	}
}

func TestToolsCall_Swatch(t *testing.T) {
	var got swatch.Result
	args := map[string]interface{}{"r": 255, "g": 128, "b": 0, "width": 32, "height": 16, "label": true}
	decodeToolResult(t, callTool(t, New(), "color_swatch", args), &got)

	if got.Width != 32 || got.Height != 16 {
		t.Errorf("size: got %dx%d, want 32x16", got.Width, got.Height)
	}

	data, err := base64.StdEncoding.DecodeString(got.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	if img.Bounds().Dx() != 32 {
		t.Errorf("decoded width: got %d, want 32", img.Bounds().Dx())
	}
}

func TestToolsCall_Errors(t *testing.T) {
	tests := []struct {
		name     string
		tool     string
		args     map[string]interface{}
		wantData string
	}{
		{"bad hex length", "color_hex_to_rgb", map[string]interface{}{"hex": "ff80"}, "invalid format"},
		{"bad hex digits", "color_hex_to_rgb", map[string]interface{}{"hex": "zz0000"}, "invalid format"},
		{"bad shorthand", "color_hex_to_rgb", map[string]interface{}{"hex": "zz0", "shorthand": true}, "invalid format"},
		{"rgb channel too large", "color_rgb_to_hex", map[string]interface{}{"r": 256, "g": 0, "b": 0}, "out of range"},
		{"rgb channel negative", "color_describe", map[string]interface{}{"r": 0, "g": -1, "b": 0}, "out of range"},
		{"cmyk above one", "color_cmyk_to_rgb", map[string]interface{}{"c": 1.5, "m": 0, "y": 0, "k": 0}, "out of range"},
		{"hsl saturation above one", "color_hsl_to_rgb", map[string]interface{}{"h": 0, "s": 2, "l": 0.5}, "out of range"},
		{"hsv value negative", "color_hsv_to_rgb", map[string]interface{}{"h": 0, "s": 1, "v": -0.5}, "out of range"},
		{"negative int", "color_int_to_rgb", map[string]interface{}{"value": -1}, "cannot unmarshal"},
		{"distance bad second hex", "color_distance", map[string]interface{}{"hex1": "000000", "hex2": "nope"}, "hex2"},
		{"swatch too large", "color_swatch", map[string]interface{}{"r": 0, "g": 0, "b": 0, "width": 5000}, "outside"},
		{"unknown tool", "color_to_lab", map[string]interface{}{}, "unknown tool"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := callTool(t, New(), tt.tool, tt.args)
			if resp.Error == nil {
				t.Fatal("expected error response")
			}
			if resp.Error.Code != -32000 {
				t.Errorf("Code: got %d, want -32000", resp.Error.Code)
			}
			data, _ := resp.Error.Data.(string)
			if !strings.Contains(data, tt.wantData) {
				t.Errorf("Data: got %q, want it to contain %q", data, tt.wantData)
			}
		})
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := New()
	resp := s.handleToolsCall(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Params:  json.RawMessage(`"not an object"`),
	})

	if resp.Error == nil {
		t.Fatal("expected error for invalid params")
	}
	if resp.Error.Code != -32602 {
		t.Errorf("Code: got %d, want -32602", resp.Error.Code)
	}
}

func TestToolResponse_UnencodableResult(t *testing.T) {
	var logs bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{Name: "test", Output: &logs, Level: hclog.Error})
	s := New(WithLogger(logger))

	resp := s.toolResponse(1, "color_distance", distanceResult{Distance: math.NaN()})

	if resp.Error == nil {
		t.Fatal("expected error response for unencodable result")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("Code: got %d, want -32000", resp.Error.Code)
	}
	data, _ := resp.Error.Data.(string)
	if !strings.Contains(data, "failed to encode result") {
		t.Errorf("Data: got %q, want encode failure", data)
	}
	if !strings.Contains(logs.String(), "failed to encode tool result") {
		t.Errorf("encode failure was not logged, logs: %q", logs.String())
	}
}

func TestToolsCall_HSLOutputFeedsBack(t *testing.T) {
	s := New()

	var hsl colorconv.HSL
	decodeToolResult(t, callTool(t, s, "color_rgb_to_hsl", map[string]interface{}{"r": 0, "g": 0, "b": 1}), &hsl)
	if hsl.S > 1 {
		t.Fatalf("saturation: got %v, want <= 1", hsl.S)
	}

	var got colorconv.RGB
	args := map[string]interface{}{"h": hsl.H, "s": hsl.S, "l": hsl.L}
	decodeToolResult(t, callTool(t, s, "color_hsl_to_rgb", args), &got)
	if got.R > 1 || got.G > 1 || got.B < 1 || got.B > 2 {
		t.Errorf("round trip: got %+v, want about (0,0,1)", got)
	}
}
