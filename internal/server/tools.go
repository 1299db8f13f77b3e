package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// channelProp describes an integer 0-255 color channel.
func channelProp(desc string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"minimum":     0,
		"maximum":     255,
		"description": desc,
	}
}

// unitProp describes a real 0.0-1.0 component.
func unitProp(desc string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "number",
		"minimum":     0,
		"maximum":     1,
		"description": desc,
	}
}

func hueProp() map[string]interface{} {
	return map[string]interface{}{
		"type":        "number",
		"description": "Hue in degrees. Any finite value; folded into [0, 360)",
	}
}

// rgbSchema is the input schema shared by every tool taking an RGB triple.
func rgbSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"r": channelProp("Red channel (0-255)"),
			"g": channelProp("Green channel (0-255)"),
			"b": channelProp("Blue channel (0-255)"),
		},
		"required": []string{"r", "g", "b"},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Conversions to RGB
		{
			Name:        "color_cmyk_to_rgb",
			Description: "Convert CMYK (each 0.0-1.0) to RGB. Channels are rounded up, not to nearest.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"c": unitProp("Cyan (0.0-1.0)"),
					"m": unitProp("Magenta (0.0-1.0)"),
					"y": unitProp("Yellow (0.0-1.0)"),
					"k": unitProp("Key/black (0.0-1.0)"),
				},
				"required": []string{"c", "m", "y", "k"},
			},
		},
		{
			Name:        "color_hex_to_rgb",
			Description: "Convert a 3 or 6 digit hex string (no '#') to RGB. 3-digit input maps each digit to a raw 0-15 channel unless shorthand is true.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hex": map[string]interface{}{
						"type":        "string",
						"description": "Hex digits, e.g. \"ff8000\" or \"f80\"",
					},
					"shorthand": map[string]interface{}{
						"type":        "boolean",
						"description": "Expand 3-digit input CSS-style (\"f80\" -> \"ff8800\"). Default false",
						"default":     false,
					},
				},
				"required": []string{"hex"},
			},
		},
		{
			Name:        "color_hsl_to_rgb",
			Description: "Convert HSL (hue in degrees, saturation and lightness 0.0-1.0) to RGB.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"h": hueProp(),
					"s": unitProp("Saturation (0.0-1.0)"),
					"l": unitProp("Lightness (0.0-1.0)"),
				},
				"required": []string{"h", "s", "l"},
			},
		},
		{
			Name:        "color_hsv_to_rgb",
			Description: "Convert HSV (hue in degrees, saturation and value 0.0-1.0) to RGB.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"h": hueProp(),
					"s": unitProp("Saturation (0.0-1.0)"),
					"v": unitProp("Value (0.0-1.0)"),
				},
				"required": []string{"h", "s", "v"},
			},
		},
		{
			Name:        "color_int_to_rgb",
			Description: "Unpack a 24-bit integer (0xRRGGBB) into RGB. Bits above 23 are ignored.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"value": map[string]interface{}{
						"type":        "integer",
						"minimum":     0,
						"maximum":     4294967295,
						"description": "Packed color value",
					},
				},
				"required": []string{"value"},
			},
		},

		// Conversions from RGB
		{
			Name:        "color_rgb_to_cmyk",
			Description: "Convert RGB to CMYK. Pure black yields c=m=y=0, k=1.",
			InputSchema: rgbSchema(),
		},
		{
			Name:        "color_rgb_to_hex",
			Description: "Convert RGB to a 6 digit lowercase hex string.",
			InputSchema: rgbSchema(),
		},
		{
			Name:        "color_rgb_to_hsl",
			Description: "Convert RGB to HSL. Grays yield hue 0 and saturation 0.",
			InputSchema: rgbSchema(),
		},
		{
			Name:        "color_rgb_to_hsv",
			Description: "Convert RGB to HSV. Grays yield hue 0 and saturation 0.",
			InputSchema: rgbSchema(),
		},
		{
			Name:        "color_rgb_to_int",
			Description: "Pack RGB into a 24-bit integer r<<16 | g<<8 | b.",
			InputSchema: rgbSchema(),
		},

		// Analysis Helpers
		{
			Name:        "color_describe",
			Description: "Return an RGB color in every representation: hex, packed int, HSL, HSV and CMYK.",
			InputSchema: rgbSchema(),
		},
		{
			Name:        "color_distance",
			Description: "Perceptual CIEDE2000 distance between two hex colors (0 = identical, black vs white is about 1.0).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hex1": map[string]interface{}{
						"type":        "string",
						"description": "First color as 6 hex digits",
					},
					"hex2": map[string]interface{}{
						"type":        "string",
						"description": "Second color as 6 hex digits",
					},
				},
				"required": []string{"hex1", "hex2"},
			},
		},
		{
			Name:        "color_swatch",
			Description: "Render an RGB color as a base64-encoded PNG swatch, optionally labelled with its hex code.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"r": channelProp("Red channel (0-255)"),
					"g": channelProp("Green channel (0-255)"),
					"b": channelProp("Blue channel (0-255)"),
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Swatch width in pixels (1-1024). Default 64",
						"default":     64,
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Swatch height in pixels (1-1024). Default 64",
						"default":     64,
					},
					"label": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw the hex code on the swatch. Default false",
						"default":     false,
					},
				},
				"required": []string{"r", "g", "b"},
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
