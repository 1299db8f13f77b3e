// Package server implements the MCP (Model Context Protocol) server for color conversion tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the colorconv package
// through the MCP protocol, so MCP-compatible clients can convert colors between
// RGB, CMYK, HEX, HSL, HSV and packed integer form with exact, repeatable results.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Conversions to RGB:
//   - color_cmyk_to_rgb, color_hex_to_rgb, color_hsl_to_rgb,
//     color_hsv_to_rgb, color_int_to_rgb
//
// Conversions from RGB:
//   - color_rgb_to_cmyk, color_rgb_to_hex, color_rgb_to_hsl,
//     color_rgb_to_hsv, color_rgb_to_int
//
// Analysis Helpers:
//   - color_describe: One color in every representation
//   - color_distance: CIEDE2000 distance between two hex colors
//   - color_swatch: Render a color as a PNG
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// Arguments outside their documented ranges (RGB channels beyond 0-255, CMYK
// or saturation beyond 0.0-1.0) are rejected rather than converted.
//
// # Logging
//
// Diagnostics go to the hclog.Logger supplied with WithLogger. Nothing is
// ever written to stdout except protocol responses.
//
// # Usage
//
//	srv := server.New(server.WithLogger(logger))
//	if err := srv.Run(); err != nil {
//	    logger.Error("server error", "error", err)
//	}
package server
