// Package server implements the MCP stdio server that exposes the
// resolution-fixing core as tools.
//
// The server speaks JSON-RPC 2.0 over stdin/stdout, one message per line.
// Logging goes to stderr so it never corrupts the protocol stream.
//
// # Tools
//
//   - image_info: dimensions, format, and which allowed rounding multiples
//     already divide the image.
//   - image_target_size: the pure target-size calculation, for explicit
//     dimensions or an image file, without touching pixel data.
//   - image_fix_resolution: the full pipeline. Computes the target size,
//     adapts the image content to it, returns a base64 PNG and the final
//     dimensions, optionally saving to a file.
//
// Parameter menus (fit modes, filter kernels, allowed multiples) in the tool
// schemas are generated from the core's enum tables, so the server cannot
// drift from what the core validates. Defaults for omitted parameters come
// from the process configuration.
package server
