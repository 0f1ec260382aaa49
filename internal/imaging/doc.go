// Package imaging implements the automatic background-removal pipeline.
//
// The pipeline runs four stages in strict order: decode the text-encoded
// payload into an owned NRGBA grid, estimate the background color from the
// image border, grow the border-connected background region with a
// breadth-first flood fill, and cut that region to transparency with
// distance-based alpha feathering before re-encoding to a PNG data URL.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner,
// X increasing rightward and Y increasing downward.
//
// # Ownership and Concurrency
//
// Every invocation decodes into a fresh pixel buffer and allocates its own
// mask and traversal queue, so concurrent invocations share no mutable
// state. An invocation runs to completion or fails; there is no internal
// cancellation or timeout, and callers needing bounded latency must wrap
// the call externally.
//
// # Error Handling
//
// Three failure kinds exist, all terminal for the invocation: the payload
// text is not valid base64, the decoded bytes are not a recognized image
// (or have a zero dimension), or re-encoding the processed grid fails. No
// partial result is ever returned.
package imaging
