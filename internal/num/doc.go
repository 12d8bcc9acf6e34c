// Package num converts integer magnitudes into digit strings.
//
// It handles bases 10 and 16 with selectable hex case. Signs, prefixes,
// precision zero-padding, and field-width padding all live above this layer;
// num only produces the minimal digit run plus its length, so callers can
// compute layout before any byte is written.
//
// This package is internal to the renderer.
package num
