// Package pad computes field-width fill for rendered content.
//
// The caller supplies the visible content length (sign, prefix, and
// precision-padded digits included) and the field width; pad answers how
// many fill bytes go on each side and which byte to fill with. Emission
// order around signs and prefixes is the renderer's concern.
//
// This package is internal to the renderer.
package pad
