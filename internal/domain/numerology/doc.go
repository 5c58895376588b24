// Package numerology interprets a derived destiny matrix.
//
// It holds the static position catalog, the digit frequency analysis, the
// pattern detector and the composer that bundles all three into a single
// Interpretation. Every function is pure and every lookup table is a
// read-only package value, so the package is safe for concurrent use.
package numerology
