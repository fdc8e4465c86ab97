// Package maniac implements the MANIAC entropy engine: a structured
// signed-integer coder (L2/L3) whose adaptive probability model is
// selected, per symbol, by walking a dynamically-refined context
// decision tree over a caller-supplied property vector (L4), plus the
// coder used to serialize that tree itself (L5).
//
// Usage:
//
//	tree := maniac.NewTree()
//	psc := maniac.NewPropertySymbolCoder(maniac.IntegerChanceParams, ranges, tree)
//	v, err := psc.ReadInt(dec, props, min, max)
package maniac

import "github.com/jonsneyers/maniac/rac"

// IntegerChanceParams re-exports rac.IntegerChanceParams for callers
// that only import this package.
var IntegerChanceParams = rac.IntegerChanceParams

// DataChanceParams re-exports rac.DataChanceParams for callers that
// only import this package.
var DataChanceParams = rac.DataChanceParams
