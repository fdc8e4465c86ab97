// Package ycocg implements the reversible YCoCg color transform (L6):
// a lossless integer approximation of the YCoCg-R color space together
// with the conditional range oracle that bounds its two chroma planes
// given a luma value, and Cg additionally given its sibling Co value. Upper layers
// use the oracle to pass tight [min,max] intervals into an entropy
// coder's bounded integer form.
//
// Usage:
//
//	src := ycocg.NewRanges(255, 255, 255)
//	t, err := ycocg.NewTransform(src)
//	y, co, cg := t.Forward(r, g, b)
//	...
//	r, g, b := t.Inverse(y, co, cg)
package ycocg
