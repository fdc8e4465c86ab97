package ycocg

// ColorVal is a signed color-plane coordinate: either a raw source
// sample or a coded Y/Co/Cg component. Its magnitude is bounded by the
// plane it belongs to, never by the type itself.
type ColorVal = int32

// ColorRanges is the small closed family of range oracles the core
// constructs and consumes: a per-plane [min,max] pair, independent of
// any other plane's value. It stands in for the excluded outer
// transforms (bounds, channel-compaction, palette, permutation), which
// would each contribute their own ColorRanges implementation upstream
// of a Transform.
type ColorRanges interface {
	// NumPlanes returns the number of color planes.
	NumPlanes() int
	// Min returns the minimum value plane p can take.
	Min(p int) ColorVal
	// Max returns the maximum value plane p can take.
	Max(p int) ColorVal
}

// Ranges is a minimal ColorRanges implementation: an explicit
// per-plane [min,max] list, standing in for whatever upstream
// transform produced the source ranges a Transform attaches to.
type Ranges []Range

// Range is an inclusive (min,max) pair for one plane.
type Range struct {
	Min, Max ColorVal
}

// NewRanges builds a static 3-plane Ranges with min 0 for every plane
// and the given per-plane maxima, the common case of an 8-bit-or-wider
// RGB source feeding a YCoCg transform.
func NewRanges(maxR, maxG, maxB ColorVal) Ranges {
	return Ranges{{0, maxR}, {0, maxG}, {0, maxB}}
}

// NumPlanes implements ColorRanges.
func (r Ranges) NumPlanes() int { return len(r) }

// Min implements ColorRanges.
func (r Ranges) Min(p int) ColorVal { return r[p].Min }

// Max implements ColorRanges.
func (r Ranges) Max(p int) ColorVal { return r[p].Max }
