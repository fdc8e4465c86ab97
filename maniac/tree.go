package maniac

// PropertyValue is a signed property or color coordinate coded by the
// integer coder. Its magnitude is bounded by the plane it comes from,
// never by the type itself.
type PropertyValue = int32

// Range is an inclusive (min,max) pair. Its invariant, min <= max, is
// checked at construction sites, not here.
type Range struct {
	Min, Max PropertyValue
}

// Ranges is an ordered per-property list of Range, one entry per axis of
// a Properties vector.
type Ranges []Range

// PropertyDecisionNode is one node of a Tree. property == -1 marks a
// leaf, in which case leafID selects the active SymbolChance. Otherwise
// childID is the ">" branch and childID+1 is the "<=" branch. count
// implements the deferred split described in package maniac's
// PropertySymbolCoder: positive while the node still behaves as a leaf,
// zero on the visit that fires the split, negative once split.
type PropertyDecisionNode struct {
	Property int8
	Count    int16
	SplitVal PropertyValue
	ChildID  uint32
	LeafID   uint32
}

// Tree is an append-only sequence of PropertyDecisionNode; element 0 is
// always the root. Nodes are never removed, so a childID/leafID recorded
// earlier stays valid for the lifetime of the Tree.
type Tree []PropertyDecisionNode

// NewTree returns a Tree containing a single root leaf, matching the
// zero-valued root FLIF's Tree constructor produces (property -1, count
// 0, leafID 0) — a fresh tree behaves as a single leaf until a
// MetaCoder or a deferred split gives it structure.
func NewTree() Tree {
	return Tree{{Property: -1}}
}
