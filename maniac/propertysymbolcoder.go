package maniac

import (
	"github.com/jonsneyers/maniac/rac"
	"github.com/ulikunitz/xz/xlog"
)

// PropertySymbolCoder is the MANIAC leaf-selecting coder (L4): it walks
// a shared Tree to pick the adaptive SymbolChance for each symbol, then
// delegates to an embedded IntCoder. The Tree is shared with a
// MetaCoder, which builds its structure; this type additionally mutates
// it via the deferred-split mechanism described on findLeaf.
type PropertySymbolCoder struct {
	coder        *IntCoder
	nbProperties int
	leaves       []*SymbolChance
	tree         Tree
}

// NewPropertySymbolCoder creates a PropertySymbolCoder over tree (which
// the caller must have already populated via MetaCoder.ReadTree, or
// which may be a fresh NewTree()). ranges is only consulted for its
// length, the number of properties every call's Properties vector must
// match.
func NewPropertySymbolCoder(params rac.ChanceParams, ranges Ranges, tree Tree) *PropertySymbolCoder {
	psc := &PropertySymbolCoder{
		coder:        NewIntCoder(params),
		nbProperties: len(ranges),
		leaves:       []*SymbolChance{NewSymbolChance()},
		tree:         tree,
	}
	tree[0].LeafID = 0
	return psc
}

// ReadInt decodes a value in [min,max] using the leaf model selected by
// properties.
func (p *PropertySymbolCoder) ReadInt(d *rac.Decoder, properties []PropertyValue, min, max PropertyValue) (PropertyValue, error) {
	if min == max {
		return min, nil
	}
	if len(properties) != p.nbProperties {
		panic(newError("property vector length mismatch"))
	}
	sc := p.findLeaf(properties)
	return p.coder.ReadBounded(d, sc, min, max)
}

// WriteInt is the encoding counterpart of ReadInt.
func (p *PropertySymbolCoder) WriteInt(e *rac.Encoder, properties []PropertyValue, min, max, v PropertyValue) error {
	if min == max {
		return nil
	}
	if len(properties) != p.nbProperties {
		panic(newError("property vector length mismatch"))
	}
	sc := p.findLeaf(properties)
	return p.coder.WriteBounded(e, sc, min, max, v)
}

// ReadUnboundedInt decodes a sign-then-nbits-magnitude value using the
// leaf model selected by properties.
func (p *PropertySymbolCoder) ReadUnboundedInt(d *rac.Decoder, properties []PropertyValue, nbits int) (PropertyValue, error) {
	if len(properties) != p.nbProperties {
		panic(newError("property vector length mismatch"))
	}
	sc := p.findLeaf(properties)
	return p.coder.ReadUnbounded(d, sc, nbits)
}

// WriteUnboundedInt is the encoding counterpart of ReadUnboundedInt.
func (p *PropertySymbolCoder) WriteUnboundedInt(e *rac.Encoder, properties []PropertyValue, nbits int, v PropertyValue) error {
	if len(properties) != p.nbProperties {
		panic(newError("property vector length mismatch"))
	}
	sc := p.findLeaf(properties)
	return p.coder.WriteUnbounded(e, sc, nbits, v)
}

// findLeaf walks the tree from the root, applying the deferred-split
// rule at the node where it fires: a node with count > 0 behaves as a
// leaf and decrements; on count == 0 it clones its current leaf's
// SymbolChance into both children (the node itself visited, old_leaf,
// keeps the ">" branch; a fresh clone, new_leaf, takes the "<=" branch)
// and becomes a regular internal node (count set to -1) for every
// subsequent visit.
func (p *PropertySymbolCoder) findLeaf(properties []PropertyValue) *SymbolChance {
	pos := uint32(0)
	for p.tree[pos].Property != -1 {
		node := &p.tree[pos]
		switch {
		case node.Count < 0:
			if properties[node.Property] > node.SplitVal {
				pos = node.ChildID
			} else {
				pos = node.ChildID + 1
			}
		case node.Count > 0:
			node.Count--
			return p.leaves[node.LeafID]
		default: // count == 0: fire the deferred split
			node.Count--
			oldLeaf := node.LeafID
			newLeaf := uint32(len(p.leaves))
			p.leaves = append(p.leaves, p.leaves[oldLeaf].Clone())
			p.tree[node.ChildID].LeafID = oldLeaf
			p.tree[node.ChildID+1].LeafID = newLeaf
			xlog.Printf(debug, "split node %d on property %d (old leaf %d, new leaf %d)\n", pos, node.Property, oldLeaf, newLeaf)
			if properties[node.Property] > node.SplitVal {
				return p.leaves[oldLeaf]
			}
			return p.leaves[newLeaf]
		}
	}
	return p.leaves[p.tree[pos].LeafID]
}
