package maniac

import "github.com/jonsneyers/maniac/rac"

// TreeParams realizes the format constants spec.md §6 requires to agree
// with the container: CONTEXT_TREE_MIN_COUNT/MAX_COUNT bound the count
// field read for every internal node; CountDiv/MinSubtreeSize are
// encoder-only pruning thresholds the decoder never consults.
type TreeParams struct {
	MinCount, MaxCount PropertyValue
	CountDiv           PropertyValue
	MinSubtreeSize     PropertyValue
}

// DefaultTreeParams is the preset used throughout this package.
var DefaultTreeParams = TreeParams{
	MinCount:       1,
	MaxCount:       512,
	CountDiv:       30,
	MinSubtreeSize: 50,
}

// MetaCoder serializes and deserializes a Tree (L5). It uses a single
// shared SymbolChance for every property/count/splitval it reads or
// writes — an 18-bit coder with no leaf selection, the "Simple" variant
// of the structured integer coder.
type MetaCoder struct {
	coder  *IntCoder
	chance *SymbolChance
	ranges Ranges
	params TreeParams
}

// NewMetaCoder creates a MetaCoder over the given property Ranges.
func NewMetaCoder(ranges Ranges, params TreeParams) *MetaCoder {
	return &MetaCoder{
		coder:  NewIntCoder(DataChanceParams),
		chance: NewSymbolChance(),
		ranges: ranges,
		params: params,
	}
}

// ReadTree clears tree, then reads the subtree rooted at a fresh root
// node given the coder's full Ranges.
func (m *MetaCoder) ReadTree(d *rac.Decoder, tree *Tree) error {
	subrange := append(Ranges(nil), m.ranges...)
	*tree = Tree{{Property: -1}}
	return m.readSubtree(d, 0, subrange, tree)
}

// readSubtree implements spec.md §4.6's read_subtree / FLIF's
// MetaPropertySymbolCoder::read_subtree.
func (m *MetaCoder) readSubtree(d *rac.Decoder, pos int, subrange Ranges, tree *Tree) error {
	raw, err := m.coder.ReadBounded(d, m.chance, 0, PropertyValue(len(m.ranges)))
	if err != nil {
		return err
	}
	property := raw - 1
	if property < -1 || int(property) >= len(m.ranges) {
		return ErrInvalidTree
	}
	(*tree)[pos].Property = int8(property)
	if property == -1 {
		return nil
	}

	p := int(property)
	oldMin, oldMax := subrange[p].Min, subrange[p].Max
	if oldMin >= oldMax {
		return ErrInvalidTree
	}

	count, err := m.coder.ReadBounded(d, m.chance, m.params.MinCount, m.params.MaxCount)
	if err != nil {
		return err
	}
	(*tree)[pos].Count = int16(count)

	splitval, err := m.coder.ReadBounded(d, m.chance, oldMin, oldMax-1)
	if err != nil {
		return err
	}
	(*tree)[pos].SplitVal = splitval

	childID := uint32(len(*tree))
	(*tree)[pos].ChildID = childID
	*tree = append(*tree, PropertyDecisionNode{}, PropertyDecisionNode{})

	subrange[p].Min = splitval + 1
	if err := m.readSubtree(d, int(childID), subrange, tree); err != nil {
		return err
	}

	subrange[p].Min = oldMin
	subrange[p].Max = splitval
	if err := m.readSubtree(d, int(childID+1), subrange, tree); err != nil {
		return err
	}

	subrange[p].Max = oldMax
	return nil
}

// WriteTree is the encoding counterpart of ReadTree.
func (m *MetaCoder) WriteTree(e *rac.Encoder, tree Tree) error {
	subrange := append(Ranges(nil), m.ranges...)
	return m.writeSubtree(e, 0, subrange, tree)
}

func (m *MetaCoder) writeSubtree(e *rac.Encoder, pos int, subrange Ranges, tree Tree) error {
	node := tree[pos]
	if err := m.coder.WriteBounded(e, m.chance, 0, PropertyValue(len(m.ranges)), PropertyValue(node.Property)+1); err != nil {
		return err
	}
	if node.Property == -1 {
		return nil
	}

	p := int(node.Property)
	oldMin, oldMax := subrange[p].Min, subrange[p].Max

	if err := m.coder.WriteBounded(e, m.chance, m.params.MinCount, m.params.MaxCount, PropertyValue(node.Count)); err != nil {
		return err
	}
	if err := m.coder.WriteBounded(e, m.chance, oldMin, oldMax-1, node.SplitVal); err != nil {
		return err
	}

	subrange[p].Min = node.SplitVal + 1
	if err := m.writeSubtree(e, int(node.ChildID), subrange, tree); err != nil {
		return err
	}

	subrange[p].Min = oldMin
	subrange[p].Max = node.SplitVal
	if err := m.writeSubtree(e, int(node.ChildID+1), subrange, tree); err != nil {
		return err
	}

	subrange[p].Max = oldMax
	return nil
}
