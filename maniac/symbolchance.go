package maniac

import "github.com/jonsneyers/maniac/rac"

// Bits is the canonical bit budget used by every SymbolChance in this
// codec: the meta coder (L5) and every data coder (L4) are instantiated
// with Bits=18, large enough to cover a YCoCg-coded color plane at any
// par.
const Bits = 18

// SymbolChance bundles the adaptive bit contexts that cover every part
// of a signed integer coded in exponent-mantissa form: whether the
// value is zero, its sign, a unary exponent search, and the mantissa
// bits below the exponent.
type SymbolChance struct {
	zero rac.BitChance
	sign rac.BitChance
	exp  [Bits]rac.BitChance
	mant [Bits]rac.BitChance
}

// NewSymbolChance returns a SymbolChance with every slot at the neutral
// probability.
func NewSymbolChance() *SymbolChance {
	sc := &SymbolChance{zero: rac.NewBitChance(), sign: rac.NewBitChance()}
	for i := range sc.exp {
		sc.exp[i] = rac.NewBitChance()
		sc.mant[i] = rac.NewBitChance()
	}
	return sc
}

// Clone returns an independent copy of sc, used when a deferred split
// fires and both children must start from the parent's warmed-up prior.
func (sc *SymbolChance) Clone() *SymbolChance {
	c := *sc
	return &c
}

// Zero returns the bit context for the "value == 0" test.
func (sc *SymbolChance) Zero() *rac.BitChance { return &sc.zero }

// Sign returns the bit context for the sign test.
func (sc *SymbolChance) Sign() *rac.BitChance { return &sc.sign }

// Exp returns the bit context for exponent-search step i.
func (sc *SymbolChance) Exp(i int) *rac.BitChance { return &sc.exp[i] }

// Mant returns the bit context for mantissa bit i.
func (sc *SymbolChance) Mant(i int) *rac.BitChance { return &sc.mant[i] }
