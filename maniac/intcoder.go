package maniac

import "github.com/jonsneyers/maniac/rac"

// IntCoder implements the structured integer coder (L3). A signed value
// is coded as an optional zero bit, an optional sign bit, and an
// exponent-mantissa pair for its magnitude minus one; every bit whose
// outcome is already forced by the residual [min,max] interval is
// elided on both the read and write side, never consuming or emitting
// a bit from the underlying range coder.
type IntCoder struct {
	table *rac.TransitionTable
}

// NewIntCoder builds the coder's TransitionTable once from params; it
// is shared by reference across every SymbolChance this IntCoder reads
// or writes.
func NewIntCoder(params rac.ChanceParams) *IntCoder {
	return &IntCoder{table: rac.NewTransitionTable(params.Cut, params.Alpha)}
}

// ReadBounded decodes a value known to lie in [min,max].
func (c *IntCoder) ReadBounded(d *rac.Decoder, sc *SymbolChance, min, max PropertyValue) (PropertyValue, error) {
	if min == max {
		return min, nil
	}
	if min > max {
		panic(newError("min > max"))
	}

	if min <= 0 && 0 <= max {
		isZero, err := d.ReadBitChance(sc.Zero(), c.table)
		if err != nil {
			return 0, err
		}
		if isZero {
			return 0, nil
		}
	}

	neg, err := c.readSign(d, sc, min, max)
	if err != nil {
		return 0, err
	}

	amin, amax := magnitudeRange(min, max, neg)
	a, err := c.readMagnitude(d, sc, amin, amax)
	if err != nil {
		return 0, err
	}
	if neg {
		return -(a + 1), nil
	}
	return a + 1, nil
}

// WriteBounded is the encoding counterpart of ReadBounded.
func (c *IntCoder) WriteBounded(e *rac.Encoder, sc *SymbolChance, min, max, v PropertyValue) error {
	if min == max {
		return nil
	}
	if min > max {
		panic(newError("min > max"))
	}
	if v < min || v > max {
		panic(newError("value outside [min,max]"))
	}

	if min <= 0 && 0 <= max {
		if err := e.WriteBitChance(sc.Zero(), c.table, v == 0); err != nil {
			return err
		}
		if v == 0 {
			return nil
		}
	}

	neg := v < 0
	if err := c.writeSign(e, sc, min, max, neg); err != nil {
		return err
	}

	amin, amax := magnitudeRange(min, max, neg)
	var a PropertyValue
	if neg {
		a = -v - 1
	} else {
		a = v - 1
	}
	return c.writeMagnitude(e, sc, amin, amax, a)
}

// ReadUnbounded decodes a sign followed by nbits raw magnitude bits,
// without any [min,max] pruning.
func (c *IntCoder) ReadUnbounded(d *rac.Decoder, sc *SymbolChance, nbits int) (PropertyValue, error) {
	neg, err := d.ReadBitChance(sc.Sign(), c.table)
	if err != nil {
		return 0, err
	}
	var mag PropertyValue
	for i := nbits - 1; i >= 0; i-- {
		bit, err := d.ReadBitChance(sc.Mant(i), c.table)
		if err != nil {
			return 0, err
		}
		if bit {
			mag |= 1 << uint(i)
		}
	}
	if neg {
		return -mag, nil
	}
	return mag, nil
}

// WriteUnbounded is the encoding counterpart of ReadUnbounded.
func (c *IntCoder) WriteUnbounded(e *rac.Encoder, sc *SymbolChance, nbits int, v PropertyValue) error {
	neg := v < 0
	mag := v
	if neg {
		mag = -v
	}
	if err := e.WriteBitChance(sc.Sign(), c.table, neg); err != nil {
		return err
	}
	for i := nbits - 1; i >= 0; i-- {
		bit := (mag>>uint(i))&1 != 0
		if err := e.WriteBitChance(sc.Mant(i), c.table, bit); err != nil {
			return err
		}
	}
	return nil
}

func (c *IntCoder) readSign(d *rac.Decoder, sc *SymbolChance, min, max PropertyValue) (bool, error) {
	posReachable := max >= 1
	negReachable := min <= -1
	switch {
	case posReachable && negReachable:
		return d.ReadBitChance(sc.Sign(), c.table)
	case negReachable:
		return true, nil
	default:
		return false, nil
	}
}

func (c *IntCoder) writeSign(e *rac.Encoder, sc *SymbolChance, min, max PropertyValue, neg bool) error {
	posReachable := max >= 1
	negReachable := min <= -1
	if posReachable && negReachable {
		return e.WriteBitChance(sc.Sign(), c.table, neg)
	}
	return nil
}

// magnitudeRange projects [min,max] (known to exclude 0) onto the range
// of a = |v|-1 given the resolved sign.
func magnitudeRange(min, max PropertyValue, neg bool) (amin, amax PropertyValue) {
	if neg {
		lo, hi := min, max
		if hi > -1 {
			hi = -1
		}
		return -hi - 1, -lo - 1
	}
	lo, hi := min, max
	if lo < 1 {
		lo = 1
	}
	return lo - 1, hi - 1
}

func (c *IntCoder) readMagnitude(d *rac.Decoder, sc *SymbolChance, amin, amax PropertyValue) (PropertyValue, error) {
	if amin == amax {
		return amin, nil
	}
	if amax >= 1<<Bits {
		panic(newError("magnitude exceeds bit budget"))
	}
	lo, hi := amin, amax
	exp := -1
	for i := 0; i < Bits; i++ {
		threshold := PropertyValue(1) << uint(i)
		switch {
		case lo >= threshold:
			exp = i
		case hi < threshold:
			goto doneExp
		default:
			bit, err := d.ReadBitChance(sc.Exp(i), c.table)
			if err != nil {
				return 0, err
			}
			if bit {
				exp = i
				if lo < threshold {
					lo = threshold
				}
			} else {
				hi = threshold - 1
				goto doneExp
			}
		}
	}
doneExp:
	if exp < 0 {
		return amin, nil
	}
	base := PropertyValue(1) << uint(exp)
	val, err := c.readMantissa(d, sc, exp, lo-base, hi-base)
	if err != nil {
		return 0, err
	}
	return base + val, nil
}

func (c *IntCoder) writeMagnitude(e *rac.Encoder, sc *SymbolChance, amin, amax, a PropertyValue) error {
	if amin == amax {
		return nil
	}
	if amax >= 1<<Bits {
		panic(newError("magnitude exceeds bit budget"))
	}
	lo, hi := amin, amax
	exp := -1
	for i := 0; i < Bits; i++ {
		threshold := PropertyValue(1) << uint(i)
		switch {
		case lo >= threshold:
			exp = i
		case hi < threshold:
			goto doneExp
		default:
			bit := a >= threshold
			if err := e.WriteBitChance(sc.Exp(i), c.table, bit); err != nil {
				return err
			}
			if bit {
				exp = i
				if lo < threshold {
					lo = threshold
				}
			} else {
				hi = threshold - 1
				goto doneExp
			}
		}
	}
doneExp:
	if exp < 0 {
		return nil
	}
	base := PropertyValue(1) << uint(exp)
	return c.writeMantissa(e, sc, exp, lo-base, hi-base, a-base)
}

func (c *IntCoder) readMantissa(d *rac.Decoder, sc *SymbolChance, exp int, lo, hi PropertyValue) (PropertyValue, error) {
	if lo == hi {
		return lo, nil
	}
	var val PropertyValue
	for j := exp - 1; j >= 0; j-- {
		threshold := PropertyValue(1) << uint(j)
		switch {
		case lo >= threshold:
			val += threshold
			lo -= threshold
			hi -= threshold
		case hi < threshold:
			// bit forced 0
		default:
			bit, err := d.ReadBitChance(sc.Mant(j), c.table)
			if err != nil {
				return 0, err
			}
			if bit {
				val += threshold
				lo -= threshold
				hi -= threshold
				if lo < 0 {
					lo = 0
				}
			} else {
				hi = threshold - 1
			}
		}
	}
	return val, nil
}

func (c *IntCoder) writeMantissa(e *rac.Encoder, sc *SymbolChance, exp int, lo, hi, val PropertyValue) error {
	if lo == hi {
		return nil
	}
	for j := exp - 1; j >= 0; j-- {
		threshold := PropertyValue(1) << uint(j)
		switch {
		case lo >= threshold:
			lo -= threshold
			hi -= threshold
			val -= threshold
		case hi < threshold:
			// bit forced 0
		default:
			bit := val >= threshold
			if err := e.WriteBitChance(sc.Mant(j), c.table, bit); err != nil {
				return err
			}
			if bit {
				val -= threshold
				lo -= threshold
				hi -= threshold
				if lo < 0 {
					lo = 0
				}
			} else {
				hi = threshold - 1
			}
		}
	}
	return nil
}
