package rac

import "io"

// Encoder implements binary range encoding driven by 12-bit bit-chances.
// The low value can overflow the 32-bit range register, hence the
// uint64; the cache value absorbs the overflow the same way the
// teacher's LZMA range encoder does.
type Encoder struct {
	w        io.ByteWriter
	low      uint64
	nrange   uint32
	cacheLen int64
	cache    byte
}

// NewEncoder creates a range encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w:        newByteWriter(w),
		nrange:   0xffffffff,
		cacheLen: 1,
	}
}

// WriteBitChance encodes bit under the probability held by bc, then
// updates bc via tbl. This implements spec's write_bit_chance.
func (e *Encoder) WriteBitChance(bc *BitChance, tbl *TransitionTable, bit bool) error {
	bound := (e.nrange >> probBits) * uint32(bc.Get12Bit())
	if !bit {
		e.nrange = bound
	} else {
		e.low += uint64(bound)
		e.nrange -= bound
	}
	bc.Put(bit, tbl)
	return e.normalize()
}

// Flush emits the encoder's residual state. Must be called exactly once
// after the last symbol has been written.
func (e *Encoder) Flush() error {
	for i := 0; i < 5; i++ {
		if err := e.shiftLow(); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) normalize() error {
	const top = 1 << 24
	if e.nrange >= top {
		return nil
	}
	e.nrange <<= 8
	return e.shiftLow()
}

// shiftLow shifts out one byte of low, propagating carries through the
// cached byte run exactly as the teacher's rangeEncoder.shiftLow does.
func (e *Encoder) shiftLow() error {
	if uint32(e.low) < 0xff000000 || (e.low>>32) != 0 {
		tmp := e.cache
		for {
			if err := e.w.WriteByte(tmp + byte(e.low>>32)); err != nil {
				return err
			}
			tmp = 0xff
			e.cacheLen--
			if e.cacheLen <= 0 {
				if e.cacheLen < 0 {
					panic(newError("negative cacheLen"))
				}
				break
			}
		}
		e.cache = byte(uint32(e.low) >> 24)
	}
	e.cacheLen++
	e.low = uint64(uint32(e.low) << 8)
	return nil
}

// Decoder implements binary range decoding driven by 12-bit bit-chances.
type Decoder struct {
	r      io.ByteReader
	nrange uint32
	code   uint32
}

// NewDecoder creates a range decoder reading from r. It primes the
// internal 24-bit window by reading five bytes, the first of which must
// be zero (mirroring the encoder's initial cache byte).
func NewDecoder(r io.Reader) (*Decoder, error) {
	d := &Decoder{r: newByteReader(r), nrange: 0xffffffff}
	b, err := d.r.ReadByte()
	if err != nil {
		return nil, err
	}
	if b != 0 {
		return nil, newError("first byte not zero")
	}
	for i := 0; i < 4; i++ {
		if err := d.updateCode(); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// ReadBitChance decodes one bit under the probability held by bc, then
// updates bc via tbl. This implements spec's read_12bit_chance.
func (d *Decoder) ReadBitChance(bc *BitChance, tbl *TransitionTable) (bool, error) {
	bound := (d.nrange >> probBits) * uint32(bc.Get12Bit())
	var bit bool
	if d.code < bound {
		d.nrange = bound
		bit = false
	} else {
		d.code -= bound
		d.nrange -= bound
		bit = true
	}
	bc.Put(bit, tbl)
	if err := d.normalize(); err != nil {
		return false, err
	}
	return bit, nil
}

func (d *Decoder) updateCode() error {
	b, err := d.r.ReadByte()
	if err != nil {
		if err == io.EOF {
			return ErrStreamTruncated
		}
		return err
	}
	d.code = (d.code << 8) | uint32(b)
	return nil
}

func (d *Decoder) normalize() error {
	const top = 1 << 24
	if d.nrange < top {
		d.nrange <<= 8
		if err := d.updateCode(); err != nil {
			return err
		}
	}
	return nil
}
