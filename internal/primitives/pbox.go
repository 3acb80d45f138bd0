package primitives

// StraightPBox permutes bits according to a bijective lookup table: output
// bit i is input bit table[i]. Decryption applies the inverse table, so a
// StraightPBox always round-trips.
type StraightPBox struct {
	table   []int
	inverse []int
}

// NewStraightPBox builds a StraightPBox from a 1-indexed (or start-indexed)
// lookup table, as conventionally published for DES's IP/FP and P tables.
func NewStraightPBox(table []int, start int) *StraightPBox {
	t := make([]int, len(table))
	for i, pos := range table {
		t[i] = pos - start
	}
	inv := make([]int, len(t))
	for i, pos := range t {
		inv[pos] = i
	}
	return &StraightPBox{table: t, inverse: inv}
}

func permute(in Bits, table []int) Bits {
	out := BitsFromUint(0, len(table))
	v := out.v
	for i, pos := range table {
		if in.Bit(pos) == 1 {
			v.SetBit(v, len(table)-1-i, 1)
		}
	}
	return out
}

// Encrypt permutes src using the forward table. Fails with SizeMismatchError
// if src's width does not equal the table length.
func (p *StraightPBox) Encrypt(src Bits) (Bits, error) {
	if src.Width() != len(p.table) {
		return Bits{}, &SizeMismatchError{Component: "StraightPBox", Want: len(p.table), Got: src.Width()}
	}
	return permute(src, p.table), nil
}

// Decrypt reverses Encrypt using the inverse table.
func (p *StraightPBox) Decrypt(src Bits) (Bits, error) {
	if src.Width() != len(p.inverse) {
		return Bits{}, &SizeMismatchError{Component: "StraightPBox", Want: len(p.inverse), Got: src.Width()}
	}
	return permute(src, p.inverse), nil
}

// ExpansionPBox produces more output bits than input bits by repeating
// source positions. The inverse table is built from the *last* occurrence
// of each source position, which is enough to recover every original bit.
type ExpansionPBox struct {
	table      []int
	inverse    []int
	inputWidth int
}

// NewExpansionPBox builds an ExpansionPBox from a lookup table whose entries
// may repeat.
func NewExpansionPBox(table []int, start int) *ExpansionPBox {
	t := make([]int, len(table))
	maxPos := 0
	for i, pos := range table {
		t[i] = pos - start
		if t[i] > maxPos {
			maxPos = t[i]
		}
	}
	inv := make([]int, maxPos+1)
	for i, pos := range t {
		inv[pos] = i
	}
	return &ExpansionPBox{table: t, inverse: inv, inputWidth: maxPos + 1}
}

// Encrypt expands src to len(table) bits.
func (p *ExpansionPBox) Encrypt(src Bits) (Bits, error) {
	if src.Width() != p.inputWidth {
		return Bits{}, &SizeMismatchError{Component: "ExpansionPBox", Want: p.inputWidth, Got: src.Width()}
	}
	return permute(src, p.table), nil
}

// Decrypt compresses an expanded value back to its original width, using
// the last-occurrence inverse mapping.
func (p *ExpansionPBox) Decrypt(src Bits) (Bits, error) {
	if src.Width() != len(p.table) {
		return Bits{}, &SizeMismatchError{Component: "ExpansionPBox", Want: len(p.table), Got: src.Width()}
	}
	return permute(src, p.inverse), nil
}

// CompressionPBox selects a strict subset of the input bits, producing
// fewer output bits than input bits. This discards information and is
// therefore not invertible.
type CompressionPBox struct {
	table      []int
	inputWidth int
}

// NewCompressionPBox builds a CompressionPBox from a reduced-size lookup
// table (fewer entries than the widest referenced input position).
func NewCompressionPBox(table []int, start, inputWidth int) *CompressionPBox {
	t := make([]int, len(table))
	for i, pos := range table {
		t[i] = pos - start
	}
	return &CompressionPBox{table: t, inputWidth: inputWidth}
}

// Encrypt selects len(table) bits out of the inputWidth-bit source.
func (p *CompressionPBox) Encrypt(src Bits) (Bits, error) {
	if src.Width() != p.inputWidth {
		return Bits{}, &SizeMismatchError{Component: "CompressionPBox", Want: p.inputWidth, Got: src.Width()}
	}
	return permute(src, p.table), nil
}

// Decrypt always fails: a CompressionPBox discards bits and cannot recover
// the original input.
func (p *CompressionPBox) Decrypt(Bits) (Bits, error) {
	return Bits{}, &NonInvertibleError{Component: "CompressionPBox"}
}
