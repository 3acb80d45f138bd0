package primitives

// IndexMapping maps a substitution box's input bits to a (row, column) pair
// into its lookup table. DES uses the outer two bits for the row and the
// middle four bits for the column.
type IndexMapping func(in Bits) (row, col int)

// DESCellIndex is the standard DES S-box addressing scheme: the row is
// formed from the first and last bits of the 6-bit input, the column from
// the middle four bits.
func DESCellIndex(in Bits) (row, col int) {
	row = int(in.Bit(0))<<1 | int(in.Bit(5))
	col = 0
	for i := 1; i <= 4; i++ {
		col = col<<1 | int(in.Bit(i))
	}
	return row, col
}

// SBox is a two-dimensional substitution table addressed via an
// IndexMapping. Without an explicit inverse table, an SBox is not
// invertible in isolation -- DES's Feistel structure is invertible even
// though its individual S-boxes are not bijective over their 6-bit domain.
type SBox struct {
	table   [][]int
	mapping IndexMapping
	outBits int
}

// NewSBox builds an SBox over a row/col lookup table whose entries are
// outBits-wide values.
func NewSBox(table [][]int, mapping IndexMapping, outBits int) *SBox {
	return &SBox{table: table, mapping: mapping, outBits: outBits}
}

// Encrypt maps the input through the index mapping and looks up the result.
func (s *SBox) Encrypt(in Bits) (Bits, error) {
	row, col := s.mapping(in)
	return BitsFromUint(uint64(s.table[row][col]), s.outBits), nil
}

// Decrypt always fails: this implementation carries no inverse table, by
// design -- see the DES round function, which remains invertible overall
// even though its S-boxes individually are not.
func (s *SBox) Decrypt(Bits) (Bits, error) {
	return Bits{}, &NonInvertibleError{Component: "SBox"}
}

// Swapper exchanges the high and low halves of a value by bit count. It is
// its own inverse.
type Swapper struct{}

// Encrypt swaps the high and low halves of src.
func (Swapper) Encrypt(src Bits) (Bits, error) {
	hi, lo := BinarySplit(src)
	return BinaryJoin(lo, hi), nil
}

// Decrypt swaps the halves back; identical to Encrypt since swapping twice
// is the identity.
func (s Swapper) Decrypt(src Bits) (Bits, error) { return s.Encrypt(src) }

// XorKey XORs a fixed key into the block. It is its own inverse.
type XorKey struct {
	key Bits
}

// NewXorKey binds a fixed-width key for repeated XOR application.
func NewXorKey(key Bits) *XorKey { return &XorKey{key: key} }

// Encrypt XORs src with the bound key. Fails with SizeMismatchError if
// widths differ.
func (x *XorKey) Encrypt(src Bits) (Bits, error) {
	return Xor(src, x.key)
}

// Decrypt XORs again with the same key, recovering the original value.
func (x *XorKey) Decrypt(src Bits) (Bits, error) { return x.Encrypt(src) }
