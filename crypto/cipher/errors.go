package cipher

import "fmt"

// Every failure in this package is a small exported struct implementing
// error, carrying the values that made the input invalid so callers can
// match with errors.As and report something precise. There are no
// sentinel values and nothing panics at the package boundary.

// EmptyIVError reports that a mode needing an initialization vector was
// run without one.
type EmptyIVError struct {
	Mode BlockMode
}

func (e EmptyIVError) Error() string {
	return fmt.Sprintf("cipher: %s mode needs an iv, none was set", e.Mode)
}

// IVLengthError reports an initialization vector whose length is not
// exactly one block.
type IVLengthError struct {
	Mode      BlockMode
	Len       int
	BlockSize int
}

func (e IVLengthError) Error() string {
	return fmt.Sprintf("cipher: %s mode needs a %d-byte iv, got %d bytes", e.Mode, e.BlockSize, e.Len)
}

// AlignmentError reports input to a whole-block mode that is not a whole
// number of blocks long.
type AlignmentError struct {
	Mode      BlockMode
	Len       int
	BlockSize int
}

func (e AlignmentError) Error() string {
	return fmt.Sprintf("cipher: input of %d bytes is not a multiple of the %d-byte block in %s mode", e.Len, e.BlockSize, e.Mode)
}

// PaddingError reports a malformed padding suffix found during unpadding:
// a count of zero, a count past the start of the input, padding bytes
// that disagree with the count, or (when unpadding inside Cipher.Decrypt)
// a count larger than the block size.
type PaddingError struct {
	Count int
	Len   int
}

func (e PaddingError) Error() string {
	return fmt.Sprintf("cipher: malformed pkcs7 padding (count %d, input %d bytes)", e.Count, e.Len)
}

// UnsupportedBlockModeError reports a BlockMode this package does not
// implement.
type UnsupportedBlockModeError struct {
	Mode BlockMode
}

func (e UnsupportedBlockModeError) Error() string {
	return fmt.Sprintf("cipher: no such block mode %q", e.Mode)
}

// UnsupportedPaddingModeError reports a PaddingMode this package does not
// implement.
type UnsupportedPaddingModeError struct {
	Mode PaddingMode
}

func (e UnsupportedPaddingModeError) Error() string {
	return fmt.Sprintf("cipher: no such padding mode %q", e.Mode)
}
