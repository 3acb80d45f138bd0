package primitives

import "fmt"

// SizeMismatchError reports that a component received an input whose bit
// width does not match what it requires.
type SizeMismatchError struct {
	Component string
	Want      int
	Got       int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("primitives: %s: expected %d bits, got %d", e.Component, e.Want, e.Got)
}

// NonInvertibleError reports that decryption was requested on a component
// that discards information during encryption (a compression P-box, or an
// S-box without an explicit inverse table).
type NonInvertibleError struct {
	Component string
}

func (e *NonInvertibleError) Error() string {
	return fmt.Sprintf("primitives: %s: component is not invertible", e.Component)
}
