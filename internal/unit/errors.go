package unit

import "errors"

var (
	// ErrIncompatible indicates units of different dimensions.
	ErrIncompatible = errors.New("unit: incompatible dimensions")

	// ErrAffineComposition indicates an affine unit used in a product, quotient or power.
	ErrAffineComposition = errors.New("unit: affine units cannot be composed")
)
