package quantity

import "errors"

var (
	// ErrNoCommonUnit indicates two quantities whose values cannot be brought
	// to a common unit without loss.
	ErrNoCommonUnit = errors.New("quantity: no lossless common unit")

	// ErrOriginMismatch indicates points measured on different affine scales.
	ErrOriginMismatch = errors.New("quantity: points use different affine units")
)
