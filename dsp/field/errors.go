package field

import "errors"

// Errors returned by field operations.
var (
	// ErrDomainMismatch is returned when a transform is invoked on a field
	// in the wrong domain.
	ErrDomainMismatch = errors.New("field: domain mismatch")
	// ErrUnknownForm is returned by construction when the sample form is
	// not one of FormComplex, FormAlg, FormExp.
	ErrUnknownForm = errors.New("field: unknown sample form")
	// ErrUnknownDomain is returned by construction when the domain tag is
	// not Time or Frequency.
	ErrUnknownDomain = errors.New("field: unknown domain")
	// ErrZeroPower is returned when power normalization is requested on a
	// field whose total power is zero.
	ErrZeroPower = errors.New("field: total power is zero")
	// ErrInvalidTarget is returned when power normalization is requested
	// with a non-positive target.
	ErrInvalidTarget = errors.New("field: normalization target must be positive")
	// ErrNotFinite is returned by construction when the central frequency
	// is NaN or infinite.
	ErrNotFinite = errors.New("field: central frequency must be finite")
)
