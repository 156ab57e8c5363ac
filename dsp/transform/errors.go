package transform

import "errors"

var (
	// ErrInvalidParameter reports a size or kind the engine cannot use, or an
	// argument that is not acceptable for the operation (nil or aliased buffers).
	ErrInvalidParameter = errors.New("transform: invalid parameter")

	// ErrSizeMismatch reports an input or output whose length differs from the
	// configured size.
	ErrSizeMismatch = errors.New("transform: size mismatch")

	// ErrNotConfigured reports a transform on an engine without a plan for the
	// requested kind.
	ErrNotConfigured = errors.New("transform: engine not configured")

	// ErrCannotCreatePlan reports that the kernel refused to build a plan.
	ErrCannotCreatePlan = errors.New("transform: cannot create plan")

	// ErrOutOfMemory reports that scratch or staging memory could not be allocated.
	ErrOutOfMemory = errors.New("transform: out of memory")
)
