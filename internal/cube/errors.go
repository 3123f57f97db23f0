package cube

import "errors"

// Sentinel errors for the cube package.
var (
	// Construction errors
	ErrInvalidSpacing   = errors.New("cube: spacing must be positive")
	ErrInvalidTolerance = errors.New("cube: tolerance must be in (0, spacing/2)")

	// Rotation errors
	ErrInvalidAxis  = errors.New("cube: invalid rotation axis")
	ErrInvalidLayer = errors.New("cube: origin does not select a layer")
	ErrUnknownLayer = errors.New("cube: unknown layer")

	// ErrGridCorrupt reports a broken cell index. A rotation that would
	// produce it is rejected before any cubie changes.
	ErrGridCorrupt = errors.New("cube: grid invariant violated")
)
