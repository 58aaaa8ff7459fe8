package ptau

import "errors"

// Errors returned by Read and the File methods. Each names the first
// validation that failed; a failed call never returns partial results.
// Returned errors wrap these sentinels, match them with errors.Is.
var (
	ErrInvalidMagicString = errors.New("invalid magic string")
	ErrInvalidVersion     = errors.New("invalid version")
	ErrInvalidNumSections = errors.New("invalid number of sections")
	ErrMissingSection     = errors.New("missing section")
	ErrInvalidPrimeOrder  = errors.New("invalid prime order")
	ErrInvalidPower       = errors.New("invalid power")
	ErrInvalidNumG1Points = errors.New("invalid number of G1 points")
	ErrInvalidNumG2Points = errors.New("invalid number of G2 points")
	ErrInvalidG1Point     = errors.New("invalid G1 point")
	ErrInvalidG2Point     = errors.New("invalid G2 point")

	// ErrTruncated reports a file shorter than its declared contents.
	ErrTruncated = errors.New("truncated file")
)
