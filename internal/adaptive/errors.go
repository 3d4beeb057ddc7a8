package adaptive

import "errors"

// Error taxonomy for the adaptive engine. Callers tell these apart with
// errors.Is rather than by matching message strings.
var (
	// ErrInvalidImage covers already-decoded images too small for the
	// engine: too narrow to hold the row-0 header (W < 48) or shorter
	// than one block.
	ErrInvalidImage = errors.New("adaptive: invalid image")

	// ErrCapacityExceeded means the payload cannot be represented at all
	// (its bit length overflows the 32-bit length field). Partial
	// embedding within eligible blocks is NOT an error; see Metadata.
	ErrCapacityExceeded = errors.New("adaptive: capacity exceeded")

	// ErrHeaderCorrupt means the decoded PayloadLength is larger than the
	// number of bits actually reachable across eligible blocks.
	ErrHeaderCorrupt = errors.New("adaptive: header corrupt")

	// ErrInvalidParams is returned by Params.Validate for a configuration
	// that cannot be honored (odd or too-small block size, negative
	// threshold).
	ErrInvalidParams = errors.New("adaptive: invalid params")

	// ErrParameterMismatch is never returned by this engine: a mismatch
	// between encode-time and decode-time parameters produces garbage
	// payload bytes, not a detectable error, and can only be diagnosed
	// by the cipher/authentication layer above this package.
	ErrParameterMismatch = errors.New("adaptive: parameter mismatch")
)
