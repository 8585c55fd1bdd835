package sbr

// Error is an SBR decoder error code.
//
// ErrFrameOverread and the configuration and buffer errors are returned to
// the caller. The others describe a frame the decoder recovered from by
// falling back to the low band only; they are reported by LastStatus.
type Error int

// Error codes.
const (
	ErrNone                     Error = 0
	ErrInvalidHeaderField       Error = 1
	ErrInvalidTimeBorder        Error = 2
	ErrTableDerivationFailure   Error = 3
	ErrChannelProcessingFailure Error = 4
	ErrFrameOverread            Error = 5
	ErrInvalidConfig            Error = 6
	ErrShortBuffer              Error = 7
	ErrElementMismatch          Error = 8
)

var errMessages = [9]string{
	"No error",
	"Invalid SBR header field",
	"Invalid SBR time border vector",
	"Unable to derive SBR frequency tables",
	"SBR channel processing failed",
	"SBR payload exceeds the declared byte count",
	"Invalid SBR decoder configuration",
	"Sample buffer too small",
	"Channel count does not match the element type",
}

// Error implements the error interface.
func (e Error) Error() string {
	if e >= 0 && int(e) < len(errMessages) {
		return errMessages[e]
	}
	return "unknown error"
}
