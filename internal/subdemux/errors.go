package subdemux

import "github.com/pkg/errors"

// Status mirrors the three-value outcome the reference decoder reports
// through its VLC_* return codes (spec.md §7): OK, a generic/unknown-format
// failure, or an out-of-memory condition. Open reports failures with
// StatusGenericError only; no code path in this package produces
// StatusOutOfMemory, since Go gives it no allocation-failure signal.
type Status int

const (
	StatusOK Status = iota
	StatusGenericError
	StatusOutOfMemory
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusOutOfMemory:
		return "OUT_OF_MEMORY"
	default:
		return "GENERIC_ERROR"
	}
}

// ErrUnknownFormat is returned by Open when probing exhausted its line
// budget without matching any known signature.
var ErrUnknownFormat = errors.New("subdemux: unknown subtitle format")

// ErrEmptyResult is returned by Open when the format was recognized but no
// parser call ever produced a single cue.
var ErrEmptyResult = errors.New("subdemux: format recognized but no cues were parsed")

// ErrOutOfMemory is the sentinel paired with StatusOutOfMemory. Open does
// not return it: an allocation failure in Go aborts the program instead.
var ErrOutOfMemory = errors.New("subdemux: allocation failed while building cue text")

// StatusError pairs a Status with the underlying cause, the same
// two-value-ish shape AnalyzeFileWithOptions in the teacher repo returns
// ((Report, error)) rather than a bespoke sum type.
type StatusError struct {
	Status Status
	Err    error
}

func (e *StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Status.String()
}

func (e *StatusError) Unwrap() error { return e.Err }
