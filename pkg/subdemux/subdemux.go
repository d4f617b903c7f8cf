// Package subdemux is the public, stable surface over
// github.com/autobrr/go-subdemux/internal/subdemux, mirroring the
// thin re-export pattern the reference CLI uses for its own public package.
package subdemux

import (
	"github.com/autobrr/go-subdemux/internal/subdemux"
)

// Types
type Cue = subdemux.Cue
type FormatTag = subdemux.FormatTag
type Handle = subdemux.Handle
type Status = subdemux.Status

// Format tags
const (
	FormatUnknown     = subdemux.FormatUnknown
	FormatMicroDVD    = subdemux.FormatMicroDVD
	FormatSubRip      = subdemux.FormatSubRip
	FormatSubViewer   = subdemux.FormatSubViewer
	FormatSSA1        = subdemux.FormatSSA1
	FormatSSA24       = subdemux.FormatSSA24
	FormatASS         = subdemux.FormatASS
	FormatVPlayer     = subdemux.FormatVPlayer
	FormatSAMI        = subdemux.FormatSAMI
	FormatDVDSubtitle = subdemux.FormatDVDSubtitle
	FormatMPL2        = subdemux.FormatMPL2
	FormatAQT         = subdemux.FormatAQT
	FormatPJS         = subdemux.FormatPJS
	FormatMPSub       = subdemux.FormatMPSub
	FormatJacoSub     = subdemux.FormatJacoSub
	FormatPSB         = subdemux.FormatPSB
	FormatRealText    = subdemux.FormatRealText
	FormatDKS         = subdemux.FormatDKS
	FormatSubViewer1  = subdemux.FormatSubViewer1
	FormatWebVTT      = subdemux.FormatWebVTT
	FormatSBV         = subdemux.FormatSBV
	FormatTTML        = subdemux.FormatTTML
)

// Status codes
const (
	StatusOK           = subdemux.StatusOK
	StatusGenericError = subdemux.StatusGenericError
	StatusOutOfMemory  = subdemux.StatusOutOfMemory
)

// Sentinel errors
var (
	ErrUnknownFormat = subdemux.ErrUnknownFormat
	ErrEmptyResult   = subdemux.ErrEmptyResult
	ErrOutOfMemory   = subdemux.ErrOutOfMemory
)

// Open probes text, parses it with the matching format's parser, and
// returns a time-ordered Handle. usPerFrameHint is the frame duration in
// microseconds for frame-indexed formats (0 if unknown).
func Open(text string, usPerFrameHint int64) (*Handle, error) {
	return subdemux.Open(text, usPerFrameHint)
}

// Rendering
func RenderText(h *Handle) string { return subdemux.RenderText(h) }
func RenderJSON(h *Handle) string { return subdemux.RenderJSON(h) }
func RenderCSV(h *Handle) string  { return subdemux.RenderCSV(h) }
func RenderSRT(h *Handle) string  { return subdemux.RenderSRT(h) }
