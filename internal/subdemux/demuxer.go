package subdemux

import "strings"

// jacoSubState carries JacoSub's mutable time-resolution/time-shift
// directives across cues, grounded on the reference decoder's p_sys->jss
// (i_comment, i_time_resolution, i_time_shift, b_inited). timeShift is in
// frame units at whatever timeResolution was active when the "#S[HIFT]"
// directive that set it was read, not microseconds — it is added to a
// cue's own frame count before that sum is divided by the resolution
// active at the cue, exactly as i_time_shift is used in ParseJSS.
type jacoSubState struct {
	inited         bool
	commentDepth   int
	timeResolution int64
	timeShift      int64
}

// mpSubState carries MPSub's cumulative offset across cues, grounded on
// p_sys->mpsub (f_total, f_factor, b_inited).
type mpSubState struct {
	inited     bool
	cumulative float64
	factor     float64
}

// demuxState is the mutable state a single Open call threads through every
// parser invocation: the frame-duration hint (which MicroDVD may update in
// place), the accumulated SSA/ASS header text, and the two formats'
// lazily-initialized carry-state.
type demuxState struct {
	tag         FormatTag
	usPerFrame  int64
	header      strings.Builder
	jss         jacoSubState
	mpsub       mpSubState
}

// Handle is the open, parsed result of a subtitle blob: a format tag, its
// display name, and the finalized, time-ordered cue list plus total
// length. It is the Go analogue of the reference decoder's demux_sys_t,
// minus the manual memory bookkeeping Go's GC makes unnecessary.
type Handle struct {
	tag    FormatTag
	header string
	store  *CueStore
}

// FormatName returns the user-visible format name (spec.md §6).
func (h *Handle) FormatName() string { return h.tag.Name() }

// Format returns the classified FormatTag.
func (h *Handle) Format() FormatTag { return h.tag }

// Header returns the non-Dialogue lines of an SSA/ASS script (the preamble
// and any lines between Dialogue lines), joined by "\n", or "" for every
// other format.
func (h *Handle) Header() string { return h.header }

// Len returns the number of cues held.
func (h *Handle) Len() int { return h.store.Len() }

// Cue returns the cue at index i. The caller must ensure 0 <= i < Len().
func (h *Handle) Cue(i int) Cue { return h.store.Cue(i) }

// Cues returns every cue, in final sorted order.
func (h *Handle) Cues() []Cue { return h.store.Cues() }

// Length returns the handle's total duration in microseconds.
func (h *Handle) Length() int64 { return h.store.Length() }

// Close releases the handle. Go's GC reclaims everything a Handle owns on
// its own; Close exists for API symmetry with VLC_SubtitleDemuxClose and
// so callers that manage many handles have one place to signal "done"
// with this one.
func (h *Handle) Close() {}

// Open probes input, selects and drives the matching format parser to
// EOF, and returns a finalized, time-ordered Handle. usPerFrameHint is
// microseconds per video frame for frame-indexed formats (0 means "no
// hint"; MicroDVD may then infer it from an inline "{1}{1}<fps>" line).
//
// Grounded on VLC_SubtitleDemuxOpen: probe, bail out on Unknown, dispatch
// TTML to the adapter, otherwise load the LineBuffer and loop the chosen
// parser until it errors, then sort and compute the total length.
func Open(text string, usPerFrameHint int64) (*Handle, error) {
	tag := Probe(text)
	if tag == FormatUnknown {
		return nil, &StatusError{Status: StatusGenericError, Err: ErrUnknownFormat}
	}

	if tag == FormatTTML {
		cues, err := ParseTTML(text)
		if err != nil {
			return nil, &StatusError{Status: StatusGenericError, Err: err}
		}
		store := NewCueStore()
		for _, c := range cues {
			store.Push(c)
		}
		if store.Len() == 0 {
			return nil, &StatusError{Status: StatusGenericError, Err: ErrEmptyResult}
		}
		store.Finalize()
		return &Handle{tag: FormatTTML, store: store}, nil
	}

	parse, ok := lookupParser(tag)
	if !ok {
		return nil, &StatusError{Status: StatusGenericError, Err: ErrUnknownFormat}
	}

	lb := NewLineBuffer(text)
	st := &demuxState{tag: tag, usPerFrame: usPerFrameHint}
	store := NewCueStore()

	for idx := 0; ; idx++ {
		cue, err := parse(st, lb, idx)
		if err != nil {
			break
		}
		store.Push(cue)
	}

	if store.Len() == 0 {
		return nil, &StatusError{Status: StatusGenericError, Err: ErrEmptyResult}
	}

	store.Finalize()

	return &Handle{
		tag:    tag,
		header: strings.TrimSuffix(st.header.String(), "\n"),
		store:  store,
	}, nil
}
