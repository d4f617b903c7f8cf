package subdemux

import "sort"

// CueStore accumulates cues during a parse and, once Finalize is called,
// owns the sorted, final cue list. Grounded on the reference decoder's
// p_sys->subtitle array plus its Fix() (qsort by i_start) and the
// i_length computation at the tail of VLC_SubtitleDemuxOpen.
type CueStore struct {
	cues []Cue
}

// NewCueStore returns an empty store with capacity pre-allocated the way
// the reference decoder grows p_sys->subtitle in blocks of 500.
func NewCueStore() *CueStore {
	return &CueStore{cues: make([]Cue, 0, 500)}
}

// Push appends a cue in parse order; Finalize restores a stable time order
// later.
func (s *CueStore) Push(c Cue) {
	s.cues = append(s.cues, c)
}

// Finalize sorts cues by StartUs ascending. sort.SliceStable preserves
// insertion order among ties, matching the invariant in spec.md §4.5.
func (s *CueStore) Finalize() {
	sort.SliceStable(s.cues, func(i, j int) bool {
		return s.cues[i].StartUs < s.cues[j].StartUs
	})
}

// Len returns the number of cues currently held.
func (s *CueStore) Len() int {
	return len(s.cues)
}

// Cue returns the cue at index i. The caller must ensure 0 <= i < Len().
func (s *CueStore) Cue(i int) Cue {
	return s.cues[i]
}

// Cues returns the full, finalized cue slice.
func (s *CueStore) Cues() []Cue {
	return s.cues
}

// Length computes the handle's total duration in microseconds: the last
// cue's stop time, or its start time + 1 when the stop is unbounded (the
// "+1 to avoid 0" rule from the reference decoder), or 0 for an empty
// store.
func (s *CueStore) Length() int64 {
	if len(s.cues) == 0 {
		return 0
	}
	last := s.cues[len(s.cues)-1]
	if last.StopUs >= 0 {
		return last.StopUs
	}
	return last.StartUs + 1
}
