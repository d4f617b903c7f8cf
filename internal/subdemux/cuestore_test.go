package subdemux

import "testing"

func TestCueStoreFinalizeSortsByStart(t *testing.T) {
	store := NewCueStore()
	store.Push(Cue{StartUs: 3000, StopUs: 4000, Text: "third"})
	store.Push(Cue{StartUs: 1000, StopUs: 2000, Text: "first"})
	store.Push(Cue{StartUs: 2000, StopUs: 2500, Text: "second"})
	store.Finalize()

	want := []string{"first", "second", "third"}
	for i, w := range want {
		if got := store.Cue(i).Text; got != w {
			t.Fatalf("cue[%d]=%q, want %q", i, got, w)
		}
	}
}

func TestCueStoreFinalizeStableForEqualStart(t *testing.T) {
	store := NewCueStore()
	store.Push(Cue{StartUs: 1000, StopUs: -1, Text: "a"})
	store.Push(Cue{StartUs: 1000, StopUs: -1, Text: "b"})
	store.Finalize()

	if store.Cue(0).Text != "a" || store.Cue(1).Text != "b" {
		t.Fatalf("stable sort violated: %+v", store.Cues())
	}
}

func TestCueStoreLengthBounded(t *testing.T) {
	store := NewCueStore()
	store.Push(Cue{StartUs: 1000, StopUs: 5000, Text: "x"})
	store.Finalize()
	if store.Length() != 5000 {
		t.Fatalf("Length()=%d, want 5000", store.Length())
	}
}

func TestCueStoreLengthUnboundedLastCue(t *testing.T) {
	store := NewCueStore()
	store.Push(Cue{StartUs: 1000, StopUs: -1, Text: "x"})
	store.Finalize()
	if store.Length() != 1001 {
		t.Fatalf("Length()=%d, want 1001 (start+1 to avoid zero)", store.Length())
	}
}

func TestCueStoreLengthEmpty(t *testing.T) {
	store := NewCueStore()
	if store.Length() != 0 {
		t.Fatalf("Length()=%d, want 0 for an empty store", store.Length())
	}
}
