package verify

import (
	"path/filepath"
	"testing"
)

func TestHistoryRecordAndRecall(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state", "history.db")
	h, err := OpenHistory(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer h.Close()

	first := sampleSummary()
	if _, err := h.RecordRun(first); err != nil {
		t.Fatalf("record first: %v", err)
	}

	second := sampleSummary()
	second.CompleteCount = 2
	second.AllComplete = true
	id, err := h.RecordRun(second)
	if err != nil {
		t.Fatalf("record second: %v", err)
	}
	if id <= 0 {
		t.Fatalf("run id = %d, want positive", id)
	}

	runs, err := h.RecentRuns(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("runs = %d, want 2", len(runs))
	}
	// Newest first.
	if !runs[0].AllComplete || runs[1].AllComplete {
		t.Errorf("run order wrong: %+v", runs)
	}
	if runs[0].Total != 2 || runs[0].Complete != 2 {
		t.Errorf("run counts = %+v", runs[0])
	}
}

func TestHistoryLimit(t *testing.T) {
	t.Parallel()

	h, err := OpenHistory(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer h.Close()

	for i := 0; i < 5; i++ {
		if _, err := h.RecordRun(sampleSummary()); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}

	runs, err := h.RecentRuns(3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("runs = %d, want 3", len(runs))
	}
}
