package pipeline

import (
	"testing"
	"time"
)

func TestStatsSnapshotPercentiles(t *testing.T) {
	stats := NewStats(time.Hour)
	stats.Record(StageAnalyze, 100)
	stats.Record(StageAnalyze, 200)
	stats.Record(StageAnalyze, 300)
	stats.Record(StageAnalyze, 400)
	stats.Record(StageAnalyze, 500)

	snap := stats.Snapshot(StageAnalyze)
	if snap.Count != 5 {
		t.Fatalf("expected count=5, got %d", snap.Count)
	}
	if snap.MinMs != 100 {
		t.Fatalf("expected min=100, got %d", snap.MinMs)
	}
	if snap.MaxMs != 500 {
		t.Fatalf("expected max=500, got %d", snap.MaxMs)
	}
	if snap.AvgMs != 300 {
		t.Fatalf("expected avg=300, got %f", snap.AvgMs)
	}
	if snap.P50Ms != 300 {
		t.Fatalf("expected p50=300, got %f", snap.P50Ms)
	}
	if snap.P95Ms != 480 {
		t.Fatalf("expected p95=480, got %f", snap.P95Ms)
	}
	if snap.P99Ms != 496 {
		t.Fatalf("expected p99=496, got %f", snap.P99Ms)
	}
}

func TestStatsStagesAreIndependent(t *testing.T) {
	stats := NewStats(time.Hour)
	stats.Record(StageOutline, 50)
	stats.Record(StageAnalyze, 400)

	if got := stats.Snapshot(StageOutline).MaxMs; got != 50 {
		t.Fatalf("outline max = %d, want 50", got)
	}
	if got := stats.Snapshot(StageAnalyze).MinMs; got != 400 {
		t.Fatalf("analyze min = %d, want 400", got)
	}

	all := stats.SnapshotAll()
	if len(all) != 2 {
		t.Fatalf("expected 2 stages, got %d", len(all))
	}
	if all[StageOutline].Count != 1 || all[StageAnalyze].Count != 1 {
		t.Fatalf("unexpected counts: %+v", all)
	}
}

func TestStatsPrunesExpiredSamples(t *testing.T) {
	stats := NewStats(10 * time.Millisecond)
	stats.Record(StageAnalyze, 100)
	time.Sleep(25 * time.Millisecond)

	snap := stats.Snapshot(StageAnalyze)
	if snap.Count != 0 {
		t.Fatalf("expected count=0 after prune, got %d", snap.Count)
	}
	if all := stats.SnapshotAll(); len(all) != 0 {
		t.Fatalf("expected no live stages, got %+v", all)
	}

	stats.Record(StageAnalyze, 200)
	snap = stats.Snapshot(StageAnalyze)
	if snap.Count != 1 {
		t.Fatalf("expected count=1 for fresh sample, got %d", snap.Count)
	}
	if snap.MinMs != 200 || snap.MaxMs != 200 {
		t.Fatalf("expected min=max=200, got min=%d max=%d", snap.MinMs, snap.MaxMs)
	}
}

func TestStatsRecordClampsNegativeDuration(t *testing.T) {
	stats := NewStats(time.Hour)
	stats.Record(StageOutline, -10)
	snap := stats.Snapshot(StageOutline)
	if snap.Count != 1 {
		t.Fatalf("expected count=1, got %d", snap.Count)
	}
	if snap.MinMs != 0 || snap.MaxMs != 0 {
		t.Fatalf("expected clamped duration=0, got min=%d max=%d", snap.MinMs, snap.MaxMs)
	}
}

func TestStatsEmptySnapshot(t *testing.T) {
	snap := NewStats(time.Hour).Snapshot(StageAnalyze)
	if snap.Count != 0 || snap.MinMs != 0 || snap.AvgMs != 0 {
		t.Fatalf("expected zero snapshot, got %+v", snap)
	}
}
