package metrics

import "testing"

var sink []byte

func TestMemoryCollector_Snapshot(t *testing.T) {
	t.Parallel()

	snap := NewMemoryCollector().Snapshot()
	if snap.HeapAlloc == 0 {
		t.Error("HeapAlloc should be > 0")
	}
	if snap.Sys == 0 {
		t.Error("Sys should be > 0")
	}
	if snap.NumGoroutine < 1 {
		t.Error("NumGoroutine should count the test goroutine")
	}
}

func TestMemorySnapshot_AllocatedSince(t *testing.T) {
	t.Parallel()

	mc := NewMemoryCollector()
	before := mc.Snapshot()
	sink = make([]byte, 1<<20)
	after := mc.Snapshot()

	if after.AllocatedSince(before) < 1<<20 {
		t.Errorf("AllocatedSince = %d, want >= 1MiB", after.AllocatedSince(before))
	}
	if before.AllocatedSince(after) != 0 {
		t.Error("AllocatedSince should clamp to zero when reversed")
	}
}
