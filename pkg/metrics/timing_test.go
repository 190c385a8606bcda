package metrics

import (
	"sync"
	"testing"
	"time"
)

func TestRecordStats(t *testing.T) {
	m := newTimingMetric("t")
	m.Record(2 * time.Millisecond)
	m.Record(4 * time.Millisecond)

	st := m.Stats()
	if st.Count != 2 {
		t.Fatalf("Count = %d, want 2", st.Count)
	}
	if st.MinMs != 2 || st.MaxMs != 4 || st.AvgMs != 3 || st.TotalMs != 6 {
		t.Errorf("stats = %+v", st)
	}

	m.Reset()
	if m.Count() != 0 || m.Stats().MaxMs != 0 {
		t.Errorf("Reset left %+v", m.Stats())
	}
}

func TestRecordConcurrent(t *testing.T) {
	m := newTimingMetric("c")
	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(d time.Duration) {
			defer wg.Done()
			m.Record(d)
		}(time.Duration(i) * time.Microsecond)
	}
	wg.Wait()

	st := m.Stats()
	if st.Count != 50 {
		t.Fatalf("Count = %d, want 50", st.Count)
	}
	if st.MinMs != 0.001 || st.MaxMs != 0.05 {
		t.Errorf("min/max = %v/%v", st.MinMs, st.MaxMs)
	}
}

func TestDisabled(t *testing.T) {
	SetEnabled(false)
	defer SetEnabled(true)

	m := newTimingMetric("off")
	Timer(m)()
	m.Record(time.Second)
	if m.Count() != 0 {
		t.Errorf("Count = %d while disabled", m.Count())
	}
}

func TestSnapshotSkipsEmpty(t *testing.T) {
	SetEnabled(true)
	ResetAll()
	defer ResetAll()

	Timer(StateSave)()
	snap := Snapshot()
	if len(snap) != 1 || snap[0].Name != "state_save" {
		t.Errorf("Snapshot = %+v", snap)
	}
}
