package pause

import (
	"testing"
)

func TestMarkClearIsPaused(t *testing.T) {
	s := NewStoreAt(t.TempDir())
	target := "fix-auth:0.0"

	if s.IsPaused(target) {
		t.Error("fresh store reports target paused")
	}

	if err := s.Mark(target, "claude"); err != nil {
		t.Fatalf("Mark: %v", err)
	}
	if !s.IsPaused(target) {
		t.Error("IsPaused = false after Mark")
	}

	markers, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(markers) != 1 {
		t.Fatalf("got %d markers, want 1", len(markers))
	}
	if markers[0].Target != target || markers[0].Agent != "claude" {
		t.Errorf("marker = %+v", markers[0])
	}
	if markers[0].PausedAt.IsZero() {
		t.Error("marker has zero timestamp")
	}

	if err := s.Clear(target); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if s.IsPaused(target) {
		t.Error("IsPaused = true after Clear")
	}
}

func TestClearMissingMarker(t *testing.T) {
	s := NewStoreAt(t.TempDir())
	if err := s.Clear("never-paused:0.0"); err != nil {
		t.Errorf("Clear on missing marker: %v", err)
	}
}

func TestListMissingDir(t *testing.T) {
	s := NewStoreAt(t.TempDir() + "/does-not-exist")
	markers, err := s.List()
	if err != nil {
		t.Errorf("List on missing dir: %v", err)
	}
	if markers != nil {
		t.Errorf("markers = %v, want nil", markers)
	}
}

func TestMarkerNamesAreDistinctPerTarget(t *testing.T) {
	s := NewStoreAt(t.TempDir())
	if err := s.Mark("a:0.0", "claude"); err != nil {
		t.Fatal(err)
	}
	if err := s.Mark("b:0.0", "aider"); err != nil {
		t.Fatal(err)
	}
	markers, _ := s.List()
	if len(markers) != 2 {
		t.Errorf("got %d markers, want 2", len(markers))
	}
	if !s.IsPaused("a:0.0") || !s.IsPaused("b:0.0") {
		t.Error("both targets should be paused")
	}
}
