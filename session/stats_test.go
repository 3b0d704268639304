package session

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestStats() (*Stats, *time.Time) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewStats()
	s.now = func() time.Time { return clock }
	return s, &clock
}

// TestStartFinish records one run with a valid id
func TestStartFinish(t *testing.T) {
	s, clock := newTestStats()

	id := s.Start()
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("Expected uuid run id, got %q: %v", id, err)
	}
	if s.CurrentID() != id {
		t.Errorf("Expected current id %s, got %s", id, s.CurrentID())
	}

	*clock = clock.Add(90 * time.Second)
	run, ok := s.Finish(7, true)
	if !ok {
		t.Fatal("Expected finish to close the run")
	}
	if run.Score != 7 || !run.Smooth || run.Duration() != 90*time.Second {
		t.Errorf("Expected score 7 smooth 90s, got %+v", run)
	}
	if s.CurrentID() != "" {
		t.Error("Expected no open run after finish")
	}
	if _, ok := s.Finish(1, false); ok {
		t.Error("Expected finish without start to be refused")
	}
}

// TestSummary aggregates best, average and median
func TestSummary(t *testing.T) {
	s, clock := newTestStats()
	for _, score := range []int{3, 9, 4, 6} {
		s.Start()
		*clock = clock.Add(10 * time.Second)
		s.Finish(score, false)
	}

	sum := s.Summary()
	if sum.GamesPlayed != 4 {
		t.Errorf("Expected 4 games, got %d", sum.GamesPlayed)
	}
	if sum.BestScore != 9 {
		t.Errorf("Expected best 9, got %d", sum.BestScore)
	}
	if sum.AverageScore != 5.5 {
		t.Errorf("Expected average 5.5, got %v", sum.AverageScore)
	}
	if sum.MedianScore != 5 {
		t.Errorf("Expected median 5, got %v", sum.MedianScore)
	}
	if sum.AverageDuration != 10*time.Second {
		t.Errorf("Expected 10s average, got %v", sum.AverageDuration)
	}
	if len(s.Runs()) != 4 {
		t.Errorf("Expected 4 runs, got %d", len(s.Runs()))
	}
}

// TestEmptySummary has no games
func TestEmptySummary(t *testing.T) {
	s, _ := newTestStats()
	if sum := s.Summary(); sum != (Summary{}) {
		t.Errorf("Expected zero summary, got %+v", sum)
	}
}
