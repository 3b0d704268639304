// Package session keeps the in-memory history of the runs played since the
// program started. Nothing is written to disk.
package session

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Run is one game from first move to game over
type Run struct {
	ID        string
	StartTime time.Time
	EndTime   time.Time
	Score     int
	Smooth    bool
}

func (r Run) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// Stats tracks the current run and the finished ones
type Stats struct {
	current *Run
	runs    []Run
	mutex   sync.RWMutex
	now     func() time.Time
}

func NewStats() *Stats {
	return &Stats{
		runs: make([]Run, 0),
		now:  time.Now,
	}
}

// Start opens a new run and returns its id. An unfinished run is dropped.
func (s *Stats) Start() string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.current = &Run{
		ID:        uuid.New().String(),
		StartTime: s.now(),
	}
	return s.current.ID
}

// CurrentID is the id of the open run, empty when none
func (s *Stats) CurrentID() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.current == nil {
		return ""
	}
	return s.current.ID
}

// Finish closes the open run with its final score
func (s *Stats) Finish(score int, smooth bool) (Run, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.current == nil {
		return Run{}, false
	}
	run := *s.current
	run.EndTime = s.now()
	run.Score = score
	run.Smooth = smooth
	s.runs = append(s.runs, run)
	s.current = nil
	return run, true
}

// Summary aggregates the finished runs
type Summary struct {
	GamesPlayed     int
	BestScore       int
	AverageScore    float64
	MedianScore     float64
	AverageDuration time.Duration
}

func (s *Stats) Summary() Summary {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	sum := Summary{GamesPlayed: len(s.runs)}
	if len(s.runs) == 0 {
		return sum
	}

	scores := make([]float64, 0, len(s.runs))
	var totalScore float64
	var totalDuration time.Duration
	for _, run := range s.runs {
		if run.Score > sum.BestScore {
			sum.BestScore = run.Score
		}
		totalScore += float64(run.Score)
		totalDuration += run.Duration()
		scores = append(scores, float64(run.Score))
	}

	sort.Float64s(scores)
	if len(scores)%2 == 0 {
		sum.MedianScore = (scores[len(scores)/2-1] + scores[len(scores)/2]) / 2
	} else {
		sum.MedianScore = scores[len(scores)/2]
	}
	sum.AverageScore = totalScore / float64(len(s.runs))
	sum.AverageDuration = totalDuration / time.Duration(len(s.runs))
	return sum
}

// Runs returns a copy of the finished runs
func (s *Stats) Runs() []Run {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]Run, len(s.runs))
	copy(out, s.runs)
	return out
}
