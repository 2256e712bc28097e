package engine

import (
	"time"

	"saltcrackr/target"
)

// Outcome is the terminal state of one target's search
type Outcome int

const (
	// NotFound means the source was exhausted without a match
	NotFound Outcome = iota
	Found
	// Cancelled means the context ended the search early, so NotFound cannot be concluded
	Cancelled
	// Failed means the source could not be read to the end
	Failed
)

func (o Outcome) String() string {
	switch o {
	case NotFound:
		return "not found"
	case Found:
		return "found"
	case Cancelled:
		return "cancelled"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is produced once per target per run and never modified afterwards
type Result struct {
	Target   target.Descriptor
	Outcome  Outcome
	Password string
	Tested   int64
	Elapsed  time.Duration
	// Err explains Cancelled and Failed outcomes
	Err error
}

func (r Result) Found() bool {
	return r.Outcome == Found
}

// Event is a progress snapshot for the target currently being searched
type Event struct {
	Target  target.Descriptor
	Tested  int64
	Total   int64
	Known   bool
	Elapsed time.Duration
	// Rate in candidates per second
	Rate float64
}

// Percent of the source tested so far, when the source size is known
func (e Event) Percent() (float64, bool) {
	if !e.Known || e.Total <= 0 {
		return 0, false
	}
	return float64(e.Tested) / float64(e.Total) * 100, true
}

func rate(tested int64, elapsed time.Duration) float64 {
	secs := elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(tested) / secs
}
