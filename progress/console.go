// Package progress renders engine events for people watching a terminal
package progress

import (
	"fmt"
	"sync"

	"github.com/dustin/go-humanize"
	log "github.com/visionmedia/go-cli-log"

	"saltcrackr/engine"
	"saltcrackr/utility"
)

// Console logs one line per progress event and one per finished target
type Console struct {
	mu           sync.Mutex
	showProgress bool
}

// NewConsole with showProgress false only logs finished targets, for use next to a Bar
func NewConsole(showProgress bool) *Console {
	return &Console{showProgress: showProgress}
}

func (c *Console) Progress(e engine.Event) {
	if !c.showProgress {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	log.Info("progress", "%s", FormatProgress(e))
}

func (c *Console) Done(r engine.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if r.Outcome == engine.Failed {
		log.Error(fmt.Errorf("%s: %w", r.Target.Label(), r.Err))
		return
	}

	log.Info(r.Outcome.String(), "%s", FormatResult(r))
}

// FormatProgress renders e as "alice: 10,000/14,344,391 (0.1%) - 52,311 hashes/sec"
func FormatProgress(e engine.Event) string {
	rate := humanize.Comma(int64(e.Rate))

	if pct, ok := e.Percent(); ok {
		return fmt.Sprintf("%s: %s/%s (%.1f%%) - %s hashes/sec", e.Target.Label(),
			humanize.Comma(e.Tested), humanize.Comma(e.Total), pct, rate)
	}

	return fmt.Sprintf("%s: %s tested - %s hashes/sec", e.Target.Label(), humanize.Comma(e.Tested), rate)
}

// FormatResult summarises a finished target in one line
func FormatResult(r engine.Result) string {
	label := r.Target.Label()
	secs := r.Elapsed.Seconds()
	tested := humanize.Comma(r.Tested)

	switch r.Outcome {
	case engine.Found:
		return fmt.Sprintf("%s: password %q cracked in %.2f seconds after %s %s",
			label, r.Password, secs, tested, plural(r.Tested, "candidate"))
	case engine.Cancelled:
		return fmt.Sprintf("%s: stopped after %s %s in %.2f seconds, search incomplete",
			label, tested, plural(r.Tested, "candidate"), secs)
	case engine.Failed:
		return fmt.Sprintf("%s: failed after %s %s: %v", label, tested, plural(r.Tested, "candidate"), r.Err)
	default:
		return fmt.Sprintf("%s: not found after testing %s %s in %.2f seconds",
			label, tested, plural(r.Tested, "password"), secs)
	}
}

func plural(n int64, word string) string {
	return utility.Pluralize(word, int(n))
}
