package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"

	"saltcrackr/engine"
)

// Bar draws a progress bar for the target being searched. It tracks one target at a time, so
// it suits sequential batches.
type Bar struct {
	mu      sync.Mutex
	w       io.Writer
	current *progressbar.ProgressBar
}

func NewBar(w io.Writer) *Bar {
	if w == nil {
		w = os.Stderr
	}
	return &Bar{w: w}
}

func (b *Bar) newBar(e engine.Event) *progressbar.ProgressBar {
	total := int64(-1)
	if e.Known {
		total = e.Total
	}

	return progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(b.w),
		progressbar.OptionSetDescription(e.Target.Label()),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("hashes"),
		progressbar.OptionThrottle(200*time.Millisecond),
		progressbar.OptionSetWidth(25),
	)
}

func (b *Bar) Progress(e engine.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current == nil {
		b.current = b.newBar(e)
	}

	_ = b.current.Set64(e.Tested)
}

func (b *Bar) Done(r engine.Result) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current == nil {
		return
	}

	_ = b.current.Set64(r.Tested)
	_ = b.current.Finish()
	fmt.Fprintln(b.w)
	b.current = nil
}
