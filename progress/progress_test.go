package progress

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saltcrackr/engine"
	"saltcrackr/hashfn"
	"saltcrackr/target"
)

func alice(t *testing.T) target.Descriptor {
	t.Helper()

	fn := hashfn.MD5Salted()
	d, err := target.New(fn, "alice", fn.Digest("alice", "alicepw"))
	require.NoError(t, err)
	return d
}

func TestFormatProgress(t *testing.T) {
	tg := alice(t)

	known := engine.Event{Target: tg, Tested: 10000, Total: 14344391, Known: true, Rate: 52311.7}
	assert.Equal(t, "alice: 10,000/14,344,391 (0.1%) - 52,311 hashes/sec", FormatProgress(known))

	unknown := engine.Event{Target: tg, Tested: 20000, Rate: 0}
	assert.Equal(t, "alice: 20,000 tested - 0 hashes/sec", FormatProgress(unknown))
}

func TestFormatResult(t *testing.T) {
	tg := alice(t)

	tests := []struct {
		name string
		res  engine.Result
		want string
	}{
		{
			"found",
			engine.Result{Target: tg, Outcome: engine.Found, Password: "alicepw", Tested: 3, Elapsed: 1500 * time.Millisecond},
			`alice: password "alicepw" cracked in 1.50 seconds after 3 candidates`,
		},
		{
			"not found",
			engine.Result{Target: tg, Outcome: engine.NotFound, Tested: 1, Elapsed: 0},
			"alice: not found after testing 1 password in 0.00 seconds",
		},
		{
			"cancelled",
			engine.Result{Target: tg, Outcome: engine.Cancelled, Tested: 12000, Elapsed: 2 * time.Second},
			"alice: stopped after 12,000 candidates in 2.00 seconds, search incomplete",
		},
		{
			"failed",
			engine.Result{Target: tg, Outcome: engine.Failed, Tested: 0, Err: errors.New("boom")},
			"alice: failed after 0 candidates: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatResult(tt.res))
		})
	}
}

func TestBar(t *testing.T) {
	var buf bytes.Buffer
	b := NewBar(&buf)
	tg := alice(t)

	assert.NotPanics(t, func() {
		b.Progress(engine.Event{Target: tg, Tested: 10, Total: 100, Known: true})
		b.Progress(engine.Event{Target: tg, Tested: 20, Total: 100, Known: true})
		b.Done(engine.Result{Target: tg, Outcome: engine.NotFound, Tested: 100})
		// A target that finished before its first event has no bar to close
		b.Done(engine.Result{Target: tg, Outcome: engine.Found, Tested: 1})
	})

	assert.NotEmpty(t, buf.String())
	assert.Nil(t, b.current)
}

func TestSample(t *testing.T) {
	u, err := Sample()
	require.NoError(t, err)

	assert.GreaterOrEqual(t, u.CPUPercent, 0.0)
	assert.GreaterOrEqual(t, u.MemoryPercent, 0.0)
	assert.LessOrEqual(t, u.MemoryPercent, 100.0)
}

func TestReportersSatisfyEngine(t *testing.T) {
	var _ engine.Reporter = NewConsole(true)
	var _ engine.Reporter = NewBar(nil)
	var _ engine.Reporter = NewResources()
}
