package engine

// Reporter receives progress events and final results. Calls happen on the goroutine searching
// the target; when a batch runs with several workers a reporter must be safe for concurrent use.
// Time spent inside a reporter is not counted in a result's Elapsed.
type Reporter interface {
	Progress(Event)
	Done(Result)
}

type nop struct{}

func (nop) Progress(Event) {}
func (nop) Done(Result)    {}

// Nop discards everything
var Nop Reporter = nop{}

type multi []Reporter

func (m multi) Progress(e Event) {
	for _, r := range m {
		r.Progress(e)
	}
}

func (m multi) Done(res Result) {
	for _, r := range m {
		r.Done(res)
	}
}

// Multi fans events out to every non-nil reporter
func Multi(reporters ...Reporter) Reporter {
	var m multi
	for _, r := range reporters {
		if r != nil {
			m = append(m, r)
		}
	}

	switch len(m) {
	case 0:
		return Nop
	case 1:
		return m[0]
	}

	return m
}

// Funcs adapts plain functions, either of which may be nil
type Funcs struct {
	OnProgress func(Event)
	OnDone     func(Result)
}

func (f Funcs) Progress(e Event) {
	if f.OnProgress != nil {
		f.OnProgress(e)
	}
}

func (f Funcs) Done(r Result) {
	if f.OnDone != nil {
		f.OnDone(r)
	}
}
