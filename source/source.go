// Package source produces the candidate passwords tested by the engine
package source

import (
	"context"
)

// Source is a re-iterable candidate sequence. Every Open starts from the first candidate and
// returns a cursor that is independent from any other open cursor.
type Source interface {
	Open(ctx context.Context) (Cursor, error)
	// Size is the number of candidates Open will yield, when it is known up front. Sources that
	// need a counting pass stop it when ctx is done and report the size as unknown.
	Size(ctx context.Context) (int64, bool)
}

// Cursor walks one pass over a Source
type Cursor interface {
	Next() bool
	Candidate() string
	// Err is the error that stopped Next early, nil on normal exhaustion
	Err() error
	Close() error
}

// List is an in-memory source
type List []string

func (l List) Open(_ context.Context) (Cursor, error) {
	return &listCursor{words: l, pos: -1}, nil
}

func (l List) Size(_ context.Context) (int64, bool) {
	return int64(len(l)), true
}

type listCursor struct {
	words []string
	pos   int
}

func (c *listCursor) Next() bool {
	if c.pos+1 >= len(c.words) {
		c.pos = len(c.words)
		return false
	}
	c.pos++
	return true
}

func (c *listCursor) Candidate() string {
	return c.words[c.pos]
}

func (c *listCursor) Err() error   { return nil }
func (c *listCursor) Close() error { return nil }

// Collect drains a source into memory
func Collect(ctx context.Context, src Source) ([]string, error) {
	cur, err := src.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer cur.Close()

	var out []string
	for cur.Next() {
		out = append(out, cur.Candidate())
	}

	return out, cur.Err()
}
