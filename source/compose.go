package source

import (
	"context"
)

type chain struct {
	sources []Source
}

// Chain yields every candidate of each source in turn
func Chain(sources ...Source) Source {
	var flat []Source
	for _, s := range sources {
		if s == nil {
			continue
		}
		flat = append(flat, s)
	}

	return &chain{sources: flat}
}

func (c *chain) Open(ctx context.Context) (Cursor, error) {
	return &chainCursor{ctx: ctx, sources: c.sources}, nil
}

func (c *chain) Size(ctx context.Context) (int64, bool) {
	var total int64
	for _, s := range c.sources {
		n, ok := s.Size(ctx)
		if !ok {
			return 0, false
		}
		total += n
	}

	return total, true
}

type chainCursor struct {
	ctx     context.Context
	sources []Source
	current Cursor
	err     error
}

func (c *chainCursor) Next() bool {
	for {
		if c.current == nil {
			if len(c.sources) == 0 || c.err != nil {
				return false
			}

			cur, err := c.sources[0].Open(c.ctx)
			if err != nil {
				c.err = err
				return false
			}
			c.current = cur
			c.sources = c.sources[1:]
		}

		if c.current.Next() {
			return true
		}

		c.err = c.current.Err()
		if err := c.current.Close(); err != nil && c.err == nil {
			c.err = err
		}
		c.current = nil
	}
}

func (c *chainCursor) Candidate() string {
	return c.current.Candidate()
}

func (c *chainCursor) Err() error {
	return c.err
}

func (c *chainCursor) Close() error {
	if c.current == nil {
		return nil
	}

	err := c.current.Close()
	c.current = nil
	return err
}

type dedupe struct {
	inner   Source
	counted counted
}

// Dedupe drops candidates already yielded earlier in the same pass. The first occurrence keeps
// its position so "first match wins" stays reproducible.
func Dedupe(inner Source) Source {
	return &dedupe{inner: inner}
}

func (d *dedupe) Open(ctx context.Context) (Cursor, error) {
	cur, err := d.inner.Open(ctx)
	if err != nil {
		return nil, err
	}

	return &dedupeCursor{Cursor: cur, seen: make(map[string]struct{})}, nil
}

// Size needs a full pass over the inner source, done once
func (d *dedupe) Size(ctx context.Context) (int64, bool) {
	// Unbounded or remote sources are not worth a counting pass
	if _, ok := d.inner.Size(ctx); !ok {
		return 0, false
	}

	return d.counted.size(ctx, d)
}

type dedupeCursor struct {
	Cursor
	seen map[string]struct{}
}

func (c *dedupeCursor) Next() bool {
	for c.Cursor.Next() {
		word := c.Cursor.Candidate()
		if _, ok := c.seen[word]; ok {
			continue
		}

		c.seen[word] = struct{}{}
		return true
	}

	return false
}
