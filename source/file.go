package source

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
)

const maxLineSize = 1024 * 1024

// File is a wordlist with one candidate per line. Surrounding whitespace is trimmed and blank
// lines are skipped. A file that does not exist is an empty source.
type File struct {
	Path string

	counted counted
}

func NewFile(path string) *File {
	return &File{Path: path}
}

// Exists reports whether the wordlist can be read
func (f *File) Exists() bool {
	info, err := os.Stat(f.Path)
	return err == nil && !info.IsDir()
}

func (f *File) Open(ctx context.Context) (Cursor, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return List(nil).Open(ctx)
		}
		return nil, err
	}

	return NewLineCursor(fh), nil
}

// Size counts the file's candidates on first use
func (f *File) Size(ctx context.Context) (int64, bool) {
	return f.counted.size(ctx, f)
}

// Candidates between ctx checks while counting
const countCheckEvery = 4096

// counted caches the result of a complete counting pass. A pass cut short by ctx is not kept,
// the next call counts again.
type counted struct {
	mu    sync.Mutex
	done  bool
	count int64
	known bool
}

func (c *counted) size(ctx context.Context, src Source) (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.done {
		return c.count, c.known
	}

	n, err := countPass(ctx, src)
	if ctx.Err() != nil {
		return 0, false
	}

	c.done = true
	c.count, c.known = n, err == nil
	return c.count, c.known
}

func countPass(ctx context.Context, src Source) (int64, error) {
	cur, err := src.Open(ctx)
	if err != nil {
		return 0, err
	}
	defer cur.Close()

	var n int64
	for cur.Next() {
		n++
		if n%countCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
	}

	if err := cur.Err(); err != nil {
		return 0, err
	}

	return n, ctx.Err()
}

// FirstAvailable returns the first wordlist in paths that exists, or nil and "" when none does
func FirstAvailable(paths ...string) (*File, string) {
	for _, p := range paths {
		if p == "" {
			continue
		}

		f := NewFile(p)
		if f.Exists() {
			return f, p
		}
	}

	return nil, ""
}

// LineCursor scans candidates out of a reader and closes it with the cursor
type LineCursor struct {
	rc      io.ReadCloser
	scanner *bufio.Scanner
	current string
}

func NewLineCursor(rc io.ReadCloser) *LineCursor {
	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	return &LineCursor{rc: rc, scanner: scanner}
}

func (c *LineCursor) Next() bool {
	for c.scanner.Scan() {
		word := strings.TrimSpace(c.scanner.Text())
		if word == "" {
			continue
		}

		c.current = word
		return true
	}

	return false
}

func (c *LineCursor) Candidate() string {
	return c.current
}

func (c *LineCursor) Err() error {
	return c.scanner.Err()
}

func (c *LineCursor) Close() error {
	return c.rc.Close()
}
