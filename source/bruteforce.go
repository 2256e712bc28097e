package source

import (
	"context"
	"math"
)

const (
	CharsetLower   = "abcdefghijklmnopqrstuvwxyz"
	CharsetUpper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	CharsetDigits  = "0123456789"
	CharsetSpecial = "!@#$%^&*()_+-=[]{}|;:,.<>?"
	CharsetAll     = CharsetLower + CharsetUpper + CharsetDigits + CharsetSpecial
)

// BruteForce enumerates every string over Charset with a length in [MinLength, MaxLength],
// shortest first and in charset order within a length.
type BruteForce struct {
	Charset   string
	MinLength int
	MaxLength int
}

func (b BruteForce) alphabet() []rune {
	if b.Charset == "" {
		return []rune(CharsetAll)
	}
	return []rune(b.Charset)
}

func (b BruteForce) Open(_ context.Context) (Cursor, error) {
	minLen := b.MinLength
	if minLen < 1 {
		minLen = 1
	}

	return &bruteForceCursor{
		alphabet: b.alphabet(),
		length:   minLen,
		maxLen:   b.MaxLength,
	}, nil
}

// Size is unknown when the keyspace does not fit in an int64
func (b BruteForce) Size(_ context.Context) (int64, bool) {
	base := float64(len(b.alphabet()))
	minLen := b.MinLength
	if minLen < 1 {
		minLen = 1
	}

	var total float64
	for l := minLen; l <= b.MaxLength; l++ {
		total += math.Pow(base, float64(l))
	}

	if total >= math.MaxInt64 {
		return 0, false
	}

	return int64(total), true
}

type bruteForceCursor struct {
	alphabet []rune
	indexes  []int
	length   int
	maxLen   int
	current  []rune
}

// Next advances an odometer over the alphabet, growing by one position when it wraps
func (c *bruteForceCursor) Next() bool {
	if c.length > c.maxLen {
		return false
	}

	if c.indexes == nil {
		c.reset()
		return true
	}

	for i := len(c.indexes) - 1; i >= 0; i-- {
		c.indexes[i]++
		if c.indexes[i] < len(c.alphabet) {
			c.current[i] = c.alphabet[c.indexes[i]]
			return true
		}
		c.indexes[i] = 0
		c.current[i] = c.alphabet[0]
	}

	c.length++
	if c.length > c.maxLen {
		return false
	}
	c.reset()

	return true
}

func (c *bruteForceCursor) reset() {
	c.indexes = make([]int, c.length)
	c.current = make([]rune, c.length)
	for i := range c.current {
		c.current[i] = c.alphabet[0]
	}
}

func (c *bruteForceCursor) Candidate() string {
	return string(c.current)
}

func (c *bruteForceCursor) Err() error   { return nil }
func (c *bruteForceCursor) Close() error { return nil }
