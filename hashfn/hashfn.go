// Package hashfn describes how a salt and a candidate password are turned into a digest
package hashfn

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Order decides where the salt goes relative to the candidate
type Order string

const (
	// SaltPrefix hashes salt+candidate, which is how the legacy auth system stores passwords
	SaltPrefix Order = "prefix"
	SaltSuffix Order = "suffix"
	Unsalted   Order = "none"
)

const DefaultPrimitive = "md5"

var (
	// ErrInvalidScheme when a scheme is built with an unknown order or a non-positive round count
	ErrInvalidScheme = errors.New("invalid hash scheme")
)

// Function computes the canonical (lowercase hex) digest of a candidate under a salt.
// Implementations must be deterministic and safe for concurrent use.
type Function interface {
	Name() string
	Digest(salt, candidate string) string
	// Size is the length of the hex digest
	Size() int
}

// Orders lists the supported salt orders
func Orders() []Order {
	return []Order{SaltPrefix, SaltSuffix, Unsalted}
}

// Scheme is the Function used by saltcrackr: a registered primitive, a salt order and
// a number of rounds.
type Scheme struct {
	primitive string
	newHash   Primitive
	order     Order
	rounds    int
	size      int
}

// New builds a Scheme. Rounds past the first hash the raw digest of the previous round.
func New(primitive string, order Order, rounds int) (*Scheme, error) {
	p, err := Lookup(primitive)
	if err != nil {
		return nil, err
	}

	switch order {
	case SaltPrefix, SaltSuffix, Unsalted:
	case "":
		order = SaltPrefix
	default:
		return nil, fmt.Errorf("%w: unknown salt order %q", ErrInvalidScheme, order)
	}

	if rounds < 1 {
		return nil, fmt.Errorf("%w: rounds must be at least 1, got %d", ErrInvalidScheme, rounds)
	}

	return &Scheme{
		primitive: primitive,
		newHash:   p,
		order:     order,
		rounds:    rounds,
		size:      hex.EncodedLen(p().Size()),
	}, nil
}

// Parse reads the textual form produced by Name, e.g. "md5", "sha1/suffix" or "md5/prefix/x1000"
func Parse(name string) (*Scheme, error) {
	parts := strings.Split(name, "/")
	if len(parts) > 3 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidScheme, name)
	}

	order := SaltPrefix
	rounds := 1

	if len(parts) > 1 {
		order = Order(parts[1])
	}

	if len(parts) > 2 {
		count, ok := strings.CutPrefix(parts[2], "x")
		n, err := strconv.Atoi(count)
		if !ok || err != nil {
			return nil, fmt.Errorf("%w: bad round count in %q", ErrInvalidScheme, name)
		}
		rounds = n
	}

	return New(parts[0], order, rounds)
}

// MD5Salted is md5(salt + candidate), the legacy auth system's scheme
func MD5Salted() *Scheme {
	s, err := New(DefaultPrimitive, SaltPrefix, 1)
	if err != nil {
		panic(err)
	}

	return s
}

func (s *Scheme) Name() string {
	name := s.primitive
	if s.order != SaltPrefix || s.rounds > 1 {
		name += "/" + string(s.order)
	}

	if s.rounds > 1 {
		name += fmt.Sprintf("/x%d", s.rounds)
	}

	return name
}

func (s *Scheme) Size() int {
	return s.size
}

func (s *Scheme) Digest(salt, candidate string) string {
	h := s.newHash()

	switch s.order {
	case SaltPrefix:
		h.Write([]byte(salt))
		h.Write([]byte(candidate))
	case SaltSuffix:
		h.Write([]byte(candidate))
		h.Write([]byte(salt))
	default:
		h.Write([]byte(candidate))
	}

	sum := h.Sum(nil)
	for i := 1; i < s.rounds; i++ {
		h.Reset()
		h.Write(sum)
		sum = h.Sum(sum[:0])
	}

	return hex.EncodeToString(sum)
}
