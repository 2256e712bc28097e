package hashfn

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"sort"
	"sync"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

var (
	// ErrUnknownPrimitive when no digest primitive is registered under the requested name
	ErrUnknownPrimitive = errors.New("unknown digest primitive")
)

// Primitive builds a fresh hash.Hash for every digest computation
type Primitive func() hash.Hash

var (
	registryMu sync.RWMutex
	registry   = map[string]Primitive{}
)

func init() {
	Register("md5", md5.New)
	Register("sha1", sha1.New)
	Register("sha256", sha256.New)
	Register("sha512", sha512.New)
	Register("sha3-256", sha3.New256)
	Register("blake2b-256", func() hash.Hash {
		// Only fails for keys longer than 64 bytes
		h, _ := blake2b.New256(nil)
		return h
	})
}

// Register makes a primitive available by name, replacing any previous entry
func Register(name string, p Primitive) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = p
}

func Lookup(name string) (Primitive, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	if p, ok := registry[name]; ok {
		return p, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownPrimitive, name)
}

// Primitives lists the registered primitive names in sorted order
func Primitives() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
