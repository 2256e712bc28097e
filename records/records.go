// Package records turns exported user tables into crack targets
package records

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"

	"saltcrackr/hashfn"
	"saltcrackr/target"
)

const MetaEmail = "email"

var (
	// ErrMalformedRecord wraps the reason a single record was skipped
	ErrMalformedRecord = errors.New("malformed record")

	errBlankUsername = errors.New("blank username")
)

var validate = validator.New()

// Record is one user row as exposed by the legacy system's /api/debug/users endpoint
type Record struct {
	Username     string `json:"username" validate:"required"`
	PasswordHash string `json:"password_hash" validate:"required,hexadecimal"`
	Email        string `json:"email" validate:"omitempty,email"`
}

type document struct {
	Users []json.RawMessage `json:"users"`
}

// Parsed holds the usable targets and an account of the records that were skipped
type Parsed struct {
	Targets  []target.Descriptor
	Skipped  int
	Problems []error
}

func (p *Parsed) skip(pos int, err error) {
	p.Skipped++
	p.Problems = append(p.Problems, fmt.Errorf("%w %d: %w", ErrMalformedRecord, pos, err))
}

func (p *Parsed) add(fn hashfn.Function, pos int, rec Record) {
	// The username is the salt, it is used byte for byte
	if strings.TrimSpace(rec.Username) == "" {
		p.skip(pos, errBlankUsername)
		return
	}

	rec.PasswordHash = strings.TrimSpace(rec.PasswordHash)
	rec.Email = strings.TrimSpace(rec.Email)

	if err := validate.Struct(rec); err != nil {
		p.skip(pos, err)
		return
	}

	var opts []target.Option
	if rec.Email != "" {
		opts = append(opts, target.WithMeta(MetaEmail, rec.Email))
	}

	d, err := target.New(fn, rec.Username, rec.PasswordHash, opts...)
	if err != nil {
		p.skip(pos, err)
		return
	}

	p.Targets = append(p.Targets, d)
}

// ParseJSON reads {"users": [...]} documents. Records that do not decode or validate are
// skipped and counted; only a document that is not JSON at all is an error.
func ParseJSON(r io.Reader, fn hashfn.Function) (Parsed, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Parsed{}, fmt.Errorf("invalid JSON data: %w", err)
	}

	var p Parsed
	for i, raw := range doc.Users {
		var rec Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			p.skip(i+1, err)
			continue
		}

		p.add(fn, i+1, rec)
	}

	return p, nil
}

// ParseLines reads "username:digest" lines, ignoring blank lines and lines starting with '#'
func ParseLines(r io.Reader, fn hashfn.Function) (Parsed, error) {
	var p Parsed

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		// Usernames cannot contain ':' in the legacy system, digests never do
		idx := strings.LastIndex(text, ":")
		if idx < 0 {
			p.skip(line, errors.New("expected username:digest"))
			continue
		}

		p.add(fn, line, Record{Username: text[:idx], PasswordHash: text[idx+1:]})
	}

	return p, scanner.Err()
}
