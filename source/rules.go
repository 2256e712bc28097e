package source

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

// Rule names understood by Rules
const (
	RuleUppercase     = "uppercase"
	RuleCapitalize    = "capitalize"
	RuleReverse       = "reverse"
	RuleLeet          = "leet"
	RuleAppendNumbers = "append_numbers"
)

var leetReplacer = strings.NewReplacer(
	"a", "4", "e", "3", "i", "1",
	"o", "0", "s", "5", "t", "7",
)

var rules = map[string]func(string) string{
	RuleUppercase: strings.ToUpper,
	RuleCapitalize: func(word string) string {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		return string(runes)
	},
	RuleReverse: func(word string) string {
		runes := []rune(word)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return string(runes)
	},
	RuleLeet: leetReplacer.Replace,
	RuleAppendNumbers: func(word string) string {
		return word + "0123456789"
	},
}

// RuleNames lists the mangling rules in the order they are documented
func RuleNames() []string {
	return []string{RuleUppercase, RuleCapitalize, RuleReverse, RuleLeet, RuleAppendNumbers}
}

// ApplyRule mangles a single word, returning it unchanged for unknown rules
func ApplyRule(word, rule string) string {
	fn, ok := rules[rule]
	if !ok || word == "" {
		return word
	}
	return fn(word)
}

type mangled struct {
	inner Source
	rules []string
}

// Rules follows every candidate of inner with its mangled variants, skipping variants equal to
// the original word.
func Rules(inner Source, names ...string) (Source, error) {
	for _, name := range names {
		if _, ok := rules[name]; !ok {
			return nil, fmt.Errorf("unknown rule %q", name)
		}
	}

	return &mangled{inner: inner, rules: names}, nil
}

func (m *mangled) Open(ctx context.Context) (Cursor, error) {
	cur, err := m.inner.Open(ctx)
	if err != nil {
		return nil, err
	}

	return &mangledCursor{Cursor: cur, rules: m.rules}, nil
}

// Size is unknown because variants equal to their word are dropped
func (m *mangled) Size(ctx context.Context) (int64, bool) {
	if len(m.rules) == 0 {
		return m.inner.Size(ctx)
	}
	return 0, false
}

type mangledCursor struct {
	Cursor
	rules   []string
	word    string
	pending []string
	current string
}

func (c *mangledCursor) Next() bool {
	for len(c.pending) > 0 {
		next := c.pending[0]
		c.pending = c.pending[1:]
		if next != c.word {
			c.current = next
			return true
		}
	}

	if !c.Cursor.Next() {
		return false
	}

	c.word = c.Cursor.Candidate()
	c.current = c.word
	c.pending = c.pending[:0]
	for _, rule := range c.rules {
		c.pending = append(c.pending, ApplyRule(c.word, rule))
	}

	return true
}

func (c *mangledCursor) Candidate() string {
	return c.current
}
