// Package cipher implements the table driven substitution shared by the
// scout ciphers.
package cipher

import (
	"fmt"
)

type (
	// Pair binds a plain symbol to its coded form
	Pair struct {
		Plain string
		Coded string
	}

	// Table is a fixed bidirectional symbol mapping
	Table struct {
		name    string
		pairs   []Pair
		forward map[string]string
		reverse map[string]string
	}
)

// NewTable builds a table and rejects any symbol used twice on either side
func NewTable(name string, pairs ...Pair) (*Table, error) {
	t := &Table{
		name:    name,
		pairs:   make([]Pair, len(pairs)),
		forward: make(map[string]string, len(pairs)),
		reverse: make(map[string]string, len(pairs)),
	}
	copy(t.pairs, pairs)

	for _, p := range pairs {
		if p.Plain == "" || p.Coded == "" {
			return nil, fmt.Errorf("%s: empty symbol in pair %q=%q", name, p.Plain, p.Coded)
		}
		if c, ok := t.forward[p.Plain]; ok {
			return nil, fmt.Errorf("%s: plain symbol %q bound twice (%q, %q)", name, p.Plain, c, p.Coded)
		}
		if s, ok := t.reverse[p.Coded]; ok {
			return nil, fmt.Errorf("%s: coded symbol %q bound twice (%q, %q)", name, p.Coded, s, p.Plain)
		}
		t.forward[p.Plain] = p.Coded
		t.reverse[p.Coded] = p.Plain
	}

	return t, nil
}

// MustTable is NewTable for package level tables
func MustTable(name string, pairs ...Pair) *Table {
	t, err := NewTable(name, pairs...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) Name() string {
	return t.name
}

func (t *Table) Len() int {
	return len(t.pairs)
}

// Pairs returns a copy of the pairs in definition order
func (t *Table) Pairs() []Pair {
	p := make([]Pair, len(t.pairs))
	copy(p, t.pairs)
	return p
}

// Encode maps a plain symbol to its coded form
func (t *Table) Encode(plain string) (string, bool) {
	c, ok := t.forward[plain]
	return c, ok
}

// Decode maps a coded symbol back to plain
func (t *Table) Decode(coded string) (string, bool) {
	p, ok := t.reverse[coded]
	return p, ok
}

// Lookup dispatches on the direction
func (t *Table) Lookup(d Direction, symbol string) (string, bool) {
	if d == Encode {
		return t.Encode(symbol)
	}
	return t.Decode(symbol)
}
