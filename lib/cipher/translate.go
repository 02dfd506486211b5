package cipher

import (
	"strings"
	"unicode/utf8"
)

type (
	// Direction selects which side of a table is looked up
	Direction int

	// Case normalizes a message before lookup
	Case int

	// Policy decides what happens to tokens missing from the table
	Policy int
)

const (
	Decode Direction = iota
	Encode
)

const (
	None Case = iota
	Upper
	Lower
)

const (
	// FailFast aborts the translation with a *SymbolError
	FailFast Policy = iota
	// PassThrough copies the token to the output unchanged
	PassThrough
)

func (d Direction) String() string {
	if d == Encode {
		return "encode"
	}
	return "decode"
}

// Apply normalizes s. Bytes that are not valid UTF-8 are kept as they are.
func (c Case) Apply(s string) string {
	if c == None {
		return s
	}
	if utf8.ValidString(s) {
		return c.apply(s)
	}

	b := strings.Builder{}
	b.Grow(len(s))
	for len(s) > 0 {
		i := 0
		for i < len(s) {
			r, n := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && n == 1 {
				break
			}
			i += n
		}
		b.WriteString(c.apply(s[:i]))
		if i < len(s) {
			b.WriteByte(s[i])
			i++
		}
		s = s[i:]
	}
	return b.String()
}

func (c Case) apply(s string) string {
	switch c {
	case Upper:
		return strings.ToUpper(s)
	case Lower:
		return strings.ToLower(s)
	}
	return s
}

func (p Policy) String() string {
	if p == PassThrough {
		return "pass-through"
	}
	return "fail-fast"
}

// Translator is the substitution pass shared by all ciphers: normalize,
// split with In, map every token, join with Out.
type Translator struct {
	Table     *Table
	Direction Direction
	In        Layout
	Out       Layout
	Case      Case
	Policy    Policy
	// Trim strips surrounding whitespace from the result
	Trim bool
}

// Translate runs the message through the table. Empty tokens are dropped.
func (t Translator) Translate(message string) (string, error) {
	words := t.In.Split(t.Case.Apply(message))

	for i, w := range words {
		mapped := make([]string, 0, len(w))
		for j, tok := range w {
			if tok == "" {
				continue
			}
			sym, ok := t.Table.Lookup(t.Direction, tok)
			if !ok {
				if t.Policy == FailFast {
					return "", &SymbolError{
						Table:  t.Table.Name(),
						Symbol: tok,
						Word:   i,
						Index:  j,
					}
				}
				sym = tok
			}
			mapped = append(mapped, sym)
		}
		words[i] = mapped
	}

	out := t.Out.Join(words)
	if t.Trim {
		out = strings.TrimSpace(out)
	}
	return out, nil
}
