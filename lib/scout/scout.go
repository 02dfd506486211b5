package scout

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jpicht/scoutcode/lib/cipher"
	"github.com/jpicht/scoutcode/lib/morse"
	"github.com/jpicht/scoutcode/lib/murcielago"
)

type (
	// Cipher translates a message in both directions
	Cipher interface {
		Encode(message string) (string, error)
		Decode(message string) (string, error)
	}

	// Op selects the direction of a translation
	Op int
)

const (
	Decode Op = iota
	Encode
)

var (
	ERR_UNKNOWN_CIPHER = errors.New("Unknown cipher")
	ERR_UNKNOWN_OP     = errors.New("Unknown operation")

	registry = map[string]Cipher{
		"morse": morse.Default,
		"murcielago0": murcielago.Cipher{
			Base:   murcielago.Base0,
			Case:   cipher.Upper,
			Policy: cipher.PassThrough,
		},
		"murcielago1": murcielago.Cipher{
			Base:   murcielago.Base1,
			Case:   cipher.Upper,
			Policy: cipher.PassThrough,
		},
	}
)

func (o Op) String() string {
	if o == Encode {
		return "encode"
	}
	return "decode"
}

// ParseOp accepts "encode", "decode" and their first letter
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(s) {
	case "encode", "e":
		return Encode, nil
	case "decode", "d":
		return Decode, nil
	}
	return Decode, fmt.Errorf("%w: %q", ERR_UNKNOWN_OP, s)
}

// Lookup returns the registered cipher
func Lookup(name string) (Cipher, error) {
	c, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ERR_UNKNOWN_CIPHER, name)
	}
	return c, nil
}

// Names lists the registered ciphers in ascending order
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Translate looks up the cipher and runs it in the given direction
func Translate(name string, op Op, message string) (string, error) {
	c, err := Lookup(name)
	if err != nil {
		return "", err
	}
	return Run(c, op, message)
}

// Run applies op to c
func Run(c Cipher, op Op, message string) (string, error) {
	switch op {
	case Encode:
		return c.Encode(message)
	case Decode:
		return c.Decode(message)
	}
	return "", fmt.Errorf("%w: %d", ERR_UNKNOWN_OP, int(op))
}

// Options override the defaults of a registered cipher. The zero value
// keeps them.
type Options struct {
	// Strict fails on the first unknown symbol
	Strict bool
	// Lenient copies unknown symbols to the output, Strict wins if both are set
	Lenient bool
	// Case selects the murcielago letter case, morse ignores it
	Case cipher.Case
}

func (o Options) policy(p cipher.Policy) cipher.Policy {
	switch {
	case o.Strict:
		return cipher.FailFast
	case o.Lenient:
		return cipher.PassThrough
	}
	return p
}

// Configure returns the named cipher with opts applied
func Configure(name string, opts Options) (Cipher, error) {
	base, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	switch v := base.(type) {
	case morse.Translator:
		v.Policy = opts.policy(v.Policy)
		return v, nil
	case murcielago.Cipher:
		v.Policy = opts.policy(v.Policy)
		if opts.Case != cipher.None {
			v.Case = opts.Case
		}
		return v, nil
	}
	return base, nil
}
