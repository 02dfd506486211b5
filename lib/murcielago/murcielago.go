// Package murcielago implements the MURCIELAGO letter to digit substitution.
//
// Every letter of the keyword is replaced by its position, counted from 0 or
// from 1:
//
//	base 0: M=0 U=1 R=2 C=3 I=4 E=5 L=6 A=7 G=8 O=9
//	base 1: M=1 U=2 R=3 C=4 I=5 E=6 L=7 A=8 G=9 O=0
//
// The package level functions upper-case the whole message and leave every
// character outside the table as it is.
package murcielago

import (
	"strconv"
	"strings"

	"github.com/jpicht/scoutcode/lib/cipher"
)

// Keyword is the ten letter word the table is derived from
const Keyword = "MURCIELAGO"

// Base is the digit aligned with the first letter of the keyword
type Base int

const (
	Base0 Base = 0
	Base1 Base = 1
)

var (
	tables = map[Base]map[cipher.Case]*cipher.Table{}

	upper0 = Cipher{Base: Base0, Case: cipher.Upper, Policy: cipher.PassThrough}
	upper1 = Cipher{Base: Base1, Case: cipher.Upper, Policy: cipher.PassThrough}
)

func init() {
	for _, b := range []Base{Base0, Base1} {
		tables[b] = map[cipher.Case]*cipher.Table{
			cipher.Upper: NewTable(b, cipher.Upper),
			cipher.Lower: NewTable(b, cipher.Lower),
		}
	}
}

// NewTable derives the table for a base; letters are stored in case c
func NewTable(b Base, c cipher.Case) *cipher.Table {
	letters := strings.Split(c.Apply(Keyword), "")
	pairs := make([]cipher.Pair, len(letters))
	for i, l := range letters {
		pairs[i] = cipher.Pair{
			Plain: l,
			Coded: strconv.Itoa(((i+int(b))%10 + 10) % 10),
		}
	}
	return cipher.MustTable("murcielago"+strconv.Itoa(int(b)), pairs...)
}

// Cipher is a configured MURCIELAGO translator. Case None is treated as
// Upper, since the table only exists in one case at a time.
type Cipher struct {
	Base   Base
	Case   cipher.Case
	Policy cipher.Policy
}

func (c Cipher) translator(d cipher.Direction) cipher.Translator {
	cs := c.Case
	if cs != cipher.Lower {
		cs = cipher.Upper
	}
	t, ok := tables[c.Base][cs]
	if !ok {
		t = NewTable(c.Base, cs)
	}
	return cipher.Translator{
		Table:     t,
		Direction: d,
		In:        cipher.Characters,
		Out:       cipher.Characters,
		Case:      cs,
		Policy:    c.Policy,
	}
}

// Decode replaces digits with keyword letters
func (c Cipher) Decode(message string) (string, error) {
	return c.translator(cipher.Decode).Translate(message)
}

// Encode replaces keyword letters with digits
func (c Cipher) Encode(message string) (string, error) {
	return c.translator(cipher.Encode).Translate(message)
}

// pass-through never fails
func must(s string, err error) string {
	if err != nil {
		panic(err)
	}
	return s
}

// DecodeBase0 upper-cases message and replaces digits with keyword letters, 0 is M.
// Everything else is copied.
func DecodeBase0(message string) string {
	return must(upper0.Decode(message))
}

// DecodeBase1 is DecodeBase0 with the keyword numbered from 1, so 1 is M and 0 is O.
func DecodeBase1(message string) string {
	return must(upper1.Decode(message))
}

// EncodeBase0 upper-cases message and replaces keyword letters with digits, M is 0.
// Everything else is copied.
func EncodeBase0(message string) string {
	return must(upper0.Encode(message))
}

// EncodeBase1 is EncodeBase0 with the keyword numbered from 1, so M is 1 and O is 0.
func EncodeBase1(message string) string {
	return must(upper1.Encode(message))
}
