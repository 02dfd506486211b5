package scoutdns

import (
	"strings"

	"github.com/jpicht/scoutcode/lib/cipher"
)

const (
	labelPlain = "ABCDEFGHIJKLMNOPQRSTUVWXYZ+/"
	labelCoded = "αβπδεϝγσιφκλχνοθψρςτμωϞξυζƕη"
)

var (
	// LabelTable moves upper case letters and the base64 punctuation out of
	// ASCII, so a payload survives case folding once it is IDNA encoded.
	LabelTable = newLabelTable()

	toLabel = cipher.Translator{
		Table:     LabelTable,
		Direction: cipher.Encode,
		In:        cipher.Characters,
		Out:       cipher.Characters,
		Policy:    cipher.PassThrough,
	}
	fromLabel = cipher.Translator{
		Table:     LabelTable,
		Direction: cipher.Decode,
		In:        cipher.Characters,
		Out:       cipher.Characters,
		Policy:    cipher.PassThrough,
	}
)

func newLabelTable() *cipher.Table {
	plain := strings.Split(labelPlain, "")
	coded := strings.Split(labelCoded, "")
	pairs := make([]cipher.Pair, len(plain))
	for i := range plain {
		pairs[i] = cipher.Pair{Plain: plain[i], Coded: coded[i]}
	}
	return cipher.MustTable("label", pairs...)
}

// pass-through translations cannot fail
func mapLabel(t cipher.Translator, s string) string {
	out, _ := t.Translate(s)
	return out
}
