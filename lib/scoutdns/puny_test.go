package scoutdns_test

import (
	"testing"
	"unicode"

	"github.com/jpicht/scoutcode/lib/scoutdns"
	"github.com/stretchr/testify/assert"
)

func TestPunyCodeMapping(t *testing.T) {
	assert.Equal(t, 28, scoutdns.LabelTable.Len())
	for _, p := range scoutdns.LabelTable.Pairs() {
		rr, ok := scoutdns.LabelTable.Encode(p.Plain)
		assert.True(t, ok)
		r, ok := scoutdns.LabelTable.Decode(rr)
		assert.True(t, ok)
		assert.Equal(t, p.Plain, r)

		for _, c := range rr {
			assert.True(t, c > unicode.MaxASCII, rr)
		}
	}
}
