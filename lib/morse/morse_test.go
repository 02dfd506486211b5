package morse_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jpicht/scoutcode/lib/cipher"
	"github.com/jpicht/scoutcode/lib/morse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	for in, want := range map[string]string{
		".-//-.../-.-.":       "A BC",
		".-/-.../-.-.":        "ABC",
		"...//---//...":       "S O S",
		".----/..---/...--":   "123",
		"":                    "",
		".-////-...":          "A  B",
		".-/":                 "A",
		"-.-./---/-.././/--.": "CODE G",
	} {
		got, err := morse.Decode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestDecodeInvalidToken(t *testing.T) {
	_, err := morse.Decode(".-//......")
	require.Error(t, err)
	assert.True(t, errors.Is(err, cipher.ERR_INVALID_SYMBOL))

	var se *cipher.SymbolError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "......", se.Symbol)
}

func TestDecodePassThrough(t *testing.T) {
	got, err := morse.Translator{Policy: cipher.PassThrough}.Decode(".-/?/-...")
	require.NoError(t, err)
	assert.Equal(t, "A?B", got)
}

func TestEncode(t *testing.T) {
	got, err := morse.Encode("a bc")
	require.NoError(t, err)
	assert.Equal(t, ".-//-.../-.-.", got)

	_, err = morse.Encode("a,b")
	assert.True(t, errors.Is(err, cipher.ERR_INVALID_SYMBOL))
}

func TestRoundTrip(t *testing.T) {
	for _, p := range morse.Table.Pairs() {
		for _, s := range []string{p.Plain, strings.ToLower(p.Plain)} {
			enc, err := morse.Encode(s)
			require.NoError(t, err)
			assert.Equal(t, p.Coded, enc)

			dec, err := morse.Decode(enc)
			require.NoError(t, err)
			assert.Equal(t, strings.ToUpper(s), dec)
		}
	}

	msg := "be prepared 1907"
	enc, err := morse.Encode(msg)
	require.NoError(t, err)
	dec, err := morse.Decode(enc)
	require.NoError(t, err)
	assert.Equal(t, strings.ToUpper(msg), dec)
}

func TestTableIsBijective(t *testing.T) {
	assert.Equal(t, 36, morse.Table.Len())
	seen := map[string]string{}
	for _, p := range morse.Table.Pairs() {
		assert.NotContains(t, seen, p.Coded)
		seen[p.Coded] = p.Plain
		assert.True(t, len(p.Coded) >= 1 && len(p.Coded) <= 5)
		assert.Empty(t, strings.Trim(p.Coded, ".-"))
	}
}
