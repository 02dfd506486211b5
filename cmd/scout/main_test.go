package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jpicht/scoutcode/lib/cipher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	var out bytes.Buffer
	err := runCLI(append([]string{"scout"}, args...), strings.NewReader(stdin), &out)
	return out.String(), err
}

func TestDecodeArgs(t *testing.T) {
	out, err := run(t, "", "decode", "morse", ".-//-.../-.-.")
	require.NoError(t, err)
	assert.Equal(t, "A BC\n", out)

	out, err = run(t, "", "decode", "murcielago1", "0", "9", "8")
	require.NoError(t, err)
	assert.Equal(t, "O G A\n", out)
}

func TestEncodeStdin(t *testing.T) {
	out, err := run(t, "MURCIELAGO\n", "encode", "murcielago0")
	require.NoError(t, err)
	assert.Equal(t, "0123456789\n", out)
}

func TestFlags(t *testing.T) {
	out, err := run(t, "", "decode", "-lower", "murcielago0", "S391TS")
	require.NoError(t, err)
	assert.Equal(t, "scouts\n", out)

	out, err = run(t, "", "decode", "-lenient", "morse", ".-/?")
	require.NoError(t, err)
	assert.Equal(t, "A?\n", out)

	_, err = run(t, "", "encode", "-strict", "murcielago0", "MUR CIE")
	assert.True(t, errors.Is(err, cipher.ERR_INVALID_SYMBOL))
}

func TestTranslationError(t *testing.T) {
	_, err := run(t, "", "decode", "morse", "........")
	require.Error(t, err)
	assert.True(t, errors.Is(err, cipher.ERR_INVALID_SYMBOL))
	assert.False(t, errors.Is(err, errUsage))
}

func TestUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"rot"},
		{"encode"},
		{"encode", "caesar", "x"},
		{"decode", "-bogus", "morse", "x"},
	} {
		_, err := run(t, "", args...)
		assert.True(t, errors.Is(err, errUsage), args)
	}
}

func TestList(t *testing.T) {
	out, err := run(t, "", "list")
	require.NoError(t, err)
	assert.Equal(t, "morse\nmurcielago0\nmurcielago1\n", out)
}
