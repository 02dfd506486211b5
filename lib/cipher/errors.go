package cipher

import (
	"errors"
	"fmt"
)

var (
	ERR_INVALID_SYMBOL = errors.New("Invalid symbol")
)

// SymbolError reports a token that has no entry in the table. Word and
// Index locate the token in the split input.
type SymbolError struct {
	Table  string
	Symbol string
	Word   int
	Index  int
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("%s: invalid symbol %q (word %d, token %d)", e.Table, e.Symbol, e.Word, e.Index)
}

func (e *SymbolError) Unwrap() error {
	return ERR_INVALID_SYMBOL
}
