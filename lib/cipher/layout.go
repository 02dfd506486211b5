package cipher

import (
	"strings"
)

// Layout describes how a message is cut into words and tokens.
//
// An empty Word separator keeps the whole message as one word, an empty
// Token separator makes every character a token.
type Layout struct {
	Word  string
	Token string
}

var (
	// Characters treats every character as its own token
	Characters = Layout{}
)

// Split cuts the message into words of tokens
func (l Layout) Split(message string) [][]string {
	var words []string
	if l.Word == "" {
		words = []string{message}
	} else {
		words = strings.Split(message, l.Word)
	}

	out := make([][]string, len(words))
	for i, w := range words {
		if w == "" {
			// strings.Split("", sep) yields one empty element
			out[i] = []string{}
			continue
		}
		out[i] = strings.Split(w, l.Token)
	}
	return out
}

// Join is the inverse of Split
func (l Layout) Join(words [][]string) string {
	b := strings.Builder{}
	for i, w := range words {
		if i > 0 {
			b.WriteString(l.Word)
		}
		for j, t := range w {
			if j > 0 {
				b.WriteString(l.Token)
			}
			b.WriteString(t)
		}
	}
	return b.String()
}
