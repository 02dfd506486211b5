package morse

import (
	"github.com/jpicht/scoutcode/lib/cipher"
)

const (
	// LetterSeparator separates letters within a word
	LetterSeparator = "/"
	// WordSeparator separates words
	WordSeparator = "//"
)

var (
	// Table covers A-Z and 0-9
	Table = cipher.MustTable("morse",
		cipher.Pair{Plain: "A", Coded: ".-"}, cipher.Pair{Plain: "B", Coded: "-..."},
		cipher.Pair{Plain: "C", Coded: "-.-."}, cipher.Pair{Plain: "D", Coded: "-.."},
		cipher.Pair{Plain: "E", Coded: "."}, cipher.Pair{Plain: "F", Coded: "..-."},
		cipher.Pair{Plain: "G", Coded: "--."}, cipher.Pair{Plain: "H", Coded: "...."},
		cipher.Pair{Plain: "I", Coded: ".."}, cipher.Pair{Plain: "J", Coded: ".---"},
		cipher.Pair{Plain: "K", Coded: "-.-"}, cipher.Pair{Plain: "L", Coded: ".-.."},
		cipher.Pair{Plain: "M", Coded: "--"}, cipher.Pair{Plain: "N", Coded: "-."},
		cipher.Pair{Plain: "O", Coded: "---"}, cipher.Pair{Plain: "P", Coded: ".--."},
		cipher.Pair{Plain: "Q", Coded: "--.-"}, cipher.Pair{Plain: "R", Coded: ".-."},
		cipher.Pair{Plain: "S", Coded: "..."}, cipher.Pair{Plain: "T", Coded: "-"},
		cipher.Pair{Plain: "U", Coded: "..-"}, cipher.Pair{Plain: "V", Coded: "...-"},
		cipher.Pair{Plain: "W", Coded: ".--"}, cipher.Pair{Plain: "X", Coded: "-..-"},
		cipher.Pair{Plain: "Y", Coded: "-.--"}, cipher.Pair{Plain: "Z", Coded: "--.."},
		cipher.Pair{Plain: "0", Coded: "-----"}, cipher.Pair{Plain: "1", Coded: ".----"},
		cipher.Pair{Plain: "2", Coded: "..---"}, cipher.Pair{Plain: "3", Coded: "...--"},
		cipher.Pair{Plain: "4", Coded: "....-"}, cipher.Pair{Plain: "5", Coded: "....."},
		cipher.Pair{Plain: "6", Coded: "-...."}, cipher.Pair{Plain: "7", Coded: "--..."},
		cipher.Pair{Plain: "8", Coded: "---.."}, cipher.Pair{Plain: "9", Coded: "----."},
	)

	// Default fails on the first unknown token
	Default = Translator{Policy: cipher.FailFast}
)

// Translator converts between text and dot/dash notation
type Translator struct {
	Policy cipher.Policy
}

// Decode turns ".-//-.../-.-." into "A BC"
func (t Translator) Decode(message string) (string, error) {
	return cipher.Translator{
		Table:     Table,
		Direction: cipher.Decode,
		In:        cipher.Layout{Word: WordSeparator, Token: LetterSeparator},
		Out:       cipher.Layout{Word: " "},
		Policy:    t.Policy,
		Trim:      true,
	}.Translate(message)
}

// Encode turns "a bc" into ".-//-.../-.-."
func (t Translator) Encode(message string) (string, error) {
	return cipher.Translator{
		Table:     Table,
		Direction: cipher.Encode,
		In:        cipher.Layout{Word: " "},
		Out:       cipher.Layout{Word: WordSeparator, Token: LetterSeparator},
		Case:      cipher.Upper,
		Policy:    t.Policy,
	}.Translate(message)
}

// Decode translates morse code using the Default translator
func Decode(message string) (string, error) {
	return Default.Decode(message)
}

// Encode translates text to morse code using the Default translator
func Encode(message string) (string, error) {
	return Default.Encode(message)
}
