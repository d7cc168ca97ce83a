// Package notation maps kalimba tablature to piano note names and MIDI note numbers
package notation

import "strconv"

// Symbol is a kalimba tab token such as "1", "3'" or "2''"
type Symbol string

// Entry is a single row of the kalimba mapping table
type Entry struct {
	Symbol Symbol
	MIDI   int    // MIDI note number (0-127)
	Piano  string // Piano note name, e.g. "C4"
}

// Token is one element of a converted tab. Tokens missing from the table
// keep their original text and have Mapped set to false.
type Token struct {
	Text   string
	MIDI   int
	Mapped bool
}

// String renders the MIDI number for mapped tokens and the original text otherwise
func (t Token) String() string {
	if t.Mapped {
		return strconv.Itoa(t.MIDI)
	}
	return t.Text
}

// Value returns the token as an int when mapped and as a string otherwise.
// Useful when encoding the pass-through sequence to JSON.
func (t Token) Value() any {
	if t.Mapped {
		return t.MIDI
	}
	return t.Text
}
