package notation

import (
	"strconv"
	"strings"
)

// table is fixed at build time and must never be mutated.
// Octave 4 is unmarked, one quote is octave 5, two quotes octave 6 (degrees 1-3).
var table = [...]Entry{
	{"1", 60, "C4"}, {"2", 62, "D4"}, {"3", 64, "E4"}, {"4", 65, "F4"},
	{"5", 67, "G4"}, {"6", 69, "A4"}, {"7", 71, "B4"},
	{"1'", 72, "C5"}, {"2'", 74, "D5"}, {"3'", 76, "E5"}, {"4'", 77, "F5"},
	{"5'", 79, "G5"}, {"6'", 81, "A5"}, {"7'", 83, "B5"},
	{"1''", 84, "C6"}, {"2''", 86, "D6"}, {"3''", 88, "E6"},
}

var (
	midiBySymbol  = make(map[Symbol]int, len(table))
	pianoBySymbol = make(map[Symbol]string, len(table))
	symbolByPiano = make(map[string]Symbol, len(table))
	symbolByMIDI  = make(map[int]Symbol, len(table))
)

func init() {
	for _, e := range table {
		midiBySymbol[e.Symbol] = e.MIDI
		pianoBySymbol[e.Symbol] = e.Piano
		symbolByPiano[e.Piano] = e.Symbol
		symbolByMIDI[e.MIDI] = e.Symbol
	}
}

// Table returns a copy of the mapping table in kalimba order
func Table() []Entry {
	out := make([]Entry, len(table))
	copy(out, table[:])
	return out
}

// Symbols returns the 17 valid kalimba symbols in table order
func Symbols() []Symbol {
	out := make([]Symbol, len(table))
	for i, e := range table {
		out[i] = e.Symbol
	}
	return out
}

// LookupMIDI returns the MIDI note number for a kalimba symbol
func LookupMIDI(sym Symbol) (int, bool) {
	n, ok := midiBySymbol[sym]
	return n, ok
}

// LookupPiano returns the piano note name for a kalimba symbol
func LookupPiano(sym Symbol) (string, bool) {
	name, ok := pianoBySymbol[sym]
	return name, ok
}

// ToMIDINumbers converts a whitespace separated kalimba tab to MIDI note numbers.
// Unknown tokens are passed through unchanged.
func ToMIDINumbers(tab string) []Token {
	fields := strings.Fields(tab)
	tokens := make([]Token, 0, len(fields))
	for _, f := range fields {
		if n, ok := midiBySymbol[Symbol(f)]; ok {
			tokens = append(tokens, Token{Text: f, MIDI: n, Mapped: true})
			continue
		}
		tokens = append(tokens, Token{Text: f})
	}
	return tokens
}

// ToPianoNames converts a kalimba tab to space separated piano note names.
// Unknown tokens are passed through unchanged.
func ToPianoNames(tab string) string {
	fields := strings.Fields(tab)
	for i, f := range fields {
		if name, ok := pianoBySymbol[Symbol(f)]; ok {
			fields[i] = name
		}
	}
	return strings.Join(fields, " ")
}

// PianoToKalimba converts space separated piano note names back to a kalimba tab
func PianoToKalimba(names string) string {
	fields := strings.Fields(names)
	for i, f := range fields {
		if sym, ok := symbolByPiano[f]; ok {
			fields[i] = string(sym)
		}
	}
	return strings.Join(fields, " ")
}

// MIDIToKalimba converts MIDI note numbers to kalimba symbols. Notes outside
// the kalimba range are rendered as their decimal value.
func MIDIToKalimba(notes []int) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		if sym, ok := symbolByMIDI[n]; ok {
			out[i] = string(sym)
			continue
		}
		out[i] = strconv.Itoa(n)
	}
	return out
}
