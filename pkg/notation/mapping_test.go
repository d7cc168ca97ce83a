package notation

import (
	"reflect"
	"testing"
)

func TestTableSize(t *testing.T) {
	if got := len(Table()); got != 17 {
		t.Errorf("len(Table()) = %d, want 17", got)
	}
	if got := len(Symbols()); got != 17 {
		t.Errorf("len(Symbols()) = %d, want 17", got)
	}
}

func TestSymbolMappings(t *testing.T) {
	tests := []struct {
		symbol string
		midi   int
		piano  string
	}{
		{"1", 60, "C4"},
		{"2", 62, "D4"},
		{"3", 64, "E4"},
		{"4", 65, "F4"},
		{"5", 67, "G4"},
		{"6", 69, "A4"},
		{"7", 71, "B4"},
		{"1'", 72, "C5"},
		{"2'", 74, "D5"},
		{"3'", 76, "E5"},
		{"4'", 77, "F5"},
		{"5'", 79, "G5"},
		{"6'", 81, "A5"},
		{"7'", 83, "B5"},
		{"1''", 84, "C6"},
		{"2''", 86, "D6"},
		{"3''", 88, "E6"},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			tokens := ToMIDINumbers(tt.symbol)
			want := []Token{{Text: tt.symbol, MIDI: tt.midi, Mapped: true}}
			if !reflect.DeepEqual(tokens, want) {
				t.Errorf("ToMIDINumbers(%q) = %v, want %v", tt.symbol, tokens, want)
			}
			if got := ToPianoNames(tt.symbol); got != tt.piano {
				t.Errorf("ToPianoNames(%q) = %q, want %q", tt.symbol, got, tt.piano)
			}
			if got := NoteName(tt.midi); got != tt.piano {
				t.Errorf("NoteName(%d) = %q, want %q", tt.midi, got, tt.piano)
			}
		})
	}
}

func TestPassThrough(t *testing.T) {
	tests := []string{"X", "8", "4''", "1'''", "c4", "-"}

	for _, tok := range tests {
		t.Run(tok, func(t *testing.T) {
			tokens := ToMIDINumbers(tok)
			if len(tokens) != 1 {
				t.Fatalf("ToMIDINumbers(%q) returned %d tokens, want 1", tok, len(tokens))
			}
			if tokens[0].Mapped {
				t.Errorf("ToMIDINumbers(%q) marked token as mapped", tok)
			}
			if tokens[0].String() != tok {
				t.Errorf("ToMIDINumbers(%q) = %q, want %q", tok, tokens[0].String(), tok)
			}
			if got := ToPianoNames(tok); got != tok {
				t.Errorf("ToPianoNames(%q) = %q, want %q", tok, got, tok)
			}
		})
	}
}

func TestToPianoNamesOctave(t *testing.T) {
	got := ToPianoNames("1 2 3 4 5 6 7")
	want := "C4 D4 E4 F4 G4 A4 B4"
	if got != want {
		t.Errorf("ToPianoNames() = %q, want %q", got, want)
	}
}

func TestWhitespaceHandling(t *testing.T) {
	got := ToPianoNames("  1\t3\n\n5  ")
	if got != "C4 E4 G4" {
		t.Errorf("ToPianoNames() = %q, want %q", got, "C4 E4 G4")
	}

	tokens := ToMIDINumbers(" 1  X 1' ")
	want := []any{60, "X", 72}
	if len(tokens) != len(want) {
		t.Fatalf("ToMIDINumbers() returned %d tokens, want %d", len(tokens), len(want))
	}
	for i, tok := range tokens {
		if tok.Value() != want[i] {
			t.Errorf("tokens[%d].Value() = %v, want %v", i, tok.Value(), want[i])
		}
	}
}

func TestEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t"} {
		if got := ToMIDINumbers(in); len(got) != 0 {
			t.Errorf("ToMIDINumbers(%q) = %v, want empty", in, got)
		}
		if got := ToPianoNames(in); got != "" {
			t.Errorf("ToPianoNames(%q) = %q, want empty", in, got)
		}
	}
}

func TestLookup(t *testing.T) {
	if n, ok := LookupMIDI("3''"); !ok || n != 88 {
		t.Errorf("LookupMIDI(3'') = %d, %v, want 88, true", n, ok)
	}
	if _, ok := LookupMIDI("9"); ok {
		t.Error("LookupMIDI(9) should not be found")
	}
	if name, ok := LookupPiano("1'"); !ok || name != "C5" {
		t.Errorf("LookupPiano(1') = %q, %v, want C5, true", name, ok)
	}
}

func TestReverseMappings(t *testing.T) {
	if got := PianoToKalimba("C4 E4 G4 C6 F#4"); got != "1 3 5 1'' F#4" {
		t.Errorf("PianoToKalimba() = %q, want %q", got, "1 3 5 1'' F#4")
	}

	got := MIDIToKalimba([]int{60, 61, 88})
	want := []string{"1", "61", "3''"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MIDIToKalimba() = %v, want %v", got, want)
	}

	// every table row must survive a full round trip
	for _, e := range Table() {
		if got := PianoToKalimba(ToPianoNames(string(e.Symbol))); got != string(e.Symbol) {
			t.Errorf("round trip of %q = %q", e.Symbol, got)
		}
	}
}

func TestNoteName(t *testing.T) {
	tests := []struct {
		note int
		want string
	}{
		{0, "C-1"},
		{61, "C#4"},
		{127, "G9"},
		{-1, "-1"},
		{128, "128"},
	}

	for _, tt := range tests {
		if got := NoteName(tt.note); got != tt.want {
			t.Errorf("NoteName(%d) = %q, want %q", tt.note, got, tt.want)
		}
	}
}
