package notation

import "strconv"

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName returns the sharp-spelled name of a MIDI note number (60 = C4).
// Values outside 0-127 are returned as plain numbers.
func NoteName(n int) string {
	if n < 0 || n > 127 {
		return strconv.Itoa(n)
	}
	return noteNames[n%12] + strconv.Itoa(n/12-1)
}
