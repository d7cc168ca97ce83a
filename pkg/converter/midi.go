package converter

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// MIDIReader extracts note-on events from standard MIDI files
type MIDIReader struct {
	fsys fs.FS // nil means the host filesystem
	out  io.Writer
	log  logrus.FieldLogger
}

// NewMIDIReader creates a MIDI reader. Files are opened from fsys, or from the
// host filesystem when fsys is nil. Read failures are reported to out.
func NewMIDIReader(fsys fs.FS, out io.Writer, log logrus.FieldLogger) *MIDIReader {
	if out == nil {
		out = io.Discard
	}
	if log == nil {
		log = discardLogger()
	}
	return &MIDIReader{fsys: fsys, out: out, log: log}
}

// ReadNotes returns the pitch of every sounding note-on event in the file at
// path, in track order and then event order. Any failure is reported and an
// empty slice is returned.
func (r *MIDIReader) ReadNotes(path string) []int {
	notes, err := r.ReadNotesErr(path)
	if err != nil {
		r.report(path, err)
		return []int{}
	}
	r.log.WithFields(logrus.Fields{"path": path, "notes": len(notes)}).Debug("read MIDI file")
	return notes
}

// ReadNotesErr is ReadNotes without the reporting, returning the failure instead
func (r *MIDIReader) ReadNotesErr(path string) ([]int, error) {
	data, err := r.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	return ParseNotes(data)
}

func (r *MIDIReader) report(path string, err error) {
	fmt.Fprintf(r.out, "Error reading MIDI file %s: %v\n", path, err)
	r.log.WithField("path", path).WithError(err).Warn("skipping MIDI file")
}

func (r *MIDIReader) readFile(path string) ([]byte, error) {
	if r.fsys == nil {
		return os.ReadFile(path)
	}
	f, err := r.fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

// ParseNotes parses SMF data and returns the pitch of every note-on event with
// a positive velocity. Tracks are concatenated, not merged by time.
func ParseNotes(data []byte) ([]int, error) {
	s, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMIDIParse, err)
	}

	notes := []int{}
	for i, track := range s.Tracks {
		// the reader accepts EOF inside a track, so a cut off file parses without error
		if !track.IsClosed() {
			return nil, fmt.Errorf("%w: track %d is truncated", ErrMIDIParse, i)
		}
		for _, ev := range track {
			var ch, key, vel uint8
			// note-on with velocity 0 is a note-off
			if midi.Message(ev.Message).GetNoteOn(&ch, &key, &vel) && vel > 0 {
				notes = append(notes, int(key))
			}
		}
	}
	return notes, nil
}
