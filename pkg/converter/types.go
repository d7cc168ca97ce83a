// Package converter reads MIDI note events and batch converts kalimba and MIDI input folders
package converter

import (
	"errors"
	"io"
	"io/fs"

	"github.com/sirupsen/logrus"
)

// Default input folders, relative to the working directory
const (
	DefaultKalimbaDir = "kalimba tabs"
	DefaultMIDIDir    = "piano tabs"
)

// Failure kinds recorded while processing a batch
var (
	ErrFileAccess = errors.New("file access error")
	ErrMIDIParse  = errors.New("midi parse error")
)

// FileResult holds the outcome of converting a single input file
type FileResult struct {
	Filename string
	Format   Format
	Piano    string // rendered piano names, kalimba files only
	Notes    []int  // extracted note numbers, MIDI files only
	Error    error
}

// Summary counts what a batch run processed
type Summary struct {
	KalimbaFiles int
	MIDIFiles    int
	Failures     int
}

// Converter runs batch conversions over the kalimba and MIDI input folders
type Converter struct {
	fsys       fs.FS
	out        io.Writer
	log        logrus.FieldLogger
	kalimbaDir string
	midiDir    string
	reader     *MIDIReader
}

// Option configures a Converter
type Option func(*Converter)

// WithDirs overrides the kalimba and MIDI input folder names
func WithDirs(kalimbaDir, midiDir string) Option {
	return func(c *Converter) {
		c.kalimbaDir = kalimbaDir
		c.midiDir = midiDir
	}
}

// WithLogger sets the diagnostic logger
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Converter) {
		c.log = log
	}
}

// New creates a Converter reading from fsys and reporting to out
func New(fsys fs.FS, out io.Writer, opts ...Option) *Converter {
	c := &Converter{
		fsys:       fsys,
		out:        out,
		log:        discardLogger(),
		kalimbaDir: DefaultKalimbaDir,
		midiDir:    DefaultMIDIDir,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.reader = NewMIDIReader(fsys, out, c.log)
	return c
}

// Dirs returns the kalimba and MIDI input folder names
func (c *Converter) Dirs() (kalimbaDir, midiDir string) {
	return c.kalimbaDir, c.midiDir
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
