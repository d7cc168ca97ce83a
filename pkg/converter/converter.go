package converter

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/james-see/kalimba2midi/pkg/notation"
	"github.com/sirupsen/logrus"
)

// Format represents an input file format
type Format string

const (
	FormatKalimba Format = "kalimba"
	FormatMIDI    Format = "midi"
	FormatUnknown Format = "unknown"
)

// DetectFormat detects the format of a file from its name. Only the MIDI
// extensions are recognised, matched case-sensitively. Kalimba tabs have no
// fixed extension and are identified by the folder they live in.
func DetectFormat(filename string) Format {
	if strings.HasSuffix(filename, ".mid") || strings.HasSuffix(filename, ".midi") {
		return FormatMIDI
	}
	return FormatUnknown
}

// Run converts every kalimba tab in the kalimba folder to piano names, then
// extracts the notes of every MIDI file in the MIDI folder, and reports each
// result. Missing folders are skipped. Per-file failures are reported and never
// stop the batch.
func (c *Converter) Run() Summary {
	var sum Summary

	for _, res := range c.ConvertKalimbaDir() {
		sum.add(res)
		c.report(res)
	}

	// MIDI failures are reported while reading, before any result line
	for _, res := range c.ConvertMIDIDir() {
		sum.add(res)
		c.report(res)
	}

	c.log.WithFields(logrus.Fields{
		"kalimba":  sum.KalimbaFiles,
		"midi":     sum.MIDIFiles,
		"failures": sum.Failures,
	}).Info("batch complete")
	return sum
}

func (c *Converter) report(res FileResult) {
	switch res.Format {
	case FormatKalimba:
		if res.Error != nil {
			fmt.Fprintf(c.out, "Error reading %s: %v\n", res.Filename, res.Error)
			return
		}
		fmt.Fprintf(c.out, "Kalimba %s: %s\n", res.Filename, res.Piano)
	case FormatMIDI:
		fmt.Fprintf(c.out, "MIDI %s: %s\n", res.Filename, FormatNotes(res.Notes))
	}
}

func (s *Summary) add(res FileResult) {
	switch res.Format {
	case FormatKalimba:
		s.KalimbaFiles++
	case FormatMIDI:
		s.MIDIFiles++
	}
	if res.Error != nil {
		s.Failures++
	}
}

// ConvertKalimbaDir converts every entry of the kalimba folder. Entries are
// not filtered by extension.
func (c *Converter) ConvertKalimbaDir() []FileResult {
	entries, ok := c.listDir(c.kalimbaDir)
	if !ok {
		return nil
	}

	results := make([]FileResult, 0, len(entries))
	for _, entry := range entries {
		res := FileResult{Filename: entry.Name(), Format: FormatKalimba}
		data, err := fs.ReadFile(c.fsys, path.Join(c.kalimbaDir, entry.Name()))
		if err != nil {
			res.Error = fmt.Errorf("%w: %w", ErrFileAccess, err)
			c.log.WithField("file", entry.Name()).WithError(err).Warn("skipping kalimba file")
		} else {
			res.Piano = notation.ToPianoNames(strings.TrimSpace(string(data)))
		}
		results = append(results, res)
	}
	return results
}

// ConvertMIDIDir extracts the notes of every .mid/.midi file in the MIDI folder.
// Files that fail to read have an empty note list and a non-nil Error; the
// failure has already been reported by the MIDI reader.
func (c *Converter) ConvertMIDIDir() []FileResult {
	entries, ok := c.listDir(c.midiDir)
	if !ok {
		return nil
	}

	var results []FileResult
	for _, entry := range entries {
		name := entry.Name()
		if DetectFormat(name) != FormatMIDI {
			c.log.WithField("file", name).Debug("ignoring non-MIDI file")
			continue
		}

		p := path.Join(c.midiDir, name)
		notes, err := c.reader.ReadNotesErr(p)
		if err != nil {
			c.reader.report(p, err)
			notes = []int{}
		}

		results = append(results, FileResult{Filename: name, Format: FormatMIDI, Notes: notes, Error: err})
	}
	return results
}

// listDir lists dir, returning false when it does not exist
func (c *Converter) listDir(dir string) ([]fs.DirEntry, bool) {
	entries, err := fs.ReadDir(c.fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.log.WithField("dir", dir).Debug("input folder not found, skipping")
		} else {
			c.log.WithField("dir", dir).WithError(err).Warn("cannot list input folder, skipping")
		}
		return nil, false
	}
	return entries, true
}

// FormatNotes renders a note list as "[60, 64, 67]"
func FormatNotes(notes []int) string {
	parts := make([]string, len(notes))
	for i, n := range notes {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
