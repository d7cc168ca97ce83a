// Package main is the entry point for the kalimba2midi CLI
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/james-see/kalimba2midi/pkg/api"
	"github.com/james-see/kalimba2midi/pkg/converter"
	"github.com/james-see/kalimba2midi/pkg/notation"
	"github.com/james-see/kalimba2midi/pkg/tui"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	rootDir    string
	kalimbaDir string
	midiDir    string
	verbose    bool
	serverPort int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kalimba2midi",
	Short: "Convert between kalimba tabs, piano note names and MIDI notes",
	Long: `kalimba2midi converts kalimba tablature to piano note names and MIDI
note numbers, and extracts the notes of standard MIDI files.

Run without a subcommand to convert every file in the "kalimba tabs" and
"piano tabs" folders of the current directory.

Examples:
  kalimba2midi
  kalimba2midi piano "1 3 5 1'"
  kalimba2midi midi "1 3 5 1'"
  kalimba2midi reverse "C4 E4 G4"
  kalimba2midi notes song.mid
  kalimba2midi tui
  kalimba2midi serve --port 8080`,
	Version:           fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	Args:              cobra.NoArgs,
	PersistentPreRunE: setupLogging,
	RunE:              runBatch,
}

var pianoCmd = &cobra.Command{
	Use:   "piano <tab>...",
	Short: "Convert a kalimba tab to piano note names",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPiano,
}

var midiCmd = &cobra.Command{
	Use:   "midi <tab>...",
	Short: "Convert a kalimba tab to MIDI note numbers",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMIDI,
}

var reverseCmd = &cobra.Command{
	Use:   "reverse <piano notes>...",
	Short: "Convert piano note names to a kalimba tab",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runReverse,
}

var notesCmd = &cobra.Command{
	Use:   "notes <input.mid>...",
	Short: "List the notes of MIDI files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNotes,
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the kalimba mapping table",
	Args:  cobra.NoArgs,
	RunE:  runTable,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	RunE:  runTUI,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// batch flags
	rootCmd.Flags().StringVar(&rootDir, "root", ".", "Directory containing the input folders")
	rootCmd.Flags().StringVar(&kalimbaDir, "kalimba-dir", converter.DefaultKalimbaDir, "Folder of kalimba tab files")
	rootCmd.Flags().StringVar(&midiDir, "midi-dir", converter.DefaultMIDIDir, "Folder of MIDI files")

	// serve command
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "Server port")

	// Add commands
	rootCmd.AddCommand(pianoCmd)
	rootCmd.AddCommand(midiCmd)
	rootCmd.AddCommand(reverseCmd)
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
}

var log = logrus.New()

func setupLogging(cmd *cobra.Command, args []string) error {
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	conv := newConverter(cmd.OutOrStdout())
	k, m := conv.Dirs()
	log.WithFields(logrus.Fields{"root": rootDir, "kalimba_dir": k, "midi_dir": m}).Debug("starting batch")
	conv.Run()
	return nil
}

func newConverter(out io.Writer) *converter.Converter {
	return converter.New(os.DirFS(rootDir), out,
		converter.WithDirs(kalimbaDir, midiDir),
		converter.WithLogger(log),
	)
}

func runPiano(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), notation.ToPianoNames(strings.Join(args, " ")))
	return nil
}

func runMIDI(cmd *cobra.Command, args []string) error {
	tokens := notation.ToMIDINumbers(strings.Join(args, " "))
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.String()
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))
	return nil
}

func runReverse(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), notation.PianoToKalimba(strings.Join(args, " ")))
	return nil
}

func runNotes(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	reader := converter.NewMIDIReader(nil, out, log)
	for _, path := range args {
		if converter.DetectFormat(path) != converter.FormatMIDI {
			fmt.Fprintf(out, "Error reading MIDI file %s: not a .mid or .midi file\n", path)
			continue
		}
		fmt.Fprintf(out, "MIDI %s: %s\n", path, converter.FormatNotes(reader.ReadNotes(path)))
	}
	return nil
}

func runTable(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-6s %-5s %s\n", "TAB", "MIDI", "PIANO")
	for _, e := range notation.Table() {
		fmt.Fprintf(out, "%-6s %-5d %s\n", e.Symbol, e.MIDI, e.Piano)
	}
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	return tui.Run()
}

func runServe(cmd *cobra.Command, args []string) error {
	log.SetLevel(logrus.InfoLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	fmt.Printf("Starting API server on port %d...\n", serverPort)
	return api.StartServer(serverPort, log)
}
