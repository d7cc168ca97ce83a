// Package tui provides a terminal user interface for kalimba2midi
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/james-see/kalimba2midi/pkg/converter"
	"github.com/james-see/kalimba2midi/pkg/notation"
)

// Warm tine colors
var (
	tineBrass = lipgloss.Color("#D4A017")
	woodBrown = lipgloss.Color("#8B5A2B")
	paleCream = lipgloss.Color("#F5DEB3")
	darkGray  = lipgloss.Color("#333333")

	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(tineBrass).
			Background(darkGray).
			Padding(0, 2).
			MarginBottom(1)

	menuStyle = lipgloss.NewStyle().
			Foreground(paleCream).
			PaddingLeft(2)

	selectedStyle = lipgloss.NewStyle().
			Foreground(tineBrass).
			Bold(true).
			PaddingLeft(2)

	labelStyle = lipgloss.NewStyle().
			Foreground(woodBrown).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(tineBrass).
			Padding(1, 2)
)

// State represents the current TUI state
type State int

const (
	StateMenu State = iota
	StateInput
	StateFilePicker
	StateResult
)

// Mode selects what a menu item converts
type Mode int

const (
	ModeKalimbaToPiano Mode = iota
	ModeKalimbaToMIDI
	ModePianoToKalimba
	ModeMIDIFile
	ModeExit
)

// MenuItem represents a menu option
type MenuItem struct {
	Title       string
	Description string
	Mode        Mode
}

var menuItems = []MenuItem{
	{Title: "KALIMBA → PIANO", Description: "Type a kalimba tab and see piano note names", Mode: ModeKalimbaToPiano},
	{Title: "KALIMBA → MIDI", Description: "Type a kalimba tab and see MIDI note numbers", Mode: ModeKalimbaToMIDI},
	{Title: "PIANO → KALIMBA", Description: "Type piano note names and see the kalimba tab", Mode: ModePianoToKalimba},
	{Title: "MIDI FILE → NOTES", Description: "Pick a .mid file and list its notes", Mode: ModeMIDIFile},
	{Title: "Exit", Description: "Exit the application", Mode: ModeExit},
}

// Model represents the TUI model
type Model struct {
	state        State
	menuIndex    int
	mode         Mode
	input        textinput.Model
	filePicker   filepicker.Model
	selectedFile string
	notes        []int
	err          error
	width        int
	height       int
}

// New creates a new TUI model
func New() Model {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".mid", ".midi"}
	fp.CurrentDirectory, _ = os.Getwd()

	ti := textinput.New()
	ti.CharLimit = 512
	ti.Width = 60
	ti.PromptStyle = lipgloss.NewStyle().Foreground(tineBrass)

	return Model{
		state:      StateMenu,
		filePicker: fp,
		input:      ti,
	}
}

// Init initializes the TUI model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles TUI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == StateFilePicker {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "esc":
				m.state = StateMenu
				return m, nil
			case "q", "ctrl+c":
				return m, tea.Quit
			}
		}

		var cmd tea.Cmd
		m.filePicker, cmd = m.filePicker.Update(msg)

		if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
			m.selectedFile = path
			m.notes, m.err = converter.NewMIDIReader(nil, nil, nil).ReadNotesErr(path)
			m.state = StateResult
			return m, nil
		}

		return m, cmd
	}

	if m.state == StateInput {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "esc", "enter":
				m.state = StateMenu
				m.input.Blur()
				return m, nil
			case "ctrl+c":
				return m, tea.Quit
			}
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.filePicker.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateMenu:
			return m.updateMenu(msg)
		case StateResult:
			return m.updateResult(msg)
		}
	}

	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		}
	case "down", "j":
		if m.menuIndex < len(menuItems)-1 {
			m.menuIndex++
		}
	case "enter":
		m.mode = menuItems[m.menuIndex].Mode
		switch m.mode {
		case ModeExit:
			return m, tea.Quit
		case ModeMIDIFile:
			m.state = StateFilePicker
			return m, m.filePicker.Init()
		case ModePianoToKalimba:
			m.input.Placeholder = "C4 E4 G4"
		default:
			m.input.Placeholder = "1 3 5 1'"
		}
		m.state = StateInput
		m.input.SetValue("")
		cmd := m.input.Focus()
		return m, cmd
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.state = StateMenu
		m.err = nil
		m.selectedFile = ""
		m.notes = nil
		return m, nil
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// View renders the TUI
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(lipgloss.NewStyle().Foreground(tineBrass).Render(logo))
	s.WriteString("\n")

	switch m.state {
	case StateMenu:
		s.WriteString(m.viewMenu())
	case StateInput:
		s.WriteString(m.viewInput())
	case StateFilePicker:
		s.WriteString(m.viewFilePicker())
	case StateResult:
		s.WriteString(m.viewResult())
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("↑/↓: navigate • enter: select • q: quit"))

	return s.String()
}

func (m Model) viewMenu() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(" SELECT CONVERSION "))
	s.WriteString("\n\n")

	for i, item := range menuItems {
		if i == m.menuIndex {
			s.WriteString(selectedStyle.Render(fmt.Sprintf("▸ %s", item.Title)))
			s.WriteString("\n")
			s.WriteString(lipgloss.NewStyle().Foreground(woodBrown).PaddingLeft(4).Render(item.Description))
		} else {
			s.WriteString(menuStyle.Render(fmt.Sprintf("  %s", item.Title)))
		}
		s.WriteString("\n")
	}

	return boxStyle.Render(s.String())
}

func (m Model) viewInput() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(fmt.Sprintf(" %s ", menuItems[m.mode].Title)))
	s.WriteString("\n\n")
	s.WriteString(m.input.View())
	s.WriteString("\n\n")
	s.WriteString(labelStyle.Render("Result: "))
	s.WriteString(Preview(m.mode, m.input.Value()))
	s.WriteString("\n")
	s.WriteString(helpStyle.Render("esc/enter: back to menu"))

	return boxStyle.Render(s.String())
}

func (m Model) viewFilePicker() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(" SELECT MIDI FILE "))
	s.WriteString("\n\n")
	s.WriteString(m.filePicker.View())
	s.WriteString("\n")
	s.WriteString(helpStyle.Render("esc: back to menu"))

	return s.String()
}

func (m Model) viewResult() string {
	var s strings.Builder

	if m.err != nil {
		s.WriteString(titleStyle.Render(" ERROR "))
		s.WriteString("\n\n")
		s.WriteString(errorStyle.Render(fmt.Sprintf("✗ Error reading MIDI file %s: %s", filepath.Base(m.selectedFile), m.err.Error())))
	} else {
		s.WriteString(titleStyle.Render(fmt.Sprintf(" %s ", filepath.Base(m.selectedFile))))
		s.WriteString("\n\n")
		s.WriteString(labelStyle.Render("MIDI:    "))
		s.WriteString(converter.FormatNotes(m.notes))
		s.WriteString("\n")
		s.WriteString(labelStyle.Render("Names:   "))
		s.WriteString(noteNames(m.notes))
		s.WriteString("\n")
		s.WriteString(labelStyle.Render("Kalimba: "))
		s.WriteString(strings.Join(notation.MIDIToKalimba(m.notes), " "))
	}

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("Press enter to continue"))

	return boxStyle.Render(s.String())
}

// Preview renders the conversion of text for the given mode
func Preview(mode Mode, text string) string {
	switch mode {
	case ModeKalimbaToPiano:
		return notation.ToPianoNames(text)
	case ModeKalimbaToMIDI:
		tokens := notation.ToMIDINumbers(text)
		parts := make([]string, len(tokens))
		for i, tok := range tokens {
			parts[i] = tok.String()
		}
		return strings.Join(parts, " ")
	case ModePianoToKalimba:
		return notation.PianoToKalimba(text)
	default:
		return ""
	}
}

func noteNames(notes []int) string {
	names := make([]string, len(notes))
	for i, n := range notes {
		names[i] = notation.NoteName(n)
	}
	return strings.Join(names, " ")
}

const logo = `
  _  __     _ _           _          ____            _     _ _ 
 | |/ /__ _| (_)_ __ ___ | |__   __ |___ \ _ __ ___ (_) __| (_)
 | ' // _' | | | '_ ' _ \| '_ \ / _' |__) | '_ ' _ \| |/ _' | |
 | . \ (_| | | | | | | | | |_) | (_| / __/| | | | | | | (_| | |
 |_|\_\__,_|_|_|_| |_| |_|_.__/ \__,_|_____|_| |_| |_|_|\__,_|_|
`

// Run starts the TUI application
func Run() error {
	p := tea.NewProgram(New(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
