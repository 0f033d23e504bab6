package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var errPickerAborted = errors.New("file selection aborted")

var (
	pickerTitleStyle    = lipgloss.NewStyle().Bold(true)
	pickerSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	pickerHelpStyle     = lipgloss.NewStyle().Faint(true)
)

type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

var pickerKeys = pickerKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Select: key.NewBinding(key.WithKeys("enter")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
}

// pickerModel is a minimal selection list over candidate workbook paths.
type pickerModel struct {
	files   []string
	cursor  int
	choice  string
	aborted bool
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, pickerKeys.Quit):
		m.aborted = true
		return m, tea.Quit
	case key.Matches(keyMsg, pickerKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, pickerKeys.Down):
		if m.cursor < len(m.files)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, pickerKeys.Select):
		m.choice = m.files[m.cursor]
		return m, tea.Quit
	}
	return m, nil
}

func (m pickerModel) View() string {
	s := pickerTitleStyle.Render("Select an Excel file to convert:") + "\n"
	for i, f := range m.files {
		if i == m.cursor {
			s += pickerSelectedStyle.Render("> "+f) + "\n"
		} else {
			s += "  " + f + "\n"
		}
	}
	s += pickerHelpStyle.Render("enter: select, q: quit") + "\n"
	return s
}

// pickWorkbook runs the interactive picker and returns the chosen path.
func pickWorkbook(files []string) (string, error) {
	final, err := tea.NewProgram(pickerModel{files: files}).Run()
	if err != nil {
		return "", fmt.Errorf("file selection failed: %w", err)
	}

	m, ok := final.(pickerModel)
	if !ok || m.aborted || m.choice == "" {
		return "", errPickerAborted
	}
	return m.choice, nil
}
