package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func keyPress(m pickerModel, key tea.KeyType) pickerModel {
	next, _ := m.Update(tea.KeyMsg{Type: key})
	return next.(pickerModel)
}

func TestPickerNavigation(t *testing.T) {
	m := pickerModel{files: []string{"a.xlsx", "b.xlsx", "c.xlsx"}}

	m = keyPress(m, tea.KeyDown)
	assert.Equal(t, 1, m.cursor)

	m = keyPress(m, tea.KeyDown)
	m = keyPress(m, tea.KeyDown) // already at the last entry
	assert.Equal(t, 2, m.cursor)

	m = keyPress(m, tea.KeyUp)
	assert.Equal(t, 1, m.cursor)

	m = keyPress(m, tea.KeyEnter)
	assert.Equal(t, "b.xlsx", m.choice)
	assert.False(t, m.aborted)
}

func TestPickerCursorStaysInBounds(t *testing.T) {
	m := pickerModel{files: []string{"only.xlsx"}}

	m = keyPress(m, tea.KeyUp)
	assert.Equal(t, 0, m.cursor)

	m = keyPress(m, tea.KeyDown)
	assert.Equal(t, 0, m.cursor)
}

func TestPickerAbort(t *testing.T) {
	m := pickerModel{files: []string{"a.xlsx"}}

	m = keyPress(m, tea.KeyEsc)
	assert.True(t, m.aborted)
	assert.Empty(t, m.choice)
}

func TestPickerView(t *testing.T) {
	m := pickerModel{files: []string{"a.xlsx", "b.xlsx"}, cursor: 1}

	view := m.View()
	assert.Contains(t, view, "Select an Excel file to convert:")
	assert.Contains(t, view, "a.xlsx")
	assert.Contains(t, view, "> b.xlsx")
	assert.Equal(t, 1, strings.Count(view, ">"))
}
