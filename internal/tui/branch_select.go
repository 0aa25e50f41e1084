package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"coderly.dev/code/internal/match"
)

type branchSelectKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Cancel    key.Binding
	Backspace key.Binding
}

var branchSelectKeys = branchSelectKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "cancel"),
	),
	Backspace: key.NewBinding(
		key.WithKeys("backspace"),
	),
}

// BranchSelectModel is a branch selection prompt. Typing narrows the list
// with the same scorer used to resolve branch patterns on the command line.
type BranchSelectModel struct {
	Choices  []string
	Filtered []string
	Filter   string
	Cursor   int
	Selected string
	Current  string
	Done     bool
	Err      error
	Message  string
}

// NewBranchSelectModel creates a selector with the cursor on current, if present
func NewBranchSelectModel(message string, choices []string, current string) BranchSelectModel {
	m := BranchSelectModel{
		Choices: choices,
		Current: current,
		Message: message,
	}
	m.updateFiltered()
	for i, c := range m.Filtered {
		if c == current {
			m.Cursor = i
			break
		}
	}
	return m
}

// Init initializes the bubbletea model
func (m BranchSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles message updates for the bubbletea model
func (m BranchSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, branchSelectKeys.Select):
		if m.Cursor >= 0 && m.Cursor < len(m.Filtered) {
			m.Selected = m.Filtered[m.Cursor]
			m.Done = true
			return m, tea.Quit
		}
		return m, nil
	case key.Matches(keyMsg, branchSelectKeys.Cancel):
		m.Err = fmt.Errorf("canceled")
		m.Done = true
		return m, tea.Quit
	case key.Matches(keyMsg, branchSelectKeys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		} else {
			m.Cursor = len(m.Filtered) - 1
		}
	case key.Matches(keyMsg, branchSelectKeys.Down):
		if m.Cursor < len(m.Filtered)-1 {
			m.Cursor++
		} else {
			m.Cursor = 0
		}
	case key.Matches(keyMsg, branchSelectKeys.Backspace):
		if len(m.Filter) > 0 {
			runes := []rune(m.Filter)
			m.Filter = string(runes[:len(runes)-1])
			m.updateFiltered()
		}
	case keyMsg.Type == tea.KeyRunes || keyMsg.Type == tea.KeySpace:
		m.Filter += keyMsg.String()
		m.updateFiltered()
	}

	m.clampCursor()
	return m, nil
}

func (m *BranchSelectModel) clampCursor() {
	if m.Cursor >= len(m.Filtered) {
		m.Cursor = len(m.Filtered) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

// updateFiltered re-ranks the choices and moves the cursor to the best match
func (m *BranchSelectModel) updateFiltered() {
	m.Cursor = 0
	if strings.TrimSpace(m.Filter) == "" {
		m.Filtered = m.Choices
		return
	}
	m.Filtered = match.Values(match.NewScorer(m.Filter).Rank(m.Choices))
}

// View renders the TUI
func (m BranchSelectModel) View() string {
	if m.Done {
		return ""
	}

	accent := lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(m.Message))
	b.WriteString("\n")

	if m.Filter != "" {
		b.WriteString(fmt.Sprintf("Filter: %s\n\n", accent.Render(m.Filter)))
	} else {
		b.WriteString("\n")
	}

	if len(m.Filtered) == 0 {
		b.WriteString("No branches match the filter.\n")
	} else {
		for i, choice := range m.Filtered {
			cursor := " "
			if i == m.Cursor {
				cursor = accent.Render(">")
			}
			label := choice
			if choice == m.Current {
				label += ColorDim(" (current)")
			}
			b.WriteString(fmt.Sprintf("%s %s\n", cursor, label))
		}
	}

	b.WriteString(ColorDim("\n(Press Enter to select, Esc to cancel, type to filter)"))

	return lipgloss.NewStyle().Margin(1, 0).Render(b.String())
}

// PromptBranchSelection prompts the user to select one of the branches
func PromptBranchSelection(message string, choices []string, current string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	m := NewBranchSelectModel(message, choices, current)
	p := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))
	model, err := p.Run()
	if err != nil {
		return "", err
	}

	if finalModel, ok := model.(BranchSelectModel); ok {
		if finalModel.Err != nil {
			return "", finalModel.Err
		}
		return finalModel.Selected, nil
	}

	return "", fmt.Errorf("unexpected model type")
}
