package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func typeText(m BranchSelectModel, text string) BranchSelectModel {
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(BranchSelectModel)
	}
	return m
}

func press(m BranchSelectModel, keyType tea.KeyType) (BranchSelectModel, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: keyType})
	return next.(BranchSelectModel), cmd
}

func TestBranchSelectModel(t *testing.T) {
	branches := []string{"development", "master", "my-test-branch", "test-branch"}

	t.Run("starts on the current branch", func(t *testing.T) {
		m := NewBranchSelectModel("Switch to", branches, "master")
		require.Equal(t, branches, m.Filtered)
		require.Equal(t, 1, m.Cursor)
	})

	t.Run("filters and ranks with the branch scorer", func(t *testing.T) {
		m := NewBranchSelectModel("Switch to", branches, "master")
		m = typeText(m, "test branch")

		require.Equal(t, "test branch", m.Filter)
		require.Equal(t, []string{"test-branch", "my-test-branch"}, m.Filtered)
		require.Equal(t, 0, m.Cursor)
	})

	t.Run("enter after filtering selects the best match", func(t *testing.T) {
		m := NewBranchSelectModel("Switch to", branches, "master")
		m, _ = press(m, tea.KeyDown)
		m = typeText(m, "test branch")

		m, cmd := press(m, tea.KeyEnter)
		require.NotNil(t, cmd)
		require.Equal(t, "test-branch", m.Selected)
	})

	t.Run("backspace widens the filter", func(t *testing.T) {
		m := NewBranchSelectModel("Switch to", branches, "")
		m = typeText(m, "mx")
		require.Empty(t, m.Filtered)

		m, _ = press(m, tea.KeyBackspace)
		require.Equal(t, "m", m.Filter)
		require.Equal(t, []string{"development", "master", "my-test-branch"}, m.Filtered)
	})

	t.Run("cursor wraps around", func(t *testing.T) {
		m := NewBranchSelectModel("Switch to", branches, "development")
		m, _ = press(m, tea.KeyUp)
		require.Equal(t, 3, m.Cursor)
		m, _ = press(m, tea.KeyDown)
		require.Equal(t, 0, m.Cursor)
	})

	t.Run("enter selects the highlighted branch", func(t *testing.T) {
		m := NewBranchSelectModel("Switch to", branches, "")
		m, _ = press(m, tea.KeyDown)
		m, cmd := press(m, tea.KeyEnter)

		require.True(t, m.Done)
		require.NotNil(t, cmd)
		require.Equal(t, "master", m.Selected)
		require.Empty(t, m.View())
	})

	t.Run("enter with no match keeps the prompt open", func(t *testing.T) {
		m := NewBranchSelectModel("Switch to", branches, "")
		m = typeText(m, "zzz")
		m, cmd := press(m, tea.KeyEnter)

		require.False(t, m.Done)
		require.Nil(t, cmd)
		require.Contains(t, m.View(), "No branches match the filter.")
	})

	t.Run("escape cancels", func(t *testing.T) {
		m := NewBranchSelectModel("Switch to", branches, "")
		m, _ = press(m, tea.KeyEsc)

		require.True(t, m.Done)
		require.EqualError(t, m.Err, "canceled")
	})
}

func TestPromptBranchSelectionNonInteractive(t *testing.T) {
	t.Setenv("CODE_NON_INTERACTIVE", "1")

	_, err := PromptBranchSelection("Switch to", []string{"master"}, "master")
	require.ErrorIs(t, err, ErrInteractiveDisabled)

	_, err = Prompter{}.Input("question", "default")
	require.ErrorIs(t, err, ErrInteractiveDisabled)

	_, err = Prompter{}.Password("secret")
	require.ErrorIs(t, err, ErrInteractiveDisabled)
}
