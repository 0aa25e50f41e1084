// Package tui provides the terminal user interface for code.
//
// It handles:
//   - Interactive prompts (using survey) and the branch selector (using bubbletea)
//   - Structured logging and status reporting (Splog)
//   - Terminal styling and colors (using lipgloss)
package tui
