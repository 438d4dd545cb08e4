// Package ui renders move overviews and results for the terminal and asks
// the operator for confirmation.
//
// Output adapts to where it goes: styled with lipgloss on a color
// terminal, plain text when piped or when NO_COLOR is set, and JSON for
// machine consumption.
package ui
