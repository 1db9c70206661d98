// Package style provides a functional API for composing and applying lipgloss-based terminal styles.
package style

import "github.com/charmbracelet/lipgloss"

// Standard ANSI palette used across prompts and banners.
var (
	Red    = lipgloss.Color("1")
	Green  = lipgloss.Color("2")
	Yellow = lipgloss.Color("3")
	Blue   = lipgloss.Color("4")
	Purple = lipgloss.Color("5")
	Cyan   = lipgloss.Color("6")

	HiRed    = lipgloss.Color("9")
	HiGreen  = lipgloss.Color("10")
	HiYellow = lipgloss.Color("11")
	HiBlue   = lipgloss.Color("12")
	HiPurple = lipgloss.Color("13")
	HiCyan   = lipgloss.Color("14")
)

// Semantic mappings.
var (
	AccentColor  = HiPurple
	SuccessColor = Green
	WarningColor = Yellow
	ErrorColor   = Red
	FaintColor   = lipgloss.Color("#808080")
	TextColor    = lipgloss.Color("#cdd6f4")
)
