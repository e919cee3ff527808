package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorMuted     = lipgloss.Color("240")
	colorHighlight = lipgloss.Color("212") // Pink
)

// TabActive marks the selected filter
var TabActive = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// TabInactive is every other filter
var TabInactive = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 1)

// DayStyle is the date column
var DayStyle = lipgloss.NewStyle().
	Foreground(colorHighlight)

// Badge is the category label
var Badge = lipgloss.NewStyle().
	Foreground(colorPrimary).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// LinkStyle is the indented link line under each event
var LinkStyle = lipgloss.NewStyle().
	Foreground(colorMuted).
	PaddingLeft(13)

// EmptyStyle is the "No events" line
var EmptyStyle = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Italic(true).
	Padding(1, 2)

// ErrorStyle shows a surfaced load failure
var ErrorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true).
	Padding(0, 1)

// StatusBar is the bottom line
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// StatusBarKey highlights key hints
var StatusBarKey = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true)
