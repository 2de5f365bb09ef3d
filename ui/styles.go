// Package ui provides the interactive terminal user interface.
// This file contains the lipgloss styles and status palette.
package ui

import "github.com/charmbracelet/lipgloss"

// Status palette. Green for an active interface, yellow for work in
// flight, red for errors, blue as the accent color.
var (
	colorActive  = lipgloss.Color("#2ec27e")
	colorWorking = lipgloss.Color("#e5a50a")
	colorError   = lipgloss.Color("#e01b24")
	colorAccent  = lipgloss.Color("#3584e4")
)

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	nameStyle = lipgloss.NewStyle().
			Bold(true)

	activeTagStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorActive)

	inactiveTagStyle = lipgloss.NewStyle().
				Faint(true)

	workingStyle = lipgloss.NewStyle().
			Foreground(colorWorking)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	okStyle = lipgloss.NewStyle().
		Foreground(colorActive)

	statusStyle = lipgloss.NewStyle().
			Faint(true)
)
