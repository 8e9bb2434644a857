package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Box drawing characters
const (
	TopLeft     = "╭"
	TopRight    = "╮"
	BottomLeft  = "╰"
	BottomRight = "╯"
	Horizontal  = "─"
	Vertical    = "│"
	LeftT       = "├"
	RightT      = "┤"
	TopT        = "┬"
	BottomT     = "┴"
	Cross       = "┼"
)

// Color palette
const (
	ColorBorder = "240"
	ColorHeader = "252"
	ColorID     = "214"
	ColorName   = "81"
	ColorIP     = "252"
	ColorAZ     = "252"
	ColorFree   = "82"
	ColorUsed   = "245"
	ColorWarn   = "214"
	ColorMuted  = "240"
	ColorHint   = "245"
)

// Shared styles
var (
	BorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder))
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorHeader))
	IDStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorID))
	NameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorName))
	IPStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorIP))
	AZStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAZ))
	FreeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorFree))
	UsedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorUsed))
	WarnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarn))
	MutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))
	HintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHint))
)

// padRight pads a string to the specified display width using runewidth
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return runewidth.Truncate(s, width, "...")
	}
	return s + strings.Repeat(" ", width-sw)
}
