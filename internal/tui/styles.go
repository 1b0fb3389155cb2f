package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorPink   = lipgloss.Color("#F78FB3")
	colorBlue   = lipgloss.Color("#7FB3F7")
	colorGold   = lipgloss.Color("#FFD700")
	colorText   = lipgloss.Color("#FAFAFA")
	colorMuted  = lipgloss.Color("#626262")
	colorMarked = lipgloss.Color("#96CEB4")
)

// Static styles for content elements
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(colorPink).
			Bold(true).
			Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorPink).
			Bold(true).
			Padding(0, 1)

	DrawStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Padding(1, 4).
			Align(lipgloss.Center)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBlue).
			Bold(true).
			Padding(0, 2)

	DisabledStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 2)

	CellStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorMuted).
			Width(12).
			Align(lipgloss.Center)

	MarkedCellStyle = CellStyle.
			BorderForeground(colorMarked).
			Foreground(colorMarked).
			Bold(true)

	WinningCellStyle = CellStyle.
				BorderForeground(colorGold).
				Foreground(colorGold).
				Bold(true)

	CursorCellStyle = CellStyle.
			BorderForeground(colorPink).
			BorderStyle(lipgloss.ThickBorder())

	BingoStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorGold).
			Foreground(colorGold).
			Bold(true).
			Padding(1, 6).
			Align(lipgloss.Center)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)
