// Package theme holds the colors and lipgloss styles shared by every
// screen.
package theme

import "charm.land/lipgloss/v2"

var (
	Primary   = lipgloss.Color("#38BDF8")
	Secondary = lipgloss.Color("#A3E635")
	Accent    = lipgloss.Color("#FBBF24")
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#F87171")
	Text      = lipgloss.Color("#E5E7EB")
	TextDim   = lipgloss.Color("#9CA3AF")
	Border    = lipgloss.Color("#374151")
)

// Text styles.
var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Subtitle = lipgloss.NewStyle().Foreground(TextDim)
	Body     = lipgloss.NewStyle().Foreground(Text)
	Hint     = lipgloss.NewStyle().Foreground(TextDim).Italic(true)

	// Code renders source lines of arrange-code exercises.
	Code = lipgloss.NewStyle().Foreground(Secondary)
)

// Column frames one side of a drag-and-drop exercise; FocusedColumn is
// the side the cursor is on.
var (
	Column        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Border).Padding(0, 1)
	FocusedColumn = Column.BorderForeground(Primary)
)

// Cursor and answer states.
var (
	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)
	Chosen     = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	Locked     = lipgloss.NewStyle().Foreground(TextDim)

	Correct   = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect = lipgloss.NewStyle().Foreground(Error).Bold(true)
)

// Lesson progress bar cells.
var (
	ProgressFilled = lipgloss.NewStyle().Background(Secondary)
	ProgressEmpty  = lipgloss.NewStyle().Background(Border)
)
