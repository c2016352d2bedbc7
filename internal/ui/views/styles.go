package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	Header        lipgloss.Style
	HeaderSorted  lipgloss.Style
	Row           lipgloss.Style
	RowSelected   lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Error         lipgloss.Style
	Empty         lipgloss.Style
	Search        lipgloss.Style
	Pagination    lipgloss.Style
	PopupBox      lipgloss.Style
	FormBox       lipgloss.Style
	FieldLabel    lipgloss.Style
	FieldRequired lipgloss.Style
	Confirm       lipgloss.Style
	Help          lipgloss.Style
	BadgeOK       lipgloss.Style
	BadgeWarn     lipgloss.Style
	BadgeBad      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("241")),
		HeaderSorted: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220")),
		Row:         lipgloss.NewStyle(),
		RowSelected: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true).
			Padding(1, 2),
		Search:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Pagination: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		PopupBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("99")),
		FormBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("39")),
		FieldLabel:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		FieldRequired: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Confirm:       lipgloss.NewStyle().Bold(true),
		Help:          lipgloss.NewStyle().Faint(true),
		BadgeOK:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		BadgeWarn:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		BadgeBad:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// StatusBadge picks a badge style for a domain status value
func (s *Styles) StatusBadge(status string) lipgloss.Style {
	switch status {
	case "operational", "done", "resolved", "active":
		return s.BadgeOK
	case "maintenance", "in_progress", "pending", "scheduled", "open":
		return s.BadgeWarn
	case "retired", "critical", "skipped", "inactive":
		return s.BadgeBad
	default:
		return s.Dim
	}
}
