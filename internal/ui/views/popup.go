package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Field is one label/value pair in a detail popup
type Field struct {
	Label string
	Value string
}

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{styles: styles}
}

// Overlay centers popup content over the full screen area
func (pr *PopupRenderer) Overlay(popup string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, popup)
}

// RenderDetail renders a detail popup for one record
func (pr *PopupRenderer) RenderDetail(title string, fields []Field, width int) string {
	maxLabel := 0
	for _, f := range fields {
		if len(f.Label) > maxLabel {
			maxLabel = len(f.Label)
		}
	}

	var b strings.Builder
	b.WriteString(pr.styles.Title.Render(title))
	b.WriteString("\n")
	for _, f := range fields {
		label := pr.styles.FieldLabel.Render(pad(f.Label, maxLabel))
		value := f.Value
		if value == "" {
			value = pr.styles.Dim.Render("—")
		}
		b.WriteString(fmt.Sprintf("%s  %s\n", label, value))
	}
	b.WriteString("\n")
	b.WriteString(pr.styles.Help.Render("enter: view long text in pager · e: edit · esc: close"))

	box := pr.styles.PopupBox
	if width > 0 && lipgloss.Width(b.String()) > width-8 {
		box = box.Width(width - 8)
	}
	return box.Render(b.String())
}

// RenderConfirm renders a yes/no confirmation popup
func (pr *PopupRenderer) RenderConfirm(question string) string {
	var b strings.Builder
	b.WriteString(pr.styles.Confirm.Render(question))
	b.WriteString("\n\n")
	b.WriteString(pr.styles.Help.Render("y: confirm · n/esc: cancel"))
	return pr.styles.PopupBox.Render(b.String())
}
