package views

import (
	"fmt"
	"strings"
)

// Column describes one table column. Field is the sort key the backend
// understands; empty means the column is not sortable.
type Column struct {
	Title string
	Field string
	Width int
	Badge bool // colorize the cell as a status badge
}

// TableState is everything the table renderer needs for one frame
type TableState struct {
	Columns   []Column
	Rows      [][]string
	Selected  int
	SortField string
	SortDesc  bool
	Loading   bool
	Spinner   string
	Err       string
	Search    string // debounced search, used for empty-state wording
	Page      int
	LastPage  int
	Total     int
	HasMeta   bool
	Width     int
}

// TableRenderer renders entity list pages
type TableRenderer struct {
	styles *Styles
}

// NewTableRenderer creates a new table renderer
func NewTableRenderer(styles *Styles) *TableRenderer {
	return &TableRenderer{styles: styles}
}

// Sort glyphs for the three header states
const (
	glyphUnsorted   = " ·"
	glyphAscending  = " ▲"
	glyphDescending = " ▼"
)

// sortGlyph returns the header marker for a column
func sortGlyph(col Column, sortField string, sortDesc bool) string {
	if col.Field == "" {
		return "  "
	}
	if col.Field != sortField {
		return glyphUnsorted
	}
	if sortDesc {
		return glyphDescending
	}
	return glyphAscending
}

// EmptyMessage picks the empty-state wording: a list that is empty
// without a search has no records at all; with a search active it has
// no results for that search.
func EmptyMessage(search string) string {
	if search == "" {
		return "No records yet."
	}
	return fmt.Sprintf("No results for %q. Press esc to clear the search.", search)
}

// pad fits a cell to the column width, truncating with an ellipsis
func pad(text string, width int) string {
	runes := []rune(text)
	if len(runes) > width {
		if width > 1 {
			return string(runes[:width-1]) + "…"
		}
		return string(runes[:width])
	}
	return text + strings.Repeat(" ", width-len(runes))
}

// Render produces the full list page body
func (r *TableRenderer) Render(st TableState) string {
	var b strings.Builder

	// Header row
	var header strings.Builder
	for _, col := range st.Columns {
		label := pad(col.Title+sortGlyph(col, st.SortField, st.SortDesc), col.Width)
		if col.Field != "" && col.Field == st.SortField {
			header.WriteString(r.styles.HeaderSorted.Render(label))
		} else {
			header.WriteString(label)
		}
		header.WriteString("  ")
	}
	b.WriteString(r.styles.Header.Render(header.String()))
	b.WriteString("\n")

	switch {
	case st.Err != "":
		b.WriteString(r.styles.Error.Render("✗ " + st.Err))
		b.WriteString("\n")

	case st.Loading && len(st.Rows) == 0:
		b.WriteString(r.styles.Dim.Render(st.Spinner + " Loading…"))
		b.WriteString("\n")

	case len(st.Rows) == 0:
		b.WriteString(r.styles.Empty.Render(EmptyMessage(st.Search)))
		b.WriteString("\n")

	default:
		for i, row := range st.Rows {
			var line strings.Builder
			for j, col := range st.Columns {
				cell := ""
				if j < len(row) {
					cell = row[j]
				}
				padded := pad(cell, col.Width)
				if col.Badge && i != st.Selected {
					padded = r.styles.StatusBadge(strings.TrimSpace(cell)).Render(padded)
				}
				line.WriteString(padded)
				line.WriteString("  ")
			}
			if i == st.Selected {
				b.WriteString(r.styles.RowSelected.Render(line.String()))
			} else {
				b.WriteString(line.String())
			}
			b.WriteString("\n")
		}
	}

	// Pagination footer
	if st.HasMeta {
		footer := fmt.Sprintf("page %d/%d — %d total", st.Page, st.LastPage, st.Total)
		if st.Loading {
			footer = st.Spinner + " " + footer
		}
		b.WriteString(r.styles.Pagination.Render(footer))
		b.WriteString("\n")
	}

	return b.String()
}
