package views

import (
	"strings"
)

// FormFieldView is one rendered form field
type FormFieldView struct {
	Label    string
	Required bool
	Input    string // rendered textinput view
	Focused  bool
}

// FormState is everything the form renderer needs for one frame
type FormState struct {
	Title  string
	Fields []FormFieldView
	Err    string
}

// FormRenderer renders the create/edit modal
type FormRenderer struct {
	styles *Styles
}

// NewFormRenderer creates a new form renderer
func NewFormRenderer(styles *Styles) *FormRenderer {
	return &FormRenderer{styles: styles}
}

// Render produces the modal form box
func (fr *FormRenderer) Render(st FormState) string {
	var b strings.Builder
	b.WriteString(fr.styles.Title.Render(st.Title))
	b.WriteString("\n")

	for _, f := range st.Fields {
		label := f.Label
		if f.Required {
			label += fr.styles.FieldRequired.Render("*")
		}
		marker := "  "
		if f.Focused {
			marker = "> "
		}
		b.WriteString(marker)
		b.WriteString(fr.styles.FieldLabel.Render(label))
		b.WriteString("\n")
		b.WriteString("  ")
		b.WriteString(f.Input)
		b.WriteString("\n")
	}

	if st.Err != "" {
		b.WriteString("\n")
		b.WriteString(fr.styles.Error.Render("✗ " + st.Err))
	}

	b.WriteString("\n")
	b.WriteString(fr.styles.Help.Render("tab: next field · enter: submit · esc: cancel"))
	return fr.styles.FormBox.Render(b.String())
}
