package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"opsdeck/internal/listctrl"
	"opsdeck/internal/manager"
	"opsdeck/internal/ui/views"
)

// viewMode is the interaction mode of a list view
type viewMode int

const (
	modeBrowse viewMode = iota
	modeSearch
	modeDetail
	modeConfirmDelete
	modeForm
)

// mutationTimeout bounds create/update/delete requests
const mutationTimeout = 15 * time.Second

// FormField describes one input of the create/edit modal
type FormField struct {
	Key         string // JSON key in the mutation payload
	Label       string
	Placeholder string
	Required    bool
}

// Spec describes how one entity is presented: its columns, detail
// fields and form layout. Everything else is shared machinery.
type Spec[T any] struct {
	Entity    string // collection name, e.g. "companies"
	Title     string // tab label
	Columns   []views.Column
	Cells     func(T) []string
	ID        func(T) int
	Label     func(T) string // short name used in confirm prompts
	Detail    func(T) []views.Field
	LongText  func(T) (string, string) // title and body for the pager; empty body = none
	Form      []FormField
	FormValue func(T, string) string // current value of a form key when editing
}

// section is what the root model knows about each entity view
type section interface {
	entity() string
	title() string
	activate() tea.Cmd
	refresh() tea.Cmd
	capturing() bool
	update(msg tea.Msg) (tea.Cmd, bool)
	view(width, height int) string
}

// listView is a generic entity list page: a list controller for data,
// plus browse/search/detail/form interaction on top of it.
type listView[T any] struct {
	spec Spec[T]
	ctrl *listctrl.Controller[T]
	mgr  *manager.Manager[T]
	caps *manager.ProfileManager

	styles     *views.Styles
	table      *views.TableRenderer
	popup      *views.PopupRenderer
	form       *views.FormRenderer
	pager      *PagerOps
	spin       spinner.Model
	searchIn   textinput.Model
	mode       viewMode
	cursor     int
	status     string
	formInputs []textinput.Model
	formFocus  int
	formErr    string
	editing    *T // nil while creating
}

// newListView wires a list view for one entity
func newListView[T any](spec Spec[T], mgr *manager.Manager[T], caps *manager.ProfileManager, styles *views.Styles, pager *PagerOps, debounce time.Duration) *listView[T] {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	search := textinput.New()
	search.Placeholder = "type to search"
	search.CharLimit = 120

	return &listView[T]{
		spec:     spec,
		ctrl:     listctrl.New(mgr.Fetch(), listctrl.WithDebounce[T](debounce)),
		mgr:      mgr,
		caps:     caps,
		styles:   styles,
		table:    views.NewTableRenderer(styles),
		popup:    views.NewPopupRenderer(styles),
		form:     views.NewFormRenderer(styles),
		pager:    pager,
		spin:     sp,
		searchIn: search,
	}
}

func (v *listView[T]) entity() string { return v.spec.Entity }
func (v *listView[T]) title() string  { return v.spec.Title }

// activate fires the initial fetch when the section first becomes visible
func (v *listView[T]) activate() tea.Cmd {
	if cmd := v.ctrl.Load(); cmd != nil {
		return tea.Batch(cmd, v.spin.Tick)
	}
	return nil
}

// refresh resynchronizes the list with server state
func (v *listView[T]) refresh() tea.Cmd {
	if v.ctrl.Phase() == listctrl.PhaseIdle {
		return nil // never shown yet; activate will load it
	}
	return tea.Batch(v.ctrl.Refresh(), v.spin.Tick)
}

// capturing reports whether the view wants raw keystrokes
func (v *listView[T]) capturing() bool { return v.mode != modeBrowse }

// selected returns the item under the cursor
func (v *listView[T]) selected() *T {
	items := v.ctrl.Items()
	if len(items) == 0 || v.cursor < 0 || v.cursor >= len(items) {
		return nil
	}
	return &items[v.cursor]
}

// update consumes messages. The second return value reports whether the
// message was handled by this view.
func (v *listView[T]) update(msg tea.Msg) (tea.Cmd, bool) {
	// Controller messages: debounce settles and fetch results
	if cmd, handled := v.ctrl.Update(msg); handled {
		v.clampCursor()
		if cmd != nil {
			return tea.Batch(cmd, v.spin.Tick), true
		}
		return nil, true
	}

	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !v.ctrl.Loading() {
			return nil, true
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return cmd, true

	case mutationDoneMsg:
		if msg.entity != v.spec.Entity {
			return nil, false
		}
		return v.handleMutationDone(msg), true

	case pagerDoneMsg:
		if msg.err != nil {
			v.status = fmt.Sprintf("Pager failed: %v", msg.err)
		}
		return nil, true

	case clearStatusMsg:
		v.status = ""
		return nil, true

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return nil, false
}

func (v *listView[T]) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch v.mode {
	case modeSearch:
		return v.handleSearchKey(msg)
	case modeDetail:
		return v.handleDetailKey(msg)
	case modeConfirmDelete:
		return v.handleConfirmKey(msg)
	case modeForm:
		return v.handleFormKey(msg)
	default:
		return v.handleBrowseKey(msg)
	}
}

func (v *listView[T]) handleBrowseKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
		return nil, true
	case "down", "j":
		if v.cursor < len(v.ctrl.Items())-1 {
			v.cursor++
		}
		return nil, true
	case "left", "h":
		return v.withSpinner(v.ctrl.PrevPage()), true
	case "right", "l":
		return v.withSpinner(v.ctrl.NextPage()), true
	case "/":
		v.mode = modeSearch
		v.searchIn.SetValue(v.ctrl.Query().RawSearch)
		v.searchIn.Focus()
		return textinput.Blink, true
	case "esc":
		return v.withSpinner(v.ctrl.ClearSearch()), true
	case "r":
		return v.withSpinner(v.ctrl.Refresh()), true
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(msg.String()[0] - '1')
		if idx < len(v.spec.Columns) && v.spec.Columns[idx].Field != "" {
			return v.withSpinner(v.ctrl.SortBy(v.spec.Columns[idx].Field)), true
		}
		return nil, true
	case "s":
		if field := v.nextSortField(); field != "" {
			return v.withSpinner(v.ctrl.SortBy(field)), true
		}
		return nil, true
	case "enter":
		if v.selected() != nil {
			v.mode = modeDetail
		}
		return nil, true
	case "c":
		if !v.can("create") {
			return nil, true
		}
		v.openForm(nil)
		return textinput.Blink, true
	case "e":
		if item := v.selected(); item != nil && v.can("update") {
			v.openForm(item)
			return textinput.Blink, true
		}
		return nil, true
	case "d":
		if v.selected() != nil && v.can("delete") {
			v.mode = modeConfirmDelete
		}
		return nil, true
	}
	return nil, false
}

func (v *listView[T]) handleSearchKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "esc":
		v.mode = modeBrowse
		v.searchIn.Blur()
		return v.withSpinner(v.ctrl.ClearSearch()), true
	case "enter":
		// Keep the filter, leave the input
		v.mode = modeBrowse
		v.searchIn.Blur()
		return nil, true
	}

	var inputCmd tea.Cmd
	v.searchIn, inputCmd = v.searchIn.Update(msg)

	// Every keystroke restarts the debounce window
	debounceCmd := v.ctrl.SetSearch(v.searchIn.Value())
	return tea.Batch(inputCmd, debounceCmd), true
}

func (v *listView[T]) handleDetailKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "esc", "q":
		v.mode = modeBrowse
		return nil, true
	case "enter":
		if item := v.selected(); item != nil && v.spec.LongText != nil {
			title, body := v.spec.LongText(*item)
			if body != "" {
				return v.pager.Show(title, body), true
			}
		}
		return nil, true
	case "e":
		if item := v.selected(); item != nil && v.can("update") {
			v.openForm(item)
			return textinput.Blink, true
		}
		return nil, true
	}
	return nil, true
}

func (v *listView[T]) handleConfirmKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y":
		item := v.selected()
		v.mode = modeBrowse
		if item == nil {
			return nil, true
		}
		id := v.spec.ID(*item)
		mgr := v.mgr
		entity := v.spec.Entity
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), mutationTimeout)
			defer cancel()
			return mutationDoneMsg{entity: entity, action: "delete", err: mgr.Delete(ctx, id)}
		}, true
	case "n", "N", "esc":
		v.mode = modeBrowse
		return nil, true
	}
	return nil, true
}

func (v *listView[T]) handleFormKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "esc":
		v.mode = modeBrowse
		v.formErr = ""
		return nil, true
	case "tab", "down":
		v.focusFormField((v.formFocus + 1) % len(v.formInputs))
		return textinput.Blink, true
	case "shift+tab", "up":
		v.focusFormField((v.formFocus - 1 + len(v.formInputs)) % len(v.formInputs))
		return textinput.Blink, true
	case "enter":
		return v.submitForm(), true
	}

	var cmd tea.Cmd
	v.formInputs[v.formFocus], cmd = v.formInputs[v.formFocus].Update(msg)
	return cmd, true
}

// nextSortField cycles to the sortable column after the current one
func (v *listView[T]) nextSortField() string {
	var fields []string
	for _, col := range v.spec.Columns {
		if col.Field != "" {
			fields = append(fields, col.Field)
		}
	}
	if len(fields) == 0 {
		return ""
	}
	current := v.ctrl.Query().SortField
	for i, f := range fields {
		if f == current {
			return fields[(i+1)%len(fields)]
		}
	}
	return fields[0]
}

// can checks a capability like "companies.create" and reports refusals
func (v *listView[T]) can(action string) bool {
	if v.caps.Can(v.spec.Entity + "." + action) {
		return true
	}
	v.status = fmt.Sprintf("You are not allowed to %s %s", action, v.spec.Entity)
	return false
}

// openForm prepares the create/edit modal. A nil item means create.
func (v *listView[T]) openForm(item *T) {
	v.formInputs = make([]textinput.Model, len(v.spec.Form))
	for i, f := range v.spec.Form {
		in := textinput.New()
		in.Placeholder = f.Placeholder
		in.CharLimit = 200
		if item != nil && v.spec.FormValue != nil {
			in.SetValue(v.spec.FormValue(*item, f.Key))
		}
		v.formInputs[i] = in
	}
	v.editing = item
	v.formErr = ""
	v.mode = modeForm
	v.focusFormField(0)
}

func (v *listView[T]) focusFormField(idx int) {
	for i := range v.formInputs {
		if i == idx {
			v.formInputs[i].Focus()
		} else {
			v.formInputs[i].Blur()
		}
	}
	v.formFocus = idx
}

// submitForm validates required fields and runs the mutation
func (v *listView[T]) submitForm() tea.Cmd {
	payload := make(map[string]any, len(v.spec.Form))
	for i, f := range v.spec.Form {
		value := strings.TrimSpace(v.formInputs[i].Value())
		if f.Required && value == "" {
			v.formErr = fmt.Sprintf("%s is required", f.Label)
			v.focusFormField(i)
			return nil
		}
		payload[f.Key] = value
	}

	editing := v.editing
	mgr := v.mgr
	spec := v.spec
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), mutationTimeout)
		defer cancel()
		if editing != nil {
			_, err := mgr.Update(ctx, spec.ID(*editing), payload)
			return mutationDoneMsg{entity: spec.Entity, action: "update", err: err}
		}
		_, err := mgr.Create(ctx, payload)
		return mutationDoneMsg{entity: spec.Entity, action: "create", err: err}
	}
}

// handleMutationDone closes modals and resynchronizes on success
func (v *listView[T]) handleMutationDone(msg mutationDoneMsg) tea.Cmd {
	if msg.err != nil {
		if v.mode == modeForm {
			v.formErr = msg.err.Error()
			return nil
		}
		v.status = msg.err.Error()
		return clearStatusLater()
	}

	v.mode = modeBrowse
	v.editing = nil
	v.formErr = ""
	v.status = fmt.Sprintf("%s %sd", strings.TrimSuffix(v.spec.Title, "s"), msg.action)
	return tea.Batch(v.withSpinner(v.ctrl.Refresh()), clearStatusLater())
}

// clampCursor keeps the cursor inside the current page
func (v *listView[T]) clampCursor() {
	if n := len(v.ctrl.Items()); v.cursor >= n {
		v.cursor = n - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

// withSpinner batches a fetch command with the spinner tick
func (v *listView[T]) withSpinner(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return tea.Batch(cmd, v.spin.Tick)
}

// view renders the section body
func (v *listView[T]) view(width, height int) string {
	var b strings.Builder

	// Search bar
	query := v.ctrl.Query()
	if v.mode == modeSearch {
		b.WriteString(v.styles.Search.Render("Search: "))
		b.WriteString(v.searchIn.View())
		b.WriteString("\n\n")
	} else if query.RawSearch != "" {
		b.WriteString(v.styles.Search.Render(fmt.Sprintf("[Search: %s]", query.RawSearch)))
		b.WriteString("\n\n")
	}

	rows := make([][]string, 0, len(v.ctrl.Items()))
	for _, item := range v.ctrl.Items() {
		rows = append(rows, v.spec.Cells(item))
	}

	st := views.TableState{
		Columns:   v.spec.Columns,
		Rows:      rows,
		Selected:  v.cursor,
		SortField: query.SortField,
		SortDesc:  query.SortDir == listctrl.SortDesc,
		Loading:   v.ctrl.Loading(),
		Spinner:   v.spin.View(),
		Err:       v.ctrl.Err(),
		Search:    query.Search,
		Width:     width,
	}
	if meta := v.ctrl.Meta(); meta != nil {
		st.HasMeta = true
		st.Page = meta.CurrentPage
		st.LastPage = meta.LastPage
		st.Total = meta.Total
	}
	b.WriteString(v.table.Render(st))

	if v.status != "" {
		b.WriteString(v.styles.Status.Render(v.status))
		b.WriteString("\n")
	}

	body := b.String()

	// Modal overlays replace the body
	switch v.mode {
	case modeDetail:
		if item := v.selected(); item != nil {
			popup := v.popup.RenderDetail(v.spec.Title+" detail", v.spec.Detail(*item), width)
			return v.popup.Overlay(popup, width, height)
		}
	case modeConfirmDelete:
		if item := v.selected(); item != nil {
			question := fmt.Sprintf("Delete %q?", v.spec.Label(*item))
			return v.popup.Overlay(v.popup.RenderConfirm(question), width, height)
		}
	case modeForm:
		title := "New " + strings.TrimSuffix(v.spec.Title, "s")
		if v.editing != nil {
			title = "Edit " + strings.TrimSuffix(v.spec.Title, "s")
		}
		fields := make([]views.FormFieldView, len(v.spec.Form))
		for i, f := range v.spec.Form {
			fields[i] = views.FormFieldView{
				Label:    f.Label,
				Required: f.Required,
				Input:    v.formInputs[i].View(),
				Focused:  i == v.formFocus,
			}
		}
		form := v.form.Render(views.FormState{Title: title, Fields: fields, Err: v.formErr})
		return v.popup.Overlay(form, width, height)
	}

	return body
}

// clearStatusLater clears the status bar after a short delay
func clearStatusLater() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
