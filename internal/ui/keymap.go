package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines the key bindings shown in the help bar
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Search   key.Binding
	Sort     key.Binding
	Refresh  key.Binding
	Detail   key.Binding
	Create   key.Binding
	Edit     key.Binding
	Delete   key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// newKeyMap creates the default key bindings
func newKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PrevPage: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev page")),
		NextPage: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Sort:     key.NewBinding(key.WithKeys("s", "1", "2", "3", "4", "5"), key.WithHelp("s/1-5", "sort")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Detail:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "detail")),
		Create:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "create")),
		Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		NextTab:  key.NewBinding(key.WithKeys("tab", "]"), key.WithHelp("tab", "next section")),
		PrevTab:  key.NewBinding(key.WithKeys("shift+tab", "["), key.WithHelp("shift+tab", "prev section")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the bindings for the mini help bar
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Sort, k.Detail, k.Create, k.NextTab, k.Help, k.Quit}
}

// FullHelp returns the bindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevPage, k.NextPage},
		{k.Search, k.Sort, k.Refresh, k.Detail},
		{k.Create, k.Edit, k.Delete},
		{k.NextTab, k.PrevTab, k.Help, k.Quit},
	}
}
