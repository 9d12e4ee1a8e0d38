package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/topicsearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/topicsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/topicsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/topicsearch/internal/adapters/driving/tui/views/details"
	"github.com/custodia-labs/topicsearch/internal/adapters/driving/tui/views/search"
	"github.com/custodia-labs/topicsearch/internal/core/domain"
)

// App is the root bubbletea model. It ends the program when an entry is
// selected or the user quits; Selected reports which.
type App struct {
	ports *Ports
	ctx   context.Context

	searchView  *search.View
	detailsView *details.View
	currentView messages.ViewType

	selected *domain.IndexEntry
	query    string

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the TUI. opts are the search options used while typing.
func NewApp(ports *Ports, opts domain.SearchOptions) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		searchView:  search.NewView(s, km, ports.Search, opts),
		detailsView: details.NewView(s, km),
		currentView: messages.ViewSearch,
	}, nil
}

// WithContext sets the context searches and lookups run under.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	return a
}

// WithQuery pre-fills the query; the search runs when the program starts.
func (a *App) WithQuery(query string) *App {
	a.query = query
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.SetWindowTitle("topicsearch"),
		a.searchView.Init(),
	}
	if a.query != "" {
		cmds = append(cmds, a.searchView.SetQuery(a.query))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case messages.EntrySelected:
		entry := msg.Entry
		a.selected = &entry
		return a, tea.Quit

	case messages.Quit:
		return a, tea.Quit

	case messages.DetailsRequested:
		return a, a.loadEntry(msg.ID)

	case messages.EntryLoaded:
		if msg.Err != nil {
			a.detailsView.SetError(msg.Err)
		} else {
			a.detailsView.SetEntry(msg.Entry)
		}
		a.currentView = messages.ViewDetails
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.QueryDebounced, messages.SearchCompleted:
		// Searches finish in the background even while details are shown.
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd
	}

	switch a.currentView {
	case messages.ViewDetails:
		a.detailsView, cmd = a.detailsView.Update(msg)
	default:
		a.searchView, cmd = a.searchView.Update(msg)
	}
	return a, cmd
}

// loadEntry fetches the full entry for the details view.
func (a *App) loadEntry(id string) tea.Cmd {
	index, ctx := a.ports.Index, a.ctx
	return func() tea.Msg {
		if index == nil {
			return messages.EntryLoaded{Err: ErrNoIndexService}
		}
		entry, err := index.Get(ctx, id)
		return messages.EntryLoaded{Entry: entry, Err: err}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	if a.currentView == messages.ViewDetails {
		return a.detailsView.View()
	}
	return a.searchView.View()
}

// SetDimensions sizes every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.searchView.SetDimensions(width, height)
	a.detailsView.SetDimensions(width, height)
}

// Selected returns the entry the user picked, or nil if they quit.
func (a *App) Selected() *domain.IndexEntry {
	return a.selected
}

// CurrentView returns the active view.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// SearchView returns the search view.
func (a *App) SearchView() *search.View {
	return a.searchView
}
