// Package search provides the search-as-you-type view for the TUI.
package search

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/topicsearch/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/topicsearch/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/topicsearch/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/topicsearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/topicsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/topicsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/topicsearch/internal/core/domain"
	"github.com/custodia-labs/topicsearch/internal/core/ports/driving"
)

// DefaultDebounce is how long typing must pause before a search runs.
const DefaultDebounce = 100 * time.Millisecond

// reservedLines is the height taken by the header, input and status bar.
const reservedLines = 9

// View is the search view: query input, grouped results and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.ResultList
	statusbar *status.Bar

	searchService driving.SearchService
	ctx           context.Context
	opts          domain.SearchOptions
	debounce      time.Duration

	// seq counts query edits. Debounce ticks and search completions carry
	// the seq they were started for and are dropped once it moves on.
	seq int

	width      int
	height     int
	ready      bool
	err        error
	focusInput bool
}

// NewView creates a new search view. opts.MinQueryLength applies to
// typing; a zero value means domain.InteractiveMinQueryLength.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	searchService driving.SearchService,
	opts domain.SearchOptions,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	if opts.MinQueryLength <= 0 {
		opts.MinQueryLength = domain.InteractiveMinQueryLength
	}

	v := &View{
		styles:        s,
		keymap:        km,
		input:         input.NewSearchInput(s),
		list:          list.NewResultList(s),
		statusbar:     status.NewBar(s, opts.MinQueryLength),
		searchService: searchService,
		ctx:           context.Background(),
		opts:          opts,
		debounce:      DefaultDebounce,
		width:         80,
		height:        24,
		focusInput:    true,
	}
	v.statusbar.SetHints(km.InputHelp())
	return v
}

// WithContext sets the context searches run under.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// WithDebounce overrides the typing pause before a search runs.
func (v *View) WithDebounce(d time.Duration) *View {
	v.debounce = d
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.QueryDebounced:
		if msg.Seq != v.seq {
			return v, nil
		}
		v.statusbar.SetState(status.StateSearching)
		return v, v.performSearch(msg.Seq, msg.Query)

	case messages.SearchCompleted:
		if msg.Seq != v.seq {
			return v, nil
		}
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd, _ = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	letters := !v.focusInput

	switch {
	case keymap.Matches(key, v.keymap.Up, letters):
		v.list.MoveUp()
		return v, nil

	case keymap.Matches(key, v.keymap.Down, letters):
		v.list.MoveDown()
		return v, nil

	case keymap.Matches(key, v.keymap.Select, true):
		return v, v.selectCurrent()

	case keymap.Matches(key, v.keymap.Focus, true):
		v.toggleFocus()
		return v, nil

	case keymap.Matches(key, v.keymap.Details, letters):
		if r := v.list.SelectedResult(); r != nil {
			id := r.Entry.ID
			return v, func() tea.Msg { return messages.DetailsRequested{ID: id} }
		}
		return v, nil

	case keymap.Matches(key, v.keymap.Clear, true):
		if v.input.Value() == "" {
			return v, func() tea.Msg { return messages.Quit{} }
		}
		v.Reset()
		return v, nil
	}

	// Any other key types into the query, taking focus back if needed.
	if !v.focusInput {
		v.setFocusInput(true)
	}
	var cmd tea.Cmd
	var changed bool
	v.input, cmd, changed = v.input.Update(msg)
	if changed {
		return v, tea.Batch(cmd, v.queryChanged())
	}
	return v, cmd
}

// queryChanged invalidates in-flight work and schedules a debounced search.
func (v *View) queryChanged() tea.Cmd {
	v.seq++
	v.err = nil

	query := strings.TrimSpace(v.input.Value())
	if query == "" {
		v.list.SetResults(nil)
		v.statusbar.Clear()
		return nil
	}
	if utf8.RuneCountInString(query) < v.opts.MinQueryLength {
		v.list.SetResults(nil)
		v.statusbar.SetState(status.StateTooShort)
		return nil
	}

	seq, value := v.seq, v.input.Value()
	return tea.Tick(v.debounce, func(time.Time) tea.Msg {
		return messages.QueryDebounced{Seq: seq, Query: value}
	})
}

// performSearch runs the search off the update loop.
func (v *View) performSearch(seq int, query string) tea.Cmd {
	svc, ctx, opts := v.searchService, v.ctx, v.opts
	return func() tea.Msg {
		if svc == nil {
			return messages.SearchCompleted{Seq: seq, Query: query, Err: ErrNoSearchService}
		}
		results, err := svc.Search(ctx, query, opts)
		return messages.SearchCompleted{Seq: seq, Query: query, Results: results, Err: err}
	}
}

// handleSearchCompleted shows the results of the current query.
func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Err != nil {
		v.list.SetResults(nil)
		v.setError(msg.Err)
		return
	}

	v.err = nil
	v.list.SetResults(msg.Results)
	v.statusbar.SetMessage("")
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetResultCount(len(msg.Results))
}

func (v *View) selectCurrent() tea.Cmd {
	r := v.list.SelectedResult()
	if r == nil {
		return nil
	}
	entry := r.Entry
	return func() tea.Msg { return messages.EntrySelected{Entry: entry} }
}

func (v *View) toggleFocus() {
	if v.focusInput && v.list.IsEmpty() {
		return
	}
	v.setFocusInput(!v.focusInput)
}

func (v *View) setFocusInput(focus bool) {
	v.focusInput = focus
	if focus {
		v.input.Focus()
		v.statusbar.SetHints(v.keymap.InputHelp())
		return
	}
	v.input.Blur()
	v.statusbar.SetHints(v.keymap.ResultsHelp())
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)
	sections = append(sections, v.styles.Title.Render("topicsearch"), "", v.input.View(), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	if v.input.Value() != "" {
		sections = append(sections, v.list.View())
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-reservedLines)
	v.statusbar.SetWidth(width)
}

// Query returns the current search query.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the query and schedules a search for it.
func (v *View) SetQuery(query string) tea.Cmd {
	v.input.SetValue(query)
	return v.queryChanged()
}

// Results returns the displayed results in display order.
func (v *View) Results() []domain.RankedResult {
	return v.list.Results()
}

// SelectedResult returns the highlighted result, or nil.
func (v *View) SelectedResult() *domain.RankedResult {
	return v.list.SelectedResult()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Seq returns the current query edit sequence number.
func (v *View) Seq() int {
	return v.seq
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// StatusState returns the status bar state.
func (v *View) StatusState() status.State {
	return v.statusbar.State()
}

// Reset clears the query and results and refocuses the input. Pending
// searches are discarded.
func (v *View) Reset() {
	v.seq++
	v.input.Clear()
	v.list.SetResults(nil)
	v.err = nil
	v.statusbar.Clear()
	v.setFocusInput(true)
}
