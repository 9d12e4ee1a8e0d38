// Package details shows every field of one index entry.
package details

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/topicsearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/topicsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/topicsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/topicsearch/internal/core/domain"
)

// reservedLines covers the title, separator and help footer.
const reservedLines = 6

// View is the entry details view.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	entry        *domain.IndexEntry
	scrollOffset int
	width        int
	height       int
	err          error
}

// NewView creates a new details view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{styles: s, keymap: km, width: 80, height: 24}
}

// SetEntry sets the entry to display.
func (v *View) SetEntry(entry *domain.IndexEntry) {
	v.entry = entry
	v.scrollOffset = 0
	v.err = nil
}

// SetError shows err instead of an entry.
func (v *View) SetError(err error) {
	v.entry = nil
	v.err = err
}

// Entry returns the displayed entry, or nil.
func (v *View) Entry() *domain.IndexEntry {
	return v.entry
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the details view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	case messages.ErrorOccurred:
		v.SetError(msg.Err)
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Up, true):
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case keymap.Matches(key, v.keymap.Down, true):
		if v.scrollOffset < v.maxScrollOffset() {
			v.scrollOffset++
		}
	case keymap.Matches(key, v.keymap.Select, true):
		if v.entry != nil {
			entry := *v.entry
			return v, func() tea.Msg { return messages.EntrySelected{Entry: entry} }
		}
	case keymap.Matches(key, v.keymap.Back, true):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewSearch} }
	}
	return v, nil
}

func (v *View) visibleLines() int {
	return max(v.height-reservedLines, 1)
}

func (v *View) maxScrollOffset() int {
	return max(len(v.buildContent())-v.visibleLines(), 0)
}

// buildContent lays out the entry as label/value lines.
func (v *View) buildContent() []string {
	if v.entry == nil {
		return nil
	}
	e := v.entry

	category := e.Category.String()
	if category == "" {
		category = "(none)"
	}
	lines := []string{
		v.formatField("Name", e.Name),
		v.formatField("ID", e.ID),
		v.formatField("Category", fmt.Sprintf("%s (weight %.1f)", category, e.Category.Weight())),
	}
	if e.Path != "" {
		lines = append(lines, v.formatField("Path", e.Path))
	}
	if e.Brief != "" {
		lines = append(lines, v.formatField("Brief", e.Brief))
	}

	if e.HasAliases() {
		lines = append(lines, "", v.styles.Subtitle.Render("Aliases"))
		for _, a := range e.Aliases {
			if a != "" {
				lines = append(lines, "  "+v.styles.Normal.Render(a))
			}
		}
	}
	return lines
}

func (v *View) formatField(label, value string) string {
	return v.styles.Label.Render(label) + " " + v.styles.Normal.Render(value)
}

// View renders the details view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Entry"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", max(min(v.width-4, 60), 1)))
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	case v.entry == nil:
		b.WriteString(v.styles.Muted.Render("No entry selected"))
	default:
		lines := v.buildContent()
		end := min(v.scrollOffset+v.visibleLines(), len(lines))
		b.WriteString(strings.Join(lines[v.scrollOffset:end], "\n"))
		if len(lines) > v.visibleLines() {
			b.WriteString("\n")
			b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]", v.scrollOffset+1, end, len(lines))))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())
	return b.String()
}

func (v *View) renderHelp() string {
	hints := make([]string, 0, 3)
	for _, binding := range v.keymap.DetailsHelp() {
		h := binding.Help()
		hints = append(hints, "["+h.Key+"] "+h.Desc)
	}
	return v.styles.Muted.Render(strings.Join(hints, "  "))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.scrollOffset = min(v.scrollOffset, v.maxScrollOffset())
}
