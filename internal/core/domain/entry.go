package domain

import "sort"

// Category tags an entry with the kind of content it points at.
// The set is open: unknown categories are valid and rank with neutral weight.
type Category string

// Known categories.
const (
	// CategoryCrate is a library crate.
	CategoryCrate Category = "crate"

	// CategoryBook is a page of a guide or book.
	CategoryBook Category = "book"

	// CategoryStd is a standard-library symbol.
	CategoryStd Category = "std"
)

// Category weights. These are hand-tuned and kept exactly as shipped;
// changing them changes ranking and needs product review.
const (
	crateWeight   = 1.5
	bookWeight    = 1.3
	stdWeight     = 1.1
	neutralWeight = 1.0
)

// Weight returns the ranking multiplier for the category.
func (c Category) Weight() float64 {
	switch c {
	case CategoryCrate:
		return crateWeight
	case CategoryBook:
		return bookWeight
	case CategoryStd:
		return stdWeight
	default:
		return neutralWeight
	}
}

// String returns the string representation.
func (c Category) String() string {
	return string(c)
}

// displayOrder is the order categories are presented in.
var displayOrder = map[Category]int{
	CategoryCrate: 0,
	CategoryBook:  1,
	CategoryStd:   2,
}

// IndexEntry is one searchable item. Entries are supplied pre-built by
// the caller and are never mutated by search.
type IndexEntry struct {
	// ID is the opaque identifier, unique within an index snapshot.
	ID string `json:"id" yaml:"id"`

	// Name is the canonical display string.
	Name string `json:"name" yaml:"name"`

	// Aliases are alternate search strings, matched one at a time.
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`

	// Category drives the ranking weight.
	Category Category `json:"category" yaml:"category"`

	// Brief is a short description for display.
	Brief string `json:"brief,omitempty" yaml:"brief,omitempty"`

	// Path is where the caller navigates to for this entry.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// HasAliases reports whether the entry declares at least one non-empty alias.
func (e *IndexEntry) HasAliases() bool {
	for _, a := range e.Aliases {
		if a != "" {
			return true
		}
	}
	return false
}

// IndexStats summarises an index snapshot.
type IndexStats struct {
	// Entries is the total number of records, duplicates included.
	Entries int `json:"entries"`

	// ByCategory counts records per category tag.
	ByCategory map[Category]int `json:"by_category"`

	// WithAliases counts records that declare aliases.
	WithAliases int `json:"with_aliases"`

	// DuplicateIDs lists ids that appear more than once, in first-seen order.
	DuplicateIDs []string `json:"duplicate_ids,omitempty"`
}

// Categories returns the categories present in the stats in display order.
func (s *IndexStats) Categories() []Category {
	cats := make([]Category, 0, len(s.ByCategory))
	for c := range s.ByCategory {
		cats = append(cats, c)
	}
	sortCategories(cats)
	return cats
}

// sortCategories orders crate, book, std first and everything else by name.
func sortCategories(cats []Category) {
	sort.SliceStable(cats, func(i, j int) bool {
		ri, iKnown := displayOrder[cats[i]]
		rj, jKnown := displayOrder[cats[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown:
			return true
		case jKnown:
			return false
		default:
			return cats[i] < cats[j]
		}
	})
}
