package indexfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/topicsearch/internal/core/domain"
)

// Format is an index file encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// searchableSeparator splits the pipe-encoded searchable field.
const searchableSeparator = "|"

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%s: %w", path, domain.ErrUnsupportedFormat)
	}
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%q: %w", name, domain.ErrUnsupportedFormat)
	}
}

// record is the on-disk shape of an entry.
type record struct {
	ID         recordID `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Aliases    []string `json:"aliases" yaml:"aliases"`
	Searchable string   `json:"searchable" yaml:"searchable"`
	Category   string   `json:"category" yaml:"category"`
	Brief      string   `json:"brief" yaml:"brief"`
	Path       string   `json:"path" yaml:"path"`
}

// recordID accepts a string or a number and keeps its textual form.
type recordID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *recordID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = recordID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = recordID(n.String())
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (id *recordID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: id must be a scalar", node.Line)
	}
	*id = recordID(node.Value)
	return nil
}

// Decode reads an index in the given format.
func Decode(r io.Reader, format Format) ([]domain.IndexEntry, error) {
	var records []record

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		if err := dec.Decode(&records); err != nil {
			return nil, fmt.Errorf("decode json index: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&records); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decode yaml index: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, domain.ErrUnsupportedFormat)
	}

	entries := make([]domain.IndexEntry, 0, len(records))
	for i := range records {
		entries = append(entries, records[i].entry())
	}
	return entries, nil
}

// entry converts the record, merging the explicit aliases with those
// encoded in the searchable field.
func (r *record) entry() domain.IndexEntry {
	name := r.Name
	var encoded []string
	if r.Searchable != "" {
		parts := strings.Split(r.Searchable, searchableSeparator)
		if name == "" {
			name = parts[0]
		}
		encoded = parts[1:]
	}

	var aliases []string
	seen := make(map[string]struct{})
	for _, group := range [][]string{r.Aliases, encoded} {
		for _, a := range group {
			if a == "" {
				continue
			}
			if _, dup := seen[a]; dup {
				continue
			}
			seen[a] = struct{}{}
			aliases = append(aliases, a)
		}
	}

	return domain.IndexEntry{
		ID:       string(r.ID),
		Name:     name,
		Aliases:  aliases,
		Category: domain.Category(r.Category),
		Brief:    r.Brief,
		Path:     r.Path,
	}
}
