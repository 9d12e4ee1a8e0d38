package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/topicsearch/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query      string   `json:"query" jsonschema:"the topic to look up, e.g. a crate, chapter or std item name"`
	Limit      int      `json:"limit,omitempty" jsonschema:"maximum number of results (default and maximum 20)"`
	Categories []string `json:"categories,omitempty" jsonschema:"restrict results to these categories, e.g. crate, book, std"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput is a single ranked entry.
type SearchResultOutput struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Brief       string  `json:"brief,omitempty"`
	Path        string  `json:"path,omitempty"`
	Score       float64 `json:"score"`
	MatchType   string  `json:"match_type"`
	MatchedText string  `json:"matched_text,omitempty"`
	Annotation  string  `json:"annotation,omitempty"`
}

// DescribeEntryInput is the input schema for the describe_entry tool.
type DescribeEntryInput struct {
	ID string `json:"id" jsonschema:"the entry id returned by search"`
}

// EntryOutput is a full index entry.
type EntryOutput struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Aliases  []string `json:"aliases,omitempty"`
	Category string   `json:"category"`
	Brief    string   `json:"brief,omitempty"`
	Path     string   `json:"path,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Find documentation topics by name or alias, best match first",
	}, s.handleSearch)

	if s.ports.Index != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "describe_entry",
			Description: "Show every field of an index entry, including its aliases",
		}, s.handleDescribeEntry)
	}
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	opts := s.defaults
	if input.Limit > 0 {
		opts.Limit = input.Limit
	}
	if len(input.Categories) > 0 {
		opts.Categories = make([]domain.Category, len(input.Categories))
		for i, c := range input.Categories {
			opts.Categories[i] = domain.Category(c)
		}
	}

	results, err := s.ports.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		r := &results[i]
		output.Results[i] = SearchResultOutput{
			ID:          r.Entry.ID,
			Name:        r.Entry.Name,
			Category:    r.Entry.Category.String(),
			Brief:       r.Entry.Brief,
			Path:        r.Entry.Path,
			Score:       r.Score,
			MatchType:   r.MatchType.String(),
			MatchedText: r.MatchedText,
			Annotation:  domain.DescribeMatch(r.MatchedText),
		}
	}

	return nil, output, nil
}

// handleDescribeEntry handles the describe_entry tool invocation.
func (s *Server) handleDescribeEntry(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DescribeEntryInput,
) (*mcp.CallToolResult, EntryOutput, error) {
	if input.ID == "" {
		return nil, EntryOutput{}, fmt.Errorf("id: %w", domain.ErrInvalidInput)
	}

	entry, err := s.ports.Index.Get(ctx, input.ID)
	if err != nil {
		return nil, EntryOutput{}, err
	}
	return nil, toEntryOutput(entry), nil
}

func toEntryOutput(e *domain.IndexEntry) EntryOutput {
	return EntryOutput{
		ID:       e.ID,
		Name:     e.Name,
		Aliases:  e.Aliases,
		Category: e.Category.String(),
		Brief:    e.Brief,
		Path:     e.Path,
	}
}
