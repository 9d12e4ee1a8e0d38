package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/topicsearch/internal/core/domain"
	"github.com/custodia-labs/topicsearch/internal/core/ports/driven"
	"github.com/custodia-labs/topicsearch/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyIndexPath      = "index.path"
	KeyIndexWatch     = "index.watch"
	KeySearchLimit    = "search.limit"
	KeyMinQueryLength = "search.min_query_length"
	KeyCategories     = "search.categories"
	KeyMCPPort        = "mcp.port"
	KeyLogVerbose     = "log.verbose"
)

var settingKeys = []string{
	KeyIndexPath,
	KeyIndexWatch,
	KeySearchLimit,
	KeyMinQueryLength,
	KeyCategories,
	KeyMCPPort,
	KeyLogVerbose,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.Settings, error) {
	settings := s.load()
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", s.configStore.Path(), err)
	}
	return settings, nil
}

// load reads settings without validating them, so Set can repair a bad value.
func (s *SettingsService) load() *domain.Settings {
	defaults := domain.DefaultSettings()

	return &domain.Settings{
		Index: domain.IndexSettings{
			Path:  s.configStore.GetString(KeyIndexPath),
			Watch: s.getBool(KeyIndexWatch, defaults.Index.Watch),
		},
		Search: domain.SearchSettings{
			Limit:          s.getInt(KeySearchLimit, defaults.Search.Limit),
			MinQueryLength: s.getInt(KeyMinQueryLength, defaults.Search.MinQueryLength),
			Categories:     toCategories(s.configStore.GetStringSlice(KeyCategories)),
		},
		MCP: domain.MCPSettings{
			Port: s.getInt(KeyMCPPort, defaults.MCP.Port),
		},
		Log: domain.LogSettings{
			Verbose: s.getBool(KeyLogVerbose, defaults.Log.Verbose),
		},
	}
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{KeyIndexPath, settings.Index.Path},
		{KeyIndexWatch, settings.Index.Watch},
		{KeySearchLimit, settings.Search.Limit},
		{KeyMinQueryLength, settings.Search.MinQueryLength},
		{KeyCategories, fromCategories(settings.Search.Categories)},
		{KeyMCPPort, settings.MCP.Port},
		{KeyLogVerbose, settings.Log.Verbose},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set updates a single setting, parsing value for the key's type.
func (s *SettingsService) Set(key, value string) error {
	settings := s.load()

	var err error
	switch key {
	case KeyIndexPath:
		settings.Index.Path = value
	case KeyIndexWatch:
		settings.Index.Watch, err = strconv.ParseBool(value)
	case KeySearchLimit:
		settings.Search.Limit, err = strconv.Atoi(value)
	case KeyMinQueryLength:
		settings.Search.MinQueryLength, err = strconv.Atoi(value)
	case KeyCategories:
		settings.Search.Categories = ParseCategories(value)
	case KeyMCPPort:
		settings.MCP.Port, err = strconv.Atoi(value)
	case KeyLogVerbose:
		settings.Log.Verbose, err = strconv.ParseBool(value)
	default:
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}
	if err != nil {
		return fmt.Errorf("setting %s=%q: %w", key, value, domain.ErrInvalidInput)
	}

	return s.Save(settings)
}

// Keys returns the recognised config keys.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	copy(keys, settingKeys)
	return keys
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

// ParseCategories splits a comma-separated category list, dropping blanks.
func ParseCategories(value string) []domain.Category {
	var cats []domain.Category
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			cats = append(cats, domain.Category(part))
		}
	}
	return cats
}

func toCategories(values []string) []domain.Category {
	if len(values) == 0 {
		return nil
	}
	cats := make([]domain.Category, len(values))
	for i, v := range values {
		cats[i] = domain.Category(v)
	}
	return cats
}

func fromCategories(cats []domain.Category) []string {
	values := make([]string, len(cats))
	for i, c := range cats {
		values[i] = c.String()
	}
	return values
}
