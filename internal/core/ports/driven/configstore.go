package driven

// ConfigStore is a flat key/value view over the persisted configuration.
// Keys use dot notation ("search.limit"); nested tables in the backing
// file map onto dotted keys.
type ConfigStore interface {
	// Get returns the raw value and whether the key is set.
	Get(key string) (any, bool)

	// GetString returns the value as a string, or "" if unset or not a string.
	GetString(key string) string

	// GetInt returns the value as an int, or 0 if unset or not a number.
	GetInt(key string) int

	// GetBool returns the value as a bool, or false if unset or not a bool.
	GetBool(key string) bool

	// GetStringSlice returns the value as a string slice, or nil.
	GetStringSlice(key string) []string

	// Set stores a value and persists it.
	Set(key string, value any) error

	// Save persists the current values.
	Save() error

	// Load rereads the values from storage.
	Load() error

	// Path returns where the values are stored.
	Path() string
}
