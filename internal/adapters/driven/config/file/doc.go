// Package file persists topicsearch settings as a TOML file.
//
// The file lives at ~/.topicsearch/config.toml unless another directory is
// given. Tables are flattened to dot-notation keys on load and nested
// again on save, so
//
//	[search]
//	limit = 10
//
// is read and written through the key "search.limit".
package file
