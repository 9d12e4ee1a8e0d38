// Package indexfile provides a file-backed driven.IndexSource.
//
// The index is a pre-built array of records in JSON or YAML:
//
//	[
//	  {"id": 1, "name": "tokio", "aliases": ["async runtime"], "category": "crate",
//	   "brief": "An asynchronous runtime", "path": "crates/tokio.html"},
//	  {"id": "std-vec", "searchable": "Vec|vector|growable array", "category": "std"}
//	]
//
// Aliases may be given as an "aliases" array or through the pipe-encoded
// "searchable" field used by generated site indexes, whose first segment is
// the entry name. Ids may be strings or numbers.
//
// The file is read once and cached. Watch reloads it when it changes on
// disk; a failed reload keeps the previous snapshot.
package indexfile
