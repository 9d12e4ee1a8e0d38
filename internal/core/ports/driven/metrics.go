package driven

import "time"

// SearchRecorder records search metrics.
type SearchRecorder interface {
	// ObserveSearch records one search call.
	ObserveSearch(elapsed time.Duration, results int, err error)

	// ObserveReload records one index (re)load.
	ObserveReload(entries int, err error)
}
