// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The matcher (Classify) and ranker (Rank) are pure functions over their
// arguments and hold no state; SearchService wraps them with index loading,
// logging and metrics.
package services
