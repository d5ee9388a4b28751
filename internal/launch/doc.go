// Package launch holds the launch record model and the pure functions that
// derive chart data from it.
//
// Everything here is a deterministic function of the loaded record collection
// and the caller's Selection. Nothing is cached and records are never mutated,
// so a single loaded slice can be shared by any number of concurrent readers.
package launch
