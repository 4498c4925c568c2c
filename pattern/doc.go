// Package pattern holds the PatternTable, PatternWeight and GlobalStats
// types: the immutable statistical model a solve runs against. Nothing in
// this package mutates once a GlobalStats has been built; that is what
// lets it be shared by reference across an entire solve (and across
// parallel retries).
package pattern
