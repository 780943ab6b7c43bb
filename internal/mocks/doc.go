// Package mocks provides hand-rolled test doubles for the store and service
// interfaces. Each mock offers function fields for per-test behavior and a
// small in-memory default implementation.
package mocks
