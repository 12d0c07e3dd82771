// Package redis implements the Redis-backed engagement counter store.
// Counters are kept in one hash per content item and mutated with atomic
// increments so concurrent interaction events never lose updates.
package redis
