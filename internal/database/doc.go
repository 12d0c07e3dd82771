// Package database implements the PostgreSQL-backed repositories for
// content items and author profiles, plus connection and migration helpers.
package database
