// Package migrations contains all database migration files.
// Each migration file uses init() to call migration.Register().
// This package is blank-imported by cmd/quickbites/main.go so all
// migrations are registered at CLI startup.
package migrations
