// Package migrations contains the database migration files. Each file
// registers itself via init(), so importing this package (done by
// cmd/verandah) makes every migration available to the runner.
package migrations
