package db

import (
	"log"
)

// createTables creates the necessary tables if they are missing.
func createTables() {
	createSignupsTableSQL := `
	CREATE TABLE IF NOT EXISTS signups (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		full_name TEXT NOT NULL,
		phone TEXT NOT NULL,
		shift_date TEXT NOT NULL,
		shift_time TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);`

	_, err := DB.Exec(createSignupsTableSQL)
	if err != nil {
		log.Fatalf("Failed to create signups table: %v", err)
	}
}
