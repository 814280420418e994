package db

import (
	"errors"
	"os"
)

// OpenTestStore connects to TEST_DATABASE_URL and applies migrations.
func OpenTestStore(migrationsPath string) (Store, error) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		return nil, errors.New("TEST_DATABASE_URL environment variable is not set")
	}

	conn, err := Connect(dbURL)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(conn, migrationsPath); err != nil {
		conn.Close()
		return nil, err
	}

	if _, err := conn.Exec(`TRUNCATE prayer_adjustments, hijri_adjustments;`); err != nil {
		conn.Close()
		return nil, err
	}

	return NewStore(conn), nil
}
