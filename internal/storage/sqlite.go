// Package storage provides SQLite-based persistence for player profiles.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when a user has no stored profile.
var ErrNotFound = errors.New("storage: profile not found")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Profile holds a player's lane key bindings.
type Profile struct {
	User      string
	LaneKeys  []string
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS profiles (
			user TEXT PRIMARY KEY,
			lane_keys TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveProfile stores the lane keys for user, replacing any previous binding.
// Keys are expected to be validated by the caller.
func (s *Store) SaveProfile(user string, keys []string) error {
	if user == "" {
		return errors.New("storage: empty user name")
	}
	for _, k := range keys {
		if k == "" || strings.Contains(k, ",") {
			return fmt.Errorf("storage: cannot store key %q", k)
		}
	}

	_, err := s.db.Exec(
		`INSERT INTO profiles (user, lane_keys, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(user) DO UPDATE SET
			lane_keys = excluded.lane_keys,
			updated_at = excluded.updated_at`,
		user, strings.Join(keys, ","),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save profile: %w", err)
	}
	return nil
}

// Profile returns the stored profile for user, or ErrNotFound.
func (s *Store) Profile(user string) (Profile, error) {
	row := s.db.QueryRow(
		"SELECT user, lane_keys, updated_at FROM profiles WHERE user = ?",
		user,
	)

	p, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, fmt.Errorf("storage: cannot query profile: %w", err)
	}
	return p, nil
}

// Profiles returns every stored profile ordered by user.
func (s *Store) Profiles() ([]Profile, error) {
	rows, err := s.db.Query("SELECT user, lane_keys, updated_at FROM profiles ORDER BY user")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return profiles, nil
}

// DeleteProfile removes the profile for user. Deleting a missing profile
// is not an error.
func (s *Store) DeleteProfile(user string) error {
	_, err := s.db.Exec("DELETE FROM profiles WHERE user = ?", user)
	if err != nil {
		return fmt.Errorf("storage: cannot delete profile: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProfile(sc scanner) (Profile, error) {
	var (
		p         Profile
		keys      string
		updatedAt any
	)
	if err := sc.Scan(&p.User, &keys, &updatedAt); err != nil {
		return Profile{}, err
	}
	p.LaneKeys = strings.Split(keys, ",")

	// Parse the datetime - handle both time.Time and string
	switch v := updatedAt.(type) {
	case time.Time:
		p.UpdatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			p.UpdatedAt = parsed
		}
	}
	return p, nil
}
