// Package sqlite implements the activity directory on top of SQLite via
// database/sql. The default DSN is ":memory:", which keeps state strictly
// process-lifetime like the memory backend while exercising a real SQL path.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/store"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS activities (
    name             TEXT PRIMARY KEY,
    description      TEXT NOT NULL,
    schedule         TEXT NOT NULL,
    max_participants INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS participants (
    id            TEXT PRIMARY KEY,
    activity_name TEXT NOT NULL REFERENCES activities(name) ON DELETE CASCADE,
    email         TEXT NOT NULL,
    position      INTEGER NOT NULL,
    UNIQUE (activity_name, email)
);
`

// Store persists the activity directory in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the SQLite directory at dsn, creates the schema, and seeds the
// given directory when the activities table is empty.
func Open(dsn string, seed map[string]model.Activity) (*Store, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("sqlite dsn is required")
	}
	if !strings.Contains(dsn, ":memory:") && !strings.Contains(dsn, "?") {
		dsn += "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// Every new connection to a ":memory:" DSN gets its own empty database,
	// so the pool must be pinned to a single connection.
	if strings.Contains(dsn, ":memory:") {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	s := &Store{sqlDB: sqlDB}
	if err := s.seed(seed); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("seed directory: %w", err)
	}
	return s, nil
}

// seed inserts the directory once; an already-populated database is left alone.
func (s *Store) seed(directory map[string]model.Activity) error {
	var count int
	if err := s.sqlDB.QueryRow(`SELECT COUNT(*) FROM activities`).Scan(&count); err != nil {
		return fmt.Errorf("count activities: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.sqlDB.Begin()
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for name, act := range directory {
		if _, err := tx.Exec(
			`INSERT INTO activities (name, description, schedule, max_participants)
			 VALUES (?, ?, ?, ?)`,
			name, act.Description, act.Schedule, act.MaxParticipants,
		); err != nil {
			return fmt.Errorf("insert activity %q: %w", name, err)
		}
		for i, email := range act.Participants {
			if _, err := tx.Exec(
				`INSERT INTO participants (id, activity_name, email, position)
				 VALUES (?, ?, ?, ?)`,
				uuid.New().String(), name, email, i+1,
			); err != nil {
				return fmt.Errorf("insert participant %q: %w", email, err)
			}
		}
	}
	return tx.Commit()
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// List returns every activity keyed by name, participants in insertion order.
func (s *Store) List(ctx context.Context) (map[string]model.Activity, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT name, description, schedule, max_participants FROM activities`,
	)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	out := make(map[string]model.Activity)
	for rows.Next() {
		var name string
		var act model.Activity
		if err := rows.Scan(&name, &act.Description, &act.Schedule, &act.MaxParticipants); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		act.Participants = make([]string, 0)
		out[name] = act
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	prows, err := s.sqlDB.QueryContext(ctx,
		`SELECT activity_name, email FROM participants ORDER BY activity_name, position`,
	)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer prows.Close()

	for prows.Next() {
		var name, email string
		if err := prows.Scan(&name, &email); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		act, ok := out[name]
		if !ok {
			continue
		}
		act.Participants = append(act.Participants, email)
		out[name] = act
	}
	return out, prows.Err()
}

// SignUp appends email to the activity inside a single transaction. SQLite's
// writer lock serializes the membership check with the insert, so concurrent
// duplicate signups cannot both succeed.
func (s *Store) SignUp(ctx context.Context, activity, email string) (err error) {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = s.activityExists(ctx, tx, activity); err != nil {
		return err
	}

	var dup int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM participants WHERE activity_name = ? AND email = ?`,
		activity, email,
	).Scan(&dup)
	if err != nil {
		return fmt.Errorf("check duplicate: %w", err)
	}
	if dup > 0 {
		err = store.ErrAlreadyRegistered
		return err
	}

	_, err = tx.Exec(
		`INSERT INTO participants (id, activity_name, email, position)
		 VALUES (?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM participants WHERE activity_name = ?))`,
		uuid.New().String(), activity, email, activity,
	)
	if err != nil {
		return fmt.Errorf("insert participant: %w", err)
	}
	return tx.Commit()
}

// Unregister removes email from the activity inside a single transaction.
func (s *Store) Unregister(ctx context.Context, activity, email string) (err error) {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = s.activityExists(ctx, tx, activity); err != nil {
		return err
	}

	res, err := tx.Exec(
		`DELETE FROM participants WHERE activity_name = ? AND email = ?`,
		activity, email,
	)
	if err != nil {
		return fmt.Errorf("delete participant: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		err = store.ErrNotRegistered
		return err
	}
	return tx.Commit()
}

func (s *Store) activityExists(ctx context.Context, tx *sql.Tx, activity string) error {
	var name string
	err := tx.QueryRowContext(ctx,
		`SELECT name FROM activities WHERE name = ?`, activity,
	).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrActivityNotFound
	}
	if err != nil {
		return fmt.Errorf("look up activity: %w", err)
	}
	return nil
}
