// Package journal keeps a queryable log of battle events in an in-memory
// SQLite database. Nothing is written to disk; the journal lives and dies
// with the process.
package journal

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/hex-tactics/internal/engine"
)

// Journal wraps the in-memory SQLite connection.
type Journal struct {
	conn *sqlx.DB
}

// Open creates an empty in-memory journal.
func Open() (*Journal, error) {
	conn, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	// Each connection to ":memory:" is its own database; pin the pool to one.
	conn.SetMaxOpenConns(1)

	j := &Journal{conn: conn}
	if err := j.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return j, nil
}

// Close releases the database; all journal contents are discarded.
func (j *Journal) Close() error {
	return j.conn.Close()
}

func (j *Journal) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		round INTEGER NOT NULL,
		player INTEGER NOT NULL,
		category TEXT NOT NULL,
		description TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS match_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_round ON events(round);
	CREATE INDEX IF NOT EXISTS idx_events_category ON events(category);
	`
	_, err := j.conn.Exec(schema)
	return err
}

// SaveEvents appends events in a single transaction.
func (j *Journal) SaveEvents(events []engine.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := j.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`INSERT INTO events (round, player, category, description) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range events {
		if _, err := stmt.Exec(e.Round, e.Player, e.Category, e.Description); err != nil {
			return fmt.Errorf("insert event (round %d): %w", e.Round, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	slog.Debug("journal events saved", "count", len(events))
	return nil
}

// RecentEvents returns the most recent events, newest first.
func (j *Journal) RecentEvents(limit int) ([]engine.Event, error) {
	var events []engine.Event
	err := j.conn.Select(&events,
		"SELECT round, player, category, description FROM events ORDER BY id DESC LIMIT ?",
		limit,
	)
	return events, err
}

// EventsInRound returns every event of a round in insertion order.
func (j *Journal) EventsInRound(round int) ([]engine.Event, error) {
	var events []engine.Event
	err := j.conn.Select(&events,
		"SELECT round, player, category, description FROM events WHERE round = ? ORDER BY id",
		round,
	)
	return events, err
}

// CountByCategory tallies events per category.
func (j *Journal) CountByCategory() (map[string]int, error) {
	var rows []struct {
		Category string `db:"category"`
		N        int    `db:"n"`
	}
	if err := j.conn.Select(&rows, "SELECT category, COUNT(*) AS n FROM events GROUP BY category"); err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.Category] = r.N
	}
	return counts, nil
}

// SaveMeta stores a key-value pair of match metadata.
func (j *Journal) SaveMeta(key, value string) error {
	_, err := j.conn.Exec(
		"INSERT OR REPLACE INTO match_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (j *Journal) GetMeta(key string) (string, error) {
	var value string
	err := j.conn.Get(&value, "SELECT value FROM match_meta WHERE key = ?", key)
	return value, err
}
