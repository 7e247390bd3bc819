// Package journal records navigation events to a sqlite database. The
// engine itself never persists anything; this is an observer that hosts can
// attach when they want a replayable record of what navigation did — bug
// reports, input-feel tuning, accessibility audits.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Dicklesworthstone/navkit/pkg/focus"
)

// DB is an open event journal.
type DB struct {
	db *sql.DB
}

// Entry is one recorded event.
type Entry struct {
	ID        int64
	Tick      int64
	Kind      string
	From      int
	To        int
	Move      string
	Reason    string
	Request   string
	CreatedAt time.Time
}

// Open opens or creates the journal at path.
func Open(path string) (*DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create journal directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	j := &DB{db: db}
	if err := j.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init journal schema: %w", err)
	}
	return j, nil
}

// Close closes the underlying database.
func (j *DB) Close() error {
	return j.db.Close()
}

func (j *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS nav_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		tick INTEGER NOT NULL,
		kind TEXT NOT NULL,
		from_elem INTEGER NOT NULL,
		to_elem INTEGER NOT NULL,
		move TEXT NOT NULL DEFAULT '',
		reason TEXT NOT NULL DEFAULT '',
		request TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_nav_events_tick ON nav_events(tick);
	`
	_, err := j.db.Exec(schema)
	return err
}

// Record appends one event resolved on the given tick.
func (j *DB) Record(tick int64, ev focus.Event) error {
	var move, reason string
	switch ev.Kind {
	case focus.FocusChanged:
		move = ev.Move.String()
	case focus.NoChange:
		reason = ev.Reason.String()
	}
	_, err := j.db.Exec(`
		INSERT INTO nav_events (tick, kind, from_elem, to_elem, move, reason, request, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, tick, ev.Kind.String(), int(ev.From), int(ev.To), move, reason, ev.Request.String(), time.Now())
	if err != nil {
		return fmt.Errorf("record event: %w", err)
	}
	return nil
}

// Events returns every recorded entry in insertion order.
func (j *DB) Events() ([]Entry, error) {
	rows, err := j.db.Query(`
		SELECT id, tick, kind, from_elem, to_elem, move, reason, request, created_at
		FROM nav_events
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Tick, &e.Kind, &e.From, &e.To, &e.Move, &e.Reason, &e.Request, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
