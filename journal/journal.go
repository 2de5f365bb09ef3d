// Package journal keeps a write-only audit trail of interface
// transition attempts in a local SQLite database.
//
// The journal is presentation-side memory: the lifecycle core never
// reads it back, so losing or disabling it changes nothing about how
// interfaces are managed. It exists for the `history` command.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/yllada/wirewarden/common"
	"github.com/yllada/wirewarden/vpn"
)

// Entry is one recorded transition attempt.
type Entry struct {
	ID        string
	At        time.Time
	Name      string
	Direction string
	OK        bool
	Message   string
	// Active is the comma-joined post-action interface set.
	Active string
}

// Journal is an append-only transition log backed by SQLite. It
// satisfies vpn.TransitionRecorder.
type Journal struct {
	db    *sql.DB
	limit int
}

// DefaultPath returns the default history database location.
func DefaultPath() (string, error) {
	dataDir, err := common.GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, common.HistoryFileName), nil
}

// Open opens (or creates) the journal at path, keeping at most limit
// rows. A limit of zero or less disables pruning.
func Open(path string, limit int) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create journal directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal db: %w", err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set journal db journal mode: %w", err)
	}
	if _, err := db.Exec(`PRAGMA busy_timeout = 5000`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set journal db busy timeout: %w", err)
	}
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS transitions (
	id TEXT PRIMARY KEY,
	at TEXT NOT NULL,
	name TEXT NOT NULL,
	direction TEXT NOT NULL,
	ok INTEGER NOT NULL,
	message TEXT NOT NULL,
	active TEXT NOT NULL
)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize transitions schema: %w", err)
	}

	return &Journal{db: db, limit: limit}, nil
}

// Close closes the underlying database. Safe on a nil journal.
func (j *Journal) Close() error {
	if j == nil || j.db == nil {
		return nil
	}
	return j.db.Close()
}

// Record appends one transition attempt and prunes the log to the
// configured limit.
func (j *Journal) Record(ctx context.Context, res vpn.TransitionResult) error {
	okInt := 0
	if res.OK {
		okInt = 1
	}

	_, err := j.db.ExecContext(ctx,
		`INSERT INTO transitions (id, at, name, direction, ok, message, active)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		res.ID,
		time.Now().UTC().Format(time.RFC3339),
		res.Name,
		res.Direction.String(),
		okInt,
		res.Message,
		strings.Join(res.Active.Sorted(), ","),
	)
	if err != nil {
		return fmt.Errorf("record transition: %w", err)
	}

	if j.limit > 0 {
		if _, err := j.db.ExecContext(ctx,
			`DELETE FROM transitions WHERE id NOT IN (
				SELECT id FROM transitions ORDER BY at DESC, id DESC LIMIT ?
			)`, j.limit); err != nil {
			return fmt.Errorf("prune transitions: %w", err)
		}
	}
	return nil
}

// Recent returns the n most recent entries, newest first.
func (j *Journal) Recent(ctx context.Context, n int) ([]Entry, error) {
	rows, err := j.db.QueryContext(ctx,
		`SELECT id, at, name, direction, ok, message, active
		 FROM transitions ORDER BY at DESC, id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("list transitions: %w", err)
	}
	defer rows.Close()

	out := make([]Entry, 0, n)
	for rows.Next() {
		var e Entry
		var at string
		var ok int
		if err := rows.Scan(&e.ID, &at, &e.Name, &e.Direction, &ok, &e.Message, &e.Active); err != nil {
			return nil, fmt.Errorf("scan transition row: %w", err)
		}
		e.OK = ok != 0
		if t, err := time.Parse(time.RFC3339, at); err == nil {
			e.At = t
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transition rows: %w", err)
	}
	return out, nil
}
