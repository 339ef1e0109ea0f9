package recorder

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"HomeworkSentinel/internal/model"
)

// SQLiteRecorder persists cycle history to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	log *zap.Logger
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, log *zap.Logger) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so ad-hoc reads don't block the poller's writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info("sqlite recorder opened", zap.String("path", dbPath))
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS cycles (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			outcome       TEXT NOT NULL,
			homework_name TEXT,
			status        TEXT,
			message       TEXT,
			error_kind    TEXT,
			error_text    TEXT,
			cursor        INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_cycles_ts ON cycles(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_cycles_outcome ON cycles(outcome, timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:32], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordCycle(rec *model.CycleRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO cycles
		(timestamp, outcome, homework_name, status, message, error_kind, error_text, cursor)
		VALUES (?,?,?,?,?,?,?,?)`,
		rec.At.Unix(), string(rec.Outcome), rec.HomeworkName, rec.Status,
		rec.Message, rec.ErrorKind, rec.ErrorText, rec.Cursor,
	)
	return err
}

func (r *SQLiteRecorder) Summarize(since time.Time) (*model.Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(
		`SELECT outcome, COUNT(*) FROM cycles WHERE timestamp >= ? GROUP BY outcome`,
		since.Unix(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sum := &model.Summary{From: since}
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, err
		}
		sum.Cycles += n
		switch model.CycleOutcome(outcome) {
		case model.OutcomeNotified:
			sum.Notified = n
		case model.OutcomeIdle:
			sum.Idle = n
		case model.OutcomeFailed:
			sum.Failed = n
		}
	}
	return sum, rows.Err()
}

func (r *SQLiteRecorder) LastChange() (*model.CycleRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row := r.db.QueryRow(
		`SELECT timestamp, homework_name, status, message, cursor
		 FROM cycles WHERE outcome = ? ORDER BY timestamp DESC, id DESC LIMIT 1`,
		string(model.OutcomeNotified),
	)
	var ts int64
	rec := &model.CycleRecord{Outcome: model.OutcomeNotified}
	if err := row.Scan(&ts, &rec.HomeworkName, &rec.Status, &rec.Message, &rec.Cursor); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	rec.At = time.Unix(ts, 0)
	return rec, nil
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info("closing sqlite recorder")
	return r.db.Close()
}
