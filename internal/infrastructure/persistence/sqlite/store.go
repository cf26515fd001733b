// Package sqlite stores the aggregate in a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/tabuddy/tabuddy/internal/domain/buddy"
	"github.com/tabuddy/tabuddy/internal/infrastructure/persistence/dto"
)

const schema = `
CREATE TABLE IF NOT EXISTS tab_meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS modules (
	name     TEXT PRIMARY KEY,
	position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS students (
	module      TEXT NOT NULL REFERENCES modules(name) ON DELETE CASCADE,
	position    INTEGER NOT NULL,
	student_id  TEXT NOT NULL,
	name        TEXT NOT NULL,
	email       TEXT NOT NULL,
	tele_handle TEXT NOT NULL,
	PRIMARY KEY (module, student_id)
);

CREATE TABLE IF NOT EXISTS tasks (
	module   TEXT NOT NULL REFERENCES modules(name) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	task_id  TEXT NOT NULL,
	name     TEXT NOT NULL,
	deadline TEXT NOT NULL,
	PRIMARY KEY (module, task_id)
);

CREATE TABLE IF NOT EXISTS completions (
	module     TEXT NOT NULL,
	student_id TEXT NOT NULL,
	task_id    TEXT NOT NULL,
	PRIMARY KEY (module, student_id, task_id),
	FOREIGN KEY (module, student_id) REFERENCES students(module, student_id) ON DELETE CASCADE,
	FOREIGN KEY (module, task_id) REFERENCES tasks(module, task_id) ON DELETE CASCADE
);
`

const savedAtKey = "saved_at"

// Store implements buddy.Repository on SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens (creating if needed) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Load implements buddy.Repository.
func (s *Store) Load(ctx context.Context) (*buddy.Buddy, error) {
	var savedAt string
	err := s.sqlDB.QueryRowContext(ctx, `SELECT value FROM tab_meta WHERE key = ?`, savedAtKey).Scan(&savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, buddy.ErrNoData
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: read metadata: %w", err)
	}

	rows, err := s.readRows(ctx)
	if err != nil {
		return nil, err
	}
	b, err := rows.Assemble().ToDomain()
	if err != nil {
		return nil, fmt.Errorf("sqlite: %w", err)
	}
	return b, nil
}

func (s *Store) readRows(ctx context.Context) (dto.Rows, error) {
	var r dto.Rows

	err := s.query(ctx, `SELECT position, name FROM modules ORDER BY position`, func(rs *sql.Rows) error {
		var m dto.ModuleRow
		if err := rs.Scan(&m.Position, &m.Name); err != nil {
			return err
		}
		r.Modules = append(r.Modules, m)
		return nil
	})
	if err != nil {
		return r, fmt.Errorf("sqlite: read modules: %w", err)
	}

	err = s.query(ctx, `SELECT module, position, student_id, name, email, tele_handle
		FROM students ORDER BY module, position`, func(rs *sql.Rows) error {
		var st dto.StudentRow
		if err := rs.Scan(&st.Module, &st.Position, &st.StudentID, &st.Name, &st.Email, &st.TeleHandle); err != nil {
			return err
		}
		r.Students = append(r.Students, st)
		return nil
	})
	if err != nil {
		return r, fmt.Errorf("sqlite: read students: %w", err)
	}

	err = s.query(ctx, `SELECT module, position, task_id, name, deadline
		FROM tasks ORDER BY module, position`, func(rs *sql.Rows) error {
		var t dto.TaskRow
		if err := rs.Scan(&t.Module, &t.Position, &t.TaskID, &t.Name, &t.Deadline); err != nil {
			return err
		}
		r.Tasks = append(r.Tasks, t)
		return nil
	})
	if err != nil {
		return r, fmt.Errorf("sqlite: read tasks: %w", err)
	}

	err = s.query(ctx, `SELECT module, student_id, task_id FROM completions`, func(rs *sql.Rows) error {
		var c dto.CompletionRow
		if err := rs.Scan(&c.Module, &c.StudentID, &c.TaskID); err != nil {
			return err
		}
		r.Completions = append(r.Completions, c)
		return nil
	})
	if err != nil {
		return r, fmt.Errorf("sqlite: read completions: %w", err)
	}
	return r, nil
}

func (s *Store) query(ctx context.Context, query string, scan func(*sql.Rows) error) error {
	rs, err := s.sqlDB.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rs.Close()
	for rs.Next() {
		if err := scan(rs); err != nil {
			return err
		}
	}
	return rs.Err()
}

// Save implements buddy.Repository. The previous contents are replaced in one transaction.
func (s *Store) Save(ctx context.Context, b *buddy.Buddy) (err error) {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, table := range []string{"completions", "students", "tasks", "modules"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("sqlite: clear %s: %w", table, err)
		}
	}

	rows := dto.FromDomain(b).Flatten()
	for _, m := range rows.Modules {
		if _, err = tx.ExecContext(ctx, `INSERT INTO modules (name, position) VALUES (?, ?)`, m.Name, m.Position); err != nil {
			return fmt.Errorf("sqlite: insert module %s: %w", m.Name, err)
		}
	}
	for _, st := range rows.Students {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO students (module, position, student_id, name, email, tele_handle) VALUES (?, ?, ?, ?, ?, ?)`,
			st.Module, st.Position, st.StudentID, st.Name, st.Email, st.TeleHandle); err != nil {
			return fmt.Errorf("sqlite: insert student %s: %w", st.StudentID, err)
		}
	}
	for _, t := range rows.Tasks {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO tasks (module, position, task_id, name, deadline) VALUES (?, ?, ?, ?, ?)`,
			t.Module, t.Position, t.TaskID, t.Name, t.Deadline); err != nil {
			return fmt.Errorf("sqlite: insert task %s: %w", t.TaskID, err)
		}
	}
	for _, c := range rows.Completions {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO completions (module, student_id, task_id) VALUES (?, ?, ?)`,
			c.Module, c.StudentID, c.TaskID); err != nil {
			return fmt.Errorf("sqlite: insert completion: %w", err)
		}
	}

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO tab_meta (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		savedAtKey, time.Now().UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("sqlite: write metadata: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit: %w", err)
	}
	return nil
}

var _ buddy.Repository = (*Store)(nil)
