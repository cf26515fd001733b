package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tabuddy/tabuddy/internal/domain/buddy"
	"github.com/tabuddy/tabuddy/internal/infrastructure/persistence/dto"
)

const savedAtKey = "saved_at"

// Store implements buddy.Repository on PostgreSQL.
type Store struct {
	conn *Connection
}

// NewStore creates a store over an open connection. Run the Migrator first.
func NewStore(conn *Connection) *Store {
	return &Store{conn: conn}
}

// ══════════════════════════════════════════════════════════════════════════════
// LOAD
// ══════════════════════════════════════════════════════════════════════════════

// Load implements buddy.Repository.
func (s *Store) Load(ctx context.Context) (*buddy.Buddy, error) {
	var savedAt string
	err := s.conn.QueryRow(ctx, `SELECT value FROM tab_meta WHERE key = $1`, savedAtKey).Scan(&savedAt)
	if IsNoRows(err) {
		return nil, buddy.ErrNoData
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: read metadata: %w", err)
	}

	rows, err := s.readRows(ctx)
	if err != nil {
		return nil, err
	}

	b, err := rows.Assemble().ToDomain()
	if err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}
	return b, nil
}

func (s *Store) readRows(ctx context.Context) (dto.Rows, error) {
	var r dto.Rows
	var err error

	r.Modules, err = collect(ctx, s.conn,
		`SELECT position, name FROM modules ORDER BY position`,
		func(row pgx.CollectableRow) (dto.ModuleRow, error) {
			var m dto.ModuleRow
			err := row.Scan(&m.Position, &m.Name)
			return m, err
		})
	if err != nil {
		return r, fmt.Errorf("postgres: read modules: %w", err)
	}

	r.Students, err = collect(ctx, s.conn,
		`SELECT module, position, student_id, name, email, tele_handle FROM students ORDER BY module, position`,
		func(row pgx.CollectableRow) (dto.StudentRow, error) {
			var st dto.StudentRow
			err := row.Scan(&st.Module, &st.Position, &st.StudentID, &st.Name, &st.Email, &st.TeleHandle)
			return st, err
		})
	if err != nil {
		return r, fmt.Errorf("postgres: read students: %w", err)
	}

	r.Tasks, err = collect(ctx, s.conn,
		`SELECT module, position, task_id, name, deadline FROM tasks ORDER BY module, position`,
		func(row pgx.CollectableRow) (dto.TaskRow, error) {
			var t dto.TaskRow
			err := row.Scan(&t.Module, &t.Position, &t.TaskID, &t.Name, &t.Deadline)
			return t, err
		})
	if err != nil {
		return r, fmt.Errorf("postgres: read tasks: %w", err)
	}

	r.Completions, err = collect(ctx, s.conn,
		`SELECT module, student_id, task_id FROM completions`,
		func(row pgx.CollectableRow) (dto.CompletionRow, error) {
			var c dto.CompletionRow
			err := row.Scan(&c.Module, &c.StudentID, &c.TaskID)
			return c, err
		})
	if err != nil {
		return r, fmt.Errorf("postgres: read completions: %w", err)
	}

	return r, nil
}

func collect[T any](ctx context.Context, q Querier, sql string, fn pgx.RowToFunc[T]) ([]T, error) {
	rows, err := q.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, fn)
}

// ══════════════════════════════════════════════════════════════════════════════
// SAVE
// ══════════════════════════════════════════════════════════════════════════════

// Save implements buddy.Repository. The previous contents are replaced in one transaction.
func (s *Store) Save(ctx context.Context, b *buddy.Buddy) error {
	rows := dto.FromDomain(b).Flatten()

	return s.conn.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `TRUNCATE completions, students, tasks, modules`); err != nil {
			return fmt.Errorf("postgres: clear tables: %w", err)
		}

		batch := &pgx.Batch{}
		for _, m := range rows.Modules {
			batch.Queue(`INSERT INTO modules (name, position) VALUES ($1, $2)`, m.Name, m.Position)
		}
		for _, st := range rows.Students {
			batch.Queue(`INSERT INTO students (module, position, student_id, name, email, tele_handle)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				st.Module, st.Position, st.StudentID, st.Name, st.Email, st.TeleHandle)
		}
		for _, t := range rows.Tasks {
			batch.Queue(`INSERT INTO tasks (module, position, task_id, name, deadline) VALUES ($1, $2, $3, $4, $5)`,
				t.Module, t.Position, t.TaskID, t.Name, t.Deadline)
		}
		for _, c := range rows.Completions {
			batch.Queue(`INSERT INTO completions (module, student_id, task_id) VALUES ($1, $2, $3)`,
				c.Module, c.StudentID, c.TaskID)
		}
		batch.Queue(`INSERT INTO tab_meta (key, value) VALUES ($1, $2)
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
			savedAtKey, time.Now().UTC().Format(time.RFC3339Nano))

		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			if IsUniqueViolation(err) || IsForeignKeyViolation(err) {
				return fmt.Errorf("postgres: inconsistent data: %w", err)
			}
			return fmt.Errorf("postgres: write rows: %w", err)
		}
		return nil
	})
}

var _ buddy.Repository = (*Store)(nil)
