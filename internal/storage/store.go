package storage

import (
	"context"
	"database/sql"
	"fmt"
	"iter"
	"log/slog"
	"net/url"
	"os"

	"github.com/stephenafamo/bob"

	"mmexport/internal/core"

	_ "modernc.org/sqlite"
)

// Tables every Money Manager backup must contain.
var requiredTables = []string{"ZINOUTCOME", "ZCATEGORY", "ZASSET"}

// Store reads expenses from a Money Manager backup. It never writes.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens the backup at path read-only. A missing or unreadable file, or
// one without the Money Manager tables, wraps core.ErrStoreAccess.
func Open(ctx context.Context, path string) (*Store, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrStoreAccess, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", core.ErrStoreAccess, path)
	}

	db, err := sql.Open("sqlite", readOnlyDSN(path))
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite database: %w", core.ErrStoreAccess, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: ping database: %w", core.ErrStoreAccess, err)
	}

	s := &Store{db: db, path: path}
	if err := s.checkSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// readOnlyDSN opens path in read-only mode and sets query_only on every
// connection the pool creates.
func readOnlyDSN(path string) string {
	u := url.URL{Scheme: "file", Opaque: path, RawQuery: "mode=ro&_pragma=query_only(1)"}
	return u.String()
}

func (s *Store) checkSchema(ctx context.Context) error {
	for _, table := range requiredTables {
		var name string
		err := s.db.QueryRowContext(ctx,
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		if err == sql.ErrNoRows {
			return fmt.Errorf("%w: missing table %s in %s", core.ErrStoreAccess, table, s.path)
		}
		if err != nil {
			return fmt.Errorf("%w: read schema: %w", core.ErrStoreAccess, err)
		}
	}
	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Expenses runs the expense query for r. The returned cursor streams rows
// from the database and must be closed.
func (s *Store) Expenses(ctx context.Context, r core.DateRange) (*Cursor, error) {
	query, args, err := bob.Build(ctx, expensesQuery(r))
	if err != nil {
		return nil, fmt.Errorf("build expenses query: %w", err)
	}

	slog.DebugContext(ctx, "Querying expenses", "range", r.String(), "sql", query)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: query expenses: %w", core.ErrStoreAccess, err)
	}
	return &Cursor{rows: rows}, nil
}

// Cursor is a single pass over the rows of an expense query.
type Cursor struct {
	rows *sql.Rows
	cur  core.RawRecord
	err  error
}

// Next advances to the next record. It returns false at the end of the rows
// or on error; check Err afterwards.
func (c *Cursor) Next() bool {
	if c.err != nil || !c.rows.Next() {
		return false
	}

	var created, txDate, category, comment, payment sql.NullString
	var rec core.RawRecord
	if err := c.rows.Scan(&created, &txDate, &category, &comment, &rec.Amount, &payment); err != nil {
		c.err = fmt.Errorf("%w: scan expense: %w", core.ErrStoreAccess, err)
		return false
	}
	rec.Created = created.String
	rec.TxDate = txDate.String
	rec.Category = category.String
	rec.Comment = comment.String
	rec.Payment = payment.String
	c.cur = rec
	return true
}

// Record returns the record Next moved to.
func (c *Cursor) Record() core.RawRecord {
	return c.cur
}

func (c *Cursor) Err() error {
	if c.err != nil {
		return c.err
	}
	if err := c.rows.Err(); err != nil {
		return fmt.Errorf("%w: iterate expenses: %w", core.ErrStoreAccess, err)
	}
	return nil
}

func (c *Cursor) Close() error {
	return c.rows.Close()
}

// All yields the remaining records, then the iteration error if any.
func (c *Cursor) All() iter.Seq2[core.RawRecord, error] {
	return func(yield func(core.RawRecord, error) bool) {
		for c.Next() {
			if !yield(c.Record(), nil) {
				return
			}
		}
		if err := c.Err(); err != nil {
			yield(core.RawRecord{}, err)
		}
	}
}
