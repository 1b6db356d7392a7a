package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"mmexport/internal/core"
)

// cocoaEpoch is 2001-01-01T00:00:00Z in Unix seconds, the origin of ZDATE.
const cocoaEpoch = 978307200

// FixtureExpense is a ZINOUTCOME row written by a Fixture.
type FixtureExpense struct {
	UID      string
	Date     core.Date
	At       time.Time // ZDATE; defaults to noon of Date
	Category string    // ZCATEGORY.ZUID
	Asset    string    // ZASSET.ZUID
	Comment  string
	Amount   float64
	Deleted  bool
	Income   bool
}

// Fixture writes Money Manager shaped data into a new database file. It
// backs the sample command and the tests; backups given to Open are never
// written.
type Fixture struct {
	db *sql.DB
}

func NewFixture(path string) (*Fixture, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create fixture directory: %w", err)
	}
	if err := RunMigrations(path); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open fixture database: %w", err)
	}
	return &Fixture{db: db}, nil
}

func (f *Fixture) AddAsset(ctx context.Context, uid, name string) error {
	_, err := f.db.ExecContext(ctx, "INSERT INTO ZASSET (ZUID, ZNICNAME) VALUES (?, ?)", uid, name)
	if err != nil {
		return fmt.Errorf("insert asset %s: %w", uid, err)
	}
	return nil
}

func (f *Fixture) AddCategory(ctx context.Context, uid, name string) error {
	_, err := f.db.ExecContext(ctx, "INSERT INTO ZCATEGORY (ZUID, ZNAME) VALUES (?, ?)", uid, name)
	if err != nil {
		return fmt.Errorf("insert category %s: %w", uid, err)
	}
	return nil
}

func (f *Fixture) AddExpense(ctx context.Context, e FixtureExpense) error {
	at := e.At
	if at.IsZero() {
		at = e.Date.Add(12 * time.Hour)
	}
	deleted := 0
	if e.Deleted {
		deleted = 1
	}
	doType := typeExpense
	if e.Income {
		doType = 0
	}

	_, err := f.db.ExecContext(ctx, `INSERT INTO ZINOUTCOME
		(ZUID, ZDATE, ZUTIME, ZTXDATESTR, ZCONTENT, ZAMOUNT, ZISDEL, ZDO_TYPE, ZASSETUID, ZCATEGORYUID)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.UID,
		float64(at.Unix()-cocoaEpoch),
		at.UnixMilli(),
		e.Date.String(),
		e.Comment,
		e.Amount,
		deleted,
		doType,
		e.Asset,
		e.Category,
	)
	if err != nil {
		return fmt.Errorf("insert expense %s: %w", e.UID, err)
	}
	return nil
}

func (f *Fixture) Close() error {
	return f.db.Close()
}
