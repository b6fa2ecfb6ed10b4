// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists the aggregated symbols of a scan in a SQLite
// database so they can be looked up by name and exported.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/ekl-completions/internal/aliases"
	"github.com/pdiddy/ekl-completions/internal/extract"
	"github.com/pdiddy/ekl-completions/internal/render"
	"github.com/pdiddy/ekl-completions/pkg/types"
)

const (
	dbFile            = "symbols.db"
	defaultMaxResults = 20
)

// Store manages the catalog database.
type Store struct {
	db         *sql.DB
	dir        string
	maxResults int
}

// NewStore opens or creates the catalog at cfg.Dir/symbols.db and creates
// the schema if it does not exist.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating catalog directory %s", cfg.Dir)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{
		db:         db,
		dir:        cfg.Dir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "creating schema")
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS symbols (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL,
			name TEXT NOT NULL,
			arity INTEGER NOT NULL,
			params TEXT NOT NULL,
			return_type TEXT,
			trigger_text TEXT NOT NULL,
			contents TEXT NOT NULL,
			UNIQUE(kind, name, arity)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_symbols_name ON symbols(name)`,
		`CREATE TABLE IF NOT EXISTS ingest_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ingested_at TEXT NOT NULL,
			functions INTEGER NOT NULL,
			types INTEGER NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return errors.Wrap(err, "executing schema statement")
		}
	}
	return nil
}

// IngestSummary holds counts from a catalog ingest.
type IngestSummary struct {
	Functions int
	Types     int
	Replaced  int
}

// Total returns the number of symbols written.
func (s IngestSummary) Total() int {
	return s.Functions + s.Types
}

// Ingest replaces the catalog contents with coll in a single transaction.
// Triggers and snippets are rendered with table so lookups show exactly what
// the completions file contains.
func (s *Store) Ingest(ctx context.Context, coll *extract.Collection, table aliases.Table, w io.Writer) (IngestSummary, error) {
	if table == nil {
		table = aliases.Default()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return IngestSummary{}, errors.Wrap(err, "beginning transaction")
	}
	defer tx.Rollback()

	var summary IngestSummary
	res, err := tx.ExecContext(ctx, `DELETE FROM symbols`)
	if err != nil {
		return IngestSummary{}, errors.Wrap(err, "clearing symbols")
	}
	if n, err := res.RowsAffected(); err == nil {
		summary.Replaced = int(n)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO symbols (kind, name, arity, params, return_type, trigger_text, contents)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return IngestSummary{}, errors.Wrap(err, "preparing insert")
	}
	defer stmt.Close()

	for _, f := range coll.Functions() {
		c := render.FunctionCompletion(f, table)
		paramsJSON, _ := json.Marshal(f.Params)
		if _, err := stmt.ExecContext(ctx,
			string(extract.KindFunction), f.Name, f.Arity(), string(paramsJSON),
			nullable(f.Return), c.Trigger, c.Contents,
		); err != nil {
			return IngestSummary{}, errors.Wrapf(err, "inserting function %s/%d", f.Name, f.Arity())
		}
		summary.Functions++
	}

	for _, name := range coll.Types() {
		c := render.TypeCompletion(name)
		if _, err := stmt.ExecContext(ctx,
			string(extract.KindType), name, 0, "[]", nil, c.Trigger, c.Contents,
		); err != nil {
			return IngestSummary{}, errors.Wrapf(err, "inserting type %s", name)
		}
		summary.Types++
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO ingest_runs (ingested_at, functions, types) VALUES (?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339Nano), summary.Functions, summary.Types,
	); err != nil {
		return IngestSummary{}, errors.Wrap(err, "recording ingest run")
	}

	if err := tx.Commit(); err != nil {
		return IngestSummary{}, errors.Wrap(err, "committing catalog")
	}

	fmt.Fprintf(w, "catalog: %d functions, %d types (replaced %d)\n",
		summary.Functions, summary.Types, summary.Replaced)
	return summary, nil
}

// LastIngest returns the time of the most recent ingest, or the zero time if
// the catalog has never been populated.
func (s *Store) LastIngest(ctx context.Context) (time.Time, error) {
	var ts sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT ingested_at FROM ingest_runs ORDER BY id DESC LIMIT 1`,
	).Scan(&ts)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && !ts.Valid) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, errors.Wrap(err, "reading ingest history")
	}
	return time.Parse(time.RFC3339Nano, ts.String)
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
