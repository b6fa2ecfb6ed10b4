// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/pdiddy/ekl-completions/internal/extract"
)

// QueryOptions holds parameters for catalog lookups.
type QueryOptions struct {
	// Prefix matches the start of the symbol name, case-sensitively.
	Prefix string

	// Kind restricts results to functions or types.
	Kind extract.EntryKind

	// Arity restricts results to functions with this parameter count. Nil means any.
	Arity *int

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// Record is one catalog row.
type Record struct {
	Kind     extract.EntryKind `json:"kind" yaml:"kind"`
	Name     string            `json:"name" yaml:"name"`
	Arity    int               `json:"arity" yaml:"arity"`
	Params   []string          `json:"params" yaml:"params"`
	Return   string            `json:"return,omitempty" yaml:"return,omitempty"`
	Trigger  string            `json:"trigger" yaml:"trigger"`
	Contents string            `json:"contents" yaml:"contents"`
}

// Lookup queries the catalog. Functions come before types; functions keep
// their scan order and types their sorted order.
func (s *Store) Lookup(ctx context.Context, opts QueryOptions) ([]Record, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(
		`SELECT kind, name, arity, params, return_type, trigger_text, contents
		FROM symbols
		WHERE 1=1`)

	if opts.Prefix != "" {
		qb.WriteString(` AND substr(name, 1, length(?)) = ?`)
		args = append(args, opts.Prefix, opts.Prefix)
	}

	if opts.Kind != "" {
		qb.WriteString(` AND kind = ?`)
		args = append(args, string(opts.Kind))
	}

	if opts.Arity != nil {
		qb.WriteString(` AND kind = ? AND arity = ?`)
		args = append(args, string(extract.KindFunction), *opts.Arity)
	}

	qb.WriteString(` ORDER BY kind, rowid LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, errors.Wrap(err, "querying catalog")
	}
	defer rows.Close()

	var results []Record
	for rows.Next() {
		var (
			r          Record
			kind       string
			paramsJSON string
			ret        sql.NullString
		)
		if err := rows.Scan(&kind, &r.Name, &r.Arity, &paramsJSON, &ret, &r.Trigger, &r.Contents); err != nil {
			return nil, errors.Wrap(err, "scanning row")
		}
		r.Kind = extract.EntryKind(kind)
		if err := json.Unmarshal([]byte(paramsJSON), &r.Params); err != nil {
			return nil, errors.Wrapf(err, "decoding params of %s", r.Name)
		}
		if ret.Valid {
			r.Return = ret.String
		}
		results = append(results, r)
	}

	return results, rows.Err()
}
