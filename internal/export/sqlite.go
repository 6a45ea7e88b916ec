// Package export persists decoded name samples to SQLite databases and JSON
// Lines files.
package export

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/FocuswithJustin/namecorpus/core/errors"
	"github.com/FocuswithJustin/namecorpus/core/sample"
	"github.com/FocuswithJustin/namecorpus/core/sqlite"
	"github.com/FocuswithJustin/namecorpus/core/stream"
	"github.com/FocuswithJustin/namecorpus/internal/logging"
)

//go:embed schema.sql
var schemaSQL string

// Run describes one export into a database.
type Run struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Format    string    `json:"format"`
	CreatedAt time.Time `json:"created_at"`
	Samples   int       `json:"samples"`
	Spans     int       `json:"spans"`
}

// SQLiteSink writes sample streams into a SQLite database. Each Write is one
// run, committed atomically.
type SQLiteSink struct {
	db       *sql.DB
	path     string
	logger   *slog.Logger
	readOnly bool
}

// OpenSQLite opens (creating if needed) the database at path and initializes
// the schema. Use ":memory:" for an in-memory database.
func OpenSQLite(path string, logger *slog.Logger) (*SQLiteSink, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, err
	}
	// ":memory:" databases exist per connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &SQLiteSink{db: db, path: path, logger: logger}, nil
}

// OpenSQLiteReadOnly opens an existing export database for inspection with
// Runs and Samples. Write fails on a read-only sink.
func OpenSQLiteReadOnly(path string, logger *slog.Logger) (*SQLiteSink, error) {
	db, err := sqlite.OpenReadOnly(path)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &SQLiteSink{db: db, path: path, logger: logger, readOnly: true}, nil
}

// Close closes the database connection.
func (s *SQLiteSink) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Write drains samples into a new run and returns it. Nothing is stored if
// reading the stream fails or ctx is cancelled. samples is not closed.
func (s *SQLiteSink) Write(ctx context.Context, source, format string, samples stream.Stream[sample.NameSample]) (*Run, error) {
	if s.readOnly {
		return nil, errors.NewUnsupported("write", s.path+" is open read-only")
	}
	start := time.Now()
	run := &Run{
		ID:        uuid.New().String(),
		Source:    source,
		Format:    format,
		CreatedAt: start.UTC().Truncate(time.Second),
	}
	ctx = logging.WithRunID(ctx, run.ID)
	s.logger.Debug("export started", "run_id", run.ID, "source", source, "target", s.path)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, source, format, created_at) VALUES (?, ?, ?, ?)`,
		run.ID, run.Source, run.Format, run.CreatedAt.Format(time.RFC3339),
	); err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}

	sampleStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO samples (run_id, seq, clear_adaptive, tokens) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("prepare statement: %w", err)
	}
	defer func() { _ = sampleStmt.Close() }()

	spanStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO spans (run_id, seq, start_token, end_token, label) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("prepare statement: %w", err)
	}
	defer func() { _ = spanStmt.Close() }()

	err = stream.ForEach(samples, func(ns sample.NameSample) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		tokens, err := json.Marshal(ns.Tokens)
		if err != nil {
			return err
		}
		seq := run.Samples
		if _, err := sampleStmt.ExecContext(ctx, run.ID, seq, ns.ClearAdaptiveData, string(tokens)); err != nil {
			return fmt.Errorf("insert sample %d: %w", seq, err)
		}
		for _, span := range ns.Names {
			if _, err := spanStmt.ExecContext(ctx, run.ID, seq, span.Start, span.End, span.Type); err != nil {
				return fmt.Errorf("insert span for sample %d: %w", seq, err)
			}
			run.Spans++
		}
		run.Samples++
		return nil
	})
	if err != nil {
		logging.ErrorContext(ctx, "export aborted", "target", s.path, "samples", run.Samples, "error", err)
		return nil, err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE runs SET samples = ?, spans = ? WHERE id = ?`,
		run.Samples, run.Spans, run.ID,
	); err != nil {
		return nil, fmt.Errorf("update run: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	logging.ExportCompleted(ctx, s.path, run.Samples, time.Since(start), "spans", run.Spans)
	return run, nil
}

// Runs lists stored runs, oldest first.
func (s *SQLiteSink) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, format, created_at, samples, spans FROM runs ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var created string
		if err := rows.Scan(&r.ID, &r.Source, &r.Format, &created, &r.Samples, &r.Spans); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if r.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
			return nil, fmt.Errorf("parse run time: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Samples returns a restartable stream over the samples of one run, in the
// order they were written.
func (s *SQLiteSink) Samples(ctx context.Context, runID string) (stream.Stream[sample.NameSample], error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT seq, clear_adaptive, tokens FROM samples WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("query samples: %w", err)
	}

	var out []sample.NameSample
	index := make(map[int]int)
	for rows.Next() {
		var seq int
		var clear bool
		var tokens string
		if err := rows.Scan(&seq, &clear, &tokens); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan sample: %w", err)
		}
		var ns sample.NameSample
		if err := json.Unmarshal([]byte(tokens), &ns.Tokens); err != nil {
			rows.Close()
			return nil, fmt.Errorf("decode tokens of sample %d: %w", seq, err)
		}
		ns.ClearAdaptiveData = clear
		index[seq] = len(out)
		out = append(out, ns)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	spanRows, err := s.db.QueryContext(ctx,
		`SELECT seq, start_token, end_token, label FROM spans WHERE run_id = ? ORDER BY seq, rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("query spans: %w", err)
	}
	defer spanRows.Close()
	for spanRows.Next() {
		var seq int
		var span sample.Span
		if err := spanRows.Scan(&seq, &span.Start, &span.End, &span.Type); err != nil {
			return nil, fmt.Errorf("scan span: %w", err)
		}
		if i, ok := index[seq]; ok {
			out[i].Names = append(out[i].Names, span)
		}
	}
	if err := spanRows.Err(); err != nil {
		return nil, err
	}
	return stream.FromSlice(out), nil
}
