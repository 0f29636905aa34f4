// Package store exports decoded reactions to SQLite.
//
// Every Open starts a new run identified by a UUID; bounds, matrices and
// listings written through the Store are tagged with it, so one database
// can hold the output of many extractions.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sskutnik/deBOXER/boxer"
	"github.com/sskutnik/deBOXER/matrix"
	"github.com/sskutnik/deBOXER/request"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// ErrNotFound indicates a lookup with no stored row.
var ErrNotFound = errors.New("store: not found")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	tape       TEXT NOT NULL,
	started_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS bounds (
	run_id TEXT NOT NULL REFERENCES runs(id),
	mat    INTEGER NOT NULL,
	idx    INTEGER NOT NULL,
	value  REAL NOT NULL,
	PRIMARY KEY (run_id, mat, idx)
);
CREATE TABLE IF NOT EXISTS matrices (
	run_id  TEXT NOT NULL REFERENCES runs(id),
	type    INTEGER NOT NULL,
	mat     INTEGER NOT NULL,
	mt      INTEGER NOT NULL,
	mat1    INTEGER NOT NULL,
	mt1     INTEGER NOT NULL,
	request TEXT NOT NULL,
	nrows   INTEGER NOT NULL,
	ncols   INTEGER NOT NULL,
	pages   INTEGER NOT NULL,
	data    BLOB NOT NULL,
	stddev  BLOB,
	PRIMARY KEY (run_id, type, mat, mt, mat1, mt1)
);
CREATE TABLE IF NOT EXISTS listings (
	run_id TEXT NOT NULL REFERENCES runs(id),
	seq    INTEGER NOT NULL,
	type   INTEGER NOT NULL,
	mat    INTEGER NOT NULL,
	mt     INTEGER NOT NULL,
	mat1   INTEGER NOT NULL,
	mt1    INTEGER NOT NULL,
	title  TEXT NOT NULL,
	PRIMARY KEY (run_id, seq)
)`

// Store is a SQLite-backed sink for one extraction run.
type Store struct {
	db       *sql.DB
	path     string
	runID    string
	listings int
}

// Open creates or opens the database at path and registers a new run for tape.
func Open(path, tape string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err = db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	s := &Store{db: db, path: path, runID: uuid.NewString()}
	if _, err = db.Exec(`INSERT INTO runs(id, tape, started_at) VALUES(?,?,?)`,
		s.runID, tape, time.Now().UTC().Format(time.RFC3339)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("insert run: %w", err)
	}

	return s, nil
}

// RunID returns the identifier of the run this Store writes to.
func (s *Store) RunID() string { return s.runID }

// Path returns the database path.
func (s *Store) Path() string { return s.path }

// DB exposes the underlying sql.DB for ad-hoc queries.
func (s *Store) DB() *sql.DB { return s.db }

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

// BeginMaterial stores the energy-group bounds of mat.
func (s *Store) BeginMaterial(mat int, bounds []float64) (retErr error) {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin bounds mat %d: %w", mat, err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	for i, v := range bounds {
		if _, err = tx.Exec(`INSERT OR REPLACE INTO bounds(run_id, mat, idx, value) VALUES(?,?,?,?)`,
			s.runID, mat, i, v); err != nil {
			return fmt.Errorf("insert bound %d of mat %d: %w", i, mat, err)
		}
	}

	return tx.Commit()
}

// WriteReaction stores the reaction matrix as JSON rows.
func (s *Store) WriteReaction(req request.Request, r *boxer.Reaction) error {
	var (
		rows       [][]float64
		nrow, ncol int
	)
	if r.Matrix != nil {
		rows = r.Matrix.RawRows()
		nrow, ncol = r.Matrix.Shape()
	} else {
		rows = [][]float64{r.Values}
		nrow, ncol = 1, len(r.Values)
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.Key, err)
	}
	// Standard deviations only for square blocks with a usable diagonal.
	var stddev any // NULL unless computed
	if r.Matrix != nil {
		if sd, sdErr := matrix.StdDev(r.Matrix); sdErr == nil {
			b, err := json.Marshal(sd)
			if err != nil {
				return fmt.Errorf("encode stddev %s: %w", r.Key, err)
			}
			stddev = b
		}
	}
	k := r.Key
	if _, err = s.db.Exec(`INSERT OR REPLACE INTO matrices
		(run_id, type, mat, mt, mat1, mt1, request, nrows, ncols, pages, data, stddev)
		VALUES(?,?,?,?,?,?,?,?,?,?,?,?)`,
		s.runID, k.Type, k.Mat, k.MT, k.Mat1, k.MT1, req.Line, nrow, ncol, r.Pages, data, stddev); err != nil {
		return fmt.Errorf("insert %s: %w", k, err)
	}

	return nil
}

// Listing stores one header summary.
func (s *Store) Listing(h boxer.Header) error {
	s.listings++
	if _, err := s.db.Exec(`INSERT INTO listings(run_id, seq, type, mat, mt, mat1, mt1, title) VALUES(?,?,?,?,?,?,?,?)`,
		s.runID, s.listings, h.Type, h.Mat, h.MT, h.Mat1, h.MT1, h.Title); err != nil {
		return fmt.Errorf("insert listing %s: %w", h.Key(), err)
	}

	return nil
}

// Bounds returns the stored bounds of mat for runID in index order.
func (s *Store) Bounds(runID string, mat int) ([]float64, error) {
	rows, err := s.db.Query(`SELECT value FROM bounds WHERE run_id = ? AND mat = ? ORDER BY idx`, runID, mat)
	if err != nil {
		return nil, fmt.Errorf("select bounds: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var out []float64
	for rows.Next() {
		var v float64
		if err = rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan bound: %w", err)
		}
		out = append(out, v)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("bounds run %s mat %d: %w", runID, mat, ErrNotFound)
	}

	return out, nil
}

// Matrix loads the stored matrix for key in runID.
func (s *Store) Matrix(runID string, key boxer.ReactionKey) (*matrix.Dense, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM matrices
		WHERE run_id = ? AND type = ? AND mat = ? AND mt = ? AND mat1 = ? AND mt1 = ?`,
		runID, key.Type, key.Mat, key.MT, key.Mat1, key.MT1).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("matrix run %s %s: %w", runID, key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("select matrix %s: %w", key, err)
	}
	var rows [][]float64
	if err = json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode matrix %s: %w", key, err)
	}

	return matrix.FromRows(rows)
}

// StdDev loads the standard deviations stored with the matrix for key.
// Non-square blocks and blocks with a negative variance have none.
func (s *Store) StdDev(runID string, key boxer.ReactionKey) ([]float64, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT stddev FROM matrices
		WHERE run_id = ? AND type = ? AND mat = ? AND mt = ? AND mat1 = ? AND mt1 = ?`,
		runID, key.Type, key.Mat, key.MT, key.Mat1, key.MT1).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && data == nil) {
		return nil, fmt.Errorf("stddev run %s %s: %w", runID, key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("select stddev %s: %w", key, err)
	}
	var sd []float64
	if err = json.Unmarshal(data, &sd); err != nil {
		return nil, fmt.Errorf("decode stddev %s: %w", key, err)
	}

	return sd, nil
}

// Runs lists run identifiers, oldest first.
func (s *Store) Runs() ([]string, error) {
	rows, err := s.db.Query(`SELECT id FROM runs ORDER BY started_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("select runs: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
