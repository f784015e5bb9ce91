// Package store persists entity collections as CSV tables under a single
// data directory. There is no in-memory cache: every operation re-reads the
// whole table from disk and every mutation rewrites it. Concurrent writers
// to the same table race (last writer wins). Each table carries a .seq
// sidecar recording the highest id ever assigned, so ids stay monotonic
// across deletes.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pennybook-dev/pennybook/internal/apperr"
)

// Table describes how one entity collection maps onto its CSV file. Header
// lists columns with id first; Marshal and Unmarshal convert between rows
// and records in that column order.
type Table[T any] struct {
	Name      string // file name without extension, e.g. "accounts"
	Header    []string
	Marshal   func(T) []string
	Unmarshal func([]string) (T, error)
	ID        func(T) int
}

// Path returns the table's CSV file path under dir.
func (t Table[T]) Path(dir string) string {
	return filepath.Join(dir, t.Name+".csv")
}

// ReadAll returns every row in the table. A table whose file does not exist
// yet is an empty table, not an error.
func ReadAll[T any](dir string, tbl Table[T]) ([]T, error) {
	f, err := os.Open(tbl.Path(dir))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", tbl.Name, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = len(tbl.Header)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s CSV: %w", tbl.Name, err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var rows []T
	for i, rec := range records[1:] {
		row, err := tbl.Unmarshal(rec)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", tbl.Name, i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteAll rewrites the whole table: header first, then every row.
func WriteAll[T any](dir string, tbl Table[T], rows []T) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	f, err := os.Create(tbl.Path(dir))
	if err != nil {
		return fmt.Errorf("creating %s: %w", tbl.Name, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if err := cw.Write(tbl.Header); err != nil {
		return fmt.Errorf("writing %s header: %w", tbl.Name, err)
	}
	for i, row := range rows {
		if err := cw.Write(tbl.Marshal(row)); err != nil {
			return fmt.Errorf("writing %s row %d: %w", tbl.Name, i+2, err)
		}
	}
	return cw.Error()
}

// seqPath is the table's sidecar file holding the highest id ever assigned.
func seqPath[T any](dir string, tbl Table[T]) string {
	return filepath.Join(dir, tbl.Name+".seq")
}

func lastAssigned[T any](dir string, tbl Table[T]) (int, error) {
	data, err := os.ReadFile(seqPath(dir, tbl))
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading %s id mark: %w", tbl.Name, err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("parsing %s id mark %q: %w", tbl.Name, data, err)
	}
	return n, nil
}

func markAssigned[T any](dir string, tbl Table[T], id int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	if err := os.WriteFile(seqPath(dir, tbl), []byte(strconv.Itoa(id)+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing %s id mark: %w", tbl.Name, err)
	}
	return nil
}

// NextID returns one more than the highest id ever assigned to the table:
// the max over the live rows, or the sidecar high-water mark when that is
// higher. Deleting the max-id row therefore never causes a reused id.
func NextID[T any](dir string, tbl Table[T], rows []T) (int, error) {
	last, err := lastAssigned(dir, tbl)
	if err != nil {
		return 0, err
	}
	for _, row := range rows {
		if id := tbl.ID(row); id > last {
			last = id
		}
	}
	return last + 1, nil
}

// Append assigns the next id via assign, appends the row, and rewrites the
// table. It returns the stored row including its id. The high-water mark is
// advanced before the table write so a failed write cannot roll it back.
func Append[T any](dir string, tbl Table[T], row T, assign func(T, int) T) (T, error) {
	var zero T
	rows, err := ReadAll(dir, tbl)
	if err != nil {
		return zero, err
	}

	next, err := NextID(dir, tbl, rows)
	if err != nil {
		return zero, err
	}
	if err := markAssigned(dir, tbl, next); err != nil {
		return zero, err
	}

	stored := assign(row, next)
	if err := WriteAll(dir, tbl, append(rows, stored)); err != nil {
		return zero, err
	}
	return stored, nil
}

// Delete removes the row with the given id and rewrites the remainder,
// returning the removed row. A missing table file or absent id is NotFound.
func Delete[T any](dir string, tbl Table[T], id int) (T, error) {
	var zero T
	rows, err := ReadAll(dir, tbl)
	if err != nil {
		return zero, err
	}
	if len(rows) == 0 {
		return zero, apperr.NotFoundf("there are no %s to delete", tbl.Name)
	}

	idx := -1
	for i, row := range rows {
		if tbl.ID(row) == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return zero, apperr.NotFoundf("id %d does not exist in %s", id, tbl.Name)
	}

	removed := rows[idx]
	if err := WriteAll(dir, tbl, append(rows[:idx:idx], rows[idx+1:]...)); err != nil {
		return zero, err
	}
	return removed, nil
}
