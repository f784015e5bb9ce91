// Package auditlog records every successful mutation in an append-only CSV
// file alongside the entity tables. Unlike the tables it is never rewritten,
// so it survives as a trail even though the tables themselves are
// last-writer-wins.
package auditlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Entry is one row in the audit log.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Entity    string    `json:"entity"` // banks, accounts, categories, transactions, recurring_transactions
	Action    string    `json:"action"` // add, delete, materialize
	RowID     int       `json:"row_id"`
	Detail    string    `json:"detail"`
}

// Header is the CSV header for audit-log.csv.
const Header = "timestamp,entity,action,row_id,detail"

const (
	numFields    = 5
	logFile      = "audit-log.csv"
	colTimestamp = 0
	colEntity    = 1
	colAction    = 2
	colRowID     = 3
	colDetail    = 4
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colEntity] = e.Entity
	row[colAction] = e.Action
	row[colRowID] = strconv.Itoa(e.RowID)
	row[colDetail] = e.Detail
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}
	rowID, err := strconv.Atoi(record[colRowID])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing row_id %q: %w", record[colRowID], err)
	}

	return Entry{
		Timestamp: ts,
		Entity:    record[colEntity],
		Action:    record[colAction],
		RowID:     rowID,
		Detail:    record[colDetail],
	}, nil
}

// Append writes entries to <dataDir>/audit-log.csv, creating the file and
// header if needed.
func Append(dataDir string, entries []Entry) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	path := filepath.Join(dataDir, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <dataDir>/audit-log.csv. A missing file is
// an empty log.
func Read(dataDir string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(dataDir, logFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading audit log CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
