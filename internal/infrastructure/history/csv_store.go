// Package history provides the persistence adapters for calculation history:
// a CSV file store (the default, and the interchange format) and an SQLite
// store. Both implement ports.HistoryStore with whole-snapshot semantics:
// Save replaces the target's contents, Load reads everything back leniently.
package history

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/doeshing/calc-go/internal/domain"
	"github.com/doeshing/calc-go/internal/ports"
)

// csvHeader is the fixed column layout of persisted history files.
var csvHeader = []string{"operation", "operand_a", "operand_b", "result", "timestamp"}

// timestampLayouts are accepted on load, newest first. Files written by older
// tooling use plain ISO-8601 variants without a zone.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05",
}

// CSVStore reads and writes history as a row-oriented UTF-8 CSV file with a
// header row. Rows that cannot be parsed are skipped on load.
type CSVStore struct {
	mu sync.Mutex
}

// NewCSVStore creates a CSV store.
func NewCSVStore() *CSVStore {
	return &CSVStore{}
}

// Save writes the full record sequence to path, replacing any previous file.
func (s *CSVStore) Save(path string, records []domain.Calculation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersist, err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, domain.HistoryFilePermissions)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersist, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersist, err)
	}
	for _, rec := range records {
		result := ""
		if rec.Executed {
			result = formatFloat(rec.Result)
		}
		row := []string{
			string(rec.Op),
			formatFloat(rec.OperandA),
			formatFloat(rec.OperandB),
			result,
			rec.Timestamp.Format(time.RFC3339Nano),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrPersist, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersist, err)
	}
	return nil
}

// Load parses every row back into a record. Rows with an unrecognized
// operation or unparsable fields are skipped; a missing file is
// domain.ErrFileNotFound; an unreadable or headerless file is
// domain.ErrPersist.
func (s *CSVStore) Load(path string) ([]domain.Calculation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrPersist, err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	if _, err := r.Read(); err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", domain.ErrPersist, err)
	}

	var records []domain.Calculation
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Corrupt row: keep loading the rest.
			continue
		}
		rec, ok := parseRow(row)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// parseRow converts one CSV row into a record, reporting false on any field
// it cannot make sense of.
func parseRow(row []string) (domain.Calculation, bool) {
	if len(row) < 5 {
		return domain.Calculation{}, false
	}
	op, err := domain.ParseOpKind(row[0])
	if err != nil {
		return domain.Calculation{}, false
	}
	a, err := strconv.ParseFloat(row[1], 64)
	if err != nil {
		return domain.Calculation{}, false
	}
	b, err := strconv.ParseFloat(row[2], 64)
	if err != nil {
		return domain.Calculation{}, false
	}
	rec := domain.Calculation{Op: op, OperandA: a, OperandB: b}
	if row[3] != "" {
		result, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			return domain.Calculation{}, false
		}
		rec.Result = result
		rec.Executed = true
	}
	ts, ok := parseTimestamp(row[4])
	if !ok {
		return domain.Calculation{}, false
	}
	rec.Timestamp = ts
	return rec, true
}

func parseTimestamp(raw string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

var _ ports.HistoryStore = (*CSVStore)(nil)
