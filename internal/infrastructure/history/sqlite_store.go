package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/calc-go/internal/domain"
	"github.com/doeshing/calc-go/internal/ports"
)

// SQLiteStore persists history in an SQLite database. It keeps the same
// whole-snapshot contract as the CSV store: Save replaces the calculations
// table contents in one transaction.
type SQLiteStore struct {
	mu sync.Mutex
}

// NewSQLiteStore creates an SQLite store.
func NewSQLiteStore() *SQLiteStore {
	return &SQLiteStore{}
}

const createTableSQL = `CREATE TABLE IF NOT EXISTS calculations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	operation TEXT NOT NULL,
	operand_a REAL NOT NULL,
	operand_b REAL NOT NULL,
	result REAL,
	timestamp TEXT NOT NULL
);`

// Save replaces the stored history with the given records.
func (s *SQLiteStore) Save(path string, records []domain.Calculation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersist, err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersist, err)
	}
	defer db.Close()

	if _, err := db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersist, err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersist, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM calculations"); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersist, err)
	}
	stmt, err := tx.Prepare(`INSERT INTO calculations
		(operation, operand_a, operand_b, result, timestamp) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersist, err)
	}
	defer stmt.Close()

	for _, rec := range records {
		var result interface{}
		if rec.Executed {
			result = rec.Result
		}
		if _, err := stmt.Exec(
			string(rec.Op),
			rec.OperandA,
			rec.OperandB,
			result,
			rec.Timestamp.Format(time.RFC3339Nano),
		); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrPersist, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersist, err)
	}
	return nil
}

// Load reads all stored records in insertion order. Rows with an unrecognized
// operation or unparsable timestamp are skipped.
func (s *SQLiteStore) Load(path string) ([]domain.Calculation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrPersist, err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersist, err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT operation, operand_a, operand_b, result, timestamp
		FROM calculations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersist, err)
	}
	defer rows.Close()

	var records []domain.Calculation
	for rows.Next() {
		var (
			opName string
			a, b   float64
			result sql.NullFloat64
			ts     string
		)
		if err := rows.Scan(&opName, &a, &b, &result, &ts); err != nil {
			continue
		}
		op, err := domain.ParseOpKind(opName)
		if err != nil {
			continue
		}
		stamp, ok := parseTimestamp(ts)
		if !ok {
			continue
		}
		rec := domain.Calculation{Op: op, OperandA: a, OperandB: b, Timestamp: stamp}
		if result.Valid {
			rec.Result = result.Float64
			rec.Executed = true
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersist, err)
	}
	return records, nil
}

var _ ports.HistoryStore = (*SQLiteStore)(nil)
