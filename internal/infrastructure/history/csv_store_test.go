package history

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/doeshing/calc-go/internal/domain"
)

func record(t *testing.T, op domain.OpKind, a, b float64) domain.Calculation {
	t.Helper()
	calc := domain.NewCalculation(op, a, b)
	if _, err := calc.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	return calc
}

func assertSameRecords(t *testing.T, want, got []domain.Calculation) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("loaded %d records, want %d", len(got), len(want))
	}
	for i := range want {
		w, g := want[i], got[i]
		if g.Op != w.Op || g.OperandA != w.OperandA || g.OperandB != w.OperandB ||
			g.Result != w.Result || g.Executed != w.Executed {
			t.Errorf("record %d = %+v, want %+v", i, g, w)
		}
		if !g.Timestamp.Equal(w.Timestamp) {
			t.Errorf("record %d timestamp = %v, want %v", i, g.Timestamp, w.Timestamp)
		}
	}
}

func TestCSVStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	store := NewCSVStore()

	want := []domain.Calculation{
		record(t, domain.OpAdd, 5, 3),
		record(t, domain.OpDivide, 10, 4),
		record(t, domain.OpRoot, 9, 2),
	}
	if err := store.Save(path, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := store.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	assertSameRecords(t, want, got)
}

func TestCSVStoreSkipsCorruptRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	content := "operation,operand_a,operand_b,result,timestamp\n" +
		"add,1,2,3,2024-05-01T10:00:00Z\n" +
		"frobnicate,1,2,3,2024-05-01T10:00:01Z\n" +
		"add,not-a-number,2,3,2024-05-01T10:00:02Z\n" +
		"add,1,2,3,yesterday\n" +
		"multiply,2,4,8,2024-05-01T10:00:03Z\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := NewCSVStore().Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("loaded %d records, want 2 (corrupt rows skipped)", len(got))
	}
	if got[0].Op != domain.OpAdd || got[1].Op != domain.OpMultiply {
		t.Fatalf("loaded wrong records: %+v", got)
	}
}

func TestCSVStoreLegacyTimestampLayouts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	content := "operation,operand_a,operand_b,result,timestamp\n" +
		"add,1,2,3,2024-05-01T10:00:00.123456\n" +
		"subtract,5,2,3,2024-05-01 10:00:01\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := NewCSVStore().Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("loaded %d records, want 2", len(got))
	}
}

func TestCSVStoreBlankResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	pending := domain.NewCalculation(domain.OpAdd, 1, 2)

	store := NewCSVStore()
	if err := store.Save(path, []domain.Calculation{pending}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := store.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 1 || got[0].Executed {
		t.Fatalf("pending record round-trip = %+v", got)
	}
}

func TestCSVStoreMissingFile(t *testing.T) {
	_, err := NewCSVStore().Load(filepath.Join(t.TempDir(), "absent.csv"))
	if !errors.Is(err, domain.ErrFileNotFound) {
		t.Fatalf("Load() error = %v, want ErrFileNotFound", err)
	}
}

func TestCSVStoreEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := NewCSVStore().Load(path)
	if !errors.Is(err, domain.ErrPersist) {
		t.Fatalf("Load() error = %v, want ErrPersist", err)
	}
}

func TestCSVStoreSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	store := NewCSVStore()

	first := []domain.Calculation{
		record(t, domain.OpAdd, 1, 1),
		record(t, domain.OpAdd, 2, 2),
	}
	if err := store.Save(path, first); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	second := []domain.Calculation{record(t, domain.OpMultiply, 3, 3)}
	if err := store.Save(path, second); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	assertSameRecords(t, second, got)
}

func TestParseTimestampRejectsGarbage(t *testing.T) {
	if _, ok := parseTimestamp("not a time"); ok {
		t.Fatal("parseTimestamp accepted garbage")
	}
	if ts, ok := parseTimestamp(time.Now().Format(time.RFC3339Nano)); !ok || ts.IsZero() {
		t.Fatal("parseTimestamp rejected RFC3339Nano")
	}
}
