package domain_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/calc-go/internal/domain"
)

func executed(op domain.OpKind, a, b float64) domain.Calculation {
	calc := domain.NewCalculation(op, a, b)
	if _, err := calc.Execute(); err != nil {
		panic(err)
	}
	return calc
}

func TestHistoryAppendEvictsOldest(t *testing.T) {
	h := domain.NewHistory(2)
	r1 := executed(domain.OpAdd, 1, 1)
	r2 := executed(domain.OpAdd, 2, 2)
	r3 := executed(domain.OpAdd, 3, 3)

	h.Append(r1)
	h.Append(r2)
	h.Append(r3)

	if h.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", h.Count())
	}
	if diff := cmp.Diff([]domain.Calculation{r2, r3}, h.Snapshot()); diff != "" {
		t.Fatalf("unexpected records after eviction (-want +got):\n%s", diff)
	}
}

func TestHistorySnapshotIsIndependent(t *testing.T) {
	h := domain.NewHistory(10)
	h.Append(executed(domain.OpAdd, 1, 2))

	snap := h.Snapshot()
	snap[0].Result = 999

	last, ok := h.Last()
	if !ok {
		t.Fatal("Last() reported empty history")
	}
	if last.Result == 999 {
		t.Fatal("mutating a snapshot must not affect the live history")
	}
}

func TestHistoryLastAndClear(t *testing.T) {
	h := domain.NewHistory(10)
	if _, ok := h.Last(); ok {
		t.Fatal("Last() on empty history should report no record")
	}

	h.Append(executed(domain.OpAdd, 1, 1))
	h.Append(executed(domain.OpMultiply, 3, 4))

	last, ok := h.Last()
	if !ok || last.Op != domain.OpMultiply {
		t.Fatalf("Last() = %+v, %v", last, ok)
	}

	h.Clear()
	if h.Count() != 0 {
		t.Fatalf("Count() after Clear() = %d", h.Count())
	}
	if h.MaxSize() != 10 {
		t.Fatalf("Clear() changed max size to %d", h.MaxSize())
	}
}

func TestHistoryReplaceTruncatesFromFront(t *testing.T) {
	h := domain.NewHistory(2)
	records := []domain.Calculation{
		executed(domain.OpAdd, 1, 1),
		executed(domain.OpAdd, 2, 2),
		executed(domain.OpAdd, 3, 3),
	}
	h.Replace(records)

	if diff := cmp.Diff(records[1:], h.Snapshot()); diff != "" {
		t.Fatalf("Replace() kept wrong records (-want +got):\n%s", diff)
	}

	// Replace must copy, not alias.
	records[2].Result = 999
	last, _ := h.Last()
	if last.Result == 999 {
		t.Fatal("Replace() aliased the caller's slice")
	}
}
