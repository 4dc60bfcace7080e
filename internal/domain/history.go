package domain

// History is the bounded, ordered record of a calculator session. Insertion
// order is chronological order. The length never exceeds the configured
// maximum; appending at capacity evicts the oldest record.
//
// History is owned by a single session and is not safe for concurrent use.
type History struct {
	records []Calculation
	maxSize int
}

// NewHistory creates an empty history bounded to maxSize records.
func NewHistory(maxSize int) *History {
	if maxSize <= 0 {
		maxSize = DefaultMaxHistorySize
	}
	return &History{maxSize: maxSize}
}

// Append adds a record to the end, evicting the oldest when over capacity.
func (h *History) Append(c Calculation) {
	h.records = append(h.records, c)
	if len(h.records) > h.maxSize {
		h.records = h.records[1:]
	}
}

// Snapshot returns an independent copy of the record sequence.
func (h *History) Snapshot() []Calculation {
	out := make([]Calculation, len(h.records))
	copy(out, h.records)
	return out
}

// Last returns the most recently appended record, if any.
func (h *History) Last() (Calculation, bool) {
	if len(h.records) == 0 {
		return Calculation{}, false
	}
	return h.records[len(h.records)-1], true
}

// Count returns the number of stored records.
func (h *History) Count() int {
	return len(h.records)
}

// Clear empties the history. The size bound is unchanged.
func (h *History) Clear() {
	h.records = nil
}

// Replace swaps the history contents for the given records, keeping only the
// most recent maxSize entries. Used when restoring a snapshot or loading from
// storage. The input slice is copied, never aliased.
func (h *History) Replace(records []Calculation) {
	if len(records) > h.maxSize {
		records = records[len(records)-h.maxSize:]
	}
	h.records = make([]Calculation, len(records))
	copy(h.records, records)
}

// MaxSize returns the configured capacity.
func (h *History) MaxSize() int {
	return h.maxSize
}
