package missionctl

import (
	"sync"

	"butler/internal/core/domain/model/order"
)

// Journal is the in-memory buffer of finished delivery records awaiting
// archival. The mission loop appends records as orders reach a terminal
// status; the archival job drains them to storage in batches.
//
// Journal is safe for concurrent use.
type Journal struct {
	mu      sync.Mutex
	records []order.DeliveryRecord
}

// NewJournal creates an empty Journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Record appends a finished delivery record.
func (j *Journal) Record(rec order.DeliveryRecord) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.records = append(j.records, rec)
}

// DrainBatch removes and returns up to max records, oldest first.
// Returns nil when the journal is empty.
func (j *Journal) DrainBatch(max int) []order.DeliveryRecord {
	j.mu.Lock()
	defer j.mu.Unlock()

	if len(j.records) == 0 {
		return nil
	}
	if max <= 0 || max > len(j.records) {
		max = len(j.records)
	}

	batch := make([]order.DeliveryRecord, max)
	copy(batch, j.records[:max])
	j.records = j.records[max:]
	return batch
}

// Requeue puts a drained batch back at the front of the journal, preserving
// order. Used when archival fails so records are retried on the next run.
func (j *Journal) Requeue(batch []order.DeliveryRecord) {
	if len(batch) == 0 {
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	j.records = append(batch, j.records...)
}

// Len returns the number of records awaiting archival.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.records)
}
