package tornread

import (
	"encoding/json"
	"sync/atomic"
)

// Record is the composite value under test. Its single string field is,
// at the memory-model level, a (data pointer, length) pair.
type Record struct {
	Status string
}

// Holder owns one shared Record for the duration of a trial.
//
// Mutate and Snapshot are called from different goroutines with no
// ordering between them; whether that is safe is up to the
// implementation, and for [RacyHolder] it deliberately is not.
type Holder interface {
	// Mutate replaces the record's status with target. Called exactly
	// once per trial, concurrently with Snapshot.
	Mutate(target string)

	// Snapshot returns the JSON serialization of the record as observed
	// at an arbitrary point in time.
	Snapshot() ([]byte, error)
}

// HolderFunc constructs the shared value for one trial, initialized to
// the baseline status.
type HolderFunc func(baseline string) Holder

// RacyHolder updates the record with a plain string assignment and takes
// snapshots without synchronization. The assignment stores the backing
// pointer and the length as two separate words, so a concurrent Snapshot
// can observe the new pointer combined with the stale length. The missing
// synchronization is the condition under test, not an oversight: adding a
// lock or an atomic here would defeat the reproducer.
type RacyHolder struct {
	record Record
}

// NewRacyHolder returns a RacyHolder whose status starts at baseline.
func NewRacyHolder(baseline string) *RacyHolder {
	return &RacyHolder{record: Record{Status: baseline}}
}

// Mutate implements Holder. The two header words of the status string are
// written in separate, independently visible steps.
func (h *RacyHolder) Mutate(target string) {
	h.record.Status = target
}

// Snapshot implements Holder. No synchronization against Mutate.
func (h *RacyHolder) Snapshot() ([]byte, error) {
	return json.Marshal(&h.record)
}

// AtomicHolder is the control implementation: Mutate swaps the whole
// record through an atomic pointer, so an observer sees either the old
// record or the new one, never a half-written header.
type AtomicHolder struct {
	record atomic.Pointer[Record]
}

// NewAtomicHolder returns an AtomicHolder whose status starts at baseline.
func NewAtomicHolder(baseline string) *AtomicHolder {
	h := &AtomicHolder{}
	h.record.Store(&Record{Status: baseline})
	return h
}

// Mutate implements Holder with a single-step whole-value swap.
func (h *AtomicHolder) Mutate(target string) {
	h.record.Store(&Record{Status: target})
}

// Snapshot implements Holder.
func (h *AtomicHolder) Snapshot() ([]byte, error) {
	return json.Marshal(h.record.Load())
}
