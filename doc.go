// The [tornread] package provokes, detects and reports a torn read of a
// shared composite value: a string whose (data pointer, length) header is
// mutated non-atomically while concurrent observers serialize it.
//
// # What it reproduces
//
// A Go string assignment stores two machine words, the pointer to the
// backing array and the length. When one goroutine replaces a status such
// as "canceled" with the longer "cancelled" while other goroutines marshal
// the surrounding struct, an observer can read the new pointer together
// with the stale length and serialize "cancelle", a value that never
// existed in the program. [RacyHolder] preserves exactly that update
// pattern; [AtomicHolder] is the control that swaps the whole record
// through an atomic pointer and can never be observed half-written.
//
// # Running trials
//
// [Do] drives bounded trials against a [Config]: each trial creates a
// fresh holder, starts one mutator goroutine and N observer goroutines,
// and drains their serialized snapshots looking for the corrupted pattern
// computed by [CorruptPattern]. A trial that does not deliver all of its
// observations within the configured timeout is discarded and counted; a
// run that exhausts its trial budget ends with [ErrNotReproduced], which
// is a valid outcome and not a harness failure.
//
// # Caveat
//
// Whether the torn state is observable depends on the compiler, the
// hardware memory model and the scheduler. A single-core host, or a
// runtime that happens to publish both header words together, may never
// reproduce it. Do not run the racy path under the Go race detector
// unless you want the race reported.
package tornread
