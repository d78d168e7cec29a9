package tinylog

// WriterRepository holds the writers that must receive entries for one
// (tag, level) pair, partitioned into synchronous and asynchronous delivery
// sets, together with the union of the Entry fields any of them requires.
//
// Repositories are immutable. They are precomputed for configured tags and
// recomputed on demand for tags seen for the first time at runtime; both
// paths produce equivalent repositories.
type WriterRepository struct {
	allWriters     []Writer
	syncWriters    []Writer
	asyncWriters   []AsyncWriter
	requiredValues ValueSet
}

// emptyRepository is shared by all lookups that match no writer.
var emptyRepository = &WriterRepository{}

// newWriterRepository partitions the writers eligible for the passed
// normalized tag and severity level. Every eligible writer lands in exactly
// one delivery set, decided by its AsyncWriter capability.
func newWriterRepository(configs []WriterConfig, tag string, level Level) *WriterRepository {
	repository := &WriterRepository{}

	for _, config := range configs {
		if !config.eligible(tag, level) {
			continue
		}

		repository.allWriters = append(repository.allWriters, config.Writer)
		repository.requiredValues = repository.requiredValues.Union(config.Writer.RequiredValues())

		if async, ok := config.Writer.(AsyncWriter); ok {
			repository.asyncWriters = append(repository.asyncWriters, async)
		} else {
			repository.syncWriters = append(repository.syncWriters, config.Writer)
		}
	}

	if len(repository.allWriters) == 0 {
		return emptyRepository
	}
	return repository
}

// AllWriters returns every eligible writer in registration order.
func (r *WriterRepository) AllWriters() []Writer {
	return r.allWriters
}

// SyncWriters returns the writers delivered on the calling goroutine.
func (r *WriterRepository) SyncWriters() []Writer {
	return r.syncWriters
}

// AsyncWriters returns the writers fed through the writing thread.
func (r *WriterRepository) AsyncWriters() []AsyncWriter {
	return r.asyncWriters
}

// RequiredValues returns the union of all eligible writers' declared
// Entry fields. Record construction consults this set and nothing else.
func (r *WriterRepository) RequiredValues() ValueSet {
	return r.requiredValues
}
