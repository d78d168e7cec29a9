package tinylog

// Writer receives finished log entries. Implementations live outside this
// package (files, consoles, sockets); the dispatch core only routes to them.
//
// A plain Writer is delivered synchronously on the calling goroutine. The
// core never invokes the same writer from two goroutines at once: sync
// writers run caller-serialized per call and async writers are driven only
// by the single writing thread consumer.
type Writer interface {
	// RequiredValues declares the Entry fields this writer consumes. The
	// union across all eligible writers drives lazy entry construction.
	RequiredValues() ValueSet

	// Log outputs a single entry. The entry must not be mutated or retained
	// beyond the call for sync writers; async writers receive ownership
	// together with the writing thread.
	Log(entry *Entry) error

	// Flush writes any buffered output.
	Flush() error

	// Close flushes and releases all resources.
	Close() error
}

// AsyncWriter marks writers whose entries are fed through the writing
// thread instead of being delivered on the calling goroutine. The capability
// is checked once at configuration build time, never per call.
type AsyncWriter interface {
	Writer

	// Asynchronous is a marker method and must not do anything.
	Asynchronous()
}

// WriterConfig registers a writer with the routing table.
//
// Tags is the tag filter: an empty slice accepts every tag including
// untagged calls; otherwise the writer receives only calls whose tag appears
// in the slice, with UntaggedPlaceholder standing for untagged calls.
// MinLevel Off registers the writer without ever making it eligible.
type WriterConfig struct {
	Writer   Writer   `validate:"required"`
	MinLevel Level    `validate:"gte=0,lte=5"`
	Tags     []string `validate:"omitempty,dive,required"`
}

// accepts reports whether the tag filter matches the normalized tag.
func (c WriterConfig) accepts(tag string) bool {
	if len(c.Tags) == 0 {
		return true
	}
	for _, candidate := range c.Tags {
		if candidate == tag {
			return true
		}
	}
	return false
}

// eligible reports whether the writer must receive entries for the
// normalized tag and call severity.
func (c WriterConfig) eligible(tag string, level Level) bool {
	if c.MinLevel == LevelOff {
		return false
	}
	return c.accepts(tag) && level.IsAtLeastAsSevereAs(c.MinLevel)
}
