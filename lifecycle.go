package tinylog

import (
	"fmt"

	"go.uber.org/atomic"
	"go.uber.org/multierr"
)

// LifecycleHook owns the startup and shutdown of everything a backend
// holds open: the writing thread and the deduplicated set of configured
// writers. A composition root registers it with whatever owns process
// lifetime and invokes Start once and Stop at least once.
type LifecycleHook struct {
	writers []Writer
	thread  *WritingThread
	stopped atomic.Bool
}

// NewLifecycleHook creates a hook for the passed distinct writers and the
// optional writing thread.
func NewLifecycleHook(writers []Writer, thread *WritingThread) *LifecycleHook {
	return &LifecycleHook{
		writers: writers,
		thread:  thread,
	}
}

// Start brings up the writing thread. Writers arrive already initialized by
// their own constructors, so there is nothing further to do for them.
func (h *LifecycleHook) Start() {
	if h.thread != nil {
		h.thread.Start()
	}
}

// Stop drains the writing thread and then closes every writer exactly once.
// The hook tolerates repeated invocations: the first call does all the
// work, later calls return nil immediately.
func (h *LifecycleHook) Stop() error {
	if !h.stopped.CompareAndSwap(false, true) {
		return nil
	}

	if h.thread != nil {
		h.thread.Stop()
	}

	var err error
	for _, writer := range h.writers {
		if closeErr := writer.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("closing writer: %w", closeErr))
		}
	}
	return err
}
