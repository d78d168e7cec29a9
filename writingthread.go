package tinylog

import (
	"fmt"
	"sync"

	"go.uber.org/atomic"
)

// defaultQueueCapacity bounds the writing thread queue when the caller does
// not pick a capacity.
const defaultQueueCapacity = 1024

type writingTask struct {
	writer AsyncWriter
	entry  *Entry
}

// WritingThread is the asynchronous delivery channel: a bounded queue of
// (writer, entry) pairs drained by a single consumer goroutine, so slow
// writers never block the logging caller beyond enqueue backpressure.
//
// One queue and one consumer give a global FIFO, which in particular
// preserves the order of entries destined for the same writer. When the
// queue runs empty the consumer flushes every writer it has touched since
// the last flush, then parks again.
type WritingThread struct {
	queue    chan writingTask
	done     chan struct{}
	wg       sync.WaitGroup
	started  atomic.Bool
	stopped  atomic.Bool
	reporter Reporter
}

// NewWritingThread creates a writing thread with the passed queue capacity
// (or a default when capacity is not positive). Delivery failures are
// reported through the passed reporter; a nil reporter silences them.
func NewWritingThread(capacity int, reporter Reporter) *WritingThread {
	if capacity <= 0 {
		capacity = defaultQueueCapacity
	}
	return &WritingThread{
		queue:    make(chan writingTask, capacity),
		done:     make(chan struct{}),
		reporter: reporter,
	}
}

// Start launches the consumer goroutine. Repeated calls are no-ops.
func (t *WritingThread) Start() {
	if !t.started.CompareAndSwap(false, true) {
		return
	}
	t.wg.Add(1)
	go t.consume()
}

// Enqueue hands an entry over to the consumer for the passed writer. The
// call blocks while the queue is full and sheds the entry once shutdown has
// begun; the entry must not be mutated afterwards by anyone.
func (t *WritingThread) Enqueue(writer AsyncWriter, entry *Entry) {
	if t.stopped.Load() {
		t.report(nil, errMsgEnqueueAfterStop)
		return
	}

	select {
	case t.queue <- writingTask{writer: writer, entry: entry}:
	case <-t.done:
		t.report(nil, errMsgEnqueueAfterStop)
	}
}

// Stop drains all queued entries, flushes the touched writers, and stops
// the consumer goroutine. It blocks until the drain has finished and is
// safe to call multiple times.
func (t *WritingThread) Stop() {
	if !t.stopped.CompareAndSwap(false, true) {
		return
	}
	close(t.done)
	t.wg.Wait()
}

func (t *WritingThread) consume() {
	defer t.wg.Done()

	dirty := make(map[AsyncWriter]struct{})

	for {
		select {
		case task := <-t.queue:
			t.write(task, dirty)
			t.drainBatch(dirty)
		case <-t.done:
			t.drainBatch(dirty)
			return
		}
	}
}

// drainBatch processes queued tasks until the queue runs empty, then
// flushes every writer written since the last flush.
func (t *WritingThread) drainBatch(dirty map[AsyncWriter]struct{}) {
	for {
		select {
		case task := <-t.queue:
			t.write(task, dirty)
		default:
			t.flush(dirty)
			return
		}
	}
}

func (t *WritingThread) write(task writingTask, dirty map[AsyncWriter]struct{}) {
	err := safeWrite(task.writer, task.entry)
	if err != nil && task.entry.Tag != InternalTag {
		t.report(err, errMsgWriteFailed)
	}
	dirty[task.writer] = struct{}{}
}

func (t *WritingThread) flush(dirty map[AsyncWriter]struct{}) {
	for writer := range dirty {
		if err := writer.Flush(); err != nil {
			t.report(err, errMsgFlushFailed)
		}
		delete(dirty, writer)
	}
}

func (t *WritingThread) report(err error, message string) {
	if t.reporter == nil {
		return
	}
	t.reporter.Report(err, message)
}

// safeWrite delivers an entry with panic isolation, turning a panicking
// writer into an ordinary delivery error.
func safeWrite(writer Writer, entry *Entry) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("writer panicked: %v", v)
		}
	}()
	return writer.Log(entry)
}
