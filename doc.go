// Package tinylog implements the level-resolution and dispatch core of a
// logging facade: per-call enablement checks, scope-based severity lookup,
// writer routing, and demand-driven log record construction.
//
// Key features
//   - Severity thresholds per caller scope: a LoggingConfiguration maps
//     package or class name prefixes to LevelConfiguration instances; the
//     most specific scope wins and the global scope always matches
//   - Tag-aware routing: every writer registers a minimum level and a tag
//     filter; for each (tag, level) pair a WriterRepository splits eligible
//     writers into synchronous and asynchronous delivery sets
//   - Lazy records: an Entry is filled only with the fields some eligible
//     writer declared in its ValueSet, so stack walks, timestamps, and
//     context snapshots are never paid for when no writer wants them
//   - Failure isolation: a writer or formatter that errors or panics never
//     unwinds into the calling application; failures are reported through a
//     zerolog-backed diagnostic Reporter instead
//   - Graceful shutdown: the WritingThread drains queued entries before
//     stopping, and the LifecycleHook flushes and closes every writer
//     exactly once no matter how often it is invoked
//
// Typical usage
//
//	cfg, err := tinylog.NewLoggingConfiguration(scopes, writers)
//	if err != nil { panic(err) }
//	backend, err := tinylog.NewBackend(cfg, tinylog.BackendOptions{})
//	if err != nil { panic(err) }
//	backend.Hook().Start()
//	defer backend.Hook().Stop()
//
//	loc := tinylog.CallerLocation(1)
//	if backend.IsEnabled(loc, "", tinylog.LevelDebug) {
//		backend.Log(loc, "", tinylog.LevelDebug, nil, "started in {}", args, fmtr)
//	}
//
// Writer implementations, configuration file parsing, and placeholder
// formatting live outside this package; it consumes them through the Writer,
// Location, and MessageFormatter capability contracts.
package tinylog
