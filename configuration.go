package tinylog

import "fmt"

// LoggingConfiguration aggregates all configured severity levels and
// writers. It is built once at startup and immutable afterwards; every read
// during dispatch is safe without synchronization.
type LoggingConfiguration struct {
	severityLevels map[string]*LevelConfiguration
	writers        []WriterConfig
	repositories   map[string][]*WriterRepository
	allWriters     []Writer
}

// NewLoggingConfiguration builds the routing tables for the passed severity
// scopes and writer registrations.
//
// Scope keys are package or class name prefixes; the empty key is the
// global scope. A global scope enabling everything is inserted when the
// caller supplies none, so scope resolution can never fail. Writer
// registrations are validated and kept in registration order, which is also
// their delivery order.
func NewLoggingConfiguration(severityLevels map[string]*LevelConfiguration, writers []WriterConfig) (*LoggingConfiguration, error) {
	for i, config := range writers {
		if err := validateWriterConfig(&config); err != nil {
			return nil, fmt.Errorf("%s at index %d: %w", errMsgNilWriter, i, err)
		}
	}

	scopes := make(map[string]*LevelConfiguration, len(severityLevels)+1)
	for scope, config := range severityLevels {
		if config == nil {
			return nil, fmt.Errorf("level configuration for scope %q is nil", scope)
		}
		scopes[scope] = config
	}
	if _, ok := scopes[emptyString]; !ok {
		scopes[emptyString] = NewLevelConfiguration(LevelTrace, nil)
	}

	configuration := &LoggingConfiguration{
		severityLevels: scopes,
		writers:        append([]WriterConfig(nil), writers...),
	}
	configuration.allWriters = dedupWriters(writers)
	configuration.repositories = configuration.precomputeRepositories()

	return configuration, nil
}

// precomputeRepositories builds one repository per severity level for every
// tag named by a writer filter, plus the untagged sentinel and the internal
// diagnostic tag.
func (c *LoggingConfiguration) precomputeRepositories() map[string][]*WriterRepository {
	tags := map[string]struct{}{
		UntaggedPlaceholder: {},
		InternalTag:         {},
	}
	for _, config := range c.writers {
		for _, tag := range config.Tags {
			tags[tag] = struct{}{}
		}
	}

	repositories := make(map[string][]*WriterRepository, len(tags))
	for tag := range tags {
		perLevel := make([]*WriterRepository, callLevels)
		for level := LevelTrace; level < LevelOff; level++ {
			perLevel[level] = newWriterRepository(c.writers, tag, level)
		}
		repositories[tag] = perLevel
	}
	return repositories
}

// WritersFor returns the repository for the passed normalized tag and call
// severity. Known tags hit the precomputed table; unknown tags are computed
// on demand, which is safe to repeat and yields an equivalent repository.
func (c *LoggingConfiguration) WritersFor(tag string, level Level) *WriterRepository {
	if level < LevelTrace || level >= LevelOff {
		return emptyRepository
	}
	if perLevel, ok := c.repositories[tag]; ok {
		return perLevel[level]
	}
	return newWriterRepository(c.writers, tag, level)
}

// AllWriters returns every distinct configured writer in registration
// order, for lifecycle management.
func (c *LoggingConfiguration) AllWriters() []Writer {
	return c.allWriters
}

// HasAsyncWriters reports whether any configured writer requires delivery
// through the writing thread.
func (c *LoggingConfiguration) HasAsyncWriters() bool {
	for _, config := range c.writers {
		if _, ok := config.Writer.(AsyncWriter); ok {
			return true
		}
	}
	return false
}

// resolve finds the most specific level configuration for the caller behind
// the passed location. The single-scope case returns the global
// configuration without touching the location at all; otherwise ancestor
// scopes are walked by stripping trailing name segments until a configured
// scope matches. The global scope terminates the walk.
func (c *LoggingConfiguration) resolve(location Location) *LevelConfiguration {
	if len(c.severityLevels) == 1 {
		return c.severityLevels[emptyString]
	}

	scope := location.CallerClassName()
	for {
		if configuration, ok := c.severityLevels[scope]; ok {
			return configuration
		}
		scope = reduceScope(scope)
	}
}

// dedupWriters returns the distinct writers of all registrations,
// preserving first-seen order.
func dedupWriters(configs []WriterConfig) []Writer {
	seen := make(map[Writer]struct{}, len(configs))
	writers := make([]Writer, 0, len(configs))
	for _, config := range configs {
		if _, ok := seen[config.Writer]; ok {
			continue
		}
		seen[config.Writer] = struct{}{}
		writers = append(writers, config.Writer)
	}
	return writers
}
