package tinylog

// LevelConfiguration maps tags to their minimum enabled severity level
// within one scope. Instances are immutable after construction and safe for
// unsynchronized concurrent reads.
type LevelConfiguration struct {
	defaultLevel Level
	taggedLevels map[string]Level
}

// NewLevelConfiguration creates a level configuration with the passed
// default level and optional per-tag overrides. Override keys are expected
// in normalized form; UntaggedPlaceholder overrides the level for untagged
// calls specifically. The passed map is copied.
func NewLevelConfiguration(defaultLevel Level, taggedLevels map[string]Level) *LevelConfiguration {
	copied := make(map[string]Level, len(taggedLevels))
	for tag, level := range taggedLevels {
		copied[tag] = level
	}
	return &LevelConfiguration{
		defaultLevel: defaultLevel,
		taggedLevels: copied,
	}
}

// Level returns the minimum enabled severity level for the passed
// normalized tag, falling back to the default level for unknown tags.
func (c *LevelConfiguration) Level(tag string) Level {
	if level, ok := c.taggedLevels[tag]; ok {
		return level
	}
	return c.defaultLevel
}

// TaggedLevels returns a copy of the per-tag override table.
func (c *LevelConfiguration) TaggedLevels() map[string]Level {
	copied := make(map[string]Level, len(c.taggedLevels))
	for tag, level := range c.taggedLevels {
		copied[tag] = level
	}
	return copied
}

// DefaultLevel returns the level applied to tags without an override.
func (c *LevelConfiguration) DefaultLevel() Level {
	return c.defaultLevel
}
