package tinylog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_Order(t *testing.T) {
	ascending := []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelOff}

	for i := 1; i < len(ascending); i++ {
		assert.True(t, ascending[i].IsAtLeastAsSevereAs(ascending[i-1]))
		assert.False(t, ascending[i-1].IsAtLeastAsSevereAs(ascending[i]))
	}
	for _, level := range ascending {
		assert.True(t, level.IsAtLeastAsSevereAs(level))
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "TRACE"},
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LevelOff, "OFF"},
		{Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"trace", LevelTrace},
		{"DEBUG", LevelDebug},
		{"Info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{" error ", LevelError},
		{"off", LevelOff},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown level", func(t *testing.T) {
		_, err := ParseLevel("verbose")
		require.Error(t, err)
	})
}

func TestValueSet(t *testing.T) {
	set := ValueTimestamp | ValueClass

	assert.True(t, set.Contains(ValueTimestamp))
	assert.True(t, set.Contains(ValueTimestamp|ValueClass))
	assert.False(t, set.Contains(ValueTimestamp|ValueLine))
	assert.True(t, set.ContainsAny(ValueLine|ValueClass))
	assert.False(t, set.ContainsAny(frameValues))
	assert.Equal(t, set|ValueThread, set.Union(ValueThread))
}
