package tinylog

// ValueSet is a bit set of Entry fields. Writers declare the fields they
// consume via Writer.RequiredValues; the dispatch engine computes only the
// union of those declarations when building an Entry.
type ValueSet uint16

const (
	ValueTimestamp ValueSet = 1 << iota
	ValueUptime
	ValueThread
	ValueContext
	ValueClass
	ValueMethod
	ValueFile
	ValueLine
	ValueTag
	ValueLevel
	ValueMessage
	ValueException
)

// frameValues are the fields that require a full caller stack frame.
const frameValues = ValueMethod | ValueFile | ValueLine

// Contains reports whether every bit of values is present in the set.
func (s ValueSet) Contains(values ValueSet) bool {
	return s&values == values
}

// ContainsAny reports whether at least one bit of values is present.
func (s ValueSet) ContainsAny(values ValueSet) bool {
	return s&values != 0
}

// Union returns the combination of both sets.
func (s ValueSet) Union(other ValueSet) ValueSet {
	return s | other
}
