package tinylog

import "fmt"

// MessageFormatter resolves placeholders in a raw message template against
// the call's argument values. Formatter implementations (and their
// placeholder syntax) live outside this package.
type MessageFormatter interface {
	// Format returns the final message for the passed template and
	// arguments. A returned error aborts delivery of the call's entry.
	Format(template string, arguments []any) (string, error)
}

// safeFormat runs the formatter with panic isolation. A panicking formatter
// is treated exactly like one returning an error.
func safeFormat(formatter MessageFormatter, template string, arguments []any) (message string, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("formatter panicked: %v", v)
		}
	}()
	return formatter.Format(template, arguments)
}

// messageString renders a message value without formatting. Nil stays
// empty; everything else takes its literal string form.
func messageString(message any) string {
	switch m := message.(type) {
	case nil:
		return emptyString
	case string:
		return m
	case fmt.Stringer:
		return m.String()
	default:
		return fmt.Sprint(m)
	}
}
