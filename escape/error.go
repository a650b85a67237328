package escape

import "fmt"

// UnknownDialectError represents an error when no escaper is registered for a
// dialect name
type UnknownDialectError struct {
	Dialect string
}

func (e UnknownDialectError) Error() string {
	return fmt.Sprintf("no escaper registered for dialect '%s'", e.Dialect)
}
