// Package escape holds the escaping capability the template engine composes
// its string and identifier literals from.
package escape

import (
	"strings"
)

var (
	Supported = []string{
		"mysql",
		"ansi",
	}
)

var (
	Handlers map[string]Escaper = map[string]Escaper{
		"mysql": MySQL{},
		"ansi":  ANSI{},
	}
)

// Escaper neutralizes SQL-significant characters in a raw string destined for
// literal interpolation. Implementations must be safe for concurrent use.
type Escaper interface {
	EscapeString(raw string) string
}

// ForDialect looks up a registered escaper by dialect name.
func ForDialect(name string) (Escaper, error) {
	h, ok := Handlers[name]
	if !ok {
		return nil, UnknownDialectError{Dialect: name}
	}
	return h, nil
}

var _ Escaper = MySQL{}

// MySQL escapes with backslashes the way the client library's
// real_escape_string does: quotes, backslash, NUL, newline, carriage return
// and ctrl-Z.
type MySQL struct{}

var mysqlReplacer = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	`"`, `\"`,
	"\x00", `\0`,
	"\n", `\n`,
	"\r", `\r`,
	"\x1a", `\Z`,
)

func (MySQL) EscapeString(raw string) string {
	return mysqlReplacer.Replace(raw)
}

var _ Escaper = ANSI{}

// ANSI escapes by doubling single quotes, the SQL-standard form.
type ANSI struct{}

func (ANSI) EscapeString(raw string) string {
	return strings.ReplaceAll(raw, "'", "''")
}
