package sqltpl

import (
	"github.com/pkg/errors"
	"github.com/xwb1989/sqlparser"
)

// Validate parses a built query and reports whether it is syntactically valid
// SQL. Build never calls this; substitution happily produces whatever the
// template says. Run it in tests or debug paths when the extra check is worth
// a full parse.
func Validate(sql string) error {
	if _, err := sqlparser.Parse(sql); err != nil {
		return errors.Wrap(err, "built query is not parseable SQL")
	}
	return nil
}

// MustBuild is Build for fixtures and examples: it panics on error.
func MustBuild(template string, args ...Value) string {
	out, err := Build(template, args...)
	if err != nil {
		panic(err)
	}
	return out
}
