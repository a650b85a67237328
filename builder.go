// Package sqltpl renders SQL templates with positional placeholders and
// conditional blocks into fully substituted, escaped query text.
//
// The template micro-syntax:
//
//	?        bare placeholder, default formatting
//	?d ?f    integer / float placeholder
//	?a       array placeholder (list or column map)
//	?#       identifier placeholder
//	{ ... }  conditional block, dropped when any placeholder inside it binds
//	         the Skip sentinel; blocks do not nest and must contain at least
//	         one placeholder
//
// Arguments bind positionally: the Nth placeholder in the template consumes
// the Nth argument, counting placeholders inside conditional blocks whether
// or not the block survives.
//
// One quirk is kept from the engine this replaces: a bare placeholder outside
// any conditional block that binds Skip stays in the output as a literal '?'.
package sqltpl

import (
	"github.com/timurbakarov/sqltpl/escape"
)

// Builder renders templates using one escaping capability. It holds no other
// state; a Builder is safe for concurrent use whenever its Escaper is.
type Builder struct {
	esc escape.Escaper
}

// New returns a Builder that escapes string and identifier literals through
// esc. The escaper is typically bound to a live connection; the Builder never
// opens or closes anything itself.
func New(esc escape.Escaper) *Builder {
	return &Builder{esc: esc}
}

var defaultBuilder = New(escape.MySQL{})

// Build renders the template using MySQL-style escaping.
func Build(template string, args ...Value) (string, error) {
	return defaultBuilder.Build(template, args...)
}

// Build runs the two passes in order: conditional blocks are fully resolved
// first, then placeholders are substituted. Any error aborts the call; there
// is no partial output.
func (b *Builder) Build(template string, args ...Value) (string, error) {
	resolved, remaining, err := resolveConditionals(template, args)
	if err != nil {
		return "", err
	}
	return b.substitutePlaceholders(resolved, remaining)
}
