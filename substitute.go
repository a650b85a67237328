package sqltpl

import (
	"strings"
	"unicode"
)

type specifier rune

const (
	specNone       specifier = 0
	specInt        specifier = 'd'
	specFloat      specifier = 'f'
	specArray      specifier = 'a'
	specIdentifier specifier = '#'
)

func (s specifier) String() string {
	if s == specNone {
		return "?"
	}
	return "?" + string(rune(s))
}

// substitutePlaceholders is the second pass: it walks the conditional-resolved
// template, binds each placeholder to the next argument and writes the
// formatted literal into a fresh buffer. Substituted text is never rescanned,
// so argument content containing '?' or braces cannot confuse the engine.
func (b *Builder) substitutePlaceholders(tpl string, args []Value) (string, error) {
	var out strings.Builder
	rs := []rune(tpl)
	argIdx := 0

	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if r != '?' {
			out.WriteRune(r)
			continue
		}

		spec := specNone
		width := 1
		if i+1 < len(rs) {
			switch next := rs[i+1]; {
			case next == rune(specInt):
				spec, width = specInt, 2
			case next == rune(specFloat):
				spec, width = specFloat, 2
			case next == rune(specArray):
				spec, width = specArray, 2
			case next == rune(specIdentifier):
				spec, width = specIdentifier, 2
			case unicode.IsSpace(next):
				// bare placeholder
			default:
				return "", InvalidSpecifierError{Specifier: next, Pos: i + 1}
			}
		}

		if argIdx >= len(args) {
			return "", MissingArgumentError{ArgIndex: argIdx, Pos: i}
		}
		arg := args[argIdx]
		argIdx++

		if arg.kind == KindSkip {
			// A stray skip outside any conditional block leaves the token in
			// place. See the package doc for why this is kept.
			out.WriteString(string(rs[i : i+width]))
			i += width - 1
			continue
		}

		lit, err := b.formatValue(arg, spec, argIdx-1)
		if err != nil {
			return "", err
		}
		out.WriteString(lit)
		i += width - 1
	}

	return out.String(), nil
}
