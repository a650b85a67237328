package sqltpl

import (
	"strconv"
	"strings"
)

// formatValue renders a single argument as literal SQL text under the given
// placeholder specifier. Dispatch is exhaustive over the Value kinds; the only
// runtime failures left are genuinely mismatched specifier/value pairs.
func (b *Builder) formatValue(v Value, spec specifier, argIdx int) (string, error) {
	switch spec {
	case specInt:
		return b.formatInt(v, argIdx)
	case specFloat:
		return b.formatFloat(v, argIdx)
	case specArray:
		return b.formatArray(v, argIdx)
	case specIdentifier:
		return b.formatIdentifier(v, argIdx)
	default:
		return b.formatDefault(v, argIdx)
	}
}

func (b *Builder) formatDefault(v Value, argIdx int) (string, error) {
	switch v.kind {
	case KindText:
		return "'" + b.esc.EscapeString(v.s) + "'", nil
	case KindInt:
		return strconv.FormatInt(v.i, 10), nil
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64), nil
	case KindBool:
		return boolLiteral(v.b), nil
	case KindNull:
		return "NULL", nil
	default:
		return "", UnsupportedValueTypeError{Got: v.kind.String()}
	}
}

// formatInt does not force floats into integers: the source value's textual
// form is preserved.
func (b *Builder) formatInt(v Value, argIdx int) (string, error) {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10), nil
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64), nil
	case KindBool:
		return boolLiteral(v.b), nil
	case KindNull:
		return "NULL", nil
	default:
		return "", InvalidValueTypeError{Specifier: specInt.String(), ArgIndex: argIdx, Got: v.kind}
	}
}

func (b *Builder) formatFloat(v Value, argIdx int) (string, error) {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10), nil
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64), nil
	case KindNull:
		return "NULL", nil
	default:
		return "", InvalidValueError{Specifier: specFloat.String(), ArgIndex: argIdx, Got: v.kind}
	}
}

// formatArray renders a list as comma separated default literals, and a map
// as `column` = value pairs in entry order. Map keys go through identifier
// escaping like ?# columns do.
func (b *Builder) formatArray(v Value, argIdx int) (string, error) {
	switch v.kind {
	case KindList:
		parts := make([]string, 0, len(v.list))
		for _, el := range v.list {
			lit, err := b.formatDefault(el, argIdx)
			if err != nil {
				return "", err
			}
			parts = append(parts, lit)
		}
		return strings.Join(parts, ", "), nil
	case KindMap:
		parts := make([]string, 0, len(v.m))
		for _, e := range v.m {
			lit, err := b.formatDefault(e.Value, argIdx)
			if err != nil {
				return "", err
			}
			parts = append(parts, b.escapeIdentifier(e.Key)+" = "+lit)
		}
		return strings.Join(parts, ", "), nil
	default:
		return "", InvalidValueError{Specifier: specArray.String(), ArgIndex: argIdx, Got: v.kind}
	}
}

func (b *Builder) formatIdentifier(v Value, argIdx int) (string, error) {
	switch v.kind {
	case KindText:
		return b.escapeIdentifier(v.s), nil
	case KindList:
		parts := make([]string, 0, len(v.list))
		for _, el := range v.list {
			if el.kind != KindText {
				return "", InvalidValueError{Specifier: specIdentifier.String(), ArgIndex: argIdx, Got: el.kind}
			}
			parts = append(parts, b.escapeIdentifier(el.s))
		}
		return strings.Join(parts, ", "), nil
	default:
		return "", InvalidValueError{Specifier: specIdentifier.String(), ArgIndex: argIdx, Got: v.kind}
	}
}

func (b *Builder) escapeIdentifier(s string) string {
	return "`" + b.esc.EscapeString(s) + "`"
}

func boolLiteral(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
