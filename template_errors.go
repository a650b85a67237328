package sqltpl

import (
	"fmt"
)

// TemplateError is implemented by every error raised while scanning a
// template. Position returns the code point offset the scan failed at.
type TemplateError interface {
	error
	Position() int
}

// MalformedTemplateError represents an error when a conditional block is
// opened inside another conditional block
type MalformedTemplateError struct {
	Pos int
}

func (e MalformedTemplateError) Error() string {
	return fmt.Sprintf("nested conditional block at offset %d", e.Pos)
}

func (e MalformedTemplateError) Position() int {
	return e.Pos
}

// UnmatchedCloseBraceError represents an error when '}' appears with no open
// conditional block
type UnmatchedCloseBraceError struct {
	Pos int
}

func (e UnmatchedCloseBraceError) Error() string {
	return fmt.Sprintf("unmatched '}' at offset %d", e.Pos)
}

func (e UnmatchedCloseBraceError) Position() int {
	return e.Pos
}

// EmptyConditionalBlockError represents an error when a conditional block
// contains no placeholder
type EmptyConditionalBlockError struct {
	Pos int
}

func (e EmptyConditionalBlockError) Error() string {
	return fmt.Sprintf("conditional block at offset %d contains no placeholder", e.Pos)
}

func (e EmptyConditionalBlockError) Position() int {
	return e.Pos
}

// UnclosedConditionalBlockError represents an error when the template ends
// with a conditional block still open
type UnclosedConditionalBlockError struct {
	Pos int
}

func (e UnclosedConditionalBlockError) Error() string {
	return fmt.Sprintf("conditional block opened at offset %d is never closed", e.Pos)
}

func (e UnclosedConditionalBlockError) Position() int {
	return e.Pos
}

// MissingConditionalArgumentError represents an error when a placeholder
// inside a conditional block has no argument left to bind
type MissingConditionalArgumentError struct {
	ArgIndex int
	Pos      int
}

func (e MissingConditionalArgumentError) Error() string {
	return fmt.Sprintf("no argument %d for placeholder inside conditional block at offset %d", e.ArgIndex, e.Pos)
}

func (e MissingConditionalArgumentError) Position() int {
	return e.Pos
}

// InvalidSpecifierError represents an error when the character after '?' is
// not a valid type specifier
type InvalidSpecifierError struct {
	Specifier rune
	Pos       int
}

func (e InvalidSpecifierError) Error() string {
	return fmt.Sprintf("invalid placeholder specifier '?%c' at offset %d", e.Specifier, e.Pos)
}

func (e InvalidSpecifierError) Position() int {
	return e.Pos
}

// MissingArgumentError represents an error when a placeholder outside any
// conditional block has no argument left to bind
type MissingArgumentError struct {
	ArgIndex int
	Pos      int
}

func (e MissingArgumentError) Error() string {
	return fmt.Sprintf("no argument %d for placeholder at offset %d", e.ArgIndex, e.Pos)
}

func (e MissingArgumentError) Position() int {
	return e.Pos
}

// InvalidValueError represents an error when a value cannot be rendered under
// its placeholder's specifier
type InvalidValueError struct {
	Specifier string
	ArgIndex  int
	Got       Kind
}

func (e InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value of type [%s] for %s placeholder, argument %d", e.Got, e.Specifier, e.ArgIndex)
}

// InvalidValueTypeError represents an error when a value's type does not
// match an integer placeholder
type InvalidValueTypeError struct {
	Specifier string
	ArgIndex  int
	Got       Kind
}

func (e InvalidValueTypeError) Error() string {
	return fmt.Sprintf("invalid value type [%s] for %s placeholder, argument %d", e.Got, e.Specifier, e.ArgIndex)
}

// UnsupportedValueTypeError represents an error when a value has no literal
// SQL representation
type UnsupportedValueTypeError struct {
	Got string
}

func (e UnsupportedValueTypeError) Error() string {
	return fmt.Sprintf("unsupported value type [%s]", e.Got)
}
