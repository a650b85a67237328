package sqltpl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timurbakarov/sqltpl/escape"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []Value
		want     string
	}{
		{
			name:     "no placeholders",
			template: "SELECT name FROM users",
			want:     "SELECT name FROM users",
		},
		{
			name:     "bare placeholders",
			template: "SELECT * FROM users WHERE id = ? AND active = ?",
			args:     []Value{Int(42), Bool(true)},
			want:     "SELECT * FROM users WHERE id = 42 AND active = 1",
		},
		{
			name:     "string escaping",
			template: "SELECT * FROM users WHERE name = ?",
			args:     []Value{String("Jack O'Neill")},
			want:     `SELECT * FROM users WHERE name = 'Jack O\'Neill'`,
		},
		{
			name:     "conditional dropped on skip",
			template: "SELECT * FROM t {WHERE id = ?}",
			args:     []Value{Skip()},
			want:     "SELECT * FROM t ",
		},
		{
			name:     "conditional kept",
			template: "SELECT * FROM t {WHERE id = ?}",
			args:     []Value{Int(5)},
			want:     "SELECT * FROM t WHERE id = 5",
		},
		{
			name:     "argument after dropped block keeps its position",
			template: "SELECT * FROM t{ WHERE a = ? AND b = ?} LIMIT ?d",
			args:     []Value{Int(1), Skip(), Int(10)},
			want:     "SELECT * FROM t LIMIT 10",
		},
		{
			name:     "two blocks independent",
			template: "SELECT * FROM t WHERE 1=1{ AND a = ?}{ AND b = ?}",
			args:     []Value{Skip(), Int(7)},
			want:     "SELECT * FROM t WHERE 1=1 AND b = 7",
		},
		{
			name:     "all specifiers",
			template: "UPDATE t SET ?a WHERE ?# = ? AND n = ?d AND score > ?f",
			args: []Value{
				Map(Entry("name", String("x")), Entry("age", Int(5))),
				String("id"),
				String("abc"),
				Int(3),
				Float(1.5),
			},
			want: "UPDATE t SET `name` = 'x', `age` = 5 WHERE `id` = 'abc' AND n = 3 AND score > 1.5",
		},
		{
			name:     "stray skip leaves the token",
			template: "SELECT ? FROM t",
			args:     []Value{Skip()},
			want:     "SELECT ? FROM t",
		},
		{
			name:     "multibyte text around placeholders",
			template: "SELECT * FROM café WHERE mot = ? -- ✓🦆",
			args:     []Value{String("émincé")},
			want:     "SELECT * FROM café WHERE mot = 'émincé' -- ✓🦆",
		},
		{
			name:     "placeholder at end of template is bare",
			template: "SELECT * FROM t LIMIT ?",
			args:     []Value{Int(1)},
			want:     "SELECT * FROM t LIMIT 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.template, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Building an already fully substituted query again must be the identity.
func TestBuildIdempotent(t *testing.T) {
	first, err := Build(
		"SELECT ?# FROM t {WHERE id = ?d} ORDER BY ?",
		String("name"), Int(9), String("name"),
	)
	require.NoError(t, err)

	second, err := Build(first)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []Value
		want     error
	}{
		{
			name:     "nested block",
			template: "SELECT * {WHERE a = ? {AND b = ?}}",
			args:     []Value{Int(1), Int(2)},
			want:     MalformedTemplateError{Pos: 22},
		},
		{
			name:     "nested block fails regardless of arguments",
			template: "SELECT * {WHERE a = ? {AND b = ?}}",
			args:     []Value{Skip(), Skip()},
			want:     MalformedTemplateError{Pos: 22},
		},
		{
			name:     "unmatched close brace",
			template: "SELECT * FROM t } ",
			want:     UnmatchedCloseBraceError{Pos: 16},
		},
		{
			name:     "empty conditional block",
			template: "SELECT * FROM t {WHERE 1=1}",
			want:     EmptyConditionalBlockError{Pos: 16},
		},
		{
			name:     "unclosed conditional block",
			template: "SELECT * FROM t {WHERE id = ?",
			args:     []Value{Int(1)},
			want:     UnclosedConditionalBlockError{Pos: 16},
		},
		{
			name:     "missing argument inside block",
			template: "SELECT * FROM t {WHERE id = ?}",
			want:     MissingConditionalArgumentError{ArgIndex: 0, Pos: 28},
		},
		{
			name:     "invalid specifier",
			template: "SELECT ?x FROM t",
			args:     []Value{Int(1)},
			want:     InvalidSpecifierError{Specifier: 'x', Pos: 8},
		},
		{
			name:     "specifier must be followed by space or end",
			template: "SELECT * FROM t WHERE id IN (?)",
			args:     []Value{Int(1)},
			want:     InvalidSpecifierError{Specifier: ')', Pos: 30},
		},
		{
			name:     "missing argument outside block",
			template: "SELECT * FROM t WHERE id = ?",
			want:     MissingArgumentError{ArgIndex: 0, Pos: 27},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.template, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.want, err)
		})
	}
}

// Hostile string arguments must come out of the default formatter as inert
// quoted literals, never as live SQL.
func TestSQLInjection(t *testing.T) {
	hostile := []string{
		`' OR '1'='1`,
		`'; DROP TABLE users; --`,
		`'); EXEC xp_cmdshell('whoami'); --`,
		`' UNION SELECT NULL, NULL, NULL--`,
		`' OR SLEEP(10)--`,
		`\' OR 1=1 --`,
		`ＯＲ '1'＝'1'`,
		"line\nbreak' OR 'x'='x",
	}

	for _, raw := range hostile {
		t.Run(raw, func(t *testing.T) {
			out, err := Build("SELECT * FROM users WHERE name = ?", String(raw))
			require.NoError(t, err)

			want := "SELECT * FROM users WHERE name = '" + escape.MySQL{}.EscapeString(raw) + "'"
			assert.Equal(t, want, out)
			assert.NotContains(t, out, "' OR '1'='1")
			assert.NoError(t, Validate(out))
		})
	}
}

func TestBuilderWithANSIEscaper(t *testing.T) {
	esc, err := escape.ForDialect("ansi")
	require.NoError(t, err)

	out, err := New(esc).Build("SELECT * FROM t WHERE name = ?", String("O'Brien"))
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM t WHERE name = 'O''Brien'", out)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("SELECT * FROM t WHERE id = 5"))

	err := Validate("SELECT * FROM WHERE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not parseable SQL")
}

func TestMustBuildPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustBuild("SELECT ?")
	})
	assert.Equal(t, "SELECT 1", MustBuild("SELECT ?", Int(1)))
}

// Substituted text is never rescanned: argument content that looks like
// template syntax stays inert.
func TestArgumentsAreNotRescanned(t *testing.T) {
	out, err := Build("SELECT * FROM t WHERE a = ? AND b = ?", String("{?d}"), Int(2))
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM t WHERE a = '{?d}' AND b = 2", out)
	assert.False(t, strings.Contains(out, "?d}' AND b = ?"))
}
