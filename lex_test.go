package main

import (
	"testing"

	"github.com/nalgeon/be"
)

func lexInput(inputStr string) *Lexer {
	l := NewLexer([]byte(inputStr))
	l.NextToken()
	return l
}

func TestIntLiteral(t *testing.T) {
	l := lexInput("12345")
	be.Equal(t, l.CurrTokenType, TokenType(INT))
	be.Equal(t, l.CurrLiteral, "12345")
	be.Equal(t, l.CurrIntValue, int64(12345))
}

func TestIntLiteralClamped(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"2147483647", 2147483647},
		{"2147483648", 2147483647},
		{"99999999999999999999999", 2147483647},
		{"007", 7},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := lexInput(tt.input)
			be.Equal(t, l.CurrTokenType, TokenType(INT))
			be.Equal(t, l.CurrLiteral, tt.input)
			be.Equal(t, l.CurrIntValue, tt.want)
			be.Equal(t, l.Errors.HasErrors(), false)
		})
	}
}

func TestIdentifier(t *testing.T) {
	l := lexInput("foo_bar2")
	be.Equal(t, l.CurrTokenType, TokenType(IDENT))
	be.Equal(t, l.CurrLiteral, "foo_bar2")
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		input string
		typ   TokenType
	}{
		{"integer", INTEGER},
		{"logical", LOGICAL},
		{"void", VOID},
		{"tuple", TUPLE},
		{"if", IF},
		{"else", ELSE},
		{"while", WHILE},
		{"read", READ},
		{"write", WRITE},
		{"return", RETURN},
		{"True", TRUE},
		{"False", FALSE},
		// Keywords are case sensitive.
		{"true", IDENT},
		{"Integer", IDENT},
	}

	for _, tt := range tests {
		l := lexInput(tt.input)
		be.Equal(t, l.CurrTokenType, tt.typ)
		be.Equal(t, l.CurrLiteral, tt.input)
	}
}

func TestStringLiteral(t *testing.T) {
	tests := []string{
		`"hello"`,
		`""`,
		`"tab\there"`,
		`"quote\"inside"`,
		`"back\\slash"`,
		`"it\'s"`,
		`"line\n"`,
	}

	for _, input := range tests {
		l := lexInput(input)
		be.Equal(t, l.CurrTokenType, TokenType(STRING))
		be.Equal(t, l.CurrLiteral, input)
		be.Equal(t, l.Errors.HasErrors(), false)
	}
}

func TestOperators(t *testing.T) {
	tests := []struct {
		input string
		typ   TokenType
	}{
		{"=", ASSIGN},
		{"==", EQ},
		{"~=", NOT_EQ},
		{"~", NOT},
		{"+", PLUS},
		{"++", PLUS_PLUS},
		{"-", MINUS},
		{"--", MINUS_MINUS},
		{"*", ASTERISK},
		{"/", SLASH},
		{"&", AND},
		{"|", OR},
		{"<", LT},
		{"<=", LE},
		{"<<", WRITE_OP},
		{">", GT},
		{">=", GE},
		{">>", READ_OP},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := lexInput(tt.input)
			be.Equal(t, l.CurrTokenType, tt.typ)
			be.Equal(t, l.CurrLiteral, tt.input)
		})
	}
}

func TestDelimiters(t *testing.T) {
	tests := []struct {
		input string
		typ   TokenType
	}{
		{"(", LPAREN},
		{")", RPAREN},
		{"{", LBRACE},
		{"}", RBRACE},
		{"[", LBRACKET},
		{"]", RBRACKET},
		{",", COMMA},
		{":", COLON},
		{".", DOT},
	}

	for _, tt := range tests {
		l := lexInput(tt.input)
		be.Equal(t, l.CurrTokenType, tt.typ)
	}
}

func TestTokenSequence(t *testing.T) {
	input := "x = y + 1.\nwrite << (v):a."
	expected := []struct {
		typ  TokenType
		lit  string
		line int
		col  int
	}{
		{IDENT, "x", 1, 1},
		{ASSIGN, "=", 1, 3},
		{IDENT, "y", 1, 5},
		{PLUS, "+", 1, 7},
		{INT, "1", 1, 9},
		{DOT, ".", 1, 10},
		{WRITE, "write", 2, 1},
		{WRITE_OP, "<<", 2, 7},
		{LPAREN, "(", 2, 10},
		{IDENT, "v", 2, 11},
		{RPAREN, ")", 2, 12},
		{COLON, ":", 2, 13},
		{IDENT, "a", 2, 14},
		{DOT, ".", 2, 15},
		{EOF, "", 2, 16},
	}

	l := lexInput(input)
	for i, exp := range expected {
		be.Equal(t, l.CurrTokenType, exp.typ)
		be.Equal(t, l.CurrLiteral, exp.lit)
		be.Equal(t, l.CurrLine, exp.line)
		be.Equal(t, l.CurrCol, exp.col)
		if i < len(expected)-1 {
			l.NextToken()
		}
	}
}

func TestComments(t *testing.T) {
	tests := []string{
		"$ dollar comment\nx",
		"// slash comment\nx",
		"  $ one\n  // two\n\tx",
	}

	for _, input := range tests {
		l := lexInput(input)
		be.Equal(t, l.CurrTokenType, TokenType(IDENT))
		be.Equal(t, l.CurrLiteral, "x")
		l.NextToken()
		be.Equal(t, l.CurrTokenType, TokenType(EOF))
	}
}

func TestSlashIsNotComment(t *testing.T) {
	l := lexInput("a / b")
	l.NextToken()
	be.Equal(t, l.CurrTokenType, TokenType(SLASH))
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		errors []string
		next   TokenType
	}{
		{
			name:   "illegal character",
			input:  "# x",
			errors: []string{"1:1: Illegal character ignored: #"},
			next:   IDENT,
		},
		{
			name:   "unterminated at newline",
			input:  "\"abc\nx",
			errors: []string{"1:1: Unterminated string literal ignored"},
			next:   IDENT,
		},
		{
			name:   "unterminated at end of file",
			input:  "  \"abc",
			errors: []string{"1:3: Unterminated string literal ignored"},
			next:   EOF,
		},
		{
			name:   "bad escape",
			input:  "\"a\\qb\" x",
			errors: []string{"1:1: Bad escape in string literal ignored"},
			next:   IDENT,
		},
		{
			name:   "backslash before newline",
			input:  "\"abc\\\nx",
			errors: []string{"1:1: Unterminated string literal ignored"},
			next:   IDENT,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := lexInput(tt.input)
			be.Equal(t, l.CurrTokenType, tt.next)
			got := []string{}
			for _, e := range l.Errors.Errors() {
				got = append(got, e.Error())
			}
			be.Equal(t, got, tt.errors)
		})
	}
}

func TestLexerAcceptsTrailingNull(t *testing.T) {
	l := lexInput("x\x00")
	be.Equal(t, l.CurrTokenType, TokenType(IDENT))
	l.NextToken()
	be.Equal(t, l.CurrTokenType, TokenType(EOF))
}
