package main

import (
	"testing"

	"github.com/nalgeon/be"
)

func parseStmt(t *testing.T, input string) *ASTNode {
	t.Helper()
	l := NewLexer([]byte(input))
	l.NextToken()
	stmt := ParseStatement(l)
	be.Equal(t, l.Errors.String(), "")
	return stmt
}

func TestParseSimpleStatements(t *testing.T) {
	tests := []struct {
		input    string
		kind     NodeKind
		expected string
	}{
		{"x = 1.", NodeAssignStmt, "(assign (ident \"x\") (integer 1))"},
		{"f(1).", NodeCallStmt, "(call (ident \"f\") (integer 1))"},
		{"x++.", NodePostInc, "(post-inc (ident \"x\"))"},
		{"v:a--.", NodePostDec, "(post-dec (access (ident \"v\") (ident \"a\")))"},
		{"read >> x.", NodeRead, "(read (ident \"x\"))"},
		{"read >> (v):a.", NodeRead, "(read (access (ident \"v\") (ident \"a\")))"},
		{"write << x + 1.", NodeWrite, "(write (binary \"+\" (ident \"x\") (integer 1)))"},
		{"write << \"hi\".", NodeWrite, "(write (string \"hi\"))"},
		{"return.", NodeReturn, "(return)"},
		{"return x * 2.", NodeReturn, "(return (binary \"*\" (ident \"x\") (integer 2)))"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			stmt := parseStmt(t, test.input)
			be.Equal(t, stmt.Kind, test.kind)
			be.Equal(t, ToSExpr(stmt), test.expected)
		})
	}
}

func TestParseIfStatement(t *testing.T) {
	stmt := parseStmt(t, "if x < 1 [ x = 1. ]")
	be.Equal(t, stmt.Kind, NodeIf)
	be.Equal(t, ToSExpr(stmt), "(if (binary \"<\" (ident \"x\") (integer 1)) (block (assign (ident \"x\") (integer 1))))")
}

func TestParseIfElseStatement(t *testing.T) {
	stmt := parseStmt(t, "if b [ x = 1. ] else [ integer y. y = 2. ]")
	be.Equal(t, stmt.Kind, NodeIfElse)
	be.Equal(t, len(stmt.Children), 3)
	be.Equal(t, ToSExpr(stmt), "(if (ident \"b\") (block (assign (ident \"x\") (integer 1))) (block (var (ident \"y\") integer) (assign (ident \"y\") (integer 2))))")

	els := stmt.Children[2]
	be.Equal(t, len(els.Decls()), 1)
	be.Equal(t, len(els.Stmts()), 1)
}

func TestParseWhileStatement(t *testing.T) {
	stmt := parseStmt(t, "while i > 0 [ i--. ]")
	be.Equal(t, stmt.Kind, NodeWhile)
	be.Equal(t, ToSExpr(stmt), "(while (binary \">\" (ident \"i\") (integer 0)) (block (post-dec (ident \"i\"))))")
}

func TestParseEmptyBlocks(t *testing.T) {
	stmt := parseStmt(t, "while True [ ]")
	be.Equal(t, ToSExpr(stmt), "(while (boolean true) (block))")
}

func TestParseStatementPositions(t *testing.T) {
	stmt := parseStmt(t, "\n   return.")
	be.Equal(t, stmt.Line, 2)
	be.Equal(t, stmt.Col, 4)

	stmt = parseStmt(t, "  x = y.")
	be.Equal(t, stmt.Col, 3)
	be.Equal(t, stmt.Children[0].Col, 3)
}

func TestParseStatementErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"x + 1.", "1:6: syntax error: expression is not a statement"},
		{"x.", "1:2: syntax error: expression is not a statement"},
		{"x = 1", "1:6: syntax error: expected '.', found end of file"},
		{"read x.", "1:6: syntax error: expected '>>', found \"x\""},
		{"read >> 3.", "1:9: syntax error: read target must be a location"},
		{"write >> x.", "1:7: syntax error: expected '<<', found '>>'"},
		{"if x x = 1.", "1:6: syntax error: expected '[', found \"x\""},
		{"while x [ x = 1.", "1:17: syntax error: expected ']', found end of file"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			l := NewLexer([]byte(test.input))
			l.NextToken()
			stmt := recoverSyntax(l, func() *ASTNode { return ParseStatement(l) })
			be.True(t, stmt == nil)
			be.Equal(t, l.Errors.String(), test.want)
		})
	}
}

func TestParseBlockRecovers(t *testing.T) {
	l := NewLexer([]byte("[ integer x. x + 1. x = 2. write << . x++. ]"))
	l.NextToken()
	block := parseBlock(l)

	be.Equal(t, ToSExpr(block), "(block (var (ident \"x\") integer) (assign (ident \"x\") (integer 2)) (post-inc (ident \"x\")))")
	be.Equal(t, l.Errors.Count(), 2)
	be.Equal(t, l.CurrTokenType, TokenType(EOF))
}
