package main

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestStringLiteralParsing(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"hello"`, `(string "hello")`},
		{`""`, `(string "")`},
		{`"say \"hi\""`, `(string "say \"hi\"")`},
		{`"a\nb"`, `(string "a\nb")`},
	}

	for _, test := range tests {
		ast := parseExpr(t, test.input)
		be.Equal(t, ast.Kind, NodeString)
		be.Equal(t, ast.String, test.input)
		be.Equal(t, ToSExpr(ast), test.expected)
	}
}

func TestStringLiteralTypeChecking(t *testing.T) {
	typ, errs := typeOfExpression(t, `"hello"`)
	be.Equal(t, errs.HasErrors(), false)
	be.True(t, IsStringType(typ))
}

func TestStringLiteralOnlyForWrite(t *testing.T) {
	tests := []struct {
		name string
		stmt string
		want string
	}{
		{"write", `write << "ok".`, ""},
		{"assign to integer", `n = "no".`, "4:5: Mismatched type"},
		{"arithmetic", `n = "a" + 1.`, "4:9: Arithmetic operator used with non-integer operand"},
		{"comparison", `if "a" < "b" [ ]`, "4:8: Relational operator used with non-integer operand\n4:14: Relational operator used with non-integer operand"},
		{"equality", `if "a" == "b" [ ]`, ""},
		{"argument", `f("x").`, "4:7: Actual type does not match formal type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := "void f{integer a} [\n]\nvoid main{} [ integer n.\n    " + tt.stmt + "\n]"
			result := analyzeString(t, source)
			be.Equal(t, result.Errors.String(), tt.want)
		})
	}
}

func TestStringLiteralUnparse(t *testing.T) {
	result := analyzeString(t, "void main{} [\n    write << \"tab\\there\".\n]")
	be.Equal(t, result.Failed(), false)
	be.Equal(t, Unparse(result.AST, result.Bindings), "void main<->void>{} [\n    write << \"tab\\there\".\n]\n\n")
}
