package main

import (
	"bytes"
	"testing"

	"github.com/nalgeon/be"
)

func TestCheckSource(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "clean",
			src:        "integer x.\nvoid main{} [\n    x = 1.\n]\n",
			wantCode:   exitOK,
			wantStdout: "prog.base: no errors found\n",
		},
		{
			name:       "empty",
			src:        "",
			wantCode:   exitOK,
			wantStdout: "prog.base: no errors found\n",
		},
		{
			name:       "one error",
			src:        "void main{} [\n    y = 1.\n]\n",
			wantCode:   exitDiagnostics,
			wantStderr: "prog.base:2:5: Undeclared identifier\nprog.base: 1 error(s)\n",
		},
		{
			name:     "errors from several phases",
			src:      "integer x\nlogical y.\nvoid main{} [\n    y = 1.\n]\n",
			wantCode: exitDiagnostics,
			wantStderr: "prog.base:2:1: syntax error: expected '.', found 'logical'\n" +
				"prog.base:4:5: Undeclared identifier\n" +
				"prog.base: 2 error(s)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := checkSource(&stdout, &stderr, "prog.base", []byte(tt.src), false)
			be.Equal(t, code, tt.wantCode)
			be.Equal(t, stdout.String(), tt.wantStdout)
			be.Equal(t, stderr.String(), tt.wantStderr)
		})
	}
}

func TestCheckSourceVerbose(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := checkSource(&stdout, &stderr, "prog.base", []byte("integer x."), true)
	be.Equal(t, code, exitOK)
	be.Equal(t, stderr.String(), "")
	be.Equal(t, stdout.String(), "Checking prog.base...\n"+
		"AST: (program (var (ident \"x\") integer))\n"+
		"Linked 1 identifiers\n"+
		"prog.base: no errors found\n")
}

func TestPrintDiagnostics(t *testing.T) {
	errs := NewErrorCollection()
	errs.Report(3, 7, "Mismatched type")
	errs.Report(10, 1, "Undeclared identifier")

	var buf bytes.Buffer
	printDiagnostics(&buf, "a.base", errs)
	be.Equal(t, buf.String(), "a.base:3:7: Mismatched type\na.base:10:1: Undeclared identifier\n")
}
