//go:build !js

package main

import (
	"bytes"
	"testing"

	"github.com/nalgeon/be"
)

func TestIsIncomplete(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"", false},
		{"   ", false},
		{"integer x.", false},
		{"integer x", true},
		{"void f{} [", true},
		{"void f{} [\n    write << 1.", true},
		{"void f{} [\n]", false},
		{"tuple T {", true},
		{"tuple T {\n    integer a.\n}.", false},
		{"integer f{integer a,", true},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			be.Equal(t, isIncomplete(tt.src), tt.want)
		})
	}
}

func TestReplSessionAcceptsDeclarations(t *testing.T) {
	var out, errOut bytes.Buffer
	s := newReplSession(&out, &errOut)

	be.True(t, s.Eval("integer x."))
	be.Equal(t, out.String(), "integer x<integer>.\n")

	out.Reset()
	be.True(t, s.Eval("void f{} [\n    x = 2.\n]"))
	be.Equal(t, out.String(), "void f<->void>{} [\n    x<integer> = 2.\n]\n\n")
	be.Equal(t, errOut.String(), "")
}

func TestReplSessionRenumbersDiagnostics(t *testing.T) {
	var out, errOut bytes.Buffer
	s := newReplSession(&out, &errOut)

	be.True(t, s.Eval("integer x."))
	be.True(t, s.Eval("void f{} [\n    x = True.\n]"))
	be.Equal(t, errOut.String(), "2:5: Mismatched type\n")

	// The rejected input is not kept.
	out.Reset()
	errOut.Reset()
	be.True(t, s.Eval("logical f."))
	be.Equal(t, errOut.String(), "")
	be.Equal(t, out.String(), "logical f<logical>.\n")
}

func TestReplSessionCommands(t *testing.T) {
	var out, errOut bytes.Buffer
	s := newReplSession(&out, &errOut)

	be.True(t, s.Eval("integer x."))
	be.True(t, s.Eval("logical y."))

	out.Reset()
	be.True(t, s.Eval(":show"))
	be.Equal(t, out.String(), "integer x<integer>.\nlogical y<logical>.\n")

	out.Reset()
	be.True(t, s.Eval(":reset"))
	be.Equal(t, out.String(), "cleared\n")

	out.Reset()
	be.True(t, s.Eval(":show"))
	be.Equal(t, out.String(), "")

	// x is gone after the reset.
	be.True(t, s.Eval("void f{} [\n    x = 1.\n]"))
	be.Equal(t, errOut.String(), "2:5: Undeclared identifier\n")

	out.Reset()
	be.True(t, s.Eval(":nope"))
	be.Equal(t, out.String(), "unknown command :nope. Type :help for a list.\n")

	be.Equal(t, s.Eval(":quit"), false)
	be.Equal(t, s.Eval("  :Q "), false)
}
