package main

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestVariableShadowingEndToEnd(t *testing.T) {
	source := `integer x.
void main{} [
    x = 10.
    if True [
        logical x.
        x = False.
    ]
    x = 20.
]`

	result := analyzeString(t, source)
	be.Equal(t, result.Failed(), false)
	be.Equal(t, Unparse(result.AST, result.Bindings), `integer x<integer>.
void main<->void>{} [
    x<integer> = 10.
    if True [
        logical x<logical>.
        x<logical> = False.
    ]
    x<integer> = 20.
]

`)
}

func TestFunctionParameterShadowingEndToEnd(t *testing.T) {
	source := `tuple x {
}.
integer test{logical x} [
    while x [
        integer x.
        x = 1.
    ]
    return 2.
]`

	result := analyzeString(t, source)
	be.Equal(t, result.Failed(), false)

	xs := findIdents(result.AST, "x")
	be.Equal(t, len(xs), 5)
	be.Equal(t, result.Bindings.SymbolOf(xs[0]).String(), "tuple")
	be.Equal(t, result.Bindings.SymbolOf(xs[1]).String(), "logical")
	be.Equal(t, result.Bindings.SymbolOf(xs[2]).String(), "logical")
	be.Equal(t, result.Bindings.SymbolOf(xs[3]).String(), "integer")
	be.Equal(t, result.Bindings.SymbolOf(xs[4]).String(), "integer")
}

func TestShadowedTypeMismatchUsesInnerType(t *testing.T) {
	source := `integer x.
void main{} [
    logical x.
    x = 1.
]`

	result := analyzeString(t, source)
	be.Equal(t, result.Errors.String(), "4:5: Mismatched type")
}

func TestShadowedFunctionName(t *testing.T) {
	source := `void f{} [
]
void main{} [
    integer f.
    f = 3.
    f().
]`

	result := analyzeString(t, source)
	be.Equal(t, result.Errors.String(), "6:5: Call attempt on non-function")
}

func TestNestedScopesUnwind(t *testing.T) {
	source := `void main{} [
    if True [
        integer a.
        while True [
            integer b.
            a = b.
        ]
        b = a.
    ]
    a = 1.
]`

	result := analyzeString(t, source)
	be.Equal(t, result.Errors.String(), "8:9: Undeclared identifier\n10:5: Undeclared identifier")
}
