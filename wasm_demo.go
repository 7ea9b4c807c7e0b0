//go:build js && wasm

package main

import (
	"fmt"
	"strings"
	"syscall/js"
)

// analyzeForPage returns the diagnostics for src, or the annotated source
// when there are none.
func analyzeForPage(src string) string {
	result, err := Analyze([]byte(src))
	if err != nil {
		return err.Error()
	}
	if result.Failed() {
		var sb strings.Builder
		for _, e := range result.Errors.Errors() {
			fmt.Fprintf(&sb, "%s\n", e.Error())
		}
		return sb.String()
	}
	return Unparse(result.AST, result.Bindings)
}

// Build with GOOS=js GOARCH=wasm; the page calls basecAnalyze(source).
func main() {
	js.Global().Set("basecAnalyze", js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) != 1 {
			return "usage: basecAnalyze(source)"
		}
		return analyzeForPage(args[0].String())
	}))
	select {}
}
