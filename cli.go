package main

import (
	"flag"
	"fmt"
	"io"
	"os"
)

func showUsage() {
	fmt.Fprintf(os.Stderr, `basec - semantic checker for the base language

Usage:
    basec <command> [arguments]

Commands:
    check <file>    Parse, resolve names and type-check a .base file
    parse <file>    Print the syntax tree of a .base file as an s-expression
    unparse <file>  Print a .base file back with every name linked to its symbol
    repl            Check declarations interactively
    help            Show this help message

Examples:
    basec check examples/tuples.base
    basec unparse -raw examples/tuples.base
    basec repl

Use "basec <command> -h" for more information about a command.
`)
}

// Exit codes.
const (
	exitOK          = 0
	exitDiagnostics = 1
	exitInternal    = 2
)

// readSourceFile reads a file argument or exits.
func readSourceFile(fs *flag.FlagSet) (string, []byte) {
	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one file argument\n")
		fs.Usage()
		os.Exit(exitDiagnostics)
	}

	filename := fs.Arg(0)
	sourceBytes, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file %s: %v\n", filename, err)
		os.Exit(exitDiagnostics)
	}
	return filename, sourceBytes
}

func printDiagnostics(w io.Writer, filename string, errs *ErrorCollection) {
	for _, e := range errs.Errors() {
		fmt.Fprintf(w, "%s:%s\n", filename, e.Error())
	}
}

func checkCommand(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	verbose := fs.Bool("v", false, "Show verbose checking details")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: basec check [-v] <file>\n")
		fmt.Fprintf(os.Stderr, "Parse, resolve names and type-check a .base file\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(exitDiagnostics)
	}

	filename, src := readSourceFile(fs)
	os.Exit(checkSource(os.Stdout, os.Stderr, filename, src, *verbose))
}

// checkSource runs the whole analysis over src and returns the exit code.
func checkSource(stdout, stderr io.Writer, filename string, src []byte, verbose bool) int {
	if verbose {
		fmt.Fprintf(stdout, "Checking %s...\n", filename)
	}

	result, err := Analyze(src)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", filename, err)
		return exitInternal
	}

	if verbose {
		fmt.Fprintf(stdout, "AST: %s\n", ToSExpr(result.AST))
		fmt.Fprintf(stdout, "Linked %d identifiers\n", result.Bindings.Len())
	}

	if result.Failed() {
		printDiagnostics(stderr, filename, result.Errors)
		fmt.Fprintf(stderr, "%s: %d error(s)\n", filename, result.Errors.Count())
		return exitDiagnostics
	}

	fmt.Fprintf(stdout, "%s: no errors found\n", filename)
	return exitOK
}

func parseCommand(args []string) {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: basec parse <file>\n")
		fmt.Fprintf(os.Stderr, "Print the syntax tree of a .base file as an s-expression\n")
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(exitDiagnostics)
	}

	filename, src := readSourceFile(fs)

	l := NewLexer(src)
	l.NextToken()
	ast := ParseProgram(l)
	fmt.Println(ToSExpr(ast))

	if l.Errors.HasErrors() {
		printDiagnostics(os.Stderr, filename, l.Errors)
		os.Exit(exitDiagnostics)
	}
}

func unparseCommand(args []string) {
	fs := flag.NewFlagSet("unparse", flag.ExitOnError)
	raw := fs.Bool("raw", false, "Print plain source without symbol links")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: basec unparse [-raw] <file>\n")
		fmt.Fprintf(os.Stderr, "Print a .base file back with every name linked to its symbol\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(exitDiagnostics)
	}

	filename, src := readSourceFile(fs)

	result, err := Analyze(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", filename, err)
		os.Exit(exitInternal)
	}

	bindings := result.Bindings
	if *raw {
		bindings = nil
	}
	fmt.Print(Unparse(result.AST, bindings))

	if result.Failed() {
		printDiagnostics(os.Stderr, filename, result.Errors)
		os.Exit(exitDiagnostics)
	}
}
