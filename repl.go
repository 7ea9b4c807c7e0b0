//go:build !js

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

const (
	historyFile = ".basec_history"
	promptMain  = "basec> "
	promptCont  = "  ...> "
)

func replCommand(args []string) {
	fs := flag.NewFlagSet("repl", flag.ExitOnError)
	noHistory := fs.Bool("no-history", false, "Do not read or write the history file")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: basec repl [-no-history]\n")
		fmt.Fprintf(os.Stderr, "Check declarations interactively\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if !*noHistory {
		home, _ := os.UserHomeDir()
		histPath := filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	fmt.Println("basec repl. Enter declarations; :help lists commands.")
	session := newReplSession(os.Stdout, os.Stderr)
	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			break
		}
		if strings.TrimSpace(code) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
		if !session.Eval(code) {
			break
		}
	}
}

// readByParseProbe keeps prompting until the input looks like whole
// declarations. An empty continuation line submits whatever was typed.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 && strings.TrimSpace(line) == "" {
			return b.String(), true
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") || !isIncomplete(src) {
			return src, true
		}
	}
}

// isIncomplete reports whether src has unclosed brackets or does not yet
// end in '.' or ']'.
func isIncomplete(src string) bool {
	l := NewLexer([]byte(src))
	depth := 0
	var last TokenType = EOF
	for l.NextToken(); l.CurrTokenType != EOF; l.NextToken() {
		switch l.CurrTokenType {
		case LBRACE, LBRACKET, LPAREN:
			depth++
		case RBRACE, RBRACKET, RPAREN:
			depth--
		}
		last = l.CurrTokenType
	}
	if last == EOF {
		return false
	}
	return depth > 0 || (last != DOT && last != RBRACKET)
}

// replSession accumulates the declarations accepted so far. Each new input
// is analysed after them; it is kept only if it produced no diagnostics.
type replSession struct {
	out, errOut io.Writer

	accepted      string
	acceptedLines int
	declCount     int
}

func newReplSession(out, errOut io.Writer) *replSession {
	return &replSession{out: out, errOut: errOut}
}

// Eval handles one submitted input. It returns false when the session
// should end.
func (s *replSession) Eval(code string) bool {
	trimmed := strings.TrimSpace(code)
	if strings.HasPrefix(trimmed, ":") {
		return s.command(trimmed)
	}

	src := s.accepted + code + "\n"
	result, err := Analyze([]byte(src))
	if err != nil {
		fmt.Fprintf(s.errOut, "%v\n", err)
		return true
	}

	if result.Failed() {
		for _, e := range result.Errors.Errors() {
			fmt.Fprintf(s.errOut, "%d:%d: %s\n", e.Line-s.acceptedLines, e.Col, e.Message)
		}
		return true
	}

	decls := result.AST.Children[s.declCount:]
	for _, decl := range decls {
		fmt.Fprint(s.out, Unparse(decl, result.Bindings))
	}
	s.accepted = src
	s.acceptedLines += strings.Count(code, "\n") + 1
	s.declCount = len(result.AST.Children)
	return true
}

func (s *replSession) command(cmd string) bool {
	switch strings.ToLower(cmd) {
	case ":quit", ":q":
		return false
	case ":reset":
		s.accepted, s.acceptedLines, s.declCount = "", 0, 0
		fmt.Fprintln(s.out, "cleared")
	case ":show":
		result, err := Analyze([]byte(s.accepted))
		if err != nil {
			fmt.Fprintf(s.errOut, "%v\n", err)
			break
		}
		fmt.Fprint(s.out, Unparse(result.AST, result.Bindings))
	case ":help":
		fmt.Fprintln(s.out, ":show   print accepted declarations with their links")
		fmt.Fprintln(s.out, ":reset  forget all declarations")
		fmt.Fprintln(s.out, ":quit   leave the repl")
	default:
		fmt.Fprintf(s.out, "unknown command %s. Type :help for a list.\n", cmd)
	}
	return true
}
