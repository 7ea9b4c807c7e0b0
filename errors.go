package main

import (
	"fmt"
	"strings"
)

// Reporter receives line/column-tagged diagnostics. Reporting never stops
// the caller; the collector decides what to do with the message.
type Reporter interface {
	Report(line, col int, message string)
}

// CompileError is one diagnostic about the source program.
type CompileError struct {
	Line    int
	Col     int
	Message string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Message)
}

// ErrorCollection accumulates diagnostics in the order they were reported.
// Every reported diagnostic is fatal: HasErrors is the "did this run fail"
// answer consulted after all passes have run.
type ErrorCollection struct {
	errors []*CompileError
}

func NewErrorCollection() *ErrorCollection {
	return &ErrorCollection{}
}

func (ec *ErrorCollection) Report(line, col int, message string) {
	ec.errors = append(ec.errors, &CompileError{Line: line, Col: col, Message: message})
}

func (ec *ErrorCollection) HasErrors() bool {
	return len(ec.errors) > 0
}

func (ec *ErrorCollection) Count() int {
	return len(ec.errors)
}

func (ec *ErrorCollection) Errors() []*CompileError {
	return ec.errors
}

// Messages returns just the message text of each diagnostic, in order.
func (ec *ErrorCollection) Messages() []string {
	msgs := make([]string, len(ec.errors))
	for i, err := range ec.errors {
		msgs[i] = err.Message
	}
	return msgs
}

// String renders one "line:col: message" per line.
func (ec *ErrorCollection) String() string {
	var sb strings.Builder
	for i, err := range ec.errors {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// InternalError is raised (via panic) when a pass finds the tree or the
// scope stack in a state a well-formed parser can never produce. It is
// recovered at the pass boundary and returned as an ordinary error.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string {
	return "internal error: " + e.Message
}

func internalFault(format string, args ...any) {
	panic(&InternalError{Message: fmt.Sprintf(format, args...)})
}

// recoverInternal converts an InternalError panic into *errp. Other panics
// are re-raised untouched.
func recoverInternal(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if ie, ok := r.(*InternalError); ok {
		*errp = ie
		return
	}
	panic(r)
}
