package main

// Result is everything one analysis run produced.
type Result struct {
	AST      *ASTNode
	Bindings *Bindings
	Errors   *ErrorCollection
}

// Failed reports whether any diagnostic was produced.
func (r *Result) Failed() bool {
	return r.Errors.HasErrors()
}

// Analyze lexes, parses, resolves and type checks src. Diagnostics from
// every phase end up in Result.Errors; both semantic passes always run so
// one call reports as much as possible. The error return is reserved for
// internal faults.
func Analyze(src []byte) (*Result, error) {
	l := NewLexer(src)
	l.NextToken()
	program := ParseProgram(l)

	result := &Result{AST: program, Errors: l.Errors}

	bindings, err := ResolveProgram(program, l.Errors)
	if err != nil {
		return result, err
	}
	result.Bindings = bindings

	if err := CheckProgram(program, bindings, l.Errors); err != nil {
		return result, err
	}
	return result, nil
}
