package main

// Bindings links identifier nodes to the symbols they resolved to. It is
// filled in once by ResolveProgram and only read afterwards.
type Bindings struct {
	symbols map[*ASTNode]*Symbol
}

func NewBindings() *Bindings {
	return &Bindings{symbols: map[*ASTNode]*Symbol{}}
}

// SymbolOf returns the symbol linked to node, or nil if node was never
// linked (undeclared name, bad declaration, or not an identifier).
func (b *Bindings) SymbolOf(node *ASTNode) *Symbol {
	if b == nil {
		return nil
	}
	return b.symbols[node]
}

func (b *Bindings) Len() int {
	return len(b.symbols)
}

func (b *Bindings) bind(node *ASTNode, sym *Symbol) {
	if _, ok := b.symbols[node]; ok {
		internalFault("identifier %q at %d:%d linked twice", node.String, node.Line, node.Col)
	}
	b.symbols[node] = sym
}

// resolver carries the state of one name-resolution run.
type resolver struct {
	reporter Reporter
	bindings *Bindings

	// For a colon-access whose field is itself a tuple: the definition to
	// resolve the next field of a chained access in.
	accessDefs map[*ASTNode]*Symbol
	// Colon-accesses where some step already failed.
	badAccess map[*ASTNode]bool
}

// ResolveProgram declares every name in program, reports declaration and
// use errors to reporter, and returns the identifier links. The returned
// error is non-nil only for internal faults.
func ResolveProgram(program *ASTNode, reporter Reporter) (bindings *Bindings, err error) {
	defer recoverInternal(&err)

	if program == nil || program.Kind != NodeProgram {
		internalFault("ResolveProgram called on a non-program node")
	}

	r := &resolver{
		reporter:   reporter,
		bindings:   NewBindings(),
		accessDefs: map[*ASTNode]*Symbol{},
		badAccess:  map[*ASTNode]bool{},
	}

	st := NewSymbolTable()
	for _, decl := range program.Children {
		r.resolveDecl(decl, st)
	}

	r.popScope(st)
	if st.Depth() != 0 {
		internalFault("%d scopes left open after resolution", st.Depth())
	}
	return r.bindings, nil
}

func (r *resolver) report(node *ASTNode, message string) {
	r.reporter.Report(node.Line, node.Col, message)
}

// The table helpers below turn scope-stack failures into internal faults:
// resolution always pairs its pushes and pops, so a failure here is a bug.

func (r *resolver) lookupLocal(st *SymbolTable, name string) *Symbol {
	sym, err := st.LookupLocal(name)
	if err != nil {
		internalFault("lookup of %q: %v", name, err)
	}
	return sym
}

func (r *resolver) lookupGlobal(st *SymbolTable, name string) *Symbol {
	sym, err := st.LookupGlobal(name)
	if err != nil {
		internalFault("lookup of %q: %v", name, err)
	}
	return sym
}

func (r *resolver) declare(st *SymbolTable, name *ASTNode, sym *Symbol) {
	if err := st.Declare(name.String, sym); err != nil {
		internalFault("%v", err)
	}
	r.bindings.bind(name, sym)
}

func (r *resolver) popScope(st *SymbolTable) {
	if err := st.PopScope(); err != nil {
		internalFault("pop scope: %v", err)
	}
}

func (r *resolver) resolveDecl(decl *ASTNode, st *SymbolTable) {
	switch decl.Kind {
	case NodeVarDecl:
		r.resolveVarDecl(decl, st, st)
	case NodeFuncDecl:
		r.resolveFuncDecl(decl, st)
	case NodeTupleDecl:
		r.resolveTupleDecl(decl, st)
	default:
		internalFault("unexpected %s in declaration list", decl.Kind)
	}
}

// resolveVarDecl handles variables, formals and tuple fields. The name goes
// into symTab; a tuple type name is looked up in globalTab, which differs
// from symTab only for tuple fields. It returns the new symbol, or nil if
// the declaration was rejected.
func (r *resolver) resolveVarDecl(decl *ASTNode, symTab, globalTab *SymbolTable) *Symbol {
	name := decl.Children[0]
	bad := false

	var def *Symbol
	switch {
	case IsVoidType(decl.TypeAST):
		r.report(name, "Non-function declared void")
		bad = true
	case IsTupleType(decl.TypeAST):
		def = r.resolveTupleTypeName(decl.Children[1], globalTab)
		bad = def == nil
	}

	if r.lookupLocal(symTab, name.String) != nil {
		r.report(name, "Multiply-declared identifier")
		bad = true
	}
	if bad {
		return nil
	}

	var sym *Symbol
	if def != nil {
		sym = NewTupleSymbol(name.String, def)
	} else {
		sym = NewVariableSymbol(name.String, decl.TypeAST)
	}
	r.declare(symTab, name, sym)
	return sym
}

// resolveTupleTypeName checks that typeName names a tuple definition and
// returns that definition.
func (r *resolver) resolveTupleTypeName(typeName *ASTNode, st *SymbolTable) *Symbol {
	sym := r.lookupGlobal(st, typeName.String)
	if sym == nil || sym.Kind != SymbolTupleDef {
		r.report(typeName, "Invalid name of tuple type")
		return nil
	}
	r.bindings.bind(typeName, sym)
	return sym
}

func (r *resolver) resolveFuncDecl(decl *ASTNode, st *SymbolTable) {
	name, formals, body := decl.Children[0], decl.Children[1], decl.Children[2]

	if IsTupleType(decl.TypeAST) {
		r.resolveTupleTypeName(decl.Children[3], st)
	}

	var fn *Symbol
	if r.lookupLocal(st, name.String) != nil {
		r.report(name, "Multiply-declared identifier")
	} else {
		fn = NewFunctionSymbol(name.String, decl.TypeAST, len(formals.Children))
		r.declare(st, name, fn)
	}

	st.PushScope()
	var paramTypes []*TypeNode
	for _, formal := range formals.Children {
		if sym := r.resolveVarDecl(formal, st, st); sym != nil {
			paramTypes = append(paramTypes, sym.Type)
		}
	}
	if fn != nil {
		fn.AddFormals(paramTypes)
	}
	r.resolveBody(body, st)
	r.popScope(st)
}

func (r *resolver) resolveTupleDecl(decl *ASTNode, st *SymbolTable) {
	name := decl.Children[0]

	dup := r.lookupLocal(st, name.String) != nil
	if dup {
		r.report(name, "Multiply-declared identifier")
	}

	// Fields live in their own table; their tuple types resolve in st.
	fields := NewSymbolTable()
	for _, field := range decl.Children[1:] {
		r.resolveVarDecl(field, fields, st)
	}

	if !dup {
		r.declare(st, name, NewTupleDefSymbol(name.String, fields))
	}
}

// resolveBody resolves a block's declarations and statements in the
// current innermost scope.
func (r *resolver) resolveBody(block *ASTNode, st *SymbolTable) {
	for _, child := range block.Children {
		if child.Kind == NodeVarDecl {
			r.resolveVarDecl(child, st, st)
		} else {
			r.resolveStmt(child, st)
		}
	}
}

func (r *resolver) resolveScopedBody(block *ASTNode, st *SymbolTable) {
	st.PushScope()
	r.resolveBody(block, st)
	r.popScope(st)
}

func (r *resolver) resolveStmt(stmt *ASTNode, st *SymbolTable) {
	switch stmt.Kind {
	case NodeAssignStmt, NodeCallStmt, NodePostInc, NodePostDec, NodeRead, NodeWrite:
		r.resolveExpr(stmt.Children[0], st)
	case NodeReturn:
		if len(stmt.Children) > 0 {
			r.resolveExpr(stmt.Children[0], st)
		}
	case NodeIf, NodeWhile:
		r.resolveExpr(stmt.Children[0], st)
		r.resolveScopedBody(stmt.Children[1], st)
	case NodeIfElse:
		r.resolveExpr(stmt.Children[0], st)
		r.resolveScopedBody(stmt.Children[1], st)
		r.resolveScopedBody(stmt.Children[2], st)
	default:
		internalFault("unexpected %s in statement list", stmt.Kind)
	}
}

func (r *resolver) resolveExpr(expr *ASTNode, st *SymbolTable) {
	switch expr.Kind {
	case NodeTrue, NodeFalse, NodeInteger, NodeString:
	case NodeIdent:
		r.resolveIdent(expr, st)
	case NodeAccess:
		r.resolveAccess(expr, st)
	case NodeAssign, NodeBinary, NodeUnary, NodeCall:
		for _, child := range expr.Children {
			r.resolveExpr(child, st)
		}
	default:
		internalFault("unexpected %s in expression", expr.Kind)
	}
}

func (r *resolver) resolveIdent(ident *ASTNode, st *SymbolTable) {
	sym := r.lookupGlobal(st, ident.String)
	if sym == nil {
		r.report(ident, "Undeclared identifier")
		return
	}
	r.bindings.bind(ident, sym)
}

// resolveAccess resolves base:field. Once a step of a chained access has
// failed, the outer steps stay silent.
func (r *resolver) resolveAccess(access *ASTNode, st *SymbolTable) {
	base, field := access.Children[0], access.Children[1]
	r.resolveExpr(base, st)

	var def *Symbol
	switch base.Kind {
	case NodeIdent:
		sym := r.bindings.SymbolOf(base)
		switch {
		case sym == nil:
		case sym.Kind == SymbolTuple:
			def = sym.TupleDef
		default:
			r.report(base, "Colon-access of non-tuple type")
		}
	case NodeAccess:
		if !r.badAccess[base] {
			def = r.accessDefs[base]
			if def == nil {
				r.report(base, "Colon-access of non-tuple type")
			}
		}
	default:
		internalFault("colon-access base is %s", base.Kind)
	}

	if def == nil {
		r.badAccess[access] = true
		return
	}

	sym := r.lookupGlobal(def.Fields, field.String)
	if sym == nil {
		r.report(field, "Invalid tuple field name")
		r.badAccess[access] = true
		return
	}
	r.bindings.bind(field, sym)
	if sym.Kind == SymbolTuple {
		r.accessDefs[access] = sym.TupleDef
	}
}
