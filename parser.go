package main

import "fmt"

// syntaxBailout unwinds the parser back to the nearest declaration or
// statement boundary after a syntax error has been reported.
type syntaxBailout struct{}

// syntaxError reports at the current token and abandons the construct being
// parsed.
func syntaxError(l *Lexer, format string, args ...any) {
	l.Errors.Report(l.CurrLine, l.CurrCol, "syntax error: "+fmt.Sprintf(format, args...))
	panic(syntaxBailout{})
}

func describeToken(l *Lexer) string {
	switch l.CurrTokenType {
	case EOF:
		return "end of file"
	case IDENT, INT, STRING:
		return fmt.Sprintf("%q", l.CurrLiteral)
	default:
		return "'" + l.CurrLiteral + "'"
	}
}

// SkipToken advances past the current token, which must be of the expected
// type.
func SkipToken(l *Lexer, expectedType TokenType) {
	if l.CurrTokenType != expectedType {
		syntaxError(l, "expected '%s', found %s", tokenSpelling(expectedType), describeToken(l))
	}
	l.NextToken()
}

func tokenSpelling(t TokenType) string {
	for word, kw := range keywords {
		if kw == t {
			return word
		}
	}
	switch t {
	case IDENT:
		return "identifier"
	case INT:
		return "integer literal"
	case STRING:
		return "string literal"
	}
	return string(t)
}

// recoverSyntax runs parse, and on a syntax error skips ahead to the next
// '.' (consumed) or ']' (left for the enclosing block). It returns nil in
// that case.
func recoverSyntax(l *Lexer, parse func() *ASTNode) (node *ASTNode) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(syntaxBailout); !ok {
				panic(r)
			}
			for l.CurrTokenType != DOT && l.CurrTokenType != RBRACKET && l.CurrTokenType != EOF {
				l.NextToken()
			}
			if l.CurrTokenType == DOT {
				l.NextToken()
			}
			node = nil
		}
	}()
	return parse()
}

// ParseProgram parses declarations until EOF. The lexer must already be
// positioned on the first token.
func ParseProgram(l *Lexer) *ASTNode {
	program := &ASTNode{Kind: NodeProgram, Line: l.CurrLine, Col: l.CurrCol}
	for l.CurrTokenType != EOF {
		decl := recoverSyntax(l, func() *ASTNode { return parseDecl(l, true) })
		if decl != nil {
			program.Children = append(program.Children, decl)
		} else if l.CurrTokenType == RBRACKET {
			// No enclosing block to close at top level.
			l.NextToken()
		}
	}
	return program
}

func isTypeStart(t TokenType) bool {
	return t == INTEGER || t == LOGICAL || t == VOID || t == TUPLE
}

func newIdent(l *Lexer) *ASTNode {
	if l.CurrTokenType != IDENT {
		syntaxError(l, "expected identifier, found %s", describeToken(l))
	}
	node := &ASTNode{Kind: NodeIdent, Line: l.CurrLine, Col: l.CurrCol, String: l.CurrLiteral}
	l.NextToken()
	return node
}

// parseType parses a type. For "tuple T" it also returns the identifier
// naming the tuple type.
func parseType(l *Lexer) (*TypeNode, *ASTNode) {
	switch l.CurrTokenType {
	case INTEGER:
		l.NextToken()
		return TypeInteger, nil
	case LOGICAL:
		l.NextToken()
		return TypeLogical, nil
	case VOID:
		l.NextToken()
		return TypeVoid, nil
	case TUPLE:
		l.NextToken()
		name := newIdent(l)
		return NewTupleType(name.String), name
	default:
		syntaxError(l, "expected type, found %s", describeToken(l))
		return nil, nil
	}
}

// parseDecl parses a variable, function or tuple declaration. Function and
// tuple declarations are only accepted at top level.
func parseDecl(l *Lexer, topLevel bool) *ASTNode {
	line, col := l.CurrLine, l.CurrCol

	if l.CurrTokenType == TUPLE {
		SkipToken(l, TUPLE)
		typeName := newIdent(l)
		if l.CurrTokenType == LBRACE {
			if !topLevel {
				syntaxError(l, "tuple declarations are only allowed at top level")
			}
			return parseTupleBody(l, typeName, line, col)
		}
		name := newIdent(l)
		return finishDecl(l, NewTupleType(typeName.String), name, typeName, line, col, topLevel)
	}

	typ, _ := parseType(l)
	name := newIdent(l)
	return finishDecl(l, typ, name, nil, line, col, topLevel)
}

func finishDecl(l *Lexer, typ *TypeNode, name, typeName *ASTNode, line, col int, topLevel bool) *ASTNode {
	if l.CurrTokenType == LBRACE && topLevel {
		return parseFuncRest(l, typ, name, typeName, line, col)
	}
	SkipToken(l, DOT)
	node := &ASTNode{Kind: NodeVarDecl, Line: line, Col: col, TypeAST: typ, Children: []*ASTNode{name}}
	if typeName != nil {
		node.Children = append(node.Children, typeName)
	}
	return node
}

func parseTupleBody(l *Lexer, name *ASTNode, line, col int) *ASTNode {
	SkipToken(l, LBRACE)
	node := &ASTNode{Kind: NodeTupleDecl, Line: line, Col: col, Children: []*ASTNode{name}}
	for l.CurrTokenType != RBRACE && l.CurrTokenType != EOF {
		if !isTypeStart(l.CurrTokenType) {
			syntaxError(l, "expected field declaration, found %s", describeToken(l))
		}
		node.Children = append(node.Children, parseDecl(l, false))
	}
	SkipToken(l, RBRACE)
	SkipToken(l, DOT)
	return node
}

func parseFuncRest(l *Lexer, ret *TypeNode, name, retTypeName *ASTNode, line, col int) *ASTNode {
	formals := &ASTNode{Kind: NodeFormals, Line: l.CurrLine, Col: l.CurrCol}
	SkipToken(l, LBRACE)
	for l.CurrTokenType != RBRACE {
		if len(formals.Children) > 0 {
			SkipToken(l, COMMA)
		}
		fline, fcol := l.CurrLine, l.CurrCol
		typ, typeName := parseType(l)
		formal := &ASTNode{Kind: NodeFormal, Line: fline, Col: fcol, TypeAST: typ, Children: []*ASTNode{newIdent(l)}}
		if typeName != nil {
			formal.Children = append(formal.Children, typeName)
		}
		formals.Children = append(formals.Children, formal)
	}
	SkipToken(l, RBRACE)

	body := parseBlock(l)
	node := &ASTNode{
		Kind:     NodeFuncDecl,
		Line:     line,
		Col:      col,
		TypeAST:  ret,
		Children: []*ASTNode{name, formals, body},
	}
	if retTypeName != nil {
		node.Children = append(node.Children, retTypeName)
	}
	return node
}

// parseBlock parses '[' varDecl* stmt* ']'. Statements that fail to parse
// are dropped; the block itself always succeeds unless '[' is missing.
func parseBlock(l *Lexer) *ASTNode {
	block := &ASTNode{Kind: NodeBlock, Line: l.CurrLine, Col: l.CurrCol}
	SkipToken(l, LBRACKET)

	for isTypeStart(l.CurrTokenType) {
		decl := recoverSyntax(l, func() *ASTNode { return parseDecl(l, false) })
		if decl != nil {
			block.Children = append(block.Children, decl)
		}
	}
	for l.CurrTokenType != RBRACKET && l.CurrTokenType != EOF {
		if isTypeStart(l.CurrTokenType) {
			recoverSyntax(l, func() *ASTNode {
				syntaxError(l, "declarations must come before statements")
				return nil
			})
			continue
		}
		stmt := recoverSyntax(l, func() *ASTNode { return ParseStatement(l) })
		if stmt != nil {
			block.Children = append(block.Children, stmt)
		}
	}
	SkipToken(l, RBRACKET)
	return block
}

// ParseStatement parses a single statement.
func ParseStatement(l *Lexer) *ASTNode {
	line, col := l.CurrLine, l.CurrCol

	switch l.CurrTokenType {
	case IF:
		SkipToken(l, IF)
		cond := ParseExpression(l)
		then := parseBlock(l)
		if l.CurrTokenType != ELSE {
			return &ASTNode{Kind: NodeIf, Line: line, Col: col, Children: []*ASTNode{cond, then}}
		}
		SkipToken(l, ELSE)
		els := parseBlock(l)
		return &ASTNode{Kind: NodeIfElse, Line: line, Col: col, Children: []*ASTNode{cond, then, els}}

	case WHILE:
		SkipToken(l, WHILE)
		cond := ParseExpression(l)
		body := parseBlock(l)
		return &ASTNode{Kind: NodeWhile, Line: line, Col: col, Children: []*ASTNode{cond, body}}

	case READ:
		SkipToken(l, READ)
		SkipToken(l, READ_OP)
		loc := ParseExpression(l)
		if !loc.IsLocation() {
			l.Errors.Report(loc.Line, loc.Col, "syntax error: read target must be a location")
			panic(syntaxBailout{})
		}
		SkipToken(l, DOT)
		return &ASTNode{Kind: NodeRead, Line: line, Col: col, Children: []*ASTNode{loc}}

	case WRITE:
		SkipToken(l, WRITE)
		SkipToken(l, WRITE_OP)
		expr := ParseExpression(l)
		SkipToken(l, DOT)
		return &ASTNode{Kind: NodeWrite, Line: line, Col: col, Children: []*ASTNode{expr}}

	case RETURN:
		SkipToken(l, RETURN)
		node := &ASTNode{Kind: NodeReturn, Line: line, Col: col}
		if l.CurrTokenType != DOT {
			node.Children = append(node.Children, ParseExpression(l))
		}
		SkipToken(l, DOT)
		return node

	default:
		expr := ParseExpression(l)
		switch {
		case expr.Kind == NodeAssign:
			SkipToken(l, DOT)
			return &ASTNode{Kind: NodeAssignStmt, Line: line, Col: col, Children: []*ASTNode{expr}}
		case expr.Kind == NodeCall:
			SkipToken(l, DOT)
			return &ASTNode{Kind: NodeCallStmt, Line: line, Col: col, Children: []*ASTNode{expr}}
		case expr.IsLocation() && l.CurrTokenType == PLUS_PLUS:
			SkipToken(l, PLUS_PLUS)
			SkipToken(l, DOT)
			return &ASTNode{Kind: NodePostInc, Line: line, Col: col, Children: []*ASTNode{expr}}
		case expr.IsLocation() && l.CurrTokenType == MINUS_MINUS:
			SkipToken(l, MINUS_MINUS)
			SkipToken(l, DOT)
			return &ASTNode{Kind: NodePostDec, Line: line, Col: col, Children: []*ASTNode{expr}}
		default:
			syntaxError(l, "expression is not a statement")
			return nil
		}
	}
}

// precedence returns the binding power of a binary operator token, or 0.
func precedence(tokenType TokenType) int {
	switch tokenType {
	case ASSIGN:
		return 1 // right-associative
	case OR:
		return 2
	case AND:
		return 3
	case EQ, NOT_EQ, LT, GT, LE, GE:
		return 4 // non-associative
	case PLUS, MINUS:
		return 5
	case ASTERISK, SLASH:
		return 6
	default:
		return 0
	}
}

// ParseExpression parses an expression and returns an AST node
func ParseExpression(l *Lexer) *ASTNode {
	return parseExpressionWithPrecedence(l, 1)
}

// parseExpressionWithPrecedence implements precedence climbing
func parseExpressionWithPrecedence(l *Lexer, minPrec int) *ASTNode {
	left := parseUnary(l)

	for {
		prec := precedence(l.CurrTokenType)
		if prec == 0 || prec < minPrec {
			break
		}
		op := l.CurrLiteral

		if op == "=" {
			if !left.IsLocation() {
				syntaxError(l, "left side of assignment must be a location")
			}
			SkipToken(l, ASSIGN)
			right := parseExpressionWithPrecedence(l, prec)
			left = &ASTNode{Kind: NodeAssign, Line: left.Line, Col: left.Col, Children: []*ASTNode{left, right}}
			continue
		}

		l.NextToken()
		right := parseExpressionWithPrecedence(l, prec+1)
		left = &ASTNode{
			Kind:     NodeBinary,
			Line:     left.Line,
			Col:      left.Col,
			Op:       op,
			Children: []*ASTNode{left, right},
		}

		if prec == 4 && precedence(l.CurrTokenType) == 4 {
			syntaxError(l, "comparison operators cannot be chained")
		}
	}

	return left
}

func parseUnary(l *Lexer) *ASTNode {
	if l.CurrTokenType == NOT || l.CurrTokenType == MINUS {
		node := &ASTNode{Kind: NodeUnary, Line: l.CurrLine, Col: l.CurrCol, Op: l.CurrLiteral}
		l.NextToken()
		node.Children = []*ASTNode{parseUnary(l)}
		return node
	}
	return parsePostfix(l)
}

// parsePostfix handles chained colon-access: loc ':' ID ':' ID ...
func parsePostfix(l *Lexer) *ASTNode {
	left := parsePrimary(l)
	for l.CurrTokenType == COLON {
		if !left.IsLocation() {
			syntaxError(l, "colon-access requires a location on its left")
		}
		SkipToken(l, COLON)
		field := newIdent(l)
		left = &ASTNode{Kind: NodeAccess, Line: field.Line, Col: field.Col, Children: []*ASTNode{left, field}}
	}
	return left
}

// parsePrimary handles primary expressions (literals, identifiers, calls,
// parentheses)
func parsePrimary(l *Lexer) *ASTNode {
	line, col := l.CurrLine, l.CurrCol

	switch l.CurrTokenType {
	case INT:
		node := &ASTNode{Kind: NodeInteger, Line: line, Col: col, Integer: l.CurrIntValue}
		SkipToken(l, INT)
		return node

	case STRING:
		node := &ASTNode{Kind: NodeString, Line: line, Col: col, String: l.CurrLiteral}
		SkipToken(l, STRING)
		return node

	case TRUE:
		SkipToken(l, TRUE)
		return &ASTNode{Kind: NodeTrue, Line: line, Col: col}

	case FALSE:
		SkipToken(l, FALSE)
		return &ASTNode{Kind: NodeFalse, Line: line, Col: col}

	case IDENT:
		ident := newIdent(l)
		if l.CurrTokenType != LPAREN {
			return ident
		}
		SkipToken(l, LPAREN)
		call := &ASTNode{Kind: NodeCall, Line: line, Col: col, Children: []*ASTNode{ident}}
		for l.CurrTokenType != RPAREN {
			if len(call.Children) > 1 {
				SkipToken(l, COMMA)
			}
			call.Children = append(call.Children, ParseExpression(l))
		}
		SkipToken(l, RPAREN)
		return call

	case LPAREN:
		SkipToken(l, LPAREN)
		expr := ParseExpression(l)
		SkipToken(l, RPAREN)
		return expr

	default:
		syntaxError(l, "expected expression, found %s", describeToken(l))
		return nil
	}
}
