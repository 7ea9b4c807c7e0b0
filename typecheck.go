package main

// TypeChecker holds the state of one type-checking run.
type TypeChecker struct {
	bindings *Bindings
	reporter Reporter

	// Declared return type of the function whose body is being checked.
	returnType *TypeNode
}

func NewTypeChecker(bindings *Bindings, reporter Reporter) *TypeChecker {
	return &TypeChecker{bindings: bindings, reporter: reporter}
}

func (tc *TypeChecker) report(node *ASTNode, message string) {
	tc.reporter.Report(node.Line, node.Col, message)
}

// CheckProgram type checks every function body in program using the links
// recorded by ResolveProgram. The returned error is non-nil only for
// internal faults.
func CheckProgram(program *ASTNode, bindings *Bindings, reporter Reporter) (err error) {
	defer recoverInternal(&err)

	tc := NewTypeChecker(bindings, reporter)
	for _, decl := range program.Children {
		switch decl.Kind {
		case NodeFuncDecl:
			tc.returnType = decl.TypeAST
			CheckBlock(decl.Children[2], tc)
			tc.returnType = nil
		case NodeVarDecl, NodeTupleDecl:
			// Nothing to check.
		default:
			internalFault("unexpected %s in declaration list", decl.Kind)
		}
	}
	return nil
}

func CheckBlock(block *ASTNode, tc *TypeChecker) {
	for _, stmt := range block.Stmts() {
		CheckStatement(stmt, tc)
	}
}

func CheckStatement(stmt *ASTNode, tc *TypeChecker) {
	switch stmt.Kind {
	case NodeAssignStmt, NodeCallStmt:
		CheckExpression(stmt.Children[0], tc)

	case NodePostInc, NodePostDec:
		loc := stmt.Children[0]
		t := CheckExpression(loc, tc)
		if !IsInvalidType(t) && !IsIntegerType(t) {
			tc.report(loc, "Arithmetic operator used with non-integer operand")
		}

	case NodeRead:
		loc := stmt.Children[0]
		t := CheckExpression(loc, tc)
		switch {
		case IsFunctionType(t):
			tc.report(loc, "Read attempt of function name")
		case IsTupleType(t):
			tc.report(loc, "Read attempt of tuple variable")
		case IsTupleDefType(t):
			tc.report(loc, "Read attempt of tuple name")
		}

	case NodeWrite:
		expr := stmt.Children[0]
		t := CheckExpression(expr, tc)
		switch {
		case IsFunctionType(t):
			tc.report(expr, "Write attempt of function name")
		case IsTupleType(t):
			tc.report(expr, "Write attempt of tuple variable")
		case IsTupleDefType(t):
			tc.report(expr, "Write attempt of tuple name")
		case IsVoidType(t):
			tc.report(expr, "Write attempt of void")
		}

	case NodeIf:
		checkGuard(stmt.Children[0], "if", tc)
		CheckBlock(stmt.Children[1], tc)

	case NodeIfElse:
		checkGuard(stmt.Children[0], "if", tc)
		CheckBlock(stmt.Children[1], tc)
		CheckBlock(stmt.Children[2], tc)

	case NodeWhile:
		checkGuard(stmt.Children[0], "while", tc)
		CheckBlock(stmt.Children[1], tc)

	case NodeReturn:
		checkReturn(stmt, tc)

	default:
		internalFault("unexpected %s in statement list", stmt.Kind)
	}
}

// isLogicalShape reports whether expr is an operator that always yields a
// logical value.
func isLogicalShape(expr *ASTNode) bool {
	switch expr.Kind {
	case NodeBinary:
		return isRelationalOp(expr.Op) || isEqualityOp(expr.Op) || isLogicalOp(expr.Op)
	case NodeUnary:
		return expr.Op == "~"
	default:
		return false
	}
}

// checkGuard accepts comparison and logical operators, and any other
// expression whose type is logical (a logical variable or call).
func checkGuard(cond *ASTNode, construct string, tc *TypeChecker) {
	t := CheckExpression(cond, tc)
	if isLogicalShape(cond) || IsLogicalType(t) || IsInvalidType(t) {
		return
	}
	tc.report(cond, "Non-logical expression used in "+construct+" condition")
}

func checkReturn(stmt *ASTNode, tc *TypeChecker) {
	if tc.returnType == nil {
		internalFault("return statement outside a function body")
	}

	if len(stmt.Children) == 0 {
		if !IsVoidType(tc.returnType) {
			tc.report(stmt, "Return value missing")
		}
		return
	}

	expr := stmt.Children[0]
	t := CheckExpression(expr, tc)
	switch {
	case IsVoidType(tc.returnType):
		tc.report(expr, "Return with value in void function")
	case IsInvalidType(t):
	case !TypesEqual(t, tc.returnType):
		tc.report(expr, "Return value wrong type")
	}
}

// CheckExpression reports every type error inside expr and returns the type
// expr evaluates to. Names that failed to resolve give TypeErr, which the
// enclosing checks stay silent about.
func CheckExpression(expr *ASTNode, tc *TypeChecker) *TypeNode {
	switch expr.Kind {
	case NodeTrue, NodeFalse:
		return TypeLogical
	case NodeInteger:
		return TypeInteger
	case NodeString:
		return TypeString

	case NodeIdent:
		return symbolType(tc.bindings.SymbolOf(expr))
	case NodeAccess:
		return symbolType(tc.bindings.SymbolOf(expr.Children[1]))

	case NodeAssign:
		return checkAssign(expr, tc)
	case NodeCall:
		return checkCall(expr, tc)

	case NodeUnary:
		operand := expr.Children[0]
		t := CheckExpression(operand, tc)
		switch expr.Op {
		case "-":
			requireOperand(operand, t, IsIntegerType, "Arithmetic operator used with non-integer operand", tc)
			return TypeInteger
		case "~":
			requireOperand(operand, t, IsLogicalType, "Logical operator used with non-logical operand", tc)
			return TypeLogical
		}
		internalFault("unknown unary operator %q", expr.Op)

	case NodeBinary:
		left, right := expr.Children[0], expr.Children[1]
		lt := CheckExpression(left, tc)
		rt := CheckExpression(right, tc)
		switch {
		case isArithmeticOp(expr.Op):
			requireOperand(left, lt, IsIntegerType, "Arithmetic operator used with non-integer operand", tc)
			requireOperand(right, rt, IsIntegerType, "Arithmetic operator used with non-integer operand", tc)
			return TypeInteger
		case isRelationalOp(expr.Op):
			requireOperand(left, lt, IsIntegerType, "Relational operator used with non-integer operand", tc)
			requireOperand(right, rt, IsIntegerType, "Relational operator used with non-integer operand", tc)
			return TypeLogical
		case isLogicalOp(expr.Op):
			requireOperand(left, lt, IsLogicalType, "Logical operator used with non-logical operand", tc)
			requireOperand(right, rt, IsLogicalType, "Logical operator used with non-logical operand", tc)
			return TypeLogical
		case isEqualityOp(expr.Op):
			checkEquality(expr, lt, rt, tc)
			return TypeLogical
		}
		internalFault("unknown binary operator %q", expr.Op)
	}

	internalFault("unexpected %s in expression", expr.Kind)
	return nil
}

func symbolType(sym *Symbol) *TypeNode {
	if sym == nil {
		return TypeErr
	}
	return sym.Type
}

func requireOperand(operand *ASTNode, t *TypeNode, ok func(*TypeNode) bool, message string, tc *TypeChecker) {
	if !IsInvalidType(t) && !ok(t) {
		tc.report(operand, message)
	}
}

func checkEquality(expr *ASTNode, lt, rt *TypeNode, tc *TypeChecker) {
	if IsInvalidType(lt) || IsInvalidType(rt) {
		return
	}
	if !TypesEqual(lt, rt) {
		tc.report(expr, "Mismatched type")
		return
	}
	switch {
	case IsFunctionType(lt):
		tc.report(expr, "Equality operator used with function names")
	case IsVoidType(lt):
		tc.report(expr, "Equality operator used with void function calls")
	case IsTupleType(lt):
		tc.report(expr, "Equality operator used with tuple variables")
	case IsTupleDefType(lt):
		tc.report(expr, "Equality operator used with tuple names")
	}
}

func checkAssign(expr *ASTNode, tc *TypeChecker) *TypeNode {
	lt := CheckExpression(expr.Children[0], tc)
	rt := CheckExpression(expr.Children[1], tc)
	if IsInvalidType(lt) || IsInvalidType(rt) {
		return lt
	}
	if !TypesEqual(lt, rt) {
		tc.report(expr, "Mismatched type")
		return lt
	}
	switch {
	case IsFunctionType(lt):
		tc.report(expr, "Assignment to function name")
	case IsTupleType(lt):
		tc.report(expr, "Assignment to tuple variable")
	case IsTupleDefType(lt):
		tc.report(expr, "Assignment to tuple name")
	}
	return lt
}

// checkCall returns the callee's return type, or TypeErr when the callee
// is not a function.
func checkCall(call *ASTNode, tc *TypeChecker) *TypeNode {
	callee, args := call.Children[0], call.Children[1:]

	argTypes := make([]*TypeNode, len(args))
	for i, arg := range args {
		argTypes[i] = CheckExpression(arg, tc)
	}

	fn := tc.bindings.SymbolOf(callee)
	if fn == nil {
		return TypeErr
	}
	if fn.Kind != SymbolFunction {
		tc.report(callee, "Call attempt on non-function")
		return TypeErr
	}
	if len(args) != fn.NumParams {
		tc.report(callee, "Function call with wrong # of args")
		return fn.ReturnType
	}
	// Formals that failed to declare have no recorded type; their
	// positions cannot be matched up.
	if len(fn.ParamTypes) == fn.NumParams {
		for i, arg := range args {
			if !IsInvalidType(argTypes[i]) && !TypesEqual(argTypes[i], fn.ParamTypes[i]) {
				tc.report(arg, "Actual type does not match formal type")
			}
		}
	}
	return fn.ReturnType
}
