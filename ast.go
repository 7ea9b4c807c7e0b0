package main

// NodeKind represents different types of AST nodes
type NodeKind string

const (
	// Declarations
	NodeProgram   NodeKind = "NodeProgram"
	NodeVarDecl   NodeKind = "NodeVarDecl"
	NodeFuncDecl  NodeKind = "NodeFuncDecl"
	NodeFormals   NodeKind = "NodeFormals"
	NodeFormal    NodeKind = "NodeFormal"
	NodeTupleDecl NodeKind = "NodeTupleDecl"
	NodeBlock     NodeKind = "NodeBlock"

	// Statements
	NodeAssignStmt NodeKind = "NodeAssignStmt"
	NodePostInc    NodeKind = "NodePostInc"
	NodePostDec    NodeKind = "NodePostDec"
	NodeIf         NodeKind = "NodeIf"
	NodeIfElse     NodeKind = "NodeIfElse"
	NodeWhile      NodeKind = "NodeWhile"
	NodeRead       NodeKind = "NodeRead"
	NodeWrite      NodeKind = "NodeWrite"
	NodeCallStmt   NodeKind = "NodeCallStmt"
	NodeReturn     NodeKind = "NodeReturn"

	// Expressions
	NodeTrue    NodeKind = "NodeTrue"
	NodeFalse   NodeKind = "NodeFalse"
	NodeIdent   NodeKind = "NodeIdent"
	NodeInteger NodeKind = "NodeInteger"
	NodeString  NodeKind = "NodeString"
	NodeAccess  NodeKind = "NodeAccess"
	NodeAssign  NodeKind = "NodeAssign"
	NodeCall    NodeKind = "NodeCall"
	NodeUnary   NodeKind = "NodeUnary"
	NodeBinary  NodeKind = "NodeBinary"
)

// ASTNode represents a node in the Abstract Syntax Tree.
//
// Children layout per kind:
//
//	NodeProgram     declarations
//	NodeVarDecl     name [, tuple type name]
//	NodeFormal      name [, tuple type name]
//	NodeFuncDecl    name, NodeFormals, NodeBlock [, tuple return type name]
//	NodeFormals     NodeFormal...
//	NodeTupleDecl   name, NodeVarDecl...
//	NodeBlock       NodeVarDecl..., statements...
//	NodeAssignStmt  NodeAssign
//	NodePostInc     location
//	NodePostDec     location
//	NodeIf          condition, NodeBlock
//	NodeIfElse      condition, NodeBlock, NodeBlock
//	NodeWhile       condition, NodeBlock
//	NodeRead        location
//	NodeWrite       expression
//	NodeCallStmt    NodeCall
//	NodeReturn      [expression]
//	NodeAccess      NodeIdent or NodeAccess, field NodeIdent
//	NodeAssign      location, expression
//	NodeCall        callee NodeIdent, arguments...
//	NodeUnary       operand
//	NodeBinary      left, right
type ASTNode struct {
	Kind NodeKind
	Line int
	Col  int
	// NodeIdent: the name. NodeString: the literal including quotes.
	String string
	// NodeInteger:
	Integer int64
	// NodeUnary, NodeBinary: "-", "~", "+", "==", "&", ...
	Op       string
	Children []*ASTNode
	// NodeVarDecl, NodeFormal: declared type. NodeFuncDecl: return type.
	TypeAST *TypeNode
}

// IsLocation reports whether n can appear on the left of "=", after
// "read >>", or before "++"/"--".
func (n *ASTNode) IsLocation() bool {
	return n != nil && (n.Kind == NodeIdent || n.Kind == NodeAccess)
}

// Decls and Stmts split a NodeBlock's children.
func (n *ASTNode) Decls() []*ASTNode {
	i := 0
	for i < len(n.Children) && n.Children[i].Kind == NodeVarDecl {
		i++
	}
	return n.Children[:i]
}

func (n *ASTNode) Stmts() []*ASTNode {
	return n.Children[len(n.Decls()):]
}

// isArithmeticOp, isRelationalOp, isEqualityOp and isLogicalOp classify the
// Op of a NodeBinary.
func isArithmeticOp(op string) bool {
	return op == "+" || op == "-" || op == "*" || op == "/"
}

func isRelationalOp(op string) bool {
	return op == "<" || op == "<=" || op == ">" || op == ">="
}

func isEqualityOp(op string) bool {
	return op == "==" || op == "~="
}

func isLogicalOp(op string) bool {
	return op == "&" || op == "|"
}
