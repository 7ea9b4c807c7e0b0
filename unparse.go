package main

import (
	"strconv"
	"strings"
)

// ToSExpr converts an AST node to s-expression string representation.
// Assignment and call statements print as their expression.
func ToSExpr(node *ASTNode) string {
	switch node.Kind {
	case NodeProgram:
		return sexprList("program", node.Children)
	case NodeVarDecl:
		return "(var " + ToSExpr(node.Children[0]) + " " + typeSExpr(node.TypeAST, node.Children[1:]) + ")"
	case NodeFormal:
		return "(formal " + ToSExpr(node.Children[0]) + " " + typeSExpr(node.TypeAST, node.Children[1:]) + ")"
	case NodeFormals:
		return sexprList("formals", node.Children)
	case NodeFuncDecl:
		return "(func " + ToSExpr(node.Children[0]) + " " + typeSExpr(node.TypeAST, node.Children[3:]) +
			" " + ToSExpr(node.Children[1]) + " " + ToSExpr(node.Children[2]) + ")"
	case NodeTupleDecl:
		return sexprList("tuple-decl", node.Children)
	case NodeBlock:
		return sexprList("block", node.Children)

	case NodeAssignStmt, NodeCallStmt:
		return ToSExpr(node.Children[0])
	case NodePostInc:
		return sexprList("post-inc", node.Children)
	case NodePostDec:
		return sexprList("post-dec", node.Children)
	case NodeIf, NodeIfElse:
		return sexprList("if", node.Children)
	case NodeWhile:
		return sexprList("while", node.Children)
	case NodeRead:
		return sexprList("read", node.Children)
	case NodeWrite:
		return sexprList("write", node.Children)
	case NodeReturn:
		return sexprList("return", node.Children)

	case NodeTrue:
		return "(boolean true)"
	case NodeFalse:
		return "(boolean false)"
	case NodeIdent:
		return "(ident \"" + node.String + "\")"
	case NodeString:
		// The literal keeps its quotes and escapes.
		return "(string " + node.String + ")"
	case NodeInteger:
		return "(integer " + strconv.FormatInt(node.Integer, 10) + ")"
	case NodeAccess:
		return sexprList("access", node.Children)
	case NodeAssign:
		return sexprList("assign", node.Children)
	case NodeCall:
		return sexprList("call", node.Children)
	case NodeUnary:
		return "(unary \"" + node.Op + "\" " + ToSExpr(node.Children[0]) + ")"
	case NodeBinary:
		left := ToSExpr(node.Children[0])
		right := ToSExpr(node.Children[1])
		return "(binary \"" + node.Op + "\" " + left + " " + right + ")"
	default:
		return ""
	}
}

func sexprList(head string, children []*ASTNode) string {
	result := "(" + head
	for _, child := range children {
		result += " " + ToSExpr(child)
	}
	return result + ")"
}

// typeSExpr renders a declared type. rest holds the tuple type name, if
// any.
func typeSExpr(t *TypeNode, rest []*ASTNode) string {
	if IsTupleType(t) && len(rest) > 0 {
		return "(tuple " + ToSExpr(rest[0]) + ")"
	}
	return TypeToString(t)
}

// Unparse pretty-prints node as base source. Identifiers linked in bindings
// are followed by their symbol in angle brackets, e.g. "x<integer>"; pass
// nil bindings for plain source.
func Unparse(node *ASTNode, bindings *Bindings) string {
	u := &unparser{bindings: bindings}
	u.node(node, 0)
	return u.sb.String()
}

type unparser struct {
	sb       strings.Builder
	bindings *Bindings
}

func (u *unparser) indent(n int) {
	u.sb.WriteString(strings.Repeat(" ", n))
}

func (u *unparser) node(node *ASTNode, indent int) {
	switch node.Kind {
	case NodeProgram:
		for _, decl := range node.Children {
			u.node(decl, indent)
		}
	case NodeBlock:
		for _, child := range node.Children {
			u.node(child, indent)
		}

	case NodeVarDecl:
		u.indent(indent)
		u.declType(node.TypeAST)
		u.sb.WriteString(" ")
		u.expr(node.Children[0], false)
		u.sb.WriteString(".\n")
	case NodeFuncDecl:
		u.indent(indent)
		u.declType(node.TypeAST)
		u.sb.WriteString(" ")
		u.expr(node.Children[0], false)
		u.sb.WriteString("{")
		for i, formal := range node.Children[1].Children {
			if i > 0 {
				u.sb.WriteString(", ")
			}
			u.declType(formal.TypeAST)
			u.sb.WriteString(" ")
			u.expr(formal.Children[0], false)
		}
		u.sb.WriteString("} [\n")
		u.node(node.Children[2], indent+4)
		u.indent(indent)
		u.sb.WriteString("]\n\n")
	case NodeTupleDecl:
		u.indent(indent)
		u.sb.WriteString("tuple ")
		u.expr(node.Children[0], false)
		u.sb.WriteString(" {\n")
		for _, field := range node.Children[1:] {
			u.node(field, indent+4)
		}
		u.indent(indent)
		u.sb.WriteString("}.\n\n")

	case NodeAssignStmt, NodeCallStmt:
		u.indent(indent)
		u.expr(node.Children[0], true)
		u.sb.WriteString(".\n")
	case NodePostInc, NodePostDec:
		u.indent(indent)
		u.expr(node.Children[0], false)
		if node.Kind == NodePostInc {
			u.sb.WriteString("++.\n")
		} else {
			u.sb.WriteString("--.\n")
		}
	case NodeIf, NodeIfElse, NodeWhile:
		u.indent(indent)
		if node.Kind == NodeWhile {
			u.sb.WriteString("while ")
		} else {
			u.sb.WriteString("if ")
		}
		u.expr(node.Children[0], false)
		u.sb.WriteString(" [\n")
		u.node(node.Children[1], indent+4)
		u.indent(indent)
		u.sb.WriteString("]\n")
		if node.Kind == NodeIfElse {
			u.indent(indent)
			u.sb.WriteString("else [\n")
			u.node(node.Children[2], indent+4)
			u.indent(indent)
			u.sb.WriteString("]\n")
		}
	case NodeRead:
		u.indent(indent)
		u.sb.WriteString("read >> ")
		u.expr(node.Children[0], false)
		u.sb.WriteString(".\n")
	case NodeWrite:
		u.indent(indent)
		u.sb.WriteString("write << ")
		u.expr(node.Children[0], false)
		u.sb.WriteString(".\n")
	case NodeReturn:
		u.indent(indent)
		u.sb.WriteString("return")
		if len(node.Children) > 0 {
			u.sb.WriteString(" ")
			u.expr(node.Children[0], false)
		}
		u.sb.WriteString(".\n")

	default:
		u.expr(node, false)
	}
}

// declType prints a declared type. Tuple type names are never annotated.
func (u *unparser) declType(t *TypeNode) {
	if IsTupleType(t) {
		u.sb.WriteString("tuple " + t.String)
		return
	}
	u.sb.WriteString(TypeToString(t))
}

// expr prints an expression fully parenthesised. topLevel drops the
// parentheses around an assignment used as a statement.
func (u *unparser) expr(node *ASTNode, topLevel bool) {
	switch node.Kind {
	case NodeTrue:
		u.sb.WriteString("True")
	case NodeFalse:
		u.sb.WriteString("False")
	case NodeInteger:
		u.sb.WriteString(strconv.FormatInt(node.Integer, 10))
	case NodeString:
		u.sb.WriteString(node.String)
	case NodeIdent:
		u.sb.WriteString(node.String)
		if sym := u.bindings.SymbolOf(node); sym != nil {
			u.sb.WriteString("<" + sym.String() + ">")
		}
	case NodeAccess:
		u.sb.WriteString("(")
		u.expr(node.Children[0], false)
		u.sb.WriteString("):")
		u.expr(node.Children[1], false)
	case NodeAssign:
		if !topLevel {
			u.sb.WriteString("(")
		}
		u.expr(node.Children[0], false)
		u.sb.WriteString(" = ")
		u.expr(node.Children[1], false)
		if !topLevel {
			u.sb.WriteString(")")
		}
	case NodeCall:
		u.expr(node.Children[0], false)
		u.sb.WriteString("(")
		for i, arg := range node.Children[1:] {
			if i > 0 {
				u.sb.WriteString(", ")
			}
			u.expr(arg, false)
		}
		u.sb.WriteString(")")
	case NodeUnary:
		u.sb.WriteString("(" + node.Op)
		u.expr(node.Children[0], false)
		u.sb.WriteString(")")
	case NodeBinary:
		u.sb.WriteString("(")
		u.expr(node.Children[0], false)
		u.sb.WriteString(" " + node.Op + " ")
		u.expr(node.Children[1], false)
		u.sb.WriteString(")")
	}
}
