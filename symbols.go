package main

import "strings"

// SymbolKind is the closed set of things a name can denote.
type SymbolKind int

const (
	SymbolVariable SymbolKind = iota // variable or formal of a builtin type
	SymbolFunction
	SymbolTupleDef // the name introduced by "tuple T { ... }."
	SymbolTuple    // a variable declared "tuple T v."
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolVariable:
		return "variable"
	case SymbolFunction:
		return "function"
	case SymbolTupleDef:
		return "tuple definition"
	case SymbolTuple:
		return "tuple variable"
	default:
		return "unknown"
	}
}

// Symbol is the compile-time record for one declared name.
type Symbol struct {
	Name string
	Kind SymbolKind
	Type *TypeNode

	// SymbolFunction:
	ReturnType *TypeNode
	ParamTypes []*TypeNode // filled in once the formals have been resolved
	NumParams  int         // number of formals written in the declaration

	// SymbolTupleDef: field declarations, never linked into an enclosing scope.
	Fields *SymbolTable

	// SymbolTuple: the definition this instance was declared with.
	TupleDef *Symbol
}

func NewVariableSymbol(name string, typ *TypeNode) *Symbol {
	return &Symbol{Name: name, Kind: SymbolVariable, Type: typ}
}

func NewFunctionSymbol(name string, returnType *TypeNode, numParams int) *Symbol {
	return &Symbol{
		Name:       name,
		Kind:       SymbolFunction,
		Type:       TypeFunc,
		ReturnType: returnType,
		NumParams:  numParams,
	}
}

func NewTupleDefSymbol(name string, fields *SymbolTable) *Symbol {
	return &Symbol{Name: name, Kind: SymbolTupleDef, Type: NewTupleDefType(name), Fields: fields}
}

func NewTupleSymbol(name string, def *Symbol) *Symbol {
	return &Symbol{Name: name, Kind: SymbolTuple, Type: NewTupleType(def.Name), TupleDef: def}
}

// AddFormals records the resolved formal parameter types of a function.
func (s *Symbol) AddFormals(types []*TypeNode) {
	s.ParamTypes = append(s.ParamTypes, types...)
}

// String is the annotation printed after a linked identifier when
// unparsing: "integer", "Point", "integer,logical->void" or "tuple".
func (s *Symbol) String() string {
	switch s.Kind {
	case SymbolFunction:
		params := make([]string, len(s.ParamTypes))
		for i, p := range s.ParamTypes {
			params[i] = annotationName(p)
		}
		return strings.Join(params, ",") + "->" + annotationName(s.ReturnType)
	case SymbolTupleDef:
		return "tuple"
	default:
		return annotationName(s.Type)
	}
}

func annotationName(t *TypeNode) string {
	if t != nil && t.Kind == TypeTuple {
		return t.String
	}
	return TypeToString(t)
}
