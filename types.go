package main

// TypeKind is the closed set of type shapes in the base language.
type TypeKind int

const (
	TypeBuiltin  TypeKind = iota // integer, logical, string, void
	TypeFunction                 // the type of a function's name
	TypeTuple                    // an instance of a named tuple type
	TypeTupleDef                 // the type of a tuple declaration's own name
	TypeInvalid                  // an expression whose names did not resolve
)

// TypeNode describes a type. For builtins String is the spelling
// ("integer"); for tuple kinds it is the tuple's declared name.
type TypeNode struct {
	Kind   TypeKind
	String string
}

var (
	TypeInteger = &TypeNode{Kind: TypeBuiltin, String: "integer"}
	TypeLogical = &TypeNode{Kind: TypeBuiltin, String: "logical"}
	TypeString  = &TypeNode{Kind: TypeBuiltin, String: "string"}
	TypeVoid    = &TypeNode{Kind: TypeBuiltin, String: "void"}
	TypeFunc    = &TypeNode{Kind: TypeFunction}
	TypeErr     = &TypeNode{Kind: TypeInvalid}
)

// NewTupleType returns the type of a variable declared as "tuple name".
func NewTupleType(name string) *TypeNode {
	return &TypeNode{Kind: TypeTuple, String: name}
}

// NewTupleDefType returns the type carried by the declaration of tuple name.
func NewTupleDefType(name string) *TypeNode {
	return &TypeNode{Kind: TypeTupleDef, String: name}
}

// TypesEqual compares two types structurally. Tuple types are equal when
// they carry the same declared name; function types are equal as a category.
func TypesEqual(a, b *TypeNode) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case TypeBuiltin, TypeTuple, TypeTupleDef:
		return a.String == b.String
	default:
		return true
	}
}

// TypeToString renders a type the way it is written in source.
func TypeToString(t *TypeNode) string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case TypeBuiltin:
		return t.String
	case TypeFunction:
		return "function"
	case TypeTuple:
		return "tuple " + t.String
	case TypeTupleDef:
		return "tuple"
	case TypeInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

func IsIntegerType(t *TypeNode) bool { return TypesEqual(t, TypeInteger) }
func IsLogicalType(t *TypeNode) bool { return TypesEqual(t, TypeLogical) }
func IsStringType(t *TypeNode) bool { return TypesEqual(t, TypeString) }
func IsVoidType(t *TypeNode) bool { return TypesEqual(t, TypeVoid) }

func IsFunctionType(t *TypeNode) bool { return t != nil && t.Kind == TypeFunction }
func IsTupleType(t *TypeNode) bool { return t != nil && t.Kind == TypeTuple }
func IsTupleDefType(t *TypeNode) bool { return t != nil && t.Kind == TypeTupleDef }

// IsInvalidType reports whether t stands for an expression that already
// produced a diagnostic. nil counts as invalid.
func IsInvalidType(t *TypeNode) bool { return t == nil || t.Kind == TypeInvalid }
