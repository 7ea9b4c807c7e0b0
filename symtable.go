package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrEmptyTable      = errors.New("symbol table has no scopes")
	ErrDuplicateName   = errors.New("name already declared in this scope")
	ErrInvalidArgument = errors.New("invalid argument")
)

// SymbolTable is a stack of scopes. scopes[len-1] is the innermost scope.
type SymbolTable struct {
	scopes []map[string]*Symbol
}

// NewSymbolTable returns a table holding a single, empty global scope.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{scopes: []map[string]*Symbol{{}}}
}

// Depth is the number of scopes currently on the stack.
func (st *SymbolTable) Depth() int {
	return len(st.scopes)
}

func (st *SymbolTable) PushScope() {
	st.scopes = append(st.scopes, map[string]*Symbol{})
}

func (st *SymbolTable) PopScope() error {
	if len(st.scopes) == 0 {
		return ErrEmptyTable
	}
	st.scopes[len(st.scopes)-1] = nil
	st.scopes = st.scopes[:len(st.scopes)-1]
	return nil
}

// Declare binds name to sym in the innermost scope. An existing binding in
// that scope is left untouched and ErrDuplicateName is returned.
func (st *SymbolTable) Declare(name string, sym *Symbol) error {
	if name == "" || sym == nil {
		return fmt.Errorf("declare %q: %w", name, ErrInvalidArgument)
	}
	existing, err := st.LookupLocal(name)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("declare %q: %w", name, ErrDuplicateName)
	}
	st.scopes[len(st.scopes)-1][name] = sym
	return nil
}

// LookupLocal searches only the innermost scope. A missing name is not an
// error: it returns nil, nil.
func (st *SymbolTable) LookupLocal(name string) (*Symbol, error) {
	if len(st.scopes) == 0 {
		return nil, ErrEmptyTable
	}
	return st.scopes[len(st.scopes)-1][name], nil
}

// LookupGlobal searches from the innermost scope outwards and returns the
// first binding found, so inner declarations shadow outer ones.
func (st *SymbolTable) LookupGlobal(name string) (*Symbol, error) {
	if len(st.scopes) == 0 {
		return nil, ErrEmptyTable
	}
	for i := len(st.scopes) - 1; i >= 0; i-- {
		if sym, ok := st.scopes[i][name]; ok {
			return sym, nil
		}
	}
	return nil, nil
}

// String dumps the table innermost scope first, one scope per line.
func (st *SymbolTable) String() string {
	var sb strings.Builder
	sb.WriteString("++++ SYMBOL TABLE\n")
	for i := len(st.scopes) - 1; i >= 0; i-- {
		scope := st.scopes[i]
		names := make([]string, 0, len(scope))
		for name := range scope {
			names = append(names, name)
		}
		sort.Strings(names)

		entries := make([]string, len(names))
		for j, name := range names {
			entries[j] = name + "=" + scope[name].String()
		}
		fmt.Fprintf(&sb, "{%s}\n", strings.Join(entries, ", "))
	}
	sb.WriteString("++++ END TABLE\n")
	return sb.String()
}
