package ll

// Symbol tables for parse table construction. Symbols of a grammar are plain
// strings, but table rows and columns need dense integer indices. A symbol
// table hands out indices in order of definition.

type symbol struct {
	name  string
	index int
}

type symbolTable struct {
	table map[string]*symbol
	order []*symbol
}

func newSymbolTable() *symbolTable {
	return &symbolTable{table: make(map[string]*symbol)}
}

// resolve checks for a symbol in the table. Returns a symbol or nil.
func (st *symbolTable) resolve(name string) *symbol {
	return st.table[name]
}

// resolveOrDefine finds a symbol in the table, inserts a new one if not found.
// Returns the symbol and a flag, signalling whether it has already been present.
func (st *symbolTable) resolveOrDefine(name string) (*symbol, bool) {
	if sym := st.resolve(name); sym != nil {
		return sym, true
	}
	sym := &symbol{name: name, index: len(st.order)}
	st.table[name] = sym
	st.order = append(st.order, sym)
	return sym, false
}

// at returns the symbol with index i.
func (st *symbolTable) at(i int) *symbol {
	return st.order[i]
}

func (st *symbolTable) size() int {
	return len(st.order)
}

// names returns all symbol names in order of definition.
func (st *symbolTable) names() []string {
	names := make([]string, len(st.order))
	for i, sym := range st.order {
		names[i] = sym.name
	}
	return names
}
