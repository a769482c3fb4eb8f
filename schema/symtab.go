package schema

// SymbolTable maps a fully-qualified Name to the node carrying that name.
// It is populated as Record/Enum/Fixed nodes are discovered during
// compilation and consulted to resolve symbolic references. SymbolTable
// itself is a dumb map: duplicate-name policy lives one layer up, in the
// compiler (grounded in gogen-avro's own split between its stdlib-simple
// schema package and its parser.Namespace, which owns RegisterDefinition).
type SymbolTable struct {
	byName map[Name]*Node
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{byName: make(map[Name]*Node)}
}

// Put registers n under name unconditionally, overwriting any prior entry.
func (t *SymbolTable) Put(name Name, n *Node) {
	t.byName[name] = n
}

// Lookup returns the node registered under name, if any.
func (t *SymbolTable) Lookup(name Name) (*Node, bool) {
	n, ok := t.byName[name]
	return n, ok
}
