package schema

// Node is the fundamental entity of the compiler's output: one vertex of
// the schema graph. Which fields are meaningful depends on Kind:
//
//   - named types (Record, Enum, Fixed) carry Name;
//   - Record carries Leaves (one per field, parallel to FieldNames,
//     FieldDefaults and FieldDocs);
//   - Array carries a single Leaves entry (the item type); Map carries a
//     single Leaves entry (the value type — the key is always string and
//     is not modeled as a leaf);
//   - Union carries one Leaves entry per branch, in source order;
//   - Enum carries Symbols; Fixed carries Size;
//   - Symbolic carries RefName and Resolved, a link to the concrete node
//     registered under that name.
type Node struct {
	kind Kind
	name Name

	leaves []*Node

	fieldNames    []string
	fieldDefaults []Datum
	fieldDocs     []string

	symbols []string
	size    int

	doc     string
	logical Logical

	refName  Name
	resolved *Node
}

// NewPrimitive constructs a node for one of the eight primitive kinds.
func NewPrimitive(kind Kind) *Node {
	return &Node{kind: kind}
}

// NewRecord constructs a Record node. The three slices must be the same
// length as fields, per the invariant that a record's field-related lists
// are always kept parallel.
func NewRecord(name Name, fieldNames []string, leaves []*Node, defaults []Datum, fieldDocs []string, doc string) *Node {
	return &Node{
		kind:          Record,
		name:          name,
		leaves:        leaves,
		fieldNames:    fieldNames,
		fieldDefaults: defaults,
		fieldDocs:     fieldDocs,
		doc:           doc,
	}
}

// NewRecordPlaceholder constructs an empty Record node carrying only its
// name, registered in the symbol table before its fields are compiled so
// that a self-referencing field can resolve against it (§4.2). Call
// FillRecord once the field list is known to mutate it in place: any
// Symbolic node that already resolved to this pointer observes the fill.
func NewRecordPlaceholder(name Name) *Node {
	return &Node{kind: Record, name: name}
}

// FillRecord mutates a record placeholder in place with its fully compiled
// body. It must be called exactly once, after NewRecordPlaceholder.
func (n *Node) FillRecord(fieldNames []string, leaves []*Node, defaults []Datum, fieldDocs []string, doc string) {
	n.fieldNames = fieldNames
	n.leaves = leaves
	n.fieldDefaults = defaults
	n.fieldDocs = fieldDocs
	n.doc = doc
}

// NewEnum constructs an Enum node from its ordered symbol list.
func NewEnum(name Name, symbols []string, doc string) *Node {
	return &Node{
		kind:    Enum,
		name:    name,
		symbols: symbols,
		doc:     doc,
	}
}

// NewFixed constructs a Fixed node. Callers must enforce size > 0
// (invariant 3); this constructor does not validate it, mirroring the
// teacher's own gogen-avro schema constructors, which trust the caller.
func NewFixed(name Name, size int, doc string) *Node {
	return &Node{
		kind: Fixed,
		name: name,
		size: size,
		doc:  doc,
	}
}

// NewArray constructs an Array node wrapping its single item-type leaf.
func NewArray(item *Node) *Node {
	return &Node{kind: Array, leaves: []*Node{item}}
}

// NewMap constructs a Map node wrapping its single value-type leaf.
func NewMap(value *Node) *Node {
	return &Node{kind: Map, leaves: []*Node{value}}
}

// NewUnion constructs a Union node from its ordered branch list.
func NewUnion(branches []*Node) *Node {
	return &Node{kind: Union, leaves: branches}
}

// NewSymbolic constructs a forward/named reference to refName, resolved
// against target, the node registered under refName when the reference is
// compiled. For a self-reference that is the record placeholder, which
// FillRecord later completes in place.
func NewSymbolic(refName Name, target *Node) *Node {
	return &Node{kind: Symbolic, refName: refName, resolved: target}
}

func (n *Node) Kind() Kind           { return n.kind }
func (n *Node) Name() Name           { return n.name }
func (n *Node) Leaves() []*Node      { return n.leaves }
func (n *Node) FieldNames() []string { return n.fieldNames }
func (n *Node) FieldDefaults() []Datum {
	return n.fieldDefaults
}
func (n *Node) FieldDocs() []string { return n.fieldDocs }
func (n *Node) Symbols() []string   { return n.symbols }
func (n *Node) Size() int           { return n.size }
func (n *Node) Doc() string         { return n.doc }
func (n *Node) Logical() Logical    { return n.logical }
func (n *Node) RefName() Name       { return n.refName }
func (n *Node) Resolved() *Node     { return n.resolved }

// SetLogical attaches a logical-type overlay to a primitive or fixed node.
func (n *Node) SetLogical(l Logical) { n.logical = l }

// SetResolved fills in (or replaces) the target of a symbolic node. The
// compiler does not call it: it resolves references at construction
// (NewSymbolic) and completes record placeholders in place (FillRecord).
func (n *Node) SetResolved(target *Node) { n.resolved = target }

// FieldIndex returns the index of fieldName in the record's field list, or
// -1 if n is not a record or has no such field.
func (n *Node) FieldIndex(fieldName string) int {
	for i, name := range n.fieldNames {
		if name == fieldName {
			return i
		}
	}
	return -1
}

// Deref follows a Symbolic node to its concrete target, returning n
// unchanged for every other kind. It does not loop: a symbolic node's
// Resolved target is never itself symbolic (§4.2 registers the concrete
// record/enum/fixed node directly under its name).
func (n *Node) Deref() *Node {
	if n.kind == Symbolic && n.resolved != nil {
		return n.resolved
	}
	return n
}
