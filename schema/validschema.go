package schema

import "fmt"

// ValidSchema wraps a compiled root Node, asserting — once, at
// construction — that every symbolic node reachable from it resolved to a
// concrete target (invariant 1). A caller holding a ValidSchema never
// needs to re-check resolution.
type ValidSchema struct {
	root *Node
}

// NewValidSchema wraps root in a ValidSchema, calling Validate before
// returning it so that no caller ever observes an unresolved graph
// (§4.2's "wrap the resulting root node in a ValidSchema guard").
func NewValidSchema(root *Node) (*ValidSchema, error) {
	v := &ValidSchema{root: root}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v, nil
}

// Root returns the schema's top-level node.
func (v *ValidSchema) Root() *Node { return v.root }

// Validate re-walks the whole graph, cycle-safe via a visited set keyed on
// node identity, asserting invariant 1: every symbolic node reachable from
// the root resolved to a concrete target.
func (v *ValidSchema) Validate() error {
	return validate(v.root, make(map[*Node]bool))
}

// validate walks the graph depth-first, tracking visited node pointers so
// that cyclic records (a record referencing itself through a symbolic
// node) terminate instead of looping forever.
func validate(n *Node, visited map[*Node]bool) error {
	if n == nil {
		return fmt.Errorf("schema: nil node")
	}
	if visited[n] {
		return nil
	}
	visited[n] = true

	if n.kind == Symbolic {
		if n.resolved == nil {
			return fmt.Errorf("schema: unresolved reference to %q", n.refName.String())
		}
		return validate(n.resolved, visited)
	}
	for _, leaf := range n.leaves {
		if err := validate(leaf, visited); err != nil {
			return err
		}
	}
	return nil
}
