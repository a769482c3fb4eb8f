package compiler

import "github.com/arenadata/avro/schema"

// compileUnion compiles an array-form type definition into a Union node,
// one branch per element, in source order (the order a union default
// always resolves to the first branch depends on).
func (cs *compileState) compileUnion(namespace string, branches []interface{}) (*schema.Node, error) {
	leaves := make([]*schema.Node, 0, len(branches))
	for _, b := range branches {
		branch, err := cs.compileType(b, namespace)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, branch)
	}
	return schema.NewUnion(leaves), nil
}
