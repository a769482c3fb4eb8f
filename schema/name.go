package schema

import "strings"

// Name is an Avro qualified name: a namespace and a simple name. Two names
// are equal iff both components match.
type Name struct {
	Namespace string
	Simple    string
}

func (n Name) String() string {
	if n.Namespace == "" {
		return n.Simple
	}
	return n.Namespace + "." + n.Simple
}

// IsZero reports whether n is the empty name, used for non-named node kinds.
func (n Name) IsZero() bool {
	return n.Namespace == "" && n.Simple == ""
}

// ParseName resolves a name string against an enclosing namespace, following
// the Avro fullname rule: if the string contains a dot it is a fullname and
// carries its own namespace (the enclosing namespace is discarded);
// otherwise the enclosing namespace applies.
func ParseName(enclosing, name string) Name {
	if i := strings.LastIndex(name, "."); i != -1 {
		return Name{Namespace: name[:i], Simple: name[i+1:]}
	}
	return Name{Namespace: enclosing, Simple: name}
}
