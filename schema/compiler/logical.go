package compiler

import "github.com/arenadata/avro/schema"

// compileLogicalType reads the optional "logicalType" annotation off a
// complex type's JSON object, per §4.2's logical-type overlay rule: any
// failure while extracting a required parameter (decimal's "precision")
// degrades silently to LogicalNone rather than failing the whole schema,
// mirroring gogen-avro's own tolerant handling of unknown/malformed
// logicalType attributes.
func compileLogicalType(o object) schema.Logical {
	raw, ok := o.get("logicalType")
	if !ok {
		return schema.Logical{}
	}
	name, ok := raw.(string)
	if !ok {
		return schema.Logical{}
	}

	if name == "decimal" {
		precision, err := getFloat(o, "precision")
		if err != nil {
			return schema.Logical{}
		}
		scale, _, err := getOptionalFloat(o, "scale")
		if err != nil {
			return schema.Logical{}
		}
		return schema.Logical{
			Type:      schema.LogicalDecimal,
			Precision: int(precision),
			Scale:     int(scale),
		}
	}

	lt, ok := schema.LogicalByName(name)
	if !ok {
		return schema.Logical{}
	}
	return schema.Logical{Type: lt}
}
