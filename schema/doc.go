// Package schema is this module's internal representation of Avro schemas:
// a closed set of node kinds, qualified names, a symbol table for named-type
// resolution, logical-type overlays, and the generic datum value used to
// materialize field defaults.
package schema
