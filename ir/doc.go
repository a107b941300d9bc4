// Package ir provides the in-memory document model shared by every format.
//
// # Overview
//
// A Document is a tree of Values rooted at an object. The human and LLM
// text parsers, the machine decoder and the bridge importers all produce
// Documents, and every formatter consumes them, so the Document is the hub
// through which all conversions pass.
//
// The model carries no positions, comments, aliases or prefix keys. Those
// exist only in the text formats and are resolved during parsing.
//
// # Values
//
// Value is a recursive tagged union. The Type field selects which fields
// are meaningful:
//
//   - NullType: no payload
//   - BoolType: Bool
//   - IntType: Int (signed 64 bit)
//   - FloatType: Float (IEEE 754 double, NaN and infinities allowed)
//   - StringType: String (UTF-8)
//   - ArrayType: Values
//   - ObjectType: Fields and Values, parallel, in insertion order
//   - TableType: Table
//
// Use the constructors to build values:
//
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("dx")},
//	    {Key: "port", Val: ir.FromInt(8080)},
//	})
//
// # Tables
//
// A Table has a schema of typed columns and a list of rows. Table.AddRow
// checks row length and cell types and returns a *SchemaError otherwise.
//
// # Equality
//
// Compare defines a total order; Equal is Compare(a, b) == 0. Object
// entries are compared in order, so field order is significant, and NaN
// equals NaN so that documents containing NaN still round trip.
//
// # Key paths
//
// SplitPath and JoinPath convert between segment lists and dotted key
// paths. Segments which are not bare keys are written as Go quoted strings:
//
//	a."b.c".d
package ir
