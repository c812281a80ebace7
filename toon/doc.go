// Package toon implements a relational document notation codec.
//
// A TOON document stores a collection of records together with the
// list-valued fields of each record as a sequence of comma-delimited
// tables:
//   - Token-cheap: no quotes, no repeated keys
//   - Relational: child lists become their own tables
//   - Line oriented: one record per line
//
// # Data Model
//
// Scalars: null, bool, int, float, str
// Containers: list, map (ordered record)
//
// Decoded leaves are always text; types are not preserved.
//
// # Syntax
//
//	Document := Block ("\n\n" Block)*
//	Block    := Name Relation? "[" Count "]" "{" Key ("," Key)* "}" ":" "\n" Rows
//	Relation := "(" Key ":" ParentId ")"
//	Rows     := Row ("." "\n" Row)* "."
//	Row      := Field ("," Field)*
//
// Nested scalar fields of root records are flattened to dot paths
// (address.city). Child records are not flattened.
//
// # Example
//
//	clientes[2]{id,name,address.city}:
//	1,Alice,NYC.
//	2,Bob,LA.
//
//	orders(cliente_id:1)[2]{id,item}:
//	10,Book.
//	11,Pen.
//
// Decoding attaches the orders block to the record with id 1.
//
// # Limitations
//
// Values are not escaped. A value containing ',' or ending in '.'
// corrupts its row, and a value containing '.' in a key path is read
// as nesting.
package toon
