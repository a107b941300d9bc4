// Package gomap maps Go values to documents and back by reflection.
//
// Struct fields are mapped by name, or by the name in a `dx` tag:
//
//	type Config struct {
//		Name  string  `dx:"name"`
//		Users []User  `dx:"users,table"`
//		Extra string  `dx:"-"`
//		Port  int     `dx:",omitempty"`
//	}
//
// Only exported fields are mapped and matching is case sensitive. A
// slice of structs tagged table becomes a typed table whose columns are
// the struct's fields; those fields must be bools, integers, floats or
// strings. Types implementing encoding.TextMarshaler map to strings.
package gomap
