// Package bridge imports JSON and YAML into documents and exports
// documents back to them.
//
// Import keeps object key order. Export is one way for tables: a table
// becomes an array of row objects and its schema is dropped, so a
// document converted to JSON and back holds arrays where it held tables.
package bridge
