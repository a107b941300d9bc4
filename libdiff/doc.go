// Package libdiff compares documents and their text renderings.
//
// Documents compares two documents value by value and reports the key
// paths that changed. Objects are matched by key. Arrays are matched by
// diffing a per element summary sequence, and tables row by row when
// their schemas agree. Lines compares two texts line by line.
package libdiff
