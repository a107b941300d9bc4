package encode

import "errors"

var (
	// ErrNoColumns is returned for tables without a schema, which no
	// text format can express.
	ErrNoColumns = errors.New("table has no columns")
	ErrNotLeaf   = errors.New("not a leaf value")
)
