package bridge

import "errors"

var (
	ErrImport      = errors.New("import error")
	ErrNotJSON     = errors.New("value has no JSON form")
	ErrUnsupported = errors.New("unsupported value")
	ErrTooDeep     = errors.New("nesting too deep")
)
