package libdiff

type Op int

const (
	Equal Op = iota
	Insert
	Delete
	Replace
)

func (o Op) String() string {
	s, ok := map[Op]string{
		Equal:   "equal",
		Insert:  "insert",
		Delete:  "delete",
		Replace: "replace",
	}[o]
	if ok {
		return s
	}
	return "<unknown op>"
}

// Sign is the marker used for o in line diffs.
func (o Op) Sign() byte {
	switch o {
	case Insert:
		return '+'
	case Delete:
		return '-'
	case Replace:
		return '~'
	}
	return ' '
}
