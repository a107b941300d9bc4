package token

import "fmt"

// Pos is a 1-based line and byte column.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("line %d, col %d", p.Line, p.Col)
}

// Offset returns p moved n bytes to the right on the same line.
func (p Pos) Offset(n int) Pos {
	return Pos{Line: p.Line, Col: p.Col + n}
}
