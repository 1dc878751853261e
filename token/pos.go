package token

import "fmt"

// Pos locates a scanned line in the input. Lines are 1-based,
// columns are 0-based byte offsets within the line.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("line %d, col %d", p.Line, p.Col)
}
