package game

import "fmt"

const (
	// CellCount is the number of cells along each side of the board.
	CellCount = 9
	// SlotCount is the number of wall anchors along each side of the board.
	SlotCount = CellCount - 1
)

// Position is an integer pair used for both cell space (0..8) and
// wall-slot space (0..7).
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Position) Sub(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

var (
	Right = Position{X: 1, Y: 0}
	Left  = Position{X: -1, Y: 0}
	Up    = Position{X: 0, Y: 1}
	Down  = Position{X: 0, Y: -1}
)

// Directions lists the four unit steps in generation order.
var Directions = [4]Position{Right, Left, Up, Down}

// IsCellInBounds reports whether p is a cell of the 9x9 board.
func IsCellInBounds(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < CellCount && p.Y < CellCount
}

// IsWallSlotInBounds reports whether p is an anchor of the 8x8 wall grid.
func IsWallSlotInBounds(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < SlotCount && p.Y < SlotCount
}
