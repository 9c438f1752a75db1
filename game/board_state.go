package game

// Orientation is the wall tag stored at a wall slot.
type Orientation int

const (
	None Orientation = iota
	Horizontal
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		return "None"
	}
}

const (
	// NoPlayer marks an unowned wall slot and the mover of the seed turn.
	NoPlayer = -1
	// StartingWalls is the wall budget each player begins with.
	StartingWalls = 10
	// Unreachable is the distance of a cell with no path to the goal row.
	Unreachable = -1
)

// Opponent returns the index of the other player.
func Opponent(player int) int {
	return 1 - player
}

// GoalRow is the row player must reach: row 8 for player 0, row 0 for player 1.
func GoalRow(player int) int {
	if player == 0 {
		return CellCount - 1
	}
	return 0
}

// BoardState is a game position. A state handed out by Apply or Copy is never
// mutated afterwards; only the lazily filled distance cache changes.
type BoardState struct {
	walls          *Matrix
	wallOwner      *Matrix
	pawns          [2]Position
	wallsRemaining [2]int
	distance       [2]*Matrix
}

// NewBoardState returns the starting position: pawns centred on their home
// rows, ten walls each and an empty wall grid.
func NewBoardState() *BoardState {
	return &BoardState{
		walls:          NewMatrix(SlotCount, SlotCount, int(None)),
		wallOwner:      NewMatrix(SlotCount, SlotCount, NoPlayer),
		pawns:          [2]Position{Pos(4, 0), Pos(4, CellCount-1)},
		wallsRemaining: [2]int{StartingWalls, StartingWalls},
	}
}

// Copy returns a state that shares no storage with b. The distance cache is
// left empty because the caller is about to change the position.
func (b *BoardState) Copy() *BoardState {
	return &BoardState{
		walls:          b.walls.Copy(),
		wallOwner:      b.wallOwner.Copy(),
		pawns:          b.pawns,
		wallsRemaining: b.wallsRemaining,
	}
}

func (b *BoardState) Wall(slot Position) Orientation {
	return Orientation(b.walls.Get(slot.X, slot.Y))
}

// WallOwner returns the player that placed the wall at slot, or NoPlayer.
func (b *BoardState) WallOwner(slot Position) int {
	return b.wallOwner.Get(slot.X, slot.Y)
}

func (b *BoardState) PawnPosition(player int) Position {
	return b.pawns[player]
}

func (b *BoardState) WallsRemaining(player int) int {
	return b.wallsRemaining[player]
}

// WallCount returns how many walls are on the board.
func (b *BoardState) WallCount() int {
	return 2*StartingWalls - b.wallsRemaining[0] - b.wallsRemaining[1]
}

// The setters below build positions by hand and must only be used on a state
// nobody else holds yet.

func (b *BoardState) SetPawnPosition(player int, cell Position) {
	b.pawns[player] = cell
}

func (b *BoardState) SetWallsRemaining(player, count int) {
	b.wallsRemaining[player] = count
}

// SetWall stores a wall without touching the owners' budgets.
func (b *BoardState) SetWall(slot Position, orientation Orientation, owner int) {
	b.walls.Set(slot.X, slot.Y, int(orientation))
	b.wallOwner.Set(slot.X, slot.Y, owner)
	b.distance = [2]*Matrix{}
}

// blockers maps a step direction to the blocking wall orientation and the two
// slot offsets, relative to the departing cell, that can hold such a wall.
var blockers = map[Position]struct {
	orientation Orientation
	offsets     [2]Position
}{
	Right: {Vertical, [2]Position{{0, 0}, {0, -1}}},
	Left:  {Vertical, [2]Position{{-1, 0}, {-1, -1}}},
	Up:    {Horizontal, [2]Position{{0, 0}, {-1, 0}}},
	Down:  {Horizontal, [2]Position{{0, -1}, {-1, -1}}},
}

// BlockingSlots returns the orientation and the two wall slots that can stop
// a step from cell in direction. Either slot may lie outside the wall grid.
func BlockingSlots(cell, direction Position) (Orientation, [2]Position) {
	entry := blockers[direction]
	return entry.orientation, [2]Position{cell.Add(entry.offsets[0]), cell.Add(entry.offsets[1])}
}

// IsBlocked reports whether a wall stops a step from cell in direction.
func (b *BoardState) IsBlocked(cell, direction Position) bool {
	orientation, slots := BlockingSlots(cell, direction)
	for _, slot := range slots {
		if IsWallSlotInBounds(slot) && b.Wall(slot) == orientation {
			return true
		}
	}
	return false
}

// openNeighbors returns the in-bounds cells reachable from cell in one step.
func (b *BoardState) openNeighbors(cell Position) []Position {
	neighbors := make([]Position, 0, len(Directions))
	for _, direction := range Directions {
		next := cell.Add(direction)
		if IsCellInBounds(next) && !b.IsBlocked(cell, direction) {
			neighbors = append(neighbors, next)
		}
	}
	return neighbors
}

// ValidMoves lists the cells player may move its pawn to. Stepping onto the
// opponent turns into the opponent's own steps from that cell, minus the
// cell the mover started on, which yields straight and diagonal jumps.
func (b *BoardState) ValidMoves(player int) []Position {
	from := b.pawns[player]
	opponent := b.pawns[Opponent(player)]
	moves := make([]Position, 0, 6)
	for _, next := range b.openNeighbors(from) {
		if next != opponent {
			moves = append(moves, next)
			continue
		}
		for _, jump := range b.openNeighbors(opponent) {
			if jump != from {
				moves = append(moves, jump)
			}
		}
	}
	return moves
}

// DistanceMatrix returns the step count from every cell to player's goal row.
// Cells with no path hold Unreachable. The result is cached per state and
// must not be modified.
func (b *BoardState) DistanceMatrix(player int) *Matrix {
	if b.distance[player] == nil {
		b.distance[player] = b.computeDistanceMatrix(GoalRow(player))
	}
	return b.distance[player]
}

// Distance returns player's shortest path length to its goal row, or
// Unreachable if the pawn is trapped.
func (b *BoardState) Distance(player int) int {
	pawn := b.pawns[player]
	return b.DistanceMatrix(player).Get(pawn.X, pawn.Y)
}

// IsTrapped reports whether player has no path to its goal row.
func (b *BoardState) IsTrapped(player int) bool {
	return b.Distance(player) == Unreachable
}

// IsEitherTrapped reports whether at least one player has no path.
func (b *BoardState) IsEitherTrapped() bool {
	return b.IsTrapped(0) || b.IsTrapped(1)
}

// computeDistanceMatrix runs a breadth-first search seeded with every cell of
// row. Pawns do not block paths.
func (b *BoardState) computeDistanceMatrix(row int) *Matrix {
	matrix := NewMatrix(CellCount, CellCount, Unreachable)
	queue := make([]Position, 0, CellCount*CellCount)
	for x := 0; x < CellCount; x++ {
		matrix.Set(x, row, 0)
		queue = append(queue, Pos(x, row))
	}
	for head := 0; head < len(queue); head++ {
		cell := queue[head]
		distance := matrix.Get(cell.X, cell.Y)
		for _, next := range b.openNeighbors(cell) {
			if matrix.Get(next.X, next.Y) == Unreachable {
				matrix.Set(next.X, next.Y, distance+1)
				queue = append(queue, next)
			}
		}
	}
	return matrix
}
