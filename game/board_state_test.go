package game

import (
	"math/rand"
	"testing"
)

// edgeBlockedBy derives from the wall's geometry whether a wall at slot stops
// the step from cell in direction. A horizontal wall at (sx,sy) lies between
// rows sy and sy+1 under columns sx and sx+1; a vertical one lies between
// columns sx and sx+1 beside rows sy and sy+1.
func edgeBlockedBy(slot Position, orientation Orientation, cell, direction Position) bool {
	next := cell.Add(direction)
	switch orientation {
	case Horizontal:
		return direction.X == 0 && min(cell.Y, next.Y) == slot.Y && (cell.X == slot.X || cell.X == slot.X+1)
	case Vertical:
		return direction.Y == 0 && min(cell.X, next.X) == slot.X && (cell.Y == slot.Y || cell.Y == slot.Y+1)
	}
	return false
}

func TestNewBoardState(t *testing.T) {
	state := NewBoardState()
	if got := state.PawnPosition(0); got != Pos(4, 0) {
		t.Fatalf("player 0 starts at %v, want (4,0)", got)
	}
	if got := state.PawnPosition(1); got != Pos(4, 8) {
		t.Fatalf("player 1 starts at %v, want (4,8)", got)
	}
	for player := 0; player < 2; player++ {
		if got := state.WallsRemaining(player); got != StartingWalls {
			t.Fatalf("player %d has %d walls, want %d", player, got, StartingWalls)
		}
		if got := state.Distance(player); got != 8 {
			t.Fatalf("player %d distance = %d, want 8", player, got)
		}
	}
	for x := 0; x < SlotCount; x++ {
		for y := 0; y < SlotCount; y++ {
			if state.Wall(Pos(x, y)) != None || state.WallOwner(Pos(x, y)) != NoPlayer {
				t.Fatalf("slot (%d,%d) is not empty", x, y)
			}
		}
	}
}

func TestIsBlockedMatchesWallGeometry(t *testing.T) {
	for sx := 0; sx < SlotCount; sx++ {
		for sy := 0; sy < SlotCount; sy++ {
			for _, orientation := range []Orientation{Horizontal, Vertical} {
				slot := Pos(sx, sy)
				state := NewBoardState()
				state.SetWall(slot, orientation, 0)
				for x := 0; x < CellCount; x++ {
					for y := 0; y < CellCount; y++ {
						for _, direction := range Directions {
							cell := Pos(x, y)
							want := edgeBlockedBy(slot, orientation, cell, direction)
							if got := state.IsBlocked(cell, direction); got != want {
								t.Fatalf("%v wall at %v: step %v from %v blocked=%v, want %v",
									orientation, slot, direction, cell, got, want)
							}
						}
					}
				}
			}
		}
	}
}

func TestHorizontalWallBlocksVerticalSteps(t *testing.T) {
	state := NewBoardState()
	state.SetWall(Pos(5, 5), Horizontal, 0)

	cases := []struct {
		cell      Position
		direction Position
		blocked   bool
	}{
		{Pos(4, 5), Up, false},
		{Pos(5, 5), Up, true},
		{Pos(6, 5), Up, true},
		{Pos(7, 5), Up, false},
		{Pos(4, 6), Down, false},
		{Pos(5, 6), Down, true},
		{Pos(6, 6), Down, true},
		{Pos(7, 6), Down, false},
		{Pos(5, 5), Right, false},
	}
	for _, c := range cases {
		if got := state.IsBlocked(c.cell, c.direction); got != c.blocked {
			t.Errorf("step %v from %v: blocked=%v, want %v", c.direction, c.cell, got, c.blocked)
		}
	}
}

func TestVerticalWallBlocksHorizontalSteps(t *testing.T) {
	state := NewBoardState()
	state.SetWall(Pos(5, 5), Vertical, 1)

	cases := []struct {
		cell      Position
		direction Position
		blocked   bool
	}{
		{Pos(5, 4), Right, false},
		{Pos(5, 5), Right, true},
		{Pos(5, 6), Right, true},
		{Pos(5, 7), Right, false},
		{Pos(6, 4), Left, false},
		{Pos(6, 5), Left, true},
		{Pos(6, 6), Left, true},
		{Pos(6, 7), Left, false},
		{Pos(5, 5), Up, false},
	}
	for _, c := range cases {
		if got := state.IsBlocked(c.cell, c.direction); got != c.blocked {
			t.Errorf("step %v from %v: blocked=%v, want %v", c.direction, c.cell, got, c.blocked)
		}
	}
}

func samePositions(got, want []Position) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func contains(cells []Position, cell Position) bool {
	for _, c := range cells {
		if c == cell {
			return true
		}
	}
	return false
}

func TestValidMovesFromStart(t *testing.T) {
	state := NewBoardState()
	want := map[int][]Position{
		0: {Pos(5, 0), Pos(3, 0), Pos(4, 1)},
		1: {Pos(5, 8), Pos(3, 8), Pos(4, 7)},
	}
	for player, cells := range want {
		if got := state.ValidMoves(player); !samePositions(got, cells) {
			t.Fatalf("player %d moves = %v, want %v", player, got, cells)
		}
	}
}

func TestValidMovesOpenBoard(t *testing.T) {
	state := NewBoardState()
	state.SetPawnPosition(0, Pos(3, 3))

	got := state.ValidMoves(0)
	want := []Position{Pos(4, 3), Pos(2, 3), Pos(3, 4), Pos(3, 2)}
	if !samePositions(got, want) {
		t.Fatalf("moves = %v, want %v", got, want)
	}
}

func TestValidMovesStraightJump(t *testing.T) {
	state := NewBoardState()
	state.SetPawnPosition(0, Pos(4, 4))
	state.SetPawnPosition(1, Pos(4, 5))

	got := state.ValidMoves(0)
	if !contains(got, Pos(4, 6)) {
		t.Fatalf("moves %v miss straight jump to (4,6)", got)
	}
	if contains(got, Pos(4, 5)) {
		t.Fatalf("moves %v include the opponent's cell", got)
	}
	if contains(got, Pos(4, 4)) {
		t.Fatalf("moves %v include the mover's own cell", got)
	}
	want := []Position{Pos(5, 4), Pos(3, 4), Pos(5, 5), Pos(3, 5), Pos(4, 6), Pos(4, 3)}
	if !samePositions(got, want) {
		t.Fatalf("moves = %v, want %v", got, want)
	}
}

func TestValidMovesDiagonalJumpWhenStraightBlocked(t *testing.T) {
	state := NewBoardState()
	state.SetPawnPosition(0, Pos(3, 3))
	state.SetPawnPosition(1, Pos(3, 4))
	state.SetWall(Pos(2, 4), Horizontal, 1)

	got := state.ValidMoves(0)
	if len(got) != 5 {
		t.Fatalf("moves = %v, want 5 entries", got)
	}
	for _, cell := range []Position{Pos(3, 2), Pos(2, 3), Pos(4, 3), Pos(2, 4), Pos(4, 4)} {
		if !contains(got, cell) {
			t.Fatalf("moves %v miss %v", got, cell)
		}
	}
	if contains(got, Pos(3, 5)) {
		t.Fatalf("moves %v jump through a wall", got)
	}
}

func TestValidMovesAlongEdgeWithWalls(t *testing.T) {
	state := NewBoardState()
	state.SetWall(Pos(3, 0), Horizontal, 1)
	state.SetWall(Pos(2, 0), Vertical, 1)

	got := state.ValidMoves(0)
	want := []Position{Pos(5, 0), Pos(3, 0)}
	if !samePositions(got, want) {
		t.Fatalf("moves = %v, want %v", got, want)
	}
}

func TestDistanceAroundWall(t *testing.T) {
	state := NewBoardState()
	state.SetWall(Pos(5, 5), Horizontal, 1)
	state.SetPawnPosition(0, Pos(5, 5))

	if got := state.Distance(0); got != 4 {
		t.Fatalf("distance = %d, want 4", got)
	}
}

func TestDistanceTrapped(t *testing.T) {
	state := NewBoardState()
	state.SetWall(Pos(3, 0), Horizontal, 1)
	state.SetWall(Pos(2, 0), Vertical, 1)
	state.SetWall(Pos(4, 0), Vertical, 1)

	if got := state.Distance(0); got != Unreachable {
		t.Fatalf("distance = %d, want %d", got, Unreachable)
	}
	if !state.IsTrapped(0) || !state.IsEitherTrapped() {
		t.Fatalf("player 0 should be trapped")
	}
	if state.IsTrapped(1) {
		t.Fatalf("player 1 should not be trapped")
	}
	matrix := state.DistanceMatrix(0)
	if matrix.Get(3, 0) != Unreachable || matrix.Get(5, 0) == Unreachable {
		t.Fatalf("unexpected matrix around the box: (3,0)=%d (5,0)=%d", matrix.Get(3, 0), matrix.Get(5, 0))
	}
}

// bruteForceDistance walks the board with the geometric edge test instead of
// the board's own blocking table.
func bruteForceDistance(walls map[Position]Orientation, from Position, goalRow int) int {
	seen := map[Position]int{from: 0}
	queue := []Position{from}
	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]
		if cell.Y == goalRow {
			return seen[cell]
		}
		for _, direction := range Directions {
			next := cell.Add(direction)
			if !IsCellInBounds(next) {
				continue
			}
			blocked := false
			for slot, orientation := range walls {
				if edgeBlockedBy(slot, orientation, cell, direction) {
					blocked = true
					break
				}
			}
			if _, ok := seen[next]; ok || blocked {
				continue
			}
			seen[next] = seen[cell] + 1
			queue = append(queue, next)
		}
	}
	return Unreachable
}

func TestDistanceMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 40; round++ {
		state := NewBoardState()
		walls := map[Position]Orientation{}
		// Trapping layouts are allowed here; the property covers them too.
		attempts := 6 + rng.Intn(20)
		for i := 0; i < attempts; i++ {
			slot := Pos(rng.Intn(SlotCount), rng.Intn(SlotCount))
			orientation := Horizontal
			if rng.Intn(2) == 0 {
				orientation = Vertical
			}
			if IsWallOverlapping(state, slot, orientation) {
				continue
			}
			state.SetWall(slot, orientation, rng.Intn(2))
			walls[slot] = orientation
		}
		for player := 0; player < 2; player++ {
			for x := 0; x < CellCount; x++ {
				for y := 0; y < CellCount; y++ {
					want := bruteForceDistance(walls, Pos(x, y), GoalRow(player))
					if got := state.DistanceMatrix(player).Get(x, y); got != want {
						t.Fatalf("round %d player %d cell (%d,%d): distance %d, want %d", round, player, x, y, got, want)
					}
				}
			}
		}
	}
}

func TestCopySharesNothing(t *testing.T) {
	original := NewBoardState()
	if got := original.Distance(0); got != 8 {
		t.Fatalf("distance = %d, want 8", got)
	}

	clone := original.Copy()
	clone.SetWall(Pos(3, 0), Horizontal, 0)
	clone.SetPawnPosition(1, Pos(0, 0))
	clone.SetWallsRemaining(0, 3)

	if original.Wall(Pos(3, 0)) != None || original.WallOwner(Pos(3, 0)) != NoPlayer {
		t.Fatalf("copy shares wall storage with the original")
	}
	if original.PawnPosition(1) != Pos(4, 8) || original.WallsRemaining(0) != StartingWalls {
		t.Fatalf("copy shares pawn or wall-count storage with the original")
	}
	if got := clone.Distance(0); got != 9 {
		t.Fatalf("copy distance = %d, want 9 (stale cache?)", got)
	}
	if got := original.Distance(0); got != 8 {
		t.Fatalf("original distance changed to %d", got)
	}
}
