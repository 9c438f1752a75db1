package main

import (
	"fmt"
	"strings"

	"quoridor/game"
)

const gridSize = 2*game.CellCount - 1

// renderBoard draws the board with row 8 on top. Cells sit on even grid
// coordinates and walls fill the odd ones between them.
func renderBoard(state *game.BoardState) string {
	var grid [gridSize][gridSize]byte
	for gy := 0; gy < gridSize; gy++ {
		for gx := 0; gx < gridSize; gx++ {
			grid[gy][gx] = ' '
			if gx%2 == 0 && gy%2 == 0 {
				grid[gy][gx] = '.'
			}
		}
	}

	for x := 0; x < game.SlotCount; x++ {
		for y := 0; y < game.SlotCount; y++ {
			switch state.Wall(game.Pos(x, y)) {
			case game.Horizontal:
				for i := 0; i < 3; i++ {
					grid[2*y+1][2*x+i] = '-'
				}
			case game.Vertical:
				for i := 0; i < 3; i++ {
					grid[2*y+i][2*x+1] = '|'
				}
			}
		}
	}
	for player := 0; player < 2; player++ {
		pawn := state.PawnPosition(player)
		grid[2*pawn.Y][2*pawn.X] = byte('0' + player)
	}

	var b strings.Builder
	for gy := gridSize - 1; gy >= 0; gy-- {
		if gy%2 == 0 {
			fmt.Fprintf(&b, "%d ", gy/2)
		} else {
			b.WriteString("  ")
		}
		b.Write(grid[gy][:])
		b.WriteByte('\n')
	}
	b.WriteString("  ")
	for x := 0; x < game.CellCount; x++ {
		fmt.Fprintf(&b, "%d ", x)
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "walls left: player 0 %d, player 1 %d\n", state.WallsRemaining(0), state.WallsRemaining(1))
	return b.String()
}
