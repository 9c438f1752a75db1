package game

import (
	"encoding/json"
	"fmt"
)

// boardJSON is the wire projection of a BoardState. Matrices are indexed
// [y][x]. Distances are output only; decoding drops them.
type boardJSON struct {
	Walls          [][]int     `json:"walls"`
	WallOwners     [][]int     `json:"wallOwners"`
	Pawns          [2]Position `json:"pawns"`
	WallsRemaining [2]int      `json:"wallsRemaining"`
	Distances      *[2]int     `json:"distances,omitempty"`
}

func (b *BoardState) MarshalJSON() ([]byte, error) {
	distances := [2]int{b.Distance(0), b.Distance(1)}
	return json.Marshal(boardJSON{
		Walls:          b.walls.Rows(),
		WallOwners:     b.wallOwner.Rows(),
		Pawns:          b.pawns,
		WallsRemaining: b.wallsRemaining,
		Distances:      &distances,
	})
}

// UnmarshalJSON rebuilds a state from its projection.
func (b *BoardState) UnmarshalJSON(data []byte) error {
	var raw boardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	walls, err := matrixFromRows(raw.Walls, func(v int) bool { return v >= int(None) && v <= int(Vertical) })
	if err != nil {
		return fmt.Errorf("walls: %w", err)
	}
	owners, err := matrixFromRows(raw.WallOwners, func(v int) bool { return v >= NoPlayer && v <= 1 })
	if err != nil {
		return fmt.Errorf("wallOwners: %w", err)
	}
	for player, pawn := range raw.Pawns {
		if !IsCellInBounds(pawn) {
			return fmt.Errorf("pawn %d at %v: %w", player, pawn, ErrOutOfRange)
		}
		if raw.WallsRemaining[player] < 0 || raw.WallsRemaining[player] > StartingWalls {
			return fmt.Errorf("player %d has %d walls: %w", player, raw.WallsRemaining[player], ErrOutOfRange)
		}
	}
	*b = BoardState{
		walls:          walls,
		wallOwner:      owners,
		pawns:          raw.Pawns,
		wallsRemaining: raw.WallsRemaining,
	}
	return nil
}

func matrixFromRows(rows [][]int, valid func(int) bool) (*Matrix, error) {
	if len(rows) != SlotCount {
		return nil, fmt.Errorf("%d rows: %w", len(rows), ErrOutOfRange)
	}
	m := NewMatrix(SlotCount, SlotCount, 0)
	for y, row := range rows {
		if len(row) != SlotCount {
			return nil, fmt.Errorf("row %d has %d values: %w", y, len(row), ErrOutOfRange)
		}
		for x, v := range row {
			if !valid(v) {
				return nil, fmt.Errorf("value %d at (%d,%d): %w", v, x, y, ErrOutOfRange)
			}
			m.Set(x, y, v)
		}
	}
	return m, nil
}
