package game

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAction reads "m x y" (move), "h x y" or "v x y" (wall at slot x,y).
// It checks coordinates against the right index space but not legality.
func ParseAction(text string) (Action, error) {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) != 3 {
		return Action{}, fmt.Errorf("parse %q: want \"<m|h|v> x y\"", text)
	}
	x, err := strconv.Atoi(fields[1])
	if err != nil {
		return Action{}, fmt.Errorf("parse %q: bad x: %w", text, err)
	}
	y, err := strconv.Atoi(fields[2])
	if err != nil {
		return Action{}, fmt.Errorf("parse %q: bad y: %w", text, err)
	}
	at := Pos(x, y)

	switch fields[0] {
	case "m", "move":
		if !IsCellInBounds(at) {
			return Action{}, fmt.Errorf("parse %q: cell %v: %w", text, at, ErrOutOfRange)
		}
		return NewMove(at), nil
	case "h", "v":
		if !IsWallSlotInBounds(at) {
			return Action{}, fmt.Errorf("parse %q: wall slot %v: %w", text, at, ErrOutOfRange)
		}
		orientation := Horizontal
		if fields[0] == "v" {
			orientation = Vertical
		}
		return NewWall(at, orientation), nil
	default:
		return Action{}, fmt.Errorf("parse %q: unknown action %q", text, fields[0])
	}
}
