package game

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalAction is wrapped by every rejection the validator returns.
	ErrIllegalAction = errors.New("illegal action")

	ErrOutOfRange      = fmt.Errorf("%w: coordinate out of range", ErrIllegalAction)
	ErrNoWallsLeft     = fmt.Errorf("%w: no walls left", ErrIllegalAction)
	ErrWallOverlap     = fmt.Errorf("%w: wall overlaps another wall", ErrIllegalAction)
	ErrWallTrapsPlayer = fmt.Errorf("%w: wall leaves a player without a path", ErrIllegalAction)
	ErrIllegalMove     = fmt.Errorf("%w: pawn cannot reach that cell", ErrIllegalAction)
)

// wallShift is the step along a wall's own axis to the slots whose
// same-orientation walls would share a segment with it.
func wallShift(orientation Orientation) Position {
	if orientation == Horizontal {
		return Right
	}
	return Up
}

// IsWallOverlapping reports whether a wall at slot would sit on top of
// another wall, or share a segment with a parallel neighbour.
func IsWallOverlapping(state *BoardState, slot Position, orientation Orientation) bool {
	if state.Wall(slot) != None {
		return true
	}
	shift := wallShift(orientation)
	for _, neighbor := range [2]Position{slot.Add(shift), slot.Sub(shift)} {
		if IsWallSlotInBounds(neighbor) && state.Wall(neighbor) == orientation {
			return true
		}
	}
	return false
}

// IsLegalWallPlacement checks bounds, overlap and that neither player is left
// without a path once the wall is in place. The wall budget is not checked.
func IsLegalWallPlacement(state *BoardState, slot Position, orientation Orientation) bool {
	return checkWallPlacement(state, slot, orientation) == nil
}

func checkWallPlacement(state *BoardState, slot Position, orientation Orientation) error {
	if !IsWallSlotInBounds(slot) || (orientation != Horizontal && orientation != Vertical) {
		return ErrOutOfRange
	}
	if IsWallOverlapping(state, slot, orientation) {
		return ErrWallOverlap
	}
	// The owner only matters for rendering, so the simulation leaves it unset.
	trial := state.Copy()
	trial.walls.Set(slot.X, slot.Y, int(orientation))
	if trial.IsEitherTrapped() {
		return ErrWallTrapsPlayer
	}
	return nil
}

// IsLegalMove reports whether target is one of player's enumerated moves.
func IsLegalMove(state *BoardState, player int, target Position) bool {
	for _, cell := range state.ValidMoves(player) {
		if cell == target {
			return true
		}
	}
	return false
}

// CheckAction returns nil when player may take action on state, or an error
// wrapping ErrIllegalAction that says why not.
func CheckAction(state *BoardState, player int, action Action) error {
	if player != 0 && player != 1 {
		return fmt.Errorf("player %d: %w", player, ErrOutOfRange)
	}
	switch action.Kind {
	case ActionMove:
		if !IsCellInBounds(action.Target) {
			return fmt.Errorf("move to %v: %w", action.Target, ErrOutOfRange)
		}
		if !IsLegalMove(state, player, action.Target) {
			return fmt.Errorf("move to %v: %w", action.Target, ErrIllegalMove)
		}
	case ActionWall:
		if state.WallsRemaining(player) == 0 {
			return fmt.Errorf("wall at %v: %w", action.Target, ErrNoWallsLeft)
		}
		if err := checkWallPlacement(state, action.Target, action.Orientation); err != nil {
			return fmt.Errorf("%v wall at %v: %w", action.Orientation, action.Target, err)
		}
	default:
		return fmt.Errorf("action kind %d: %w", action.Kind, ErrIllegalAction)
	}
	return nil
}

// IsLegal reports whether player may take action on state.
func IsLegal(state *BoardState, player int, action Action) bool {
	return CheckAction(state, player, action) == nil
}

// LegalWallSlots lists every wall player could place, slot by slot with the
// vertical orientation first. It is empty when player has no walls left.
func (b *BoardState) LegalWallSlots(player int) []WallSlot {
	if b.wallsRemaining[player] == 0 {
		return nil
	}
	var slots []WallSlot
	for x := 0; x < SlotCount; x++ {
		for y := 0; y < SlotCount; y++ {
			for _, orientation := range [2]Orientation{Vertical, Horizontal} {
				slot := Pos(x, y)
				if IsLegalWallPlacement(b, slot, orientation) {
					slots = append(slots, WallSlot{Slot: slot, Orientation: orientation})
				}
			}
		}
	}
	return slots
}
