package game

import "fmt"

// ActionKind tags the variant held by an Action.
type ActionKind int

const (
	ActionMove ActionKind = iota
	ActionWall
)

func (k ActionKind) String() string {
	switch k {
	case ActionMove:
		return "Move"
	case ActionWall:
		return "Wall"
	default:
		return "Unknown"
	}
}

// Action is either a pawn move to Target or a wall placed at slot Target
// with Orientation. Build one with NewMove or NewWall.
type Action struct {
	Kind        ActionKind  `json:"kind"`
	Target      Position    `json:"target"`
	Orientation Orientation `json:"orientation,omitempty"`
}

func NewMove(cell Position) Action {
	return Action{Kind: ActionMove, Target: cell}
}

func NewWall(slot Position, orientation Orientation) Action {
	return Action{Kind: ActionWall, Target: slot, Orientation: orientation}
}

// WallSlot is a wall anchor paired with an orientation.
type WallSlot struct {
	Slot        Position
	Orientation Orientation
}

func (w WallSlot) Action() Action {
	return NewWall(w.Slot, w.Orientation)
}

// Apply returns the state produced by player taking a on state. It does not
// check legality and never mutates state. Placing a wall on an occupied slot
// or without walls left is a programming error and panics.
func (a Action) Apply(state *BoardState, player int) *BoardState {
	next := state.Copy()
	switch a.Kind {
	case ActionMove:
		next.pawns[player] = a.Target
	case ActionWall:
		if next.Wall(a.Target) != None {
			panic(fmt.Sprintf("apply %v: slot already holds a wall", a))
		}
		if next.wallsRemaining[player] == 0 {
			panic(fmt.Sprintf("apply %v: player %d has no walls left", a, player))
		}
		next.walls.Set(a.Target.X, a.Target.Y, int(a.Orientation))
		next.wallOwner.Set(a.Target.X, a.Target.Y, player)
		next.wallsRemaining[player]--
	default:
		panic(fmt.Sprintf("apply: unknown action kind %d", a.Kind))
	}
	return next
}

// String renders the action in the notation accepted by ParseAction.
func (a Action) String() string {
	switch a.Kind {
	case ActionMove:
		return fmt.Sprintf("m %d %d", a.Target.X, a.Target.Y)
	case ActionWall:
		tag := "h"
		if a.Orientation == Vertical {
			tag = "v"
		}
		return fmt.Sprintf("%s %d %d", tag, a.Target.X, a.Target.Y)
	default:
		return "?"
	}
}
