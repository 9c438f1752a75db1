package game

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Player is a move source: a human front end, a scripted bot or the search.
type Player interface {
	TakeAction(state *BoardState, player int) (Action, error)
}

// PlayerFunc adapts a function to the Player interface.
type PlayerFunc func(state *BoardState, player int) (Action, error)

func (f PlayerFunc) TakeAction(state *BoardState, player int) (Action, error) {
	return f(state, player)
}

// Turn records the state produced by Player taking Action. The seed turn at
// index 0 has Player == NoPlayer and a zero Action.
type Turn struct {
	State  *BoardState `json:"state"`
	Player int         `json:"player"`
	Action *Action     `json:"action,omitempty"`
}

// ErrGameOver is returned by Play when asked to continue a finished game.
var ErrGameOver = errors.New("game is over")

// Game alternates two players starting with player 0 and keeps the
// append-only turn log.
type Game struct {
	players [2]Player
	state   *BoardState
	current int
	winner  int
	turns   []Turn
}

func NewGame(first, second Player) *Game {
	g := &Game{players: [2]Player{first, second}}
	g.Reset()
	return g
}

// Reset returns to the starting position with a single seed turn.
func (g *Game) Reset() {
	g.state = NewBoardState()
	g.current = 0
	g.winner = NoPlayer
	g.turns = []Turn{{State: g.state, Player: NoPlayer}}
}

func (g *Game) CurrentState() *BoardState {
	return g.state
}

func (g *Game) CurrentPlayer() int {
	return g.current
}

// Winner returns the winning player once the game is over.
func (g *Game) Winner() (int, bool) {
	return g.winner, g.winner != NoPlayer
}

func (g *Game) IsOver() bool {
	return g.winner != NoPlayer
}

// Turns returns a copy of the turn log.
func (g *Game) Turns() []Turn {
	return append([]Turn(nil), g.turns...)
}

// TakeTurn asks the current player for an action, validates and applies it,
// and hands the move to the other player. It returns nil, nil once the game
// is won. A rejected action leaves the game unchanged and returns an error
// wrapping ErrIllegalAction.
func (g *Game) TakeTurn() (*Turn, error) {
	if g.IsOver() {
		return nil, nil
	}
	mover := g.current
	action, err := g.players[mover].TakeAction(g.state, mover)
	if err != nil {
		return nil, fmt.Errorf("player %d: %w", mover, err)
	}
	if err := CheckAction(g.state, mover, action); err != nil {
		log.Printf("Rejected action %q from player %d: %v", action, mover, err)
		return nil, err
	}

	g.state = action.Apply(g.state, mover)
	g.turns = append(g.turns, Turn{State: g.state, Player: mover, Action: &action})
	log.Debugf("Turn %d: player %d played %q", len(g.turns)-1, mover, action)

	if g.state.Distance(mover) == 0 {
		g.winner = mover
		log.Printf("Game ended: player %d reached row %d after %d turns", mover, GoalRow(mover), len(g.turns)-1)
	}
	g.current = Opponent(mover)
	turn := g.turns[len(g.turns)-1]
	return &turn, nil
}

// Play takes turns until someone wins or maxTurns more turns have been taken.
// maxTurns <= 0 means no limit. It reports whether the game finished.
func (g *Game) Play(maxTurns int) (bool, error) {
	if g.IsOver() {
		return true, ErrGameOver
	}
	for taken := 0; maxTurns <= 0 || taken < maxTurns; taken++ {
		if _, err := g.TakeTurn(); err != nil {
			return false, err
		}
		if g.IsOver() {
			return true, nil
		}
	}
	return false, nil
}
