package ai

import (
	"fmt"
	"math/rand"
	"time"

	"quoridor/game"
)

// Player kinds understood by NewPlayer.
const (
	KindRandom   = "random"
	KindShortest = "shortest"
	KindMinimax  = "minimax"
)

// Kinds lists every kind NewPlayer accepts.
var Kinds = []string{KindRandom, KindShortest, KindMinimax}

// randomWallAttempts bounds how many random slots RandomPlayer tries before
// it gives up on walls for the turn.
const randomWallAttempts = 32

// Options configures the players built by NewPlayer.
type Options struct {
	Depth      int
	MoveChance float64
	// Seed feeds the random source of the heuristic players. Zero picks one
	// from the clock.
	Seed       int64
}

// NewPlayer builds the move source named by kind.
func NewPlayer(kind string, opts Options) (game.Player, error) {
	switch kind {
	case KindRandom:
		return NewRandomPlayer(opts.MoveChance, newRand(opts.Seed)), nil
	case KindShortest:
		return NewShortestPathPlayer(opts.MoveChance, newRand(opts.Seed)), nil
	case KindMinimax:
		if opts.Depth < 1 {
			return nil, fmt.Errorf("minimax player: depth %d must be at least 1", opts.Depth)
		}
		return &MinimaxPlayer{Engine: NewSearchEngine(), Depth: opts.Depth}, nil
	default:
		return nil, fmt.Errorf("unknown player kind %q (want one of %v)", kind, Kinds)
	}
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// MinimaxPlayer asks the search engine for every action.
type MinimaxPlayer struct {
	Engine *SearchEngine
	Depth  int
}

func (p *MinimaxPlayer) TakeAction(state *game.BoardState, player int) (game.Action, error) {
	return p.Engine.ChooseAction(state, player, p.Depth)
}

// RandomPlayer moves with probability MoveChance and otherwise drops a wall
// at a random legal slot.
type RandomPlayer struct {
	MoveChance float64
	rng        *rand.Rand
}

func NewRandomPlayer(moveChance float64, rng *rand.Rand) *RandomPlayer {
	return &RandomPlayer{MoveChance: moveChance, rng: rng}
}

func (p *RandomPlayer) TakeAction(state *game.BoardState, player int) (game.Action, error) {
	if p.rng.Float64() >= p.MoveChance && state.WallsRemaining(player) > 0 {
		for i := 0; i < randomWallAttempts; i++ {
			orientation := game.Horizontal
			if p.rng.Intn(2) == 1 {
				orientation = game.Vertical
			}
			action := game.NewWall(game.Pos(p.rng.Intn(game.SlotCount), p.rng.Intn(game.SlotCount)), orientation)
			if game.IsLegal(state, player, action) {
				return action, nil
			}
		}
	}

	moves := state.ValidMoves(player)
	if len(moves) == 0 {
		return game.Action{}, fmt.Errorf("player %d: %w", player, ErrNoLegalAction)
	}
	return game.NewMove(moves[p.rng.Intn(len(moves))]), nil
}

// ShortestPathPlayer walks its own shortest path, or with probability
// 1-MoveChance tries to wall off the opponent's next step.
type ShortestPathPlayer struct {
	MoveChance float64
	rng        *rand.Rand
}

func NewShortestPathPlayer(moveChance float64, rng *rand.Rand) *ShortestPathPlayer {
	return &ShortestPathPlayer{MoveChance: moveChance, rng: rng}
}

func (p *ShortestPathPlayer) TakeAction(state *game.BoardState, player int) (game.Action, error) {
	if p.rng.Float64() >= p.MoveChance && state.WallsRemaining(player) > 0 {
		if action, ok := blockingWall(state, player); ok {
			return action, nil
		}
	}

	best, ok := bestMove(state, player)
	if !ok {
		return game.Action{}, fmt.Errorf("player %d: %w", player, ErrNoLegalAction)
	}
	return game.NewMove(best), nil
}

// bestMove returns the first valid move with the smallest distance to
// player's goal row.
func bestMove(state *game.BoardState, player int) (game.Position, bool) {
	distances := state.DistanceMatrix(player)
	best, bestDistance := game.Position{}, game.Unreachable
	for _, cell := range state.ValidMoves(player) {
		d := distances.Get(cell.X, cell.Y)
		if d == game.Unreachable {
			continue
		}
		if bestDistance == game.Unreachable || d < bestDistance {
			best, bestDistance = cell, d
		}
	}
	return best, bestDistance != game.Unreachable
}

// blockingWall looks for a legal wall across the edge the opponent would
// take next. When that step is a jump over player, the edge from player's
// own cell towards the landing cell is tried instead.
func blockingWall(state *game.BoardState, player int) (game.Action, bool) {
	opponent := game.Opponent(player)
	target, ok := bestMove(state, opponent)
	if !ok {
		return game.Action{}, false
	}

	from := state.PawnPosition(opponent)
	direction := target.Sub(from)
	if !isUnitStep(direction) {
		from = state.PawnPosition(player)
		direction = target.Sub(from)
		if !isUnitStep(direction) {
			return game.Action{}, false
		}
	}

	orientation, slots := game.BlockingSlots(from, direction)
	for _, slot := range slots {
		action := game.NewWall(slot, orientation)
		if game.IsLegal(state, player, action) {
			return action, true
		}
	}
	return game.Action{}, false
}

func isUnitStep(d game.Position) bool {
	for _, direction := range game.Directions {
		if d == direction {
			return true
		}
	}
	return false
}
