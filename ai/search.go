package ai

import (
	"errors"
	"fmt"
	"math"
	"time"

	log "github.com/sirupsen/logrus"

	"quoridor/game"
)

// ErrNoLegalAction means the player to move has neither a pawn move nor a
// wall. On a board reached through legal play this does not happen.
var ErrNoLegalAction = errors.New("no legal action available")

// SearchEngine chooses actions with fixed-depth minimax. It holds no
// per-search state and may be shared between games.
type SearchEngine struct {
	// Pruning enables alpha-beta cutoffs. With it off the engine walks the
	// full tree.
	Pruning bool
}

func NewSearchEngine() *SearchEngine {
	return &SearchEngine{Pruning: true}
}

// Result describes a finished search.
type Result struct {
	Action  game.Action
	Score   float64
	Depth   int
	Nodes   int
	Elapsed time.Duration
}

// searchRun carries the bookkeeping of a single Search call.
type searchRun struct {
	pruning bool
	scoring int
	nodes   int
}

// minimaxResult is the value of a node and the action that reached it.
type minimaxResult struct {
	score  float64
	action game.Action
	found  bool
}

// ChooseAction returns the action player should take on state, searching
// depth plies ahead.
func (e *SearchEngine) ChooseAction(state *game.BoardState, player, depth int) (game.Action, error) {
	result, err := e.Search(state, player, depth)
	if err != nil {
		return game.Action{}, err
	}
	return result.Action, nil
}

// Search runs minimax from state for player. The root is always expanded,
// even when the position is already decided, so a legal action comes back
// whenever one exists.
func (e *SearchEngine) Search(state *game.BoardState, player, depth int) (Result, error) {
	if depth < 1 {
		return Result{}, fmt.Errorf("search depth %d: must be at least 1", depth)
	}
	start := time.Now()
	run := &searchRun{pruning: e.Pruning, scoring: player}

	best := run.expand(state, player, depth, math.Inf(-1), math.Inf(1), true)
	if !best.found {
		return Result{}, fmt.Errorf("player %d: %w", player, ErrNoLegalAction)
	}

	result := Result{
		Action:  best.action,
		Score:   best.score,
		Depth:   depth,
		Nodes:   run.nodes,
		Elapsed: time.Since(start),
	}
	log.Debugf("[AI] Player %d selected %q at depth %d, score %.0f (%d nodes, %dms)",
		player, result.Action, depth, result.Score, result.Nodes, result.Elapsed.Milliseconds())
	return result, nil
}

// evaluate scores state for the scoring player: the opponent's remaining
// path minus its own.
func (r *searchRun) evaluate(state *game.BoardState) float64 {
	return float64(state.Distance(game.Opponent(r.scoring)) - state.Distance(r.scoring))
}

func (r *searchRun) minimax(state *game.BoardState, mover, depth int, alpha, beta float64, maximizing bool) minimaxResult {
	r.nodes++

	// Base case: a pawn reached its goal row or the depth ran out
	if depth == 0 || state.Distance(r.scoring) == 0 || state.Distance(game.Opponent(r.scoring)) == 0 {
		return minimaxResult{score: r.evaluate(state)}
	}

	best := r.expand(state, mover, depth, alpha, beta, maximizing)
	if !best.found {
		// No child survived; score the node as it stands
		return minimaxResult{score: r.evaluate(state)}
	}
	return best
}

// expand tries every candidate action of mover and keeps the first one that
// reaches the best value.
func (r *searchRun) expand(state *game.BoardState, mover, depth int, alpha, beta float64, maximizing bool) minimaxResult {
	best := minimaxResult{score: math.Inf(1)}
	if maximizing {
		best.score = math.Inf(-1)
	}

	for _, action := range candidateActions(state, mover) {
		child := action.Apply(state, mover)
		if child.IsEitherTrapped() {
			continue
		}

		result := r.minimax(child, game.Opponent(mover), depth-1, alpha, beta, !maximizing)

		if maximizing {
			if !best.found || result.score > best.score {
				best = minimaxResult{score: result.score, action: action, found: true}
			}
			alpha = math.Max(alpha, best.score)
		} else {
			if !best.found || result.score < best.score {
				best = minimaxResult{score: result.score, action: action, found: true}
			}
			beta = math.Min(beta, best.score)
		}
		if r.pruning && alpha >= beta {
			break
		}
	}
	return best
}

// candidateActions lists pawn moves first, then every legal wall.
func candidateActions(state *game.BoardState, player int) []game.Action {
	moves := state.ValidMoves(player)
	walls := state.LegalWallSlots(player)
	actions := make([]game.Action, 0, len(moves)+len(walls))
	for _, cell := range moves {
		actions = append(actions, game.NewMove(cell))
	}
	for _, slot := range walls {
		actions = append(actions, slot.Action())
	}
	return actions
}
