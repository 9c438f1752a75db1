// Package arena plays batches of bot-versus-bot games on a worker pool and
// records each result.
package arena

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"quoridor/ai"
	"quoridor/game"
	"quoridor/storage"
)

// Recorder stores finished matches. *storage.Store satisfies it.
type Recorder interface {
	SaveMatch(m storage.Match) error
}

type Settings struct {
	Players  [2]string
	Options  ai.Options
	Games    int
	Workers  int
	MaxTurns int // 0 plays every game to the end
}

// Summary aggregates a batch.
type Summary struct {
	BatchID    string
	Games      int
	Wins       [2]int
	Unfinished int // games stopped by the turn limit
	Errors     int
	Turns      int
	Elapsed    time.Duration
}

func (s Summary) GamesPerSecond() float64 {
	return perSecond(s.Games, s.Elapsed)
}

func (s Summary) TurnsPerSecond() float64 {
	return perSecond(s.Turns, s.Elapsed)
}

func perSecond(n int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(n) / d.Seconds()
}

type Arena struct {
	settings Settings
	recorder Recorder

	mu      sync.Mutex
	summary Summary
}

// New validates settings and prepares a batch. A nil recorder keeps results
// in the summary only.
func New(settings Settings, recorder Recorder) (*Arena, error) {
	if settings.Workers < 1 {
		return nil, fmt.Errorf("arena needs at least one worker, got %d", settings.Workers)
	}
	if settings.Games < 0 || settings.MaxTurns < 0 {
		return nil, fmt.Errorf("games and max turns cannot be negative")
	}
	for _, kind := range settings.Players {
		if _, err := ai.NewPlayer(kind, settings.Options); err != nil {
			return nil, err
		}
	}
	return &Arena{settings: settings, recorder: recorder}, nil
}

// Run plays every game and returns the batch summary. Once ctx is cancelled
// no new game starts; games already running are finished and recorded, and
// ctx.Err() is returned with the partial summary.
func (a *Arena) Run(ctx context.Context) (Summary, error) {
	batchID := uuid.New().String()
	a.summary = Summary{BatchID: batchID}
	start := time.Now()
	log.WithFields(log.Fields{
		"batch":   batchID,
		"games":   a.settings.Games,
		"workers": a.settings.Workers,
		"players": fmt.Sprintf("%s vs %s", a.settings.Players[0], a.settings.Players[1]),
	}).Info("Starting arena batch")

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < a.settings.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				a.playMatch(batchID, index)
			}
		}()
	}

feed:
	for i := 0; i < a.settings.Games; i++ {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	a.mu.Lock()
	a.summary.Elapsed = time.Since(start)
	summary := a.summary
	a.mu.Unlock()

	log.WithFields(log.Fields{
		"batch":      summary.BatchID,
		"games":      summary.Games,
		"wins":       summary.Wins,
		"unfinished": summary.Unfinished,
		"errors":     summary.Errors,
		"games_sec":  fmt.Sprintf("%.2f", summary.GamesPerSecond()),
		"turns_sec":  fmt.Sprintf("%.1f", summary.TurnsPerSecond()),
	}).Info("Arena batch finished")

	if err := ctx.Err(); err != nil {
		return summary, err
	}
	return summary, nil
}

func (a *Arena) playMatch(batchID string, index int) {
	players := [2]game.Player{}
	for side, kind := range a.settings.Players {
		opts := a.settings.Options
		if opts.Seed != 0 {
			opts.Seed += int64(2*index + side)
		}
		// Kinds were checked in New.
		players[side], _ = ai.NewPlayer(kind, opts)
	}

	match := storage.Match{
		ID:        uuid.New().String(),
		BatchID:   batchID,
		Label:     matchLabel(),
		StartedAt: time.Now(),
		Player0:   a.settings.Players[0],
		Player1:   a.settings.Players[1],
		Winner:    game.NoPlayer,
	}
	if a.settings.Players[0] == ai.KindMinimax || a.settings.Players[1] == ai.KindMinimax {
		match.Depth = a.settings.Options.Depth
	}

	g := game.NewGame(players[0], players[1])
	var playErr error
	for !g.IsOver() && (a.settings.MaxTurns == 0 || len(g.Turns())-1 < a.settings.MaxTurns) {
		if _, playErr = g.TakeTurn(); playErr != nil {
			break
		}
	}

	state := g.CurrentState()
	match.EndedAt = time.Now()
	match.Turns = len(g.Turns()) - 1
	for side := range match.WallsUsed {
		match.WallsUsed[side] = game.StartingWalls - state.WallsRemaining(side)
	}
	switch winner, won := g.Winner(); {
	case playErr != nil:
		match.Termination = storage.TerminationError
		log.WithError(playErr).Warnf("Match %s stopped", match.Label)
	case won:
		match.Winner = winner
		match.Termination = storage.TerminationGoal
	default:
		match.Termination = storage.TerminationPlyLimit
	}

	a.record(match)
}

func (a *Arena) record(match storage.Match) {
	a.mu.Lock()
	a.summary.Games++
	a.summary.Turns += match.Turns
	switch match.Termination {
	case storage.TerminationGoal:
		a.summary.Wins[match.Winner]++
	case storage.TerminationPlyLimit:
		a.summary.Unfinished++
	case storage.TerminationError:
		a.summary.Errors++
	}
	a.mu.Unlock()

	log.WithFields(log.Fields{
		"match":       match.Label,
		"winner":      match.Winner,
		"turns":       match.Turns,
		"termination": match.Termination,
	}).Debug("Match finished")

	if a.recorder == nil {
		return
	}
	if err := a.recorder.SaveMatch(match); err != nil {
		log.Printf("Error saving match %s: %v", match.ID, err)
	}
}
