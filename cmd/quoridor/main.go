package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"quoridor/ai"
	"quoridor/config"
	"quoridor/game"
)

const kindHuman = "human"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	p0 := flag.String("p0", kindHuman, "player 0 kind (human, random, shortest, minimax)")
	p1 := flag.String("p1", ai.KindMinimax, "player 1 kind (human, random, shortest, minimax)")
	depth := flag.Int("depth", cfg.Depth, "search depth for minimax players")
	moveChance := flag.Float64("move-chance", cfg.MoveChance, "chance a heuristic player moves instead of walling")
	seed := flag.Int64("seed", 0, "seed for the heuristic players (0 = clock)")
	maxTurns := flag.Int("max-turns", cfg.MaxTurns, "stop after this many turns (0 = never)")
	asJSON := flag.Bool("json", false, "print the turn log as JSON instead of drawing the board")
	flag.Parse()

	cfg.ApplyLogLevel()

	players := [2]game.Player{}
	for side, kind := range [2]string{*p0, *p1} {
		if kind == kindHuman {
			players[side] = newHumanPlayer(os.Stdin, os.Stdout)
			continue
		}
		opts := ai.Options{Depth: *depth, MoveChance: *moveChance}
		if *seed != 0 {
			opts.Seed = *seed + int64(side)
		}
		players[side], err = ai.NewPlayer(kind, opts)
		if err != nil {
			log.Fatalf("Player %d: %v", side, err)
		}
	}

	g := game.NewGame(players[0], players[1])
	if !*asJSON {
		fmt.Print(renderBoard(g.CurrentState()))
	}
	for !g.IsOver() && (*maxTurns == 0 || len(g.Turns())-1 < *maxTurns) {
		turn, err := g.TakeTurn()
		if errors.Is(err, errQuit) {
			break
		}
		if err != nil {
			log.Fatalf("Turn failed: %v", err)
		}
		if !*asJSON {
			fmt.Printf("\nplayer %d: %s\n", turn.Player, turn.Action)
			fmt.Print(renderBoard(turn.State))
		}
	}

	if *asJSON {
		data, err := json.MarshalIndent(g.Turns(), "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode turns: %v", err)
		}
		fmt.Println(string(data))
		return
	}
	if winner, won := g.Winner(); won {
		fmt.Printf("player %d wins after %d turns\n", winner, len(g.Turns())-1)
	} else {
		fmt.Printf("no winner after %d turns\n", len(g.Turns())-1)
	}
}
