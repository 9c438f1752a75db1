package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"quoridor/ai"
	"quoridor/arena"
	"quoridor/config"
	"quoridor/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	p0 := flag.String("p0", ai.KindShortest, "player 0 kind (random, shortest, minimax)")
	p1 := flag.String("p1", ai.KindRandom, "player 1 kind (random, shortest, minimax)")
	games := flag.Int("games", cfg.Games, "number of games to play")
	workers := flag.Int("workers", cfg.Workers, "games played in parallel")
	depth := flag.Int("depth", cfg.Depth, "search depth for minimax players")
	maxTurns := flag.Int("max-turns", cfg.MaxTurns, "stop a game after this many turns (0 = never)")
	moveChance := flag.Float64("move-chance", cfg.MoveChance, "chance a heuristic player moves instead of walling")
	seed := flag.Int64("seed", 0, "base seed for the heuristic players (0 = clock)")
	dbPath := flag.String("db", cfg.DBPath, "path to the match ledger")
	noDB := flag.Bool("no-db", false, "do not record matches")
	flag.Parse()

	cfg.ApplyLogLevel()
	log.Println("Starting arena...")

	var recorder arena.Recorder
	if !*noDB {
		store, err := storage.Open(*dbPath)
		if err != nil {
			log.Fatalf("Failed to open match ledger: %v", err)
		}
		defer store.Close()
		recorder = store
		log.Printf("Recording matches to %s", *dbPath)
	}

	pool, err := arena.New(arena.Settings{
		Players:  [2]string{*p0, *p1},
		Options:  ai.Options{Depth: *depth, MoveChance: *moveChance, Seed: *seed},
		Games:    *games,
		Workers:  *workers,
		MaxTurns: *maxTurns,
	}, recorder)
	if err != nil {
		log.Fatalf("Failed to start arena: %v", err)
	}

	// Stop feeding games on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := pool.Run(ctx)
	if err != nil {
		log.Printf("Arena interrupted: %v", err)
	}

	log.Printf("%s won %d, %s won %d, %d unfinished, %d errors",
		*p0, summary.Wins[0], *p1, summary.Wins[1], summary.Unfinished, summary.Errors)
	log.Printf("%d games in %s (%.2f games/s, %.1f turns/s)",
		summary.Games, summary.Elapsed.Round(time.Millisecond), summary.GamesPerSecond(), summary.TurnsPerSecond())
}
