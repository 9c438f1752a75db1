package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"quoridor/config"
	"quoridor/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dbPath := flag.String("db", cfg.DBPath, "Path to SQLite database")
	batch := flag.String("batch", "", "Only show matches of this batch")
	limit := flag.Int("limit", 0, "Show at most this many matches (0 = all)")
	asJSON := flag.Bool("json", false, "Print matches as JSON")
	flag.Parse()

	if _, err := os.Stat(*dbPath); os.IsNotExist(err) {
		log.Fatalf("Database not found at %s", *dbPath)
	}

	store, err := storage.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	matches, err := store.ListMatches(*batch, *limit)
	if err != nil {
		log.Fatalf("Failed to query matches: %v", err)
	}

	if *asJSON {
		formatted, err := json.MarshalIndent(matches, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode matches: %v", err)
		}
		fmt.Println(string(formatted))
		return
	}

	for _, m := range matches {
		fmt.Printf("Match: %s (%s)\n", m.Label, m.ID)
		fmt.Printf("Batch: %s\n", m.BatchID)
		fmt.Printf("Time: %s - %s\n", m.StartedAt.Format(time.RFC822), m.EndedAt.Format(time.RFC822))
		fmt.Printf("Players: %s vs %s", m.Player0, m.Player1)
		if m.Depth > 0 {
			fmt.Printf(" (depth %d)", m.Depth)
		}
		fmt.Printf("\n")
		fmt.Printf("Result: Winner %d after %d turns (%s)\n", m.Winner, m.Turns, m.Termination)
		fmt.Printf("Walls used: %d / %d\n", m.WallsUsed[0], m.WallsUsed[1])
		fmt.Println("--------------------------------------------------")
	}

	fmt.Printf("Total matches found: %d\n", len(matches))
}
