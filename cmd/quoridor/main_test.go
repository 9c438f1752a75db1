package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"quoridor/game"
)

func TestHumanPlayerAsksAgain(t *testing.T) {
	var out bytes.Buffer
	h := newHumanPlayer(strings.NewReader("jump\nm 4 2\nv 3 4\n"), &out)

	action, err := h.TakeAction(game.NewBoardState(), 0)
	if err != nil {
		t.Fatalf("TakeAction: %v", err)
	}
	if action != game.NewWall(game.Pos(3, 4), game.Vertical) {
		t.Fatalf("action = %v, want v 3 4", action)
	}
	if got := strings.Count(out.String(), "player 0> "); got != 3 {
		t.Fatalf("prompted %d times, want 3:\n%s", got, out.String())
	}

	if _, err := h.TakeAction(game.NewBoardState(), 0); !errors.Is(err, errQuit) {
		t.Fatalf("err = %v, want errQuit at end of input", err)
	}
}

func TestRenderBoard(t *testing.T) {
	state := game.NewWall(game.Pos(0, 7), game.Horizontal).Apply(game.NewBoardState(), 0)
	state = game.NewWall(game.Pos(7, 0), game.Vertical).Apply(state, 1)

	lines := strings.Split(renderBoard(state), "\n")
	if lines[0] != "8 . . . . 1 . . . ." {
		t.Fatalf("top row = %q", lines[0])
	}
	if lines[1] != "  ---              " {
		t.Fatalf("wall row = %q", lines[1])
	}
	if lines[16] != "0 . . . . 0 . . .|." {
		t.Fatalf("bottom row = %q", lines[16])
	}
	if lines[17] != "  0 1 2 3 4 5 6 7 8 " {
		t.Fatalf("labels = %q", lines[17])
	}
	if !strings.Contains(lines[18], "player 0 9, player 1 9") {
		t.Fatalf("wall count line = %q", lines[18])
	}
}
