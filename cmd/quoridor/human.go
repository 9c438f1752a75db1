package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"quoridor/game"
)

// errQuit is returned when the human closes the input.
var errQuit = errors.New("input closed")

// humanPlayer reads actions in "m x y" / "h x y" / "v x y" notation and asks
// again until the action is legal.
type humanPlayer struct {
	in  *bufio.Scanner
	out io.Writer
}

func newHumanPlayer(in io.Reader, out io.Writer) *humanPlayer {
	return &humanPlayer{in: bufio.NewScanner(in), out: out}
}

func (h *humanPlayer) TakeAction(state *game.BoardState, player int) (game.Action, error) {
	for {
		fmt.Fprintf(h.out, "player %d> ", player)
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return game.Action{}, err
			}
			return game.Action{}, errQuit
		}
		action, err := game.ParseAction(h.in.Text())
		if err != nil {
			fmt.Fprintf(h.out, "%v (try m 4 1, h 3 4 or v 3 4)\n", err)
			continue
		}
		if err := game.CheckAction(state, player, action); err != nil {
			fmt.Fprintf(h.out, "%v\n", err)
			continue
		}
		return action, nil
	}
}
