package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"othello/internal/config"
	"othello/internal/game"
	"othello/internal/room"
	"othello/internal/shared"
	"othello/internal/store"
)

func main() {
	app := &cli.App{
		Name:  "othello",
		Usage: "play Othello in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "mode", Usage: "cpu or player", EnvVars: []string{"GAME_MODE"}},
			&cli.StringFlag{Name: "difficulty", Usage: "easy, medium or hard", EnvVars: []string{"DIFFICULTY"}},
			&cli.Uint64Flag{Name: "seed", Usage: "seed for the easy opponent (0 uses the clock)"},
			&cli.BoolFlag{Name: "alpha-beta", Usage: "prune the search; moves are unchanged"},
		},
		Action: play,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func play(c *cli.Context) error {
	loaded, err := config.Get()
	if err != nil {
		return err
	}
	cfg := *loaded
	config.SetupLogging(cfg)

	if c.IsSet("mode") {
		if cfg.Mode, err = game.ParseMode(c.String("mode")); err != nil {
			return err
		}
	}
	if c.IsSet("difficulty") {
		if cfg.Difficulty, err = game.ParseDifficulty(c.String("difficulty")); err != nil {
			return err
		}
	}
	if c.IsSet("seed") {
		cfg.Search.Seed = c.Uint64("seed")
	}
	if c.IsSet("alpha-beta") {
		cfg.Search.AlphaBeta = c.Bool("alpha-beta")
	}

	rm := room.NewManager(store.NewMemoryStore(), cfg, nil)
	r := rm.CreateRoom(cfg.Mode, cfg.Difficulty)
	log.Debug().Str("room", r.Code).Msg("terminal game started")

	t := &terminal{rm: rm, room: r, in: bufio.NewReader(os.Stdin), out: os.Stdout}
	return t.run()
}

type terminal struct {
	rm   *room.Manager
	room *room.Room
	in   *bufio.Reader
	out  io.Writer
}

func (t *terminal) run() error {
	fmt.Fprintln(t.out, "Enter moves as: row col (1-8). Commands: hint, bot, reset, quit")
	for {
		snap := t.rm.Snapshot(t.room)
		t.printBoard(snap)
		if snap.Outcome != game.InProgress {
			fmt.Fprintf(t.out, "\nGame over: %s (black %d, white %d)\n", snap.Outcome, snap.Score.Black, snap.Score.White)
			return nil
		}
		if snap.Passed {
			fmt.Fprintf(t.out, "%s has no move and passes.\n", snap.LastSide.Opponent())
		}

		fmt.Fprintf(t.out, "%s to move > ", snap.Turn)
		line, err := t.in.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if quit := t.handle(snap, strings.Fields(line)); quit {
			return nil
		}
	}
}

func (t *terminal) handle(snap shared.Snapshot, fields []string) bool {
	if len(fields) == 0 {
		return false
	}
	switch strings.ToLower(fields[0]) {
	case "quit", "exit", "q":
		return true
	case "hint":
		if mv, ok := t.rm.Hint(t.room, snap.Turn); ok {
			fmt.Fprintf(t.out, "Hint: %d %d\n", mv.Row+1, mv.Col+1)
		} else {
			fmt.Fprintln(t.out, "No hint available.")
		}
		return false
	case "bot":
		played, err := t.rm.BotMove(t.room)
		if err != nil {
			fmt.Fprintln(t.out, "Cannot move:", err)
			return false
		}
		t.printMoves(played)
		return false
	case "reset":
		t.rm.Reset(t.room, snap.Mode, snap.Difficulty)
		return false
	}

	if len(fields) != 2 {
		fmt.Fprintln(t.out, "Wrong format. Try again.")
		return false
	}
	row, err1 := strconv.Atoi(fields[0])
	col, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		fmt.Fprintln(t.out, "Wrong format. Try again.")
		return false
	}
	res, err := t.rm.ApplyMove(t.room, snap.Turn, row-1, col-1)
	if err != nil {
		fmt.Fprintln(t.out, "Invalid move:", err)
		return false
	}
	t.printMoves(res.Automated)
	return false
}

func (t *terminal) printMoves(moves []shared.MoveEvent) {
	for _, ev := range moves {
		fmt.Fprintf(t.out, "%s plays %d %d, flipping %d\n", ev.Side, ev.Move.Row+1, ev.Move.Col+1, len(ev.Flipped))
	}
}

func (t *terminal) printBoard(snap shared.Snapshot) {
	legal := map[game.Move]bool{}
	for _, m := range snap.LegalMoves {
		legal[m] = true
	}
	fmt.Fprintln(t.out, "\n  1 2 3 4 5 6 7 8")
	for r := 0; r < game.Size; r++ {
		fmt.Fprintf(t.out, "%d ", r+1)
		for c := 0; c < game.Size; c++ {
			switch snap.Board[r][c] {
			case game.Black:
				fmt.Fprint(t.out, "X ")
			case game.White:
				fmt.Fprint(t.out, "O ")
			default:
				if legal[game.Move{Row: r, Col: c}] {
					fmt.Fprint(t.out, "* ")
				} else {
					fmt.Fprint(t.out, ". ")
				}
			}
		}
		fmt.Fprintln(t.out)
	}
	fmt.Fprintf(t.out, "Black %d  White %d  (%s, %s)\n", snap.Score.Black, snap.Score.White, snap.Mode, snap.Difficulty)
}
