package main

/*

Two-player ring tic-tac-toe at one terminal.

The board is drawn as a circle of cells around a center cell. Players
alternate, X first: type the label of an empty ring cell (the faint
rune shown on it), or 'c' for the center, or 'q' to give up. Lines are
three consecutive ring cells, or the center plus both ring cells on one
diameter. Once somebody has a line every winning cell is highlighted
and the game stops.

Session events go to a log file (see config.yml / ROUNDEL_* env vars)
so the log output never fights the board redraw.

*/

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/roundel-game/roundel/internal/config"
	"github.com/roundel-game/roundel/internal/render"
	"github.com/roundel-game/roundel/pkg/game"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to the config file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roundel: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := initLogger(conf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roundel: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	var opts []termenv.OutputOption
	if conf.NoColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	out := termenv.NewOutput(os.Stdout, opts...)

	if err := run(conf, out, logger); err != nil {
		logger.Error().Err(err).Msg("session aborted")
		fmt.Fprintf(os.Stderr, "roundel: %v\n", err)
		os.Exit(1)
	}
}

// Open the log file and build the session logger
func initLogger(conf *config.Config) (zerolog.Logger, func(), error) {
	level, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("invalid log level %q: %w", conf.LogLevel, err)
	}

	file, err := os.OpenFile(conf.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o664)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := zerolog.New(file).Level(level).With().Timestamp().Logger()
	return logger, func() { _ = file.Close() }, nil
}

func run(conf *config.Config, out *termenv.Output, logger zerolog.Logger) error {
	g, err := game.New(conf.RingCells)
	if err != nil {
		return err
	}

	logger.Info().Uint8("ring_cells", conf.RingCells).Msg("game started")

	renderer := render.New(out)
	scanner := bufio.NewScanner(os.Stdin)
	notice := ""

	for !g.Over() {
		out.ClearScreen()
		fmt.Fprintln(out, renderer.Board(g.Board(), nil))
		if notice != "" {
			fmt.Fprintln(out, notice)
			notice = ""
		}
		fmt.Fprintf(out, "%c to move (cell label, c for center, q to quit): ", g.Turn().Rune())

		if !scanner.Scan() {
			return scanner.Err()
		}
		input := strings.TrimSpace(strings.ToLower(scanner.Text()))

		if input == "q" {
			logger.Info().Str("player", g.Turn().String()).Msg("player resigned")
			fmt.Fprintln(out, "bye")
			return nil
		}

		notice = play(g, input, logger)
	}

	// Final frame with every winning line highlighted
	out.ClearScreen()
	fmt.Fprintln(out, renderer.Board(g.Board(), g.Board().Wins()))

	if g.Draw() {
		logger.Info().Msg("game drawn")
		fmt.Fprintln(out, "draw, the board is full")
	} else {
		logger.Info().Str("winner", g.Winner().String()).Msg("game won")
		fmt.Fprintf(out, "%c wins\n", g.Winner().Rune())
	}
	return nil
}

// Apply one line of input to the game, returning a message for the
// player when the move was refused
func play(g *game.Game, input string, logger zerolog.Logger) string {
	player := g.Turn()

	var err error
	switch {
	case input == "c":
		err = g.PlayCenter()
	default:
		i, ok := parseIndex(input, g.Board().Ring.Len())
		if !ok {
			return fmt.Sprintf("don't know cell %q, pick one of the labels on the board", input)
		}
		err = g.PlayRing(i)
	}

	switch {
	case errors.Is(err, game.ErrCellOccupied):
		logger.Debug().Str("player", player.String()).Str("input", input).Msg("cell occupied")
		return "that cell is already taken"
	case err != nil:
		return err.Error()
	}

	logger.Info().Str("player", player.String()).Str("cell", input).Msg("move")
	return ""
}

// Map a single label rune onto a ring index of this board
func parseIndex(input string, cells int) (int, bool) {
	runes := []rune(input)
	if len(runes) != 1 {
		return 0, false
	}
	i, ok := render.LabelIndex(runes[0])
	if !ok || i >= cells {
		return 0, false
	}
	return i, true
}
