// Command kinghill-cli plays King of the Hill chess in the terminal.
//
// The board is rendered with Unicode chess pieces and moves are entered
// as two squares, e.g. "e2 e4". Type "help" at the prompt for the full
// command list.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/hillchess/kinghill/game/config"
	"github.com/hillchess/kinghill/game/engine"
)

var pieceGlyphs = map[byte]rune{
	'K': '♔', 'Q': '♕', 'R': '♖', 'B': '♗', 'N': '♘', 'P': '♙',
	'k': '♚', 'q': '♛', 'r': '♜', 'b': '♝', 'n': '♞', 'p': '♟',
}

func main() {
	cmd := &cli.Command{
		Name:  "kinghill-cli",
		Usage: "Play King of the Hill chess in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Variant config to play (default: standard King of the Hill)",
				Value: "default",
			},
			&cli.StringFlag{
				Name:  "config-dir",
				Usage: "Directory holding variant config files",
				Value: "./configs",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			manager, err := config.NewManager(cmd.String("config-dir"))
			if err != nil {
				return fmt.Errorf("failed to initialize config manager: %w", err)
			}

			gameConfig, err := manager.LoadConfig(cmd.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load config %q: %w", cmd.String("config"), err)
			}

			eng, err := engine.NewEngine(gameConfig)
			if err != nil {
				return fmt.Errorf("failed to start game: %w", err)
			}

			return runREPL(eng, gameConfig)
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func runREPL(eng *engine.GameEngine, gameConfig *engine.GameConfig) error {
	fmt.Println(gameConfig.Messages.Welcome)
	fmt.Println(`Enter moves as two squares, e.g. "e2 e4". Type "help" for commands.`)
	printBoard(eng)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("%s> ", eng.Turn())
		if !scanner.Scan() {
			break
		}

		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "quit", "exit":
			return scanner.Err()

		case "help":
			printHelp()

		case "board":
			printBoard(eng)

		case "reset":
			eng.Reset()
			fmt.Println("Game reset.")
			printBoard(eng)

		case "moves":
			if len(fields) != 2 {
				fmt.Println(`Usage: moves <square>, e.g. "moves e2"`)
				continue
			}
			moves := eng.LegalMoves(fields[1])
			if len(moves) == 0 {
				fmt.Printf("No moves from %s\n", fields[1])
			} else {
				fmt.Printf("Moves from %s: %s\n", fields[1], strings.Join(moves, " "))
			}

		default:
			if len(fields) != 2 {
				fmt.Println(`Enter a move as two squares, e.g. "e2 e4". Type "help" for commands.`)
				continue
			}
			playMove(eng, gameConfig, fields[0], fields[1])
		}
	}
	return scanner.Err()
}

func playMove(eng *engine.GameEngine, gameConfig *engine.GameConfig, from, to string) {
	if !eng.MakeMove(from, to) {
		fmt.Println(gameConfig.Messages.InvalidMove)
		return
	}

	printBoard(eng)

	switch eng.Status() {
	case engine.WhiteWon:
		fmt.Println(gameConfig.Messages.WhiteWins)
	case engine.BlackWon:
		fmt.Println(gameConfig.Messages.BlackWins)
	}
}

func printBoard(eng *engine.GameEngine) {
	grid := eng.Grid()

	fmt.Println()
	for row := 0; row < engine.BoardSize; row++ {
		fmt.Printf("%d  ", engine.BoardSize-row)
		for col := 0; col < engine.BoardSize; col++ {
			fmt.Printf("%c ", glyph(grid[row][col]))
		}
		fmt.Println()
	}
	fmt.Println("\n   a b c d e f g h")
	fmt.Println()
}

func glyph(p engine.Piece) rune {
	if g, ok := pieceGlyphs[p.Letter()]; ok {
		return g
	}
	return '·'
}

func printHelp() {
	fmt.Println(`Commands:
  <from> <to>   play a move, e.g. "e2 e4"
  moves <sq>    list destinations for the piece on a square
  board         redraw the board
  reset         restart the game
  quit          leave the game`)
}
