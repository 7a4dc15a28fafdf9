package engine

import (
	"fmt"
	"strings"
)

// DefaultHillSquares are the four central squares that end the game when
// a king reaches one of them: d4, e4, d5, e5.
var DefaultHillSquares = []string{"d4", "e4", "d5", "e5"}

// GameConfig describes a game variant loaded from JSON: the starting
// position, the hill squares, and the messages shown by the UIs. The
// default configuration reproduces the classic King of the Hill game on
// the standard chess starting position.
type GameConfig struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Layout      []string `json:"layout"`
	HillSquares []string `json:"hill_squares"`
	Messages    struct {
		Welcome      string `json:"welcome"`
		WhiteWins    string `json:"white_wins"`
		BlackWins    string `json:"black_wins"`
		KingOnHill   string `json:"king_on_hill"`
		KingCaptured string `json:"king_captured"`
		InvalidMove  string `json:"invalid_move"`
	} `json:"messages"`
}

// ValidateGameConfig validates a game configuration for correctness and
// playability.
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is nil")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	// Validate layout dimensions and characters.
	if len(config.Layout) != BoardSize {
		return fmt.Errorf("config validation: layout must have %d rows, got %d", BoardSize, len(config.Layout))
	}
	kings := map[Color]int{}
	for i, row := range config.Layout {
		if len(row) != BoardSize {
			return fmt.Errorf("config validation: layout row %d must have %d characters, got %d", i+1, BoardSize, len(row))
		}
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c == EmptySquare {
				continue
			}
			piece, ok := PieceFromLetter(c)
			if !ok {
				return fmt.Errorf("config validation: invalid character %q at row %d, col %d", c, i+1, j+1)
			}
			if piece.Type == King {
				kings[piece.Color]++
			}
		}
	}
	if kings[White] != 1 {
		return fmt.Errorf("config validation: layout must contain exactly one white king, got %d", kings[White])
	}
	if kings[Black] != 1 {
		return fmt.Errorf("config validation: layout must contain exactly one black king, got %d", kings[Black])
	}

	// Validate hill squares.
	if len(config.HillSquares) == 0 {
		return fmt.Errorf("config validation: at least one hill square is required")
	}
	seen := map[string]bool{}
	for _, sq := range config.HillSquares {
		if !WithinBounds(sq) {
			return fmt.Errorf("config validation: invalid hill square %q", sq)
		}
		if seen[sq] {
			return fmt.Errorf("config validation: duplicate hill square %q", sq)
		}
		seen[sq] = true
	}

	// Validate messages.
	if config.Messages.Welcome == "" {
		return fmt.Errorf("config validation: messages.welcome is required")
	}
	if config.Messages.WhiteWins == "" {
		return fmt.Errorf("config validation: messages.white_wins is required")
	}
	if config.Messages.BlackWins == "" {
		return fmt.Errorf("config validation: messages.black_wins is required")
	}

	return nil
}

// DefaultConfig returns the built-in King of the Hill configuration:
// standard starting position, hill on the four center squares.
func DefaultConfig() *GameConfig {
	config := &GameConfig{
		Name:        "King of the Hill",
		Description: "Standard chess movement. Win by capturing the enemy king or walking your own king onto d4, e4, d5 or e5.",
		Layout:      append([]string{}, standardLayout...),
		HillSquares: append([]string{}, DefaultHillSquares...),
	}
	config.Messages.Welcome = "Welcome to King of the Hill Chess!"
	config.Messages.WhiteWins = "WHITE WINS! The game is over."
	config.Messages.BlackWins = "BLACK WINS! The game is over."
	config.Messages.KingOnHill = "The %s king has reached the hill!"
	config.Messages.KingCaptured = "The %s king has been captured!"
	config.Messages.InvalidMove = "Invalid move! Please enter move (e.g., 'e2 e4')."
	return config
}

// hillSet builds the lookup set the controller consults after each king
// move.
func hillSet(squares []string) map[string]bool {
	set := make(map[string]bool, len(squares))
	for _, sq := range squares {
		set[strings.ToLower(sq)] = true
	}
	return set
}
