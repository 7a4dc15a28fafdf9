package engine

import "fmt"

// Board owns the 8x8 grid of occupants. It is mutated only through
// MovePiece and provides no legality checking of its own; callers are
// expected to validate moves before mutating.
type Board struct {
	grid Grid
}

// standardLayout is the standard chess starting position, rank 8 first.
var standardLayout = []string{
	"rnbqkbnr",
	"pppppppp",
	"........",
	"........",
	"........",
	"........",
	"PPPPPPPP",
	"RNBQKBNR",
}

// NewBoard creates a board with the standard chess starting position.
func NewBoard() *Board {
	b, err := NewBoardFromLayout(standardLayout)
	if err != nil {
		// The standard layout is a compile-time constant; this cannot fail.
		panic(err)
	}
	return b
}

// NewBoardFromLayout creates a board from eight 8-character rows, rank 8
// first. Rows use case-encoded piece letters and '.' for empty squares.
func NewBoardFromLayout(layout []string) (*Board, error) {
	if len(layout) != BoardSize {
		return nil, fmt.Errorf("layout must have %d rows, got %d", BoardSize, len(layout))
	}

	b := &Board{}
	for row, line := range layout {
		if len(line) != BoardSize {
			return nil, fmt.Errorf("layout row %d must have %d characters, got %d", row+1, BoardSize, len(line))
		}
		for col := 0; col < BoardSize; col++ {
			c := line[col]
			if c == EmptySquare {
				continue
			}
			piece, ok := PieceFromLetter(c)
			if !ok {
				return nil, fmt.Errorf("layout row %d col %d: invalid piece character %q", row+1, col+1, c)
			}
			b.grid[row][col] = piece
		}
	}
	return b, nil
}

// Grid returns a copy of the board contents for rendering and snapshots.
// Grid is an array type, so the return value shares no storage with the
// board.
func (b *Board) Grid() Grid {
	return b.grid
}

// PieceAt returns the occupant at the given grid indices, or the empty
// piece for indices off the board.
func (b *Board) PieceAt(row, col int) Piece {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return Piece{}
	}
	return b.grid[row][col]
}

// PieceAtSquare returns the occupant at an algebraic square, or the
// empty piece if the notation is malformed.
func (b *Board) PieceAtSquare(notation string) Piece {
	row, col, ok := ParseSquare(notation)
	if !ok {
		return Piece{}
	}
	return b.grid[row][col]
}

// MovePiece unconditionally moves the occupant at from onto to, clearing
// from. Any occupant at the destination is overwritten, which is how
// captures happen; no record of the captured piece is kept. This is the
// board's only mutator.
func (b *Board) MovePiece(from, to string) {
	fromRow, fromCol, okFrom := ParseSquare(from)
	toRow, toCol, okTo := ParseSquare(to)
	if !okFrom || !okTo {
		return
	}
	b.grid[toRow][toCol] = b.grid[fromRow][fromCol]
	b.grid[fromRow][fromCol] = Piece{}
}

// KingExists reports whether the king of the given color is anywhere on
// the board. A full scan is fine at this scale; it runs once per move.
func (b *Board) KingExists(color Color) bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.grid[row][col]
			if p.Type == King && p.Color == color {
				return true
			}
		}
	}
	return false
}

// Layout renders the board back into eight case-encoded rows, rank 8
// first. Used by persistence and the config validator.
func (b *Board) Layout() []string {
	rows := make([]string, BoardSize)
	for row := 0; row < BoardSize; row++ {
		line := make([]byte, BoardSize)
		for col := 0; col < BoardSize; col++ {
			line[col] = b.grid[row][col].Letter()
		}
		rows[row] = string(line)
	}
	return rows
}
