package engine

import (
	"fmt"
	"testing"
)

func TestWithinBounds_AllValidSquares(t *testing.T) {
	count := 0
	for file := 'a'; file <= 'h'; file++ {
		for rank := '1'; rank <= '8'; rank++ {
			square := fmt.Sprintf("%c%c", file, rank)
			if !WithinBounds(square) {
				t.Errorf("Expected %q to be within bounds", square)
			}
			count++
		}
	}
	if count != 64 {
		t.Fatalf("Expected 64 squares checked, got %d", count)
	}
}

func TestWithinBounds_Invalid(t *testing.T) {
	invalid := []string{
		"", "e", "e22", "i1", "a0", "a9", "h9", "11", "ee",
		"E2", " e2", "e2 ", "z5", "d-", "4d",
	}
	for _, square := range invalid {
		if WithinBounds(square) {
			t.Errorf("Expected %q to be out of bounds", square)
		}
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		notation string
		row, col int
	}{
		{"a8", 0, 0},
		{"h8", 0, 7},
		{"a1", 7, 0},
		{"h1", 7, 7},
		{"e2", 6, 4},
		{"d4", 4, 3},
		{"e5", 3, 4},
	}

	for _, tt := range tests {
		row, col, ok := ParseSquare(tt.notation)
		if !ok {
			t.Errorf("ParseSquare(%q): expected ok", tt.notation)
			continue
		}
		if row != tt.row || col != tt.col {
			t.Errorf("ParseSquare(%q) = (%d,%d), want (%d,%d)", tt.notation, row, col, tt.row, tt.col)
		}
	}

	if _, _, ok := ParseSquare("i9"); ok {
		t.Error("Expected ParseSquare to fail for i9")
	}
}

func TestSquareName_RoundTrip(t *testing.T) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			name := SquareName(row, col)
			gotRow, gotCol, ok := ParseSquare(name)
			if !ok || gotRow != row || gotCol != col {
				t.Errorf("Round trip failed for (%d,%d): got %q -> (%d,%d,%v)", row, col, name, gotRow, gotCol, ok)
			}
		}
	}

	if name := SquareName(-1, 0); name != "" {
		t.Errorf("Expected empty name for off-board indices, got %q", name)
	}
	if name := SquareName(0, 8); name != "" {
		t.Errorf("Expected empty name for off-board indices, got %q", name)
	}
}

func TestPieceFromLetter(t *testing.T) {
	tests := []struct {
		letter byte
		piece  Piece
	}{
		{'K', Piece{Type: King, Color: White}},
		{'k', Piece{Type: King, Color: Black}},
		{'P', Piece{Type: Pawn, Color: White}},
		{'p', Piece{Type: Pawn, Color: Black}},
		{'N', Piece{Type: Knight, Color: White}},
		{'q', Piece{Type: Queen, Color: Black}},
		{'R', Piece{Type: Rook, Color: White}},
		{'b', Piece{Type: Bishop, Color: Black}},
	}

	for _, tt := range tests {
		piece, ok := PieceFromLetter(tt.letter)
		if !ok {
			t.Errorf("PieceFromLetter(%q): expected ok", tt.letter)
			continue
		}
		if piece != tt.piece {
			t.Errorf("PieceFromLetter(%q) = %+v, want %+v", tt.letter, piece, tt.piece)
		}
		if piece.Letter() != tt.letter {
			t.Errorf("Letter round trip for %q: got %q", tt.letter, piece.Letter())
		}
	}

	for _, c := range []byte{'x', '.', ' ', '1', 'Z'} {
		if _, ok := PieceFromLetter(c); ok {
			t.Errorf("Expected PieceFromLetter(%q) to fail", c)
		}
	}
}

func TestPiece_IsEmpty(t *testing.T) {
	if !(Piece{}).IsEmpty() {
		t.Error("Expected zero piece to be empty")
	}
	if (Piece{Type: Pawn, Color: White}).IsEmpty() {
		t.Error("Expected pawn not to be empty")
	}
	if (Piece{}).Letter() != EmptySquare {
		t.Error("Expected empty piece to render as the empty square character")
	}
}

func TestColor_Opponent(t *testing.T) {
	if White.Opponent() != Black {
		t.Error("Expected white's opponent to be black")
	}
	if Black.Opponent() != White {
		t.Error("Expected black's opponent to be white")
	}
}

func TestGameStatus_Terminal(t *testing.T) {
	if InProgress.Terminal() {
		t.Error("Expected in_progress not to be terminal")
	}
	if !WhiteWon.Terminal() || !BlackWon.Terminal() {
		t.Error("Expected won statuses to be terminal")
	}
}
