package engine

// IsLegalMove reports whether moving the piece at from to to is legal
// under the simplified ruleset: standard piece movement with no
// castling, en passant, promotion, or check detection. It never mutates
// the board.
//
// Legality here covers only the piece itself: bounds, the no-self-capture
// rule, the per-type movement pattern, and path clearance for sliding
// pieces. Turn order and game status are the controller's concern.
func (b *Board) IsLegalMove(from, to string) bool {
	fromRow, fromCol, ok := ParseSquare(from)
	if !ok {
		return false
	}
	toRow, toCol, ok := ParseSquare(to)
	if !ok {
		return false
	}

	piece := b.grid[fromRow][fromCol]
	if piece.IsEmpty() {
		return false
	}

	// A piece never captures its own color.
	target := b.grid[toRow][toCol]
	if !target.IsEmpty() && target.Color == piece.Color {
		return false
	}

	deltaRow := toRow - fromRow
	deltaCol := toCol - fromCol

	switch piece.Type {
	case Pawn:
		return b.isLegalPawnMove(piece, fromRow, toRow, toCol, deltaRow, deltaCol, target)
	case Rook:
		if deltaRow != 0 && deltaCol != 0 {
			return false
		}
		return b.pathClear(fromRow, fromCol, toRow, toCol)
	case Bishop:
		if abs(deltaRow) != abs(deltaCol) {
			return false
		}
		return b.pathClear(fromRow, fromCol, toRow, toCol)
	case Queen:
		if deltaRow != 0 && deltaCol != 0 && abs(deltaRow) != abs(deltaCol) {
			return false
		}
		return b.pathClear(fromRow, fromCol, toRow, toCol)
	case Knight:
		return (abs(deltaRow) == 2 && abs(deltaCol) == 1) || (abs(deltaRow) == 1 && abs(deltaCol) == 2)
	case King:
		return max(abs(deltaRow), abs(deltaCol)) == 1
	}
	return false
}

// isLegalPawnMove checks the three pawn patterns: single step forward to
// an empty square, double step forward from the starting rank with both
// squares empty, and a diagonal step capturing an opposing piece. Pawns
// never capture straight ahead and never move diagonally onto an empty
// square.
func (b *Board) isLegalPawnMove(piece Piece, fromRow, toRow, toCol, deltaRow, deltaCol int, target Piece) bool {
	// "Forward" in row-index space: white pawns move toward row 0,
	// black pawns toward row 7.
	forward := -1
	startRow := BoardSize - 2
	if piece.Color == Black {
		forward = 1
		startRow = 1
	}

	if deltaCol == 0 && deltaRow == forward {
		return target.IsEmpty()
	}
	if deltaCol == 0 && deltaRow == 2*forward && fromRow == startRow {
		between := b.grid[fromRow+forward][toCol]
		return between.IsEmpty() && target.IsEmpty()
	}
	if abs(deltaCol) == 1 && deltaRow == forward {
		return !target.IsEmpty() && target.Color != piece.Color
	}
	return false
}

// pathClear walks the straight line between two squares, excluding both
// endpoints, and reports whether every intermediate square is empty.
// Only sliding pieces (rook, bishop, queen) consult it; the caller has
// already established that the squares are on a shared rank, file, or
// diagonal.
func (b *Board) pathClear(fromRow, fromCol, toRow, toCol int) bool {
	stepRow := sign(toRow - fromRow)
	stepCol := sign(toCol - fromCol)

	row, col := fromRow+stepRow, fromCol+stepCol
	for row != toRow || col != toCol {
		if !b.grid[row][col].IsEmpty() {
			return false
		}
		row += stepRow
		col += stepCol
	}
	return true
}

// LegalMoves returns every destination square to which the piece at the
// given square may legally move. It scans all 64 squares and runs the
// single-move check on each; at this scale the brute-force scan is
// simpler than generating moves per piece type. An empty or malformed
// square yields an empty result.
func (b *Board) LegalMoves(from string) []string {
	moves := []string{}
	if b.PieceAtSquare(from).IsEmpty() {
		return moves
	}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			to := SquareName(row, col)
			if b.IsLegalMove(from, to) {
				moves = append(moves, to)
			}
		}
	}
	return moves
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	if n > 0 {
		return 1
	}
	if n < 0 {
		return -1
	}
	return 0
}
