package engine

// Color identifies which side a piece belongs to
type Color string

const (
	White Color = "white"
	Black Color = "black"
)

// Opponent returns the other side
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// PieceType represents the six chess piece types
type PieceType string

const (
	Pawn   PieceType = "pawn"
	Knight PieceType = "knight"
	Bishop PieceType = "bishop"
	Rook   PieceType = "rook"
	Queen  PieceType = "queen"
	King   PieceType = "king"
)

// GameStatus represents the outcome state of a game
type GameStatus string

const (
	InProgress GameStatus = "in_progress"
	WhiteWon   GameStatus = "white_won"
	BlackWon   GameStatus = "black_won"
)

// Terminal reports whether the game has ended. A terminal status never
// transitions back to InProgress.
func (s GameStatus) Terminal() bool {
	return s != InProgress
}

// wonBy maps a color to its winning status
func wonBy(c Color) GameStatus {
	if c == White {
		return WhiteWon
	}
	return BlackWon
}

const (
	// BoardSize is the number of ranks and files on the board
	BoardSize = 8

	// EmptySquare is the layout character for a square with no piece
	EmptySquare = '.'
)

// Piece is the occupant of a board square: a (type, color) pair, or the
// zero value for an empty square. Exactly one of the 13 occupant states
// (6 types x 2 colors, plus empty) applies to every square.
type Piece struct {
	Type  PieceType `json:"type,omitempty"`
	Color Color     `json:"color,omitempty"`
}

// IsEmpty reports whether the square holds no piece
func (p Piece) IsEmpty() bool {
	return p.Type == ""
}

// pieceLetters maps layout characters to piece types. Uppercase encodes
// white, lowercase black; the case encoding exists only at the layout
// boundary and never leaks into move logic.
var pieceLetters = map[byte]PieceType{
	'p': Pawn,
	'n': Knight,
	'b': Bishop,
	'r': Rook,
	'q': Queen,
	'k': King,
}

// PieceFromLetter decodes a layout character into a Piece. It returns
// false for any character that is not a valid piece letter.
func PieceFromLetter(c byte) (Piece, bool) {
	lower := c
	color := Black
	if c >= 'A' && c <= 'Z' {
		lower = c + ('a' - 'A')
		color = White
	}
	t, ok := pieceLetters[lower]
	if !ok {
		return Piece{}, false
	}
	return Piece{Type: t, Color: color}, true
}

// Letter encodes the piece as a single layout character: uppercase for
// white, lowercase for black, EmptySquare for an empty square.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return EmptySquare
	}
	var c byte
	switch p.Type {
	case Pawn:
		c = 'p'
	case Knight:
		c = 'n'
	case Bishop:
		c = 'b'
	case Rook:
		c = 'r'
	case Queen:
		c = 'q'
	case King:
		c = 'k'
	default:
		return EmptySquare
	}
	if p.Color == White {
		c -= 'a' - 'A'
	}
	return c
}

// Grid is the 8x8 board contents, row-major from rank 8 (index 0) down
// to rank 1 (index 7), file a (index 0) to file h (index 7).
type Grid [BoardSize][BoardSize]Piece

// WithinBounds reports whether notation names a real square: exactly two
// characters, a file letter a-h followed by a rank digit 1-8.
func WithinBounds(notation string) bool {
	if len(notation) != 2 {
		return false
	}
	return notation[0] >= 'a' && notation[0] <= 'h' && notation[1] >= '1' && notation[1] <= '8'
}

// ParseSquare converts algebraic notation to grid indices. Row counts
// down from rank 8, so "a8" is (0,0) and "h1" is (7,7). It returns
// ok=false for malformed or out-of-range notation.
func ParseSquare(notation string) (row, col int, ok bool) {
	if !WithinBounds(notation) {
		return 0, 0, false
	}
	row = BoardSize - int(notation[1]-'0')
	col = int(notation[0] - 'a')
	return row, col, true
}

// SquareName converts grid indices back to algebraic notation. It
// returns the empty string for indices off the board.
func SquareName(row, col int) string {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return ""
	}
	return string([]byte{byte('a' + col), byte('0' + BoardSize - row)})
}

// GameState is a serializable snapshot of a game, used by the service
// layer, persistence, and transports. The engine itself remains the
// authoritative owner of the live board.
type GameState struct {
	Grid       Grid       `json:"grid"`
	Turn       Color      `json:"turn"`
	Status     GameStatus `json:"status"`
	MovesMade  int        `json:"moves_made"`
	Message    string     `json:"message,omitempty"`
	ConfigName string     `json:"config_name,omitempty"`
}
