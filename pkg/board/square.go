package board

import "fmt"

// Square represents a square on the board, ordered rank-8-first, file-a-first,
// matching FEN placement scan order exactly: A8=0, H8=7, A1=56, H1=63. The
// board array can therefore be filled in a single left-to-right, top-to-bottom
// pass over FEN text. 6 bits.
type Square uint8

const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

// NoSquare is the sentinel for "no en-passant target" and similar absent-square values.
const NoSquare Square = 0xFF

const (
	ZeroSquare Square = 0
	NumSquares Square = 64
)

// NewSquare builds a square from its file and rank.
func NewSquare(f File, r Rank) Square {
	return Square((7-int(r))*8 + int(f))
}

func ParseSquare(fr, rr rune) (Square, error) {
	f, ok := ParseFile(fr)
	if !ok {
		return 0, fmt.Errorf("invalid file: %q", fr)
	}
	r, ok := ParseRank(rr)
	if !ok {
		return 0, fmt.Errorf("invalid rank: %q", rr)
	}
	return NewSquare(f, r), nil
}

// ParseSquareStr parses a two-character algebraic square name, such as "e4".
func ParseSquareStr(s string) (Square, error) {
	runes := []rune(s)
	if len(runes) != 2 {
		return 0, fmt.Errorf("invalid square: %q", s)
	}
	return ParseSquare(runes[0], runes[1])
}

func (s Square) IsValid() bool {
	return s < NumSquares
}

func (s Square) Rank() Rank {
	return Rank(7 - int(s)/8)
}

func (s Square) File() File {
	return File(int(s) % 8)
}

func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	return fmt.Sprintf("%v%v", s.File(), s.Rank())
}

// North, South, East and West step one square in the given direction without
// bounds checking; the movegen tables are generated once and already respect
// board edges and file wraparound.
func (s Square) North() Square { return s - 8 }
func (s Square) South() Square { return s + 8 }
func (s Square) East() Square  { return s + 1 }
func (s Square) West() Square  { return s - 1 }

// Rank represents a chess board rank, Rank1=0, .. Rank8=7. 3 bits.
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

const (
	ZeroRank Rank = 0
	NumRanks Rank = 8
)

func ParseRank(r rune) (Rank, bool) {
	if r < '1' || r > '8' {
		return 0, false
	}
	return Rank(r - '1'), true
}

func (r Rank) IsValid() bool { return r <= Rank8 }

func (r Rank) String() string { return string(rune('1' + r)) }

// File represents a chess board file, FileA=0, .. FileH=7. 3 bits.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	ZeroFile File = 0
	NumFiles File = 8
)

func ParseFile(r rune) (File, bool) {
	rl := r
	if rl >= 'A' && rl <= 'H' {
		rl = rl - 'A' + 'a'
	}
	if rl < 'a' || rl > 'h' {
		return 0, false
	}
	return File(rl - 'a'), true
}

func (f File) IsValid() bool { return f <= FileH }

func (f File) String() string { return string(rune('a' + f)) }
