package notation

import (
	"fmt"
	"strings"

	"github.com/herohde/rulesengine/pkg/board"
	"github.com/herohde/rulesengine/pkg/movegen"
	"github.com/herohde/rulesengine/pkg/rules"
)

var kindLetters = map[board.Kind]byte{
	board.KindKnight: 'N',
	board.KindBishop: 'B',
	board.KindRook:   'R',
	board.KindQueen:  'Q',
	board.KindKing:   'K',
}

var lettersToKind = map[byte]board.Kind{
	'N': board.KindKnight,
	'B': board.KindBishop,
	'R': board.KindRook,
	'Q': board.KindQueen,
	'K': board.KindKing,
}

// SAN renders m, played from pos, in Standard Algebraic Notation, including
// the "+" or "#" suffix for check or mate.
func SAN(pos *board.Position, m board.Move) string {
	var sb strings.Builder

	switch m.Special() {
	case board.SpecialWKCastle, board.SpecialBKCastle:
		sb.WriteString("O-O")
	case board.SpecialWQCastle, board.SpecialBQCastle:
		sb.WriteString("O-O-O")
	default:
		writeNonCastleSAN(&sb, pos, m)
	}

	sb.WriteString(checkSuffix(pos, m))
	return sb.String()
}

func writeNonCastleSAN(sb *strings.Builder, pos *board.Position, m board.Move) {
	from, to := m.From(), m.To()
	mover := pos.At(from)
	kind := mover.Kind()
	isCapture := m.Capture() != board.Empty || m.Special() == board.SpecialWEnPassant || m.Special() == board.SpecialBEnPassant

	if kind == board.KindPawn {
		if isCapture {
			sb.WriteString(from.File().String())
			sb.WriteByte('x')
		}
		sb.WriteString(to.String())
		if letter, ok := kindLetters[m.Special().PromotionKind()]; ok {
			sb.WriteByte('=')
			sb.WriteByte(letter)
		}
		return
	}

	sb.WriteByte(kindLetters[kind])
	sb.WriteString(disambiguate(pos, m, kind))
	if isCapture {
		sb.WriteByte('x')
	}
	sb.WriteString(to.String())
}

// disambiguate returns the minimal file, rank, or file+rank prefix needed to
// distinguish m from other legal moves of the same kind landing on the same
// square, empty if no other such move exists.
func disambiguate(pos *board.Position, m board.Move, kind board.Kind) string {
	from, to := m.From(), m.To()

	sameFile, sameRank, other := false, false, false
	for _, cand := range rules.GenLegalMoveList(pos) {
		if cand == m || cand.To() != to {
			continue
		}
		if pos.At(cand.From()).Kind() != kind {
			continue
		}
		other = true
		if cand.From().File() == from.File() {
			sameFile = true
		}
		if cand.From().Rank() == from.Rank() {
			sameRank = true
		}
	}

	switch {
	case !other:
		return ""
	case !sameFile:
		return from.File().String()
	case !sameRank:
		return from.Rank().String()
	default:
		return from.String()
	}
}

// checkSuffix plays m, inspects the resulting position, and restores pos.
func checkSuffix(pos *board.Position, m board.Move) string {
	snapshot := *pos
	pos.PushMove(m)
	terminal, err := rules.Evaluate(pos)
	inCheck := err == nil && movegen.AttackedPiece(pos, pos.KingSquare(pos.SideToMove()))
	*pos = snapshot

	if err != nil {
		return ""
	}
	switch terminal {
	case rules.WCheckmate, rules.BCheckmate:
		return "#"
	}
	if inCheck {
		return "+"
	}
	return ""
}

// ParseSAN resolves a SAN string against pos's legal move list. It accepts
// the lenient forms real game scores use: an optional trailing "+" or "#",
// and an "x" that may be present or absent regardless of whether the move is
// actually a capture.
func ParseSAN(pos *board.Position, text string) (board.Move, error) {
	s := strings.TrimSpace(text)
	s = strings.TrimSuffix(s, "#")
	s = strings.TrimSuffix(s, "+")

	if s == "O-O" || s == "0-0" {
		return findCastle(pos, true)
	}
	if s == "O-O-O" || s == "0-0-0" {
		return findCastle(pos, false)
	}

	var wantPromotion board.Kind
	if idx := strings.IndexByte(s, '='); idx >= 0 {
		if idx+1 >= len(s) {
			return 0, fmt.Errorf("%w: %q: promotion marker with no piece", ErrNoSuchMove, text)
		}
		k, ok := lettersToKind[s[idx+1]]
		if !ok {
			return 0, fmt.Errorf("%w: %q: invalid promotion piece", ErrNoSuchMove, text)
		}
		wantPromotion = k
		s = s[:idx]
	}

	s = strings.ReplaceAll(s, "x", "")

	wantKind := board.KindPawn
	if len(s) > 0 {
		if k, ok := lettersToKind[s[0]]; ok {
			wantKind = k
			s = s[1:]
		}
	}

	if len(s) < 2 {
		return 0, fmt.Errorf("%w: %q: too short", ErrNoSuchMove, text)
	}
	to, err := board.ParseSquareStr(s[len(s)-2:])
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNoSuchMove, err)
	}
	s = s[:len(s)-2]

	wantFile, haveFile := board.File(0), false
	wantRank, haveRank := board.Rank(0), false
	for _, r := range s {
		if f, ok := board.ParseFile(r); ok {
			wantFile, haveFile = f, true
		} else if rk, ok := board.ParseRank(r); ok {
			wantRank, haveRank = rk, true
		}
	}

	var matches []board.Move
	for _, m := range rules.GenLegalMoveList(pos) {
		if m.To() != to {
			continue
		}
		if pos.At(m.From()).Kind() != wantKind {
			continue
		}
		if haveFile && m.From().File() != wantFile {
			continue
		}
		if haveRank && m.From().Rank() != wantRank {
			continue
		}
		if wantKind == board.KindPawn && m.Special().IsPromotion() != (wantPromotion != board.NoKind) {
			continue
		}
		if wantPromotion != board.NoKind && m.Special().PromotionKind() != wantPromotion {
			continue
		}
		matches = append(matches, m)
	}

	switch len(matches) {
	case 0:
		return 0, fmt.Errorf("%w: %q", ErrNoSuchMove, text)
	case 1:
		return matches[0], nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrAmbiguousMove, text)
	}
}

func findCastle(pos *board.Position, kingside bool) (board.Move, error) {
	var wantSpecials []board.Special
	if kingside {
		wantSpecials = []board.Special{board.SpecialWKCastle, board.SpecialBKCastle}
	} else {
		wantSpecials = []board.Special{board.SpecialWQCastle, board.SpecialBQCastle}
	}
	for _, m := range rules.GenLegalMoveList(pos) {
		for _, sp := range wantSpecials {
			if m.Special() == sp {
				return m, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: castling not available", ErrNoSuchMove)
}
