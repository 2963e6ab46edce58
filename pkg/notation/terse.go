package notation

import (
	"fmt"
	"strings"

	"github.com/herohde/rulesengine/pkg/board"
	"github.com/herohde/rulesengine/pkg/rules"
)

// promotionLetters maps a promotion special to its lowercase terse suffix.
var promotionLetters = map[board.Special]byte{
	board.SpecialPromoteQ: 'q',
	board.SpecialPromoteR: 'r',
	board.SpecialPromoteB: 'b',
	board.SpecialPromoteN: 'n',
}

var promotionSpecials = map[byte]board.Special{
	'q': board.SpecialPromoteQ,
	'r': board.SpecialPromoteR,
	'b': board.SpecialPromoteB,
	'n': board.SpecialPromoteN,
}

// Terse renders m as a bare four-character source+destination pair, with a
// fifth lowercase promotion letter appended if m promotes.
func Terse(m board.Move) string {
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if c, ok := promotionLetters[m.Special()]; ok {
		sb.WriteByte(c)
	}
	return sb.String()
}

// ParseTerse resolves a four- or five-character terse move string against
// pos's legal move list, the only place the capture flag and special tag
// (castle, en-passant, which-piece promotes) that make up a full board.Move
// can come from.
func ParseTerse(pos *board.Position, text string) (board.Move, error) {
	text = strings.TrimSpace(text)
	if len(text) != 4 && len(text) != 5 {
		return 0, fmt.Errorf("%w: %q: want 4 or 5 characters", ErrNoSuchMove, text)
	}

	from, err := board.ParseSquareStr(text[0:2])
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNoSuchMove, err)
	}
	to, err := board.ParseSquareStr(text[2:4])
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNoSuchMove, err)
	}

	wantPromotion := board.Special(0)
	havePromotion := false
	if len(text) == 5 {
		special, ok := promotionSpecials[strings.ToLower(text)[4]]
		if !ok {
			return 0, fmt.Errorf("%w: invalid promotion letter %q", ErrNoSuchMove, text[4:])
		}
		wantPromotion, havePromotion = special, true
	}

	for _, m := range rules.GenLegalMoveList(pos) {
		if m.From() != from || m.To() != to {
			continue
		}
		if havePromotion && m.Special() != wantPromotion {
			continue
		}
		if !havePromotion && m.Special().IsPromotion() {
			continue
		}
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrNoSuchMove, text)
}
