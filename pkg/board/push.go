package board

// detail words pack the per-move state that must be restored on undo: the
// en-passant target, both king squares, and the castling rights, each
// saved BEFORE a move mutates the position.
func packDetail(ep Square, wk, bk Square, c CastlingRights) uint32 {
	return uint32(ep) | uint32(wk)<<8 | uint32(bk)<<16 | uint32(c)<<24
}

func unpackDetail(w uint32) (ep, wk, bk Square, c CastlingRights) {
	ep = Square(w & 0xFF)
	wk = Square((w >> 8) & 0xFF)
	bk = Square((w >> 16) & 0xFF)
	c = CastlingRights((w >> 24) & 0xF)
	return
}

func (p *Position) pushDetail() {
	p.detailStack[p.detailIdx] = packDetail(p.enPassant, p.kings[White], p.kings[Black], p.castling)
	p.detailIdx++
}

func (p *Position) popDetail() {
	p.detailIdx--
	ep, wk, bk, c := unpackDetail(p.detailStack[p.detailIdx])
	p.enPassant = ep
	p.kings[White] = wk
	p.kings[Black] = bk
	p.castling = c
}

// PushMove applies m to the position, saving enough state on the internal
// detail stack for a matching PopMove to undo it exactly. The caller must
// only pass moves obtained from move generation or successful text
// parsing: PushMove does not validate legality and is meant to be a cheap,
// allocation-free hot path for search.
func (p *Position) PushMove(m Move) {
	p.pushDetail()

	// Any move to or from a square revokes the castling rights tied to
	// that square; physical placement of king and rook is what actually
	// gates castling, so keying revocation on the move's source and
	// destination squares is safe and needs no branching on piece type.
	// Skipped once no rights remain, since most
	// of a game is played after both sides have castled or lost them.
	if p.castling != 0 {
		p.castling = p.castling.RevokedBy(m.From()).RevokedBy(m.To())
	}
	p.enPassant = NoSquare

	switch special := m.Special(); special {
	default:
		p.put(m.To(), p.squares[m.From()])
		p.put(m.From(), Empty)

	case SpecialKingMove:
		p.put(m.To(), p.squares[m.From()])
		p.put(m.From(), Empty)
		p.setKingSquare(p.side, m.To())

	case SpecialPromoteQ, SpecialPromoteR, SpecialPromoteB, SpecialPromoteN:
		p.put(m.From(), Empty)
		p.put(m.To(), special.PromotionKind().ForColor(p.side))

	case SpecialWEnPassant:
		p.put(m.From(), Empty)
		p.put(m.To(), WP)
		p.put(m.To().South(), Empty)

	case SpecialBEnPassant:
		p.put(m.From(), Empty)
		p.put(m.To(), BP)
		p.put(m.To().North(), Empty)

	case SpecialWPawn2:
		p.put(m.From(), Empty)
		p.put(m.To(), WP)
		p.enPassant = m.To().South()

	case SpecialBPawn2:
		p.put(m.From(), Empty)
		p.put(m.To(), BP)
		p.enPassant = m.To().North()

	case SpecialWKCastle:
		p.put(E1, Empty)
		p.put(F1, WR)
		p.put(G1, WK)
		p.put(H1, Empty)
		p.setKingSquare(White, G1)

	case SpecialWQCastle:
		p.put(E1, Empty)
		p.put(D1, WR)
		p.put(C1, WK)
		p.put(A1, Empty)
		p.setKingSquare(White, C1)

	case SpecialBKCastle:
		p.put(E8, Empty)
		p.put(F8, BR)
		p.put(G8, BK)
		p.put(H8, Empty)
		p.setKingSquare(Black, G8)

	case SpecialBQCastle:
		p.put(E8, Empty)
		p.put(D8, BR)
		p.put(C8, BK)
		p.put(A8, Empty)
		p.setKingSquare(Black, C8)
	}

	p.ToggleSideToMove()
}

// PopMove reverses the move m that the immediately preceding PushMove
// applied. Calls must be strictly LIFO with PushMove.
func (p *Position) PopMove(m Move) {
	p.popDetail()
	p.ToggleSideToMove()

	switch special := m.Special(); special {
	default:
		p.put(m.From(), p.squares[m.To()])
		p.put(m.To(), m.Capture())

	case SpecialPromoteQ, SpecialPromoteR, SpecialPromoteB, SpecialPromoteN:
		p.put(m.From(), KindPawn.ForColor(p.side))
		p.put(m.To(), m.Capture())

	case SpecialWEnPassant:
		p.put(m.From(), WP)
		p.put(m.To(), Empty)
		p.put(m.To().South(), BP)

	case SpecialBEnPassant:
		p.put(m.From(), BP)
		p.put(m.To(), Empty)
		p.put(m.To().North(), WP)

	case SpecialWKCastle:
		p.put(E1, WK)
		p.put(F1, Empty)
		p.put(G1, Empty)
		p.put(H1, WR)

	case SpecialWQCastle:
		p.put(E1, WK)
		p.put(D1, Empty)
		p.put(C1, Empty)
		p.put(A1, WR)

	case SpecialBKCastle:
		p.put(E8, BK)
		p.put(F8, Empty)
		p.put(G8, Empty)
		p.put(H8, BR)

	case SpecialBQCastle:
		p.put(E8, BK)
		p.put(D8, Empty)
		p.put(C8, Empty)
		p.put(A8, BR)
	}
}

// PlayMove records m in the history ring and updates move counters before
// pushing it, for interactive game play as opposed to search. The history
// ring and move counters are not touched by PushMove/PopMove directly, so
// PlayMove has no matching "PopPlay": callers that want to take a move
// back call PopMove and adjust counters themselves, or keep their own undo
// log of PlayMove calls.
func (p *Position) PlayMove(m Move) {
	p.history[p.historyIdx] = m
	p.historyIdx++

	if p.side == Black {
		p.fullMoveNumber++
	}
	mover := p.squares[m.From()]
	if mover == WP || mover == BP || m.Capture() != Empty {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	p.PushMove(m)
}
