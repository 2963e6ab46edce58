// Package rulesengine is the facade over pkg/board, pkg/board/fen,
// pkg/movegen, pkg/rules and pkg/notation: a single Game type that owns one
// position, logs the moves played against it, and answers terminal/draw
// questions through the lower layers without exposing their plumbing.
package rulesengine

import (
	"context"
	"fmt"
	"sync"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"

	"github.com/herohde/rulesengine/pkg/board"
	"github.com/herohde/rulesengine/pkg/board/fen"
	"github.com/herohde/rulesengine/pkg/notation"
	"github.com/herohde/rulesengine/pkg/rules"
)

// Version identifies this build of the rules engine.
var Version = build.NewVersion(0, 1, 0)

// Game wraps a single chess position with the bookkeeping a caller would
// otherwise have to repeat: a history of the moves played against it, for
// reconstructing a game score, and the logging and locking around mutation.
type Game struct {
	pos   *board.Position
	moves []board.Move

	mu sync.Mutex
}

// Option configures a Game at construction time.
type Option func(*Game)

// WithFEN starts the game from the given FEN record instead of the standard
// starting position. A malformed record is silently ignored in favor of the
// standard position; use FromFEN to surface the parse error instead.
func WithFEN(position string) Option {
	return func(g *Game) {
		if pos, _, _, err := fen.Decode(position); err == nil {
			g.pos = pos
		}
	}
}

// New returns a Game at the standard starting position, or wherever opts
// places it.
func New(ctx context.Context, opts ...Option) *Game {
	g := &Game{pos: board.NewInitialPosition()}
	for _, fn := range opts {
		fn(g)
	}

	logw.Infof(ctx, "Initialized rules engine %v: %v", Version, g.Position())
	return g
}

// FromFEN returns a Game starting from position, or an error if it does not
// parse as a valid FEN record.
func FromFEN(ctx context.Context, position string, opts ...Option) (*Game, error) {
	pos, _, _, err := fen.Decode(position)
	if err != nil {
		return nil, fmt.Errorf("rulesengine: %w", err)
	}

	g := &Game{pos: pos}
	for _, fn := range opts {
		fn(g)
	}

	logw.Infof(ctx, "Initialized rules engine %v: %v", Version, g.Position())
	return g, nil
}

// Reset replaces the game's position with the one in the given FEN record.
func (g *Game) Reset(ctx context.Context, position string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	pos, _, _, err := fen.Decode(position)
	if err != nil {
		return fmt.Errorf("rulesengine: %w", err)
	}

	g.pos = pos
	g.moves = nil

	logw.Infof(ctx, "Reset: %v", g.position())
	return nil
}

// Position returns the current position as a FEN record.
func (g *Game) Position() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.position()
}

func (g *Game) position() string {
	return fen.Encode(g.pos, g.pos.HalfMoveClock(), g.pos.FullMoveNumber())
}

// Fork returns an independent copy of the game's current position, for
// callers that want to explore lines without mutating the game itself.
func (g *Game) Fork() *board.Position {
	g.mu.Lock()
	defer g.mu.Unlock()

	cp := *g.pos
	return &cp
}

// LegalMoves returns the current position's legal moves in terse notation.
func (g *Game) LegalMoves() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	list := rules.GenLegalMoveList(g.pos)
	out := make([]string, len(list))
	for i, m := range list {
		out[i] = notation.Terse(m)
	}
	return out
}

// Play parses text as either terse or SAN move notation against the current
// position, plays it, and advances the move counters. It logs the move and
// the resulting position.
func (g *Game) Play(ctx context.Context, text string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	m, err := notation.ParseTerse(g.pos, text)
	if err != nil {
		m, err = notation.ParseSAN(g.pos, text)
	}
	if err != nil {
		return fmt.Errorf("rulesengine: invalid move %q: %w", text, err)
	}

	san := notation.SAN(g.pos, m)
	g.pos.PlayMove(m)
	g.moves = append(g.moves, m)

	logw.Infof(ctx, "Play %v: %v", san, g.position())
	return nil
}

// Evaluate classifies the current position: normal, checkmate or stalemate.
func (g *Game) Evaluate() (rules.Terminal, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return rules.Evaluate(g.pos)
}

// ClaimDraw answers whether whiteAsks may claim a draw in the current
// position, and if so, under which rule.
func (g *Game) ClaimDraw(ctx context.Context, whiteAsks bool) lang.Optional[rules.DrawKind] {
	g.mu.Lock()
	defer g.mu.Unlock()

	kind, ok := rules.IsDraw(g.pos, whiteAsks)
	if !ok {
		return lang.Optional[rules.DrawKind]{}
	}

	logw.Infof(ctx, "Draw claim by white=%v granted: %v", whiteAsks, kind)
	return lang.Some(kind)
}

// Legal reports whether the current position is structurally sound chess,
// and if not, the reasons it is not.
func (g *Game) Legal() lang.Optional[rules.IllegalReason] {
	g.mu.Lock()
	defer g.mu.Unlock()

	reason, ok := rules.IsLegal(g.pos)
	if ok {
		return lang.Optional[rules.IllegalReason]{}
	}
	return lang.Some(reason)
}
