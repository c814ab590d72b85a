// Package engine glues position, search and opening book together behind
// the small API a front-end needs: load a position, replay or apply
// moves, and ask for the best move.
package engine

import (
	"context"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"

	"github.com/halvardh/corvid/internal/board"
	"github.com/halvardh/corvid/internal/board/fen"
	"github.com/halvardh/corvid/internal/book"
	"github.com/halvardh/corvid/internal/search"
)

var version = build.NewVersion(0, 1, 0)

// SearchDepth is the default number of plies the root considers; root
// workers recurse to depth-1.
const SearchDepth = 5

// Version reports the engine's name and version, in the teacher's
// name-then-version convention.
func Version() string {
	return "corvid " + version.String()
}

// Options are engine creation options.
type Options struct {
	// DepthLimit, if set, overrides SearchDepth for this engine.
	DepthLimit lang.Optional[int]
}

// Option is an engine creation option.
type Option func(*Options)

// WithDepthLimit overrides the default search depth.
func WithDepthLimit(depth int) Option {
	return func(o *Options) {
		o.DepthLimit = lang.Some(depth)
	}
}

// Engine wraps a single in-flight Position plus the immutable opening book
// consulted ahead of search. It is not safe for concurrent use by multiple
// goroutines against the same Engine value -- mirroring Position itself,
// which DoMove mutates in place.
type Engine struct {
	pos   *board.Position
	book  *book.Book
	depth int
}

// New constructs an Engine from a starting FEN string and an opening-book
// file path. Both are startup-time configuration: a malformed FEN or an
// unreadable/malformed book file is fatal, logged via logw.Exitf, matching
// the teacher's treatment of engine construction failures.
func New(ctx context.Context, startFEN, bookPath string, opts ...Option) *Engine {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	depth := SearchDepth
	if v, ok := o.DepthLimit.V(); ok {
		depth = v
	}

	pos, err := fen.Decode(startFEN)
	if err != nil {
		logw.Exitf(ctx, "Invalid starting position %q: %v", startFEN, err)
	}

	b := book.Load(ctx, bookPath)

	logw.Infof(ctx, "Initialized %v: depth=%v, start=%v", Version(), depth, startFEN)
	return &Engine{pos: pos, book: b, depth: depth}
}

// Position returns the current position.
func (e *Engine) Position() *board.Position {
	return e.pos
}

// ToFEN renders the current position as a FEN string.
func (e *Engine) ToFEN() string {
	return fen.Encode(e.pos)
}

// ApplyMoves replays a sequence of moves against the current position, in
// order, via DoMove.
func (e *Engine) ApplyMoves(ctx context.Context, moves ...board.Move) {
	logw.Infof(ctx, "Applying %v move(s) to %v", len(moves), e.pos)
	e.pos.ApplyMoves(moves...)
}

// DoMove applies a single move to the current position.
func (e *Engine) DoMove(ctx context.Context, m board.Move) {
	logw.Infof(ctx, "Move %v", m)
	e.pos.DoMove(m)
}

// GetBestMove asks the opening book for a move if the position is still at
// the point the caller originally loaded it -- no move has been applied
// since load -- failing that, it dispatches one search worker per root
// move at e.depth plies and returns the winner.
func (e *Engine) GetBestMove(ctx context.Context) (board.Move, error) {
	if len(e.pos.History) == 0 {
		if m, ok := e.book.Find(e.pos.History); ok {
			logw.Debugf(ctx, "Book move for %v: %v", e.pos, m)
			return m, nil
		}
	}

	m, score, err := search.GetBestMove(ctx, e.pos, e.depth)
	if err != nil {
		return board.Move{}, err
	}
	logw.Debugf(ctx, "Searched %v at depth=%v: %v (score=%v)", e.pos, e.depth, m, score)
	return m, nil
}
