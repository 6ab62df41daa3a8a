package engine

import "github.com/benbeisheim/trichess-backend/internal/model"

// UpperBound is the bound of the root call; no score reaches it, so the
// root never prunes.
const UpperBound = 1_000_000_000

type Result struct {
	Scores Scores
	Move   *model.Move
	// Nodes counts the positions visited; only set on the result of Search.
	Nodes int
}

type searcher struct {
	annotate bool
	nodes    int
}

// Search runs the bound-pruned search for player to move on b. lastMove
// is the move that produced b and only matters at a leaf. Every
// speculative move is played on a clone, so b is left untouched.
func Search(b *model.Board, lastMove *model.Move, player model.Color, bound, depth int, opts Options) Result {
	s := &searcher{annotate: !opts.SkipCheckAnnotation}
	r := s.search(b, lastMove, player, bound, depth)
	r.Nodes = s.nodes
	return r
}

func (s *searcher) search(b *model.Board, lastMove *model.Move, player model.Color, bound, depth int) Result {
	s.nodes++
	if depth == 0 {
		return Result{Scores: Evaluate(b, lastMove)}
	}
	moves := s.moves(b, player)
	if len(moves) == 0 {
		return Result{Scores: Evaluate(b, lastMove)}
	}

	best := s.child(b, moves[0], player, bound, depth)
	for _, m := range moves[1:] {
		// Only the acting player's score is bounded; this is not a
		// two-sided alpha-beta window.
		if best.Scores[player] >= bound {
			return best
		}
		r := s.child(b, m, player, UpperBound-best.Scores[player], depth)
		if r.Scores[player] > best.Scores[player] {
			best = r
		}
	}
	return best
}

// child plays m on a clone and searches the reply of the next colour.
// The result carries m as its move whatever was chosen further down.
func (s *searcher) child(b *model.Board, m model.Move, player model.Color, bound, depth int) Result {
	next := b.Clone()
	next.Apply(m)
	r := s.search(next, &m, player.Next(), bound, depth-1)
	r.Move = &m
	return r
}

func (s *searcher) moves(b *model.Board, player model.Color) []model.Move {
	moves := model.LegalMoves(b, player)
	if s.annotate {
		model.MarkMovesLeadingToCheck(b, player, moves)
	}
	return moves
}
