package engine

import (
	"time"

	"github.com/benbeisheim/trichess-backend/internal/model"
	"github.com/gofiber/fiber/v2/log"
)

const DefaultDepth = 2

type Options struct {
	// Depth is the number of plies searched; values below 1 mean DefaultDepth.
	Depth int
	// SkipCheckAnnotation turns off the LeadsToCheck pass, and with it
	// the CheckBonus at leaves.
	SkipCheckAnnotation bool
}

// Engine selects moves for non-human colours. It keeps no state between
// calls and may be shared by many games.
type Engine struct {
	opts Options
}

func NewEngine(opts Options) *Engine {
	if opts.Depth < 1 {
		opts.Depth = DefaultDepth
	}
	return &Engine{opts: opts}
}

func (e *Engine) Depth() int {
	return e.opts.Depth
}

// SelectMove returns the move the search prefers for c, or false when c
// has no legal move. Equal positions always yield the same move.
func (e *Engine) SelectMove(b *model.Board, c model.Color) (model.Move, bool) {
	start := time.Now()
	r := Search(b, nil, c, UpperBound, e.opts.Depth, e.opts)
	if r.Move == nil {
		return model.Move{}, false
	}
	log.Debugf("engine: %s plays %s, score %d, nodes %d, time %v",
		c, r.Move, r.Scores[c], r.Nodes, time.Since(start))
	return *r.Move, true
}
