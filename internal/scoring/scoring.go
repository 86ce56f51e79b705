// Package scoring computes end-of-game scores.
//
// Each occupied cell is scored by walking from it over strictly increasing
// card numbers through toroidal neighbors. The walk forks wherever several
// neighbors qualify; a branch is credited with the deepest step at which it
// met a card of the origin's suit. A cell with nothing to credit scores 1.
package scoring

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/arcanaland/bark/internal/board"
)

// Baseline is the score of a cell with no suit-matching increasing chain
const Baseline = 1

// Result holds the score of every occupied cell of a board
type Result struct {
	width  int
	height int
	scores []int // 0 marks an empty cell
	p1     int
	p2     int
}

// Score scores every occupied cell of b. Rows are scored concurrently; b must
// not be mutated while Score runs.
func Score(b *board.Board) Result {
	res := Result{
		width:  b.Width(),
		height: b.Height(),
		scores: make([]int, b.Width()*b.Height()),
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for row := 1; row <= b.Height(); row++ {
		g.Go(func() error {
			for col := 1; col <= b.Width(); col++ {
				pos := board.Pos{Col: col, Row: row}
				if _, ok := b.At(pos); ok {
					res.scores[res.index(pos)] = CellScore(b, pos)
				}
			}
			return nil
		})
	}
	// Rows never fail
	g.Wait()

	for _, pos := range b.Positions() {
		c, ok := b.At(pos)
		if !ok {
			continue
		}
		s := res.scores[res.index(pos)]
		if c.Player() == 1 {
			res.p1 = max(res.p1, s)
		} else {
			res.p2 = max(res.p2, s)
		}
	}
	return res
}

// PlayerMax returns the best cell score of each player on b
func PlayerMax(b *board.Board) (p1, p2 int) {
	return Score(b).PlayerMax()
}

// CellScore returns the score of the card at pos, or 0 if pos is empty
func CellScore(b *board.Board, pos board.Pos) int {
	origin, ok := b.At(pos)
	if !ok {
		return 0
	}

	score := Baseline
	for _, dir := range board.Directions {
		next := b.Neighbor(pos, dir)
		c, ok := b.At(next)
		if !ok || c.Number <= origin.Number {
			continue
		}
		score = max(score, walk(b, origin.Suit, next, dir, 2, Baseline))
	}
	return score
}

// walk explores forward from pos, reached by travelling in direction came at
// the given step. best is the deepest suit-matching step seen on the path.
func walk(b *board.Board, suit byte, pos board.Pos, came board.Direction, step, best int) int {
	here, _ := b.At(pos)

	var forward []forwardStep
	for _, dir := range board.Directions {
		if dir == came.Opposite() {
			continue
		}
		next := b.Neighbor(pos, dir)
		if c, ok := b.At(next); ok && c.Number > here.Number {
			forward = append(forward, forwardStep{pos: next, dir: dir})
		}
	}

	if len(forward) == 0 {
		if here.Suit == suit {
			return step
		}
		return best
	}

	if here.Suit == suit {
		best = max(best, step)
	}
	result := best
	for _, f := range forward {
		result = max(result, walk(b, suit, f.pos, f.dir, step+1, best))
	}
	return result
}

type forwardStep struct {
	pos board.Pos
	dir board.Direction
}

func (r Result) index(pos board.Pos) int {
	return (pos.Row-1)*r.width + (pos.Col - 1)
}

// At returns the score at pos and whether pos holds a card
func (r Result) At(pos board.Pos) (int, bool) {
	if pos.Col < 1 || pos.Col > r.width || pos.Row < 1 || pos.Row > r.height {
		return 0, false
	}
	s := r.scores[r.index(pos)]
	return s, s > 0
}

// PlayerMax returns the best score among odd-suited (player 1) and
// even-suited (player 2) cards. A player with no cards on the board gets 0.
func (r Result) PlayerMax() (p1, p2 int) {
	return r.p1, r.p2
}

// Max returns the highest cell score on the board
func (r Result) Max() int {
	return max(r.p1, r.p2)
}
