package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/arcanaland/bark/internal/board"
	"github.com/arcanaland/bark/internal/card"
	"github.com/arcanaland/bark/internal/deck"
	"github.com/arcanaland/bark/internal/hand"
	"github.com/arcanaland/bark/internal/rules"
	"github.com/arcanaland/bark/internal/save"
	"github.com/arcanaland/bark/internal/scoring"
)

var (
	// ErrGameOver is returned by Step once no further moves are accepted
	ErrGameOver = errors.New("game over")
	// ErrIllegalMove is returned when an agent proposes a move the rules reject
	ErrIllegalMove = errors.New("illegal move")
	// ErrBoardFull is returned when resuming a save whose board has no free cell
	ErrBoardFull = errors.New("board full")
)

// State is the phase of the turn state machine
type State int

const (
	AwaitingMove State = iota
	Placed
	GameOver
)

func (s State) String() string {
	switch s {
	case AwaitingMove:
		return "awaiting move"
	case Placed:
		return "placed"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Move is a request to place the hand card at Index (0-based) on Pos
type Move struct {
	Index int
	Pos   board.Pos
}

// Agent decides moves for one player
type Agent interface {
	// ProposeMove returns the move to play for the player whose turn it is
	ProposeMove(g *Game) (Move, error)
	// Automated reports whether moves come from a policy rather than a person
	Automated() bool
}

// Reporter receives game progress for display
type Reporter interface {
	Hand(player int, cards []card.Card, automated bool)
	Played(player int, c card.Card, pos board.Pos, automated bool)
	Board(b *board.Board)
	Final(r scoring.Result)
}

// Options configures a new or resumed game
type Options struct {
	Deck     *deck.Deck
	Width    int // Ignored when resuming
	Height   int // Ignored when resuming
	Agents   [2]Agent
	Reporter Reporter
	Logger   *logrus.Logger
}

// Game sequences turns between two agents over a shared board
type Game struct {
	id       uuid.UUID
	board    *board.Board
	deck     *deck.Deck
	hands    [2]*hand.Hand
	agents   [2]Agent
	turn     int
	state    State
	reporter Reporter
	log      *logrus.Entry
}

// New starts a fresh game: five cards to player 1, five to player 2,
// player 1 to move.
func New(opts Options) (*Game, error) {
	b, err := board.New(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	g, err := newGame(opts, b)
	if err != nil {
		return nil, err
	}

	for i := range g.hands {
		g.hands[i], _ = hand.New()
		g.hands[i].Deal(g.deck, hand.InitialSize)
	}
	g.turn = 1

	g.log.WithFields(logrus.Fields{
		"width":  b.Width(),
		"height": b.Height(),
		"deck":   g.deck.Name(),
		"cards":  g.deck.Len(),
	}).Debug("game started")
	return g, nil
}

// Resume rebuilds a game from a save. opts.Deck must be the deck named by the save.
func Resume(opts Options, s *save.State) (*Game, error) {
	if s.Board.IsFull() {
		return nil, ErrBoardFull
	}
	g, err := newGame(opts, s.Board.Clone())
	if err != nil {
		return nil, err
	}
	if err := g.deck.SetDrawn(s.Drawn); err != nil {
		return nil, fmt.Errorf("%w: %v", save.ErrParse, err)
	}
	for i, h := range s.Hands {
		if h == nil {
			h, _ = hand.New()
		}
		g.hands[i], _ = hand.New(h.Cards()...)
	}
	g.turn = s.Turn

	g.log.WithFields(logrus.Fields{
		"turn":     g.turn,
		"drawn":    s.Drawn,
		"occupied": g.board.Occupied(),
	}).Debug("game resumed")
	return g, nil
}

func newGame(opts Options, b *board.Board) (*Game, error) {
	if opts.Deck == nil {
		return nil, errors.New("game needs a deck")
	}
	for i, a := range opts.Agents {
		if a == nil {
			return nil, fmt.Errorf("player %d has no agent", i+1)
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}

	id := uuid.New()
	return &Game{
		id:       id,
		board:    b,
		deck:     opts.Deck,
		agents:   opts.Agents,
		state:    AwaitingMove,
		reporter: reporter,
		log:      logger.WithField("game_id", id.String()),
	}, nil
}

// ID returns the identifier used to correlate log lines of this game
func (g *Game) ID() uuid.UUID { return g.id }

// Board returns the live board. Callers must not modify it.
func (g *Game) Board() *board.Board { return g.board }

// Hand returns a copy of the given player's cards
func (g *Game) Hand(player int) []card.Card { return g.hands[player-1].Cards() }

// Turn returns the player to move, 1 or 2
func (g *Game) Turn() int { return g.turn }

// State returns the current phase of the state machine
func (g *Game) State() State { return g.state }

// Drawn returns how many cards have left the deck
func (g *Game) Drawn() int { return g.deck.Drawn() }

// Over reports whether the game has ended: every deck card has been issued
// or no empty cell remains.
func (g *Game) Over() bool {
	return g.state == GameOver || g.deck.Exhausted() || g.board.IsFull()
}

// Step plays one turn. It returns ErrGameOver once the game has ended.
func (g *Game) Step() error {
	if g.Over() {
		g.state = GameOver
		return ErrGameOver
	}

	player := g.turn
	h := g.hands[player-1]
	if n := h.Refill(g.deck); n > 0 {
		g.log.WithFields(logrus.Fields{"player": player, "drawn": n}).Debug("hand refilled")
	}

	agent := g.agents[player-1]
	g.reporter.Hand(player, h.Cards(), agent.Automated())

	move, err := agent.ProposeMove(g)
	if err != nil {
		return fmt.Errorf("player %d: %w", player, err)
	}
	return g.apply(player, move)
}

func (g *Game) apply(player int, move Move) error {
	h := g.hands[player-1]
	if move.Index < 0 || move.Index >= h.Len() {
		return fmt.Errorf("%w: card %d not in hand of %d", ErrIllegalMove, move.Index+1, h.Len())
	}
	if !rules.IsLegal(g.board, move.Pos) {
		return fmt.Errorf("%w: cannot place at %s", ErrIllegalMove, move.Pos)
	}

	c, err := h.Take(move.Index)
	if err != nil {
		return err
	}
	if err := g.board.Place(move.Pos, c); err != nil {
		return err
	}
	g.state = Placed

	automated := g.agents[player-1].Automated()
	g.log.WithFields(logrus.Fields{
		"player": player,
		"card":   c.String(),
		"col":    move.Pos.Col,
		"row":    move.Pos.Row,
	}).Debug("card placed")
	g.reporter.Played(player, c, move.Pos, automated)
	g.reporter.Board(g.board)

	g.turn = 3 - player
	g.state = AwaitingMove
	return nil
}

// Run plays turns until the game ends, then scores the board
func (g *Game) Run() (scoring.Result, error) {
	for {
		err := g.Step()
		if errors.Is(err, ErrGameOver) {
			break
		}
		if err != nil {
			return scoring.Result{}, err
		}
	}
	return g.Finish(), nil
}

// Finish ends the game and scores the board
func (g *Game) Finish() scoring.Result {
	g.state = GameOver
	res := scoring.Score(g.board)
	p1, p2 := res.PlayerMax()
	g.log.WithFields(logrus.Fields{
		"player1":  p1,
		"player2":  p2,
		"occupied": g.board.Occupied(),
	}).Info("game over")
	g.reporter.Final(res)
	return res
}

// Snapshot captures the game in save file form
func (g *Game) Snapshot() *save.State {
	s := &save.State{
		Drawn:    g.deck.Drawn(),
		Turn:     g.turn,
		DeckName: g.deck.Name(),
		Board:    g.board.Clone(),
	}
	for i, h := range g.hands {
		s.Hands[i], _ = hand.New(h.Cards()...)
	}
	return s
}

type nopReporter struct{}

func (nopReporter) Hand(int, []card.Card, bool)            {}
func (nopReporter) Played(int, card.Card, board.Pos, bool) {}
func (nopReporter) Board(*board.Board)                     {}
func (nopReporter) Final(scoring.Result)                   {}
