package game

import (
	"errors"
	"testing"

	"github.com/arcanaland/bark/internal/board"
	"github.com/arcanaland/bark/internal/card"
	"github.com/arcanaland/bark/internal/deck"
	"github.com/arcanaland/bark/internal/hand"
	"github.com/arcanaland/bark/internal/rules"
	"github.com/arcanaland/bark/internal/save"
	"github.com/arcanaland/bark/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// firstLegal plays the first hand card on the first legal cell.
type firstLegal struct{}

func (firstLegal) ProposeMove(g *Game) (Move, error) {
	cells := rules.LegalCells(g.Board())
	if len(cells) == 0 {
		return Move{}, errors.New("no legal cell")
	}
	return Move{Index: 0, Pos: cells[0]}, nil
}

func (firstLegal) Automated() bool { return true }

// scripted replays a fixed list of moves.
type scripted struct {
	moves []Move
	err   error
}

func (s *scripted) ProposeMove(*Game) (Move, error) {
	if s.err != nil {
		return Move{}, s.err
	}
	m := s.moves[0]
	s.moves = s.moves[1:]
	return m, nil
}

func (s *scripted) Automated() bool { return false }

// recorder captures everything reported by the game.
type recorder struct {
	hands  []int
	played []card.Card
	boards int
	final  *scoring.Result
}

func (r *recorder) Hand(player int, _ []card.Card, _ bool) { r.hands = append(r.hands, player) }
func (r *recorder) Played(_ int, c card.Card, _ board.Pos, _ bool) {
	r.played = append(r.played, c)
}
func (r *recorder) Board(*board.Board)       { r.boards++ }
func (r *recorder) Final(res scoring.Result) { r.final = &res }

func testDeck(n int) *deck.Deck {
	cards := make([]card.Card, n)
	for i := range cards {
		cards[i] = card.MustNew('A'+byte(i%4), 1+(i*5)%9)
	}
	return deck.New("test.deck", cards)
}

func TestNewDealsFiveEach(t *testing.T) {
	d := testDeck(20)
	g, err := New(Options{Deck: d, Width: 3, Height: 3, Agents: [2]Agent{firstLegal{}, firstLegal{}}})
	require.NoError(t, err)

	assert.Equal(t, d.Cards()[:5], g.Hand(1))
	assert.Equal(t, d.Cards()[5:10], g.Hand(2))
	assert.Equal(t, 10, g.Drawn())
	assert.Equal(t, 1, g.Turn())
	assert.Equal(t, AwaitingMove, g.State())
	assert.True(t, g.Board().IsEmpty())
}

func TestNewValidates(t *testing.T) {
	_, err := New(Options{Deck: testDeck(20), Width: 1, Height: 3, Agents: [2]Agent{firstLegal{}, firstLegal{}}})
	assert.ErrorIs(t, err, board.ErrOutOfRange)

	_, err = New(Options{Deck: testDeck(20), Width: 3, Height: 3, Agents: [2]Agent{firstLegal{}, nil}})
	assert.Error(t, err)

	_, err = New(Options{Width: 3, Height: 3, Agents: [2]Agent{firstLegal{}, firstLegal{}}})
	assert.Error(t, err)
}

func TestStepPlacesAndAlternates(t *testing.T) {
	rec := &recorder{}
	p1 := &scripted{moves: []Move{{Index: 2, Pos: board.Pos{Col: 2, Row: 2}}}}
	p2 := &scripted{moves: []Move{{Index: 0, Pos: board.Pos{Col: 2, Row: 1}}}}
	d := testDeck(20)
	g, err := New(Options{Deck: d, Width: 3, Height: 3, Agents: [2]Agent{p1, p2}, Reporter: rec})
	require.NoError(t, err)

	require.NoError(t, g.Step())
	placed, ok := g.Board().At(board.Pos{Col: 2, Row: 2})
	require.True(t, ok)
	assert.Equal(t, d.Cards()[2], placed)
	assert.Len(t, g.Hand(1), 5, "refilled to six, then placed one")
	assert.Equal(t, 2, g.Turn())

	require.NoError(t, g.Step())
	assert.Equal(t, 1, g.Turn())
	assert.Equal(t, []int{1, 2}, rec.hands)
	assert.Len(t, rec.played, 2)
	assert.Equal(t, 2, rec.boards)
	assert.Equal(t, 12, g.Drawn())
}

func TestStepRejectsIllegalMove(t *testing.T) {
	p1 := &scripted{moves: []Move{
		{Index: 0, Pos: board.Pos{Col: 1, Row: 1}},
	}}
	p2 := &scripted{moves: []Move{
		{Index: 0, Pos: board.Pos{Col: 1, Row: 1}}, // occupied
		{Index: 0, Pos: board.Pos{Col: 2, Row: 2}}, // diagonal only
		{Index: 6, Pos: board.Pos{Col: 2, Row: 1}}, // no such card
		{Index: 0, Pos: board.Pos{Col: 3, Row: 1}}, // wraps onto (1,1)
	}}
	g, err := New(Options{Deck: testDeck(20), Width: 3, Height: 3, Agents: [2]Agent{p1, p2}})
	require.NoError(t, err)
	require.NoError(t, g.Step())

	for i := 0; i < 3; i++ {
		err := g.Step()
		assert.ErrorIs(t, err, ErrIllegalMove)
		assert.Equal(t, 2, g.Turn(), "turn must not pass on an illegal move")
		assert.Equal(t, 1, g.Board().Occupied())
	}

	require.NoError(t, g.Step())
	assert.Equal(t, 2, g.Board().Occupied())
	assert.Equal(t, 1, g.Turn())
}

func TestAgentErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	g, err := New(Options{Deck: testDeck(20), Width: 3, Height: 3, Agents: [2]Agent{&scripted{err: boom}, firstLegal{}}})
	require.NoError(t, err)

	_, err = g.Run()
	assert.ErrorIs(t, err, boom)
}

func TestGameEndsWhenDeckExhausted(t *testing.T) {
	// 11 cards: 10 dealt, the 11th drawn by player 1 on the first turn
	g, err := New(Options{Deck: testDeck(deck.MinCards), Width: 5, Height: 5, Agents: [2]Agent{firstLegal{}, firstLegal{}}})
	require.NoError(t, err)

	require.NoError(t, g.Step())
	assert.ErrorIs(t, g.Step(), ErrGameOver)
	assert.Equal(t, GameOver, g.State())
	assert.Equal(t, 1, g.Board().Occupied())
}

func TestRunUntilBoardFull(t *testing.T) {
	rec := &recorder{}
	g, err := New(Options{Deck: testDeck(40), Width: 3, Height: 3, Agents: [2]Agent{firstLegal{}, firstLegal{}}, Reporter: rec})
	require.NoError(t, err)

	res, err := g.Run()
	require.NoError(t, err)
	assert.True(t, g.Board().IsFull())
	assert.Equal(t, GameOver, g.State())
	assert.Len(t, rec.played, 9)
	require.NotNil(t, rec.final)

	p1, p2 := scoring.PlayerMax(g.Board())
	gotP1, gotP2 := res.PlayerMax()
	assert.Equal(t, p1, gotP1)
	assert.Equal(t, p2, gotP2)

	assert.ErrorIs(t, g.Step(), ErrGameOver)
}

func TestSnapshotAndResume(t *testing.T) {
	p1 := &scripted{moves: []Move{{Index: 0, Pos: board.Pos{Col: 1, Row: 1}}}}
	d := testDeck(20)
	g, err := New(Options{Deck: d, Width: 4, Height: 3, Agents: [2]Agent{p1, firstLegal{}}})
	require.NoError(t, err)
	require.NoError(t, g.Step())

	snap := g.Snapshot()
	assert.Equal(t, 11, snap.Drawn)
	assert.Equal(t, 2, snap.Turn)
	assert.Equal(t, "test.deck", snap.DeckName)
	assert.Equal(t, 5, snap.Hands[0].Len())
	assert.Equal(t, 5, snap.Hands[1].Len())

	// The snapshot is detached from the live game
	require.NoError(t, snap.Board.Place(board.Pos{Col: 4, Row: 3}, card.MustNew('Z', 9)))
	_, ok := g.Board().At(board.Pos{Col: 4, Row: 3})
	assert.False(t, ok)

	resumed, err := Resume(Options{Deck: testDeck(20), Agents: [2]Agent{firstLegal{}, firstLegal{}}}, g.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, 2, resumed.Turn())
	assert.Equal(t, 11, resumed.Drawn())
	assert.Equal(t, g.Hand(1), resumed.Hand(1))
	assert.Equal(t, g.Hand(2), resumed.Hand(2))
	assert.Equal(t, 1, resumed.Board().Occupied())

	require.NoError(t, resumed.Step())
	assert.Equal(t, 2, resumed.Board().Occupied())
}

func TestResumeRejectsFullBoard(t *testing.T) {
	b, err := board.New(2, 2)
	require.NoError(t, err)
	for _, pos := range b.Positions() {
		require.NoError(t, b.Place(pos, card.MustNew('A', 1)))
	}
	h, _ := hand.New()
	_, err = Resume(Options{Deck: testDeck(20), Agents: [2]Agent{firstLegal{}, firstLegal{}}},
		&save.State{Drawn: 12, Turn: 1, DeckName: "x", Hands: [2]*hand.Hand{h, h}, Board: b})
	assert.ErrorIs(t, err, ErrBoardFull)
}

func TestResumeRejectsDrawnBeyondDeck(t *testing.T) {
	b, err := board.New(2, 2)
	require.NoError(t, err)
	_, err = Resume(Options{Deck: testDeck(12), Agents: [2]Agent{firstLegal{}, firstLegal{}}},
		&save.State{Drawn: 13, Turn: 1, DeckName: "x", Board: b})
	assert.ErrorIs(t, err, save.ErrParse)
}
