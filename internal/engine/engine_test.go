package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/inarow/internal/apperror"
	"github.com/rocketscienceinc/inarow/internal/board"
)

// boardFromRows builds a 2D board from rows of 'X', 'O' and '.'.
func boardFromRows(t *testing.T, winCondition int, rows ...string) *board.Board {
	t.Helper()

	b, err := board.New(len(rows), winCondition, false)
	require.NoError(t, err)

	for row, line := range rows {
		require.Len(t, line, len(rows))
		for col, ch := range line {
			switch ch {
			case 'X':
				require.True(t, b.Place(board.Move{Row: row, Col: col}, board.X))
			case 'O':
				require.True(t, b.Place(board.Move{Row: row, Col: col}, board.O))
			}
		}
	}

	return b
}

func mustEngine(t *testing.T, opts Options) *Engine {
	t.Helper()

	e, err := New(opts)
	require.NoError(t, err)

	return e
}

func hardEngine(t *testing.T) *Engine {
	t.Helper()

	e, err := NewForDifficulty(Hard)
	require.NoError(t, err)

	return e
}

func TestNew(t *testing.T) {
	t.Run("Accepts unbounded and positive depth", func(t *testing.T) {
		for _, depth := range []int{Unbounded, 1, 4, 9} {
			_, err := New(Options{MaxDepth: depth})
			require.NoError(t, err, "depth %d", depth)
		}
	})

	t.Run("Rejects zero and negative depth", func(t *testing.T) {
		for _, depth := range []int{0, -2, -100} {
			e, err := New(Options{MaxDepth: depth, Pruning: true})
			require.ErrorIs(t, err, apperror.ErrInvalidConfiguration, "depth %d", depth)
			assert.Nil(t, e)
		}
	})
}

func TestEngine_Search_Scenarios(t *testing.T) {
	t.Run("Finds the unique winning cell", func(t *testing.T) {
		// Given: X to move with a single completing cell on the anti-diagonal
		b := boardFromRows(t, 3,
			"XOX",
			"OX.",
			"..O",
		)

		// When: the hard engine searches for X
		result, err := hardEngine(t).Search(b, board.X)

		// Then: it plays (2,0) and wins immediately
		require.NoError(t, err)
		assert.Equal(t, board.Move{Row: 2, Col: 0}, result.Move)
		assert.Equal(t, winScore, result.Score)

		require.True(t, b.Place(result.Move, board.X))
		assert.True(t, b.CheckWin(board.X))
	})

	t.Run("Completes the row on a 4x4 board with win condition 3", func(t *testing.T) {
		b := boardFromRows(t, 3,
			"XX..",
			"OO..",
			"....",
			"....",
		)

		result, err := hardEngine(t).Search(b, board.X)

		require.NoError(t, err)
		assert.Equal(t, board.Move{Row: 0, Col: 2}, result.Move)
	})

	t.Run("Prefers the immediate win over earlier cells", func(t *testing.T) {
		b := boardFromRows(t, 3,
			"O..",
			"XX.",
			"O..",
		)

		result, err := hardEngine(t).Search(b, board.X)

		require.NoError(t, err)
		assert.Equal(t, board.Move{Row: 1, Col: 2}, result.Move)
		assert.Equal(t, winScore, result.Score)
	})

	t.Run("Blocks the opponent threat", func(t *testing.T) {
		b := boardFromRows(t, 3,
			"OO.",
			".X.",
			"..X",
		)

		for _, difficulty := range []Difficulty{Easy, Medium, Hard} {
			e, err := NewForDifficulty(difficulty)
			require.NoError(t, err)

			result, err := e.Search(b, board.X)

			require.NoError(t, err)
			assert.Equal(t, board.Move{Row: 0, Col: 2}, result.Move, "difficulty %s", difficulty)
		}
	})

	t.Run("Easy takes an immediate win", func(t *testing.T) {
		b := boardFromRows(t, 3,
			"OO.",
			"XX.",
			"...",
		)

		e, err := NewForDifficulty(Easy)
		require.NoError(t, err)

		result, err := e.Search(b, board.O)

		require.NoError(t, err)
		assert.Equal(t, board.Move{Row: 0, Col: 2}, result.Move)
	})
}

func TestEngine_Search_FullBoard(t *testing.T) {
	// Given: a drawn, full board
	b := boardFromRows(t, 3,
		"XOX",
		"XOO",
		"OXX",
	)

	for _, opts := range []Options{{MaxDepth: Unbounded}, {MaxDepth: Unbounded, Pruning: true}, {MaxDepth: 2}} {
		// When: searching
		_, err := mustEngine(t, opts).Search(b, board.X)

		// Then: ErrNoMoveAvailable is returned
		require.ErrorIs(t, err, apperror.ErrNoMoveAvailable)
	}
}

func TestEngine_Search_RejectsEmptyMark(t *testing.T) {
	b := boardFromRows(t, 3, "...", "...", "...")

	_, err := hardEngine(t).Search(b, board.Empty)

	require.ErrorIs(t, err, apperror.ErrInvalidConfiguration)
}

func TestEngine_Search_LeavesBoardUnchanged(t *testing.T) {
	b := boardFromRows(t, 3,
		"X..",
		".O.",
		"...",
	)
	before := b.Key()

	for _, opts := range []Options{
		{MaxDepth: 1},
		{MaxDepth: 4},
		{MaxDepth: Unbounded},
		{MaxDepth: Unbounded, Pruning: true},
	} {
		_, err := mustEngine(t, opts).Search(b, board.X)
		require.NoError(t, err)
		require.Equal(t, before, b.Key(), "options %+v", opts)
	}
}

func TestEngine_Search_3D(t *testing.T) {
	// Given: X holds two cells of a cross-layer vertical line
	b, err := board.New(3, 3, true)
	require.NoError(t, err)
	require.True(t, b.Place(board.Move{Row: 2, Col: 2, Layer: 0}, board.X))
	require.True(t, b.Place(board.Move{Row: 2, Col: 2, Layer: 1}, board.X))
	require.True(t, b.Place(board.Move{Row: 0, Col: 0, Layer: 0}, board.O))
	require.True(t, b.Place(board.Move{Row: 0, Col: 1, Layer: 2}, board.O))
	before := b.Key()

	// When: a shallow search runs for X
	result, err := mustEngine(t, Options{MaxDepth: 2, Pruning: true}).Search(b, board.X)

	// Then: X completes the line through the layers
	require.NoError(t, err)
	assert.Equal(t, board.Move{Row: 2, Col: 2, Layer: 2}, result.Move)
	assert.Equal(t, winScore, result.Score)
	assert.Equal(t, before, b.Key())
}

func TestEngine_Determinism(t *testing.T) {
	positions := [][]string{
		{"...", "...", "..."},
		{"X..", "...", "..."},
		{"X..", ".O.", "..X"},
		{"....", ".X..", "..O.", "...."},
	}

	for _, difficulty := range []Difficulty{Easy, Medium, Hard} {
		for _, rows := range positions {
			if difficulty == Hard && len(rows) > 3 {
				continue
			}

			first, err := NewForDifficulty(difficulty)
			require.NoError(t, err)
			second, err := NewForDifficulty(difficulty)
			require.NoError(t, err)

			b1 := boardFromRows(t, 3, rows...)
			b2 := boardFromRows(t, 3, rows...)
			mark := sideToMove(b1)

			r1, err := first.Search(b1, mark)
			require.NoError(t, err)
			r2, err := second.Search(b2, mark)
			require.NoError(t, err)

			assert.Equal(t, r1, r2, "difficulty %s rows %v", difficulty, rows)
		}
	}
}

// Every position reachable within four plies from the empty 3x3 board must
// give the same move and score with and without pruning.
func TestEngine_AlphaBetaEquivalence(t *testing.T) {
	positions := reachablePositions(t, 4)
	require.Len(t, positions, 1+9+72+252+756)

	for _, depth := range []int{Unbounded, 2} {
		plain := mustEngine(t, Options{MaxDepth: depth})
		pruned := mustEngine(t, Options{MaxDepth: depth, Pruning: true})

		for _, b := range positions {
			mark := sideToMove(b)

			want, err := plain.Search(b, mark)
			require.NoError(t, err)
			got, err := pruned.Search(b, mark)
			require.NoError(t, err)

			require.Equal(t, want.Move, got.Move, "depth %d board %s", depth, b.Key())
			require.Equal(t, want.Score, got.Score, "depth %d board %s", depth, b.Key())
			require.LessOrEqual(t, got.Nodes, want.Nodes)
		}
	}
}

func TestEngine_PruningVisitsFewerNodes(t *testing.T) {
	b := boardFromRows(t, 3, "...", "...", "...")

	plain, err := mustEngine(t, Options{MaxDepth: Unbounded}).Search(b, board.X)
	require.NoError(t, err)
	pruned, err := mustEngine(t, Options{MaxDepth: Unbounded, Pruning: true}).Search(b, board.X)
	require.NoError(t, err)

	assert.Equal(t, plain.Move, pruned.Move)
	assert.Equal(t, 0, plain.Score)
	assert.Less(t, pruned.Nodes, plain.Nodes)
}

func TestEngine_HardNeverLoses(t *testing.T) {
	for _, engineMark := range []board.Mark{board.X, board.O} {
		t.Run(string(engineMark), func(t *testing.T) {
			b := boardFromRows(t, 3, "...", "...", "...")

			playEveryReply(t, hardEngine(t), b, engineMark, board.X)
		})
	}
}

// playEveryReply lets the engine answer every legal opponent sequence.
func playEveryReply(t *testing.T, e *Engine, b *board.Board, engineMark, toMove board.Mark) {
	t.Helper()

	if b.Status() != board.StatusOngoing {
		require.False(t, b.CheckWin(engineMark.Opponent()), "engine %s lost: %s", engineMark, b.Key())
		return
	}

	if toMove == engineMark {
		result, err := e.Search(b, engineMark)
		require.NoError(t, err)
		require.True(t, b.Place(result.Move, engineMark))
		playEveryReply(t, e, b, engineMark, toMove.Opponent())
		b.Clear(result.Move)

		return
	}

	for _, m := range b.EmptyCells() {
		require.True(t, b.Place(m, toMove))
		playEveryReply(t, e, b, engineMark, toMove.Opponent())
		b.Clear(m)
	}
}

func TestEngine_HardSelfPlayDraws(t *testing.T) {
	b := boardFromRows(t, 3, "...", "...", "...")
	e := hardEngine(t)

	for mark := board.X; b.Status() == board.StatusOngoing; mark = mark.Opponent() {
		result, err := e.Search(b, mark)
		require.NoError(t, err)
		require.True(t, b.Place(result.Move, mark))
	}

	assert.True(t, b.IsFull())
	assert.False(t, b.CheckWin(board.X))
	assert.False(t, b.CheckWin(board.O))
}

func TestDifficulty_Options(t *testing.T) {
	cases := []struct {
		difficulty Difficulty
		expected   Options
	}{
		{Easy, Options{MaxDepth: 1}},
		{Medium, Options{MaxDepth: 4}},
		{Hard, Options{MaxDepth: Unbounded, Pruning: true}},
	}

	for _, tc := range cases {
		opts, err := tc.difficulty.Options()
		require.NoError(t, err)
		assert.Equal(t, tc.expected, opts)
	}

	_, err := Difficulty("insane").Options()
	require.ErrorIs(t, err, apperror.ErrInvalidConfiguration)
}

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty(" Hard ")
	require.NoError(t, err)
	assert.Equal(t, Hard, d)

	_, err = ParseDifficulty("")
	require.ErrorIs(t, err, apperror.ErrInvalidConfiguration)
}

func sideToMove(b *board.Board) board.Mark {
	total := b.Layers() * b.Size() * b.Size()
	if (total-len(b.EmptyCells()))%2 == 0 {
		return board.X
	}

	return board.O
}

// reachablePositions collects distinct 3x3 positions up to plies moves deep,
// X moving first.
func reachablePositions(t *testing.T, plies int) []*board.Board {
	t.Helper()

	seen := make(map[string]bool)
	var positions []*board.Board

	var walk func(b *board.Board, mark board.Mark, left int)
	walk = func(b *board.Board, mark board.Mark, left int) {
		if seen[b.Key()] {
			return
		}
		seen[b.Key()] = true
		positions = append(positions, b.Clone())

		if left == 0 || b.Status() != board.StatusOngoing {
			return
		}

		for _, m := range b.EmptyCells() {
			require.True(t, b.Place(m, mark))
			walk(b, mark.Opponent(), left-1)
			b.Clear(m)
		}
	}

	walk(boardFromRows(t, 3, "...", "...", "..."), board.X, plies)

	return positions
}
