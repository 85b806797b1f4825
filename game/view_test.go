package game

import (
	"testing"

	"htmx-tictactoe/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveLabel(t *testing.T) {
	tests := []struct {
		move int
		want string
	}{
		{0, "Go to game start"},
		{1, "Go to move #1 (row: 0, col: 0)"},
		{2, "Go to move #2 (row: 1, col: 0)"},
		{4, "Go to move #4 (row: 0, col: 1)"},
		{9, "Go to move #9 (row: 2, col: 2)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MoveLabel(tt.move))
	}
}

func TestMoveLabelIgnoresPlayedCell(t *testing.T) {
	// Move 1 goes to the bottom-right corner, the label still reads row 0, col 0
	g := playAll(t, NewGame("g"), 8, 0)

	moves := Moves(g)
	require.Len(t, moves, 3)
	assert.Equal(t, "Go to move #1 (row: 0, col: 0)", moves[1].Label)
}

func TestMovesAscending(t *testing.T) {
	g := playAll(t, NewGame("g"), 0, 4)
	g, err := JumpTo(g, 1)
	require.NoError(t, err)

	moves := Moves(g)
	require.Len(t, moves, 3)

	assert.Equal(t, MoveEntry{Move: 0, Label: "Go to game start"}, moves[0])
	assert.Equal(t, MoveEntry{Move: 1, Label: "You are at move #1", Current: true}, moves[1])
	assert.Equal(t, MoveEntry{Move: 2, Label: "Go to move #2 (row: 1, col: 0)"}, moves[2])
}

func TestMovesDescending(t *testing.T) {
	g := ToggleSortOrder(playAll(t, NewGame("g"), 0, 4, 8))

	moves := Moves(g)
	require.Len(t, moves, 4)
	for i, entry := range moves {
		assert.Equal(t, 3-i, entry.Move)
	}
	assert.True(t, moves[0].Current)
	assert.Equal(t, "You are at move #3", moves[0].Label)
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "Next player: X", StatusText(models.Board{}, true))
	assert.Equal(t, "Next player: O", StatusText(boardOf("X........"), false))
	assert.Equal(t, "Winner: O", StatusText(boardOf("XXOXO.O.."), true))
	assert.Equal(t, "It's a draw!", StatusText(boardOf("XOXXOOOXX"), false))
}

func TestBuildCells(t *testing.T) {
	rows := BuildCells(boardOf("X...O...X"), []int{0, 4, 8})

	for r, row := range rows {
		for c, cell := range row {
			index := r*3 + c
			assert.Equal(t, index, cell.Index)
			assert.Equal(t, r == c, cell.Highlight, "cell %d", index)
		}
	}
	assert.Equal(t, models.SymbolX, rows[0][0].Value)
	assert.Equal(t, models.SymbolO, rows[1][1].Value)
	assert.Equal(t, models.Empty, rows[0][1].Value)
}

func TestBuildViewInProgress(t *testing.T) {
	g := playAll(t, NewGame("view"), 4)

	view := BuildView(g)
	assert.Equal(t, "view", view.GameID)
	assert.Equal(t, "Next player: O", view.Status)
	assert.Equal(t, "Ascending order", view.SortLabel)
	assert.False(t, view.Finished)
	for _, row := range view.Rows {
		for _, cell := range row {
			assert.False(t, cell.Highlight)
		}
	}

	view = BuildView(ToggleSortOrder(g))
	assert.Equal(t, "Descending order", view.SortLabel)
	assert.False(t, view.Ascending)
}

func TestBuildViewAfterJumpBack(t *testing.T) {
	g := playAll(t, NewGame("g"), 0, 4, 1, 5, 2)
	g, err := JumpTo(g, 4)
	require.NoError(t, err)

	view := BuildView(g)
	assert.Equal(t, "Next player: X", view.Status)
	assert.False(t, view.Finished)
	assert.Equal(t, models.Empty, view.Rows[0][2].Value)
}
