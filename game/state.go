package game

import (
	"fmt"

	"htmx-tictactoe/models"
)

// NewGame returns the starting position: one empty board, X to move,
// ascending move list.
func NewGame(id string) models.Game {
	return models.Game{
		ID:        id,
		History:   []models.Board{{}},
		Ascending: true,
	}
}

// CurrentBoard returns the board at the current move.
func CurrentBoard(g models.Game) models.Board {
	return g.History[g.CurrentMove]
}

// XIsNext returns true if X moves from the current position
func XIsNext(g models.Game) bool {
	return g.CurrentMove%2 == 0
}

// Play places the mover's symbol on index and returns the resulting game.
// Any positions after the current move are dropped. The game passed in is
// never modified; on ErrGameFinished or ErrCellOccupied it is returned as is.
func Play(g models.Game, index int) (models.Game, error) {
	if index < 0 || index >= models.BoardSize {
		return g, fmt.Errorf("%w: %d", ErrInvalidCell, index)
	}

	board := CurrentBoard(g)
	if _, won := Evaluate(board); won {
		return g, ErrGameFinished
	}
	if board[index] != models.Empty {
		return g, fmt.Errorf("%w: %d", ErrCellOccupied, index)
	}

	board[index] = NextSymbol(g.CurrentMove)

	history := make([]models.Board, g.CurrentMove+2)
	copy(history, g.History[:g.CurrentMove+1])
	history[len(history)-1] = board

	g.History = history
	g.CurrentMove = len(history) - 1
	return g, nil
}

// JumpTo makes move the current position without touching history.
func JumpTo(g models.Game, move int) (models.Game, error) {
	if move < 0 || move >= len(g.History) {
		return g, fmt.Errorf("%w: %d not in [0, %d]", ErrMoveOutOfRange, move, len(g.History)-1)
	}
	g.CurrentMove = move
	return g, nil
}

// ToggleSortOrder flips the move list order.
func ToggleSortOrder(g models.Game) models.Game {
	g.Ascending = !g.Ascending
	return g
}
