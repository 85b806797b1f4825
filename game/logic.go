package game

import "htmx-tictactoe/models"

// Lines lists every winning triple: rows, then columns, then the two diagonals.
var Lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Evaluate returns the first line in Lines held entirely by one symbol.
func Evaluate(board models.Board) (models.WinResult, bool) {
	for _, line := range Lines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != models.Empty && a == b && b == c {
			return models.WinResult{Winner: a, Line: line}, true
		}
	}
	return models.WinResult{}, false
}

// IsBoardFull checks if all cells on the board are filled
func IsBoardFull(board models.Board) bool {
	for _, cell := range board {
		if cell == models.Empty {
			return false
		}
	}
	return true
}

// IsDraw returns true if the board is full and nobody won
func IsDraw(board models.Board) bool {
	if _, won := Evaluate(board); won {
		return false
	}
	return IsBoardFull(board)
}

// NextSymbol returns the symbol that plays after the given move index.
func NextSymbol(move int) string {
	if move%2 == 0 {
		return models.SymbolX
	}
	return models.SymbolO
}
