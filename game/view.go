package game

import (
	"fmt"
	"sort"

	"htmx-tictactoe/models"
)

type Cell struct {
	Index     int
	Value     string
	Highlight bool
}

type MoveEntry struct {
	Move    int
	Label   string
	Current bool
}

// View is everything the panel template needs to draw one game.
type View struct {
	GameID    string
	Status    string
	Rows      [3][3]Cell
	Moves     []MoveEntry
	Ascending bool
	SortLabel string
	Finished  bool
}

// StatusText returns the line shown above the grid.
func StatusText(board models.Board, xIsNext bool) string {
	if result, won := Evaluate(board); won {
		return "Winner: " + result.Winner
	}
	if IsBoardFull(board) {
		return "It's a draw!"
	}
	if xIsNext {
		return "Next player: " + models.SymbolX
	}
	return "Next player: " + models.SymbolO
}

// MoveLabel describes a history entry.
//
// The row and column are derived from the move number, not from the cell
// that move actually filled, so they only line up with the board by chance.
// Known oddity; kept as is.
func MoveLabel(move int) string {
	if move == 0 {
		return "Go to game start"
	}
	return fmt.Sprintf("Go to move #%d (row: %d, col: %d)", move, (move-1)%3, (move-1)/3)
}

// CurrentLabel is shown in place of the jump control for the current move.
func CurrentLabel(move int) string {
	return fmt.Sprintf("You are at move #%d", move)
}

// Moves lists every history entry, sorted by move number per g.Ascending.
func Moves(g models.Game) []MoveEntry {
	moves := make([]MoveEntry, 0, len(g.History))
	for move := range g.History {
		entry := MoveEntry{Move: move, Label: MoveLabel(move)}
		if move == g.CurrentMove {
			entry.Current = true
			entry.Label = CurrentLabel(move)
		}
		moves = append(moves, entry)
	}

	sort.SliceStable(moves, func(i, j int) bool {
		if g.Ascending {
			return moves[i].Move < moves[j].Move
		}
		return moves[i].Move > moves[j].Move
	})
	return moves
}

// BuildCells lays the board out as a 3x3 grid, marking cells on line.
func BuildCells(board models.Board, line []int) [3][3]Cell {
	var rows [3][3]Cell
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			index := row*3 + col
			rows[row][col] = Cell{
				Index:     index,
				Value:     board[index],
				Highlight: contains(line, index),
			}
		}
	}
	return rows
}

func contains(line []int, index int) bool {
	for _, i := range line {
		if i == index {
			return true
		}
	}
	return false
}

// BuildView renders g into a View. It reads nothing but g.
func BuildView(g models.Game) View {
	board := CurrentBoard(g)

	var line []int
	result, won := Evaluate(board)
	if won {
		line = result.Line[:]
	}

	sortLabel := "Ascending order"
	if !g.Ascending {
		sortLabel = "Descending order"
	}

	return View{
		GameID:    g.ID,
		Status:    StatusText(board, XIsNext(g)),
		Rows:      BuildCells(board, line),
		Moves:     Moves(g),
		Ascending: g.Ascending,
		SortLabel: sortLabel,
		Finished:  won || IsBoardFull(board),
	}
}
