package models

import (
	"context"
	"time"
)

const (
	SymbolX = "X"
	SymbolO = "O"
	Empty   = ""

	BoardSize = 9
)

// Board holds the nine cells of one position, indexed row*3+col.
type Board [BoardSize]string

type Game struct {
	ID          string
	History     []Board // History[0] is always the empty board
	CurrentMove int     // index into History of the displayed position
	Ascending   bool    // move list sort order
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WinResult is derived from a Board on every render and never stored.
type WinResult struct {
	Winner string
	Line   [3]int
}

type GameEvent struct {
	Type   string      `json:"type"`
	GameID string      `json:"gameId"`
	Data   interface{} `json:"data"`
}

type GameSubscriber struct {
	ID      string
	GameID  string
	Channel chan GameEvent
	Context context.Context
}

const EventGameUpdated = "game_updated"
