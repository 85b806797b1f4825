package game

import (
	"fmt"
	"sync"
	"time"

	"htmx-tictactoe/models"

	"github.com/google/uuid"
)

// Global game storage
var (
	games    = make(map[string]models.Game)
	gamesMux sync.RWMutex
)

// generateGameID creates a unique game identifier
func generateGameID() string {
	return uuid.NewString()
}

// CreateGame creates a new game and stores it
func CreateGame() models.Game {
	now := time.Now()
	g := NewGame(generateGameID())
	g.CreatedAt = now
	g.UpdatedAt = now

	gamesMux.Lock()
	games[g.ID] = g
	gamesMux.Unlock()

	return g
}

// GetGame retrieves a game by ID
func GetGame(id string) (models.Game, bool) {
	gamesMux.RLock()
	defer gamesMux.RUnlock()
	g, ok := games[id]
	return g, ok
}

// SaveGame stores g as the latest snapshot for its ID.
func SaveGame(g models.Game) {
	g.UpdatedAt = time.Now()

	gamesMux.Lock()
	games[g.ID] = g
	gamesMux.Unlock()
}

// Update applies fn to the stored game under the store lock, so updates to
// one game never interleave. The snapshot is saved only when fn succeeds;
// on error the stored game is returned unchanged alongside the error.
func Update(id string, fn func(models.Game) (models.Game, error)) (models.Game, error) {
	gamesMux.Lock()
	defer gamesMux.Unlock()

	current, ok := games[id]
	if !ok {
		return models.Game{}, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}

	next, err := fn(current)
	if err != nil {
		return current, err
	}

	next.UpdatedAt = time.Now()
	games[id] = next
	return next, nil
}

// DeleteGame removes a game from the store
func DeleteGame(id string) {
	gamesMux.Lock()
	delete(games, id)
	gamesMux.Unlock()
}

// Count returns the number of stored games
func Count() int {
	gamesMux.RLock()
	defer gamesMux.RUnlock()
	return len(games)
}
