package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"htmx-tictactoe/events"
	"htmx-tictactoe/game"
	"htmx-tictactoe/models"

	"github.com/gin-gonic/gin"
)

func requireHXRequest(c *gin.Context) bool {
	if c.GetHeader("HX-Request") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "HTMX request required"})
		return false
	}
	return true
}

func renderPanel(c *gin.Context, gameData models.Game) {
	c.HTML(http.StatusOK, "panel.html", game.BuildView(gameData))
}

func GamePanelHandler(c *gin.Context) {
	gameData, ok := game.GetGame(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	renderPanel(c, gameData)
}

func GamePlayHandler(c *gin.Context) {
	if !requireHXRequest(c) {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 || index >= models.BoardSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cell"})
		return
	}

	applyUpdate(c, "play", func(g models.Game) (models.Game, error) {
		return game.Play(g, index)
	})
}

func GameJumpHandler(c *gin.Context) {
	if !requireHXRequest(c) {
		return
	}

	move, err := strconv.Atoi(c.Param("move"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid move"})
		return
	}

	applyUpdate(c, "jump", func(g models.Game) (models.Game, error) {
		return game.JumpTo(g, move)
	})
}

func GameSortHandler(c *gin.Context) {
	if !requireHXRequest(c) {
		return
	}

	applyUpdate(c, "sort", func(g models.Game) (models.Game, error) {
		return game.ToggleSortOrder(g), nil
	})
}

// applyUpdate runs op against the stored game and answers with the panel.
// Moves on an occupied cell or a decided board are ignored: the unchanged
// panel is rendered and nothing is broadcast.
func applyUpdate(c *gin.Context, action string, op func(models.Game) (models.Game, error)) {
	gameID := c.Param("id")
	logger := loggerFrom(c).With("game_id", gameID, "action", action)

	gameData, err := game.Update(gameID, op)
	switch {
	case err == nil:
	case errors.Is(err, game.ErrGameNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	case errors.Is(err, game.ErrCellOccupied), errors.Is(err, game.ErrGameFinished):
		logger.Debug("move ignored", "reason", err.Error())
		renderPanel(c, gameData)
		return
	case errors.Is(err, game.ErrInvalidCell), errors.Is(err, game.ErrMoveOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	default:
		logger.Error("update failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	logger.Info("game updated",
		"current_move", gameData.CurrentMove,
		"history_len", len(gameData.History),
		"ascending", gameData.Ascending,
	)

	events.BroadcastGameEvent(gameID, models.GameEvent{
		Type:   models.EventGameUpdated,
		GameID: gameID,
		Data: map[string]interface{}{
			"action":      action,
			"currentMove": gameData.CurrentMove,
		},
	})

	renderPanel(c, gameData)
}
