package handlers

import (
	"net/http"

	"htmx-tictactoe/events"
	"htmx-tictactoe/game"

	"github.com/gin-gonic/gin"
)

// GameSSEHandler streams game_updated events so other open tabs of the
// same game re-fetch their panel.
func GameSSEHandler(c *gin.Context) {
	gameID := c.Param("id")

	if _, ok := game.GetGame(gameID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	subscriber := events.CreateGameSubscriber(gameID, c.Request.Context())
	defer events.RemoveGameSubscriber(subscriber)

	loggerFrom(c).Debug("subscriber connected", "game_id", gameID, "subscriber_id", subscriber.ID)

	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	for {
		select {
		case event, ok := <-subscriber.Channel:
			if !ok {
				return
			}
			c.SSEvent(event.Type, event.GameID)
			c.Writer.Flush()
		case <-subscriber.Context.Done():
			return
		}
	}
}
