package handlers

import (
	"net/http"

	"htmx-tictactoe/game"

	"github.com/gin-gonic/gin"
)

func HomeHandler(c *gin.Context) {
	data := gin.H{
		"Title": "Tic-Tac-Toe",
	}

	c.HTML(http.StatusOK, "home.html", data)
}

func NewGameHandler(c *gin.Context) {
	newGame := game.CreateGame()
	loggerFrom(c).Info("game created", "game_id", newGame.ID)
	c.Redirect(http.StatusSeeOther, "/game/"+newGame.ID)
}

func GamePageHandler(c *gin.Context) {
	gameID := c.Param("id")
	gameData, ok := game.GetGame(gameID)
	if !ok {
		c.HTML(http.StatusNotFound, "404.html", gin.H{
			"Title": "Game Not Found",
		})
		return
	}

	c.HTML(http.StatusOK, "game.html", gin.H{
		"Title": "Tic-Tac-Toe",
		"View":  game.BuildView(gameData),
	})
}
