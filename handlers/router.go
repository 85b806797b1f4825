package handlers

import (
	"fmt"
	"html/template"
	"log/slog"
	"path/filepath"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
)

func playPath(gameID string, index int) string {
	return fmt.Sprintf("/api/game/%s/play/%d", gameID, index)
}

func jumpPath(gameID string, move int) string {
	return fmt.Sprintf("/api/game/%s/jump/%d", gameID, move)
}

func createMyRender(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	funcMap := template.FuncMap{
		"playPath": playPath,
		"jumpPath": jumpPath,
	}

	base := filepath.Join(templatesDir, "layouts", "base.html")
	page := func(name string) string { return filepath.Join(templatesDir, "pages", name) }
	panel := filepath.Join(templatesDir, "partials", "panel.html")

	// Pages share the base layout; the game page embeds the panel partial
	r.AddFromFilesFuncs("home.html", funcMap, base, page("home.html"))
	r.AddFromFilesFuncs("game.html", funcMap, base, page("game.html"), panel)
	r.AddFromFilesFuncs("404.html", funcMap, base, page("404.html"))

	// Fragment returned to htmx requests
	r.AddFromFilesFuncs("panel.html", funcMap, panel)

	return r
}

// SetupRouter builds the engine with every page and API route.
func SetupRouter(templatesDir, staticDir string, logger *slog.Logger) *gin.Engine {
	r := gin.Default()
	r.Use(LoggerMiddleware(logger))

	r.HTMLRender = createMyRender(templatesDir)
	r.Static("/static", staticDir)

	// Main pages
	r.GET("/", HomeHandler)
	r.GET("/new-game", NewGameHandler)
	r.GET("/game/:id", GamePageHandler)

	// Game API endpoints
	r.GET("/api/game/:id", GamePanelHandler)
	r.POST("/api/game/:id/play/:index", GamePlayHandler)
	r.POST("/api/game/:id/jump/:move", GameJumpHandler)
	r.POST("/api/game/:id/sort", GameSortHandler)
	r.GET("/api/game/:id/events", GameSSEHandler)

	return r
}
