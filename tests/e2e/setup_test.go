package e2e

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"regexp"
	"testing"

	"htmx-tictactoe/handlers"

	"github.com/gin-gonic/gin"
	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return handlers.SetupRouter("../../templates", "../../static", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func extractGameID(gameURL string) string {
	re := regexp.MustCompile(`/game/([a-f0-9-]+)`)
	matches := re.FindStringSubmatch(gameURL)
	if len(matches) > 1 {
		return matches[1]
	}
	return ""
}

// startBrowser runs playwright and a test server, skipping the test when no
// playwright driver or browser is installed.
func startBrowser(t *testing.T) (playwright.Browser, *httptest.Server) {
	t.Helper()
	if testing.Short() {
		t.Skip("browser tests skipped in -short mode")
	}

	pw, err := playwright.Run()
	if err != nil {
		t.Skipf("playwright not available: %v", err)
	}
	t.Cleanup(func() { pw.Stop() })

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		t.Skipf("chromium not available: %v", err)
	}
	t.Cleanup(func() { browser.Close() })

	server := httptest.NewServer(setupRouter())
	t.Cleanup(server.Close)

	return browser, server
}

// newGamePage opens a fresh browser context and starts a new game from the home page.
func newGamePage(t *testing.T, browser playwright.Browser, serverURL string) (playwright.Page, string) {
	t.Helper()

	context, err := browser.NewContext()
	require.NoError(t, err)
	t.Cleanup(func() { context.Close() })

	page, err := context.NewPage()
	require.NoError(t, err)

	_, err = page.Goto(serverURL)
	require.NoError(t, err)

	err = page.Click("a:text('New Game')")
	require.NoError(t, err)

	err = page.WaitForURL("**/game/**")
	require.NoError(t, err)

	err = page.Locator(".square").First().WaitFor()
	require.NoError(t, err)

	return page, extractGameID(page.URL())
}

func waitForStatus(t *testing.T, page playwright.Page, status string) {
	t.Helper()
	_, err := page.WaitForFunction(`(s) => document.querySelector('.status').textContent.trim() === s`, status)
	require.NoError(t, err, "waiting for status %q", status)
}

func clickSquare(t *testing.T, page playwright.Page, index int) {
	t.Helper()
	err := page.Locator(".square").Nth(index).Click()
	require.NoError(t, err)
}
