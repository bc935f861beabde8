package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	api_middleware "github.com/itacademy/dice-game-api/api/middleware"
	"github.com/itacademy/dice-game-api/internal/game"
)

var Games *game.Service

// RegisterGameRoutes wires the per-player game endpoints onto the
// /players group. All of them are self-scoped and need a bearer token.
func RegisterGameRoutes(g *echo.Group, jwt echo.MiddlewareFunc) {
	g.POST("/:id/games", RollDiceHandler, jwt)
	g.DELETE("/:id/games", DeleteGamesHandler, jwt)
	g.GET("/:id/games", GetGamesHandler, jwt)
}

func RollDiceHandler(c echo.Context) error {
	id, err := parsePlayerID(c)
	if err != nil {
		return err
	}

	g, err := Games.RollDice(api_middleware.CurrentPrincipal(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Dice rolled successfully.",
		"game":    g,
	})
}

func DeleteGamesHandler(c echo.Context) error {
	id, err := parsePlayerID(c)
	if err != nil {
		return err
	}

	if err := Games.DeleteGames(api_middleware.CurrentPrincipal(c), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "All games deleted successfully.",
	})
}

func GetGamesHandler(c echo.Context) error {
	id, err := parsePlayerID(c)
	if err != nil {
		return err
	}

	games, err := Games.GetGames(api_middleware.CurrentPrincipal(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, games)
}
