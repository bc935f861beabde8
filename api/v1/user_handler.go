package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	api_middleware "github.com/itacademy/dice-game-api/api/middleware"
	"github.com/itacademy/dice-game-api/internal/apperrors"
	"github.com/itacademy/dice-game-api/internal/ranking"
	"github.com/itacademy/dice-game-api/internal/user"
)

const INVALID_REQUEST = "invalid request"

var Users *user.Service
var Rankings *ranking.Service

// RegisterPlayerRoutes wires the player and ranking endpoints onto the
// /players group. Registration and login are public; everything else
// requires a bearer token.
func RegisterPlayerRoutes(g *echo.Group, jwt echo.MiddlewareFunc) {
	g.POST("", CreatePlayerHandler)
	g.POST("/login", LoginHandler)
	g.PUT("/:id", UpdateNameHandler, jwt)
	g.GET("", ListPlayersHandler, jwt)
	g.GET("/ranking", RankingHandler, jwt)
	g.GET("/ranking/winner", WinnerHandler, jwt)
	g.GET("/ranking/loser", LoserHandler, jwt)
}

func CreatePlayerHandler(c echo.Context) error {
	var req user.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	u, err := Users.Register(req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "User created successfully",
		"user":    u,
	})
}

func LoginHandler(c echo.Context) error {
	var req user.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	token, err := Users.Login(c.Request().Context(), req)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusUnauthorized {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
		}
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

func UpdateNameHandler(c echo.Context) error {
	id, err := parsePlayerID(c)
	if err != nil {
		return err
	}

	var req user.UpdateNameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	name, err := Users.UpdateName(api_middleware.CurrentPrincipal(c), id, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Name updated successfully.",
		"name":    name,
	})
}

func ListPlayersHandler(c echo.Context) error {
	stats, err := Rankings.Index(api_middleware.CurrentPrincipal(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

func RankingHandler(c echo.Context) error {
	avg, err := Rankings.Average(api_middleware.CurrentPrincipal(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"average_success_percentage": avg})
}

func WinnerHandler(c echo.Context) error {
	entry, err := Rankings.Winner(api_middleware.CurrentPrincipal(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entry)
}

func LoserHandler(c echo.Context) error {
	entry, err := Rankings.Loser(api_middleware.CurrentPrincipal(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entry)
}

func parsePlayerID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}
	return uint(id), nil
}
