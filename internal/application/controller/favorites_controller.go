package controller

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"weather-dash/internal/domain/model"
	"weather-dash/internal/domain/usecase/favorites"
)

type FavoritesController struct {
	api     *echo.Group
	useCase favorites.UseCase
}

func NewFavoritesController(api *echo.Group, useCase favorites.UseCase) *FavoritesController {
	return &FavoritesController{api: api, useCase: useCase}
}

// InitFavoritesRoutes initializes favorite city routes
func (controller *FavoritesController) InitFavoritesRoutes() {
	controller.api.GET("/favorites", controller.ListFavorites)
	controller.api.POST("/favorites", controller.AddFavorite)
	controller.api.DELETE("/favorites/country/:country/city/:city", controller.RemoveFavorite)
	controller.api.GET("/favorites/country/:country/city/:city", controller.ContainsFavorite)
}

// ListFavorites godoc
// @Summary List favorite cities
// @Description Retrieve all favorite cities, ordered by insertion time
// @Tags favorites
// @Accept json
// @Produce json
// @Success 200 {array} model.FavoriteCity "Favorite cities"
// @Router /favorites [get]
func (controller *FavoritesController) ListFavorites(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.List(c.Request().Context()))
}

// AddFavorite godoc
// @Summary Add a favorite city
// @Description Store a city and country pair; re-adding refreshes its position
// @Tags favorites
// @Accept json
// @Produce json
// @Param request body model.FavoriteCityRequest true "Favorite city"
// @Success 201 {object} map[string]string "Favorite added"
// @Failure 400 {object} map[string]string "Missing city or country"
// @Router /favorites [post]
func (controller *FavoritesController) AddFavorite(c echo.Context) error {
	var request model.FavoriteCityRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	city := strings.TrimSpace(request.City)
	country := strings.TrimSpace(request.Country)
	if city == "" || country == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "city and country are required"})
	}

	controller.useCase.Add(c.Request().Context(), city, country)
	return c.JSON(http.StatusCreated, map[string]string{"message": "Favorite added"})
}

// RemoveFavorite godoc
// @Summary Remove a favorite city
// @Description Remove a city and country pair; removing an absent pair is a no-op
// @Tags favorites
// @Accept json
// @Produce json
// @Param city path string true "City name"
// @Param country path string true "Country name"
// @Success 204 "Favorite removed"
// @Router /favorites/country/{country}/city/{city} [delete]
func (controller *FavoritesController) RemoveFavorite(c echo.Context) error {
	controller.useCase.Remove(c.Request().Context(), c.Param("city"), c.Param("country"))
	return c.NoContent(http.StatusNoContent)
}

// ContainsFavorite godoc
// @Summary Check a favorite city
// @Description Report whether a city and country pair is stored
// @Tags favorites
// @Accept json
// @Produce json
// @Param city path string true "City name"
// @Param country path string true "Country name"
// @Success 200 {object} map[string]bool "Membership flag"
// @Router /favorites/country/{country}/city/{city} [get]
func (controller *FavoritesController) ContainsFavorite(c echo.Context) error {
	contained := controller.useCase.Contains(c.Request().Context(), c.Param("city"), c.Param("country"))
	return c.JSON(http.StatusOK, map[string]bool{"favorite": contained})
}
