package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-dash/internal/domain/usecase/cityref"
)

type SearchController struct {
	api     *echo.Group
	useCase cityref.UseCase
}

func NewSearchController(api *echo.Group, useCase cityref.UseCase) *SearchController {
	return &SearchController{api: api, useCase: useCase}
}

// InitSearchRoutes initializes city search routes
func (controller *SearchController) InitSearchRoutes() {
	controller.api.GET("/search/cities", controller.SuggestCities)
}

// SuggestCities godoc
// @Summary Suggest cities
// @Description Return up to 8 reference cities matching the given prefix
// @Tags search
// @Accept json
// @Produce json
// @Param prefix query string true "City name prefix"
// @Success 200 {array} model.CitySuggestion "Matching cities"
// @Failure 500 {object} map[string]string "Reference list unavailable"
// @Router /search/cities [get]
func (controller *SearchController) SuggestCities(c echo.Context) error {
	suggestions, err := controller.useCase.Suggest(c.Request().Context(), c.QueryParam("prefix"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, suggestions)
}
