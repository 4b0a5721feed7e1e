package controller

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"weather-dash/internal/domain/model"
	"weather-dash/internal/domain/state"
	"weather-dash/internal/domain/usecase/weather"
	"weather-dash/pkg/util/numberutils"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
	store   *state.Store
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase, store *state.Store) *WeatherController {
	return &WeatherController{api: api, useCase: useCase, store: store}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/dashboard", controller.GetDashboard)
	controller.api.GET("/weather/coordinates", controller.LoadByCoordinates)
	controller.api.PUT("/weather/city", controller.ChangeCity)
	controller.api.POST("/weather/refresh", controller.Refresh)
	controller.api.POST("/weather/location/detect", controller.DetectLocation)
}

// GetDashboard godoc
// @Summary Get the dashboard view
// @Description Retrieve the current state with forecast projections and in-flight flags
// @Tags weather
// @Accept json
// @Produce json
// @Success 200 {object} model.DashboardResponse "Current dashboard view"
// @Router /dashboard [get]
func (controller *WeatherController) GetDashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.dashboard())
}

// LoadByCoordinates godoc
// @Summary Load weather for coordinates
// @Description Fetch the forecast for the given coordinates and return the resulting dashboard view
// @Tags weather
// @Accept json
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} model.DashboardResponse "Dashboard view after the fetch"
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Router /weather/coordinates [get]
func (controller *WeatherController) LoadByCoordinates(c echo.Context) error {
	lat, err := numberutils.ToFloat64WithError(c.QueryParam("lat"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "lat must be a number"})
	}
	lon, err := numberutils.ToFloat64WithError(c.QueryParam("lon"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "lon must be a number"})
	}

	settings := controller.store.GetState().Settings()
	controller.useCase.LoadWeatherData(c.Request().Context(), model.CoordinatesQuery(model.Coordinates{Lat: lat, Lon: lon}), settings)

	return c.JSON(http.StatusOK, controller.dashboard())
}

// ChangeCity godoc
// @Summary Change the selected city
// @Description Select a new city; the change triggers a forecast reload through the city-change binding
// @Tags weather
// @Accept json
// @Produce json
// @Param request body model.ChangeCityRequest true "City selection"
// @Success 202 {object} map[string]string "City change accepted"
// @Failure 400 {object} map[string]string "Missing city name"
// @Router /weather/city [put]
func (controller *WeatherController) ChangeCity(c echo.Context) error {
	var request model.ChangeCityRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	city := strings.TrimSpace(request.City)
	if city == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "city is required"})
	}

	controller.store.Dispatch(state.ChangeCityAction(city))
	return c.JSON(http.StatusAccepted, map[string]string{"message": "City change accepted"})
}

// Refresh godoc
// @Summary Refresh the selected city
// @Description Reload the forecast for the currently selected city
// @Tags weather
// @Accept json
// @Produce json
// @Success 202 {object} map[string]string "Refresh scheduled"
// @Router /weather/refresh [post]
func (controller *WeatherController) Refresh(c echo.Context) error {
	// Execute in a separate goroutine to avoid blocking the request
	go func() {
		controller.useCase.Refresh(context.Background())
	}()

	return c.JSON(http.StatusAccepted, map[string]string{"message": "Refresh scheduled"})
}

// DetectLocation godoc
// @Summary Detect the user location
// @Description Resolve the current position and load weather for it
// @Tags weather
// @Accept json
// @Produce json
// @Success 202 {object} map[string]string "Location detection started"
// @Router /weather/location/detect [post]
func (controller *WeatherController) DetectLocation(c echo.Context) error {
	go func() {
		controller.useCase.DetectUserLocation(context.Background())
	}()

	return c.JSON(http.StatusAccepted, map[string]string{"message": "Location detection started"})
}

func (controller *WeatherController) dashboard() model.DashboardResponse {
	current := controller.store.GetState()

	response := model.DashboardResponse{
		SelectedCity:      current.SelectedCity,
		Weather:           current.WeatherData,
		Hourly:            controller.useCase.HourlyForecast(),
		Daily:             controller.useCase.DailyForecast(),
		Settings:          current.Settings(),
		Loading:           controller.useCase.IsLoading(),
		DetectingLocation: controller.useCase.IsDetectingLocation(),
		ErrorMessage:      current.ErrorMessage,
	}

	if updated, ok := controller.useCase.LastUpdated(); ok {
		response.LastUpdatedRFC3339 = updated.Format(time.RFC3339)
	}
	return response
}
