package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-dash/internal/domain/model"
	"weather-dash/internal/domain/state"
)

const (
	minRefreshRateMinutes = 1
	maxRefreshRateMinutes = 1440
)

type SettingsController struct {
	api   *echo.Group
	store *state.Store
}

func NewSettingsController(api *echo.Group, store *state.Store) *SettingsController {
	return &SettingsController{api: api, store: store}
}

// InitSettingsRoutes initializes settings routes
func (controller *SettingsController) InitSettingsRoutes() {
	controller.api.GET("/settings", controller.GetSettings)
	controller.api.POST("/settings/unit/toggle", controller.ToggleUnit)
	controller.api.PUT("/settings/display-mode", controller.ChangeDisplayMode)
	controller.api.PUT("/settings/refresh-rate", controller.ChangeRefreshRate)
	controller.api.DELETE("/settings/error", controller.ClearError)
}

// GetSettings godoc
// @Summary Get current settings
// @Description Retrieve the current unit system, refresh rate and display mode
// @Tags settings
// @Accept json
// @Produce json
// @Success 200 {object} model.Settings "Current settings"
// @Router /settings [get]
func (controller *SettingsController) GetSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.store.GetState().Settings())
}

// ToggleUnit godoc
// @Summary Toggle the unit system
// @Description Switch between metric and imperial units
// @Tags settings
// @Accept json
// @Produce json
// @Success 200 {object} model.Settings "Settings after the toggle"
// @Router /settings/unit/toggle [post]
func (controller *SettingsController) ToggleUnit(c echo.Context) error {
	controller.store.Dispatch(state.ToggleUnitAction())
	return c.JSON(http.StatusOK, controller.store.GetState().Settings())
}

// ChangeDisplayMode godoc
// @Summary Change the display mode
// @Description Switch between the detailed and compact dashboard views
// @Tags settings
// @Accept json
// @Produce json
// @Param request body model.ChangeDisplayModeRequest true "Display mode"
// @Success 200 {object} model.Settings "Settings after the change"
// @Failure 400 {object} map[string]string "Unknown display mode"
// @Router /settings/display-mode [put]
func (controller *SettingsController) ChangeDisplayMode(c echo.Context) error {
	var request model.ChangeDisplayModeRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	mode := model.DisplayMode(request.Mode)
	if mode != model.DisplayDetailed && mode != model.DisplayCompact {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "mode must be detailed or compact"})
	}

	controller.store.Dispatch(state.ChangeDisplayModeAction(mode))
	return c.JSON(http.StatusOK, controller.store.GetState().Settings())
}

// ChangeRefreshRate godoc
// @Summary Change the refresh rate
// @Description Set the automatic refresh interval in minutes
// @Tags settings
// @Accept json
// @Produce json
// @Param request body model.ChangeRefreshRateRequest true "Refresh rate"
// @Success 200 {object} model.Settings "Settings after the change"
// @Failure 400 {object} map[string]string "Refresh rate out of range"
// @Router /settings/refresh-rate [put]
func (controller *SettingsController) ChangeRefreshRate(c echo.Context) error {
	var request model.ChangeRefreshRateRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if request.Minutes < minRefreshRateMinutes || request.Minutes > maxRefreshRateMinutes {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "minutes must be between 1 and 1440"})
	}

	controller.store.Dispatch(state.ChangeRefreshRateAction(request.Minutes))
	return c.JSON(http.StatusOK, controller.store.GetState().Settings())
}

// ClearError godoc
// @Summary Clear the error message
// @Description Dismiss the current dashboard error message
// @Tags settings
// @Accept json
// @Produce json
// @Success 204 "Error cleared"
// @Router /settings/error [delete]
func (controller *SettingsController) ClearError(c echo.Context) error {
	controller.store.Dispatch(state.ClearErrorAction())
	return c.NoContent(http.StatusNoContent)
}
