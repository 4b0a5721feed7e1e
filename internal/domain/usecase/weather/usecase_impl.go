package weather

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"weather-dash/internal/domain/gateway/api"
	"weather-dash/internal/domain/model"
	"weather-dash/internal/domain/state"
	"weather-dash/internal/domain/usecase/locate"
	"weather-dash/pkg/log"
)

const (
	missingKeyMessage = "OpenWeatherMap API key is not configured. Please add your API key to continue."
	loadFailurePrefix = "Failed to load weather data: "
	detectFailureText = "Failed to detect location. Please try searching for a city instead."
	defaultCity       = "New York"
)

type weatherUseCase struct {
	store           *state.Store
	forecastGateway api.ForecastGateway
	locator         locate.UseCase
	apiKey          string

	// requestSeq tags each load cycle; a response whose tag is no longer the
	// latest is discarded instead of overwriting newer state.
	requestSeq atomic.Uint64
	loading    atomic.Int32
	detecting  atomic.Bool

	mu          sync.RWMutex
	hourly      []model.HourlyForecastEntry
	daily       []model.DailyForecastEntry
	lastUpdated time.Time
	hasUpdated  bool
}

// NewWeatherUseCase creates the orchestration use case. An empty apiKey puts
// the dashboard in degraded mode: every load reports a configuration error.
func NewWeatherUseCase(store *state.Store, forecastGateway api.ForecastGateway, locator locate.UseCase, apiKey string) UseCase {
	return &weatherUseCase{
		store:           store,
		forecastGateway: forecastGateway,
		locator:         locator,
		apiKey:          apiKey,
	}
}

// LoadWeatherData runs one load cycle for the location
func (uc *weatherUseCase) LoadWeatherData(ctx context.Context, location model.LocationQuery, settings model.Settings) {
	if location.IsZero() {
		return
	}
	if uc.apiKey == "" {
		uc.store.Dispatch(state.SetErrorAction(missingKeyMessage))
		return
	}

	seq := uc.requestSeq.Add(1)
	requestID := uuid.New().String()

	uc.loading.Add(1)
	defer uc.loading.Add(-1)

	uc.store.Dispatch(state.ClearErrorAction())

	log.Info("Loading weather data",
		zap.String("request_id", requestID),
		zap.String("location", location.Describe()),
		zap.String("units", string(settings.Units)))

	data, err := uc.forecastGateway.FetchForecast(ctx, location, settings.Units)

	if uc.requestSeq.Load() != seq {
		// A newer request owns the state now; this response is stale either way.
		log.Warn("Discarding stale weather response",
			zap.String("request_id", requestID),
			zap.String("location", location.Describe()))
		return
	}

	if err != nil {
		log.Error("Failed to load weather data",
			zap.String("request_id", requestID),
			zap.String("location", location.Describe()),
			zap.Error(err))
		uc.store.Dispatch(state.SetErrorAction(loadFailurePrefix + err.Error()))
		return
	}

	snapshot := BuildSnapshot(data)

	uc.mu.Lock()
	uc.hourly = HourlyProjection(data.List)
	uc.daily = DailyProjection(data.List, data.City.Timezone)
	uc.lastUpdated = time.Now()
	uc.hasUpdated = true
	uc.mu.Unlock()

	uc.store.Dispatch(state.FetchWeatherAction(&snapshot))

	log.Info("Weather data loaded",
		zap.String("request_id", requestID),
		zap.String("city", snapshot.City),
		zap.String("country", snapshot.Country))
}

// DetectUserLocation resolves the position and routes it into a load
func (uc *weatherUseCase) DetectUserLocation(ctx context.Context) {
	uc.detecting.Store(true)
	defer uc.detecting.Store(false)

	coords, err := uc.locator.ResolveCurrentLocation(ctx)
	if err != nil {
		log.Warnf("Failed to detect location: %v", err)
		uc.store.Dispatch(state.SetErrorAction(detectFailureText))
		uc.store.Dispatch(state.ChangeCityAction(defaultCity))
		return
	}

	log.Infof("Detected location %.4f, %.4f (%s)", coords.Lat, coords.Lon, coords.CityHint)

	if coords.CityHint != "" && coords.CityHint != locate.FallbackCityHint {
		// The city-change binding triggers the actual fetch.
		uc.store.Dispatch(state.ChangeCityAction(coords.CityHint))
		return
	}

	uc.LoadWeatherData(ctx, model.CoordinatesQuery(coords), uc.store.GetState().Settings())
}

// Refresh reloads the selected city with the current settings
func (uc *weatherUseCase) Refresh(ctx context.Context) {
	current := uc.store.GetState()
	if current.SelectedCity == "" {
		return
	}
	uc.LoadWeatherData(ctx, model.CityQuery(current.SelectedCity), current.Settings())
}

// BindCityChanges reloads weather whenever the selected city transitions
func (uc *weatherUseCase) BindCityChanges() func() {
	return uc.store.Subscribe(func(previous, current state.ApplicationState) {
		if current.SelectedCity == previous.SelectedCity || current.SelectedCity == "" {
			return
		}
		uc.LoadWeatherData(context.Background(), model.CityQuery(current.SelectedCity), current.Settings())
	})
}

func (uc *weatherUseCase) HourlyForecast() []model.HourlyForecastEntry {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	out := make([]model.HourlyForecastEntry, len(uc.hourly))
	copy(out, uc.hourly)
	return out
}

func (uc *weatherUseCase) DailyForecast() []model.DailyForecastEntry {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	out := make([]model.DailyForecastEntry, len(uc.daily))
	copy(out, uc.daily)
	return out
}

func (uc *weatherUseCase) IsLoading() bool {
	return uc.loading.Load() > 0
}

func (uc *weatherUseCase) IsDetectingLocation() bool {
	return uc.detecting.Load()
}

func (uc *weatherUseCase) LastUpdated() (time.Time, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.lastUpdated, uc.hasUpdated
}
