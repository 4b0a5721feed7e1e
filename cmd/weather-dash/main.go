package main

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	_ "weather-dash/configs"
	"weather-dash/internal/application/controller"
	"weather-dash/internal/application/middleware"
	"weather-dash/internal/application/schedule"
	apigw "weather-dash/internal/domain/gateway/api"
	"weather-dash/internal/domain/gateway/cache"
	"weather-dash/internal/domain/gateway/db"
	"weather-dash/internal/domain/gateway/position"
	"weather-dash/internal/domain/state"
	"weather-dash/internal/domain/usecase/cityref"
	"weather-dash/internal/domain/usecase/favorites"
	"weather-dash/internal/domain/usecase/health"
	"weather-dash/internal/domain/usecase/locate"
	"weather-dash/internal/domain/usecase/weather"
	gormdb "weather-dash/internal/infra/database/gorm"
	httpclient "weather-dash/pkg/http"
	"weather-dash/pkg/log"
	"weather-dash/pkg/msg"
	"weather-dash/pkg/redis"
	"weather-dash/pkg/resource"
)

const cityRefCacheName = "city-ref"

func main() {
	log.Info(msg.GetMessage("app.start"))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)
	api := e.Group(resource.GetString("app.server.context-path"))

	dbPath := resource.GetString("app.db.path")
	gormDB, err := gormdb.Open(dbPath)
	if err != nil {
		log.Fatalf(msg.GetMessage("db.error.open-failed", err))
	}

	redisClient, cityRefCache := connectRedis()

	// Init Gateways
	apiKey := resource.GetString("app.openweather.api-key")
	owBaseURL := resource.GetString("app.openweather.base-url")
	owOptions := httpclient.ClientOptions{
		ReadTimeout:       resource.GetDuration("app.openweather.timeout"),
		ConnectionTimeout: resource.GetDuration("app.openweather.timeout"),
	}

	throttle := apigw.NewThrottle(resource.GetDuration("app.openweather.throttle-cooldown"))
	forecastGateway := apigw.NewForecastGateway(owBaseURL, apiKey, throttle, owOptions)
	geocodingGateway := apigw.NewGeocodingGateway(owBaseURL, apiKey, owOptions)
	cityRefGateway := apigw.NewCityRefGateway(
		resource.GetString("app.geodb.base-url"),
		resource.GetString("app.geodb.host"),
		resource.GetString("app.geodb.api-key"),
		resource.GetInt("app.geodb.min-population"),
		httpclient.ClientOptions{},
	)
	ipSource := position.NewIPSource(resource.GetString("app.ip-lookup.base-url"), position.IPSourceOptions{
		Timeout: resource.GetDuration("app.ip-lookup.timeout"),
		MaxAge:  resource.GetDuration("app.ip-lookup.max-age"),
	})
	favoritesGateway, err := db.NewGormFavoritesGateway(gormDB)
	if err != nil {
		log.Fatalf(msg.GetMessage("db.error.open-failed", err))
	}

	// Init UseCase
	store := state.NewStore()
	locateUseCase := locate.NewLocateUseCase(ipSource, geocodingGateway, resource.GetDuration("app.locate.timeout"))
	weatherUseCase := weather.NewWeatherUseCase(store, forecastGateway, locateUseCase, apiKey)
	unbind := weatherUseCase.BindCityChanges()
	defer unbind()
	favoritesUseCase := favorites.NewFavoritesUseCase(favoritesGateway)
	cityRefUseCase := cityref.NewCityRefUseCase(cityRefGateway, cityRefCache, resource.GetDuration("app.search.debounce"))
	healthUseCase := health.NewHealthUseCase(
		db.NewGormHealthDBGateway(gormDB, dbPath),
		cache.NewRedisHealthGateway(redisClient),
	)

	// Init Controller
	weatherController := controller.NewWeatherController(api, weatherUseCase, store)
	settingsController := controller.NewSettingsController(api, store)
	favoritesController := controller.NewFavoritesController(api, favoritesUseCase)
	searchController := controller.NewSearchController(api, cityRefUseCase)
	healthController := controller.NewHealthController(api, healthUseCase)

	// Init Routes
	weatherController.InitWeatherRoutes()
	settingsController.InitSettingsRoutes()
	favoritesController.InitFavoritesRoutes()
	searchController.InitSearchRoutes()
	healthController.InitHealthRoutes()

	// Init Schedule
	refreshScheduler, err := schedule.NewRefreshScheduler(weatherUseCase, store)
	if err != nil {
		log.Fatalf("Failed to create refresh scheduler: %v", err)
	}
	if err := refreshScheduler.InitRefreshScheduleTasks(); err != nil {
		log.Fatalf("Failed to start refresh scheduler: %v", err)
	}
	cityRefScheduler := schedule.NewCityRefScheduler(cityRefUseCase)
	cityRefScheduler.InitCityRefScheduleTasks()

	// Start Routes
	log.Info(msg.GetMessage("app.started"))
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
}

// connectRedis builds the cache client. Redis is optional, a failed
// connection logs a warning and the application runs without it.
func connectRedis() (*redis.Client, *redis.Cache) {
	if !resource.GetBool("app.redis.enabled") {
		return nil, nil
	}

	config := redis.DefaultConfig()
	config.Host = resource.GetString("app.redis.host")
	config.Port = resource.GetInt("app.redis.port")
	config.Password = resource.GetString("app.redis.password")
	config.WithCacheTTL(cityRefCacheName, resource.GetDuration("app.redis.city-ref-ttl"))

	client, err := redis.NewClient(config)
	if err != nil {
		log.Warnf(msg.GetMessage("redis.error.connect-failed", err))
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx); err != nil {
		log.Warnf(msg.GetMessage("redis.error.connect-failed", err))
		return nil, nil
	}

	return client, redis.NewCache(client, redis.NewCacheOptions().WithCacheName(cityRefCacheName))
}
