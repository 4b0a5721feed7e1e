package schedule

import (
	"context"

	"github.com/robfig/cron/v3"

	"weather-dash/internal/domain/usecase/cityref"
	"weather-dash/pkg/log"
	"weather-dash/pkg/msg"
	"weather-dash/pkg/resource"
)

// CityRefScheduler refreshes the cached city reference list well before its
// TTL expires, so autocomplete never has to wait on the reference API.
type CityRefScheduler struct {
	cron    *cron.Cron
	useCase cityref.UseCase
}

func NewCityRefScheduler(useCase cityref.UseCase) *CityRefScheduler {
	return &CityRefScheduler{cron: cron.New(), useCase: useCase}
}

// InitCityRefScheduleTasks initializes city reference schedule tasks
func (scheduler *CityRefScheduler) InitCityRefScheduleTasks() {
	_, err := scheduler.cron.AddFunc(resource.GetString("app.city-ref.renew.cron"), scheduler.RenewCityReferenceCache)

	if err != nil {
		panic(err)
	}

	scheduler.cron.Start()
}

// RenewCityReferenceCache refetches the reference list and replaces the cached blob
func (scheduler *CityRefScheduler) RenewCityReferenceCache() {
	log.Info(msg.GetMessage("city-ref.cron.start"))

	err := scheduler.useCase.RenewCache(context.Background())

	if err != nil {
		log.Error(msg.GetMessage("city-ref.error.renew-failed", err))
		return
	}

	log.Info(msg.GetMessage("city-ref.cron.end"))
}

// Stop gracefully stops the scheduler
func (scheduler *CityRefScheduler) Stop() {
	if scheduler.cron != nil {
		ctx := scheduler.cron.Stop()
		<-ctx.Done()
	}
}
