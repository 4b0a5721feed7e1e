package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"weather-dash/internal/domain/state"
	"weather-dash/internal/domain/usecase/weather"
	"weather-dash/pkg/debounce"
	"weather-dash/pkg/log"
)

// rearmQuietPeriod coalesces bursts of refresh-rate changes into one rearm.
const rearmQuietPeriod = 500 * time.Millisecond

// RefreshScheduler periodically reloads the selected city. The interval
// follows the refresh rate held in the store and the job is rearmed whenever
// that rate changes.
type RefreshScheduler struct {
	scheduler gocron.Scheduler
	useCase   weather.UseCase
	store     *state.Store
	debouncer *debounce.Debouncer

	mu     sync.Mutex
	jobID  uuid.UUID
	unbind func()
}

func NewRefreshScheduler(useCase weather.UseCase, store *state.Store) (*RefreshScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	return &RefreshScheduler{
		scheduler: scheduler,
		useCase:   useCase,
		store:     store,
		debouncer: debounce.New(rearmQuietPeriod),
	}, nil
}

// InitRefreshScheduleTasks arms the periodic refresh at the current rate and
// subscribes to the store so that refresh-rate changes rearm the job.
func (s *RefreshScheduler) InitRefreshScheduleTasks() error {
	minutes := s.store.GetState().RefreshRateMinutes

	job, err := s.scheduler.NewJob(
		gocron.DurationJob(time.Duration(minutes)*time.Minute),
		gocron.NewTask(s.ExecuteScheduledRefresh),
	)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.jobID = job.ID()
	s.mu.Unlock()

	s.unbind = s.store.Subscribe(func(previous, current state.ApplicationState) {
		if current.RefreshRateMinutes == previous.RefreshRateMinutes {
			return
		}
		rate := current.RefreshRateMinutes
		s.debouncer.Do(func() {
			s.rearm(rate)
		})
	})

	s.scheduler.Start()
	log.Infof("Refresh scheduler started with a %d minute interval", minutes)
	return nil
}

// ExecuteScheduledRefresh reloads the currently selected city
func (s *RefreshScheduler) ExecuteScheduledRefresh() {
	requestID := uuid.New().String()
	log.Info("Scheduled refresh triggered", zap.String("request_id", requestID))
	s.useCase.Refresh(context.Background())
}

func (s *RefreshScheduler) rearm(minutes int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, err := s.scheduler.Update(
		s.jobID,
		gocron.DurationJob(time.Duration(minutes)*time.Minute),
		gocron.NewTask(s.ExecuteScheduledRefresh),
	)
	if err != nil {
		log.Errorf("Failed to rearm refresh scheduler: %v", err)
		return
	}
	s.jobID = job.ID()
	log.Infof("Refresh scheduler rearmed to a %d minute interval", minutes)
}

// Stop gracefully stops the scheduler
func (s *RefreshScheduler) Stop() {
	if s.unbind != nil {
		s.unbind()
	}
	s.debouncer.Stop()
	if err := s.scheduler.Shutdown(); err != nil {
		log.Errorf("Failed to shut down refresh scheduler: %v", err)
	}
}
