// Package scheduler runs the recurring background jobs of the service.
package scheduler

import (
	"time"

	"github.com/go-co-op/gocron"

	"github.com/lectioapp/lectio/utils"
)

// LeaderboardRefresher rebuilds the cached public ranking snapshot.
type LeaderboardRefresher interface {
	RefreshLeaderboard() error
}

// Scheduler manages scheduled tasks for the application.
type Scheduler struct {
	scheduler *gocron.Scheduler
	refresher LeaderboardRefresher
}

// New creates a scheduler instance.
func New(refresher LeaderboardRefresher) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		refresher: refresher,
	}
}

// Start registers the jobs and begins running them in the background.
// The leaderboard snapshot is warmed immediately and then refreshed every
// five minutes so the public endpoint rarely pays the aggregate query.
func (s *Scheduler) Start() {
	if _, err := s.scheduler.Every(5).Minutes().Do(s.refreshLeaderboard); err != nil {
		utils.Sugar.Errorf("failed to schedule leaderboard refresh: %v", err)
	}
	s.scheduler.StartAsync()
	s.refreshLeaderboard()
}

// Stop terminates all scheduled tasks.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) refreshLeaderboard() {
	if err := s.refresher.RefreshLeaderboard(); err != nil {
		utils.Sugar.Warnf("leaderboard refresh failed: %v", err)
		return
	}
	utils.Sugar.Debug("leaderboard snapshot refreshed")
}
