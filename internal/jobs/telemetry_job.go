package jobs

import (
	"context"
	"log/slog"

	"butler/internal/core/application/missionctl"
	"butler/internal/core/domain/model/mission"

	"github.com/robfig/cron/v3"
)

// StatusProvider exposes the live mission snapshot for telemetry.
type StatusProvider interface {
	Status() missionctl.Snapshot
}

// TelemetryJob logs the robot's mission state and pose every second while a
// mission is active, giving operators a trace of the robot's route.
type TelemetryJob struct {
	provider StatusProvider
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewTelemetryJob creates a new job for mission telemetry.
func NewTelemetryJob(provider StatusProvider, logger *slog.Logger) *TelemetryJob {
	return &TelemetryJob{
		provider: provider,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "telemetry_job"),
	}
}

// Start begins the telemetry job to run every second.
func (j *TelemetryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		s := j.provider.Status()
		if s.State == mission.Idle {
			return
		}

		j.logger.InfoContext(context.Background(), "mission telemetry",
			"state", s.State.String(),
			"goal", s.Goal,
			"x", s.X,
			"y", s.Y,
			"pending", len(s.Queue.PendingTables),
			"current", s.Queue.CurrentTable,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Telemetry job started (running every second)")
	return nil
}

// Stop stops the telemetry job.
func (j *TelemetryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Telemetry job stopped")
}
