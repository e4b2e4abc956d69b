package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/GTDGit/seller_hub/internal/marketplace"
)

// OrderSyncer imports marketplace orders.
type OrderSyncer interface {
	SyncOrders(ctx context.Context) (marketplace.SyncResult, error)
}

// SyncWorker imports marketplace orders on a cron schedule.
type SyncWorker struct {
	syncer   OrderSyncer
	schedule string
	sched    cron.Schedule
	timeout  time.Duration
	cron     *cron.Cron
}

// NewSyncWorker constructs a SyncWorker. schedule is a cron expression with a
// leading seconds field; each run is bounded by timeout.
func NewSyncWorker(syncer OrderSyncer, schedule string, timeout time.Duration) (*SyncWorker, error) {
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	sched, err := parser.Parse(schedule)
	if err != nil {
		return nil, fmt.Errorf("invalid sync schedule %q: %w", schedule, err)
	}

	w := &SyncWorker{
		syncer:   syncer,
		schedule: schedule,
		sched:    sched,
		timeout:  timeout,
	}
	w.cron = cron.New(
		cron.WithParser(parser),
		cron.WithLogger(cronLogger{}),
		cron.WithChain(cron.Recover(cronLogger{}), cron.SkipIfStillRunning(cronLogger{})),
	)
	return w, nil
}

// Start runs the schedule until ctx is canceled, then waits for a running sync to finish.
func (w *SyncWorker) Start(ctx context.Context) {
	w.cron.Schedule(w.sched, cron.FuncJob(func() { w.run(ctx) }))

	log.Info().Str("schedule", w.schedule).Msg("Starting order sync worker")
	w.cron.Start()

	<-ctx.Done()
	<-w.cron.Stop().Done()
	log.Info().Msg("Order sync worker stopped")
}

func (w *SyncWorker) run(ctx context.Context) {
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	start := time.Now()
	res, err := w.syncer.SyncOrders(ctx)
	if err != nil {
		log.Error().Err(err).Bool("transient", marketplace.IsTransient(err)).Msg("Order sync failed")
		return
	}

	log.Info().
		Int("imported", res.ImportedCount).
		Dur("duration", time.Since(start)).
		Msg("Order sync completed")
}

// cronLogger routes cron's own logging to zerolog.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	log.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	log.Error().Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}
