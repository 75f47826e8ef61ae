package cron

import (
	"context"
	"fmt"
	"time"

	"hospital/config"
	"hospital/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeCompletePastAppointments = "appointments:complete-past"

// Housekeeper closes out appointments whose day has passed.
type Housekeeper interface {
	CompletePastAppointments(ctx context.Context) (int64, error)
}

func redisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// NewCompletePastTask builds the periodic housekeeping task.
func NewCompletePastTask() *asynq.Task {
	return asynq.NewTask(TypeCompletePastAppointments, nil, asynq.MaxRetry(3), asynq.Timeout(time.Minute))
}

// InitHousekeepingWorker starts the asynq worker and the scheduler that enqueues
// the housekeeping task on HOUSEKEEPING_CRON. The returned func stops both.
func InitHousekeepingWorker(h Housekeeper) (func(), error) {
	logger := utils.GetLogger()
	opt := redisOpt()

	srv := asynq.NewServer(opt, asynq.Config{
		Concurrency: 2,
		Queues: map[string]int{
			"default": 1,
		},
		Logger: logger.Sugar(),
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCompletePastAppointments, handleCompletePastTask(h))

	scheduler := asynq.NewScheduler(opt, &asynq.SchedulerOpts{
		Location: time.UTC,
		Logger:   logger.Sugar(),
	})
	entryID, err := scheduler.Register(config.AppConfig.HousekeepingCron, NewCompletePastTask())
	if err != nil {
		return nil, fmt.Errorf("failed to register housekeeping schedule %q: %w", config.AppConfig.HousekeepingCron, err)
	}
	logger.Info("Housekeeping scheduled", zap.String("entryID", entryID), zap.String("cron", config.AppConfig.HousekeepingCron))

	const maxAttempts = 5
	for attempts := 1; ; attempts++ {
		err := srv.Start(mux)
		if err == nil {
			break
		}
		logger.Warn("Housekeeping worker failed to start", zap.Int("attempt", attempts), zap.Error(err))
		if attempts == maxAttempts {
			return nil, fmt.Errorf("housekeeping worker did not start after %d attempts: %w", maxAttempts, err)
		}
		time.Sleep(time.Duration(attempts*2) * time.Second)
	}

	if err := scheduler.Start(); err != nil {
		srv.Shutdown()
		return nil, fmt.Errorf("failed to start housekeeping scheduler: %w", err)
	}

	return func() {
		scheduler.Shutdown()
		srv.Shutdown()
	}, nil
}

func handleCompletePastTask(h Housekeeper) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		n, err := h.CompletePastAppointments(ctx)
		if err != nil {
			utils.GetLogger().Error("Housekeeping failed", zap.String("task", task.Type()), zap.Error(err))
			return err
		}
		utils.GetLogger().Debug("Housekeeping done", zap.Int64("completed", n))
		return nil
	}
}
