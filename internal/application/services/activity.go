package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"tienda-admin/internal/application/ports"
	"tienda-admin/internal/domain/activity"
	"tienda-admin/internal/domain/user"
	"tienda-admin/internal/infrastructure/metrics"
)

type ActivityService struct {
	activityRepository activity.Repository
	logger             *zap.Logger
	mCounter           *prometheus.CounterVec
}

func NewActivityService(
	activityRepository activity.Repository,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) ports.ActivityService {
	return &ActivityService{
		activityRepository: activityRepository,
		logger:             logger,
		mCounter:           mCounter,
	}
}

func (as *ActivityService) Record(ctx context.Context, userID user.ID, action activity.Action, description string) {
	err := as.activityRepository.InsertRecord(ctx, activity.Record{
		UserID:      userID,
		Action:      action,
		Description: description,
	})
	if err != nil {
		as.mCounter.WithLabelValues(metrics.ActivityRecordFailed).Inc()
		as.logger.Warn("activity not recorded",
			zap.Error(err),
			zap.Int64("user_id", int64(userID)),
			zap.String("action", string(action)),
		)
		return
	}

	as.mCounter.WithLabelValues(metrics.ActivityRecorded).Inc()
}

func (as *ActivityService) FindRecent(ctx context.Context) (activity.Entries, error) {
	return as.activityRepository.FetchRecent(ctx, activity.RecentLimit)
}
