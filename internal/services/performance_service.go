package services

import (
	"context"
	"strconv"

	"github.com/arash-p/TeamTrackBack/internal/livefeed"
	"github.com/arash-p/TeamTrackBack/internal/models"
	"github.com/arash-p/TeamTrackBack/internal/repository"
)

type performanceStore interface {
	Create(ctx context.Context, sample *models.PerformanceSample) error
	ListByPlayer(ctx context.Context, playerID int64) ([]models.PerformanceSample, error)
}

type samplePublisher interface {
	Publish(event *livefeed.SampleEvent)
}

type PerformanceService struct {
	samples performanceStore
	feed    samplePublisher
}

func NewPerformanceService(samples *repository.PerformanceRepository, feed *livefeed.Hub) *PerformanceService {
	s := &PerformanceService{samples: samples}
	if feed != nil {
		s.feed = feed
	}
	return s
}

// RecordPerformance persists one row unconditionally, even when every metric
// is null. Samples arrive frequently; the richer picture comes from volume,
// so a single degenerate row is never worth rejecting.
func (s *PerformanceService) RecordPerformance(ctx context.Context, sample models.PerformanceSample) (int64, error) {
	if err := s.samples.Create(ctx, &sample); err != nil {
		return 0, err
	}

	if s.feed != nil && sample.SessionID != nil {
		s.feed.Publish(&livefeed.SampleEvent{
			Type:      "performance",
			SessionID: strconv.FormatInt(*sample.SessionID, 10),
			Sample:    sample,
		})
	}
	return sample.ID, nil
}

func (s *PerformanceService) ListPerformance(ctx context.Context, playerID int64) ([]models.PerformanceSample, error) {
	return s.samples.ListByPlayer(ctx, playerID)
}
