package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/arash-p/TeamTrackBack/internal/models"
	"github.com/arash-p/TeamTrackBack/internal/repository"
)

type sessionReader interface {
	GetByID(ctx context.Context, sessionID int64) (*models.Session, error)
}

type sessionSampleReader interface {
	ListBySession(ctx context.Context, sessionID int64) ([]models.PerformanceSample, error)
}

type sessionFeedbackReader interface {
	ListBySessionWithCoach(ctx context.Context, sessionID int64) ([]models.FeedbackWithCoach, error)
}

type sessionSurveyReader interface {
	ListBySession(ctx context.Context, sessionID int64) ([]models.SurveyEntry, error)
}

type ReportService struct {
	sessions     sessionReader
	performances sessionSampleReader
	feedback     sessionFeedbackReader
	surveys      sessionSurveyReader
}

func NewReportService(
	sessions *repository.SessionRepository,
	performances *repository.PerformanceRepository,
	feedback *repository.FeedbackRepository,
	surveys *repository.SurveyRepository,
) *ReportService {
	return &ReportService{
		sessions:     sessions,
		performances: performances,
		feedback:     feedback,
		surveys:      surveys,
	}
}

// GetReport performs four reads scoped to one session and assembles them into
// a single document. A missing session yields session: null with the three
// lists still computed (and empty) rather than a not-found error; clients
// depend on that shape. The four reads are not a consistent snapshot: a
// sample inserted between reads is legitimate staleness, not a bug.
func (s *ReportService) GetReport(ctx context.Context, sessionID int64) (*models.Report, error) {
	report := &models.Report{}

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	report.Session = session

	if report.Performances, err = s.performances.ListBySession(ctx, sessionID); err != nil {
		return nil, err
	}
	if report.Feedback, err = s.feedback.ListBySessionWithCoach(ctx, sessionID); err != nil {
		return nil, err
	}
	if report.Survey, err = s.surveys.ListBySession(ctx, sessionID); err != nil {
		return nil, err
	}
	return report, nil
}
