package services

import (
	"context"

	"github.com/arash-p/TeamTrackBack/internal/models"
	"github.com/arash-p/TeamTrackBack/internal/repository"
	"github.com/arash-p/TeamTrackBack/pkg/normalize"
)

type sessionStore interface {
	Create(ctx context.Context, input repository.CreateSessionInput) (int64, error)
	GetByID(ctx context.Context, sessionID int64) (*models.Session, error)
	List(ctx context.Context) ([]models.Session, error)
}

type SessionService struct {
	sessions sessionStore
}

func NewSessionService(sessions *repository.SessionRepository) *SessionService {
	return &SessionService{sessions: sessions}
}

// SessionInput accepts both request shapes at once: canonical fields as the
// backend stores them, and the UI-shaped aliases the mobile forms send.
// Canonical fields win whenever present.
type SessionInput struct {
	Title       *string
	Description *string
	CoachID     *int64
	StartTime   *string
	EndTime     *string
	SessionType *string
	Location    *string

	SessionName    *string
	Name           *string
	SessionTypeAlt *string
	TypeAlt        *string
	Date           *string
	StartClock     *string
	EndClock       *string
	Notes          *string
}

// CreateSession normalizes the input and persists one row. A missing or
// unparseable date/time stores null rather than rejecting the request.
func (s *SessionService) CreateSession(ctx context.Context, input SessionInput) (int64, error) {
	startTime, endTime := resolveTimes(input)

	return s.sessions.Create(ctx, repository.CreateSessionInput{
		Title:       resolveTitle(input),
		Description: resolveDescription(input),
		CoachID:     input.CoachID,
		StartTime:   startTime,
		EndTime:     endTime,
		SessionType: resolveSessionType(input),
		Location:    input.Location,
	})
}

func (s *SessionService) ListSessions(ctx context.Context) ([]models.Session, error) {
	return s.sessions.List(ctx)
}

func (s *SessionService) GetSession(ctx context.Context, sessionID int64) (*models.Session, error) {
	return s.sessions.GetByID(ctx, sessionID)
}

func resolveTitle(input SessionInput) string {
	for _, candidate := range []*string{input.Title, input.SessionName, input.Name} {
		if candidate != nil && *candidate != "" {
			return *candidate
		}
	}
	return models.DefaultSessionTitle
}

func resolveDescription(input SessionInput) *string {
	for _, candidate := range []*string{input.Description, input.Notes} {
		if candidate != nil && *candidate != "" {
			return candidate
		}
	}
	return nil
}

func resolveSessionType(input SessionInput) *string {
	for _, candidate := range []*string{input.SessionType, input.SessionTypeAlt, input.TypeAlt} {
		if candidate != nil && *candidate != "" {
			return candidate
		}
	}
	return nil
}

func resolveTimes(input SessionInput) (*string, *string) {
	startTime := input.StartTime
	endTime := input.EndTime
	if startTime != nil && endTime != nil {
		return startTime, endTime
	}

	var date string
	if input.Date != nil {
		if normalized := normalize.NormalizeDate(*input.Date); normalized != nil {
			date = *normalized
		}
	}
	if startTime == nil && input.StartClock != nil {
		startTime = normalize.CombineDateAndTime(date, *input.StartClock)
	}
	if endTime == nil && input.EndClock != nil {
		endTime = normalize.CombineDateAndTime(date, *input.EndClock)
	}
	return startTime, endTime
}
