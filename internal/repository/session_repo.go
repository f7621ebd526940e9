package repository

import (
	"context"

	"github.com/arash-p/TeamTrackBack/internal/models"
)

type CreateSessionInput struct {
	Title       string
	Description *string
	CoachID     *int64
	StartTime   *string
	EndTime     *string
	SessionType *string
	Location    *string
}

type SessionRepository struct {
	db DBTX
}

func NewSessionRepository(db DBTX) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, input CreateSessionInput) (int64, error) {
	query := `
		INSERT INTO sessions (title, description, coach_id, start_time, end_time, session_type, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(
		ctx,
		query,
		input.Title,
		input.Description,
		input.CoachID,
		input.StartTime,
		input.EndTime,
		input.SessionType,
		input.Location,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *SessionRepository) GetByID(ctx context.Context, sessionID int64) (*models.Session, error) {
	query := `
		SELECT id, title, description, coach_id, start_time, end_time, session_type, location, created_at
		FROM sessions
		WHERE id = $1
	`
	var session models.Session
	err := r.db.QueryRow(ctx, query, sessionID).Scan(
		&session.ID,
		&session.Title,
		&session.Description,
		&session.CoachID,
		&session.StartTime,
		&session.EndTime,
		&session.SessionType,
		&session.Location,
		&session.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) List(ctx context.Context) ([]models.Session, error) {
	query := `
		SELECT id, title, description, coach_id, start_time, end_time, session_type, location, created_at
		FROM sessions
		ORDER BY id ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]models.Session, 0)
	for rows.Next() {
		var session models.Session
		if err := rows.Scan(
			&session.ID,
			&session.Title,
			&session.Description,
			&session.CoachID,
			&session.StartTime,
			&session.EndTime,
			&session.SessionType,
			&session.Location,
			&session.CreatedAt,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}
