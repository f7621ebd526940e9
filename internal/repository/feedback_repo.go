package repository

import (
	"context"

	"github.com/arash-p/TeamTrackBack/internal/models"
)

type FeedbackRepository struct {
	db DBTX
}

func NewFeedbackRepository(db DBTX) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) Create(ctx context.Context, entry *models.Feedback) error {
	query := `
		INSERT INTO feedback (coach_id, player_id, session_id, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return r.db.QueryRow(
		ctx,
		query,
		entry.CoachID,
		entry.PlayerID,
		entry.SessionID,
		entry.Notes,
	).Scan(&entry.ID, &entry.CreatedAt)
}

func (r *FeedbackRepository) ListByPlayer(ctx context.Context, playerID int64) ([]models.Feedback, error) {
	query := `
		SELECT id, coach_id, player_id, session_id, notes, created_at
		FROM feedback
		WHERE player_id = $1
		ORDER BY id ASC
	`
	rows, err := r.db.Query(ctx, query, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.Feedback, 0)
	for rows.Next() {
		var entry models.Feedback
		if err := rows.Scan(
			&entry.ID,
			&entry.CoachID,
			&entry.PlayerID,
			&entry.SessionID,
			&entry.Notes,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// ListBySessionWithCoach joins the issuing coach's username for display. The
// username lives only on the users table; this is a read-side denormalization.
func (r *FeedbackRepository) ListBySessionWithCoach(ctx context.Context, sessionID int64) ([]models.FeedbackWithCoach, error) {
	query := `
		SELECT f.id, f.coach_id, f.player_id, f.session_id, f.notes, f.created_at, u.username
		FROM feedback f
		LEFT JOIN users u ON u.id = f.coach_id
		WHERE f.session_id = $1
		ORDER BY f.id ASC
	`
	rows, err := r.db.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.FeedbackWithCoach, 0)
	for rows.Next() {
		var entry models.FeedbackWithCoach
		if err := rows.Scan(
			&entry.ID,
			&entry.CoachID,
			&entry.PlayerID,
			&entry.SessionID,
			&entry.Notes,
			&entry.CreatedAt,
			&entry.CoachUsername,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
