package repository

import (
	"context"

	"github.com/arash-p/TeamTrackBack/internal/models"
)

type SurveyRepository struct {
	db DBTX
}

func NewSurveyRepository(db DBTX) *SurveyRepository {
	return &SurveyRepository{db: db}
}

func (r *SurveyRepository) Create(ctx context.Context, entry *models.SurveyEntry) error {
	query := `
		INSERT INTO survey (player_id, session_id, response)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.db.QueryRow(
		ctx,
		query,
		entry.PlayerID,
		entry.SessionID,
		entry.Response,
	).Scan(&entry.ID, &entry.CreatedAt)
}

func (r *SurveyRepository) ListBySession(ctx context.Context, sessionID int64) ([]models.SurveyEntry, error) {
	query := `
		SELECT id, player_id, session_id, response, created_at
		FROM survey
		WHERE session_id = $1
		ORDER BY id ASC
	`
	rows, err := r.db.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.SurveyEntry, 0)
	for rows.Next() {
		var entry models.SurveyEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.PlayerID,
			&entry.SessionID,
			&entry.Response,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
