package repository

import (
	"context"

	"github.com/arash-p/TeamTrackBack/internal/models"
)

type PerformanceRepository struct {
	db DBTX
}

func NewPerformanceRepository(db DBTX) *PerformanceRepository {
	return &PerformanceRepository{db: db}
}

const performanceColumns = "id, player_id, session_id, distance_meters, speed, acceleration, deceleration, cadence_spm, heart_rate, recorded_at"

func (r *PerformanceRepository) Create(ctx context.Context, sample *models.PerformanceSample) error {
	query := `
		INSERT INTO performance (player_id, session_id, distance_meters, speed, acceleration, deceleration, cadence_spm, heart_rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, recorded_at
	`
	return r.db.QueryRow(
		ctx,
		query,
		sample.PlayerID,
		sample.SessionID,
		sample.DistanceMeters,
		sample.Speed,
		sample.Acceleration,
		sample.Deceleration,
		sample.CadenceSPM,
		sample.HeartRate,
	).Scan(&sample.ID, &sample.RecordedAt)
}

func (r *PerformanceRepository) ListByPlayer(ctx context.Context, playerID int64) ([]models.PerformanceSample, error) {
	query := `
		SELECT ` + performanceColumns + `
		FROM performance
		WHERE player_id = $1
		ORDER BY id ASC
	`
	return r.list(ctx, query, playerID)
}

func (r *PerformanceRepository) ListBySession(ctx context.Context, sessionID int64) ([]models.PerformanceSample, error) {
	query := `
		SELECT ` + performanceColumns + `
		FROM performance
		WHERE session_id = $1
		ORDER BY id ASC
	`
	return r.list(ctx, query, sessionID)
}

func (r *PerformanceRepository) list(ctx context.Context, query string, args ...any) ([]models.PerformanceSample, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	samples := make([]models.PerformanceSample, 0)
	for rows.Next() {
		var sample models.PerformanceSample
		if err := rows.Scan(
			&sample.ID,
			&sample.PlayerID,
			&sample.SessionID,
			&sample.DistanceMeters,
			&sample.Speed,
			&sample.Acceleration,
			&sample.Deceleration,
			&sample.CadenceSPM,
			&sample.HeartRate,
			&sample.RecordedAt,
		); err != nil {
			return nil, err
		}
		samples = append(samples, sample)
	}
	return samples, rows.Err()
}
