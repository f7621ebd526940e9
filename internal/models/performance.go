package models

import "time"

type PerformanceSample struct {
	ID             int64     `json:"id"`
	PlayerID       *int64    `json:"player_id"`
	SessionID      *int64    `json:"session_id"`
	DistanceMeters *float64  `json:"distance_meters"`
	Speed          *float64  `json:"speed"`
	Acceleration   *float64  `json:"acceleration"`
	Deceleration   *float64  `json:"deceleration"`
	CadenceSPM     *float64  `json:"cadence_spm"`
	HeartRate      *float64  `json:"heart_rate"`
	RecordedAt     time.Time `json:"recorded_at"`
}
