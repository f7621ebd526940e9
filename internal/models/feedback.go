package models

import "time"

type Feedback struct {
	ID        int64     `json:"id"`
	CoachID   *int64    `json:"coach_id"`
	PlayerID  *int64    `json:"player_id"`
	SessionID *int64    `json:"session_id"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedbackWithCoach carries the issuing coach's username, resolved on read
// for display. The username is never written to the feedback table.
type FeedbackWithCoach struct {
	Feedback
	CoachUsername *string `json:"coach_username"`
}
