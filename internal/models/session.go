package models

import "time"

const DefaultSessionTitle = "Untitled Session"

// Session start/end times are stored as canonical "YYYY-MM-DD HH:mm:ss"
// strings or null, never a malformed partial string.
type Session struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	CoachID     *int64    `json:"coach_id"`
	StartTime   *string   `json:"start_time"`
	EndTime     *string   `json:"end_time"`
	SessionType *string   `json:"session_type"`
	Location    *string   `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
}
