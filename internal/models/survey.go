package models

import (
	"encoding/json"
	"time"
)

// SurveyEntry stores Response as an opaque serialized structure; it is
// round-tripped verbatim and never interpreted by the backend.
type SurveyEntry struct {
	ID        int64           `json:"id"`
	PlayerID  *int64          `json:"player_id"`
	SessionID *int64          `json:"session_id"`
	Response  json.RawMessage `json:"response"`
	CreatedAt time.Time       `json:"created_at"`
}
