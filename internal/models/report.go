package models

// Report is derived on every read and never persisted. Session is nil when
// the requested session does not exist; the lists are always non-nil.
type Report struct {
	Session      *Session            `json:"session"`
	Performances []PerformanceSample `json:"performances"`
	Feedback     []FeedbackWithCoach `json:"feedback"`
	Survey       []SurveyEntry       `json:"survey"`
}
