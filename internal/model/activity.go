package model

// Tone is the presentational classification of an activity event.
type Tone string

const (
	ToneNeutral  Tone = "neutral"
	TonePositive Tone = "positive"
	ToneWarning  Tone = "warning"
)

// ActivityEvent is one entry in the activity timeline.
type ActivityEvent struct {
	ID        string `json:"id"` // "evt-N", N increasing with creation
	Title     string `json:"title"`
	Detail    string `json:"detail"`
	TimeLabel string `json:"timeLabel"`
	Tone      Tone   `json:"tone"`
}
