package domain

// MoodState is the optional per-record mood marker (the record's StateID).
type MoodState string

const (
	MoodGreat   MoodState = "great"
	MoodGood    MoodState = "good"
	MoodNeutral MoodState = "neutral"
	MoodLow     MoodState = "low"
	MoodBad     MoodState = "bad"
)

// ValidMoodStates is the canonical set of accepted mood strings.
var ValidMoodStates = map[string]bool{
	"great": true, "good": true, "neutral": true, "low": true, "bad": true,
}

// MoodStates lists moods in display order.
var MoodStates = []MoodState{MoodGreat, MoodGood, MoodNeutral, MoodLow, MoodBad}
