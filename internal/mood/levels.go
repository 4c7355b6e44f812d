package mood

import (
	"github.com/julianstephens/mindcare/internal/models"
)

// Level describes one point of the 1-5 mood scale
type Level struct {
	Score int    `json:"score"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

var levels = []Level{
	{Score: 1, Label: "Very Low", Icon: "😢"},
	{Score: 2, Label: "Low", Icon: "😔"},
	{Score: 3, Label: "Neutral", Icon: "😐"},
	{Score: 4, Label: "Good", Icon: "😊"},
	{Score: 5, Label: "Excellent", Icon: "😄"},
}

var emotions = []string{
	"Happy", "Sad", "Anxious", "Calm", "Energetic", "Tired",
	"Grateful", "Frustrated", "Optimistic", "Lonely", "Confident",
	"Overwhelmed", "Peaceful", "Excited", "Worried", "Content",
}

// Levels returns the mood scale, lowest first
func Levels() []Level {
	return append([]Level(nil), levels...)
}

// LevelFor returns the scale entry for score
func LevelFor(score int) (Level, error) {
	if err := models.ValidateMoodScore(score); err != nil {
		return Level{}, err
	}
	return levels[score-1], nil
}

// Emotions returns the vocabulary offered when recording a mood
func Emotions() []string {
	return append([]string(nil), emotions...)
}
