package session

// SessionSummary holds the data displayed on the summary screen.
type SessionSummary struct {
	SessionID      string
	LessonID       string
	TotalExercises int
	TotalCorrect   int
	Score          int
	MaxScore       int
	Accuracy       float64
	Results        []ExerciseResult
	CommitErr      error
}

// BuildSummary creates a SessionSummary from a session state.
func BuildSummary(state SessionState) *SessionSummary {
	var correct, maxScore int
	for _, r := range state.Results {
		if r.Correct {
			correct++
		}
	}
	for _, ex := range state.Exercises {
		maxScore += ex.Points
	}

	var accuracy float64
	if len(state.Results) > 0 {
		accuracy = float64(correct) / float64(len(state.Results))
	}

	return &SessionSummary{
		SessionID:      state.SessionID,
		LessonID:       state.LessonID,
		TotalExercises: len(state.Exercises),
		TotalCorrect:   correct,
		Score:          state.AccumulatedScore,
		MaxScore:       maxScore,
		Accuracy:       accuracy,
		Results:        state.Results,
		CommitErr:      state.CommitErr,
	}
}
