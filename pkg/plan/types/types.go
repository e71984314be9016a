package types

// GenerateRequest carries the user input for one plan generation.
type GenerateRequest struct {
	Subject    string `json:"subject" validate:"required"`
	Exam       string `json:"exam" validate:"required"`
	NumDays    int    `json:"numDays" validate:"required,min=1,max=365"`
	Topics     string `json:"topics"`
	Difficulty string `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
}

// ToggleRequest is the PATCH body for day completion.
type ToggleRequest struct {
	DayIndex    int  `json:"dayIndex"`
	IsCompleted bool `json:"isCompleted"`
}

// SaveRequest is the body for saving an already-generated plan. GeneralInfo
// holds the overview/topics/resources markdown; DailyRoutines is the
// pre-segmented sequence of per-day blocks.
type SaveRequest struct {
	GeneralInfo   string   `json:"generalInfo" validate:"required"`
	DailyRoutines []string `json:"dailyRoutines" validate:"required,min=1,max=365"`
	Title         string   `json:"title" validate:"required"`
}
