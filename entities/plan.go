package entities

import "time"

type StudyPlan struct {
	PlanID    uint   `gorm:"primaryKey" json:"id"`
	UserID    string `json:"user_id" gorm:"index"`
	Title     string `json:"title"`
	Exam      string `json:"exam"`
	Subject   string `json:"subject"`
	Overview  string `json:"overview"`
	Topics    string `json:"topics"`
	Resources string `json:"resources"`
	CreatedAt time.Time `json:"createdAt"`

	// Loaded separately, ordered by day_number.
	DailyRoutines []DayEntry `gorm:"-" json:"dailyRoutines,omitempty"`
}

// DayEntry is one day's schedule block. Each day is its own row keyed by
// (plan_id, day_number) so completion patches are per-record conditional
// updates instead of whole-array rewrites.
type DayEntry struct {
	DayID       uint       `gorm:"primaryKey" json:"-"`
	PlanID      uint       `gorm:"index:idx_plan_day,unique" json:"-"`
	DayNumber   int        `gorm:"index:idx_plan_day,unique" json:"dayNumber"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	IsCompleted bool       `json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt"`
	Version     int        `json:"-"`
	CreatedAt   time.Time  `json:"-"`
	UpdatedAt   time.Time  `json:"-"`
}

// PlanSummary is the list-view projection.
type PlanSummary struct {
	PlanID    uint      `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	Overview  string    `json:"overview"`
}
