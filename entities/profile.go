package entities

import "time"

type StudyProfile struct {
	ProfileID     uint     `gorm:"primaryKey" json:"profile_id"`
	UserID        string   `json:"user_id" gorm:"index"`
	Name          string   `json:"name"`
	Exam          string   `json:"exam"` // upsc|jee|neet|ssc|gate|cat|other
	TargetDate    *time.Time `json:"target_date"`
	DailyStudyHrs *float64 `json:"daily_study_hrs"`
	Difficulty    string   `json:"difficulty"` // beginner|intermediate|advanced
	Language      string   `json:"language"`   // en|hi
	WeakSubjects  string   `json:"weak_subjects"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
