package entities

import "time"

type StudyLog struct {
	LogID        uint      `gorm:"primaryKey" json:"log_id"`
	PlanID       uint      `gorm:"index" json:"plan_id"`
	UserID       string    `gorm:"index" json:"user_id"`
	Date         time.Time `json:"date"`
	HoursStudied *float64  `json:"hours_studied"`
	Confidence   *int      `json:"confidence"` // 1..5 self-rating
	MockScore    *float64  `json:"mock_score"`
	Note         string    `json:"note"`
	CreatedAt    time.Time
}
